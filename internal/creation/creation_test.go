package creation

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/frictionlessweb/formpdf-sub000/internal/form"
	"github.com/frictionlessweb/formpdf-sub000/internal/geometry"
)

var pageTokens = []form.Token{
	{Bounds: geometry.Bounds{Top: 10, Left: 10, Width: 20, Height: 10}, Text: "first"},
	{Bounds: geometry.Bounds{Top: 10, Left: 40, Width: 20, Height: 10}, Text: "name"},
	{Bounds: geometry.Bounds{Top: 100, Left: 10, Width: 20, Height: 10}, Text: "far"},
}

func TestTrackerCollectsCoveredTokens(t *testing.T) {
	var tr Tracker
	tr.Begin(5, 5)
	tr.Update(25, 65, pageTokens)

	if len(tr.Tokens()) != 2 {
		t.Fatalf("expected 2 covered tokens, got %d", len(tr.Tokens()))
	}

	bounds, tokens, ok := tr.Finish()
	if !ok {
		t.Fatal("an active drag should finish with a result")
	}
	want := geometry.Bounds{Top: 5, Left: 5, Width: 60, Height: 20}
	if bounds != want {
		t.Fatalf("got %+v, want %+v", bounds, want)
	}
	if tokens[0].Text != "first" || tokens[1].Text != "name" {
		t.Fatal("wrong tokens collected")
	}
	if tr.Active() {
		t.Fatal("finish should return the tracker to idle")
	}
}

func TestTrackerBackwardDrag(t *testing.T) {
	var tr Tracker
	tr.Begin(25, 65)
	tr.Update(5, 5, pageTokens)

	if len(tr.Tokens()) != 2 {
		t.Fatalf("dragging up-left should cover the same tokens, got %d", len(tr.Tokens()))
	}
}

func TestTrackerLastPositionWins(t *testing.T) {
	var tr Tracker
	tr.Begin(5, 5)
	tr.Update(200, 200, pageTokens)
	tr.Update(12, 12, pageTokens)

	// The final position only covers the first token.
	if len(tr.Tokens()) != 1 {
		t.Fatalf("expected 1 covered token after shrinking, got %d", len(tr.Tokens()))
	}
}

func TestTrackerIdle(t *testing.T) {
	var tr Tracker
	tr.Update(10, 10, pageTokens)
	if _, _, ok := tr.Finish(); ok {
		t.Fatal("finishing without a drag should report no result")
	}

	tr.Begin(5, 5)
	tr.Reset()
	if tr.Active() {
		t.Fatal("reset should return to idle")
	}
	if _, _, ok := tr.Finish(); ok {
		t.Fatal("a reset drag should produce no result")
	}
}

func selectionFixture() map[string]form.Annotation {
	return map[string]form.Annotation{
		"t1": {Bounds: geometry.Bounds{Top: 10, Left: 10, Width: 20, Height: 10}, ID: "t1", Type: form.TextBox},
		"c1": {Bounds: geometry.Bounds{Top: 10, Left: 40, Width: 20, Height: 10}, ID: "c1", Type: form.CheckBox},
		"g1": {Bounds: geometry.Bounds{Top: 5, Left: 5, Width: 100, Height: 30}, ID: "g1", Type: form.Group},
	}
}

func TestSelectorMarquee(t *testing.T) {
	s := NewSelector()
	s.Begin(0, 0)
	s.Update(50, 70, selectionFixture())

	if diff := cmp.Diff([]string{"c1", "g1", "t1"}, s.Covered()); diff != "" {
		t.Fatalf("covered ids wrong:\n%s", diff)
	}

	ids, ok := s.Finish()
	if !ok || len(ids) != 3 {
		t.Fatalf("finish should return the covered ids, got %v %v", ids, ok)
	}
	if s.Active() {
		t.Fatal("finish should return the selector to idle")
	}
}

func TestSelectorTypeFilter(t *testing.T) {
	s := NewSelector(form.TextBox, form.CheckBox)
	s.Begin(0, 0)
	s.Update(50, 70, selectionFixture())

	if diff := cmp.Diff([]string{"c1", "t1"}, s.Covered()); diff != "" {
		t.Fatalf("the group should be filtered out:\n%s", diff)
	}

	// The filter survives a reset.
	s.Reset()
	s.Begin(0, 0)
	s.Update(50, 70, selectionFixture())
	if diff := cmp.Diff([]string{"c1", "t1"}, s.Covered()); diff != "" {
		t.Fatalf("the type filter should survive reset:\n%s", diff)
	}
}

func TestSelectorIdle(t *testing.T) {
	s := NewSelector()
	s.Update(50, 70, selectionFixture())
	if ids, ok := s.Finish(); ok || ids != nil {
		t.Fatal("finishing without a marquee should report no result")
	}
}
