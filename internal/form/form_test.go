package form

import (
	"testing"

	"github.com/frictionlessweb/formpdf-sub000/internal/geometry"
)

func TestDefaultAccessibleForm(t *testing.T) {
	f := DefaultAccessibleForm()

	if f.Step != FieldLayer {
		t.Fatalf("expected FIELD_LAYER, got %s", f.Step)
	}
	if f.Tool != ToolCreate {
		t.Fatalf("expected CREATE, got %s", f.Tool)
	}
	if f.Zoom != 1 || f.Page != 1 {
		t.Fatalf("expected zoom 1 page 1, got zoom %f page %d", f.Zoom, f.Page)
	}
	if f.CurrentVersion != -1 {
		t.Fatalf("expected version -1, got %d", f.CurrentVersion)
	}
	if len(f.Sections) != 1 || f.Sections[0].Y != f.PDFHeight {
		t.Fatalf("expected one section at page height, got %+v", f.Sections)
	}

	// Collections must exist so callers never nil-check.
	if f.Annotations == nil || f.SelectedAnnotations == nil ||
		f.LabelRelations == nil || f.GroupRelations == nil || f.Versions == nil {
		t.Fatal("default state must have non-nil collections")
	}
}

func TestStepIndex(t *testing.T) {
	if StepIndex(FieldLayer) != 0 || StepIndex(GroupLayer) != 1 || StepIndex(LabelLayer) != 2 {
		t.Fatal("workflow order is FIELD_LAYER, GROUP_LAYER, LABEL_LAYER")
	}
	if StepIndex(Step("NOPE")) != -1 {
		t.Fatal("unknown step should index to -1")
	}
}

func TestCloneIsDeep(t *testing.T) {
	f := DefaultAccessibleForm()
	f.Annotations["a1"] = Annotation{ID: "a1", Type: TextBox}
	f.SelectedAnnotations["a1"] = true
	f.SelectionOrder = []string{"a1"}
	f.LabelRelations["a1"] = "l1"
	f.GroupRelations["g1"] = []string{"a1"}
	f.Tokens = [][]Token{{{Text: "hello"}}}

	c := f.Clone()
	c.Annotations["a2"] = Annotation{ID: "a2"}
	c.SelectedAnnotations["a2"] = true
	c.SelectionOrder = append(c.SelectionOrder, "a2")
	c.LabelRelations["a2"] = "l2"
	c.GroupRelations["g1"] = append(c.GroupRelations["g1"], "a2")
	c.Tokens[0][0].Text = "changed"
	c.Sections[0].Y = 999

	if len(f.Annotations) != 1 || len(f.SelectedAnnotations) != 1 || len(f.LabelRelations) != 1 {
		t.Fatal("mutating the clone leaked into the original maps")
	}
	if len(f.GroupRelations["g1"]) != 1 {
		t.Fatal("mutating the clone leaked into the original group members")
	}
	if f.Tokens[0][0].Text != "hello" {
		t.Fatal("mutating the clone leaked into the original tokens")
	}
	if f.Sections[0].Y != 550 {
		t.Fatal("mutating the clone leaked into the original sections")
	}
}

func TestAllTokens(t *testing.T) {
	f := DefaultAccessibleForm()
	f.Tokens = [][]Token{
		{{Text: "a"}, {Text: "b"}},
		{{Text: "c"}},
	}
	all := f.AllTokens()
	if len(all) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(all))
	}
	if all[2].Text != "c" {
		t.Fatal("pages should flatten in order")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	f := DefaultAccessibleForm()
	f.Step = GroupLayer
	f.Tool = ToolSelect
	f.Zoom = 2
	f.Annotations["a1"] = Annotation{
		Bounds: geometry.Bounds{Top: 1, Left: 2, Width: 3, Height: 4},
		ID:     "a1",
		Type:   CheckBox,
	}
	f.GroupRelations["g1"] = []string{"a1"}
	f.ShowResizeModal = true

	snap := TakeSnapshot(f)

	restored := DefaultAccessibleForm()
	restored.Page = 7          // outside the snapshot
	restored.HaveScaled = true // outside the snapshot
	ApplySnapshot(&restored, snap)

	if restored.Step != GroupLayer || restored.Tool != ToolSelect || restored.Zoom != 2 {
		t.Fatal("snapshot did not restore scalar fields")
	}
	if restored.Annotations["a1"].Type != CheckBox {
		t.Fatal("snapshot did not restore annotations")
	}
	if !restored.ShowResizeModal {
		t.Fatal("snapshot did not restore the resize modal flag")
	}
	if restored.Page != 7 || !restored.HaveScaled {
		t.Fatal("snapshot restore must leave fields outside the snapshot alone")
	}

	// The restored copy must not alias the snapshot.
	restored.GroupRelations["g1"][0] = "other"
	if snap.GroupRelations["g1"][0] != "a1" {
		t.Fatal("restored state aliases the snapshot")
	}
}

func TestSnapshotEqual(t *testing.T) {
	f := DefaultAccessibleForm()
	a := TakeSnapshot(f)
	b := TakeSnapshot(f)
	if !a.Equal(b) {
		t.Fatal("snapshots of the same state should be equal")
	}

	f.Tool = ToolSelect
	c := TakeSnapshot(f)
	if a.Equal(c) {
		t.Fatal("snapshots of different states should differ")
	}
}

func TestStyleTablesCoverAllTypes(t *testing.T) {
	for _, typ := range AnnotationTypes {
		if BackgroundColors[typ] == "" {
			t.Fatalf("no background color for %s", typ)
		}
		if Borders[typ] == "" {
			t.Fatalf("no border for %s", typ)
		}
	}
}
