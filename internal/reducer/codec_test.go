package reducer

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/frictionlessweb/formpdf-sub000/internal/form"
	"github.com/frictionlessweb/formpdf-sub000/internal/geometry"
)

// every action variant, with representative payloads
func allActions() []Action {
	seed := TokenSeed{
		UI:     AnnotationSeed{ID: "a1", Type: form.Label, Page: 1},
		Tokens: []form.Token{{Bounds: geometry.Bounds{Top: 1, Left: 2, Width: 3, Height: 4}, Text: "hi"}},
	}
	return []Action{
		GotoNextStep{},
		GotoPreviousStep{},
		GotoStep{Step: form.LabelLayer},
		ChangeTool{Tool: form.ToolSelect},
		ChangeZoom{Zoom: 1.5},
		ChangePage{Page: 2},
		TogglePreviewTooltips{},
		ShowLoadingScreen{},
		CreateAnnotation{Annotation: form.Annotation{ID: "a1", Type: form.TextBox}},
		CreateAnnotationFromTokens(seed),
		MoveAnnotation{ID: "a1", X: 5, Y: 6},
		ResizeAnnotation{ID: "a1", X: 5, Y: 6, Width: 7, Height: 8},
		DeleteAnnotation{IDs: []string{"a1", "a2"}},
		SetAnnotationType{IDs: []string{"a1"}, Type: form.CheckBox},
		ChangeCustomTooltip{ID: "a1", CustomTooltip: "hello"},
		SelectAnnotation{IDs: []string{"a1"}},
		DeselectAnnotation{ID: "a1"},
		DeselectAllAnnotations{},
		CreateLabel{To: seed, From: []string{"f1"}},
		DeleteLabel{IDs: []string{"f1"}},
		CreateGroupRelation{From: seed, To: []string{"f1", "f2"}},
		RemoveFromGroup{IDs: []string{"f1"}},
		MoveSectionSlider{Y: 321},
		CreateNewSection{},
		JumpBackToFieldLayer{},
		Undo{},
		Redo{},
		HydrateStore{State: form.DefaultAccessibleForm(), Scale: 2},
		IncrementStepAndAnnotations{
			Annotations:    [][]Predicted{{{ID: "p1", Type: form.TextBox}}},
			LabelRelations: map[string]string{"p1": "p2"},
			GroupRelations: map[string][]string{"g1": {"p1"}},
		},
	}
}

func TestWireRoundTrip(t *testing.T) {
	for _, a := range allActions() {
		name := ActionType(a)

		data, err := MarshalAction(a)
		if err != nil {
			t.Fatalf("%s: marshal: %v", name, err)
		}
		back, err := ParseAction(data)
		if err != nil {
			t.Fatalf("%s: parse: %v", name, err)
		}
		if ActionType(back) != name {
			t.Fatalf("%s: round-tripped to %s", name, ActionType(back))
		}
		if diff := cmp.Diff(a, back); diff != "" {
			t.Fatalf("%s: payload changed in flight:\n%s", name, diff)
		}
	}
}

func TestWireNamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range allActions() {
		name := ActionType(a)
		if seen[name] {
			t.Fatalf("duplicate wire name %s", name)
		}
		seen[name] = true
	}
}

func TestParseUnknownType(t *testing.T) {
	if _, err := ParseAction([]byte(`{"type": "LAUNCH_MISSILES"}`)); err == nil {
		t.Fatal("unknown action types must be an error")
	}
}

func TestParseMalformedPayload(t *testing.T) {
	if _, err := ParseAction([]byte(`{"type": "CHANGE_ZOOM", "payload": {"zoom": "not a number"}}`)); err == nil {
		t.Fatal("a payload that does not match its type must be an error")
	}
}

func TestEveryActionReduces(t *testing.T) {
	// Undo and Redo need history; everything else must reduce from a
	// populated state without panicking.
	f := form.DefaultAccessibleForm()
	f.Annotations["a1"] = form.Annotation{ID: "a1", Type: form.TextBox}
	f = Reduce(f, ChangeTool{Tool: form.ToolSelect})
	f = Reduce(f, ChangeTool{Tool: form.ToolCreate})
	f = Reduce(f, Undo{}) // so both UNDO and REDO have an entry to land on

	for _, a := range allActions() {
		Reduce(f, a)
	}
}
