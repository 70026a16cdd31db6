package form

import "reflect"

// #region snapshot
// Snapshot is a deep copy of the undoable portion of the state. It leaves
// out the history fields themselves, the one-time scaling marker, and the
// transient UI flags that undo must never touch.
type Snapshot struct {
	Step                Step                  `json:"step"`
	Tool                Tool                  `json:"tool"`
	Zoom                float64               `json:"zoom"`
	PDFWidth            float64               `json:"width"`
	PDFHeight           float64               `json:"height"`
	Sections            []Section             `json:"sections"`
	CurrentSection      int                   `json:"currentSection"`
	Annotations         map[string]Annotation `json:"annotations"`
	SelectedAnnotations map[string]bool       `json:"selectedAnnotations"`
	SelectionOrder      []string              `json:"selectionOrder"`
	LabelRelations      map[string]string     `json:"labelRelations"`
	GroupRelations      map[string][]string   `json:"groupRelations"`
	Tokens              [][]Token             `json:"tokens"`
	ShowResizeModal     bool                  `json:"showResizeModal"`
}
// #endregion snapshot

// #region take-snapshot
// TakeSnapshot deep-copies the undoable fields out of f. The snapshot holds
// literal values, so undoing a zoom restores the exact prior pixels rather
// than re-dividing.
func TakeSnapshot(f AccessibleForm) Snapshot {
	return Snapshot{
		Step:                f.Step,
		Tool:                f.Tool,
		Zoom:                f.Zoom,
		PDFWidth:            f.PDFWidth,
		PDFHeight:           f.PDFHeight,
		Sections:            append([]Section{}, f.Sections...),
		CurrentSection:      f.CurrentSection,
		Annotations:         copyAnnotations(f.Annotations),
		SelectedAnnotations: copyBoolMap(f.SelectedAnnotations),
		SelectionOrder:      append([]string{}, f.SelectionOrder...),
		LabelRelations:      copyStringMap(f.LabelRelations),
		GroupRelations:      copyGroupRelations(f.GroupRelations),
		Tokens:              copyTokens(f.Tokens),
		ShowResizeModal:     f.ShowResizeModal,
	}
}
// #endregion take-snapshot

// #region apply-snapshot
// ApplySnapshot deep-copies s back into f, leaving every field outside the
// snapshot alone. Snapshots are immutable, so the copy keeps stored history
// entries from aliasing live state.
func ApplySnapshot(f *AccessibleForm, s Snapshot) {
	f.Step = s.Step
	f.Tool = s.Tool
	f.Zoom = s.Zoom
	f.PDFWidth = s.PDFWidth
	f.PDFHeight = s.PDFHeight
	f.Sections = append([]Section{}, s.Sections...)
	f.CurrentSection = s.CurrentSection
	f.Annotations = copyAnnotations(s.Annotations)
	f.SelectedAnnotations = copyBoolMap(s.SelectedAnnotations)
	f.SelectionOrder = append([]string{}, s.SelectionOrder...)
	f.LabelRelations = copyStringMap(s.LabelRelations)
	f.GroupRelations = copyGroupRelations(s.GroupRelations)
	f.Tokens = copyTokens(s.Tokens)
	f.ShowResizeModal = s.ShowResizeModal
}
// #endregion apply-snapshot

// #region equal
// Equal reports whether two snapshots are structurally identical.
func (s Snapshot) Equal(o Snapshot) bool {
	return reflect.DeepEqual(s, o)
}
// #endregion equal
