package form

// MaxVersion is how many undoable transitions the history retains; older
// entries are evicted.
const MaxVersion = 10

// #region changes
// Changes pairs the two snapshots recorded for one undoable transition:
// Undo restores the state before it, Redo the state after it.
type Changes struct {
	Undo Snapshot `json:"undo"`
	Redo Snapshot `json:"redo"`
}
// #endregion changes

// #region accessible-form
// AccessibleForm is the complete document state the reducer owns. Every
// transition produces a wholly new value; no caller mutates one in place.
type AccessibleForm struct {
	// Which phase of the workflow is the user in?
	Step Step `json:"step"`
	// Which pointer tool is active?
	Tool Tool `json:"tool"`
	// How far has the user zoomed in or out of the document?
	Zoom float64 `json:"zoom"`
	// Which page is the user on? Indexed from 1, not 0.
	Page int `json:"page"`
	// Rendered pixel size of one page at the current zoom.
	PDFWidth  float64 `json:"width"`
	PDFHeight float64 `json:"height"`
	// The ordered cut lines partitioning the document, and which one the
	// user is working on. CurrentSection stays in [0, len(Sections)).
	Sections       []Section `json:"sections"`
	CurrentSection int       `json:"currentSection"`
	// Every annotation, keyed by id.
	Annotations map[string]Annotation `json:"annotations"`
	// Selection membership, plus the explicit order ids were selected in.
	// The first entry of SelectionOrder decides where the action menu goes.
	SelectedAnnotations map[string]bool `json:"selectedAnnotations"`
	SelectionOrder      []string        `json:"selectionOrder"`
	// Field or group id to the id of its label annotation.
	LabelRelations map[string]string `json:"labelRelations"`
	// Group annotation id to its ordered member field ids. A group with no
	// members never exists.
	GroupRelations map[string][]string `json:"groupRelations"`
	// Renderer-supplied tokens, one list per page.
	Tokens [][]Token `json:"tokens"`
	// Undo/redo history.
	Versions       map[int]Changes `json:"versions"`
	CurrentVersion int             `json:"currentVersion"`
	CanUndo        bool            `json:"canUndo"`
	CanRedo        bool            `json:"canRedo"`
	// Whether the one-time device-pixel-ratio correction has been applied.
	HaveScaled bool `json:"haveScaled"`
	// UI flags.
	ShowResizeModal   bool `json:"showResizeModal"`
	ShowLoadingScreen bool `json:"showLoadingScreen"`
	PreviewTooltips   bool `json:"previewTooltips"`
}
// #endregion accessible-form

// #region default
// DefaultAccessibleForm returns the documented first-run state.
func DefaultAccessibleForm() AccessibleForm {
	return AccessibleForm{
		Step:                FieldLayer,
		Tool:                ToolCreate,
		Zoom:                1,
		Page:                1,
		PDFWidth:            1000,
		PDFHeight:           550,
		Sections:            []Section{{Y: 550}},
		CurrentSection:      0,
		Annotations:         map[string]Annotation{},
		SelectedAnnotations: map[string]bool{},
		SelectionOrder:      []string{},
		LabelRelations:      map[string]string{},
		GroupRelations:      map[string][]string{},
		Tokens:              [][]Token{},
		Versions:            map[int]Changes{},
		CurrentVersion:      -1,
	}
}
// #endregion default

// #region all-tokens
// AllTokens flattens the per-page token lists into one slice.
func (f AccessibleForm) AllTokens() []Token {
	var out []Token
	for _, page := range f.Tokens {
		out = append(out, page...)
	}
	return out
}
// #endregion all-tokens

// #region clone
// Clone returns a deep copy of f. Snapshots stored in Versions are
// immutable once recorded, so the entries themselves are shared.
func (f AccessibleForm) Clone() AccessibleForm {
	next := f
	next.Sections = append([]Section{}, f.Sections...)
	next.Annotations = copyAnnotations(f.Annotations)
	next.SelectedAnnotations = copyBoolMap(f.SelectedAnnotations)
	next.SelectionOrder = append([]string{}, f.SelectionOrder...)
	next.LabelRelations = copyStringMap(f.LabelRelations)
	next.GroupRelations = copyGroupRelations(f.GroupRelations)
	next.Tokens = copyTokens(f.Tokens)
	next.Versions = copyVersions(f.Versions)
	return next
}

func copyAnnotations(in map[string]Annotation) map[string]Annotation {
	out := make(map[string]Annotation, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func copyBoolMap(in map[string]bool) map[string]bool {
	out := make(map[string]bool, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func copyStringMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func copyGroupRelations(in map[string][]string) map[string][]string {
	out := make(map[string][]string, len(in))
	for k, v := range in {
		out[k] = append([]string{}, v...)
	}
	return out
}

func copyTokens(in [][]Token) [][]Token {
	out := make([][]Token, len(in))
	for i, page := range in {
		out[i] = append([]Token{}, page...)
	}
	return out
}

func copyVersions(in map[int]Changes) map[int]Changes {
	out := make(map[int]Changes, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
// #endregion clone
