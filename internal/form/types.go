package form

import "github.com/frictionlessweb/formpdf-sub000/internal/geometry"

// #region annotation-type
// AnnotationType enumerates the semantic kinds of region a user can mark on
// a form.
type AnnotationType string

const (
	TextBox    AnnotationType = "TEXTBOX"
	RadioBox   AnnotationType = "RADIOBOX"
	CheckBox   AnnotationType = "CHECKBOX"
	Signature  AnnotationType = "SIGNATURE"
	Date       AnnotationType = "DATE"
	Label      AnnotationType = "LABEL"
	Group      AnnotationType = "GROUP"
	GroupLabel AnnotationType = "GROUP_LABEL"
)

// AnnotationTypes lists every valid annotation type.
var AnnotationTypes = []AnnotationType{
	TextBox, RadioBox, CheckBox, Signature, Date, Label, Group, GroupLabel,
}

// FieldTypes are the annotation types that represent fillable form fields,
// as opposed to labels and groups.
var FieldTypes = []AnnotationType{TextBox, RadioBox, CheckBox, Signature, Date}
// #endregion annotation-type

// #region step
// Step is one phase of the editing workflow. The phases are strictly
// ordered; users move through them with next/previous navigation.
type Step string

const (
	FieldLayer Step = "FIELD_LAYER"
	GroupLayer Step = "GROUP_LAYER"
	LabelLayer Step = "LABEL_LAYER"
)

// Steps is the ordered workflow.
var Steps = []Step{FieldLayer, GroupLayer, LabelLayer}

// StepIndex returns the position of s in Steps, or -1 when s is unknown.
func StepIndex(s Step) int {
	for i, step := range Steps {
		if step == s {
			return i
		}
	}
	return -1
}
// #endregion step

// #region tool
// Tool is the active pointer tool.
type Tool string

const (
	ToolCreate Tool = "CREATE"
	ToolSelect Tool = "SELECT"
)
// #endregion tool

// #region annotation
// Annotation is a positioned, typed rectangle over the document. IDs are
// stable for the annotation's whole lifecycle. Corrected records whether a
// human has touched an originally machine-predicted annotation.
type Annotation struct {
	geometry.Bounds
	ID              string         `json:"id"`
	BackgroundColor string         `json:"backgroundColor"`
	Border          string         `json:"border"`
	Type            AnnotationType `json:"type"`
	Page            int            `json:"page"`
	Corrected       bool           `json:"corrected"`
	CustomTooltip   string         `json:"customTooltip"`
}
// #endregion annotation

// #region token
// Token is a renderer-supplied rectangle of recognised page content. The
// reducer never mutates tokens except for uniform rescaling.
type Token struct {
	geometry.Bounds
	Text       string  `json:"text,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
}
// #endregion token

// #region section
// Section is a horizontal cut line across the document. The ordered section
// list partitions the document top to bottom; the user works on one section
// at a time.
type Section struct {
	Y float64 `json:"y"`
}
// #endregion section
