package reducer

import (
	"github.com/frictionlessweb/formpdf-sub000/internal/form"
	"github.com/frictionlessweb/formpdf-sub000/internal/geometry"
)

// #region action
// Action is the closed set of transitions the reducer accepts. The
// unexported marker method keeps the set closed to this package; the wire
// names in codec.go form the contract between the UI and the core.
type Action interface {
	isAction()
}
// #endregion action

// #region seeds
// AnnotationSeed carries the identity of an annotation about to be built
// from tokens. Styling is derived from the type, geometry from the tokens.
type AnnotationSeed struct {
	ID   string              `json:"id"`
	Type form.AnnotationType `json:"type"`
	Page int                 `json:"page"`
}

// TokenSeed pairs an annotation seed with the tokens that define its box.
type TokenSeed struct {
	UI     AnnotationSeed `json:"ui"`
	Tokens []form.Token   `json:"tokens"`
}

// Predicted is one rectangle proposed by the prediction collaborator.
type Predicted struct {
	geometry.Bounds
	ID   string              `json:"id"`
	Type form.AnnotationType `json:"type"`
}
// #endregion seeds

// #region step-actions
// GotoNextStep advances the workflow one phase; at the last phase it stays
// put. Every step change forces the SELECT tool and clears the selection.
type GotoNextStep struct{}

// GotoPreviousStep moves the workflow back one phase; at the first phase it
// stays put.
type GotoPreviousStep struct{}

// GotoStep jumps straight to the given phase.
type GotoStep struct {
	Step form.Step `json:"step"`
}
// #endregion step-actions

// #region view-actions
// ChangeTool sets the active pointer tool.
type ChangeTool struct {
	Tool form.Tool `json:"tool"`
}

// ChangeZoom rescales every annotation, token, section line, and the page
// dimensions from the current zoom to the given one.
type ChangeZoom struct {
	Zoom float64 `json:"zoom"`
}

// ChangePage sets the current page. Pages index from 1.
type ChangePage struct {
	Page int `json:"page"`
}

// TogglePreviewTooltips flips the tooltip-preview flag.
type TogglePreviewTooltips struct{}

// ShowLoadingScreen raises the loading flag while a prediction round-trip
// is in flight.
type ShowLoadingScreen struct{}
// #endregion view-actions

// #region annotation-actions
// CreateAnnotation inserts a fully-formed annotation at its id and switches
// the tool to SELECT.
type CreateAnnotation struct {
	Annotation form.Annotation `json:"annotation"`
}

// CreateAnnotationFromTokens builds an annotation from the bounding box of
// the given tokens. With no tokens it does nothing.
type CreateAnnotationFromTokens TokenSeed

// MoveAnnotation overwrites the position of the annotation at the given id.
type MoveAnnotation struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// ResizeAnnotation overwrites the position and size of the annotation at
// the given id and marks it human-corrected.
type ResizeAnnotation struct {
	ID     string  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DeleteAnnotation removes the given annotations, cascading through group
// membership and label relations, then clears the selection.
type DeleteAnnotation struct {
	IDs []string `json:"ids"`
}

// SetAnnotationType overwrites the type, and the type-derived styling, of
// each listed annotation and marks them human-corrected.
type SetAnnotationType struct {
	IDs  []string            `json:"ids"`
	Type form.AnnotationType `json:"type"`
}

// ChangeCustomTooltip overwrites one annotation's tooltip text and marks it
// human-corrected.
type ChangeCustomTooltip struct {
	ID            string `json:"id"`
	CustomTooltip string `json:"customTooltip"`
}
// #endregion annotation-actions

// #region selection-actions
// SelectAnnotation adds ids to the selection set, preserving the order they
// were selected in.
type SelectAnnotation struct {
	IDs []string `json:"ids"`
}

// DeselectAnnotation removes one id from the selection set.
type DeselectAnnotation struct {
	ID string `json:"id"`
}

// DeselectAllAnnotations clears the selection set.
type DeselectAllAnnotations struct{}
// #endregion selection-actions

// #region relation-actions
// CreateLabel builds a label annotation from the given tokens and points
// every source field or group at it, replacing any label they had before.
// A field has at most one label at a time. With no tokens it does nothing.
type CreateLabel struct {
	To   TokenSeed `json:"to"`
	From []string  `json:"from"`
}

// DeleteLabel drops the label relation of each listed field; a label
// annotation is deleted only once no field references it.
type DeleteLabel struct {
	IDs []string `json:"ids"`
}

// CreateGroupRelation pulls the target fields out of any group they belong
// to, then registers them as the members of a new group annotation built
// from the given tokens. With no tokens it does nothing.
type CreateGroupRelation struct {
	From TokenSeed `json:"from"`
	To   []string  `json:"to"`
}

// RemoveFromGroup pulls each listed field out of whichever group references
// it, without deleting the field itself, then clears the selection.
type RemoveFromGroup struct {
	IDs []string `json:"ids"`
}
// #endregion relation-actions

// #region section-actions
// MoveSectionSlider sets the active section's cut line. Past the first
// workflow phase the move additionally raises the resize-confirmation
// modal, since it invalidates later-phase work.
type MoveSectionSlider struct {
	Y float64 `json:"y"`
}

// CreateNewSection appends a fresh section below the current one and
// returns the workflow to the first phase for it.
type CreateNewSection struct{}

// JumpBackToFieldLayer confirms a section resize by jumping the workflow
// back to the first phase and dismissing the modal.
type JumpBackToFieldLayer struct{}
// #endregion section-actions

// #region history-actions
// Undo applies the inverse of the most recent undoable transition. Callers
// must gate on CanUndo.
type Undo struct{}

// Redo re-applies the most recently undone transition. Callers must gate on
// CanRedo.
type Redo struct{}
// #endregion history-actions

// #region external-actions
// HydrateStore replaces the whole state with a loaded payload, applying the
// one-time device-pixel-ratio correction and per-page token offsets unless
// the payload has already been scaled.
type HydrateStore struct {
	State form.AccessibleForm `json:"state"`
	Scale float64             `json:"scale"`
}

// IncrementStepAndAnnotations applies a prediction response: a fresh
// annotation set plus relations, advancing the workflow one phase and
// clearing the loading flag.
type IncrementStepAndAnnotations struct {
	Annotations    [][]Predicted       `json:"annotations"`
	LabelRelations map[string]string   `json:"labelRelations"`
	GroupRelations map[string][]string `json:"groupRelations"`
}
// #endregion external-actions

func (GotoNextStep) isAction()                {}
func (GotoPreviousStep) isAction()            {}
func (GotoStep) isAction()                    {}
func (ChangeTool) isAction()                  {}
func (ChangeZoom) isAction()                  {}
func (ChangePage) isAction()                  {}
func (TogglePreviewTooltips) isAction()       {}
func (ShowLoadingScreen) isAction()           {}
func (CreateAnnotation) isAction()            {}
func (CreateAnnotationFromTokens) isAction()  {}
func (MoveAnnotation) isAction()              {}
func (ResizeAnnotation) isAction()            {}
func (DeleteAnnotation) isAction()            {}
func (SetAnnotationType) isAction()           {}
func (ChangeCustomTooltip) isAction()         {}
func (SelectAnnotation) isAction()            {}
func (DeselectAnnotation) isAction()          {}
func (DeselectAllAnnotations) isAction()      {}
func (CreateLabel) isAction()                 {}
func (DeleteLabel) isAction()                 {}
func (CreateGroupRelation) isAction()         {}
func (RemoveFromGroup) isAction()             {}
func (MoveSectionSlider) isAction()           {}
func (CreateNewSection) isAction()            {}
func (JumpBackToFieldLayer) isAction()        {}
func (Undo) isAction()                        {}
func (Redo) isAction()                        {}
func (HydrateStore) isAction()                {}
func (IncrementStepAndAnnotations) isAction() {}
