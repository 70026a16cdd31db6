package reducer

import (
	"fmt"
	"strings"

	"github.com/frictionlessweb/formpdf-sub000/internal/form"
	"github.com/frictionlessweb/formpdf-sub000/internal/geometry"
)

// Padding around boxes built from tokens: tight for plain annotations,
// looser for labels and groups so the box reads as enclosing its members.
const (
	tokenPadding = 3
	groupPadding = 6
)

// #region reduce
// Reduce maps (state, action) to the next state. It is pure: the previous
// state is never mutated, and the same inputs always produce the same
// output. Transitions marked undoable record a version entry whose inverse
// restores the prior state exactly.
//
// Mutating an id that no longer exists is a recoverable no-op for that id.
// UNDO and REDO assume an entry is available; CanUndo and CanRedo are
// recomputed after every undoable transition so callers can gate on them.
func Reduce(prev form.AccessibleForm, action Action) form.AccessibleForm {
	switch a := action.(type) {
	case GotoNextStep:
		return reduceUndoable(prev, func(d *form.AccessibleForm) {
			if i := form.StepIndex(d.Step); i >= 0 && i+1 < len(form.Steps) {
				d.Step = form.Steps[i+1]
			}
			d.Tool = form.ToolSelect
			clearSelection(d)
		})
	case GotoPreviousStep:
		return reduceUndoable(prev, func(d *form.AccessibleForm) {
			if i := form.StepIndex(d.Step); i > 0 {
				d.Step = form.Steps[i-1]
			}
			d.Tool = form.ToolSelect
			clearSelection(d)
		})
	case GotoStep:
		return reduceUndoable(prev, func(d *form.AccessibleForm) {
			if form.StepIndex(a.Step) < 0 {
				return
			}
			d.Step = a.Step
			d.Tool = form.ToolSelect
			clearSelection(d)
		})
	case ChangeTool:
		return reduceUndoable(prev, func(d *form.AccessibleForm) {
			d.Tool = a.Tool
		})
	case ChangeZoom:
		return reduceUndoable(prev, func(d *form.AccessibleForm) {
			scale := a.Zoom / d.Zoom
			d.Zoom = a.Zoom
			for id, ann := range d.Annotations {
				ann.Bounds = geometry.Scale(ann.Bounds, scale)
				d.Annotations[id] = ann
			}
			for p := range d.Tokens {
				for i := range d.Tokens[p] {
					d.Tokens[p][i].Bounds = geometry.Scale(d.Tokens[p][i].Bounds, scale)
				}
			}
			for i := range d.Sections {
				d.Sections[i].Y *= scale
			}
			d.PDFWidth *= scale
			d.PDFHeight *= scale
		})
	case ChangePage:
		next := prev.Clone()
		next.Page = a.Page
		return next
	case TogglePreviewTooltips:
		next := prev.Clone()
		next.PreviewTooltips = !next.PreviewTooltips
		return next
	case ShowLoadingScreen:
		next := prev.Clone()
		next.ShowLoadingScreen = true
		return next
	case CreateAnnotation:
		return reduceUndoable(prev, func(d *form.AccessibleForm) {
			d.Annotations[a.Annotation.ID] = a.Annotation
			d.Tool = form.ToolSelect
		})
	case CreateAnnotationFromTokens:
		if len(a.Tokens) == 0 {
			return prev
		}
		next := prev.Clone()
		ann := annotationFromTokens(a.UI, a.Tokens, tokenPadding)
		next.Annotations[ann.ID] = ann
		return next
	case MoveAnnotation:
		ann, ok := prev.Annotations[a.ID]
		if !ok {
			return prev
		}
		next := prev.Clone()
		ann.Left = a.X
		ann.Top = a.Y
		next.Annotations[a.ID] = ann
		return next
	case ResizeAnnotation:
		// Deliberately outside the undo envelope: resize arrives per drag
		// frame and would flood the history.
		ann, ok := prev.Annotations[a.ID]
		if !ok {
			return prev
		}
		next := prev.Clone()
		ann.Left = a.X
		ann.Top = a.Y
		ann.Width = a.Width
		ann.Height = a.Height
		ann.Corrected = true
		next.Annotations[a.ID] = ann
		return next
	case DeleteAnnotation:
		return reduceUndoable(prev, func(d *form.AccessibleForm) {
			for _, id := range a.IDs {
				removeFromGroups(d, id)
				if _, isGroup := d.GroupRelations[id]; isGroup {
					deleteGroup(d, id)
				}
				removeLabel(d, id)
				for from, to := range d.LabelRelations {
					if to == id {
						delete(d.LabelRelations, from)
					}
				}
				delete(d.Annotations, id)
			}
			clearSelection(d)
		})
	case SetAnnotationType:
		return reduceUndoable(prev, func(d *form.AccessibleForm) {
			for _, id := range a.IDs {
				ann, ok := d.Annotations[id]
				if !ok {
					continue
				}
				ann.Type = a.Type
				ann.BackgroundColor = form.BackgroundColors[a.Type]
				ann.Border = form.Borders[a.Type]
				ann.Corrected = true
				d.Annotations[id] = ann
			}
		})
	case ChangeCustomTooltip:
		return reduceUndoable(prev, func(d *form.AccessibleForm) {
			ann, ok := d.Annotations[a.ID]
			if !ok {
				return
			}
			ann.CustomTooltip = a.CustomTooltip
			ann.Corrected = true
			d.Annotations[a.ID] = ann
		})
	case SelectAnnotation:
		next := prev.Clone()
		for _, id := range a.IDs {
			if next.SelectedAnnotations[id] {
				continue
			}
			next.SelectedAnnotations[id] = true
			next.SelectionOrder = append(next.SelectionOrder, id)
		}
		return next
	case DeselectAnnotation:
		next := prev.Clone()
		delete(next.SelectedAnnotations, a.ID)
		order := make([]string, 0, len(next.SelectionOrder))
		for _, id := range next.SelectionOrder {
			if id != a.ID {
				order = append(order, id)
			}
		}
		next.SelectionOrder = order
		return next
	case DeselectAllAnnotations:
		next := prev.Clone()
		clearSelection(&next)
		return next
	case CreateLabel:
		if len(a.To.Tokens) == 0 {
			return prev
		}
		return reduceUndoable(prev, func(d *form.AccessibleForm) {
			label := annotationFromTokens(a.To.UI, a.To.Tokens, groupPadding)
			d.Annotations[label.ID] = label
			for _, from := range a.From {
				removeLabel(d, from)
				d.LabelRelations[from] = label.ID
			}
			d.Tool = form.ToolSelect
			clearSelection(d)
		})
	case DeleteLabel:
		return reduceUndoable(prev, func(d *form.AccessibleForm) {
			for _, id := range a.IDs {
				removeLabel(d, id)
			}
			clearSelection(d)
		})
	case CreateGroupRelation:
		if len(a.From.Tokens) == 0 {
			return prev
		}
		return reduceUndoable(prev, func(d *form.AccessibleForm) {
			for _, id := range a.To {
				removeFromGroups(d, id)
			}
			group := annotationFromTokens(a.From.UI, a.From.Tokens, groupPadding)
			d.Annotations[group.ID] = group
			d.GroupRelations[group.ID] = append([]string{}, a.To...)
			// The new group becomes the sole selection so its action menu
			// opens; the tool stays on CREATE, unlike the label flow.
			d.SelectedAnnotations = map[string]bool{group.ID: true}
			d.SelectionOrder = []string{group.ID}
		})
	case RemoveFromGroup:
		return reduceUndoable(prev, func(d *form.AccessibleForm) {
			for _, id := range a.IDs {
				removeFromGroups(d, id)
			}
			clearSelection(d)
		})
	case MoveSectionSlider:
		return reduceUndoable(prev, func(d *form.AccessibleForm) {
			if d.CurrentSection < 0 || d.CurrentSection >= len(d.Sections) {
				return
			}
			d.Sections[d.CurrentSection].Y = a.Y
			if d.Step != form.FieldLayer {
				d.ShowResizeModal = true
			}
		})
	case CreateNewSection:
		return reduceUndoable(prev, func(d *form.AccessibleForm) {
			pages := len(d.Tokens)
			if pages == 0 {
				pages = 1
			}
			d.Sections = append(d.Sections, form.Section{Y: d.PDFHeight * float64(pages)})
			d.CurrentSection++
			d.Step = form.FieldLayer
			d.Tool = form.ToolSelect
			clearSelection(d)
		})
	case JumpBackToFieldLayer:
		next := prev.Clone()
		next.Step = form.FieldLayer
		next.ShowResizeModal = false
		clearSelection(&next)
		return next
	case Undo:
		changes, ok := prev.Versions[prev.CurrentVersion]
		if !ok {
			panic(fmt.Sprintf("reducer: UNDO with no version %d; gate on CanUndo", prev.CurrentVersion))
		}
		next := prev.Clone()
		form.ApplySnapshot(&next, changes.Undo)
		next.CurrentVersion--
		_, canUndo := next.Versions[next.CurrentVersion]
		next.CanUndo = canUndo
		next.CanRedo = true
		return next
	case Redo:
		changes, ok := prev.Versions[prev.CurrentVersion+1]
		if !ok {
			panic(fmt.Sprintf("reducer: REDO with no version %d; gate on CanRedo", prev.CurrentVersion+1))
		}
		next := prev.Clone()
		form.ApplySnapshot(&next, changes.Redo)
		next.CurrentVersion++
		next.CanUndo = true
		_, canRedo := next.Versions[next.CurrentVersion+1]
		next.CanRedo = canRedo
		return next
	case HydrateStore:
		// Loads carry their own history, so this never records one.
		next := a.State.Clone()
		if next.HaveScaled {
			return next
		}
		scale := a.Scale
		if scale == 0 {
			scale = 1
		}
		for id, ann := range next.Annotations {
			ann.Bounds = geometry.Scale(ann.Bounds, scale)
			next.Annotations[id] = ann
		}
		for p := range next.Tokens {
			// A flat per-page token list becomes one continuous multi-page
			// coordinate space.
			offset := float64(p) * next.PDFHeight
			for i := range next.Tokens[p] {
				next.Tokens[p][i].Bounds = geometry.Scale(next.Tokens[p][i].Bounds, scale)
				next.Tokens[p][i].Top += offset
			}
		}
		next.HaveScaled = true
		return next
	case IncrementStepAndAnnotations:
		next := prev.Clone()
		annotations := map[string]form.Annotation{}
		for page, list := range a.Annotations {
			for _, p := range list {
				annotations[p.ID] = form.Annotation{
					Bounds:          p.Bounds,
					ID:              p.ID,
					Type:            p.Type,
					Page:            page + 1,
					BackgroundColor: form.BackgroundColors[p.Type],
					Border:          form.Borders[p.Type],
				}
			}
		}
		next.Annotations = annotations
		next.LabelRelations = map[string]string{}
		for k, v := range a.LabelRelations {
			next.LabelRelations[k] = v
		}
		next.GroupRelations = map[string][]string{}
		for k, v := range a.GroupRelations {
			next.GroupRelations[k] = append([]string{}, v...)
		}
		if i := form.StepIndex(next.Step); i >= 0 && i+1 < len(form.Steps) {
			next.Step = form.Steps[i+1]
		}
		next.Tool = form.ToolSelect
		next.ShowLoadingScreen = false
		return next
	default:
		// The action set is closed; hitting this means a new action type
		// was added without a case above.
		panic(fmt.Sprintf("reducer: unhandled action %T", action))
	}
}
// #endregion reduce

// #region undo-envelope
// reduceUndoable applies fn to a deep copy of prev and records the
// before/after snapshots as a new version entry, evicting entries past the
// retention window and discarding any redo future. When fn changes
// nothing, no entry is recorded and the history is untouched.
func reduceUndoable(prev form.AccessibleForm, fn func(*form.AccessibleForm)) form.AccessibleForm {
	next := prev.Clone()
	fn(&next)
	undo := form.TakeSnapshot(prev)
	redo := form.TakeSnapshot(next)
	if undo.Equal(redo) {
		return next
	}
	v := next.CurrentVersion + 1
	next.CurrentVersion = v
	next.CanUndo = true
	next.CanRedo = false
	next.Versions[v] = form.Changes{Undo: undo, Redo: redo}
	for i := v + 1; ; i++ {
		if _, ok := next.Versions[i]; !ok {
			break
		}
		delete(next.Versions, i)
	}
	delete(next.Versions, v-form.MaxVersion)
	return next
}
// #endregion undo-envelope

// #region helpers
func clearSelection(d *form.AccessibleForm) {
	d.SelectedAnnotations = map[string]bool{}
	d.SelectionOrder = []string{}
}

// annotationFromTokens builds an annotation whose box contains the given
// tokens. Label-type annotations additionally take the tokens' text,
// space-joined, as their tooltip.
func annotationFromTokens(seed AnnotationSeed, tokens []form.Token, padding float64) form.Annotation {
	rects := make([]geometry.Bounds, len(tokens))
	for i, t := range tokens {
		rects[i] = t.Bounds
	}
	ann := form.Annotation{
		Bounds:          geometry.BoundingBox(rects, padding),
		ID:              seed.ID,
		Type:            seed.Type,
		Page:            seed.Page,
		BackgroundColor: form.BackgroundColors[seed.Type],
		Border:          form.Borders[seed.Type],
		Corrected:       true,
	}
	if seed.Type == form.Label || seed.Type == form.GroupLabel {
		var words []string
		for _, t := range tokens {
			if t.Text != "" {
				words = append(words, t.Text)
			}
		}
		ann.CustomTooltip = strings.Join(words, " ")
	}
	return ann
}

// removeFromGroups pulls id out of every group that references it, shrinks
// the group's box around the remaining members, and deletes a group that
// ends up empty.
func removeFromGroups(d *form.AccessibleForm, id string) {
	for groupID, members := range d.GroupRelations {
		idx := indexOf(members, id)
		if idx < 0 {
			continue
		}
		remaining := append(append([]string{}, members[:idx]...), members[idx+1:]...)
		if len(remaining) == 0 {
			deleteGroup(d, groupID)
			continue
		}
		d.GroupRelations[groupID] = remaining
		if group, ok := d.Annotations[groupID]; ok {
			group.Bounds = geometry.BoundingBox(memberBounds(d, remaining), groupPadding)
			d.Annotations[groupID] = group
		}
	}
}

// deleteGroup removes a group annotation, its member list, and its label.
func deleteGroup(d *form.AccessibleForm, groupID string) {
	delete(d.GroupRelations, groupID)
	removeLabel(d, groupID)
	delete(d.Annotations, groupID)
}

// removeLabel drops id's label relation. The label annotation itself
// survives while any other relation still points at it.
func removeLabel(d *form.AccessibleForm, id string) {
	labelID, ok := d.LabelRelations[id]
	if !ok {
		return
	}
	delete(d.LabelRelations, id)
	for _, other := range d.LabelRelations {
		if other == labelID {
			return
		}
	}
	delete(d.Annotations, labelID)
}

func memberBounds(d *form.AccessibleForm, ids []string) []geometry.Bounds {
	var rects []geometry.Bounds
	for _, id := range ids {
		if ann, ok := d.Annotations[id]; ok {
			rects = append(rects, ann.Bounds)
		}
	}
	return rects
}

func indexOf(list []string, want string) int {
	for i, s := range list {
		if s == want {
			return i
		}
	}
	return -1
}
// #endregion helpers
