// Package creation holds the transient pointer-drag state for creating
// annotations and for marquee selection. Both trackers are small
// idle→dragging→idle machines; they only read reducer state and can be
// rebuilt from it at any time.
package creation

import (
	"sort"

	"github.com/frictionlessweb/formpdf-sub000/internal/form"
	"github.com/frictionlessweb/formpdf-sub000/internal/geometry"
)

// #region tracker
// Tracker follows one pointer drag that creates a new annotation,
// previewing which tokens the drag currently covers.
type Tracker struct {
	bounds geometry.DragBounds
	tokens []form.Token
	active bool
}

// Begin starts a drag session collapsed to a point at the pointer-down
// position.
func (t *Tracker) Begin(top, left float64) {
	t.bounds = geometry.DragBounds{Top: top, Left: left, MovedTop: top, MovedLeft: left}
	t.tokens = nil
	t.active = true
}

// Update moves the live corner of the drag and recomputes which of the
// page's tokens the normalized drag covers. Last pointer position wins.
func (t *Tracker) Update(top, left float64, all []form.Token) {
	if !t.active {
		return
	}
	t.bounds.MovedTop = top
	t.bounds.MovedLeft = left
	real := geometry.NormalizeDragBounds(t.bounds)
	t.tokens = nil
	for _, token := range all {
		if geometry.Overlaps(token.Bounds, real) {
			t.tokens = append(t.tokens, token)
		}
	}
}

// Active reports whether a drag is in progress.
func (t *Tracker) Active() bool { return t.active }

// Bounds returns the raw drag session.
func (t *Tracker) Bounds() geometry.DragBounds { return t.bounds }

// Tokens returns the tokens the drag currently covers.
func (t *Tracker) Tokens() []form.Token { return t.tokens }

// Finish ends the session, returning the normalized bounds and covered
// tokens. The second return is false when no drag was in progress.
func (t *Tracker) Finish() (geometry.Bounds, []form.Token, bool) {
	if !t.active {
		return geometry.Bounds{}, nil, false
	}
	bounds := geometry.NormalizeDragBounds(t.bounds)
	tokens := t.tokens
	t.Reset()
	return bounds, tokens, true
}

// Reset returns to idle without producing a result, as on pointer-leave.
func (t *Tracker) Reset() {
	*t = Tracker{}
}
// #endregion tracker

// #region selector
// Selector follows a marquee drag over existing annotations, restricted to
// an allow-list of annotation types.
type Selector struct {
	bounds  geometry.DragBounds
	allowed map[form.AnnotationType]bool
	covered []string
	active  bool
}

// NewSelector restricts the marquee to the given annotation types. With no
// types, every annotation is selectable.
func NewSelector(types ...form.AnnotationType) *Selector {
	s := &Selector{}
	if len(types) > 0 {
		s.allowed = make(map[form.AnnotationType]bool, len(types))
		for _, t := range types {
			s.allowed[t] = true
		}
	}
	return s
}

// Begin starts a marquee collapsed to a point at the pointer-down position.
func (s *Selector) Begin(top, left float64) {
	s.bounds = geometry.DragBounds{Top: top, Left: left, MovedTop: top, MovedLeft: left}
	s.covered = nil
	s.active = true
}

// Update moves the live corner and recomputes which allowed annotations
// the marquee covers. Ids come back sorted so the result is deterministic.
func (s *Selector) Update(top, left float64, annotations map[string]form.Annotation) {
	if !s.active {
		return
	}
	s.bounds.MovedTop = top
	s.bounds.MovedLeft = left
	real := geometry.NormalizeDragBounds(s.bounds)
	s.covered = nil
	for id, ann := range annotations {
		if s.allowed != nil && !s.allowed[ann.Type] {
			continue
		}
		if geometry.Overlaps(ann.Bounds, real) {
			s.covered = append(s.covered, id)
		}
	}
	sort.Strings(s.covered)
}

// Active reports whether a marquee is in progress.
func (s *Selector) Active() bool { return s.active }

// Covered returns the ids the marquee currently covers.
func (s *Selector) Covered() []string { return s.covered }

// Finish ends the marquee and returns the covered ids; false when no
// marquee was in progress.
func (s *Selector) Finish() ([]string, bool) {
	if !s.active {
		return nil, false
	}
	covered := s.covered
	s.Reset()
	return covered, true
}

// Reset returns to idle without producing a result.
func (s *Selector) Reset() {
	allowed := s.allowed
	*s = Selector{allowed: allowed}
}
// #endregion selector
