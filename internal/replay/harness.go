// Package replay runs recorded action sequences through the reducer and
// checks the final state against fixture expectations.
package replay

import (
	"fmt"

	"github.com/frictionlessweb/formpdf-sub000/internal/form"
	"github.com/frictionlessweb/formpdf-sub000/internal/reducer"
)

// #region replay

// Replay applies the fixture's actions in order, starting from the
// fixture's state (or the default when absent), and returns the final
// state plus any expectation failures. Operates entirely in-memory.
func Replay(fx *Fixture) (form.AccessibleForm, []string, error) {
	current := form.DefaultAccessibleForm()
	if fx.StartState != nil {
		current = fx.StartState.Clone()
	}

	for i, raw := range fx.Actions {
		action, err := reducer.ParseAction(raw)
		if err != nil {
			return form.AccessibleForm{}, nil, fmt.Errorf("action %d: %w", i, err)
		}
		current = reducer.Reduce(current, action)
	}

	return current, fx.Expect.Check(current), nil
}

// #endregion replay

// #region check

// Check compares the final state against the expectations and returns a
// human-readable failure per mismatch.
func (e Expectations) Check(f form.AccessibleForm) []string {
	var failures []string

	if e.Step != nil && f.Step != *e.Step {
		failures = append(failures, fmt.Sprintf("step: got %s, want %s", f.Step, *e.Step))
	}
	if e.Tool != nil && f.Tool != *e.Tool {
		failures = append(failures, fmt.Sprintf("tool: got %s, want %s", f.Tool, *e.Tool))
	}
	if e.AnnotationCount != nil && len(f.Annotations) != *e.AnnotationCount {
		failures = append(failures, fmt.Sprintf("annotation count: got %d, want %d", len(f.Annotations), *e.AnnotationCount))
	}
	if e.CanUndo != nil && f.CanUndo != *e.CanUndo {
		failures = append(failures, fmt.Sprintf("can_undo: got %v, want %v", f.CanUndo, *e.CanUndo))
	}
	if e.CanRedo != nil && f.CanRedo != *e.CanRedo {
		failures = append(failures, fmt.Sprintf("can_redo: got %v, want %v", f.CanRedo, *e.CanRedo))
	}
	if e.VersionCount != nil && len(f.Versions) != *e.VersionCount {
		failures = append(failures, fmt.Sprintf("version count: got %d, want %d", len(f.Versions), *e.VersionCount))
	}

	for id, want := range e.Annotations {
		got, ok := f.Annotations[id]
		if !ok {
			failures = append(failures, fmt.Sprintf("annotation %s: missing", id))
			continue
		}
		if want.Type != nil && got.Type != *want.Type {
			failures = append(failures, fmt.Sprintf("annotation %s type: got %s, want %s", id, got.Type, *want.Type))
		}
		if want.Page != nil && got.Page != *want.Page {
			failures = append(failures, fmt.Sprintf("annotation %s page: got %d, want %d", id, got.Page, *want.Page))
		}
	}

	return failures
}

// #endregion check
