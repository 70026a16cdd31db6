package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/frictionlessweb/formpdf-sub000/internal/form"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture: an
// optional starting state, a sequence of wire-format actions, and the
// expectations to check against the final state.
type Fixture struct {
	Description string               `json:"description"`
	StartState  *form.AccessibleForm `json:"start_state,omitempty"`
	Actions     []json.RawMessage    `json:"actions"`
	Expect      Expectations         `json:"expect"`
}

// Expectations describes properties of the final state. Nil fields are
// not checked.
type Expectations struct {
	Step            *form.Step          `json:"step,omitempty"`
	Tool            *form.Tool          `json:"tool,omitempty"`
	AnnotationCount *int                `json:"annotation_count,omitempty"`
	CanUndo         *bool               `json:"can_undo,omitempty"`
	CanRedo         *bool               `json:"can_redo,omitempty"`
	VersionCount    *int                `json:"version_count,omitempty"`
	Annotations     map[string]Expected `json:"annotations,omitempty"`
}

// Expected pins down a single annotation in the final state.
type Expected struct {
	Type *form.AnnotationType `json:"type,omitempty"`
	Page *int                 `json:"page,omitempty"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// #endregion fixture-loader
