// Package store persists document state in SQLite so an editing session
// survives restarts.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
	_ "modernc.org/sqlite"

	"github.com/frictionlessweb/formpdf-sub000/internal/form"
)

// DefaultKey is the storage key an editing session saves under when no
// other key is configured.
const DefaultKey = "a11yform"

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS form_state (
	key         TEXT PRIMARY KEY,
	payload     TEXT NOT NULL,
	updated_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS action_log (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	action_type   TEXT NOT NULL,
	payload_json  TEXT,
	version       INTEGER NOT NULL,
	created_at    TEXT NOT NULL
);
`
// #endregion schema

// #region payload-schema
// payloadSchema guards against loading a payload written by an
// incompatible build. Anything that fails validation is treated the same
// as a missing row.
const payloadSchema = `{
	"type": "object",
	"required": ["step", "tool", "zoom", "page", "annotations"],
	"properties": {
		"step": {"type": "string", "enum": ["FIELD_LAYER", "GROUP_LAYER", "LABEL_LAYER"]},
		"tool": {"type": "string", "enum": ["CREATE", "SELECT"]},
		"zoom": {"type": "number", "exclusiveMinimum": 0},
		"page": {"type": "integer", "minimum": 1},
		"width": {"type": "number"},
		"height": {"type": "number"},
		"annotations": {"type": "object"},
		"labelRelations": {"type": "object"},
		"groupRelations": {"type": "object"},
		"currentVersion": {"type": "integer"}
	}
}`

var compiledPayloadSchema = jsonschema.MustCompileString("form_state.json", payloadSchema)
// #endregion payload-schema

// #region store-struct
// Store manages saved document state in SQLite.
type Store struct {
	db *sql.DB
}
// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}
// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
// #endregion close

// #region db-accessor
// DB returns the underlying *sql.DB for use by other packages (e.g. actionlog).
func (s *Store) DB() *sql.DB {
	return s.db
}
// #endregion db-accessor

// #region save
// Save upserts the document state under the given key.
func (s *Store) Save(key string, f form.AccessibleForm) error {
	payload, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshal form state: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO form_state (key, payload, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		key, string(payload), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save form state: %w", err)
	}
	return nil
}
// #endregion save

// #region load
// Load reads the document state saved under key. A missing row, a payload
// that is not valid JSON, or one that fails schema validation all yield
// the default state with found = false; a fresh session starts instead of
// failing on stale data.
func (s *Store) Load(key string) (form.AccessibleForm, bool, error) {
	var payload string
	err := s.db.QueryRow(`SELECT payload FROM form_state WHERE key = ?`, key).Scan(&payload)
	if err == sql.ErrNoRows {
		return form.DefaultAccessibleForm(), false, nil
	}
	if err != nil {
		return form.AccessibleForm{}, false, fmt.Errorf("load form state: %w", err)
	}

	var raw interface{}
	if err := json.NewDecoder(strings.NewReader(payload)).Decode(&raw); err != nil {
		return form.DefaultAccessibleForm(), false, nil
	}
	if err := compiledPayloadSchema.Validate(raw); err != nil {
		return form.DefaultAccessibleForm(), false, nil
	}

	f := form.DefaultAccessibleForm()
	if err := json.Unmarshal([]byte(payload), &f); err != nil {
		return form.DefaultAccessibleForm(), false, nil
	}
	normalize(&f)
	return f, true, nil
}
// #endregion load

// #region normalize
// normalize replaces nil collections from a sparse payload so the rest of
// the system never sees a nil map, and drops relation entries that point
// at annotations the payload does not contain. A group left with no
// members does not exist; it goes too, with its annotation and label
// relation.
func normalize(f *form.AccessibleForm) {
	if f.Annotations == nil {
		f.Annotations = map[string]form.Annotation{}
	}
	if f.SelectedAnnotations == nil {
		f.SelectedAnnotations = map[string]bool{}
	}
	if f.LabelRelations == nil {
		f.LabelRelations = map[string]string{}
	}
	if f.GroupRelations == nil {
		f.GroupRelations = map[string][]string{}
	}
	if f.Versions == nil {
		f.Versions = map[int]form.Changes{}
	}
	if len(f.Sections) == 0 {
		f.Sections = []form.Section{{Y: f.PDFHeight}}
	}

	for id, labelID := range f.LabelRelations {
		if _, ok := f.Annotations[id]; !ok {
			delete(f.LabelRelations, id)
			continue
		}
		if _, ok := f.Annotations[labelID]; !ok {
			delete(f.LabelRelations, id)
		}
	}
	for groupID, members := range f.GroupRelations {
		if _, ok := f.Annotations[groupID]; !ok {
			delete(f.GroupRelations, groupID)
			continue
		}
		var kept []string
		for _, id := range members {
			if _, ok := f.Annotations[id]; ok {
				kept = append(kept, id)
			}
		}
		if len(kept) == 0 {
			delete(f.GroupRelations, groupID)
			delete(f.LabelRelations, groupID)
			delete(f.Annotations, groupID)
			continue
		}
		f.GroupRelations[groupID] = kept
	}
}
// #endregion normalize
