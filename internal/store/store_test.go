package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frictionlessweb/formpdf-sub000/internal/form"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "formpdf.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadMissingKeyYieldsDefault(t *testing.T) {
	s := openStore(t)

	f, found, err := s.Load(DefaultKey)
	require.NoError(t, err)
	require.False(t, found)
	require.Equal(t, form.FieldLayer, f.Step)
	require.Equal(t, -1, f.CurrentVersion)
	require.NotNil(t, f.Annotations)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openStore(t)

	f := form.DefaultAccessibleForm()
	f.Step = form.GroupLayer
	f.Tool = form.ToolSelect
	f.Zoom = 1.5
	f.Annotations["a1"] = form.Annotation{ID: "a1", Type: form.CheckBox, Page: 2}
	f.LabelRelations["a1"] = "l1"
	f.GroupRelations["g1"] = []string{"a1"}

	require.NoError(t, s.Save(DefaultKey, f))

	got, found, err := s.Load(DefaultKey)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, form.GroupLayer, got.Step)
	require.Equal(t, 1.5, got.Zoom)
	require.Equal(t, form.CheckBox, got.Annotations["a1"].Type)
	require.Equal(t, "l1", got.LabelRelations["a1"])
	require.Equal(t, []string{"a1"}, got.GroupRelations["g1"])
}

func TestSaveOverwrites(t *testing.T) {
	s := openStore(t)

	first := form.DefaultAccessibleForm()
	require.NoError(t, s.Save(DefaultKey, first))

	second := form.DefaultAccessibleForm()
	second.Step = form.LabelLayer
	require.NoError(t, s.Save(DefaultKey, second))

	got, found, err := s.Load(DefaultKey)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, form.LabelLayer, got.Step)
}

func TestLoadCorruptPayloadYieldsDefault(t *testing.T) {
	s := openStore(t)

	_, err := s.DB().Exec(
		`INSERT INTO form_state (key, payload, updated_at) VALUES (?, ?, ?)`,
		DefaultKey, "{not json", "2026-01-01T00:00:00Z",
	)
	require.NoError(t, err)

	f, found, err := s.Load(DefaultKey)
	require.NoError(t, err)
	require.False(t, found, "corrupt payloads start a fresh session")
	require.Equal(t, form.FieldLayer, f.Step)
}

func TestLoadSchemaInvalidPayloadYieldsDefault(t *testing.T) {
	s := openStore(t)

	// Valid JSON, but the step is not a workflow phase.
	_, err := s.DB().Exec(
		`INSERT INTO form_state (key, payload, updated_at) VALUES (?, ?, ?)`,
		DefaultKey, `{"step": "WAT", "tool": "CREATE", "zoom": 1, "page": 1, "annotations": {}}`,
		"2026-01-01T00:00:00Z",
	)
	require.NoError(t, err)

	_, found, err := s.Load(DefaultKey)
	require.NoError(t, err)
	require.False(t, found)
}

func TestLoadSparsePayloadGetsCollections(t *testing.T) {
	s := openStore(t)

	_, err := s.DB().Exec(
		`INSERT INTO form_state (key, payload, updated_at) VALUES (?, ?, ?)`,
		DefaultKey,
		`{"step": "FIELD_LAYER", "tool": "SELECT", "zoom": 2, "page": 1, "height": 700,
		  "annotations": {}, "sections": null, "selectedAnnotations": null,
		  "labelRelations": null, "groupRelations": null, "versions": null}`,
		"2026-01-01T00:00:00Z",
	)
	require.NoError(t, err)

	f, found, err := s.Load(DefaultKey)
	require.NoError(t, err)
	require.True(t, found)
	require.NotNil(t, f.SelectedAnnotations)
	require.NotNil(t, f.LabelRelations)
	require.NotNil(t, f.GroupRelations)
	require.NotNil(t, f.Versions)
	require.Len(t, f.Sections, 1)
	require.Equal(t, 700.0, f.Sections[0].Y)
}

func TestLoadDropsDanglingRelations(t *testing.T) {
	s := openStore(t)

	f := form.DefaultAccessibleForm()
	f.Annotations["f1"] = form.Annotation{ID: "f1", Type: form.TextBox}
	f.Annotations["g1"] = form.Annotation{ID: "g1", Type: form.Group}
	f.Annotations["g2"] = form.Annotation{ID: "g2", Type: form.Group}
	f.Annotations["l1"] = form.Annotation{ID: "l1", Type: form.Label}
	// g1 keeps one real member; g2's members are all gone; the label
	// relations point at a missing field and a missing label.
	f.GroupRelations["g1"] = []string{"f1", "ghost"}
	f.GroupRelations["g2"] = []string{"ghost"}
	f.LabelRelations["missing-field"] = "l1"
	f.LabelRelations["f1"] = "missing-label"
	require.NoError(t, s.Save(DefaultKey, f))

	got, found, err := s.Load(DefaultKey)
	require.NoError(t, err)
	require.True(t, found)

	require.Equal(t, []string{"f1"}, got.GroupRelations["g1"],
		"members without an annotation are dropped")
	require.NotContains(t, got.GroupRelations, "g2",
		"a group with no surviving members does not exist")
	require.NotContains(t, got.Annotations, "g2")
	require.Empty(t, got.LabelRelations,
		"relations touching a missing annotation are dropped")

	// The surviving group stays usable: shrinking it must not feed an
	// empty member list to the geometry.
	require.Contains(t, got.Annotations, "g1")
}

func TestKeysAreIndependent(t *testing.T) {
	s := openStore(t)

	a := form.DefaultAccessibleForm()
	a.Step = form.GroupLayer
	require.NoError(t, s.Save("doc-a", a))

	_, found, err := s.Load("doc-b")
	require.NoError(t, err)
	require.False(t, found)
}
