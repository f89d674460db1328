package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCatalogSchema_JSON(t *testing.T) {
	data := []byte(`{"exercises":[{"name":"Leg Press","primary_muscle":"quads","equipment":"machine",
		"machine":{"brand":"Hammer Strength"}}]}`)

	schema, err := ParseCatalogSchema(data, FormatJSON)
	require.NoError(t, err)
	require.Len(t, schema.Exercises, 1)
	assert.Equal(t, "Leg Press", schema.Exercises[0].Name)
	require.NotNil(t, schema.Exercises[0].Machine)
	assert.Equal(t, "Hammer Strength", schema.Exercises[0].Machine.Brand)
}

func TestParseCatalogSchema_JSONUnknownField(t *testing.T) {
	data := []byte(`{"exercises":[{"name":"Leg Press","primary_musle":"quads"}]}`)

	_, err := ParseCatalogSchema(data, FormatJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "primary_musle")
}

func TestParseCatalogSchema_YAML(t *testing.T) {
	data := []byte(`exercises:
  - name: Romanian Deadlift
    primary_muscle: hamstrings
    equipment: barbell
    stretch_bonus: true
    tags: [deadlift, hinge]
`)

	schema, err := ParseCatalogSchema(data, FormatYAML)
	require.NoError(t, err)
	require.Len(t, schema.Exercises, 1)
	e := schema.Exercises[0]
	assert.Equal(t, "hamstrings", e.PrimaryMuscle)
	assert.True(t, e.StretchBonus)
	assert.Equal(t, []string{"deadlift", "hinge"}, e.Tags)
}

func TestParseCatalogSchema_YAMLUnknownField(t *testing.T) {
	data := []byte("exercises:\n  - name: Dip\n    primary_muscle: chest\n    colour: red\n")

	_, err := ParseCatalogSchema(data, FormatYAML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatForPath("seed.yaml"))
	assert.Equal(t, FormatYAML, FormatForPath("SEED.YML"))
	assert.Equal(t, FormatJSON, FormatForPath("seed.json"))
	assert.Equal(t, FormatJSON, FormatForPath("seed"))
}

func TestLoadCatalogSchema_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yml")
	require.NoError(t, os.WriteFile(path, []byte("exercises:\n  - name: Dip\n    primary_muscle: chest\n"), 0o644))

	schema, err := LoadCatalogSchema(path)
	require.NoError(t, err)
	require.Len(t, schema.Exercises, 1)
	assert.Equal(t, "Dip", schema.Exercises[0].Name)
}

func TestLoadCatalogSchema_MissingFile(t *testing.T) {
	_, err := LoadCatalogSchema(filepath.Join(t.TempDir(), "none.json"))
	assert.Error(t, err)
}
