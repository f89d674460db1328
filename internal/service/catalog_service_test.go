package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/mesoforge/internal/importer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogYAML = `exercises:
  - name: Seated Cable Row
    primary_muscle: Back
    equipment: cable
    secondary_muscles: [biceps, rear delts]
  - name: Hack Squat
    primary_muscle: quads
    stretch_bonus: true
    machine:
      brand: Cybex
      resistance_profile: ascending
`

func writeCatalogFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestCatalogImport_YAMLFile(t *testing.T) {
	env := newServiceEnv(t)
	ctx := context.Background()
	svc := NewCatalogService(env.exercises, env.uow)

	res, err := svc.Import(ctx, writeCatalogFile(t, catalogYAML))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, []string{"Seated Cable Row", "Hack Squat"}, res.Names)

	row, err := env.exercises.GetByName(ctx, "seated cable row")
	require.NoError(t, err)
	assert.Equal(t, "back", row.PrimaryMuscle)
	assert.Equal(t, []string{"biceps", "rear delts"}, row.SecondaryMuscles)

	hack, err := env.exercises.GetByName(ctx, "Hack Squat")
	require.NoError(t, err)
	assert.Equal(t, "machine", hack.EquipmentType)
	require.NotNil(t, hack.Machine)
	assert.Equal(t, "Cybex", hack.Machine.Brand)
}

func TestCatalogImport_InvalidSchemaWritesNothing(t *testing.T) {
	env := newServiceEnv(t)
	ctx := context.Background()
	svc := NewCatalogService(env.exercises, env.uow)

	before, err := env.exercises.List(ctx)
	require.NoError(t, err)

	_, err = svc.ImportSchema(ctx, &importer.CatalogSchema{Exercises: []importer.ExerciseImport{
		{Name: "Hip Adduction", PrimaryMuscle: "adductors", Equipment: "machine"},
		{Name: "hip adduction", PrimaryMuscle: "adductors", Equipment: "machine"},
	}})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "duplicate")

	after, err := env.exercises.List(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before))
}

func TestCatalogImport_ExistingNameRollsBack(t *testing.T) {
	env := newServiceEnv(t)
	ctx := context.Background()
	svc := NewCatalogService(env.exercises, env.uow)

	_, err := svc.ImportSchema(ctx, &importer.CatalogSchema{Exercises: []importer.ExerciseImport{
		{Name: "Hip Adduction", PrimaryMuscle: "adductors", Equipment: "machine"},
		{Name: "leg press", PrimaryMuscle: "quads", Equipment: "machine"},
	}})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "already exists")

	_, err = env.exercises.GetByName(ctx, "Hip Adduction")
	assert.Error(t, err, "first entry must be rolled back")
}

func TestCatalogImport_MissingFile(t *testing.T) {
	env := newServiceEnv(t)
	svc := NewCatalogService(env.exercises, env.uow)

	_, err := svc.Import(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading catalog file")
}

func TestCatalogList(t *testing.T) {
	env := newServiceEnv(t)
	ctx := context.Background()
	svc := NewCatalogService(env.exercises, env.uow)

	quads, err := svc.List(ctx, "QUADS")
	require.NoError(t, err)
	names := make([]string, len(quads))
	for i, e := range quads {
		names[i] = e.Name
	}
	assert.Equal(t, []string{"Back Squat", "Bulgarian Split Squat", "Leg Press"}, names)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 24)
}

func TestGoalServiceList(t *testing.T) {
	env := newServiceEnv(t)

	list := NewGoalService(env.goals).List(context.Background())
	require.NotEmpty(t, list)
	assert.Equal(t, "v_taper", list[0].ID)
}
