package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/mesoforge/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExerciseRepo_CreateAndGetByID(t *testing.T) {
	repo := NewSQLiteExerciseRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	e := testutil.NewTestExercise("Back Squat", "quads",
		testutil.WithEquipment("barbell"),
		testutil.WithTags("squat", "back_squat"),
		testutil.WithSecondary("glutes", "adductors"),
		testutil.WithStretchBonus(),
	)
	require.NoError(t, repo.Create(ctx, e))

	got, err := repo.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Back Squat", got.Name)
	assert.Equal(t, "quads", got.PrimaryMuscle)
	assert.Equal(t, "barbell", got.EquipmentType)
	assert.Equal(t, []string{"squat", "back_squat"}, got.Tags)
	assert.Equal(t, []string{"glutes", "adductors"}, got.SecondaryMuscles)
	assert.True(t, got.StretchBonus)
	assert.Nil(t, got.Machine)
	assert.WithinDuration(t, e.CreatedAt, got.CreatedAt, time1s)
}

func TestExerciseRepo_MachineSpecRoundTrip(t *testing.T) {
	repo := NewSQLiteExerciseRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	e := testutil.NewTestExercise("Machine Shoulder Press", "shoulders",
		testutil.WithMachine("Hammer Strength", "ascending"))
	require.NoError(t, repo.Create(ctx, e))

	got, err := repo.GetByID(ctx, e.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Machine)
	assert.Equal(t, "Hammer Strength", got.Machine.Brand)
	assert.Equal(t, "ascending", got.Machine.ResistanceProfile)
	assert.Equal(t, e.ID, got.Machine.ExerciseID)
}

func TestExerciseRepo_GetByNameIgnoresCase(t *testing.T) {
	repo := NewSQLiteExerciseRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	e := testutil.NewTestExercise("Lat Pulldown", "lats")
	require.NoError(t, repo.Create(ctx, e))

	got, err := repo.GetByName(ctx, "lat pulldown")
	require.NoError(t, err)
	assert.Equal(t, e.ID, got.ID)
}

func TestExerciseRepo_DuplicateNameRejected(t *testing.T) {
	repo := NewSQLiteExerciseRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestExercise("Leg Press", "quads")))
	err := repo.Create(ctx, testutil.NewTestExercise("LEG PRESS", "quads"))
	assert.Error(t, err)
}

func TestExerciseRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteExerciseRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExerciseRepo_ListOrderedByName(t *testing.T) {
	repo := NewSQLiteExerciseRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	for _, name := range []string{"Pull Up", "cable fly", "Barbell Row"} {
		require.NoError(t, repo.Create(ctx, testutil.NewTestExercise(name, "back")))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Barbell Row", list[0].Name)
	assert.Equal(t, "cable fly", list[1].Name)
	assert.Equal(t, "Pull Up", list[2].Name)
}

func TestExerciseRepo_ListByPrimaryMuscle(t *testing.T) {
	repo := NewSQLiteExerciseRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	for _, e := range testutil.SampleCatalog() {
		require.NoError(t, repo.Create(ctx, e))
	}

	quads, err := repo.ListByPrimaryMuscle(ctx, "Quads")
	require.NoError(t, err)
	require.Len(t, quads, 3)
	assert.Equal(t, "Back Squat", quads[0].Name)
	assert.Equal(t, "Bulgarian Split Squat", quads[1].Name)
	assert.Equal(t, "Leg Press", quads[2].Name)
}

func TestExerciseRepo_DeleteCascadesMachineSpec(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteExerciseRepo(database)
	ctx := context.Background()

	e := testutil.NewTestExercise("Pec Deck", "chest", testutil.WithMachine("Panatta", "flat"))
	require.NoError(t, repo.Create(ctx, e))
	require.NoError(t, repo.Delete(ctx, e.ID))

	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM machine_specs`).Scan(&n))
	assert.Equal(t, 0, n)

	assert.ErrorIs(t, repo.Delete(ctx, e.ID), ErrNotFound)
}
