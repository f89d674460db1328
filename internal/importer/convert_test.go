package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_Minimal(t *testing.T) {
	out := Convert(validMinimalSchema())

	require.Len(t, out, 1)
	e := out[0]
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, "Lat Pulldown", e.Name)
	assert.Equal(t, "lats", e.PrimaryMuscle)
	assert.Equal(t, "cable", e.EquipmentType)
	assert.Equal(t, "strength", e.Category)
	assert.Nil(t, e.Machine)
	assert.False(t, e.CreatedAt.IsZero())
}

func TestConvert_NormalizesCase(t *testing.T) {
	schema := &CatalogSchema{Exercises: []ExerciseImport{{
		Name:             " Back Squat ",
		PrimaryMuscle:    "Quads",
		SecondaryMuscles: []string{"Glutes "},
		Equipment:        "Barbell",
		Tags:             []string{"Back_Squat"},
	}}}

	e := Convert(schema)[0]
	assert.Equal(t, "Back Squat", e.Name)
	assert.Equal(t, "quads", e.PrimaryMuscle)
	assert.Equal(t, []string{"glutes"}, e.SecondaryMuscles)
	assert.Equal(t, "barbell", e.EquipmentType)
	assert.Equal(t, []string{"back_squat"}, e.Tags)
	assert.True(t, e.HasTag("back_squat"))
}

func TestConvert_MachineForcesEquipment(t *testing.T) {
	schema := &CatalogSchema{Exercises: []ExerciseImport{{
		Name: "Pendulum Squat", PrimaryMuscle: "quads",
		Machine: &MachineImport{Brand: "Atlantis", ResistanceProfile: "ascending"},
	}}}

	e := Convert(schema)[0]
	assert.Equal(t, "machine", e.EquipmentType)
	require.NotNil(t, e.Machine)
	assert.Equal(t, e.ID, e.Machine.ExerciseID)
	assert.Equal(t, "Atlantis", e.Machine.Brand)
}

func TestConvert_UniqueIDs(t *testing.T) {
	schema := validMinimalSchema()
	schema.Exercises = append(schema.Exercises, ExerciseImport{Name: "Pull Up", PrimaryMuscle: "lats"})

	out := Convert(schema)
	require.Len(t, out, 2)
	assert.NotEqual(t, out[0].ID, out[1].ID)
}
