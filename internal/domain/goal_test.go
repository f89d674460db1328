package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEquipmentContext_HasEquipment(t *testing.T) {
	c := EquipmentContext{Equipment: []string{"Barbell", "machine"}}
	assert.True(t, c.HasEquipment("barbell"))
	assert.True(t, c.HasEquipment(""), "no declared equipment is always available")
	assert.False(t, c.HasEquipment("cable"))
}

func TestEquipmentContext_HasBrand(t *testing.T) {
	c := EquipmentContext{Brands: []string{"Hammer Strength"}}
	assert.True(t, c.HasBrand("hammer strength"))
	assert.False(t, c.HasBrand(""))
	assert.False(t, c.HasBrand("Cybex"))
}

func TestEquipmentContext_HomeGymOnly(t *testing.T) {
	cases := []struct {
		equipment []string
		home      bool
	}{
		{[]string{"dumbbell", "bench"}, true},
		{[]string{"dumbbell", "barbell"}, false},
		{nil, false},
		{[]string{"bands", "pullup_bar", "kettlebell", "bodyweight"}, true},
	}
	for _, tc := range cases {
		c := EquipmentContext{Equipment: tc.equipment}
		assert.Equal(t, tc.home, c.HomeGymOnly(), "equipment=%v", tc.equipment)
	}
}

func TestParseSex(t *testing.T) {
	assert.Equal(t, SexFemale, ParseSex(" Female "))
	assert.Equal(t, SexMale, ParseSex("M"))
	assert.Equal(t, SexOther, ParseSex(""))
}

func TestAnatomicalProfile_HasMeasurements(t *testing.T) {
	var nilProfile *AnatomicalProfile
	assert.False(t, nilProfile.HasMeasurements())
	assert.False(t, (&AnatomicalProfile{Morphotype: MorphoLongLimbed}).HasMeasurements())

	v := 0.9
	assert.True(t, (&AnatomicalProfile{FemurToTorso: &v}).HasMeasurements())
	assert.True(t, RatioAbove(&v, 0.85))
	assert.False(t, RatioAbove(nil, 0.85))
}

func TestExercise_Tags(t *testing.T) {
	e := &Exercise{Name: "  Barbell   Back Squat ", Tags: []string{"back_squat"}}
	assert.Equal(t, "barbell back squat", e.NormalizedName())
	assert.True(t, e.HasTag("BACK_SQUAT"))
	assert.True(t, e.Tagged())
	assert.False(t, (&Exercise{}).Tagged())
}
