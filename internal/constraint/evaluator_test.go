package constraint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/mesoforge/internal/domain"
)

func f(v float64) *float64 { return &v }

func TestEvaluateAnatomicalConstraint_FemurTorso(t *testing.T) {
	d := EvaluateAnatomicalConstraint(&domain.AnatomicalProfile{FemurToTorso: f(0.90)}, "Back Squat")
	require.NotNil(t, d)
	assert.Equal(t, DecisionBan, d.Kind)
	assert.Equal(t, "Leg Press or Bulgarian Split Squat", d.Alternative)
	assert.Contains(t, d.Reason, "0.90")

	assert.Nil(t, EvaluateAnatomicalConstraint(&domain.AnatomicalProfile{FemurToTorso: f(0.60)}, "Back Squat"))
}

func TestEvaluateAnatomicalConstraint_ThresholdIsStrict(t *testing.T) {
	assert.Nil(t, EvaluateAnatomicalConstraint(&domain.AnatomicalProfile{FemurToTorso: f(0.85)}, "Back Squat"))
}

func TestEvaluateAnatomicalConstraint_NilProfile(t *testing.T) {
	assert.Nil(t, EvaluateAnatomicalConstraint(nil, "Back Squat"))
	assert.Nil(t, EvaluateAnatomicalConstraint(&domain.AnatomicalProfile{}, "Back Squat"))
}

func TestEvaluateAnatomicalConstraint_Bench(t *testing.T) {
	p := &domain.AnatomicalProfile{HumerusToTorso: f(0.55)}

	d := EvaluateAnatomicalConstraint(p, "Barbell Bench Press")
	require.NotNil(t, d)
	assert.Equal(t, "Dumbbell Bench Press", d.Alternative)

	assert.Nil(t, EvaluateAnatomicalConstraint(p, "Dumbbell Bench Press"))
	assert.Nil(t, EvaluateAnatomicalConstraint(p, "Incline DB Bench Press"))
}

func TestEvaluateAnatomicalConstraint_TibiaFemur(t *testing.T) {
	p := &domain.AnatomicalProfile{TibiaToFemur: f(1.10)}

	d := EvaluateAnatomicalConstraint(p, "High Bar Squat")
	require.NotNil(t, d)
	assert.Equal(t, "Box Squat", d.Alternative)

	assert.Nil(t, EvaluateAnatomicalConstraint(p, "Box Squat"))
	assert.Nil(t, EvaluateAnatomicalConstraint(p, "Bulgarian Split Squat"))
}

func TestEvaluateAnatomicalConstraint_FirstMatchWins(t *testing.T) {
	p := &domain.AnatomicalProfile{FemurToTorso: f(0.95), TibiaToFemur: f(1.20)}
	d := EvaluateAnatomicalConstraint(p, "back squat")
	require.NotNil(t, d)
	assert.Equal(t, "femur_torso", d.Rule)
}

func TestEvaluateExercise_UsesTags(t *testing.T) {
	p := &domain.AnatomicalProfile{FemurToTorso: f(0.90)}

	tagged := &domain.Exercise{Name: "Belt Machine Movement", Tags: []string{"squat"}}
	require.NotNil(t, EvaluateExercise(p, tagged))

	// Name says squat but the tags say otherwise.
	hack := &domain.Exercise{Name: "Hack Squat Machine", Tags: []string{"machine_squat"}}
	assert.Nil(t, EvaluateExercise(p, hack))

	legacy := &domain.Exercise{Name: "Back Squat"}
	assert.NotNil(t, EvaluateExercise(p, legacy))
}

func TestEvaluateExercise_ExcludedVariants(t *testing.T) {
	femur := &domain.AnatomicalProfile{FemurToTorso: f(0.90)}
	humerus := &domain.AnatomicalProfile{HumerusToTorso: f(0.60)}
	tibia := &domain.AnatomicalProfile{TibiaToFemur: f(1.10)}

	cases := []struct {
		profile  *domain.AnatomicalProfile
		name     string
		tags     []string
		wantRule string
	}{
		{femur, "Back Squat", nil, "femur_torso"},
		{femur, "Back Squat", []string{"squat"}, "femur_torso"},
		{femur, "Bulgarian Split Squat", nil, ""},
		{femur, "Bulgarian Split Squat", []string{"squat"}, ""},
		{femur, "Split Squat", []string{"squat"}, ""},
		{femur, "Rear Foot Elevated Squat", []string{"squat", "split_squat"}, ""},

		{tibia, "Back Squat", []string{"squat"}, "tibia_femur"},
		{tibia, "Box Squat", nil, ""},
		{tibia, "Box Squat", []string{"squat"}, ""},
		{tibia, "Pin Squat", []string{"squat", "box_squat"}, ""},
		{tibia, "Bulgarian Split Squat", []string{"squat"}, ""},

		{humerus, "Barbell Bench Press", nil, "humerus_torso"},
		{humerus, "Barbell Bench Press", []string{"barbell_bench"}, "humerus_torso"},
		{humerus, "Dumbbell Bench Press", nil, ""},
		{humerus, "Dumbbell Bench Press", []string{"barbell_bench"}, ""},
		{humerus, "DB Bench Press", []string{"barbell_bench"}, ""},
		{humerus, "Smith Machine Bench Press", []string{"barbell_bench"}, ""},
		{humerus, "Flat Press", []string{"barbell_bench", "dumbbell_bench"}, ""},
	}

	for _, tc := range cases {
		e := &domain.Exercise{Name: tc.name, Tags: tc.tags}
		d := EvaluateExercise(tc.profile, e)
		if tc.wantRule == "" {
			assert.Nil(t, d, "%s %v", tc.name, tc.tags)
			continue
		}
		require.NotNil(t, d, "%s %v", tc.name, tc.tags)
		assert.Equal(t, tc.wantRule, d.Rule, "%s %v", tc.name, tc.tags)
	}
}

func TestEvaluateExercise_AlternativeIsNeverTheExercise(t *testing.T) {
	p := &domain.AnatomicalProfile{FemurToTorso: f(0.90), TibiaToFemur: f(1.10)}
	for _, name := range []string{"Box Squat", "Bulgarian Split Squat"} {
		d := EvaluateExercise(p, &domain.Exercise{Name: name, Tags: []string{"squat"}})
		if d != nil {
			assert.NotContains(t, d.Alternative, name)
		}
	}
}

func TestEvaluateCyclePhaseConstraint(t *testing.T) {
	luteal := EvaluateCyclePhaseConstraint(domain.PhaseLuteal)
	require.NotNil(t, luteal)
	assert.Equal(t, 7.0, luteal.MaxRPE)
	assert.Equal(t, 0.20, luteal.VolumeReduction)

	menstrual := EvaluateCyclePhaseConstraint(domain.PhaseMenstrual)
	require.NotNil(t, menstrual)
	assert.Equal(t, 8.0, menstrual.MaxRPE)
	assert.Equal(t, 0.10, menstrual.VolumeReduction)

	assert.Nil(t, EvaluateCyclePhaseConstraint(domain.PhaseFollicular))
	assert.Nil(t, EvaluateCyclePhaseConstraint(domain.PhaseOvulatory))
	assert.Nil(t, EvaluateCyclePhaseConstraint(domain.PhaseNone))
}

func TestEvaluateFatigueKillSwitch(t *testing.T) {
	assert.True(t, EvaluateFatigueKillSwitch(21.0))
	assert.False(t, EvaluateFatigueKillSwitch(20.0))
	assert.False(t, EvaluateFatigueKillSwitch(0))
	assert.Len(t, KillSwitchActions(), 3)
}

func TestGenerateBrief(t *testing.T) {
	p := &domain.AnatomicalProfile{FemurToTorso: f(0.90)}
	b := GenerateBrief(72, domain.PhaseLuteal, p, []string{"Back Squat", "Lat Pulldown"})

	assert.Equal(t, domain.ReadinessModerate, b.Band)
	assert.NotEmpty(t, b.Message)
	assert.Contains(t, b.CycleNote, "7.0")
	require.Len(t, b.Warnings, 1)
	assert.Equal(t, "Back Squat → Leg Press or Bulgarian Split Squat", b.Warnings[0].String())
	assert.Contains(t, b.Focus, "Progressive overload")
}

func TestReadinessBands(t *testing.T) {
	cases := []struct {
		readiness int
		band      domain.ReadinessBand
		focus     string
	}{
		{100, domain.ReadinessOptimal, "Progressive"},
		{80, domain.ReadinessOptimal, "Progressive"},
		{79, domain.ReadinessModerate, "Progressive"},
		{60, domain.ReadinessModerate, "Progressive"},
		{59, domain.ReadinessLow, "Technique"},
		{35, domain.ReadinessLow, "Technique"},
		{34, domain.ReadinessCritical, "Recovery"},
		{0, domain.ReadinessCritical, "Recovery"},
	}
	for _, tc := range cases {
		b := GenerateBrief(tc.readiness, domain.PhaseNone, nil, nil)
		assert.Equal(t, tc.band, b.Band, "readiness=%d", tc.readiness)
		assert.Contains(t, b.Focus, tc.focus, "readiness=%d", tc.readiness)
		assert.Empty(t, b.CycleNote)
		assert.Empty(t, b.Warnings)
	}
}
