package contract

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/alexanderramin/mesoforge/internal/constraint"
	"github.com/alexanderramin/mesoforge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ratio(v float64) *float64 { return &v }

func TestNewGenerateProgramRequest_Defaults(t *testing.T) {
	req := NewGenerateProgramRequest("v_taper", "3_full_body", "male")

	assert.Equal(t, "v_taper", req.Goal)
	assert.Equal(t, "3_full_body", req.Frequency)
	assert.Equal(t, "male", req.Sex)
	assert.Nil(t, req.Equipment)
	assert.True(t, req.Ratios.Empty())
	assert.False(t, req.DryRun)
	assert.Nil(t, req.Now)
}

func TestProfile_NilWithoutData(t *testing.T) {
	assert.Nil(t, Profile("", Ratios{}))
}

func TestProfile_FromRatios(t *testing.T) {
	p := Profile("", Ratios{FemurToTorso: ratio(0.91)})
	require.NotNil(t, p)
	assert.True(t, p.HasMeasurements())
	assert.Equal(t, domain.Morphotype(""), p.Morphotype)
}

func TestProfile_FromMorphotype(t *testing.T) {
	p := Profile("long_arms", Ratios{})
	require.NotNil(t, p)
	assert.False(t, p.HasMeasurements())
	assert.Equal(t, domain.MorphoLongArms, p.Morphotype)
}

func TestGenerateProgramRequest_DecodesJSON(t *testing.T) {
	body := `{"goal":"hourglass","frequency":"4_upper_lower","sex":"female",
		"equipment":["dumbbell","cable"],"ratios":{"femur_to_torso":0.9}}`

	var req GenerateProgramRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	assert.Equal(t, []string{"dumbbell", "cable"}, req.Equipment)
	require.NotNil(t, req.Ratios.FemurToTorso)
	assert.InDelta(t, 0.9, *req.Ratios.FemurToTorso, 1e-9)
}

func TestNewProgramView(t *testing.T) {
	start := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	p := &domain.TrainingProgram{
		ID: "p1", GoalID: "v_taper", Frequency: domain.Freq2FullBody,
		StartDate: start, EndDate: start.AddDate(0, 0, 84),
		Periods: []domain.Period{{
			Number: 1, Type: domain.PeriodRamp, StartDate: start,
			Days: []domain.Day{{Index: 0, Label: domain.LabelFullBody, Exercises: []domain.PrescribedExercise{
				{Order: 1, ExerciseName: "Lat Pulldown", Sets: 4, IsPriority: true},
			}}},
		}},
	}

	v := NewProgramView(p)
	require.NotNil(t, v)
	assert.Equal(t, "2026-10-19", v.StartDate)
	assert.Equal(t, "2027-01-11", v.EndDate)
	assert.Equal(t, 1, v.ExerciseCount)
	require.Len(t, v.Periods, 1)
	assert.Equal(t, "ramp", v.Periods[0].Type)
	assert.Equal(t, "Lat Pulldown", v.Periods[0].Days[0].Exercises[0].Name)

	assert.Nil(t, NewProgramView(nil))
}

func TestNewBriefResponse(t *testing.T) {
	b := constraint.GenerateBrief(40, domain.PhaseLuteal,
		&domain.AnatomicalProfile{FemurToTorso: ratio(0.95)}, []string{"Back Squat", "Lat Pulldown"})

	resp := NewBriefResponse(b)
	assert.Equal(t, "low", resp.Band)
	require.NotNil(t, resp.Cycle)
	assert.InDelta(t, 7.0, resp.Cycle.MaxRPE, 1e-9)
	require.Len(t, resp.Warnings, 1)
	assert.Equal(t, "Back Squat", resp.Warnings[0].Exercise)
}

func TestNewFatigueCheckResponse(t *testing.T) {
	stop := NewFatigueCheckResponse(25)
	assert.True(t, stop.Stop)
	assert.Equal(t, []string{"cut_audio_cues", "strong_haptic_alert", "autolog_autostopped"}, stop.Actions)

	ok := NewFatigueCheckResponse(20)
	assert.False(t, ok.Stop)
	assert.Empty(t, ok.Actions)
	assert.InDelta(t, 20.0, ok.Limit, 1e-9)
}
