package formatter

import (
	"regexp"
	"testing"
	"time"

	"github.com/alexanderramin/mesoforge/internal/contract"
	"github.com/stretchr/testify/assert"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestRelativeDateFrom(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"today", now, "Today"},
		{"tomorrow", now.Add(24 * time.Hour), "Tomorrow"},
		{"yesterday", now.Add(-24 * time.Hour), "Yesterday"},
		{"4 days future", now.Add(4 * 24 * time.Hour), "In 4d"},
		{"3 weeks future", now.Add(21 * 24 * time.Hour), "In 3w"},
		{"3 days past", now.Add(-3 * 24 * time.Hour), "3d ago"},
		{"5 weeks past", now.Add(-35 * 24 * time.Hour), "5w ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeDateFrom(tt.input, now))
		})
	}
}

func TestProgramStatus(t *testing.T) {
	start := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 84)

	assert.Contains(t, stripANSI(ProgramStatus(start, end, start.AddDate(0, 0, -4))), "Starts In 4d")
	assert.Contains(t, stripANSI(ProgramStatus(start, end, start)), "Week 1")
	assert.Contains(t, stripANSI(ProgramStatus(start, end, start.AddDate(0, 0, 15))), "Week 3")
	assert.Contains(t, stripANSI(ProgramStatus(start, end, end)), "Finished")
}

func TestFormatRestAndMinutes(t *testing.T) {
	assert.Equal(t, "2m", FormatRest(120))
	assert.Equal(t, "90s", FormatRest(90))
	assert.Equal(t, "0s", FormatRest(0))

	assert.Equal(t, "0m", FormatMinutes(0))
	assert.Equal(t, "45m", FormatMinutes(45))
	assert.Equal(t, "1h", FormatMinutes(60))
	assert.Equal(t, "1h 5m", FormatMinutes(65))
}

func TestFormatModifier(t *testing.T) {
	assert.Equal(t, "70%", FormatModifier(0.70))
	assert.Equal(t, "110%", FormatModifier(1.10))
}

func TestRenderShare(t *testing.T) {
	assert.Equal(t, "[████████░░]  80%", stripANSI(RenderShare(16, 20, 0.8, 10)))
	assert.Equal(t, "[░░░░░░░░░░]   0%", stripANSI(RenderShare(0, 0, 0.8, 10)))
	assert.Equal(t, "[██████████] 100%", stripANSI(RenderShare(5, 4, 0.8, 10)))
}

func TestDayName(t *testing.T) {
	assert.Equal(t, "Mon", DayName(0))
	assert.Equal(t, "Sun", DayName(6))
	assert.Equal(t, "Day 9", DayName(9))
}

func TestBandIndicator(t *testing.T) {
	assert.Contains(t, stripANSI(BandIndicator("optimal")), "OPTIMAL")
	assert.Contains(t, stripANSI(BandIndicator("")), "UNKNOWN")
}

func testDay() contract.DayView {
	return contract.DayView{
		Index:            0,
		Label:            "full_body",
		SessionSets:      7,
		PrioritySets:     4,
		MaintenanceSets:  3,
		EstimatedMinutes: 32,
		Exercises: []contract.ExerciseView{
			{Order: 1, Name: "Pull Up", Muscle: "lats", Sets: 4, RepRange: "6-10", RPE: 7.5, RestSeconds: 120, Tempo: "3-0-1-0", IsPriority: true, Why: "Priority lats movement.", PriorityJustification: "lats is a priority muscle."},
			{Order: 2, Name: "Leg Press", Muscle: "quads", Sets: 3, RepRange: "10-15", RPE: 7.5, RestSeconds: 90, Tempo: "2-0-1-0", Why: "Maintenance quads movement."},
		},
	}
}

func TestFormatDay(t *testing.T) {
	out := stripANSI(FormatDay(testDay(), 0.8))

	assert.Contains(t, out, "Mon")
	assert.Contains(t, out, "full_body")
	assert.Contains(t, out, "7 sets, ~32m")
	assert.Contains(t, out, "★ Pull Up")
	assert.Contains(t, out, "Leg Press")
	assert.Contains(t, out, "2m")
	assert.Contains(t, out, "90s")

	rest := stripANSI(FormatDay(contract.DayView{Index: 6, Label: "rest", Rest: true}, 0.8))
	assert.Equal(t, "Sun  rest\n", rest)
}

func TestFormatProgramOverview(t *testing.T) {
	p := &contract.ProgramView{
		ProgramSummary: contract.ProgramSummary{
			ID: "0f8fad5b-d9cb-469f-a165-70867728950e", GoalName: "V-Taper", Frequency: "3_full_body",
			Sex: "male", WeeklySets: 60, StartDate: "2026-10-19", EndDate: "2027-01-11",
		},
		ExerciseCount: 2,
		Periods: []contract.PeriodView{
			{Number: 1, Type: "ramp", VolumeModifier: 0.7, IntensityModifier: 0.85, StartDate: "2026-10-19",
				Days: []contract.DayView{testDay(), {Index: 1, Label: "rest", Rest: true}}},
		},
	}

	out := stripANSI(FormatProgramOverview(p))
	assert.Contains(t, out, "V-TAPER")
	assert.Contains(t, out, "2026-10-19 → 2027-01-11")
	assert.Contains(t, out, "ramp")
	assert.Contains(t, out, "70%")
	assert.Contains(t, out, "85%")
}

func TestFormatProgramList(t *testing.T) {
	now := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	out := stripANSI(FormatProgramList([]contract.ProgramSummary{{
		ID: "abcdef12-3456-7890-abcd-ef1234567890", GoalName: "Hourglass", Frequency: "6_ppl",
		WeeklySets: 56, StartDate: "2026-10-19", EndDate: "2027-01-11",
	}}, now))

	assert.Contains(t, out, "abcdef12")
	assert.NotContains(t, out, "abcdef12-3456")
	assert.Contains(t, out, "Hourglass")
	assert.Contains(t, out, "Starts In 4d")
}

func TestFormatBrief(t *testing.T) {
	out := stripANSI(FormatBrief(contract.BriefResponse{
		Readiness: 45,
		Band:      "low",
		Message:   "Readiness is low.",
		Focus:     "Technique",
		CycleNote: "Luteal phase: RPE capped at 7.0 and volume reduced 20%.",
		Warnings:  []contract.WarningView{{Exercise: "Back Squat", Alternative: "Hack Squat", Reason: "long femurs"}},
	}))

	assert.Contains(t, out, "● LOW")
	assert.Contains(t, out, "readiness 45/100")
	assert.Contains(t, out, "Luteal phase")
	assert.Contains(t, out, "Back Squat → Hack Squat")
}

func TestFormatFatigueCheck(t *testing.T) {
	ok := stripANSI(FormatFatigueCheck(contract.NewFatigueCheckResponse(12)))
	assert.Contains(t, ok, "CONTINUE")
	assert.NotContains(t, ok, "cut_audio_cues")

	stop := stripANSI(FormatFatigueCheck(contract.NewFatigueCheckResponse(23.5)))
	assert.Contains(t, stop, "STOP")
	assert.Contains(t, stop, "velocity loss 23.5% (limit 20%)")
	assert.Contains(t, stop, "autolog_autostopped")
}

func TestFormatExerciseList(t *testing.T) {
	out := stripANSI(FormatExerciseList([]contract.CatalogEntry{
		{Name: "Machine Shoulder Press", PrimaryMuscle: "shoulders", Equipment: "machine", MachineBrand: "Hammer Strength"},
		{Name: "Back Squat", PrimaryMuscle: "quads", Equipment: "barbell", Tags: []string{"squat", "back_squat"}},
	}))

	assert.Contains(t, out, "CATALOG (2)")
	assert.Contains(t, out, "machine (Hammer Strength)")
	assert.Contains(t, out, "squat, back_squat")
}
