// Package periodization builds the 12-period mesocycle skeleton. It knows
// nothing about exercises.
package periodization

import (
	"fmt"
	"time"

	"github.com/alexanderramin/mesoforge/internal/domain"
)

// Skeleton is the type and modifiers of one period.
type Skeleton struct {
	Number            int
	Type              domain.PeriodType
	VolumeModifier    float64
	IntensityModifier float64
}

// BuildPeriodSkeleton maps a period number to its type and modifiers.
// Numbers outside 1..12 are clamped.
func BuildPeriodSkeleton(n int) Skeleton {
	n = clamp(n, 1, domain.PeriodsPerProgram)
	s := Skeleton{Number: n}
	switch {
	case n <= 2:
		s.Type, s.VolumeModifier, s.IntensityModifier = domain.PeriodRamp, 0.70, 0.85
	case n <= 8:
		s.Type, s.VolumeModifier, s.IntensityModifier = domain.PeriodNormal, 1.0, 1.0
	case n <= 11:
		s.Type, s.VolumeModifier, s.IntensityModifier = domain.PeriodOverload, 1.10, 1.05
	default:
		s.Type, s.VolumeModifier, s.IntensityModifier = domain.PeriodDeload, 0.60, 0.70
	}
	return s
}

// MaxVolumeModifier bounds every period's volume modifier.
const MaxVolumeModifier = 1.10

// Layout is the weekly day template for one frequency. Labels has one entry
// per day; rest days carry LabelRest.
type Layout struct {
	Frequency domain.Frequency
	Labels    [domain.DaysPerPeriod]domain.DayLabel
}

const rest = domain.LabelRest

var layouts = map[domain.Frequency]Layout{
	domain.Freq2FullBody: {domain.Freq2FullBody, [7]domain.DayLabel{
		domain.LabelFullBody, rest, rest, domain.LabelFullBody, rest, rest, rest}},
	domain.Freq3FullBody: {domain.Freq3FullBody, [7]domain.DayLabel{
		domain.LabelFullBody, rest, domain.LabelFullBody, rest, domain.LabelFullBody, rest, rest}},
	domain.Freq4UpperLower: {domain.Freq4UpperLower, [7]domain.DayLabel{
		domain.LabelUpper, domain.LabelLower, rest, domain.LabelUpper, domain.LabelLower, rest, rest}},
	domain.Freq5Hybrid: {domain.Freq5Hybrid, [7]domain.DayLabel{
		domain.LabelPush, domain.LabelPull, domain.LabelLegs, rest, domain.LabelUpper, domain.LabelLower, rest}},
	domain.Freq6PPL: {domain.Freq6PPL, [7]domain.DayLabel{
		domain.LabelPush, domain.LabelPull, domain.LabelLegs, domain.LabelPush, domain.LabelPull, domain.LabelLegs, rest}},
}

// LayoutFor returns the template for a frequency.
func LayoutFor(f domain.Frequency) (Layout, error) {
	l, ok := layouts[f]
	if !ok {
		return Layout{}, fmt.Errorf("unknown frequency %q", f)
	}
	return l, nil
}

// Frequencies returns every supported frequency in training-day order.
func Frequencies() []domain.Frequency {
	return []domain.Frequency{
		domain.Freq2FullBody, domain.Freq3FullBody, domain.Freq4UpperLower,
		domain.Freq5Hybrid, domain.Freq6PPL,
	}
}

// TrainingDays returns the indexes of non-rest days.
func (l Layout) TrainingDays() []int {
	var out []int
	for i, label := range l.Labels {
		if label != rest {
			out = append(out, i)
		}
	}
	return out
}

// DaysPerWeek is the number of training days in the template.
func (l Layout) DaysPerWeek() int {
	return len(l.TrainingDays())
}

// Plan is the full skeleton: 12 periods of 7 days each, without exercises.
func Plan(layout Layout, start time.Time) []domain.Period {
	periods := make([]domain.Period, 0, domain.PeriodsPerProgram)
	for n := 1; n <= domain.PeriodsPerProgram; n++ {
		sk := BuildPeriodSkeleton(n)
		p := domain.Period{
			Number:            n,
			Type:              sk.Type,
			VolumeModifier:    sk.VolumeModifier,
			IntensityModifier: sk.IntensityModifier,
			StartDate:         start.AddDate(0, 0, (n-1)*domain.DaysPerPeriod),
			Days:              make([]domain.Day, domain.DaysPerPeriod),
		}
		for i, label := range layout.Labels {
			p.Days[i] = domain.Day{Index: i, Label: label, Rest: label == rest}
		}
		periods = append(periods, p)
	}
	return periods
}

// NextMonday returns the first Monday strictly after now, at midnight UTC.
func NextMonday(now time.Time) time.Time {
	d := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	ahead := (int(time.Monday) - int(d.Weekday()) + 7) % 7
	if ahead == 0 {
		ahead = 7
	}
	return d.AddDate(0, 0, ahead)
}

// EndDate is exactly twelve weeks after start.
func EndDate(start time.Time) time.Time {
	return start.AddDate(0, 0, domain.PeriodsPerProgram*domain.DaysPerPeriod)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
