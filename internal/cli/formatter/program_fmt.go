package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/mesoforge/internal/contract"
)

var weekdays = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// DayName returns the weekday for a day index; programs start on Monday.
func DayName(index int) string {
	if index < 0 || index >= len(weekdays) {
		return fmt.Sprintf("Day %d", index)
	}
	return weekdays[index]
}

// FormatProgramList renders stored program headers inside a bordered box.
func FormatProgramList(programs []contract.ProgramSummary, now time.Time) string {
	headers := []string{"ID", "GOAL", "FREQUENCY", "SETS/WK", "START", "STATUS"}
	rows := make([][]string, 0, len(programs))
	for _, p := range programs {
		start, _ := time.Parse(contract.DateLayout, p.StartDate)
		end, _ := time.Parse(contract.DateLayout, p.EndDate)
		rows = append(rows, []string{
			TruncID(p.ID),
			Bold(p.GoalName),
			StylePurple.Render(p.Frequency),
			fmt.Sprintf("%d", p.WeeklySets),
			p.StartDate,
			ProgramStatus(start, end, now),
		})
	}
	return RenderBox("Programs", RenderTable(headers, rows))
}

// FormatProgramOverview renders the program header and one row per period.
func FormatProgramOverview(p *contract.ProgramView) string {
	var b strings.Builder
	b.WriteString(programHeader(p))
	b.WriteString("\n\n")

	headers := []string{"PERIOD", "TYPE", "VOLUME", "INTENSITY", "STARTS", "SESSIONS", "SETS"}
	rows := make([][]string, 0, len(p.Periods))
	for _, period := range p.Periods {
		sessions, sets := 0, 0
		for _, d := range period.Days {
			if !d.Rest {
				sessions++
				sets += d.SessionSets
			}
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", period.Number),
			PeriodTypeBadge(period.Type),
			FormatModifier(period.VolumeModifier),
			FormatModifier(period.IntensityModifier),
			period.StartDate,
			fmt.Sprintf("%d", sessions),
			fmt.Sprintf("%d", sets),
		})
	}
	b.WriteString(RenderTable(headers, rows))
	return RenderBox(p.GoalName, b.String())
}

func programHeader(p *contract.ProgramView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render("ID       "), StyleFg.Render(p.ID))
	fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render("FREQUENCY"), StylePurple.Render(p.Frequency))
	fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render("SEX      "), p.Sex)
	if p.Morphotype != "" {
		fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render("BUILD    "), p.Morphotype)
	}
	fmt.Fprintf(&b, "%s  %d per week, %d prescriptions\n", StyleDim.Render("VOLUME   "), p.WeeklySets, p.ExerciseCount)
	fmt.Fprintf(&b, "%s  %s → %s", StyleDim.Render("DATES    "), p.StartDate, p.EndDate)
	return b.String()
}

// FormatPeriod renders every day of one period with its prescriptions.
func FormatPeriod(period contract.PeriodView, priorityRatio float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s  %s\n\n",
		PeriodTypeBadge(period.Type),
		Dim("volume "+FormatModifier(period.VolumeModifier)),
		Dim("intensity "+FormatModifier(period.IntensityModifier)))

	for i, d := range period.Days {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(FormatDay(d, priorityRatio))
	}
	return RenderBox(fmt.Sprintf("Period %d", period.Number), strings.TrimRight(b.String(), "\n"))
}

// FormatDay renders one day: a dim line for rest days, otherwise a header with
// the set split and a table of exercises.
func FormatDay(d contract.DayView, priorityRatio float64) string {
	name := DayName(d.Index)
	if d.Rest {
		return fmt.Sprintf("%s  %s\n", Bold(name), Dim("rest"))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s  %s  %s\n",
		Bold(name),
		StylePurple.Render(d.Label),
		Dim(fmt.Sprintf("%d sets, ~%s", d.SessionSets, FormatMinutes(d.EstimatedMinutes))),
		RenderShare(d.PrioritySets, d.SessionSets, priorityRatio, 10))

	headers := []string{"#", "EXERCISE", "MUSCLE", "SETS", "REPS", "RPE", "REST", "TEMPO"}
	rows := make([][]string, 0, len(d.Exercises))
	for _, e := range d.Exercises {
		exercise := e.Name
		if e.IsPriority {
			exercise = StyleYellow.Render("★ ") + Bold(e.Name)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", e.Order),
			exercise,
			e.Muscle,
			fmt.Sprintf("%d", e.Sets),
			e.RepRange,
			fmt.Sprintf("%.1f", e.RPE),
			FormatRest(e.RestSeconds),
			e.Tempo,
		})
	}
	b.WriteString(RenderTable(headers, rows))
	return b.String()
}

// FormatRationale lists the per-exercise reasoning for a day.
func FormatRationale(d contract.DayView) string {
	var b strings.Builder
	for _, e := range d.Exercises {
		fmt.Fprintf(&b, "%s %s\n", Bold(fmt.Sprintf("%d.", e.Order)), e.Why)
		if e.PriorityJustification != "" {
			fmt.Fprintf(&b, "   %s\n", Dim(e.PriorityJustification))
		}
	}
	return b.String()
}
