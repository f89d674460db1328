package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/mesoforge/internal/contract"
	"github.com/alexanderramin/mesoforge/internal/domain"
)

// FormatBrief renders the pre-session brief.
func FormatBrief(b contract.BriefResponse) string {
	var out strings.Builder
	fmt.Fprintf(&out, "%s  %s\n", BandIndicator(b.Band), Dim(fmt.Sprintf("readiness %d/100", b.Readiness)))
	fmt.Fprintf(&out, "%s\n", StyleFg.Render(b.Message))
	fmt.Fprintf(&out, "%s  %s\n", StyleDim.Render("FOCUS"), b.Focus)

	if b.CycleNote != "" {
		fmt.Fprintf(&out, "\n%s\n", StylePurple.Render(b.CycleNote))
	}

	if len(b.Warnings) > 0 {
		out.WriteString("\n" + Header("Anatomical warnings") + "\n")
		for _, w := range b.Warnings {
			fmt.Fprintf(&out, "%s %s → %s\n   %s\n",
				StyleYellow.Render("!"), Bold(w.Exercise), StyleGreen.Render(w.Alternative), Dim(w.Reason))
		}
	}
	return RenderBox("Session brief", strings.TrimRight(out.String(), "\n"))
}

// FormatSessionPlan renders a planned day followed by its brief.
func FormatSessionPlan(p *contract.SessionPlanResponse, priorityRatio float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s",
		Bold(fmt.Sprintf("Period %d", p.Period)), PeriodTypeBadge(p.PeriodType))
	if p.CycleAdjusted {
		b.WriteString("  " + StylePurple.Render("cycle adjusted"))
	}
	b.WriteString("\n\n")
	b.WriteString(FormatDay(p.Day, priorityRatio))
	if !p.Day.Rest {
		b.WriteString("\n" + FormatRationale(p.Day))
	}
	return RenderBox("Session plan", strings.TrimRight(b.String(), "\n")) + "\n" + FormatBrief(p.Brief)
}

// FormatSetLogged confirms a logged set and, when the kill switch tripped,
// the actions the session must take.
func FormatSetLogged(r *contract.LogSetResponse) string {
	if !r.Autostopped {
		return StyleGreen.Render("✔ Set logged") + " " + TruncID(r.ID)
	}
	return StyleRed.Render("■ Set autostopped") + " " + TruncID(r.ID) + "\n" + formatActions(r.Actions)
}

// FormatFatigueCheck renders a kill-switch evaluation.
func FormatFatigueCheck(r contract.FatigueCheckResponse) string {
	reading := fmt.Sprintf("velocity loss %.1f%% (limit %.0f%%)", r.VelocityLossPct, r.Limit)
	if !r.Stop {
		return StyleGreen.Render("● CONTINUE") + "  " + Dim(reading)
	}
	return StyleRed.Render("■ STOP") + "  " + Dim(reading) + "\n" + formatActions(r.Actions)
}

func formatActions(actions []string) string {
	var b strings.Builder
	for _, a := range actions {
		fmt.Fprintf(&b, "  %s %s\n", StyleRed.Render("→"), a)
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatSetLogs renders the sets logged for one day.
func FormatSetLogs(logs []*domain.SetLog) string {
	headers := []string{"#", "SET", "REPS", "RPE", "VL%", "LOGGED"}
	rows := make([][]string, 0, len(logs))
	for _, l := range logs {
		rpe, vl := Dim("--"), Dim("--")
		if l.RPE != nil {
			rpe = fmt.Sprintf("%.1f", *l.RPE)
		}
		if l.VelocityLossPct != nil {
			vl = fmt.Sprintf("%.1f", *l.VelocityLossPct)
			if l.Autostopped {
				vl = StyleRed.Render(vl + " ■")
			}
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", l.ExerciseOrder),
			fmt.Sprintf("%d", l.SetNumber),
			fmt.Sprintf("%d", l.Reps),
			rpe,
			vl,
			l.LoggedAt.Local().Format("15:04"),
		})
	}
	return RenderTable(headers, rows)
}
