package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/mesoforge/internal/contract"
)

// FormatExerciseList renders catalog entries.
func FormatExerciseList(entries []contract.CatalogEntry) string {
	headers := []string{"NAME", "MUSCLE", "EQUIPMENT", "STRETCH", "TAGS"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		equipment := e.Equipment
		if e.MachineBrand != "" {
			equipment = fmt.Sprintf("%s (%s)", equipment, e.MachineBrand)
		}
		if equipment == "" {
			equipment = Dim("--")
		}
		stretch := Dim("·")
		if e.StretchBonus {
			stretch = StyleGreen.Render("✔")
		}
		rows = append(rows, []string{
			Bold(e.Name),
			StylePurple.Render(e.PrimaryMuscle),
			equipment,
			stretch,
			JoinOrDash(e.Tags),
		})
	}
	return RenderBox(fmt.Sprintf("Catalog (%d)", len(entries)), RenderTable(headers, rows))
}

// FormatGoalList renders the goal archetypes.
func FormatGoalList(goals []contract.GoalView) string {
	var b strings.Builder
	for i, g := range goals {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s  %s  %s\n", Bold(g.Name), Dim(g.ID), Dim(fmt.Sprintf("%d sets/wk", g.WeeklySets)))
		if g.Description != "" {
			fmt.Fprintf(&b, "%s\n", StyleFg.Render(g.Description))
		}
		fmt.Fprintf(&b, "  %s %s\n", StyleYellow.Render("priority   "), JoinOrDash(g.PriorityMuscles))
		fmt.Fprintf(&b, "  %s %s\n", StyleDim.Render("maintenance"), JoinOrDash(g.MaintenanceMuscles))
	}
	return RenderBox("Goals", strings.TrimRight(b.String(), "\n"))
}

// FormatImportResult summarises a catalog import.
func FormatImportResult(r *contract.ImportResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d exercises\n", StyleGreen.Render("✔ Imported"), r.Imported)
	for _, n := range r.Names {
		fmt.Fprintf(&b, "  %s %s\n", Dim("+"), n)
	}
	return strings.TrimRight(b.String(), "\n")
}
