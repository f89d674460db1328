package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alexanderramin/mesoforge/internal/cli/formatter"
	"github.com/alexanderramin/mesoforge/internal/domain"
	"github.com/alexanderramin/mesoforge/internal/importer"
	"github.com/alexanderramin/mesoforge/internal/periodization"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func mesoforgeHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// generateAnswers collects the wizard fields; ratios stay as text until the
// form completes.
type generateAnswers struct {
	goal, frequency, sex, morphotype string
	equipment                        []string
	femurTorso                       string
}

// generateForm builds the interactive program wizard. Fields already set on
// answers are used as defaults.
func generateForm(ctx context.Context, app *App, a *generateAnswers) *huh.Form {
	goalOptions := make([]huh.Option[string], 0)
	for _, g := range app.Goals.List(ctx) {
		goalOptions = append(goalOptions, huh.NewOption(fmt.Sprintf("%s (%s)", g.Name, g.ID), g.ID))
	}

	freqOptions := make([]huh.Option[string], 0)
	for _, f := range periodization.Frequencies() {
		freqOptions = append(freqOptions, huh.NewOption(string(f), string(f)))
	}
	if a.frequency == "" {
		a.frequency = string(domain.Freq3FullBody)
	}
	if a.sex == "" {
		a.sex = string(domain.SexOther)
	}

	morphoOptions := []huh.Option[string]{huh.NewOption("Not measured", "")}
	for _, m := range []domain.Morphotype{
		domain.MorphoBalanced, domain.MorphoLongLimbed, domain.MorphoShortTorso,
		domain.MorphoLongTorso, domain.MorphoLongArms, domain.MorphoShortArms,
	} {
		morphoOptions = append(morphoOptions, huh.NewOption(string(m), string(m)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Goal").
				Options(goalOptions...).
				Value(&a.goal),
			huh.NewSelect[string]().
				Title("Training frequency").
				Options(freqOptions...).
				Value(&a.frequency),
			huh.NewSelect[string]().
				Title("Sex").
				Options(
					huh.NewOption("Female", string(domain.SexFemale)),
					huh.NewOption("Male", string(domain.SexMale)),
					huh.NewOption("Prefer not to say", string(domain.SexOther)),
				).
				Value(&a.sex),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Available equipment").
				Description("Leave empty for a fully equipped gym").
				Options(huh.NewOptions(importer.EquipmentTypes()...)...).
				Value(&a.equipment),
			huh.NewSelect[string]().
				Title("Build").
				Options(morphoOptions...).
				Value(&a.morphotype),
			huh.NewInput().
				Title("Femur to torso ratio (blank to skip)").
				Placeholder("1.0").
				Value(&a.femurTorso).
				Validate(validateOptionalRatio),
		),
	).WithTheme(mesoforgeHuhTheme()).WithShowHelp(false)
}

// validateOptionalRatio accepts empty or a positive number.
func validateOptionalRatio(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

// wizardConfirm creates a huh form for a yes/no confirmation.
func wizardConfirm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(mesoforgeHuhTheme()).WithShowHelp(false)
}
