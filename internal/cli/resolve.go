package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveProgramID accepts a full program ID, a unique ID prefix or
// "latest" for the most recently generated program.
func resolveProgramID(ctx context.Context, app *App, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("program ID is required")
	}

	programs, err := app.Programs.List(ctx)
	if err != nil {
		return "", err
	}

	if strings.EqualFold(input, "latest") {
		if len(programs) == 0 {
			return "", fmt.Errorf("no programs stored")
		}
		return programs[0].ID, nil
	}

	for _, p := range programs {
		if p.ID == input {
			return p.ID, nil
		}
	}

	var matches []string
	for _, p := range programs {
		if strings.HasPrefix(p.ID, strings.ToLower(input)) {
			matches = append(matches, p.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("program not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("program ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
