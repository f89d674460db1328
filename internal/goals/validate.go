package goals

import (
	"fmt"

	"github.com/alexanderramin/mesoforge/internal/domain"
)

// Validate checks archetype definitions. Returns a slice of all validation
// errors found.
func Validate(cfgs []ArchetypeConfig) []error {
	var errs []error

	if len(cfgs) == 0 {
		errs = append(errs, fmt.Errorf("archetypes: at least one entry is required"))
	}

	ids := make(map[string]bool)
	for i, c := range cfgs {
		prefix := fmt.Sprintf("archetypes[%d]", i)

		id := domain.NormalizeName(c.ID)
		if id == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if ids[id] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, c.ID))
		} else {
			ids[id] = true
		}

		if len(c.Priority) == 0 {
			errs = append(errs, fmt.Errorf("%s.priority: at least one muscle is required", prefix))
		}
		if c.WeeklySets < 0 {
			errs = append(errs, fmt.Errorf("%s.weekly_sets cannot be negative", prefix))
		}

		priority := make(map[string]bool)
		for _, m := range c.Priority {
			priority[domain.NormalizeName(m)] = true
		}
		for _, m := range c.Maintenance {
			if priority[domain.NormalizeName(m)] {
				errs = append(errs, fmt.Errorf("%s: muscle %q is both priority and maintenance", prefix, m))
			}
		}
	}

	return errs
}
