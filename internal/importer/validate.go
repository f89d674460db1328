package importer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/mesoforge/internal/domain"
)

var validEquipment = map[string]bool{
	"barbell":    true,
	"dumbbell":   true,
	"machine":    true,
	"cable":      true,
	"smith":      true,
	"bodyweight": true,
	"bands":      true,
	"kettlebell": true,
	"bench":      true,
	"pullup_bar": true,
}

// EquipmentTypes lists the accepted equipment values in sorted order.
func EquipmentTypes() []string {
	out := make([]string, 0, len(validEquipment))
	for k := range validEquipment {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// ValidateCatalogSchema checks the seed for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateCatalogSchema(schema *CatalogSchema) []error {
	var errs []error

	if len(schema.Exercises) == 0 {
		errs = append(errs, fmt.Errorf("exercises: at least one entry is required"))
	}

	names := make(map[string]int)
	for i, e := range schema.Exercises {
		prefix := fmt.Sprintf("exercises[%d]", i)

		name := domain.NormalizeName(e.Name)
		if name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		} else if first, ok := names[name]; ok {
			errs = append(errs, fmt.Errorf("%s.name: duplicate name %q (first at exercises[%d])", prefix, e.Name, first))
		} else {
			names[name] = i
		}

		if strings.TrimSpace(e.PrimaryMuscle) == "" {
			errs = append(errs, fmt.Errorf("%s.primary_muscle is required", prefix))
		}
		if e.Equipment != "" && !validEquipment[strings.ToLower(e.Equipment)] {
			errs = append(errs, fmt.Errorf("%s.equipment: invalid value %q", prefix, e.Equipment))
		}

		errs = append(errs, validateList(prefix+".secondary_muscles", e.SecondaryMuscles)...)
		errs = append(errs, validateList(prefix+".tags", e.Tags)...)

		if e.Machine != nil {
			if strings.TrimSpace(e.Machine.Brand) == "" {
				errs = append(errs, fmt.Errorf("%s.machine.brand is required", prefix))
			}
			if e.Equipment != "" && !strings.EqualFold(e.Equipment, "machine") {
				errs = append(errs, fmt.Errorf("%s.machine: equipment must be \"machine\", got %q", prefix, e.Equipment))
			}
		}
	}

	return errs
}

// List values are stored comma-joined, so entries may not contain commas.
func validateList(field string, items []string) []error {
	var errs []error
	for i, item := range items {
		switch {
		case strings.TrimSpace(item) == "":
			errs = append(errs, fmt.Errorf("%s[%d] is empty", field, i))
		case strings.Contains(item, ","):
			errs = append(errs, fmt.Errorf("%s[%d]: %q must not contain commas", field, i, item))
		}
	}
	return errs
}
