package importer

import (
	"strings"
	"time"

	"github.com/alexanderramin/mesoforge/internal/domain"
	"github.com/google/uuid"
)

// Convert transforms a validated CatalogSchema into exercises ready for
// persistence. Call ValidateCatalogSchema first; Convert assumes the schema is
// valid.
func Convert(schema *CatalogSchema) []*domain.Exercise {
	now := time.Now().UTC()
	out := make([]*domain.Exercise, 0, len(schema.Exercises))

	for _, in := range schema.Exercises {
		e := &domain.Exercise{
			ID:               uuid.New().String(),
			Name:             strings.TrimSpace(in.Name),
			Category:         strings.TrimSpace(in.Category),
			PrimaryMuscle:    lowerTrim(in.PrimaryMuscle),
			SecondaryMuscles: lowerAll(in.SecondaryMuscles),
			EquipmentType:    lowerTrim(in.Equipment),
			StretchBonus:     in.StretchBonus,
			Tags:             lowerAll(in.Tags),
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if e.Category == "" {
			e.Category = "strength"
		}
		if in.Machine != nil {
			e.EquipmentType = "machine"
			e.Machine = &domain.MachineSpec{
				ExerciseID:        e.ID,
				Brand:             strings.TrimSpace(in.Machine.Brand),
				ResistanceProfile: strings.TrimSpace(in.Machine.ResistanceProfile),
			}
		}
		out = append(out, e)
	}

	return out
}

func lowerTrim(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func lowerAll(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = lowerTrim(s)
	}
	return out
}
