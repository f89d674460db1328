package contract

import "github.com/alexanderramin/mesoforge/internal/domain"

type CatalogEntry struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Category         string   `json:"category"`
	PrimaryMuscle    string   `json:"primary_muscle"`
	SecondaryMuscles []string `json:"secondary_muscles,omitempty"`
	Equipment        string   `json:"equipment,omitempty"`
	StretchBonus     bool     `json:"stretch_bonus"`
	Tags             []string `json:"tags,omitempty"`
	MachineBrand     string   `json:"machine_brand,omitempty"`
}

func NewCatalogEntry(e *domain.Exercise) CatalogEntry {
	out := CatalogEntry{
		ID:               e.ID,
		Name:             e.Name,
		Category:         e.Category,
		PrimaryMuscle:    e.PrimaryMuscle,
		SecondaryMuscles: e.SecondaryMuscles,
		Equipment:        e.EquipmentType,
		StretchBonus:     e.StretchBonus,
		Tags:             e.Tags,
	}
	if e.Machine != nil {
		out.MachineBrand = e.Machine.Brand
	}
	return out
}

// ImportResult holds the outcome of a catalog import.
type ImportResult struct {
	Imported int      `json:"imported"`
	Names    []string `json:"names"`
}

type GoalView struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Description        string   `json:"description,omitempty"`
	PriorityMuscles    []string `json:"priority_muscles"`
	MaintenanceMuscles []string `json:"maintenance_muscles"`
	WeeklySets         int      `json:"weekly_sets"`
}

func NewGoalView(g domain.GoalArchetype) GoalView {
	return GoalView{
		ID:                 g.ID,
		Name:               g.Name,
		Description:        g.Description,
		PriorityMuscles:    g.PriorityMuscles,
		MaintenanceMuscles: g.MaintenanceMuscles,
		WeeklySets:         g.WeeklySets,
	}
}
