package domain

import (
	"strings"
	"time"
)

// MachineSpec describes the machine an exercise is performed on.
type MachineSpec struct {
	ExerciseID        string
	Brand             string
	ResistanceProfile string
}

// Exercise is a catalog entry. The engine never mutates one.
type Exercise struct {
	ID               string
	Name             string
	Category         string
	PrimaryMuscle    string
	SecondaryMuscles []string
	EquipmentType    string
	StretchBonus     bool
	Tags             []string
	Machine          *MachineSpec
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NormalizedName returns the lower-cased, whitespace-collapsed name used for
// fragment matching.
func (e *Exercise) NormalizedName() string {
	return normalize(e.Name)
}

// HasTag reports whether the exercise carries the given tag.
func (e *Exercise) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Tagged reports whether the entry carries any tags at all. Untagged entries
// fall back to name-fragment matching.
func (e *Exercise) Tagged() bool {
	return len(e.Tags) > 0
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// NormalizeName exposes the normalization used for catalog names.
func NormalizeName(s string) string {
	return normalize(s)
}
