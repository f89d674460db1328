package scheduler

import "sort"

// Slot is one exercise placed on a day, before prescription values are
// filled in.
type Slot struct {
	ExerciseID string
	Name       string
	Muscle     string
	Priority   bool
	Secondary  bool
	// Sequence is the position in the program-wide selection order.
	Sequence int
}

// CanonicalSort orders a day's slots deterministically:
// 1. Priority before maintenance
// 2. Selection sequence ascending
// 3. Primary before secondary selection
// 4. Name, then exercise ID, lexical ascending
func CanonicalSort(slots []Slot) {
	sort.SliceStable(slots, func(i, j int) bool {
		a, b := slots[i], slots[j]

		if a.Priority != b.Priority {
			return a.Priority
		}

		if a.Sequence != b.Sequence {
			return a.Sequence < b.Sequence
		}

		if a.Secondary != b.Secondary {
			return !a.Secondary
		}

		if a.Name != b.Name {
			return a.Name < b.Name
		}

		return a.ExerciseID < b.ExerciseID
	})
}
