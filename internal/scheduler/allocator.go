package scheduler

import "math"

// MinSetsPerExercise is the floor applied when a group's sets are split.
const MinSetsPerExercise = 2

// DefaultPriorityRatio is the share of session volume given to priority
// muscles.
const DefaultPriorityRatio = 0.80

// SessionAllocation is the set budget for one training day.
type SessionAllocation struct {
	SessionSets     int
	PrioritySets    int
	MaintenanceSets int
}

// truncEpsilon absorbs float error in the modifiers before truncation.
const truncEpsilon = 1e-9

// AllocateSession splits the weekly budget across training days, truncating
// toward zero, and then into priority and maintenance shares. Maintenance
// always takes the remainder so the two shares add up to the session total.
func AllocateSession(weeklySets, daysPerWeek int, volumeModifier, priorityRatio float64) SessionAllocation {
	if daysPerWeek <= 0 || weeklySets <= 0 {
		return SessionAllocation{}
	}
	session := int(float64(weeklySets)/float64(daysPerWeek)*volumeModifier + truncEpsilon)
	if session < 0 {
		session = 0
	}
	priority := clamp(int(math.Round(float64(session)*priorityRatio)), 0, session)
	return SessionAllocation{
		SessionSets:     session,
		PrioritySets:    priority,
		MaintenanceSets: session - priority,
	}
}

// SetsPerExercise divides a group's sets evenly, truncating, with a floor of
// MinSetsPerExercise. An empty group gets nothing.
func SetsPerExercise(groupSets, exercises int) int {
	if exercises <= 0 {
		return 0
	}
	return max(MinSetsPerExercise, groupSets/exercises)
}

func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
