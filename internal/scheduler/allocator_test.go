package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllocateSession_NormalPeriod(t *testing.T) {
	a := AllocateSession(60, 4, 1.0, DefaultPriorityRatio)
	assert.Equal(t, 15, a.SessionSets)
	assert.Equal(t, 12, a.PrioritySets)
	assert.Equal(t, 3, a.MaintenanceSets)
}

func TestAllocateSession_TruncatesSessionTotal(t *testing.T) {
	// 50/4*0.7 = 8.75 -> 8; 8*0.8 = 6.4 -> 6
	a := AllocateSession(50, 4, 0.70, DefaultPriorityRatio)
	assert.Equal(t, 8, a.SessionSets)
	assert.Equal(t, 6, a.PrioritySets)
	assert.Equal(t, 2, a.MaintenanceSets)

	// 30/4 = 7.5 -> 7
	a = AllocateSession(30, 4, 1.0, DefaultPriorityRatio)
	assert.Equal(t, 7, a.SessionSets)

	// 60/4*1.1 = 16.5 -> 16
	a = AllocateSession(60, 4, 1.10, DefaultPriorityRatio)
	assert.Equal(t, 16, a.SessionSets)
	assert.Equal(t, 13, a.PrioritySets)
}

func TestAllocateSession_ExactProductsSurviveFloatError(t *testing.T) {
	cases := []struct {
		weekly, days int
		mod          float64
		want         int
	}{
		{60, 3, 0.70, 14},
		{60, 3, 0.60, 12},
		{60, 3, 1.10, 22},
		{40, 2, 0.70, 14},
		{50, 5, 1.10, 11},
	}
	for _, tc := range cases {
		a := AllocateSession(tc.weekly, tc.days, tc.mod, DefaultPriorityRatio)
		assert.Equal(t, tc.want, a.SessionSets, "%d/%d*%.2f", tc.weekly, tc.days, tc.mod)
	}
}

func TestAllocateSession_Degenerate(t *testing.T) {
	assert.Equal(t, SessionAllocation{}, AllocateSession(40, 0, 1.0, 0.8))
	assert.Equal(t, SessionAllocation{}, AllocateSession(0, 3, 1.0, 0.8))

	a := AllocateSession(1, 6, 0.6, 0.8)
	assert.Equal(t, 0, a.SessionSets)
	assert.Equal(t, 0, a.PrioritySets+a.MaintenanceSets)
}

func TestAllocateSession_RatioBounds(t *testing.T) {
	a := AllocateSession(40, 2, 1.0, 1.5)
	assert.Equal(t, a.SessionSets, a.PrioritySets, "priority never exceeds the session")
	assert.Equal(t, 0, a.MaintenanceSets)
}

func TestSetsPerExercise(t *testing.T) {
	cases := []struct {
		group, n, want int
	}{
		{12, 4, 3},
		{12, 5, 2},
		{13, 4, 3},
		{3, 2, 2},
		{0, 3, 2},
		{1, 1, 2},
		{10, 0, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SetsPerExercise(tc.group, tc.n), "group=%d n=%d", tc.group, tc.n)
	}
}
