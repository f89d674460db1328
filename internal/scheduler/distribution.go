package scheduler

import "github.com/alexanderramin/mesoforge/internal/domain"

var (
	pushMuscles = []string{"chest", "shoulders", "front delts", "side delts", "triceps"}
	pullMuscles = []string{"back", "lats", "upper back", "biceps", "rear delts", "traps", "forearms"}
	legMuscles  = []string{"quads", "hamstrings", "glutes", "calves", "adductors", "abductors", "core", "abs", "obliques"}
)

var regionOf = func() map[string]domain.DayLabel {
	m := make(map[string]domain.DayLabel)
	for _, mu := range pushMuscles {
		m[mu] = domain.LabelPush
	}
	for _, mu := range pullMuscles {
		m[mu] = domain.LabelPull
	}
	for _, mu := range legMuscles {
		m[mu] = domain.LabelLegs
	}
	return m
}()

// LabelAccepts reports whether a day with the given label trains the muscle.
// Muscles outside the known regions are accepted everywhere.
func LabelAccepts(label domain.DayLabel, muscle string) bool {
	region, known := regionOf[domain.NormalizeName(muscle)]
	if !known {
		return label != domain.LabelRest
	}
	switch label {
	case domain.LabelFullBody:
		return true
	case domain.LabelUpper:
		return region == domain.LabelPush || region == domain.LabelPull
	case domain.LabelLower:
		return region == domain.LabelLegs
	case domain.LabelPush, domain.LabelPull, domain.LabelLegs:
		return region == label
	default:
		return false
	}
}

// Distribute assigns a group of exercises, identified by their target
// muscles, to training days. labels holds one entry per training day in week
// order; the result holds the indexes into muscles for each of those days.
//
// Days sharing a label split that label's eligible items round-robin. A day
// left empty while its label has eligible items repeats one of them.
func Distribute(muscles []string, labels []domain.DayLabel) [][]int {
	out := make([][]int, len(labels))

	positions := make(map[domain.DayLabel][]int)
	var order []domain.DayLabel
	for i, l := range labels {
		if _, seen := positions[l]; !seen {
			order = append(order, l)
		}
		positions[l] = append(positions[l], i)
	}

	for _, label := range order {
		days := positions[label]
		var eligible []int
		for j, m := range muscles {
			if LabelAccepts(label, m) {
				eligible = append(eligible, j)
			}
		}
		if len(eligible) == 0 {
			continue
		}
		for n, j := range eligible {
			k := n % len(days)
			out[days[k]] = append(out[days[k]], j)
		}
		for k, pos := range days {
			if len(out[pos]) == 0 {
				out[pos] = []int{eligible[k%len(eligible)]}
			}
		}
	}
	return out
}
