package selector

import "github.com/alexanderramin/mesoforge/internal/domain"

// WaistThickeningFragments are dropped for female users on top of the goal's
// own female list.
var WaistThickeningFragments = []string{
	"side bend",
	"weighted oblique",
	"oblique crunch",
	"russian twist",
	"landmine rotation",
}

// WaistThickeningTag marks tagged entries that load the obliques directly.
const WaistThickeningTag = "waist_thickening"

// ExclusionRules is the goal's banned list resolved for one user's sex.
type ExclusionRules struct {
	fragments []string
	female    bool
}

// NewExclusionRules combines the goal's banned fragments with the
// sex-specific list.
func NewExclusionRules(goal domain.GoalArchetype, sex domain.Sex) ExclusionRules {
	r := ExclusionRules{
		fragments: append([]string(nil), goal.BannedFragments...),
		female:    sex == domain.SexFemale,
	}
	if r.female {
		r.fragments = append(r.fragments, goal.FemaleBannedFragments...)
		r.fragments = append(r.fragments, WaistThickeningFragments...)
	}
	return r
}

// Fragments returns every banned name fragment in effect.
func (r ExclusionRules) Fragments() []string {
	return append([]string(nil), r.fragments...)
}

// Excludes reports whether an exercise may never be prescribed.
func (r ExclusionRules) Excludes(e *domain.Exercise) bool {
	if domain.ContainsAny(e.Name, r.fragments) {
		return true
	}
	return r.female && e.HasTag(WaistThickeningTag)
}

// ExcludesName is the name-only check, used to audit assembled programs.
func (r ExclusionRules) ExcludesName(name string) bool {
	return domain.ContainsAny(name, r.fragments)
}

func (r ExclusionRules) filter(list []*domain.Exercise) []*domain.Exercise {
	var out []*domain.Exercise
	for _, e := range list {
		if !r.Excludes(e) {
			out = append(out, e)
		}
	}
	return out
}
