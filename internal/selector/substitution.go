package selector

import (
	"github.com/alexanderramin/mesoforge/internal/constraint"
	"github.com/alexanderramin/mesoforge/internal/domain"
)

// Substitution records an anatomical swap made during selection.
type Substitution struct {
	Rule     string
	Original string
	Muscle   string
}

type substitutionRule struct {
	name      string
	applies   func(p *domain.AnatomicalProfile) bool
	pattern   domain.Pattern
	muscle    string
	equipment []string
	keywords  []string
}

var (
	overheadBarbellPattern = domain.Pattern{
		Tag:     "overhead_barbell",
		Include: []string{"military press", "overhead press", "barbell shoulder press", "ohp"},
		Exclude: []string{"dumbbell", "db", "machine", "landmine"},
	}
	backSquatPattern = domain.Pattern{
		Tag:     "back_squat",
		Include: []string{"back squat", "barbell squat", "high bar squat", "low bar squat"},
	}
	shortTorsoSquatPattern = domain.Pattern{
		Tag:         "squat",
		ExcludeTags: []string{"front_squat", "split_squat"},
		Include:     []string{"squat"},
		Exclude:     []string{"front", "split", "bulgarian"},
	}
	deadliftPattern = domain.Pattern{
		Tag:         "deadlift",
		ExcludeTags: []string{"romanian_deadlift"},
		Include:     []string{"deadlift"},
		Exclude:     []string{"romanian", "rdl"},
	}
	dipPattern = domain.Pattern{
		Tag:     "dip",
		Include: []string{"dip"},
	}
)

func morphotypeIn(types ...domain.Morphotype) func(*domain.AnatomicalProfile) bool {
	return func(p *domain.AnatomicalProfile) bool {
		for _, t := range types {
			if p.Morphotype == t {
				return true
			}
		}
		return false
	}
}

// Evaluated top to bottom; the first rule whose profile test and pattern both
// match is used.
var substitutionRules = []substitutionRule{
	{
		name:      "long_arms_bench",
		applies:   morphotypeIn(domain.MorphoLongArms, domain.MorphoLongLimbed),
		pattern:   constraint.BarbellBenchPattern,
		muscle:    "chest",
		equipment: []string{"dumbbell", "machine"},
		keywords:  []string{"dumbbell bench", "db bench", "incline db"},
	},
	{
		name:      "long_arms_overhead",
		applies:   morphotypeIn(domain.MorphoLongArms, domain.MorphoLongLimbed),
		pattern:   overheadBarbellPattern,
		muscle:    "shoulders",
		equipment: []string{"dumbbell", "machine"},
	},
	{
		name: "long_femur_squat",
		applies: func(p *domain.AnatomicalProfile) bool {
			return p.Morphotype == domain.MorphoLongLimbed ||
				domain.RatioAbove(p.FemurToTorso, constraint.FemurTorsoLimit)
		},
		pattern:   backSquatPattern,
		muscle:    "quads",
		equipment: []string{"machine", "dumbbell"},
		keywords:  []string{"leg press", "bulgarian", "split squat", "front squat"},
	},
	{
		name:     "short_torso_squat",
		applies:  morphotypeIn(domain.MorphoShortTorso),
		pattern:  shortTorsoSquatPattern,
		muscle:   "glutes",
		keywords: []string{"hip thrust", "rdl", "romanian"},
	},
	{
		name:     "long_torso_deadlift",
		applies:  morphotypeIn(domain.MorphoLongTorso),
		pattern:  deadliftPattern,
		muscle:   "hamstrings",
		keywords: []string{"trap bar", "rdl", "romanian deadlift"},
	},
	{
		name:      "short_arms_dip",
		applies:   morphotypeIn(domain.MorphoShortArms),
		pattern:   dipPattern,
		muscle:    "chest",
		equipment: []string{"machine", "cable"},
		keywords:  []string{"chest press", "cable fly"},
	},
}

func (r substitutionRule) matches(p *domain.AnatomicalProfile, e *domain.Exercise) bool {
	return r.applies(p) && r.pattern.MatchExercise(e)
}

// substitute runs the table against the chosen exercise. It returns nil when
// no rule matches or no replacement exists in the catalog.
func (s *Selector) substitute(chosen *domain.Exercise, eq domain.EquipmentContext, profile *domain.AnatomicalProfile) (*domain.Exercise, *Substitution) {
	for _, rule := range substitutionRules {
		if !rule.matches(profile, chosen) {
			continue
		}
		replacement := s.findReplacement(rule, chosen.ID, eq)
		if replacement == nil {
			return nil, nil
		}
		return replacement, &Substitution{Rule: rule.name, Original: chosen.Name, Muscle: rule.muscle}
	}
	return nil, nil
}

func (s *Selector) findReplacement(rule substitutionRule, excludedID string, eq domain.EquipmentContext) *domain.Exercise {
	candidates := s.rules.filter(s.catalog.ByPrimaryMuscleExcluding(rule.muscle, excludedID))
	var available []*domain.Exercise
	for _, c := range candidates {
		if eq.HasEquipment(c.EquipmentType) {
			available = append(available, c)
		}
	}
	for _, c := range available {
		if domain.ContainsAny(c.Name, rule.keywords) {
			return c
		}
	}
	for _, c := range available {
		for _, want := range rule.equipment {
			if domain.NormalizeName(c.EquipmentType) == want {
				return c
			}
		}
	}
	if len(available) > 0 {
		return available[0]
	}
	return nil
}
