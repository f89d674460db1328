// Package selector resolves target muscles into concrete catalog exercises.
package selector

import (
	"github.com/alexanderramin/mesoforge/internal/catalog"
	"github.com/alexanderramin/mesoforge/internal/constraint"
	"github.com/alexanderramin/mesoforge/internal/domain"
)

// Selection is one exercise chosen for a muscle.
type Selection struct {
	Exercise     *domain.Exercise
	Muscle       string
	IsPriority   bool
	Secondary    bool
	Substitution *Substitution
	// Flag is set when the exercise is anatomically banned but no
	// substitute was found.
	Flag *constraint.Decision
}

// Selector is bound to one catalog snapshot and one goal/sex exclusion set.
type Selector struct {
	catalog catalog.Reader
	rules   ExclusionRules
}

func New(reader catalog.Reader, rules ExclusionRules) *Selector {
	return &Selector{catalog: reader, rules: rules}
}

// Rules returns the exclusion rules the selector filters with.
func (s *Selector) Rules() ExclusionRules { return s.rules }

// SelectExercises picks exercises for each muscle in order. Muscles with no
// usable catalog entries contribute nothing. Priority muscles may yield a
// second exercise.
func (s *Selector) SelectExercises(muscles []string, isPriority bool, eq domain.EquipmentContext, morpho *domain.AnatomicalProfile) []Selection {
	var out []Selection
	for _, muscle := range muscles {
		out = append(out, s.selectForMuscle(muscle, isPriority, eq, morpho)...)
	}
	return out
}

func (s *Selector) selectForMuscle(muscle string, isPriority bool, eq domain.EquipmentContext, morpho *domain.AnatomicalProfile) []Selection {
	all := s.catalog.ByPrimaryMuscle(muscle)
	if len(all) == 0 {
		return nil
	}
	allowed := s.rules.filter(all)
	if len(allowed) == 0 {
		return nil
	}

	candidates := filterEquipment(allowed, eq)
	if len(candidates) == 0 {
		candidates = []*domain.Exercise{s.rank(allowed, eq)}
	}

	chosen := s.rank(candidates, eq)
	first := Selection{Exercise: chosen, Muscle: muscle, IsPriority: isPriority}
	if substitutionEnabled(morpho) {
		if repl, sub := s.substitute(chosen, eq, morpho); repl != nil {
			first.Exercise = repl
			first.Substitution = sub
		}
	}
	if first.Substitution == nil {
		first.Flag = constraint.EvaluateExercise(morpho, chosen)
	}
	out := []Selection{first}

	if isPriority && len(candidates) > 1 {
		if second := pickSecond(candidates, chosen.ID, first.Exercise.ID); second != nil {
			out = append(out, Selection{
				Exercise:   second,
				Muscle:     muscle,
				IsPriority: true,
				Secondary:  true,
				Flag:       constraint.EvaluateExercise(morpho, second),
			})
		}
	}
	return out
}

// rank applies the preference order: an available machine brand, then a
// dumbbell movement in a home gym, then catalog order.
func (s *Selector) rank(list []*domain.Exercise, eq domain.EquipmentContext) *domain.Exercise {
	for _, e := range list {
		if spec := s.catalog.MachineSpec(e.ID); spec != nil && eq.HasBrand(spec.Brand) {
			return e
		}
	}
	if eq.HomeGymOnly() {
		for _, e := range list {
			if domain.NormalizeName(e.EquipmentType) == "dumbbell" {
				return e
			}
		}
	}
	return list[0]
}

func filterEquipment(list []*domain.Exercise, eq domain.EquipmentContext) []*domain.Exercise {
	var out []*domain.Exercise
	for _, e := range list {
		if eq.HasEquipment(e.EquipmentType) {
			out = append(out, e)
		}
	}
	return out
}

func pickSecond(candidates []*domain.Exercise, skipIDs ...string) *domain.Exercise {
	skip := func(e *domain.Exercise) bool {
		for _, id := range skipIDs {
			if e.ID == id {
				return true
			}
		}
		return false
	}
	for _, e := range candidates {
		if e.StretchBonus && !skip(e) {
			return e
		}
	}
	for _, e := range candidates {
		if !skip(e) {
			return e
		}
	}
	return nil
}

// substitutionEnabled needs a morphotype or at least one measurement; the
// long-femur rule fires on either alone.
func substitutionEnabled(p *domain.AnatomicalProfile) bool {
	return p != nil && (p.Morphotype != "" || p.HasMeasurements())
}
