// Package catalog provides the read-only exercise catalog view used by one
// synthesis call.
package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/mesoforge/internal/domain"
)

// Reader is the catalog query surface the selector depends on. Every listing is
// sorted by name ascending and muscle matching is case-insensitive.
type Reader interface {
	ByPrimaryMuscle(muscle string) []*domain.Exercise
	ByPrimaryMuscleExcluding(muscle, excludedID string) []*domain.Exercise
	MachineSpec(exerciseID string) *domain.MachineSpec
}

// Source is anything that can list the full catalog, typically the exercise
// repository.
type Source interface {
	List(ctx context.Context) ([]*domain.Exercise, error)
}

// Snapshot is an immutable copy of the catalog taken at call start. Later
// writes to the source are not visible through it.
type Snapshot struct {
	byMuscle map[string][]*domain.Exercise
	machines map[string]*domain.MachineSpec
	size     int
}

var _ Reader = (*Snapshot)(nil)

// Load reads the whole catalog from src once and indexes it.
func Load(ctx context.Context, src Source) (*Snapshot, error) {
	exercises, err := src.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return New(exercises), nil
}

// New builds a snapshot from exercises. The input is copied.
func New(exercises []*domain.Exercise) *Snapshot {
	s := &Snapshot{
		byMuscle: make(map[string][]*domain.Exercise),
		machines: make(map[string]*domain.MachineSpec),
	}
	for _, e := range exercises {
		if e == nil {
			continue
		}
		c := cloneExercise(e)
		key := muscleKey(c.PrimaryMuscle)
		s.byMuscle[key] = append(s.byMuscle[key], c)
		if c.Machine != nil {
			s.machines[c.ID] = c.Machine
		}
		s.size++
	}
	for _, list := range s.byMuscle {
		sort.SliceStable(list, func(i, j int) bool {
			a, b := strings.ToLower(list[i].Name), strings.ToLower(list[j].Name)
			if a != b {
				return a < b
			}
			return list[i].ID < list[j].ID
		})
	}
	return s
}

// Len returns the number of entries in the snapshot.
func (s *Snapshot) Len() int { return s.size }

// Muscles returns the distinct primary muscles, sorted.
func (s *Snapshot) Muscles() []string {
	out := make([]string, 0, len(s.byMuscle))
	for k := range s.byMuscle {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (s *Snapshot) ByPrimaryMuscle(muscle string) []*domain.Exercise {
	return append([]*domain.Exercise(nil), s.byMuscle[muscleKey(muscle)]...)
}

func (s *Snapshot) ByPrimaryMuscleExcluding(muscle, excludedID string) []*domain.Exercise {
	var out []*domain.Exercise
	for _, e := range s.byMuscle[muscleKey(muscle)] {
		if e.ID != excludedID {
			out = append(out, e)
		}
	}
	return out
}

func (s *Snapshot) MachineSpec(exerciseID string) *domain.MachineSpec {
	return s.machines[exerciseID]
}

func muscleKey(m string) string {
	return domain.NormalizeName(m)
}

func cloneExercise(e *domain.Exercise) *domain.Exercise {
	c := *e
	c.SecondaryMuscles = append([]string(nil), e.SecondaryMuscles...)
	c.Tags = append([]string(nil), e.Tags...)
	if e.Machine != nil {
		m := *e.Machine
		c.Machine = &m
	}
	return &c
}
