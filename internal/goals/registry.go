package goals

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/mesoforge/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed archetypes.yaml
var builtinArchetypes []byte

// DefaultWeeklySets applies when an archetype omits weekly_sets.
const DefaultWeeklySets = 60

type archetypeFile struct {
	Archetypes []ArchetypeConfig `yaml:"archetypes"`
}

// ArchetypeConfig is one archetype as written in YAML.
type ArchetypeConfig struct {
	ID           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	Description  string   `yaml:"description"`
	Priority     []string `yaml:"priority"`
	Maintenance  []string `yaml:"maintenance"`
	Banned       []string `yaml:"banned"`
	FemaleBanned []string `yaml:"female_banned"`
	WeeklySets   int      `yaml:"weekly_sets"`
}

// Registry holds the archetypes available to synthesis, keyed by id, in file
// order.
type Registry struct {
	order []string
	byID  map[string]domain.GoalArchetype
}

// Builtin returns the registry of embedded archetypes.
func Builtin() (*Registry, error) {
	cfgs, err := parse(builtinArchetypes)
	if err != nil {
		return nil, fmt.Errorf("builtin archetypes: %w", err)
	}
	r := &Registry{byID: make(map[string]domain.GoalArchetype)}
	r.merge(cfgs)
	return r, nil
}

// Load returns the builtin registry with the archetypes in path layered on
// top. An archetype whose id already exists replaces it in place; new ids are
// appended. An empty path yields the builtins.
func Load(path string) (*Registry, error) {
	r, err := Builtin()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return r, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading goals file: %w", err)
	}
	cfgs, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("goals file %s: %w", path, err)
	}
	r.merge(cfgs)
	return r, nil
}

func parse(data []byte) ([]ArchetypeConfig, error) {
	var f archetypeFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parsing archetypes: %w", err)
	}
	if errs := Validate(f.Archetypes); len(errs) > 0 {
		return nil, joinErrors(errs)
	}
	return f.Archetypes, nil
}

func (r *Registry) merge(cfgs []ArchetypeConfig) {
	for _, c := range cfgs {
		g := c.toDomain()
		if _, exists := r.byID[g.ID]; !exists {
			r.order = append(r.order, g.ID)
		}
		r.byID[g.ID] = g
	}
}

// Get returns the archetype with the given id.
func (r *Registry) Get(id string) (domain.GoalArchetype, bool) {
	g, ok := r.byID[domain.NormalizeName(id)]
	return g, ok
}

// List returns every archetype in registry order.
func (r *Registry) List() []domain.GoalArchetype {
	out := make([]domain.GoalArchetype, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// IDs returns archetype ids in registry order.
func (r *Registry) IDs() []string {
	return append([]string(nil), r.order...)
}

func (c ArchetypeConfig) toDomain() domain.GoalArchetype {
	sets := c.WeeklySets
	if sets == 0 {
		sets = DefaultWeeklySets
	}
	name := c.Name
	if name == "" {
		name = c.ID
	}
	return domain.GoalArchetype{
		ID:                    domain.NormalizeName(c.ID),
		Name:                  name,
		Description:           c.Description,
		PriorityMuscles:       normalizeAll(c.Priority),
		MaintenanceMuscles:    normalizeAll(c.Maintenance),
		BannedFragments:       normalizeAll(c.Banned),
		FemaleBannedFragments: normalizeAll(c.FemaleBanned),
		WeeklySets:            sets,
	}
}

func normalizeAll(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = domain.NormalizeName(s)
	}
	return out
}

func joinErrors(errs []error) error {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return fmt.Errorf("invalid archetypes: %s", strings.Join(msgs, "; "))
}
