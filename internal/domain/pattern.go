package domain

import "strings"

// Pattern identifies a family of movements. Tagged catalog entries match on
// Tag; untagged legacy entries fall back to Include fragments. Exclude
// fragments and ExcludeTags reject an entry on either path.
type Pattern struct {
	Tag         string
	ExcludeTags []string
	Include     []string
	Exclude     []string
}

// MatchName reports whether the normalized name contains any Include fragment
// and no Exclude fragment.
func (p Pattern) MatchName(name string) bool {
	n := normalize(name)
	if n == "" {
		return false
	}
	hit := false
	for _, frag := range p.Include {
		if strings.Contains(n, frag) {
			hit = true
			break
		}
	}
	if !hit {
		return false
	}
	for _, frag := range p.Exclude {
		if strings.Contains(n, frag) {
			return false
		}
	}
	return true
}

// MatchExercise matches a catalog entry, preferring tags over names. Exclusions
// apply on both paths.
func (p Pattern) MatchExercise(e *Exercise) bool {
	if e == nil {
		return false
	}
	if !e.Tagged() {
		return p.MatchName(e.Name)
	}
	if p.Tag == "" || !e.HasTag(p.Tag) {
		return false
	}
	for _, t := range p.ExcludeTags {
		if e.HasTag(t) {
			return false
		}
	}
	return !ContainsAny(e.Name, p.Exclude)
}

// ContainsAny reports whether the normalized name contains any fragment.
func ContainsAny(name string, fragments []string) bool {
	n := normalize(name)
	for _, f := range fragments {
		f = normalize(f)
		if f != "" && strings.Contains(n, f) {
			return true
		}
	}
	return false
}
