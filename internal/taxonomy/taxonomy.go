// Package taxonomy provides the static skill taxonomy, synonym table, and
// role-to-skills table consumed by the extraction, matching, and analysis
// packages. A Taxonomy is built once at startup and treated as immutable for
// the process lifetime; it is injected into the components that need it so
// tests can substitute alternate tables.
package taxonomy

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/profile-matcher/internal/types"
)

// DemandTier expresses how sought-after a skill currently is.
type DemandTier string

// Demand tiers.
const (
	DemandHigh   DemandTier = "high"
	DemandMedium DemandTier = "medium"
	DemandLow    DemandTier = "low"
)

// SkillDef defines one taxonomy entry in its serializable form.
type SkillDef struct {
	Name     string              `json:"name"`
	Category types.SkillCategory `json:"category"`
	Demand   DemandTier          `json:"demand,omitempty"`
}

// RoleDef maps a role-name key to the skills commonly expected for it.
// Role keys are matched by substring against target role names, in slice
// order, so more specific keys must come before more generic ones.
type RoleDef struct {
	Role   string   `json:"role"`
	Skills []string `json:"skills"`
}

// Definition is the serializable form of a complete taxonomy.
type Definition struct {
	Skills   []SkillDef          `json:"skills"`
	Synonyms map[string][]string `json:"synonyms,omitempty"` // canonical name -> synonym strings
	Roles    []RoleDef           `json:"roles,omitempty"`
}

// Entry holds the category and demand tier of one canonical skill.
type Entry struct {
	Canonical string
	Category  types.SkillCategory
	Demand    DemandTier
}

// Taxonomy is the immutable lookup structure built from a Definition.
type Taxonomy struct {
	entries     map[string]Entry    // lowercased canonical name -> entry
	synonyms    map[string][]string // lowercased canonical name -> synonym strings
	synonymOf   map[string]string   // lowercased synonym -> canonical name
	roles       []RoleDef           // ordered, lowercased role keys
	sortedNames []string            // canonical names, sorted for deterministic iteration
}

// New builds a Taxonomy from a Definition. Synonym keys must refer to skills
// present in the definition.
func New(def *Definition) (*Taxonomy, error) {
	if def == nil || len(def.Skills) == 0 {
		return nil, fmt.Errorf("taxonomy definition has no skills")
	}

	t := &Taxonomy{
		entries:   make(map[string]Entry, len(def.Skills)),
		synonyms:  make(map[string][]string, len(def.Synonyms)),
		synonymOf: make(map[string]string),
	}

	for _, s := range def.Skills {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			continue
		}
		demand := s.Demand
		if demand == "" {
			demand = DemandLow
		}
		category := s.Category
		if category == "" {
			category = types.CategorySoftSkills
		}
		key := strings.ToLower(name)
		t.entries[key] = Entry{Canonical: name, Category: category, Demand: demand}
		t.sortedNames = append(t.sortedNames, name)
	}
	sort.Strings(t.sortedNames)

	for canonical, syns := range def.Synonyms {
		key := strings.ToLower(strings.TrimSpace(canonical))
		entry, ok := t.entries[key]
		if !ok {
			return nil, fmt.Errorf("synonym table references unknown skill %q", canonical)
		}
		for _, syn := range syns {
			syn = strings.TrimSpace(syn)
			if syn == "" {
				continue
			}
			t.synonyms[key] = append(t.synonyms[key], syn)
			t.synonymOf[strings.ToLower(syn)] = entry.Canonical
		}
	}

	for _, role := range def.Roles {
		key := strings.ToLower(strings.TrimSpace(role.Role))
		if key == "" || len(role.Skills) == 0 {
			continue
		}
		t.roles = append(t.roles, RoleDef{Role: key, Skills: role.Skills})
	}

	return t, nil
}

// Lookup returns the taxonomy entry for a skill name or synonym,
// case-insensitively. The returned entry carries the canonical name.
func (t *Taxonomy) Lookup(name string) (Entry, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if entry, ok := t.entries[key]; ok {
		return entry, true
	}
	if canonical, ok := t.synonymOf[key]; ok {
		return t.entries[strings.ToLower(canonical)], true
	}
	return Entry{}, false
}

// Canonical resolves a name or synonym to its canonical taxonomy form.
// Unknown names are returned unchanged.
func (t *Taxonomy) Canonical(name string) string {
	if entry, ok := t.Lookup(name); ok {
		return entry.Canonical
	}
	return name
}

// Category returns the category for a skill, defaulting to soft_skills for
// names absent from the taxonomy.
func (t *Taxonomy) Category(name string) types.SkillCategory {
	if entry, ok := t.Lookup(name); ok {
		return entry.Category
	}
	return types.CategorySoftSkills
}

// SynonymsOf returns the registered synonyms for a skill name (or synonym).
func (t *Taxonomy) SynonymsOf(name string) []string {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := t.synonymOf[key]; ok {
		key = strings.ToLower(canonical)
	}
	return t.synonyms[key]
}

// IsHighDemand reports whether the skill sits in the high demand tier.
func (t *Taxonomy) IsHighDemand(name string) bool {
	entry, ok := t.Lookup(name)
	return ok && entry.Demand == DemandHigh
}

// SkillNames returns all canonical skill names in sorted order, so callers
// that scan the whole taxonomy behave deterministically.
func (t *Taxonomy) SkillNames() []string {
	return t.sortedNames
}

// EachSynonym calls fn for every (synonym, canonical) pair in deterministic
// order.
func (t *Taxonomy) EachSynonym(fn func(synonym, canonical string)) {
	keys := make([]string, 0, len(t.synonymOf))
	for syn := range t.synonymOf {
		keys = append(keys, syn)
	}
	sort.Strings(keys)
	for _, syn := range keys {
		fn(syn, t.synonymOf[syn])
	}
}

// RoleSkills returns the skill list for the first role key matching the
// target role name (substring match in either direction), or nil when no
// role matches.
func (t *Taxonomy) RoleSkills(targetRole string) []string {
	target := strings.ToLower(strings.TrimSpace(targetRole))
	if target == "" {
		return nil
	}
	for _, role := range t.roles {
		if strings.Contains(target, role.Role) || strings.Contains(role.Role, target) {
			return role.Skills
		}
	}
	return nil
}
