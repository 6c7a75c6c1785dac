package extraction

import (
	"sort"
	"strings"

	"github.com/jonathan/profile-matcher/internal/types"
)

// ExtractFromProfile extracts skills from the profile's free-text sections
// (headline, summary, experience descriptions) and merges them with the
// profile's explicitly listed skills. Explicit skills win on conflict, but
// missing years-of-experience and proficiency are backfilled from extracted
// duplicates. Skills found in an experience description inherit that
// experience's duration as years of experience unless the text states years
// explicitly.
func (e *Extractor) ExtractFromProfile(profile *types.Profile) []types.Skill {
	if profile == nil {
		return nil
	}

	extracted := make(map[string]types.Skill)
	merge := func(sk types.Skill) {
		key := strings.ToLower(sk.Name)
		existing, ok := extracted[key]
		if !ok {
			extracted[key] = sk
			return
		}
		if sk.ProficiencyLevel > existing.ProficiencyLevel {
			existing.ProficiencyLevel = sk.ProficiencyLevel
		}
		if sk.YearsExperience > existing.YearsExperience {
			existing.YearsExperience = sk.YearsExperience
		}
		extracted[key] = existing
	}

	for _, text := range []string{profile.Headline, profile.Summary} {
		for _, es := range e.extract(text, DefaultMinConfidence) {
			merge(es.Skill)
		}
	}

	for i := range profile.Experiences {
		exp := &profile.Experiences[i]
		duration := exp.DurationYears()
		for _, es := range e.extract(exp.Description, DefaultMinConfidence) {
			sk := es.Skill
			if sk.YearsExperience == 0 {
				sk.YearsExperience = duration
			}
			merge(sk)
		}
	}

	result := make([]types.Skill, 0, len(profile.Skills)+len(extracted))
	claimed := make(map[string]bool)

	// Explicit skills first, in profile order, canonicalized.
	for i := range profile.Skills {
		sk := profile.Skills[i]
		sk.Name = e.tax.Canonical(sk.Name)
		key := strings.ToLower(sk.Name)
		claimed[key] = true

		if sk.Category == "" {
			sk.Category = e.tax.Category(sk.Name)
		}
		if sk.Source == "" {
			sk.Source = types.SkillSourceProfile
		}
		if dup, ok := extracted[key]; ok {
			if sk.YearsExperience == 0 {
				sk.YearsExperience = dup.YearsExperience
			}
			if sk.ProficiencyLevel == 0 {
				sk.ProficiencyLevel = dup.ProficiencyLevel
			}
		}
		result = append(result, sk)
	}

	// Extraction-only skills follow, sorted by name for determinism.
	rest := make([]types.Skill, 0, len(extracted))
	for key, sk := range extracted {
		if !claimed[key] {
			rest = append(rest, sk)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i].Name < rest[j].Name })

	return append(result, rest...)
}
