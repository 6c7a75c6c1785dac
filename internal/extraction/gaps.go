package extraction

import (
	"strings"

	"github.com/jonathan/profile-matcher/internal/types"
)

// FindSkillGaps compares a profile's skill names against a job's required and
// preferred skill lists. A requirement is matched when the profile holds the
// skill literally (case-insensitive), under its canonical taxonomy name, or
// under any registered synonym. The synonym table is the only fuzziness; no
// edit-distance matching is applied.
func (e *Extractor) FindSkillGaps(profileSkills, required, preferred []string) types.SkillGaps {
	held := make(map[string]bool, len(profileSkills))
	for _, name := range profileSkills {
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "" {
			held[name] = true
		}
	}

	gaps := types.SkillGaps{
		MatchedRequired:  []string{},
		MissingRequired:  []string{},
		MatchedPreferred: []string{},
		MissingPreferred: []string{},
	}

	for _, skill := range required {
		if e.holdsSkill(held, skill) {
			gaps.MatchedRequired = append(gaps.MatchedRequired, skill)
		} else {
			gaps.MissingRequired = append(gaps.MissingRequired, skill)
		}
	}

	for _, skill := range preferred {
		if e.holdsSkill(held, skill) {
			gaps.MatchedPreferred = append(gaps.MatchedPreferred, skill)
		} else {
			gaps.MissingPreferred = append(gaps.MissingPreferred, skill)
		}
	}

	return gaps
}

// holdsSkill reports whether the held set covers the skill directly, via its
// canonical form, or via any registered synonym.
func (e *Extractor) holdsSkill(held map[string]bool, skill string) bool {
	key := strings.ToLower(strings.TrimSpace(skill))
	if key == "" {
		return false
	}
	if held[key] {
		return true
	}

	canonical := strings.ToLower(e.tax.Canonical(key))
	if held[canonical] {
		return true
	}

	for _, syn := range e.tax.SynonymsOf(key) {
		if held[strings.ToLower(syn)] {
			return true
		}
	}
	return false
}
