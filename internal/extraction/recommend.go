package extraction

import (
	"sort"
	"strings"

	"github.com/jonathan/profile-matcher/internal/types"
)

// SkillRecommendations suggests skills to acquire for a target role: the
// role table's skills not already held, reordered so that skills sharing the
// profile's dominant existing category come first. The reorder is a stable
// partition, not a full ranking, so table order is preserved within each
// half. Returns nil when no role-table key matches the target role.
func (e *Extractor) SkillRecommendations(currentSkills []string, targetRole string) []string {
	roleSkills := e.tax.RoleSkills(targetRole)
	if len(roleSkills) == 0 {
		return nil
	}

	held := make(map[string]bool, len(currentSkills))
	for _, name := range currentSkills {
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "" {
			held[name] = true
		}
	}

	missing := make([]string, 0, len(roleSkills))
	for _, skill := range roleSkills {
		if !e.holdsSkill(held, skill) {
			missing = append(missing, skill)
		}
	}
	if len(missing) == 0 {
		return missing
	}

	dominant := e.dominantCategory(currentSkills)
	if dominant == "" {
		return missing
	}

	prioritized := make([]string, 0, len(missing))
	deferred := make([]string, 0, len(missing))
	for _, skill := range missing {
		if e.tax.Category(skill) == dominant {
			prioritized = append(prioritized, skill)
		} else {
			deferred = append(deferred, skill)
		}
	}
	return append(prioritized, deferred...)
}

// dominantCategory returns the most common taxonomy category among the given
// skills, breaking count ties by category name so the result is
// deterministic. Empty input yields "".
func (e *Extractor) dominantCategory(skills []string) types.SkillCategory {
	counts := make(map[types.SkillCategory]int)
	for _, name := range skills {
		if strings.TrimSpace(name) == "" {
			continue
		}
		counts[e.tax.Category(name)]++
	}
	if len(counts) == 0 {
		return ""
	}

	categories := make([]types.SkillCategory, 0, len(counts))
	for cat := range counts {
		categories = append(categories, cat)
	}
	sort.Slice(categories, func(i, j int) bool {
		if counts[categories[i]] != counts[categories[j]] {
			return counts[categories[i]] > counts[categories[j]]
		}
		return categories[i] < categories[j]
	})
	return categories[0]
}
