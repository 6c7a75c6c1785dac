package analysis

import (
	"strings"

	"github.com/jonathan/profile-matcher/internal/types"
)

// Each sub-score is an additive point-rule table: every satisfied condition
// awards a fixed delta, and the sum is capped at 100. The tables are tuned so
// a thorough profile can actually reach 100 on each axis.

// completenessScore rewards filled-in sections.
func completenessScore(p *types.Profile) float64 {
	points := 0.0

	if strings.TrimSpace(p.FullName) != "" {
		points += 10
	}
	if strings.TrimSpace(p.Headline) != "" {
		points += 10
	}
	if summary := strings.TrimSpace(p.Summary); summary != "" {
		points += 10
		if len(summary) >= 100 {
			points += 5
		}
	}
	if strings.TrimSpace(p.Location) != "" {
		points += 5
	}
	if strings.TrimSpace(p.Industry) != "" {
		points += 5
	}

	switch n := len(p.Skills); {
	case n >= 10:
		points += 25
	case n >= 5:
		points += 20
	case n >= 1:
		points += 10
	}

	switch n := len(p.Experiences); {
	case n >= 3:
		points += 20
	case n >= 1:
		points += 15
	}

	if len(p.Education) > 0 {
		points += 10
	}
	if len(p.Certifications) > 0 {
		points += 5
	}

	return clamp(points, 0, 100)
}

// experienceQualityScore rewards depth, tenure, and well-described positions.
func experienceQualityScore(p *types.Profile) float64 {
	if len(p.Experiences) == 0 {
		return 0
	}

	points := 20.0

	years := p.TotalExperienceYears()
	if years >= 2 {
		points += 10
	}
	if years >= 5 {
		points += 15
	}
	if years >= 10 {
		points += 10
	}

	if p.CurrentPosition() != nil {
		points += 10
	}
	if years/float64(len(p.Experiences)) >= 2 {
		points += 15
	}

	described := 0
	withSkills := false
	for i := range p.Experiences {
		if strings.TrimSpace(p.Experiences[i].Description) != "" {
			described++
		}
		if len(p.Experiences[i].SkillsUsed) > 0 {
			withSkills = true
		}
	}
	if described*2 >= len(p.Experiences) {
		points += 10
	}
	if withSkills {
		points += 10
	}

	return clamp(points, 0, 100)
}

// skillQualityScore rewards breadth, market demand, and external validation
// (endorsements, verification).
func (a *Analyzer) skillQualityScore(p *types.Profile) float64 {
	if len(p.Skills) == 0 {
		return 0
	}

	points := 15.0

	if len(p.Skills) >= 5 {
		points += 10
	}
	if len(p.Skills) >= 10 {
		points += 10
	}

	inDemand := a.inDemandSkillCount(p)
	if inDemand > 5 {
		inDemand = 5
	}
	points += float64(inDemand) * 5

	verified := false
	endorsed := false
	categories := map[types.SkillCategory]bool{}
	proficiencySum, proficiencyCount := 0, 0
	for i := range p.Skills {
		skill := &p.Skills[i]
		if skill.Verified {
			verified = true
		}
		if skill.Endorsements >= 5 {
			endorsed = true
		}
		categories[a.tax.Category(skill.Name)] = true
		if skill.ProficiencyLevel > 0 {
			proficiencySum += skill.ProficiencyLevel
			proficiencyCount++
		}
	}

	if verified {
		points += 10
	}
	if endorsed {
		points += 10
	}
	if len(categories) >= 3 {
		points += 10
	}
	if proficiencyCount > 0 && float64(proficiencySum)/float64(proficiencyCount) >= 4 {
		points += 10
	}

	return clamp(points, 0, 100)
}

// inDemandSkillCount counts profile skills the taxonomy marks high-demand.
func (a *Analyzer) inDemandSkillCount(p *types.Profile) int {
	count := 0
	for i := range p.Skills {
		if a.tax.IsHighDemand(p.Skills[i].Name) {
			count++
		}
	}
	return count
}

// educationQualityScore rewards credentials by level.
func educationQualityScore(p *types.Profile) float64 {
	if len(p.Education) == 0 {
		return 0
	}

	points := 40.0

	rank := highestDegreeRank(p.Education)
	if rank >= 3 {
		points += 20
	}
	if rank >= 4 {
		points += 15
	}
	if rank >= 5 {
		points += 10
	}

	hasField := false
	for i := range p.Education {
		if strings.TrimSpace(p.Education[i].Field) != "" {
			hasField = true
			break
		}
	}
	if hasField {
		points += 10
	}
	if len(p.Education) >= 2 {
		points += 5
	}

	return clamp(points, 0, 100)
}

// certificationsScore rewards holding current, attributable certifications.
func certificationsScore(p *types.Profile) float64 {
	if len(p.Certifications) == 0 {
		return 0
	}

	points := 50.0

	if p.HasActiveCertification() {
		points += 25
	}
	if len(p.Certifications) >= 3 {
		points += 15
	}
	for i := range p.Certifications {
		if strings.TrimSpace(p.Certifications[i].Authority) != "" {
			points += 10
			break
		}
	}

	return clamp(points, 0, 100)
}

// engagementScore rewards signals that the profile is maintained and visible.
func engagementScore(p *types.Profile) float64 {
	points := 0.0

	if len(strings.TrimSpace(p.Summary)) >= 200 {
		points += 30
	}
	if strings.TrimSpace(p.Headline) != "" {
		points += 20
	}

	endorsements := 0
	for i := range p.Skills {
		endorsements += p.Skills[i].Endorsements
	}
	if endorsements >= 10 {
		points += 20
	}
	if endorsements >= 50 {
		points += 10
	}

	if strings.TrimSpace(p.ProfileURL) != "" {
		points += 10
	}
	if strings.TrimSpace(p.Email) != "" {
		points += 10
	}

	return clamp(points, 0, 100)
}

// degreeRanks mirrors the ordinal scale used by the matcher's education
// component, evaluated highest rank first so compound degree names resolve to
// their strongest keyword.
var degreeRanks = []struct {
	keyword string
	rank    int
}{
	{"phd", 5},
	{"doctorate", 5},
	{"doctoral", 5},
	{"master", 4},
	{"mba", 4},
	{"bachelor", 3},
	{"associate", 2},
	{"certificate", 1},
	{"diploma", 1},
}

func highestDegreeRank(education []types.Education) int {
	best := 0
	for i := range education {
		lower := strings.ToLower(education[i].Degree)
		for _, dr := range degreeRanks {
			if strings.Contains(lower, dr.keyword) {
				if dr.rank > best {
					best = dr.rank
				}
				break
			}
		}
	}
	return best
}
