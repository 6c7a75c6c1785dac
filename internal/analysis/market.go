package analysis

import (
	"fmt"
	"math"

	"github.com/jonathan/profile-matcher/internal/types"
)

// Competitiveness bucket thresholds over the 0-100 point scale.
const (
	competitivenessHighCut     = 70
	competitivenessModerateCut = 40
)

// salaryBrackets maps years of experience to a base range in thousands of
// dollars.
var salaryBrackets = []struct {
	maxYears  float64
	low, high float64
}{
	{2, 60, 80},
	{5, 80, 110},
	{8, 110, 140},
	{12, 140, 180},
	{math.Inf(1), 180, 230},
}

// In-demand skills widen the salary estimate multiplicatively.
const (
	salarySkillFactor    = 1.1
	salarySkillFactorCap = 5
)

// competitiveness scores the profile's market position with a point-rule
// table over years, in-demand skills, degree level, and certifications, then
// buckets the total.
func (a *Analyzer) competitiveness(p *types.Profile) string {
	points := 0

	switch years := p.TotalExperienceYears(); {
	case years >= 8:
		points += 30
	case years >= 4:
		points += 20
	case years >= 2:
		points += 10
	}

	inDemand := a.inDemandSkillCount(p)
	if inDemand > 3 {
		inDemand = 3
	}
	points += inDemand * 10

	switch rank := highestDegreeRank(p.Education); {
	case rank >= 4:
		points += 25
	case rank == 3:
		points += 15
	}

	if p.HasActiveCertification() {
		points += 15
	}

	switch {
	case points >= competitivenessHighCut:
		return types.CompetitivenessHigh
	case points >= competitivenessModerateCut:
		return types.CompetitivenessModerate
	default:
		return types.CompetitivenessDeveloping
	}
}

// salaryRange estimates a salary band: a base bracket by total years of
// experience, scaled by 1.1 per in-demand skill (capped at five).
func (a *Analyzer) salaryRange(p *types.Profile) string {
	years := p.TotalExperienceYears()

	var low, high float64
	for _, bracket := range salaryBrackets {
		if years < bracket.maxYears {
			low, high = bracket.low, bracket.high
			break
		}
	}

	inDemand := a.inDemandSkillCount(p)
	if inDemand > salarySkillFactorCap {
		inDemand = salarySkillFactorCap
	}
	factor := math.Pow(salarySkillFactor, float64(inDemand))

	return fmt.Sprintf("$%d,000 - $%d,000",
		int(math.Round(low*factor)),
		int(math.Round(high*factor)))
}
