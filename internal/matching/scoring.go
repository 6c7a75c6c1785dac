package matching

import (
	"math"
	"strings"

	"github.com/jonathan/profile-matcher/internal/types"
)

// Sub-weights inside the skills component.
const (
	requiredSkillsWeight  = 0.7
	preferredSkillsWeight = 0.3
	extraSkillBonusCap    = 10.0
	extraSkillBonusPer    = 2.0
)

// Sub-weights inside the experience component.
const (
	yearsWeight    = 0.5
	levelWeight    = 0.3
	industryWeight = 0.2
)

// skillsScore computes the skills component: 0.7 * required coverage + 0.3 *
// preferred coverage, plus a capped bonus for skills beyond the posting's
// lists. An empty requirement list is a vacuous perfect match.
func (m *Matcher) skillsScore(profileSkills []string, job *types.JobPosting, gaps types.SkillGaps) float64 {
	requiredScore := 100.0
	if len(job.RequiredSkills) > 0 {
		requiredScore = 100 * float64(len(gaps.MatchedRequired)) / float64(len(job.RequiredSkills))
	}

	preferredScore := 100.0
	if len(job.PreferredSkills) > 0 {
		preferredScore = 100 * float64(len(gaps.MatchedPreferred)) / float64(len(job.PreferredSkills))
	}

	score := requiredSkillsWeight*requiredScore + preferredSkillsWeight*preferredScore
	score += math.Min(extraSkillBonusCap, extraSkillBonusPer*float64(m.extraSkillCount(profileSkills, job)))

	return clamp(score, 0, 100)
}

// extraSkillCount counts profile skills covered by neither the required nor
// the preferred list (synonyms resolved).
func (m *Matcher) extraSkillCount(profileSkills []string, job *types.JobPosting) int {
	count := 0
	for _, name := range profileSkills {
		if !m.jobAsksFor(name, job) {
			count++
		}
	}
	return count
}

func (m *Matcher) jobAsksFor(skill string, job *types.JobPosting) bool {
	for _, req := range job.RequiredSkills {
		if m.extractor.SameSkill(skill, req) {
			return true
		}
	}
	for _, pref := range job.PreferredSkills {
		if m.extractor.SameSkill(skill, pref) {
			return true
		}
	}
	return false
}

// experienceScore blends a years score, an ordinal level score, and an
// industry score.
func (m *Matcher) experienceScore(profile *types.Profile, job *types.JobPosting) float64 {
	totalYears := profile.TotalExperienceYears()

	years := yearsScore(totalYears, job.RequiredExperienceYears)
	level := levelScore(totalYears, job.ExperienceLevel)
	industry := industryScore(profile, job)

	return clamp(yearsWeight*years+levelWeight*level+industryWeight*industry, 0, 100)
}

// yearsScore is 100 for a posting without a stated requirement; below the
// requirement it scales linearly; above it, extreme overqualification (more
// than twice the requirement) is gently penalized down to a floor of 80.
func yearsScore(totalYears, requiredYears float64) float64 {
	if requiredYears <= 0 {
		return 100
	}
	if totalYears >= requiredYears {
		if totalYears <= 2*requiredYears {
			return 100
		}
		return math.Max(80, 100-2*(totalYears-2*requiredYears))
	}
	return 100 * totalYears / requiredYears
}

// levelScore compares the profile's years-derived level against the job's
// declared level on the 7-point ordinal scale. A posting without a
// recognizable level is a vacuous match.
func levelScore(totalYears float64, jobLevel types.ExperienceLevel) float64 {
	jobIdx := jobLevel.Index()
	if jobIdx < 0 {
		return 100
	}

	profileIdx := types.LevelFromYears(totalYears).Index()
	diff := profileIdx - jobIdx
	if diff < 0 {
		diff = -diff
	}

	switch diff {
	case 0:
		return 100
	case 1:
		return 80
	case 2:
		return 60
	default:
		return 40
	}
}

// industryScore is 100 when any experience matches the posting's industry,
// 50 when the profile has any industry history at all, 0 otherwise. A
// posting without an industry is a vacuous match.
func industryScore(profile *types.Profile, job *types.JobPosting) float64 {
	jobIndustry := strings.TrimSpace(job.Industry)
	if jobIndustry == "" {
		return 100
	}

	hasAnyIndustry := false
	for i := range profile.Experiences {
		industry := strings.TrimSpace(profile.Experiences[i].Industry)
		if industry == "" {
			continue
		}
		hasAnyIndustry = true
		if strings.EqualFold(industry, jobIndustry) {
			return 100
		}
	}

	if hasAnyIndustry {
		return 50
	}
	return 0
}

// locationScore compares locations leniently: missing data earns the benefit
// of the doubt, remote postings match everyone, and a shared comma-separated
// token counts as a crude region match.
func locationScore(profile *types.Profile, job *types.JobPosting) float64 {
	profileLoc := strings.TrimSpace(profile.Location)
	jobLoc := strings.TrimSpace(job.Location)

	if profileLoc == "" || jobLoc == "" {
		return 50
	}
	if strings.Contains(strings.ToLower(jobLoc), "remote") {
		return 100
	}
	if strings.EqualFold(profileLoc, jobLoc) {
		return 100
	}
	if sharesLocationToken(profileLoc, jobLoc) {
		return 70
	}
	return 30
}

func sharesLocationToken(a, b string) bool {
	tokens := make(map[string]bool)
	for _, token := range strings.Split(strings.ToLower(a), ",") {
		token = strings.TrimSpace(token)
		if token != "" {
			tokens[token] = true
		}
	}
	for _, token := range strings.Split(strings.ToLower(b), ",") {
		token = strings.TrimSpace(token)
		if token != "" && tokens[token] {
			return true
		}
	}
	return false
}
