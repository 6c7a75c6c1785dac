package matching

import (
	"fmt"
	"strings"

	"github.com/jonathan/profile-matcher/internal/types"
)

// Score cut points for detailed strengths and gaps.
const (
	skillsStrengthCut     = 80.0
	experienceStrengthCut = 80.0
	educationStrengthCut  = 90.0
	skillsGapCut          = 60.0
	experienceGapCut      = 50.0
	topMissingSkills      = 3
)

// Confidence discounts applied per missing input section.
const (
	discountNoSkills        = 0.7
	discountNoExperiences   = 0.8
	discountNoEducation     = 0.9
	discountNoSummary       = 0.95
	discountNoRequiredSkill = 0.8
	discountNoRequiredYears = 0.9
)

// confidence reflects how complete the inputs were: each missing section
// multiplies a discount into the starting value of 1.0.
func confidence(profile *types.Profile, job *types.JobPosting) float64 {
	c := 1.0
	if len(profile.Skills) == 0 {
		c *= discountNoSkills
	}
	if len(profile.Experiences) == 0 {
		c *= discountNoExperiences
	}
	if len(profile.Education) == 0 {
		c *= discountNoEducation
	}
	if strings.TrimSpace(profile.Summary) == "" {
		c *= discountNoSummary
	}
	if len(job.RequiredSkills) == 0 {
		c *= discountNoRequiredSkill
	}
	if job.RequiredExperienceYears <= 0 {
		c *= discountNoRequiredYears
	}
	return c
}

// strengths derives positive talking points from the component scores and
// the profile's relationship to the posting.
func (m *Matcher) strengths(profile *types.Profile, job *types.JobPosting, score *types.MatchScore, gaps types.SkillGaps) []string {
	out := []string{}

	if score.SkillsScore >= skillsStrengthCut {
		out = append(out, fmt.Sprintf("Strong skill match: %d of %d required skills covered",
			len(gaps.MatchedRequired), len(job.RequiredSkills)))
	}
	if score.ExperienceScore >= experienceStrengthCut {
		out = append(out, "Experience aligns well with the role's requirements")
	}
	if score.EducationScore >= educationStrengthCut && len(profile.Education) > 0 {
		out = append(out, "Education meets or exceeds the stated requirement")
	}
	if profile.HasActiveCertification() {
		out = append(out, "Holds active professional certifications")
	}
	if m.currentRoleUsesJobSkills(profile, job) {
		out = append(out, "Current role exercises skills this job requires")
	}

	return out
}

// currentRoleUsesJobSkills reports whether the profile's current position
// lists any skill the job requires.
func (m *Matcher) currentRoleUsesJobSkills(profile *types.Profile, job *types.JobPosting) bool {
	current := profile.CurrentPosition()
	if current == nil {
		return false
	}
	for _, used := range current.SkillsUsed {
		for _, req := range job.RequiredSkills {
			if m.extractor.SameSkill(used, req) {
				return true
			}
		}
	}
	return false
}

// weaknesses derives gap statements from low component scores and the top
// missing required skills.
func weaknesses(score *types.MatchScore, gaps types.SkillGaps) []string {
	out := []string{}

	if score.SkillsScore < skillsGapCut {
		out = append(out, "Significant gaps against the required skill set")
	}
	if score.ExperienceScore < experienceGapCut {
		out = append(out, "Experience falls short of what the role asks for")
	}
	if missing := topN(gaps.MissingRequired, topMissingSkills); len(missing) > 0 {
		out = append(out, "Missing required skills: "+strings.Join(missing, ", "))
	}

	return out
}

// suggestions proposes concrete improvements based on what is missing.
func suggestions(profile *types.Profile, score *types.MatchScore, gaps types.SkillGaps) []string {
	out := []string{}

	for _, skill := range topN(gaps.MissingRequired, topMissingSkills) {
		out = append(out, fmt.Sprintf("Build demonstrable experience with %s to close a required-skill gap", skill))
	}
	if score.ExperienceScore < experienceGapCut {
		out = append(out, "Highlight depth of impact in past roles to offset the years-of-experience shortfall")
	}
	if strings.TrimSpace(profile.Summary) == "" {
		out = append(out, "Add a profile summary; it improves both matching and match confidence")
	}
	if len(profile.Skills) == 0 {
		out = append(out, "List your skills explicitly instead of relying on description text")
	}

	return out
}

func topN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
