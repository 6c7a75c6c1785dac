package analysis

import (
	"strings"

	"github.com/jonathan/profile-matcher/internal/types"
)

// Cut points for templated strengths, weaknesses, and next steps.
const (
	completenessStrengthCut = 80.0
	experienceStrengthCut   = 75.0
	skillStrengthCut        = 75.0
	certStrengthCut         = 75.0

	completenessWeakCut = 50.0
	experienceWeakCut   = 50.0
	skillWeakCut        = 50.0
	educationWeakCut    = 40.0
	certWeakCut         = 50.0
	engagementWeakCut   = 40.0
)

func strengths(sub types.SubScores, progression types.CareerProgression) []string {
	out := []string{}

	if sub.Completeness >= completenessStrengthCut {
		out = append(out, "Profile is thorough and well maintained")
	}
	if sub.ExperienceQuality >= experienceStrengthCut {
		out = append(out, "Substantial, well-documented work history")
	}
	if sub.SkillQuality >= skillStrengthCut {
		out = append(out, "Broad skill set with strong market demand")
	}
	if sub.Certifications >= certStrengthCut {
		out = append(out, "Certifications reinforce the stated skill set")
	}
	if progression == types.ProgressionAscending {
		out = append(out, "Clear upward career trajectory")
	}

	return out
}

func weaknesses(sub types.SubScores) []string {
	out := []string{}

	if sub.Completeness < completenessWeakCut {
		out = append(out, "Profile is missing several core sections")
	}
	if sub.ExperienceQuality < experienceWeakCut {
		out = append(out, "Work history is thin or sparsely described")
	}
	if sub.SkillQuality < skillWeakCut {
		out = append(out, "Skill list is short or lacks in-demand entries")
	}
	if sub.Education < educationWeakCut {
		out = append(out, "No formal education credentials listed")
	}
	if sub.Certifications < certWeakCut {
		out = append(out, "No professional certifications listed")
	}
	if sub.Engagement < engagementWeakCut {
		out = append(out, "Few signals that the profile is actively maintained")
	}

	return out
}

func nextSteps(p *types.Profile, sub types.SubScores) []string {
	out := []string{}

	if strings.TrimSpace(p.Summary) == "" {
		out = append(out, "Write a profile summary describing your focus and impact")
	}
	if len(p.Skills) < 5 {
		out = append(out, "List more of the skills you use day to day")
	}
	if sub.ExperienceQuality < experienceWeakCut && len(p.Experiences) > 0 {
		out = append(out, "Add descriptions and skills used to your positions")
	}
	if len(p.Certifications) == 0 {
		out = append(out, "Pursue a certification in your primary skill area")
	}
	if sub.Engagement < engagementWeakCut {
		out = append(out, "Keep headline, summary, and contact details current")
	}

	return out
}
