// Package matching computes weighted composite match scores between profiles
// and job postings across four dimensions: skills, experience, education, and
// location. Matching is a pure function of its inputs and the injected static
// tables, so a Matcher is safe for concurrent use.
package matching

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/profile-matcher/internal/extraction"
	"github.com/jonathan/profile-matcher/internal/taxonomy"
	"github.com/jonathan/profile-matcher/internal/types"
)

// Matcher scores profiles against job postings.
type Matcher struct {
	tax       *taxonomy.Taxonomy
	extractor *extraction.Extractor
	logger    *zap.Logger
}

// New creates a Matcher. A nil logger disables batch-skip logging.
func New(tax *taxonomy.Taxonomy, extractor *extraction.Extractor, logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{tax: tax, extractor: extractor, logger: logger}
}

// MatchProfileToJob scores one profile against one job posting. With detailed
// set, the result additionally carries strengths, gaps, improvement
// suggestions, and an input-completeness confidence. The same inputs always
// produce the same scores.
func (m *Matcher) MatchProfileToJob(profile *types.Profile, job *types.JobPosting, detailed bool) (*types.MatchScore, error) {
	if profile == nil {
		return nil, fmt.Errorf("profile is nil")
	}
	if job == nil {
		return nil, fmt.Errorf("job posting is nil")
	}

	profileSkills := profile.SkillNames()
	gaps := m.extractor.FindSkillGaps(profileSkills, job.RequiredSkills, job.PreferredSkills)

	skills := m.skillsScore(profileSkills, job, gaps)
	experience := m.experienceScore(profile, job)
	education := educationScore(profile, job)
	location := locationScore(profile, job)

	score := &types.MatchScore{
		ProfileID:       profile.ID,
		JobID:           job.ID,
		SkillsScore:     skills,
		ExperienceScore: experience,
		EducationScore:  education,
		LocationScore:   location,
		OverallScore: types.SkillsWeight*skills +
			types.ExperienceWeight*experience +
			types.EducationWeight*education +
			types.LocationWeight*location,
		MatchedSkills: append(append([]string{}, gaps.MatchedRequired...), gaps.MatchedPreferred...),
		MissingSkills: append(append([]string{}, gaps.MissingRequired...), gaps.MissingPreferred...),
		GeneratedAt:   time.Now().UTC(),
	}

	if detailed {
		score.Confidence = confidence(profile, job)
		score.Strengths = m.strengths(profile, job, score, gaps)
		score.Gaps = weaknesses(score, gaps)
		score.Suggestions = suggestions(profile, score, gaps)
	}

	return score, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
