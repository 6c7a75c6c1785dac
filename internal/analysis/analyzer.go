// Package analysis scores a profile on its own merits, independent of any job
// posting: six additive point-rule sub-scores blended into a single strength
// score, plus derived market signals (career progression, competitiveness,
// salary estimate). Like the matcher, analysis is a pure function of the
// profile and the injected taxonomy, so an Analyzer is safe for concurrent use.
package analysis

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/profile-matcher/internal/taxonomy"
	"github.com/jonathan/profile-matcher/internal/types"
)

// Sub-score weights. They sum to 1.0.
const (
	completenessWeight   = 0.30
	experienceWeight     = 0.25
	skillWeight          = 0.20
	educationWeight      = 0.10
	certificationsWeight = 0.10
	engagementWeight     = 0.05
)

// Analyzer computes job-independent profile assessments.
type Analyzer struct {
	tax    *taxonomy.Taxonomy
	logger *zap.Logger
}

// New creates an Analyzer.
func New(tax *taxonomy.Taxonomy, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{tax: tax, logger: logger}
}

// AnalyzeProfile assesses a single profile. The same profile always produces
// the same scores; only ID and AnalyzedAt differ between calls.
func (a *Analyzer) AnalyzeProfile(profile *types.Profile) (*types.ProfileAnalysis, error) {
	if profile == nil {
		return nil, fmt.Errorf("profile is nil")
	}

	sub := types.SubScores{
		Completeness:      completenessScore(profile),
		ExperienceQuality: experienceQualityScore(profile),
		SkillQuality:      a.skillQualityScore(profile),
		Education:         educationQualityScore(profile),
		Certifications:    certificationsScore(profile),
		Engagement:        engagementScore(profile),
	}

	strength := completenessWeight*sub.Completeness +
		experienceWeight*sub.ExperienceQuality +
		skillWeight*sub.SkillQuality +
		educationWeight*sub.Education +
		certificationsWeight*sub.Certifications +
		engagementWeight*sub.Engagement

	progression := classifyProgression(profile.Experiences)

	analysis := &types.ProfileAnalysis{
		ID:                    uuid.New(),
		ProfileID:             profile.ID,
		ProfileStrengthScore:  clamp(strength, 0, 100),
		SubScores:             sub,
		ExperienceLevel:       types.LevelFromYears(profile.TotalExperienceYears()),
		CareerProgression:     progression,
		MarketCompetitiveness: a.competitiveness(profile),
		SalaryRange:           a.salaryRange(profile),
		Strengths:             strengths(sub, progression),
		Weaknesses:            weaknesses(sub),
		NextSteps:             nextSteps(profile, sub),
		AnalyzedAt:            time.Now().UTC(),
	}

	a.logger.Debug("profile analyzed",
		zap.String("profile_id", profile.ID),
		zap.Float64("strength", analysis.ProfileStrengthScore),
		zap.String("competitiveness", analysis.MarketCompetitiveness))

	return analysis, nil
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
