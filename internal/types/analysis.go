package types

import (
	"time"

	"github.com/google/uuid"
)

// SubScores holds the six independent 0-100 quality signals computed by the
// profile analyzer.
type SubScores struct {
	Completeness      float64 `json:"completeness"`
	ExperienceQuality float64 `json:"experience_quality"`
	SkillQuality      float64 `json:"skill_quality"`
	Education         float64 `json:"education"`
	Certifications    float64 `json:"certifications"`
	Engagement        float64 `json:"engagement"`
}

// CareerProgression classifies how titles evolve across a profile's ordered
// experience history.
type CareerProgression string

// Career progression classifications.
const (
	ProgressionAscending CareerProgression = "ascending"
	ProgressionLateral   CareerProgression = "lateral"
	ProgressionVaried    CareerProgression = "varied"
	ProgressionUnknown   CareerProgression = "unknown"
)

// Competitiveness buckets derived from the market-competitiveness point rules.
const (
	CompetitivenessHigh       = "high"
	CompetitivenessModerate   = "moderate"
	CompetitivenessDeveloping = "developing"
)

// ProfileAnalysis is the job-independent assessment of a single profile.
type ProfileAnalysis struct {
	ID        uuid.UUID `json:"id"`
	ProfileID string    `json:"profile_id,omitempty"`

	ProfileStrengthScore float64   `json:"profile_strength_score"` // 0-100 weighted blend
	SubScores            SubScores `json:"sub_scores"`

	ExperienceLevel       ExperienceLevel   `json:"experience_level"`
	CareerProgression     CareerProgression `json:"career_progression"`
	MarketCompetitiveness string            `json:"market_competitiveness"`
	SalaryRange           string            `json:"salary_range,omitempty"`

	Strengths  []string `json:"strengths,omitempty"`
	Weaknesses []string `json:"weaknesses,omitempty"`
	NextSteps  []string `json:"next_steps,omitempty"`

	AnalyzedAt time.Time `json:"analyzed_at"`
}
