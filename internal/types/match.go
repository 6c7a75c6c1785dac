package types

import "time"

// Component weights for the overall match score. They sum to 1.0.
const (
	SkillsWeight     = 0.45
	ExperienceWeight = 0.30
	EducationWeight  = 0.15
	LocationWeight   = 0.10
)

// SkillGaps is the result of comparing a profile's skills against a job's
// required and preferred skill lists.
type SkillGaps struct {
	MatchedRequired  []string `json:"matched_required"`
	MissingRequired  []string `json:"missing_required"`
	MatchedPreferred []string `json:"matched_preferred"`
	MissingPreferred []string `json:"missing_preferred"`
}

// MatchScore is the output of matching one profile against one job posting.
// All component scores and OverallScore are in [0,100]; Confidence is in [0,1].
type MatchScore struct {
	ProfileID string `json:"profile_id,omitempty"`
	JobID     string `json:"job_id,omitempty"`

	OverallScore    float64 `json:"overall_score"`
	SkillsScore     float64 `json:"skills_score"`
	ExperienceScore float64 `json:"experience_score"`
	EducationScore  float64 `json:"education_score"`
	LocationScore   float64 `json:"location_score"`

	MatchedSkills []string `json:"matched_skills,omitempty"`
	MissingSkills []string `json:"missing_skills,omitempty"`

	Strengths   []string `json:"strengths,omitempty"`
	Gaps        []string `json:"gaps,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`

	Confidence  float64   `json:"confidence"`
	GeneratedAt time.Time `json:"generated_at,omitempty"`
}

// CandidateMatch pairs a profile with its score for a job, used by
// best-candidate ranking.
type CandidateMatch struct {
	Profile *Profile    `json:"profile"`
	Score   *MatchScore `json:"score"`
}
