package server

import (
	"github.com/jonathan/profile-matcher/internal/types"
)

// Request DTOs. Validation tags are enforced with go-playground/validator
// before any scoring work happens.

// ExtractRequest asks for skill extraction over free text.
type ExtractRequest struct {
	Text          string  `json:"text" validate:"required"`
	MinConfidence float64 `json:"min_confidence" validate:"gte=0,lte=1"`
}

// MatchRequest scores one profile against one job posting.
type MatchRequest struct {
	Profile  *types.Profile    `json:"profile" validate:"required"`
	Job      *types.JobPosting `json:"job" validate:"required"`
	Detailed bool              `json:"detailed"`
	Enrich   bool              `json:"enrich"` // rewrite suggestions with the LLM when configured
}

// MatchBatchRequest scores one profile against many postings and ranks the
// results.
type MatchBatchRequest struct {
	Profile  *types.Profile      `json:"profile" validate:"required"`
	Jobs     []*types.JobPosting `json:"jobs" validate:"required,min=1,dive,required"`
	TopN     int                 `json:"top_n" validate:"gte=0"`
	MinScore float64             `json:"min_score" validate:"gte=0,lte=100"`
}

// CandidatesRequest ranks many profiles against one posting.
type CandidatesRequest struct {
	Profiles []*types.Profile  `json:"profiles" validate:"required,min=1,dive,required"`
	Job      *types.JobPosting `json:"job" validate:"required"`
	TopN     int               `json:"top_n" validate:"gte=0"`
	MinScore float64           `json:"min_score" validate:"gte=0,lte=100"`
}

// AnalyzeRequest asks for a standalone profile analysis.
type AnalyzeRequest struct {
	Profile *types.Profile `json:"profile" validate:"required"`
}

// RecommendRequest asks for skill recommendations toward a target role.
// CurrentSkills may be given directly or derived from an attached profile.
type RecommendRequest struct {
	Profile       *types.Profile `json:"profile"`
	CurrentSkills []string       `json:"current_skills"`
	TargetRole    string         `json:"target_role" validate:"required"`
}

// IngestRequest asks for a job posting to be fetched and parsed from a URL.
type IngestRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// TokenRequest exchanges client credentials for a bearer token.
type TokenRequest struct {
	ClientID     string `json:"client_id" validate:"required"`
	ClientSecret string `json:"client_secret" validate:"required"`
}

// TokenResponse carries an issued bearer token.
type TokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int    `json:"expires_in"` // seconds
}
