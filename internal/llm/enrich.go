package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/profile-matcher/internal/types"
)

// maxEnrichedSuggestions bounds how many model-written suggestions are kept.
const maxEnrichedSuggestions = 5

// Enricher rewrites the templated improvement suggestions on a detailed match
// result into specific, actionable advice.
type Enricher struct {
	client Client
}

// NewEnricher wraps a Client. A nil client yields a disabled enricher.
func NewEnricher(client Client) *Enricher {
	return &Enricher{client: client}
}

// Enabled reports whether enrichment can run.
func (e *Enricher) Enabled() bool {
	return e != nil && e.client != nil
}

// EnrichSuggestions asks the model for improved suggestions and replaces
// score.Suggestions in place. The templated suggestions are kept on any
// failure; enrichment never breaks a match result.
func (e *Enricher) EnrichSuggestions(ctx context.Context, profile *types.Profile, job *types.JobPosting, score *types.MatchScore) error {
	if !e.Enabled() {
		return nil
	}

	raw, err := e.client.GenerateJSON(ctx, suggestionPrompt(profile, job, score), TierLite)
	if err != nil {
		return fmt.Errorf("suggestion enrichment failed: %w", err)
	}

	suggestions, err := parseSuggestions(raw)
	if err != nil {
		return err
	}
	if len(suggestions) > 0 {
		score.Suggestions = suggestions
	}
	return nil
}

func suggestionPrompt(profile *types.Profile, job *types.JobPosting, score *types.MatchScore) string {
	var b strings.Builder
	b.WriteString("You advise a candidate on closing the gap to a job posting.\n")
	fmt.Fprintf(&b, "Job title: %s\n", job.Title)
	fmt.Fprintf(&b, "Required skills: %s\n", strings.Join(job.RequiredSkills, ", "))
	fmt.Fprintf(&b, "Candidate headline: %s\n", profile.Headline)
	fmt.Fprintf(&b, "Matched skills: %s\n", strings.Join(score.MatchedSkills, ", "))
	fmt.Fprintf(&b, "Missing skills: %s\n", strings.Join(score.MissingSkills, ", "))
	fmt.Fprintf(&b, "Draft suggestions: %s\n", strings.Join(score.Suggestions, "; "))
	fmt.Fprintf(&b, "Return a JSON array of at most %d short, specific suggestion strings.\n", maxEnrichedSuggestions)
	return b.String()
}

func parseSuggestions(raw string) ([]string, error) {
	var suggestions []string
	if err := json.Unmarshal([]byte(raw), &suggestions); err != nil {
		return nil, fmt.Errorf("unexpected enrichment response: %w", err)
	}

	out := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) > maxEnrichedSuggestions {
		out = out[:maxEnrichedSuggestions]
	}
	return out, nil
}
