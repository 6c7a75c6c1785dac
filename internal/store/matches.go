package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/profile-matcher/internal/types"
)

// SaveMatchScore persists one match result and returns its record id.
func (s *Store) SaveMatchScore(ctx context.Context, score *types.MatchScore) (uuid.UUID, error) {
	payload, err := json.Marshal(score)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal match result: %w", err)
	}

	var id uuid.UUID
	err = s.pool.QueryRow(ctx,
		`INSERT INTO match_results (profile_id, job_id, overall_score, result)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		score.ProfileID, score.JobID, score.OverallScore, payload,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save match result: %w", err)
	}
	return id, nil
}

// GetMatchScore retrieves a stored match result by record id. A missing
// record returns (nil, nil).
func (s *Store) GetMatchScore(ctx context.Context, id uuid.UUID) (*types.MatchScore, error) {
	var payload []byte
	err := s.pool.QueryRow(ctx,
		`SELECT result FROM match_results WHERE id = $1`, id,
	).Scan(&payload)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get match result: %w", err)
	}

	var score types.MatchScore
	if err := json.Unmarshal(payload, &score); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match result: %w", err)
	}
	return &score, nil
}

// MatchFilters holds optional filters for listing stored match results.
type MatchFilters struct {
	ProfileID string
	JobID     string
	MinScore  float64
	Limit     int
}

// listMatchesQuery builds the filtered list query. Split out so the argument
// numbering stays testable without a database.
func listMatchesQuery(filters MatchFilters) (string, []any) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT result FROM match_results WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.ProfileID != "" {
		query += fmt.Sprintf(" AND profile_id = $%d", argNum)
		args = append(args, filters.ProfileID)
		argNum++
	}
	if filters.JobID != "" {
		query += fmt.Sprintf(" AND job_id = $%d", argNum)
		args = append(args, filters.JobID)
		argNum++
	}
	if filters.MinScore > 0 {
		query += fmt.Sprintf(" AND overall_score >= $%d", argNum)
		args = append(args, filters.MinScore)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY overall_score DESC, created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	return query, args
}

// ListMatchScores retrieves stored match results with optional filters,
// best score first.
func (s *Store) ListMatchScores(ctx context.Context, filters MatchFilters) ([]*types.MatchScore, error) {
	query, args := listMatchesQuery(filters)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list match results: %w", err)
	}
	defer rows.Close()

	var scores []*types.MatchScore
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan match result: %w", err)
		}
		var score types.MatchScore
		if err := json.Unmarshal(payload, &score); err != nil {
			return nil, fmt.Errorf("failed to unmarshal match result: %w", err)
		}
		scores = append(scores, &score)
	}
	return scores, nil
}

// SaveAnalysis persists one profile analysis.
func (s *Store) SaveAnalysis(ctx context.Context, analysis *types.ProfileAnalysis) error {
	payload, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO profile_analyses (id, profile_id, strength_score, analysis)
		 VALUES ($1, $2, $3, $4)`,
		analysis.ID, analysis.ProfileID, analysis.ProfileStrengthScore, payload,
	)
	if err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}
	return nil
}
