package store

import (
	"context"
	"fmt"

	"github.com/jonathan/profile-matcher/internal/costs"
)

// SaveUsage persists one LLM usage record.
func (s *Store) SaveUsage(ctx context.Context, usage costs.Usage) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO llm_usage (id, model, input_tokens, output_tokens, cost_usd, recorded_at)
		 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5)`,
		usage.Model, usage.InputTokens, usage.OutputTokens, usage.CostUSD, usage.At,
	)
	if err != nil {
		return fmt.Errorf("failed to save usage: %w", err)
	}
	return nil
}

// TotalCostUSD sums every recorded LLM cost.
func (s *Store) TotalCostUSD(ctx context.Context) (float64, error) {
	var total float64
	err := s.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(cost_usd), 0) FROM llm_usage`,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to total usage: %w", err)
	}
	return total, nil
}
