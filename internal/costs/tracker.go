// Package costs tracks LLM spend against an optional budget. The scoring core
// is pure and free; the tracker guards the one genuinely shared mutable piece
// of state in the process, so all access serializes on an internal mutex.
package costs

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Pricing is the per-million-token price of a model.
type Pricing struct {
	InputUSD  float64 // per 1M input tokens
	OutputUSD float64 // per 1M output tokens
}

// defaultPricing covers the Gemini models the enricher uses. Unknown models
// are billed at the most expensive known rate so the budget errs safe.
var defaultPricing = map[string]Pricing{
	"gemini-2.5-flash-lite": {InputUSD: 0.10, OutputUSD: 0.40},
	"gemini-2.5-flash":      {InputUSD: 0.30, OutputUSD: 2.50},
	"gemini-2.5-pro":        {InputUSD: 1.25, OutputUSD: 10.00},
}

var fallbackPricing = Pricing{InputUSD: 1.25, OutputUSD: 10.00}

// budgetWarnRatio is the spend fraction at which the tracker logs a warning.
const budgetWarnRatio = 0.8

// Usage is one recorded LLM call.
type Usage struct {
	Model        string    `json:"model"`
	InputTokens  int       `json:"input_tokens"`
	OutputTokens int       `json:"output_tokens"`
	CostUSD      float64   `json:"cost_usd"`
	At           time.Time `json:"at"`
}

// Tracker accumulates per-call usage and enforces a soft budget.
// A zero budget means unlimited.
type Tracker struct {
	mu      sync.Mutex
	budget  float64
	spent   float64
	usages  []Usage
	warned  bool
	pricing map[string]Pricing
	logger  *zap.Logger
}

// NewTracker creates a Tracker with the built-in pricing table.
func NewTracker(budgetUSD float64, logger *zap.Logger) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracker{budget: budgetUSD, pricing: defaultPricing, logger: logger}
}

// Record books one LLM call and returns its computed cost.
func (t *Tracker) Record(model string, inputTokens, outputTokens int) float64 {
	price, ok := t.pricing[model]
	if !ok {
		price = fallbackPricing
	}
	cost := float64(inputTokens)/1e6*price.InputUSD + float64(outputTokens)/1e6*price.OutputUSD

	t.mu.Lock()
	defer t.mu.Unlock()

	t.spent += cost
	t.usages = append(t.usages, Usage{
		Model:        model,
		InputTokens:  inputTokens,
		OutputTokens: outputTokens,
		CostUSD:      cost,
		At:           time.Now().UTC(),
	})

	if t.budget > 0 && !t.warned && t.spent >= budgetWarnRatio*t.budget {
		t.warned = true
		t.logger.Warn("LLM spend approaching budget",
			zap.Float64("spent_usd", t.spent),
			zap.Float64("budget_usd", t.budget))
	}

	return cost
}

// SpentUSD returns the total recorded spend.
func (t *Tracker) SpentUSD() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.spent
}

// WithinBudget reports whether further LLM calls are allowed.
func (t *Tracker) WithinBudget() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.budget <= 0 || t.spent < t.budget
}

// Usages returns a copy of every recorded call.
func (t *Tracker) Usages() []Usage {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Usage, len(t.usages))
	copy(out, t.usages)
	return out
}
