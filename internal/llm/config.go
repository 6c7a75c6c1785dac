// Package llm provides the optional Gemini-backed enrichment of match
// results. Everything in the scoring core works without it; a missing API key
// simply disables enrichment.
package llm

// ModelTier selects a capability level without hard-coding model names at
// call sites.
type ModelTier string

const (
	// TierLite handles simple generation such as suggestion phrasing.
	TierLite ModelTier = "lite"
	// TierStandard handles structured output with moderate reasoning.
	TierStandard ModelTier = "standard"
)

// Config maps tiers to concrete model names.
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini model mapping.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
	}
}

// Model returns the model name for a tier, falling back to lite.
func (c *Config) Model(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	return c.Models[TierLite]
}

// WithModel returns a copy of the config with one tier overridden.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	models := make(map[ModelTier]string, len(c.Models))
	for k, v := range c.Models {
		models[k] = v
	}
	models[tier] = model
	return &Config{Models: models}
}
