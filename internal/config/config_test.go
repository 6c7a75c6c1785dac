package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, "{not json")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfig(t, `{"port": 8080, "min_confidence": 0.6, "model": "gemini-2.0-flash"}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 0.6, cfg.MinConfidence)
	assert.Equal(t, "gemini-2.0-flash", cfg.Model)
}

func TestValidate_Ranges(t *testing.T) {
	assert.NoError(t, (&Config{}).Validate())
	assert.Error(t, (&Config{MinConfidence: 1.5}).Validate())
	assert.Error(t, (&Config{MinScore: 150}).Validate())
	assert.Error(t, (&Config{TopN: -1}).Validate())
	assert.Error(t, (&Config{Port: 70000}).Validate())
	assert.Error(t, (&Config{BudgetUSD: -1}).Validate())
}

func TestValidate_TaxonomyFileMustExist(t *testing.T) {
	cfg := &Config{Taxonomy: filepath.Join(t.TempDir(), "taxonomy.json")}
	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Port: 9000}
	merged := cfg.MergeWithDefaults(Config{
		Port:     8080,
		Model:    "gemini-2.0-flash",
		Taxonomy: "taxonomy.json",
	})

	assert.Equal(t, 9000, merged.Port) // explicit value wins
	assert.Equal(t, "gemini-2.0-flash", merged.Model)
	assert.Equal(t, "taxonomy.json", merged.Taxonomy)
	assert.Equal(t, 0.5, merged.MinConfidence) // built-in fallback
}

func TestNewJWTConfig(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := NewJWTConfig()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "")
	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, 24, cfg.ExpirationHours)

	t.Setenv("JWT_EXPIRATION_HOURS", "0")
	_, err = NewJWTConfig()
	assert.Error(t, err)

	t.Setenv("JWT_EXPIRATION_HOURS", "abc")
	_, err = NewJWTConfig()
	assert.Error(t, err)
}

func TestSecretConfig_HashAndVerify(t *testing.T) {
	t.Setenv("BCRYPT_COST", "10")
	t.Setenv("SECRET_PEPPER", "pepper")

	cfg, err := NewSecretConfig()
	require.NoError(t, err)

	hash, err := cfg.HashSecret("client-secret")
	require.NoError(t, err)
	assert.True(t, cfg.VerifySecret("client-secret", hash))
	assert.False(t, cfg.VerifySecret("wrong", hash))

	// The pepper is part of the hash input.
	unpeppered := &SecretConfig{BcryptCost: 10}
	assert.False(t, unpeppered.VerifySecret("client-secret", hash))
}

func TestNewSecretConfig_CostRange(t *testing.T) {
	t.Setenv("BCRYPT_COST", "9")
	_, err := NewSecretConfig()
	assert.Error(t, err)

	t.Setenv("BCRYPT_COST", "15")
	_, err = NewSecretConfig()
	assert.Error(t, err)
}
