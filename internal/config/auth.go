package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// JWTConfig holds configuration for JWT token generation and validation.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

// NewJWTConfig creates a JWT configuration from environment variables.
// It reads JWT_SECRET (required) and JWT_EXPIRATION_HOURS (default: 24).
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	expirationStr := os.Getenv("JWT_EXPIRATION_HOURS")
	if expirationStr == "" {
		expirationStr = "24"
	}

	expirationHours, err := strconv.Atoi(expirationStr)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %v", err)
	}
	if expirationHours < 1 {
		return nil, fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1 hour, got: %d", expirationHours)
	}

	return &JWTConfig{Secret: secret, ExpirationHours: expirationHours}, nil
}

// SecretConfig holds configuration for hashing and verifying API client
// secrets.
type SecretConfig struct {
	BcryptCost int
	Pepper     string // optional global secret mixed into every hash
}

// NewSecretConfig creates a secret-hashing configuration from environment
// variables. It reads BCRYPT_COST (default: 12) and optionally SECRET_PEPPER.
func NewSecretConfig() (*SecretConfig, error) {
	costStr := os.Getenv("BCRYPT_COST")
	if costStr == "" {
		costStr = "12"
	}

	cost, err := strconv.Atoi(costStr)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %v", err)
	}
	if cost < 10 || cost > 14 {
		return nil, fmt.Errorf("bcrypt cost out of range: %d (must be 10-14)", cost)
	}

	return &SecretConfig{BcryptCost: cost, Pepper: os.Getenv("SECRET_PEPPER")}, nil
}

// HashSecret hashes a client secret using bcrypt.
func (c *SecretConfig) HashSecret(secret string) (string, error) {
	if c.Pepper != "" {
		secret += c.Pepper
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}
	return string(hash), nil
}

// VerifySecret verifies a client secret against a stored hash.
func (c *SecretConfig) VerifySecret(secret, storedHash string) bool {
	if c.Pepper != "" {
		secret += c.Pepper
	}
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(secret)) == nil
}
