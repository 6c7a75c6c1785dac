// Package ratelimit provides per-client token-bucket rate limiting.
package ratelimit

import (
	"sync"
	"time"
)

// TokenBucket is a single client's bucket: capacity tokens, refilled at a
// steady rate. Access serializes on the mutex.
type TokenBucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return &TokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// allow consumes a token if one is available.
func (tb *TokenBucket) allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.refill()
	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true
	}
	return false
}

// status returns remaining tokens and when the bucket refills completely.
func (tb *TokenBucket) status() (remaining int, resetTime time.Time) {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.refill()
	remaining = int(tb.tokens)

	now := tb.lastRefill
	if tb.tokens < float64(tb.capacity) {
		needed := float64(tb.capacity) - tb.tokens
		resetTime = now.Add(time.Duration(needed / tb.refillRate * float64(time.Second)))
	} else {
		resetTime = now
	}
	return remaining, resetTime
}

// refill adds elapsed-time tokens up to capacity. Caller holds the mutex.
func (tb *TokenBucket) refill() {
	now := time.Now()
	tb.tokens = min(float64(tb.capacity), tb.tokens+now.Sub(tb.lastRefill).Seconds()*tb.refillRate)
	tb.lastRefill = now
}

// Info describes the rate-limit state returned with every decision.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Limiter manages buckets for every client and endpoint combination.
type Limiter struct {
	buckets map[string]*TokenBucket
	mu      sync.RWMutex

	config *Config

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
	lastAccess    map[string]time.Time
	accessMu      sync.RWMutex
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// NewLimiter creates a limiter and starts its bucket-cleanup goroutine.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    1000,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
			Whitelist:       make(map[string]bool),
			Blacklist:       make(map[string]bool),
		}
	}

	limiter := &Limiter{
		buckets:    make(map[string]*TokenBucket),
		config:     config,
		lastAccess: make(map[string]time.Time),
	}

	if config.Enabled && config.CleanupInterval > 0 {
		limiter.cleanupTicker = time.NewTicker(config.CleanupInterval)
		limiter.cleanupStop = make(chan struct{})
		go limiter.cleanupLoop()
	}

	return limiter
}

// Allow decides whether a request from clientID against endpoint/method may
// proceed.
func (l *Limiter) Allow(clientID, endpoint, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{}
	}

	endpointConfig := MatchEndpoint(endpoint, method, l.config.EndpointConfigs)
	if endpointConfig == nil {
		endpointConfig = &EndpointConfig{
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
			Burst:  l.config.DefaultLimit,
		}
	}
	if endpointConfig.Limit <= 0 {
		// Unlimited endpoint, e.g. health checks.
		return true, Info{Allowed: true}
	}

	bucketKey := clientID + ":" + endpoint + ":" + method
	bucket := l.getBucket(bucketKey, endpointConfig.Limit, endpointConfig.Window, endpointConfig.Burst)

	l.accessMu.Lock()
	l.lastAccess[bucketKey] = time.Now()
	l.accessMu.Unlock()

	allowed := bucket.allow()
	remaining, resetTime := bucket.status()

	var retryAfter time.Duration
	if !allowed {
		if retryAfter = time.Until(resetTime); retryAfter < 0 {
			retryAfter = 0
		}
	}

	return allowed, Info{
		Allowed:    allowed,
		Limit:      endpointConfig.Limit,
		Remaining:  remaining,
		ResetTime:  resetTime,
		RetryAfter: retryAfter,
	}
}

func (l *Limiter) getBucket(key string, limit int, window time.Duration, burst int) *TokenBucket {
	l.mu.RLock()
	bucket, exists := l.buckets[key]
	l.mu.RUnlock()
	if exists {
		return bucket
	}

	capacity := burst
	if capacity <= 0 {
		capacity = limit
	}
	bucket = newTokenBucket(capacity, float64(limit)/window.Seconds())

	l.mu.Lock()
	defer l.mu.Unlock()
	if existing, exists := l.buckets[key]; exists {
		return existing
	}
	l.buckets[key] = bucket
	return bucket
}

func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.cleanupTicker.C:
			l.cleanupBuckets()
		case <-l.cleanupStop:
			return
		}
	}
}

// cleanupBuckets drops buckets idle for over an hour.
func (l *Limiter) cleanupBuckets() {
	cutoff := time.Now().Add(-1 * time.Hour)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.accessMu.Lock()
	defer l.accessMu.Unlock()

	for key, last := range l.lastAccess {
		if last.Before(cutoff) {
			delete(l.buckets, key)
			delete(l.lastAccess, key)
		}
	}
}

// Stop halts the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
	}
	if l.cleanupStop != nil {
		close(l.cleanupStop)
	}
}
