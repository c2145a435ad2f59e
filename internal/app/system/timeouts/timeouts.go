// Package timeouts provides centralized timeout values for backend calls.
//
// These values are used with context.WithTimeout around HTTP requests in
// the feature controllers. Centralizing them keeps the budget for each
// class of call consistent and easy to adjust.
//
// Guidelines for choosing a timeout:
//   - Short: single-record reads (profile, portfolio, one note)
//   - Medium: list fetches and ordinary writes
//   - Generate: AI-backed generation calls (roadmap analyze, activity
//     recommend, portfolio ai-generate, note Q&A), which routinely run
//     tens of seconds on the backend
package timeouts

import (
	"sync"
	"time"
)

// Default timeout values (used if Configure is not called).
const (
	DefaultShort    = 10 * time.Second
	DefaultMedium   = 20 * time.Second
	DefaultGenerate = 60 * time.Second
)

var mu sync.RWMutex

var (
	short    = DefaultShort
	medium   = DefaultMedium
	generate = DefaultGenerate
)

// Short returns the timeout for simple single-record operations.
func Short() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return short
}

// Medium returns the timeout for list fetches and ordinary writes.
func Medium() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return medium
}

// Generate returns the budget for AI-generation calls. It matches the
// HTTP client's own transport timeout so a hung generation is cut off
// by whichever fires first.
func Generate() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return generate
}

// Configure overrides the timeout values. Zero values keep the current
// setting. Safe to call at startup before controllers are in use.
func Configure(shortT, mediumT, generateT time.Duration) {
	mu.Lock()
	defer mu.Unlock()
	if shortT > 0 {
		short = shortT
	}
	if mediumT > 0 {
		medium = mediumT
	}
	if generateT > 0 {
		generate = generateT
	}
}
