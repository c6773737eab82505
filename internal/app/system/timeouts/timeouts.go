// Package timeouts centralizes the deadlines handlers put on database
// and I/O work, so one place controls them and the tiers stay
// consistent across the app.
//
// Tier guide:
//   - Ping: connectivity checks
//   - Short: single-document reads
//   - Medium: list queries, simple writes
//   - Long: multi-step writes
//   - Batch: bulk work (retention pruning, uploads)
package timeouts

import (
	"context"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
)

type tier int

const (
	tierPing tier = iota
	tierShort
	tierMedium
	tierLong
	tierBatch
)

var defaults = map[tier]time.Duration{
	tierPing:   2 * time.Second,
	tierShort:  5 * time.Second,
	tierMedium: 10 * time.Second,
	tierLong:   30 * time.Second,
	tierBatch:  60 * time.Second,
}

var envNames = map[tier]string{
	tierPing:   "TIMEOUT_PING",
	tierShort:  "TIMEOUT_SHORT",
	tierMedium: "TIMEOUT_MEDIUM",
	tierLong:   "TIMEOUT_LONG",
	tierBatch:  "TIMEOUT_BATCH",
}

var (
	mu      sync.RWMutex
	current = func() map[tier]time.Duration {
		m := make(map[tier]time.Duration, len(defaults))
		for k, v := range defaults {
			m[k] = v
		}
		return m
	}()
)

func get(t tier) time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return current[t]
}

// Ping returns the connectivity-check timeout.
func Ping() time.Duration { return get(tierPing) }

// Short returns the timeout for single-document reads.
func Short() time.Duration { return get(tierShort) }

// Medium returns the timeout for list queries and simple writes.
func Medium() time.Duration { return get(tierMedium) }

// Long returns the timeout for multi-step writes.
func Long() time.Duration { return get(tierLong) }

// Batch returns the timeout for bulk operations.
func Batch() time.Duration { return get(tierBatch) }

// Config holds timeout overrides. Zero values keep the current setting.
type Config struct {
	Ping   time.Duration
	Short  time.Duration
	Medium time.Duration
	Long   time.Duration
	Batch  time.Duration
}

// Configure applies overrides. Call during startup, before handlers run.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	for t, d := range map[tier]time.Duration{
		tierPing:   cfg.Ping,
		tierShort:  cfg.Short,
		tierMedium: cfg.Medium,
		tierLong:   cfg.Long,
		tierBatch:  cfg.Batch,
	} {
		if d > 0 {
			current[t] = d
		}
	}
}

// ConfigureFromEnv applies TIMEOUT_PING, TIMEOUT_SHORT, TIMEOUT_MEDIUM,
// TIMEOUT_LONG and TIMEOUT_BATCH (Go duration strings, e.g. "500ms",
// "2m"). Unset or invalid values are ignored. Returns how many were
// applied.
func ConfigureFromEnv() int {
	mu.Lock()
	defer mu.Unlock()

	applied := 0
	for t, name := range envNames {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			current[t] = d
			applied++
		}
	}
	return applied
}

// Reset restores the default tiers. Test helper.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	for t, d := range defaults {
		current[t] = d
	}
}

// WithTimeout wraps context.WithTimeout and logs a warning on deadline
// expiry so slow operations are visible by name.
func WithTimeout(parent context.Context, timeout time.Duration, log *zap.Logger, operation string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return ctx, func() {
		if ctx.Err() == context.DeadlineExceeded && log != nil {
			log.Warn("operation timed out",
				zap.String("operation", operation),
				zap.Duration("timeout", timeout),
			)
		}
		cancel()
	}
}
