// Package fpcache implements the per-target working-fingerprint cache:
// remember, per model.TargetKey, the ClientHelloConfig that has produced a
// successful handshake, with reputation-scored eviction (spec.md §4.4).
package fpcache

import (
	"sync"
	"time"

	"github.com/parrotls/parrotls/internal/model"
	"go.uber.org/zap"
)

// confidenceK is the constant k in the reputation formula's confidence
// weight w = n/(n+k). spec.md §4.4 recommends k = 4.
const confidenceK = 4.0

type entry struct {
	config       model.ClientHelloConfig
	successCount uint32
	failureCount uint32
	lastUsed     time.Time
}

func (e *entry) reputation() float64 {
	n := float64(e.successCount + e.failureCount)
	if n == 0 {
		return 0.5
	}
	r := float64(e.successCount) / n
	w := n / (n + confidenceK)
	rep := 0.5*(1-w) + r*w
	if rep < 0 {
		return 0
	}
	if rep > 1 {
		return 1
	}
	return rep
}

// Stats is the externally visible snapshot GetStats returns.
type Stats struct {
	SuccessCount uint32
	FailureCount uint32
	Reputation   float64
	LastUsed     time.Time
}

// Cache is a bounded, per-target fingerprint cache. All exported fields are
// accessed only through the mutex-guarded operations below: mu protects
// entries in its entirety, so every method takes the lock for its full
// duration rather than attempting finer-grained locking — the cache sits
// off the hot path of any single handshake (it's read once at phase 1 and
// written once after the outcome is known), so contention is not a concern
// worth trading away simplicity for.
type Cache struct {
	mu      sync.Mutex
	entries map[model.TargetKey]*entry
	maxSize int
	logger  *zap.Logger
}

// New returns a Cache bounded at maxSize entries. maxSize == 0 disables the
// cache entirely (spec.md §8 boundary: "max_cache_size = 0 -> cache is
// effectively disabled; record_result is a no-op; get_working_fingerprint
// always returns nothing"); a negative maxSize is treated the same way. A
// nil logger defaults to zap.NewNop().
func New(maxSize int, logger *zap.Logger) *Cache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{
		entries: make(map[model.TargetKey]*entry),
		maxSize: maxSize,
		logger:  logger,
	}
}

// GetWorkingFingerprint returns a clone of the best-scoring entry for
// target, if one exists. The returned config is intended to be re-seeded
// and lightly perturbed before reuse (spec.md §4.4 "Variation-on-read
// contract") — GetWorkingFingerprint itself never mutates the stored
// config.
func (c *Cache) GetWorkingFingerprint(target model.TargetKey) (model.ClientHelloConfig, bool) {
	if c.maxSize <= 0 {
		return model.ClientHelloConfig{}, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[target]
	if !ok {
		return model.ClientHelloConfig{}, false
	}
	return e.config.Clone(), true
}

// RecordResult creates or updates the entry for target: on success,
// success_count increments and last_used advances to now; on failure,
// failure_count increments. Reputation is recomputed. If inserting a new
// key into a full cache, one entry is evicted first.
func (c *Cache) RecordResult(target model.TargetKey, config model.ClientHelloConfig, success bool, now time.Time) {
	if c.maxSize <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	e, exists := c.entries[target]
	if !exists {
		if len(c.entries) >= c.maxSize {
			c.evictLocked()
		}
		e = &entry{}
		c.entries[target] = e
	}

	e.config = config.Clone()
	if success {
		e.successCount++
		e.lastUsed = now
	} else {
		e.failureCount++
	}
}

// evictLocked removes the lowest-reputation entry, breaking ties by oldest
// last_used. Caller must hold the lock.
func (c *Cache) evictLocked() {
	var victim model.TargetKey
	var victimEntry *entry
	for k, e := range c.entries {
		if victimEntry == nil {
			victim, victimEntry = k, e
			continue
		}
		rep, victimRep := e.reputation(), victimEntry.reputation()
		if rep < victimRep || (rep == victimRep && e.lastUsed.Before(victimEntry.lastUsed)) {
			victim, victimEntry = k, e
		}
	}
	if victimEntry != nil {
		delete(c.entries, victim)
		c.logger.Debug("evicted fingerprint cache entry", zap.String("target", victim.String()))
	}
}

// ClearCache removes every entry.
func (c *Cache) ClearCache() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[model.TargetKey]*entry)
}

// InvalidateTarget removes the entry for target, if any.
func (c *Cache) InvalidateTarget(target model.TargetKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, target)
}

// GetStats returns a snapshot of target's counters and derived reputation.
func (c *Cache) GetStats(target model.TargetKey) (Stats, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[target]
	if !ok {
		return Stats{}, false
	}
	return Stats{
		SuccessCount: e.successCount,
		FailureCount: e.failureCount,
		Reputation:   e.reputation(),
		LastUsed:     e.lastUsed,
	}, true
}

// GetAllTargets returns every target currently cached, in no particular
// order.
func (c *Cache) GetAllTargets() []model.TargetKey {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.TargetKey, 0, len(c.entries))
	for k := range c.entries {
		out = append(out, k)
	}
	return out
}
