package customizer

import (
	"sync"
	"time"

	"github.com/parrotls/parrotls/internal/fpcache"
	"github.com/parrotls/parrotls/internal/model"
	"github.com/parrotls/parrotls/internal/randomize"
	"go.uber.org/zap"
)

// SharedState groups the three pieces of mutable state a Customizer owns
// across concurrent calls: the fingerprint cache, the rotation counter, and
// the seed source. It is constructed once by the root package's New and
// never copied — every Customizer method that touches shared state does so
// through the single *SharedState pointer (spec.md §9 "process-wide
// handle... atomic reference-counted pointer to a struct containing a
// mutex-wrapped cache and an atomic rotation counter").
//
// Lock granularity: the cache's own mutex is taken only inside
// fpcache.Cache methods; seedMu here is taken only around seedSource draws
// inside nextSeed. Customizer itself never holds both at once, and the
// randomize.Engine's Apply call takes no lock of its own — it operates on
// the per-call RNG the orchestrator builds from a seed nextSeed hands out,
// never on shared state directly.
type SharedState struct {
	cache   *fpcache.Cache
	rotator *rotator
	engine  *randomize.Engine

	seedMu     sync.Mutex
	seedSource model.RNG
}

// NewSharedState constructs the shared state a Customizer holds for its
// entire lifetime. cacheSize <= 0 disables the cache (spec.md §8
// "max_cache_size = 0 -> cache is effectively disabled"). candidates, when
// empty, defaults to the four built-in templates for rotation purposes.
func NewSharedState(cacheSize int, policy model.TemplateRotationPolicy, fixedTemplate string, candidates []string, seedSource model.RNG, logger *zap.Logger) *SharedState {
	return &SharedState{
		cache:      fpcache.New(cacheSize, logger),
		rotator:    newRotator(policy, fixedTemplate, candidates),
		engine:     randomize.NewEngine(logger),
		seedSource: seedSource,
	}
}

// nextSeed draws one 64-bit seed from the shared seed source under its own
// short-held lock, so concurrent calls never race on the underlying
// generator's internal state.
func (s *SharedState) nextSeed() uint64 {
	s.seedMu.Lock()
	defer s.seedMu.Unlock()
	return s.seedSource.NextUint64()
}

// RecordOutcome reports a handshake result to the Fingerprint Cache
// (spec.md §6 "Outcome callback"). Exposed so the root package's
// PipelineRun.RecordOutcome can reach the cache without depending on
// fpcache directly.
func (s *SharedState) RecordOutcome(target model.TargetKey, cfg model.ClientHelloConfig, success bool) {
	s.cache.RecordResult(target, cfg, success, time.Now())
}

// CacheStats exposes fpcache.Cache.GetStats for the root package's
// diagnostics surface.
func (s *SharedState) CacheStats(target model.TargetKey) (fpcache.Stats, bool) {
	return s.cache.GetStats(target)
}
