// Package parrotls implements a ClientHello customization engine: given a
// browser-preset Template and a RandomizationLevel, it drives a four-phase
// hook pipeline that a host TLS stack invokes while building its
// ClientHello, producing connections whose fingerprint plausibly matches a
// real browser while still varying between calls.
package parrotls

import (
	"github.com/parrotls/parrotls/internal/customizer"
	"github.com/parrotls/parrotls/internal/fpcache"
	"github.com/parrotls/parrotls/internal/model"
	"github.com/parrotls/parrotls/internal/randomize/cryptorng"
	"github.com/parrotls/parrotls/internal/security"
	"github.com/parrotls/parrotls/internal/template"
	"go.uber.org/zap"
)

// Customizer is the process-wide handle a host TLS stack holds: a pointer
// to the shared cache, rotation counter, and randomization engine (spec.md
// §9, §5), plus the session tracker for resumption consistency (spec.md
// §4.6). Construct one with New and reuse it across every dial; never copy
// a Customizer by value.
type Customizer struct {
	cfg     Config
	shared  *customizer.SharedState
	store   *template.Store
	session *security.SessionTracker
}

// New validates cfg and constructs a Customizer. An error here is always a
// configuration-time error (spec.md §8 "configuration error at
// initialization"); Customizer never returns this class of error once
// built.
func New(cfg Config) (*Customizer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	cacheSize := cfg.MaxCacheSize
	if !cfg.EnableCache {
		cacheSize = 0
	}

	shared := customizer.NewSharedState(cacheSize, cfg.RotationPolicy, cfg.Template, cfg.RotationTemplates, cryptorng.New(), logger)

	return &Customizer{
		cfg:     cfg,
		shared:  shared,
		store:   template.Global(),
		session: security.NewSessionTracker(),
	}, nil
}

// productionRNG builds the per-call randomness source the randomization
// engine uses. crypto/rand has no seed parameter (spec.md §9's production
// RNG is a cryptographically strong source, not a reproducible one), so the
// seed value DefaultOrchestrator threads through is bookkeeping for cache
// replay/debugging purposes only — production "reseeding" on a cache hit
// reduces to drawing a fresh unpredictable stream, never to reproducing a
// prior one bit-for-bit. Tests use internal/randomize/testrng instead,
// where the seed is honored exactly, to get reproducible vectors.
func productionRNG(_ uint64) model.RNG {
	return cryptorng.New()
}

// RunPipeline drives the four-phase Customizer Pipeline contract for one
// target, returning a PipelineRun the caller uses to read the resolved
// components and to transform/record the outcome. DefaultOrchestrator
// always runs first (spec.md §4.5); extraHooks, if any, run after it for
// whichever phase interfaces they implement — explicit slice order is the
// explicit composition order (spec.md §9).
func (c *Customizer) RunPipeline(target model.TargetKey, requestedTemplate string, extraHooks ...any) (*PipelineRun, error) {
	orch := customizer.NewDefaultOrchestrator(c.shared, c.store, productionRNG, target)
	chain := append([]any{orch}, extraHooks...)

	// An empty requestedTemplate defers to the configured rotation policy
	// (or, under RotationNone, to Config.Template, which the rotator already
	// knows as its fixed choice — see NewSharedState).
	params := &customizer.ConfigParams{Target: target, RequestedTemplate: requestedTemplate, Level: c.cfg.RandomizationLevel, ECHActive: c.cfg.ECHActive}
	if params.ECHActive {
		return nil, model.ErrECHActive
	}
	for _, h := range chain {
		if hook, ok := h.(customizer.ConfigResolver); ok {
			if err := hook.OnConfigResolve(params); err != nil {
				return nil, model.NewHookError("config_resolve", err)
			}
		}
	}

	components := &customizer.Components{}
	for _, h := range chain {
		if hook, ok := h.(customizer.ComponentsHook); ok {
			if err := hook.OnComponentsReady(components); err != nil {
				return nil, model.NewHookError("components_ready", err)
			}
		}
	}

	structVal := &customizer.ClientHelloStruct{
		ServerName:   target.Host,
		CipherSuites: components.CipherSuites,
		Extensions:   customizer.NewExtensionCollection(components.Extensions, nil),
	}
	for _, h := range chain {
		if hook, ok := h.(customizer.StructHook); ok {
			if err := hook.OnStructReady(structVal); err != nil {
				return nil, model.NewHookError("struct_ready", err)
			}
		}
	}

	return &PipelineRun{
		customizer: c,
		orch:       orch,
		target:     target,
		params:     params,
		components: components,
		structVal:  structVal,
		chain:      chain,
	}, nil
}

// PipelineRun is the in-progress state of one RunPipeline call: the host
// stack reads Struct() to build its native ClientHello, optionally calls
// TransformWireBytes once the message is marshalled, then calls
// RecordOutcome after the handshake completes.
type PipelineRun struct {
	customizer *Customizer
	orch       *customizer.DefaultOrchestrator
	target     model.TargetKey
	params     *customizer.ConfigParams
	components *customizer.Components
	structVal  *customizer.ClientHelloStruct
	chain      []any
}

// Template returns the template this run resolved.
func (r *PipelineRun) Template() model.Template { return r.params.SelectedTemplate }

// Struct returns the Phase 3 ClientHello structure for the host stack to
// encode.
func (r *PipelineRun) Struct() *customizer.ClientHelloStruct { return r.structVal }

// TransformWireBytes runs Phase 4 over the marshalled ClientHello handshake
// message in place, returning the (possibly rewritten) bytes.
func (r *PipelineRun) TransformWireBytes(b []byte) ([]byte, error) {
	wb := &customizer.WireBytes{Bytes: b}
	for _, h := range r.chain {
		if hook, ok := h.(customizer.WireHook); ok {
			if err := hook.OnTransformWireBytes(wb); err != nil {
				return nil, model.NewHookError("transform_wire_bytes", err)
			}
		}
	}
	return wb.Bytes, nil
}

// RecordOutcome reports whether the handshake succeeded, updating the
// Fingerprint Cache entry for this run's target (spec.md §4.4, §6 "Outcome
// callback"). Safe to call even when caching is disabled; it is then a
// no-op.
func (r *PipelineRun) RecordOutcome(success bool) {
	r.customizer.shared.RecordOutcome(r.target, r.orch.AssembledConfig(), success)
}

// CacheStats exposes the Fingerprint Cache's current counters for target,
// for diagnostics/metrics callers.
func (c *Customizer) CacheStats(target model.TargetKey) (fpcache.Stats, bool) {
	return c.shared.CacheStats(target)
}

// FirstSeenSkeleton applies session-resumption consistency (spec.md §4.6):
// the first call for a given sessionID records cfg as the session's
// skeleton; subsequent calls for the same sessionID return that same
// skeleton instead of the newly-offered one, so a resumed session's
// fingerprint never drifts mid-session. A no-op passthrough when
// Config.SessionTicketReuse is false.
func (c *Customizer) FirstSeenSkeleton(sessionID string, cfg model.ClientHelloConfig) model.ClientHelloConfig {
	if !c.cfg.sessionTicketReuse() {
		return cfg
	}
	got, _ := c.session.FirstSeen(sessionID, cfg)
	return got
}

// InvalidateSession drops any tracked skeleton for sessionID.
func (c *Customizer) InvalidateSession(sessionID string) {
	c.session.Invalidate(sessionID)
}
