package parrotls

import (
	"fmt"

	"github.com/parrotls/parrotls/internal/jitter"
	"github.com/parrotls/parrotls/internal/model"
	"github.com/parrotls/parrotls/internal/netdial"
	"go.uber.org/zap"
)

// Config is the external configuration surface (spec.md §6 "Configuration
// surface"). Zero-value fields take the documented default where one
// exists; New validates the rest.
type Config struct {
	// Template selects the active preset by name: "chrome-like",
	// "firefox-like", "safari-like", "edge-like", or a name previously
	// registered on the template Store for a custom template. When
	// RunPipeline is given no explicit template, Template is the fixed
	// choice under RotationNone (empty falls back to the first rotation
	// candidate, chrome-like by default); under any other RotationPolicy the
	// rotation picks and Template is not consulted.
	Template string

	// RandomizationLevel governs engine policy (spec.md §4.3). Zero value
	// is LevelNone; callers that want the engine's default working policy
	// should set LevelMedium explicitly.
	RandomizationLevel model.RandomizationLevel

	// EnableCache toggles the Fingerprint Cache. When false, every call
	// behaves as a cold path and RecordOutcome is a no-op.
	EnableCache bool
	// MaxCacheSize bounds the cache. 0 disables the cache outright
	// (spec.md §8 boundary: "max_cache_size = 0 -> cache is effectively
	// disabled").
	MaxCacheSize int

	// RotationPolicy and RotationTemplates govern template selection
	// across calls when RotationPolicy is not RotationNone and RunPipeline
	// is given no explicit template (spec.md §3).
	RotationPolicy    model.TemplateRotationPolicy
	RotationTemplates []string

	// TimingJitter optionally sleeps a sampled duration before the
	// handshake is attempted (spec.md §4.7).
	TimingJitter jitter.Config

	// SessionTicketReuse defaults to true (spec.md §4.6): session
	// resumption reuses the first-seen skeleton for consistency.
	SessionTicketReuse *bool

	// Proxy routes the dial through an HTTP CONNECT or SOCKS5 proxy
	// instead of connecting directly. Nil means direct.
	Proxy *netdial.ProxyConfig

	// ECHActive tells RunPipeline that the caller is negotiating Encrypted
	// Client Hello for this connection. The four-phase contract assumes a
	// single plaintext ClientHello; RunPipeline refuses with
	// model.ErrECHActive rather than silently customizing only one side of
	// an ECH inner/outer pair (spec.md §9, Open Question 3).
	ECHActive bool

	// Logger receives absorbed-error notices (cache eviction, naturalness
	// degradation). A nil Logger defaults to zap.NewNop().
	Logger *zap.Logger
}

// sessionTicketReuse resolves the SessionTicketReuse default.
func (c Config) sessionTicketReuse() bool {
	if c.SessionTicketReuse == nil {
		return true
	}
	return *c.SessionTicketReuse
}

// validate checks the configuration-time invariants spec.md §8 calls out
// ("Empty rotation_templates with policy != None -> configuration error at
// initialization").
func (c Config) validate() error {
	if c.RotationPolicy != model.RotationNone && len(c.RotationTemplates) == 0 {
		return model.NewValidationError(fmt.Sprintf("parrotls: rotation policy %s configured with empty RotationTemplates", c.RotationPolicy))
	}
	return nil
}
