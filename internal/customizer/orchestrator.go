package customizer

import (
	"github.com/parrotls/parrotls/internal/extcodec"
	"github.com/parrotls/parrotls/internal/model"
	"github.com/parrotls/parrotls/internal/template"
)

// DefaultOrchestrator composes the Template Store, Randomization Engine,
// and Fingerprint Cache into the reference four-phase implementation
// (spec.md §4.5 "Default orchestrator behavior"). A fresh instance is
// created per pipeline run (see NewDefaultOrchestrator), so its fields are
// call-scoped scratch state, not shared mutable state — the only shared
// state it touches lives behind the *SharedState pointer it holds, and
// every access to that goes through SharedState's own synchronization.
type DefaultOrchestrator struct {
	shared *SharedState
	store  *template.Store
	// seedRNG builds the model.RNG for a run from a 64-bit seed. Tests pass
	// testrng.New, which honors the seed, so a seed recorded in a cache entry
	// reproduces the same perturbation on replay; the root package's
	// productionRNG ignores the seed and returns a fresh crypto/rand source.
	seedRNG func(seed uint64) model.RNG

	// Cross-phase scratch, populated by OnConfigResolve and read by later
	// phases of the same run.
	target  model.TargetKey
	tpl     model.Template
	level   model.RandomizationLevel
	seed    uint64
	replay  bool
	cached  model.ClientHelloConfig
	applied model.ClientHelloConfig
}

// NewDefaultOrchestrator returns a fresh, call-scoped orchestrator bound to
// shared. target is fixed at construction since spec.md's payloads for
// phases 2-4 carry no target themselves.
func NewDefaultOrchestrator(shared *SharedState, store *template.Store, seedRNG func(uint64) model.RNG, target model.TargetKey) *DefaultOrchestrator {
	return &DefaultOrchestrator{shared: shared, store: store, seedRNG: seedRNG, target: target}
}

// OnConfigResolve implements Phase 1: pick the active template (by fixed
// choice or rotation policy), draw a seed, and attempt a cache hit.
func (o *DefaultOrchestrator) OnConfigResolve(p *ConfigParams) error {
	name := p.RequestedTemplate
	if name == "" {
		name = o.shared.rotator.next(o.seedRNG(o.shared.nextSeed()))
	}
	tpl, ok := o.store.Lookup(name)
	if !ok {
		return model.NewValidationError("unknown template requested: " + name)
	}
	o.tpl = tpl
	o.level = p.Level
	o.seed = o.shared.nextSeed()

	if cfg, ok := o.shared.cache.GetWorkingFingerprint(o.target); ok {
		o.replay = true
		o.cached = cfg
		// Replay reseeds from the cached entry's own seed, so with a
		// seed-honoring seedRNG the Light perturbation over the cached
		// skeleton is reproducible relative to that entry's history (spec.md
		// §4.4 "Variation-on-read contract").
		o.seed = cfg.Seed
	}

	p.SelectedTemplate = tpl
	p.Seed = o.seed
	p.ReplayPath = o.replay
	p.CachedConfig = o.cached
	return nil
}

// OnComponentsReady implements Phase 2: on the replay path, reapply the
// cached cipher-suite/extension order and perturb it Lightly; on the cold
// path, invoke the engine at the configured level against the template.
func (o *DefaultOrchestrator) OnComponentsReady(c *Components) error {
	rng := o.seedRNG(o.seed)

	if o.replay {
		replayTpl := o.tpl
		replayTpl.CipherSuites = append([]uint16(nil), o.cached.CipherSuites...)
		replayTpl.ExtensionOrder = append([]uint16(nil), o.cached.ExtensionOrder...)
		cfg, err := o.shared.engine.Apply(replayTpl, model.LevelLight, rng)
		if err != nil {
			return model.NewHookError("components_ready", err)
		}
		o.applied = cfg
	} else {
		cfg, err := o.shared.engine.Apply(o.tpl, o.levelFor(c), rng)
		if err != nil {
			return model.NewHookError("components_ready", err)
		}
		o.applied = cfg
	}
	o.applied.Seed = o.seed

	c.CipherSuites = append([]uint16(nil), o.applied.CipherSuites...)
	c.Extensions = append([]uint16(nil), o.applied.ExtensionOrder...)
	return nil
}

// levelFor resolves the configured RandomizationLevel for this run. The
// Components payload carries no level field (spec.md's Phase 2 contract is
// lists only); the level instead travels via ConfigParams.Level, captured
// into o.level during OnConfigResolve. Per Config.RandomizationLevel's
// documented contract, the zero value is LevelNone (no randomization) —
// callers who want the engine's working default must set LevelMedium
// explicitly, so this performs no override here.
func (o *DefaultOrchestrator) levelFor(_ *Components) model.RandomizationLevel {
	return o.level
}

// OnStructReady implements Phase 3: compute the padding length, add/update
// the Padding extension, and fill in template-declared values the host
// stack had not already set authoritatively.
func (o *DefaultOrchestrator) OnStructReady(s *ClientHelloStruct) error {
	if s.Extensions == nil {
		s.Extensions = NewExtensionCollection(nil, nil)
	}

	// Ensure every extension the engine decided on is present before
	// reordering: Reorder only accepts a permutation of the current set, so
	// any entry the host stack had not already built must be appended
	// (with whatever data this phase already knows, or an empty placeholder
	// for the host stack to fill) first.
	for _, ext := range o.applied.ExtensionOrder {
		if _, ok := s.Extensions.Get(ext); ok {
			continue
		}
		if data, ok := o.applied.ExtensionData[ext]; ok {
			s.Extensions.Append(ext, data)
			continue
		}
		if data := o.codecPayload(ext); data != nil {
			if o.applied.ExtensionData == nil {
				o.applied.ExtensionData = map[uint16][]byte{}
			}
			o.applied.ExtensionData[ext] = data
			s.Extensions.Append(ext, data)
			continue
		}
		s.Extensions.Append(ext, []byte{})
	}

	if _, ok := s.Extensions.Get(model.ExtSupportedVersions); !ok {
		s.Extensions.Append(model.ExtSupportedVersions, encodeVersionList(o.tpl.SupportedVersions))
	}
	if _, ok := s.Extensions.Get(model.ExtSupportedGroups); !ok {
		s.Extensions.Append(model.ExtSupportedGroups, encodeUint16List(o.tpl.SupportedGroups))
	}
	if _, ok := s.Extensions.Get(model.ExtSignatureAlgorithms); !ok {
		s.Extensions.Append(model.ExtSignatureAlgorithms, encodeUint16List(o.tpl.SignatureAlgorithms))
	}
	if _, ok := s.Extensions.Get(model.ExtALPN); !ok {
		// ALPN's wire format (RFC 7301 §3.1: 2-byte list length, then
		// length-prefixed protocol names) is identical in shape to the
		// application_settings codec's payload, so it is reused here rather
		// than duplicating the same framing logic.
		s.Extensions.Append(model.ExtALPN, extcodec.EncodeApplicationSettings(o.tpl.ALPNProtocols))
	}

	// Padding is sized and appended last, after every other extension this
	// phase adds, so that padding up never needs to re-run to account for a
	// later addition (spec.md §4.5 Phase 3: "use Padding to pad up, never
	// trim").
	padding := extcodec.EncodePadding(o.applied.PaddingLength)
	s.Extensions.Append(model.ExtPadding, padding)

	if err := s.Extensions.Reorder(mergeOrder(s.Extensions.Order(), o.applied.ExtensionOrder)); err != nil {
		return err
	}

	s.CipherSuites = append([]uint16(nil), o.applied.CipherSuites...)
	return model.ValidateExtensionOrder(s.Extensions.Order())
}

// OnTransformWireBytes implements Phase 4. The default is identity: no
// byte-level transform is applied unless a caller-supplied hook needs one
// (spec.md §4.5 "Default is identity").
func (o *DefaultOrchestrator) OnTransformWireBytes(*WireBytes) error {
	return nil
}

// AssembledConfig exposes the ClientHelloConfig this run produced, for the
// facade to pass to fpcache.Cache.RecordResult once the handshake outcome
// is known (spec.md §4.5 "After the handshake outcome is known").
func (o *DefaultOrchestrator) AssembledConfig() model.ClientHelloConfig {
	return o.applied
}

// Target exposes the target this run was constructed for.
func (o *DefaultOrchestrator) Target() model.TargetKey {
	return o.target
}

func mergeOrder(current, preferred []uint16) []uint16 {
	preferredSet := make(map[uint16]struct{}, len(preferred))
	for _, e := range preferred {
		preferredSet[e] = struct{}{}
	}
	out := append([]uint16(nil), preferred...)
	for _, e := range current {
		if _, ok := preferredSet[e]; !ok {
			out = append(out, e)
		}
	}
	return out
}

// encodeVersionList frames values per RFC 8446 §4.2.1's ProtocolVersion
// vector: a 1-byte length prefix (byte count), not the 2-byte prefix the
// other uint16 vectors in this file use.
func encodeVersionList(values []uint16) []byte {
	body := make([]byte, 0, len(values)*2)
	for _, v := range values {
		body = append(body, byte(v>>8), byte(v))
	}
	out := make([]byte, 0, len(body)+1)
	out = append(out, byte(len(body)))
	return append(out, body...)
}

// encodeUint16List frames values per RFC 8446 §4.2.3's uint16-vector wire
// format: a 2-byte big-endian length prefix (byte count, not element count)
// followed by the concatenated 2-byte values.
func encodeUint16List(values []uint16) []byte {
	body := make([]byte, 0, len(values)*2)
	for _, v := range values {
		body = append(body, byte(v>>8), byte(v))
	}
	n := len(body)
	out := make([]byte, 0, n+2)
	out = append(out, byte(n>>8), byte(n))
	return append(out, body...)
}

// codecPayload synthesizes the wire payload for extensions this engine
// owns end-to-end via internal/extcodec, for the case where OnStructReady
// must add an extension the host stack never built (spec.md's Phase 3
// contract: this phase, not the host stack, is authoritative for these
// extensions' bytes). Returns nil for extensions uTLS or another native
// host stack encodes itself (key_share, signature_algorithms, and the
// plain presence-only/list extensions already handled above).
func (o *DefaultOrchestrator) codecPayload(ext uint16) []byte {
	switch ext {
	case model.ExtApplicationSettingsOld, model.ExtApplicationSettingsNew:
		return extcodec.EncodeApplicationSettings(alpsProtocols(o.tpl.ALPNProtocols))
	case model.ExtDelegatedCredentials:
		return extcodec.EncodeDelegatedCredentials(o.tpl.SignatureAlgorithms)
	case model.ExtCompressCertificate:
		return extcodec.EncodeCompressCertificate([]model.CertCompressionAlgo{model.CertCompressionBrotli, model.CertCompressionZlib})
	case model.ExtStatusRequest:
		return extcodec.EncodeStatusRequest(extcodec.StatusRequest{Type: extcodec.StatusTypeOCSP})
	case model.ExtSCT:
		return extcodec.EncodeSCT()
	default:
		return nil
	}
}

// alpsProtocols narrows a template's negotiated ALPN set down to the single
// protocol application_settings actually applies to (RFC draft-vvv-tls-alps:
// ALPS is only meaningful alongside h2); a template offering only http/1.1
// has nothing for this extension to say.
func alpsProtocols(alpn [][]byte) [][]byte {
	for _, p := range alpn {
		if string(p) == "h2" {
			return [][]byte{p}
		}
	}
	return nil
}
