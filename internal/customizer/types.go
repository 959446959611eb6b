// Package customizer implements the four-phase Customizer Pipeline
// contract (spec.md §4.5): an ordered, explicit chain of phase hooks the
// host TLS stack invokes while building a ClientHello, composing
// internal/template, internal/randomize, and internal/fpcache behind a
// DefaultOrchestrator.
package customizer

import "github.com/parrotls/parrotls/internal/model"

// ConfigParams is the Phase 1 payload: opaque configuration parameters a
// hook may read and a template/seed selection a hook may write.
type ConfigParams struct {
	Target model.TargetKey

	// RequestedTemplate optionally pins a template by name; empty means
	// "let the rotation policy decide."
	RequestedTemplate string
	Level             model.RandomizationLevel

	// SelectedTemplate is set by DefaultOrchestrator.OnConfigResolve and
	// may be overridden by a later hook in the chain.
	SelectedTemplate model.Template
	// Seed is handed to the orchestrator's seedRNG for every random decision
	// taken in later phases; a cache replay is reproduced deterministically
	// only when that seedRNG honors the seed (productionRNG does not).
	Seed uint64
	// ReplayPath is true when a cache hit seeded this call from a
	// previously successful ClientHelloConfig.
	ReplayPath bool
	// CachedConfig holds the replayed skeleton when ReplayPath is true.
	CachedConfig model.ClientHelloConfig
	// ECHActive is true when the caller is negotiating Encrypted Client
	// Hello for this connection. RunPipeline checks this before invoking
	// any phase hook and refuses with model.ErrECHActive rather than
	// reinterpret the pipeline over an ECH inner/outer pair.
	ECHActive bool
}

// Components is the Phase 2 payload: the mutable cipher-suite list and
// extension-type list the host stack has built from canonical defaults.
type Components struct {
	CipherSuites []uint16
	Extensions   []uint16
}

// ExtensionCollection is the Phase 3 extension container: type-indexed
// lookup, append, reorder, and removal by type (spec.md §4.5 Phase 3
// callback contract).
type ExtensionCollection struct {
	order []uint16
	data  map[uint16][]byte
}

// NewExtensionCollection builds a collection from an ordered extension-type
// list and per-type opaque payloads (entries with no corresponding data are
// left for the host stack to encode natively).
func NewExtensionCollection(order []uint16, data map[uint16][]byte) *ExtensionCollection {
	ec := &ExtensionCollection{
		order: append([]uint16(nil), order...),
		data:  make(map[uint16][]byte, len(data)),
	}
	for k, v := range data {
		ec.data[k] = append([]byte(nil), v...)
	}
	return ec
}

// Get returns the opaque payload for ext, if one is set.
func (ec *ExtensionCollection) Get(ext uint16) ([]byte, bool) {
	v, ok := ec.data[ext]
	return v, ok
}

// Append adds ext to the order (if not already present) and sets its
// payload.
func (ec *ExtensionCollection) Append(ext uint16, data []byte) {
	if !containsExt(ec.order, ext) {
		ec.order = append(ec.order, ext)
	}
	ec.data[ext] = data
}

// Remove drops ext from both the order and the payload map.
func (ec *ExtensionCollection) Remove(ext uint16) {
	delete(ec.data, ext)
	for i, e := range ec.order {
		if e == ext {
			ec.order = append(ec.order[:i], ec.order[i+1:]...)
			return
		}
	}
}

// Reorder replaces the extension order wholesale. newOrder must be a
// permutation of the current order (same multiset of extension types);
// callers that want to add or remove an extension must use Append/Remove
// first.
func (ec *ExtensionCollection) Reorder(newOrder []uint16) error {
	if len(newOrder) != len(ec.order) {
		return model.NewValidationError("Reorder: new order length does not match current extension count")
	}
	seen := make(map[uint16]struct{}, len(newOrder))
	for _, e := range newOrder {
		if _, ok := ec.data[e]; !ok {
			if !containsExt(ec.order, e) {
				return model.NewValidationError("Reorder: unknown extension type in new order")
			}
		}
		if _, dup := seen[e]; dup {
			return model.NewValidationError("Reorder: duplicate extension type in new order")
		}
		seen[e] = struct{}{}
	}
	ec.order = append([]uint16(nil), newOrder...)
	return nil
}

// Order returns the current extension-type order.
func (ec *ExtensionCollection) Order() []uint16 {
	return append([]uint16(nil), ec.order...)
}

func containsExt(order []uint16, ext uint16) bool {
	for _, e := range order {
		if e == ext {
			return true
		}
	}
	return false
}

// ClientHelloStruct is the Phase 3 payload: the mutable pre-marshal
// ClientHello structure.
type ClientHelloStruct struct {
	ClientVersion uint16
	Random        [32]byte
	SessionID     []byte
	ServerName    string
	CipherSuites  []uint16
	Extensions    *ExtensionCollection
}

// WireBytes is the Phase 4 payload: the mutable fully-encoded byte buffer.
type WireBytes struct {
	Bytes []byte
}
