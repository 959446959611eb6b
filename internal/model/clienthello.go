package model

import "time"

// ClientHelloConfig is the faithful snapshot the Fingerprint Cache stores
// and later replays with small variation (spec.md §3).
type ClientHelloConfig struct {
	TemplateName string

	CipherSuites   []uint16
	ExtensionOrder []uint16
	// ExtensionData holds the opaque per-extension payload bytes, keyed by
	// extension-type. Only extensions the engine or a codec has concrete
	// bytes for appear here; extensions the host stack builds natively may
	// be present in ExtensionOrder with no corresponding entry.
	ExtensionData map[uint16][]byte

	// GreasePositions are indices into the final extension list (and,
	// separately tracked, the final cipher-suite list) where a GREASE value
	// was inserted.
	GreaseExtensionPositions []int
	GreaseCipherPositions    []int

	PaddingLength int

	// Seed is the 64-bit seed this config's RNG was built from. A cache
	// replay reseeds from it before applying a fresh Light perturbation
	// (spec.md §4.4 "Variation-on-read"); the replay is deterministic only
	// when the RNG in use honors its seed.
	Seed uint64
}

// Clone returns a deep, independently-mutable copy.
func (c ClientHelloConfig) Clone() ClientHelloConfig {
	out := c
	out.CipherSuites = append([]uint16(nil), c.CipherSuites...)
	out.ExtensionOrder = append([]uint16(nil), c.ExtensionOrder...)
	out.ExtensionData = make(map[uint16][]byte, len(c.ExtensionData))
	for k, v := range c.ExtensionData {
		out.ExtensionData[k] = append([]byte(nil), v...)
	}
	out.GreaseExtensionPositions = append([]int(nil), c.GreaseExtensionPositions...)
	out.GreaseCipherPositions = append([]int(nil), c.GreaseCipherPositions...)
	return out
}

// FingerprintEntry is one Fingerprint Cache record (spec.md §3).
type FingerprintEntry struct {
	Config       ClientHelloConfig
	SuccessCount uint32
	FailureCount uint32
	LastUsed     time.Time
	Reputation   float64
}

// Clone returns a deep copy.
func (e FingerprintEntry) Clone() FingerprintEntry {
	out := e
	out.Config = e.Config.Clone()
	return out
}
