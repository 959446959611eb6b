package model

// GreasePattern describes how a template wants GREASE values injected into
// its cipher-suite list and its extension list (spec.md §3).
type GreasePattern struct {
	// CipherSuiteProbability is the chance, in [0,1], that a GREASE cipher
	// suite is inserted at all.
	CipherSuiteProbability float64
	// CipherSuitePositions are normalized (0.0-1.0) preferred insertion
	// positions, sampled from when a GREASE cipher suite is inserted.
	CipherSuitePositions []float64
	// ExtensionProbability is the equivalent probability for the extension
	// list.
	ExtensionProbability float64
	// ExtensionPositions mirrors CipherSuitePositions for extensions.
	ExtensionPositions []float64
	// Values is the legal 16-bit GREASE value set (the 0x?A?A family).
	// Populated from greaseset.Slice() by template constructors; kept here
	// so a Template is self-contained and comparable without importing
	// internal/greaseset.
	Values []uint16
}

// Clone returns a deep copy.
func (g GreasePattern) Clone() GreasePattern {
	out := g
	out.CipherSuitePositions = append([]float64(nil), g.CipherSuitePositions...)
	out.ExtensionPositions = append([]float64(nil), g.ExtensionPositions...)
	out.Values = append([]uint16(nil), g.Values...)
	return out
}
