// Package greaseset holds the canonical GREASE value set (spec.md §6) and
// the membership test used throughout the engine to recognize and skip
// GREASE entries when parsing caller-supplied fingerprint strings.
package greaseset

// Values is the canonical 16-value GREASE family: 0x?A?A for each nibble 0-F.
var Values = [16]uint16{
	0x0a0a, 0x1a1a, 0x2a2a, 0x3a3a,
	0x4a4a, 0x5a5a, 0x6a6a, 0x7a7a,
	0x8a8a, 0x9a9a, 0xaaaa, 0xbaba,
	0xcaca, 0xdada, 0xeaea, 0xfafa,
}

// Slice returns Values as a freshly-allocated slice, convenient for storing
// on a model.GreasePattern.
func Slice() []uint16 {
	out := make([]uint16, len(Values))
	copy(out, Values[:])
	return out
}

// IsGrease reports whether v follows the 0x?A?A GREASE pattern, independent
// of whether v is one of the canonical 16 (useful when validating
// caller-supplied text that may use any GREASE-shaped value).
func IsGrease(v uint32) bool {
	// GREASE values have identical high and low bytes' low nibble pattern:
	// byte0 = (n<<4)|0xA, byte1 = (n<<4)|0xA for the same nibble n.
	if v > 0xffff {
		return false
	}
	hi := byte(v >> 8)
	lo := byte(v)
	return hi&0x0f == 0x0a && lo&0x0f == 0x0a && hi>>4 == lo>>4
}

// Pick returns one of the canonical values, selected by idx mod len(Values).
func Pick(idx uint64) uint16 {
	return Values[idx%uint64(len(Values))]
}
