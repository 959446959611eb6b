package model

// Template is the immutable browser-preset record (spec.md §3). Instances
// handed out by a Store are never mutated after construction; callers that
// need a working copy should call Clone.
type Template struct {
	Name        string
	Description string
	Source      string

	CipherSuites           []uint16
	ExtensionOrder         []uint16
	SupportedGroups        []uint16
	SignatureAlgorithms    []uint16
	Grease                 GreasePattern
	Padding                PaddingDistribution
	ALPNProtocols          [][]byte
	HTTP2PseudoHeaderOrder []string
	SupportedVersions      []uint16
	KeyShareGroups         []uint16
	Naturalness            NaturalnessFilter

	// TLS12Only marks a template that deliberately omits TLS 1.3 from
	// SupportedVersions (spec.md §4.2 Validate: "presence of TLS 1.3...
	// unless explicitly marked TLS 1.2-only").
	TLS12Only bool
}

// Clone returns a deep, independently-mutable copy of t.
func (t Template) Clone() Template {
	out := t
	out.CipherSuites = append([]uint16(nil), t.CipherSuites...)
	out.ExtensionOrder = append([]uint16(nil), t.ExtensionOrder...)
	out.SupportedGroups = append([]uint16(nil), t.SupportedGroups...)
	out.SignatureAlgorithms = append([]uint16(nil), t.SignatureAlgorithms...)
	out.Grease = t.Grease.Clone()
	out.Padding = t.Padding.Clone()
	out.ALPNProtocols = make([][]byte, len(t.ALPNProtocols))
	for i, p := range t.ALPNProtocols {
		out.ALPNProtocols[i] = append([]byte(nil), p...)
	}
	out.HTTP2PseudoHeaderOrder = append([]string(nil), t.HTTP2PseudoHeaderOrder...)
	out.SupportedVersions = append([]uint16(nil), t.SupportedVersions...)
	out.KeyShareGroups = append([]uint16(nil), t.KeyShareGroups...)
	out.Naturalness = t.Naturalness.Clone()
	return out
}
