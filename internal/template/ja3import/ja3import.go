// Package ja3import builds a model.Template from a JA3 text string, for
// callers that want a custom preset without a named built-in.
//
// Grounded on the teacher's internal/tls/ja3.go:ParseJA3Text (text parsing)
// and internal/tls/fingerprint.go:BuildSpecFromJA3 (shaping a parsed JA3
// into a concrete ClientHello spec) — generalized from "build a
// *utls.ClientHelloSpec" to "build a model.Template", since utls is not a
// dependency of the core engine (see SPEC_FULL.md §1). GREASE handling is
// delegated to internal/randomize at apply time rather than baked into the
// imported template, matching how the rest of the Template Store works.
package ja3import

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/parrotls/parrotls/internal/greaseset"
	"github.com/parrotls/parrotls/internal/model"
)

// Format: TLSVersion,CipherSuites,Extensions,EllipticCurves,PointFormats
// e.g. "771,4865-4866-4867-49195,0-23-65281-10-11,29-23-24,0"
func Parse(ja3 string) (model.Template, error) {
	parts := strings.Split(ja3, ",")
	if len(parts) < 3 {
		return model.Template{}, fmt.Errorf("ja3import: expected at least 3 comma-separated fields, got %d", len(parts))
	}

	version, err := parseUint16(parts[0])
	if err != nil {
		return model.Template{}, fmt.Errorf("ja3import: TLS version: %w", err)
	}

	ciphers, err := parseUint16List(parts[1])
	if err != nil {
		return model.Template{}, fmt.Errorf("ja3import: cipher suites: %w", err)
	}
	// A JA3 capture may itself include GREASE cipher suites; strip them so
	// the engine re-injects GREASE according to the importing caller's
	// chosen GreasePattern instead of double-counting the capture's own.
	ciphers = stripGrease(ciphers)

	extensions, err := parseUint16List(parts[2])
	if err != nil {
		return model.Template{}, fmt.Errorf("ja3import: extensions: %w", err)
	}
	extensions = stripGrease(extensions)

	var curves []uint16
	if len(parts) > 3 && parts[3] != "" {
		curves, err = parseUint16List(parts[3])
		if err != nil {
			return model.Template{}, fmt.Errorf("ja3import: curves: %w", err)
		}
	}
	if len(curves) == 0 {
		curves = []uint16{0x001d, 0x0017, 0x0018}
	}

	t := model.Template{
		Name:                   fmt.Sprintf("ja3-import-%d", len(ciphers)),
		Description:            "custom template imported from a JA3 text string",
		Source:                 "ja3-import",
		CipherSuites:           ciphers,
		ExtensionOrder:         extensions,
		SupportedGroups:        curves,
		SignatureAlgorithms:    []uint16{0x0403, 0x0804, 0x0401, 0x0503, 0x0805, 0x0501},
		ALPNProtocols:          [][]byte{[]byte("h2"), []byte("http/1.1")},
		HTTP2PseudoHeaderOrder: []string{":method", ":authority", ":scheme", ":path"},
		KeyShareGroups:         curves[:1],
		Grease: model.GreasePattern{
			CipherSuiteProbability: 0,
			ExtensionProbability:   0,
			Values:                 greaseset.Slice(),
		},
		Padding: model.PaddingDistribution{
			PMF:            []model.PMFEntry{{Value: 0, Weight: 1.0}},
			MinLength:      0,
			MaxLength:      1500,
			PowerOfTwoBias: 0,
		},
		Naturalness: model.NaturalnessFilter{
			Blacklist: [][]uint16{},
			Whitelist: [][]uint16{},
			Requires:  map[uint16][]uint16{},
		},
	}

	switch version {
	case 0x0304:
		t.SupportedVersions = []uint16{0x0304, 0x0303}
	case 0x0303:
		t.SupportedVersions = []uint16{0x0303}
		t.TLS12Only = true
	default:
		t.SupportedVersions = []uint16{0x0304, 0x0303}
	}

	return t, nil
}

func stripGrease(in []uint16) []uint16 {
	out := make([]uint16, 0, len(in))
	for _, v := range in {
		if greaseset.IsGrease(uint32(v)) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func parseUint16(s string) (uint16, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 16)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}

func parseUint16List(s string) ([]uint16, error) {
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, "-")
	out := make([]uint16, 0, len(fields))
	for _, f := range fields {
		v, err := parseUint16(f)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f, err)
		}
		out = append(out, v)
	}
	return out, nil
}
