// Package utlsbridge wires the Customizer Pipeline to a concrete TLS stack:
// github.com/refraction-networking/utls (spec.md §6). It is the only
// package in this module that imports utls — the core engine
// (internal/template, internal/randomize, internal/fpcache,
// internal/customizer) stays host-stack-agnostic, per the project's
// "engine never imports utls" design rule.
//
// Grounded on the teacher's internal/tls/fingerprint.go:DialTLS and
// internal/httpclient/client.go:dialTLS, generalized from "build one
// preset-selected spec and hand it to uTLS" to "run the full four-phase
// pipeline and convert its result to a ClientHelloSpec."
package utlsbridge

import (
	"context"
	"fmt"
	"net"

	"github.com/parrotls/parrotls/internal/greaseset"
	"github.com/parrotls/parrotls/internal/jitter"
	"github.com/parrotls/parrotls/internal/model"
	"github.com/parrotls/parrotls/internal/netdial"
	"github.com/parrotls/parrotls/internal/randomize/cryptorng"
	utls "github.com/refraction-networking/utls"

	parrotls "github.com/parrotls/parrotls"
)

// Dial runs pipeline phases 1-3 against host (Phase 4 is not invoked; utls
// marshals the ClientHello from the spec itself), establishes a TCP
// connection (optionally through tc.Proxy), applies the resulting
// ClientHelloSpec, runs the TLS handshake, checks the downgrade canary, and
// records the outcome on c. The returned *utls.UConn is handshake-complete
// and ready for application data.
func Dial(ctx context.Context, network, addr string, c *parrotls.Customizer, tc *parrotls.Config) (*utls.UConn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, fmt.Errorf("utlsbridge: split host/port for %q: %w", addr, err)
	}
	target := model.TargetKey{Host: host, Port: 443}

	run, err := c.RunPipeline(target, tc.Template)
	if err != nil {
		return nil, fmt.Errorf("utlsbridge: pipeline: %w", err)
	}

	jitter.Apply(ctx, tc.TimingJitter, cryptorng.New())

	dialer, err := netdial.NewDialer(tc.Proxy)
	if err != nil {
		return nil, fmt.Errorf("utlsbridge: build dialer: %w", err)
	}
	rawConn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, fmt.Errorf("utlsbridge: dial %s: %w", addr, err)
	}

	spec, err := toClientHelloSpec(run)
	if err != nil {
		rawConn.Close()
		return nil, fmt.Errorf("utlsbridge: build ClientHelloSpec: %w", err)
	}

	uConfig := &utls.Config{ServerName: host}
	uConn := utls.UClient(rawConn, uConfig, utls.HelloCustom)
	if err := uConn.ApplyPreset(spec); err != nil {
		rawConn.Close()
		run.RecordOutcome(false)
		return nil, fmt.Errorf("utlsbridge: apply preset: %w", err)
	}

	if err := uConn.HandshakeContext(ctx); err != nil {
		uConn.Close()
		run.RecordOutcome(false)
		return nil, fmt.Errorf("utlsbridge: handshake: %w", err)
	}

	tpl := run.Template()
	offeredTLS13 := false
	for _, v := range tpl.SupportedVersions {
		if v == 0x0304 {
			offeredTLS13 = true
			break
		}
	}
	if err := DowngradeCheck(uConn, offeredTLS13); err != nil {
		uConn.Close()
		run.RecordOutcome(false)
		return nil, err
	}

	run.RecordOutcome(true)
	return uConn, nil
}

// toClientHelloSpec converts the pipeline's assembled ClientHello structure
// into a utls.ClientHelloSpec: native extension types where utls has a
// matching concrete type, utls.GenericExtension for everything else
// (custom codec bytes this engine already produced in Phase 3).
func toClientHelloSpec(run *parrotls.PipelineRun) (*utls.ClientHelloSpec, error) {
	s := run.Struct()

	exts := make([]utls.TLSExtension, 0, len(s.Extensions.Order()))
	for _, extType := range s.Extensions.Order() {
		data, _ := s.Extensions.Get(extType)
		if native := nativeExtension(extType, data, s.ServerName, run); native != nil {
			exts = append(exts, native)
			continue
		}
		exts = append(exts, &utls.GenericExtension{Id: extType, Data: append([]byte(nil), data...)})
	}

	tpl := run.Template()
	versMin, versMax := uint16(0), uint16(0)
	for _, v := range tpl.SupportedVersions {
		if versMax == 0 || v > versMax {
			versMax = v
		}
		if versMin == 0 || v < versMin {
			versMin = v
		}
	}
	if versMin == 0 {
		versMin, versMax = utls.VersionTLS12, utls.VersionTLS12
	}

	return &utls.ClientHelloSpec{
		CipherSuites:       append([]uint16(nil), s.CipherSuites...),
		CompressionMethods: []byte{0},
		Extensions:         exts,
		TLSVersMin:         versMin,
		TLSVersMax:         versMax,
	}, nil
}

// nativeExtension returns the matching concrete utls.TLSExtension when one
// exists, so utls can exercise its own encoder/ordering logic for the
// extensions it understands natively; it returns nil for padding, GREASE
// values and any other type without a case below, which toClientHelloSpec
// then sends as a GenericExtension carrying the Phase 3 bytes.
func nativeExtension(extType uint16, data []byte, serverName string, run *parrotls.PipelineRun) utls.TLSExtension {
	switch extType {
	case model.ExtServerName:
		return &utls.SNIExtension{ServerName: serverName}
	case model.ExtSupportedGroups:
		// Wire payload carries the extension's own 2-byte list-length prefix
		// (RFC 8446 §4.2.3); strip it before decoding the uint16 entries.
		groups := decodeUint16List(skipPrefix(data, 2))
		curves := make([]utls.CurveID, 0, len(groups)+1)
		curves = append(curves, utls.CurveID(greaseset.Values[0]))
		for _, g := range groups {
			curves = append(curves, utls.CurveID(g))
		}
		return &utls.SupportedCurvesExtension{Curves: curves}
	case model.ExtECPointFormats:
		return &utls.SupportedPointsExtension{SupportedPoints: []byte{0}}
	case model.ExtSupportedVersions:
		// supported_versions uses a 1-byte length prefix (RFC 8446 §4.2.1),
		// not the 2-byte prefix the other uint16 vectors carry.
		versions := decodeUint16List(skipPrefix(data, 1))
		greased := make([]uint16, 0, len(versions)+1)
		greased = append(greased, greaseset.Values[0])
		greased = append(greased, versions...)
		return &utls.SupportedVersionsExtension{Versions: greased}
	case model.ExtSignatureAlgorithms:
		schemes := decodeSignatureSchemes(skipPrefix(data, 2))
		if len(schemes) == 0 {
			schemes = defaultSignatureSchemes
		}
		return &utls.SignatureAlgorithmsExtension{SupportedSignatureAlgorithms: schemes}
	case model.ExtALPN:
		protos := make([]string, 0, len(run.Template().ALPNProtocols))
		for _, p := range run.Template().ALPNProtocols {
			protos = append(protos, string(p))
		}
		return &utls.ALPNExtension{AlpnProtocols: protos}
	case model.ExtSessionTicket:
		return &utls.SessionTicketExtension{}
	case model.ExtExtendedMasterSecret:
		return &utls.ExtendedMasterSecretExtension{}
	case model.ExtRenegotiationInfo:
		return &utls.RenegotiationInfoExtension{Renegotiation: utls.RenegotiateOnceAsClient}
	case model.ExtPSKKeyExchangeModes:
		return &utls.PSKKeyExchangeModesExtension{Modes: []uint8{utls.PskModeDHE}}
	case model.ExtStatusRequest:
		return &utls.StatusRequestExtension{}
	case model.ExtSCT:
		return &utls.SCTExtension{}
	case model.ExtCompressCertificate:
		return &utls.UtlsCompressCertExtension{Algorithms: []utls.CertCompressionAlgo{utls.CertCompressionBrotli, utls.CertCompressionZlib}}
	case model.ExtApplicationSettingsOld:
		return &utls.ApplicationSettingsExtension{SupportedProtocols: []string{"h2"}}
	case model.ExtApplicationSettingsNew:
		return &utls.ApplicationSettingsExtensionNew{SupportedProtocols: []string{"h2"}}
	case model.ExtDelegatedCredentials:
		return &utls.DelegatedCredentialsExtension{SupportedSignatureAlgorithms: defaultSignatureSchemes}
	case model.ExtKeyShare:
		return keyShareExtension(run.Template().KeyShareGroups)
	default:
		return nil
	}
}

// defaultSignatureSchemes is the Chrome-like signature_algorithms list this
// package falls back to whenever a template/engine run did not already
// resolve a concrete list, grounded on the teacher's own hardcoded default
// in internal/tls/fingerprint.go:mapExtensionIDs.
var defaultSignatureSchemes = []utls.SignatureScheme{
	utls.ECDSAWithP256AndSHA256,
	utls.PSSWithSHA256,
	utls.PKCS1WithSHA256,
	utls.ECDSAWithP384AndSHA384,
	utls.PSSWithSHA384,
	utls.PKCS1WithSHA384,
	utls.PSSWithSHA512,
	utls.PKCS1WithSHA512,
}

// keyShareExtension builds a native utls.KeyShareExtension from a template's
// key-share groups, prepending a GREASE placeholder share the way Chrome
// does (teacher's internal/tls/fingerprint.go, case 51). Real (non-GREASE)
// entries carry no Data: utls.UConn generates the ephemeral key material
// itself during the handshake.
func keyShareExtension(groups []uint16) *utls.KeyShareExtension {
	shares := make([]utls.KeyShare, 0, len(groups)+1)
	shares = append(shares, utls.KeyShare{Group: utls.CurveID(greaseset.Values[0]), Data: []byte{0}})
	for _, g := range groups {
		shares = append(shares, utls.KeyShare{Group: utls.CurveID(g)})
	}
	return &utls.KeyShareExtension{KeyShares: shares}
}

func decodeUint16List(data []byte) []uint16 {
	out := make([]uint16, 0, len(data)/2)
	for i := 0; i+1 < len(data); i += 2 {
		out = append(out, uint16(data[i])<<8|uint16(data[i+1]))
	}
	return out
}

func decodeSignatureSchemes(data []byte) []utls.SignatureScheme {
	raw := decodeUint16List(data)
	out := make([]utls.SignatureScheme, len(raw))
	for i, v := range raw {
		out[i] = utls.SignatureScheme(v)
	}
	return out
}

// skipPrefix drops the leading n bytes of a length-prefixed vector (RFC
// 8446 §4.2's various <a..b> encodings), returning nil if data is shorter
// than the prefix itself rather than panicking on a malformed/empty entry.
func skipPrefix(data []byte, n int) []byte {
	if len(data) < n {
		return nil
	}
	return data[n:]
}
