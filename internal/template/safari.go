package template

import (
	"github.com/parrotls/parrotls/internal/greaseset"
	"github.com/parrotls/parrotls/internal/model"
)

// SafariLike returns the Safari-family preset: 9 cipher suites, TLS 1.3
// pinned as the only offered version, 13 extensions, GREASE probability
// 0.8, and a tighter 0-512 byte padding range biased 0.8 toward powers of
// two (spec.md §4.2).
func SafariLike() model.Template {
	return model.Template{
		Name:        NameSafari,
		Description: "Safari 18 desktop/mobile ClientHello shape",
		Source:      "builtin",

		CipherSuites: []uint16{
			0x1301, 0x1302, 0x1303,
			0xc02c, 0xc02b, 0xc030, 0xc02f,
			0xc024, 0xc023,
		},
		ExtensionOrder: []uint16{
			model.ExtServerName,
			model.ExtExtendedMasterSecret,
			model.ExtRenegotiationInfo,
			model.ExtSupportedGroups,
			model.ExtECPointFormats,
			model.ExtALPN,
			model.ExtStatusRequest,
			model.ExtSignatureAlgorithms,
			model.ExtKeyShare,
			model.ExtPSKKeyExchangeModes,
			model.ExtSupportedVersions,
			model.ExtSCT,
			model.ExtPadding,
		},
		SupportedGroups:     []uint16{0x001d, 0x0017, 0x0018},
		SignatureAlgorithms: []uint16{0x0403, 0x0804, 0x0503, 0x0805, 0x0401, 0x0501},
		Grease: model.GreasePattern{
			CipherSuiteProbability: 0.8,
			CipherSuitePositions:   []float64{0.0, 0.5},
			ExtensionProbability:   0.8,
			ExtensionPositions:     []float64{0.0, 0.5},
			Values:                 greaseset.Slice(),
		},
		Padding: model.PaddingDistribution{
			PMF: []model.PMFEntry{
				{Value: 0, Weight: 0.2},
				{Value: 64, Weight: 0.2},
				{Value: 128, Weight: 0.3},
				{Value: 256, Weight: 0.2},
				{Value: 512, Weight: 0.1},
			},
			MinLength:      0,
			MaxLength:      512,
			PowerOfTwoBias: 0.8,
		},
		ALPNProtocols:          [][]byte{[]byte("h2"), []byte("http/1.1")},
		HTTP2PseudoHeaderOrder: []string{":method", ":scheme", ":authority", ":path"},
		SupportedVersions:      []uint16{0x0304},
		KeyShareGroups:         []uint16{0x001d},
		Naturalness: model.NaturalnessFilter{
			Blacklist: [][]uint16{
				{model.ExtSessionTicket, model.ExtCompressCertificate},
			},
			Whitelist: [][]uint16{},
			Requires: map[uint16][]uint16{
				model.ExtKeyShare: {model.ExtSupportedGroups},
			},
			EquivalenceClasses: [][]uint16{
				{model.ExtStatusRequest, model.ExtStatusRequestV2},
			},
		},
	}
}
