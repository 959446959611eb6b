package template

import (
	"github.com/parrotls/parrotls/internal/greaseset"
	"github.com/parrotls/parrotls/internal/model"
)

// FirefoxLike returns the Firefox-family preset: 17 cipher suites in
// Firefox's characteristic order, 14 extensions, evenly-distributed
// GREASE, and a 0-1500 byte padding range biased 0.6 toward powers of
// two (spec.md §4.2).
func FirefoxLike() model.Template {
	return model.Template{
		Name:        NameFirefox,
		Description: "Firefox 13x desktop ClientHello shape",
		Source:      "builtin",

		CipherSuites: []uint16{
			0x1302, 0x1301, 0x1303, // TLS 1.3, AES-256 first
			0xc02c, 0xc030, 0xcca9, 0xcca8,
			0xc02b, 0xc02f,
			0xc024, 0xc028,
			0xc023, 0xc027,
			0x009f, 0x009e,
			0x0033, 0x0039,
		},
		ExtensionOrder: []uint16{
			model.ExtServerName,
			model.ExtExtendedMasterSecret,
			model.ExtRenegotiationInfo,
			model.ExtSupportedGroups,
			model.ExtECPointFormats,
			model.ExtSessionTicket,
			model.ExtALPN,
			model.ExtStatusRequest,
			model.ExtDelegatedCredentials,
			model.ExtKeyShare,
			model.ExtSupportedVersions,
			model.ExtSignatureAlgorithms,
			model.ExtPSKKeyExchangeModes,
			model.ExtPadding,
		},
		SupportedGroups:     []uint16{0x001d, 0x0017, 0x0018, 0x0100, 0x001e},
		SignatureAlgorithms: []uint16{0x0403, 0x0503, 0x0603, 0x0804, 0x0805, 0x0806, 0x0401, 0x0501},
		Grease: model.GreasePattern{
			CipherSuiteProbability: 1.0,
			CipherSuitePositions:   []float64{0.1, 0.4, 0.6, 0.9},
			ExtensionProbability:   1.0,
			ExtensionPositions:     []float64{0.1, 0.35, 0.6, 0.85},
			Values:                 greaseset.Slice(),
		},
		Padding: model.PaddingDistribution{
			PMF: []model.PMFEntry{
				{Value: 0, Weight: 0.15},
				{Value: 128, Weight: 0.2},
				{Value: 256, Weight: 0.2},
				{Value: 512, Weight: 0.25},
				{Value: 1024, Weight: 0.2},
			},
			MinLength:      0,
			MaxLength:      1500,
			PowerOfTwoBias: 0.6,
		},
		ALPNProtocols:          [][]byte{[]byte("h2"), []byte("http/1.1")},
		HTTP2PseudoHeaderOrder: []string{":method", ":path", ":authority", ":scheme"},
		SupportedVersions:      []uint16{0x0304, 0x0303},
		KeyShareGroups:         []uint16{0x001d, 0x0017},
		Naturalness: model.NaturalnessFilter{
			Blacklist: [][]uint16{},
			Whitelist: [][]uint16{},
			Requires: map[uint16][]uint16{
				model.ExtKeyShare:             {model.ExtSupportedGroups},
				model.ExtDelegatedCredentials: {model.ExtSignatureAlgorithms},
			},
			EquivalenceClasses: [][]uint16{
				{model.ExtStatusRequest, model.ExtStatusRequestV2},
			},
		},
	}
}
