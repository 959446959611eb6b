package template

import (
	"github.com/parrotls/parrotls/internal/greaseset"
	"github.com/parrotls/parrotls/internal/model"
)

// ChromeLike returns the Chrome-family preset: 17 cipher suites with the
// three TLS 1.3 suites first, 16 extensions, five supported groups,
// front-biased GREASE, and a 0-1500 byte padding range biased toward powers
// of two (spec.md §4.2).
func ChromeLike() model.Template {
	return model.Template{
		Name:        NameChrome,
		Description: "Chrome 13x desktop ClientHello shape",
		Source:      "builtin",

		CipherSuites: []uint16{
			0x1301, 0x1302, 0x1303, // TLS 1.3
			0xc02b, 0xc02f, 0xc02c, 0xc030,
			0xcca9, 0xcca8,
			0xc013, 0xc014,
			0x009c, 0x009d,
			0x002f, 0x0035,
			0x000a, 0x00ff,
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
			model.ExtSignatureAlgorithms,
			model.ExtSCT,
			model.ExtKeyShare,
			model.ExtPSKKeyExchangeModes,
			model.ExtSupportedVersions,
			model.ExtCompressCertificate,
			model.ExtApplicationSettingsNew,
			model.ExtPadding,
		},
		SupportedGroups:     []uint16{0x001d, 0x0017, 0x0018, 0x0019, 0x0100},
		SignatureAlgorithms: []uint16{0x0403, 0x0804, 0x0401, 0x0503, 0x0805, 0x0501, 0x0806, 0x0601},
		Grease: model.GreasePattern{
			CipherSuiteProbability: 1.0,
			CipherSuitePositions:   []float64{0.0, 0.1, 0.2},
			ExtensionProbability:   1.0,
			ExtensionPositions:     []float64{0.0, 0.05, 0.15},
			Values:                 greaseset.Slice(),
		},
		Padding: model.PaddingDistribution{
			PMF: []model.PMFEntry{
				{Value: 0, Weight: 0.1},
				{Value: 128, Weight: 0.2},
				{Value: 256, Weight: 0.25},
				{Value: 512, Weight: 0.25},
				{Value: 1024, Weight: 0.2},
			},
			MinLength:      0,
			MaxLength:      1500,
			PowerOfTwoBias: 0.7,
		},
		ALPNProtocols:          [][]byte{[]byte("h2"), []byte("http/1.1")},
		HTTP2PseudoHeaderOrder: []string{":method", ":authority", ":scheme", ":path"},
		SupportedVersions:      []uint16{0x0304, 0x0303},
		KeyShareGroups:         []uint16{0x001d},
		Naturalness: model.NaturalnessFilter{
			Blacklist: [][]uint16{},
			Whitelist: [][]uint16{},
			Requires: map[uint16][]uint16{
				model.ExtKeyShare: {model.ExtSupportedGroups},
			},
			EquivalenceClasses: [][]uint16{
				{model.ExtStatusRequest, model.ExtStatusRequestV2},
				{model.ExtApplicationSettingsOld, model.ExtApplicationSettingsNew},
			},
		},
	}
}
