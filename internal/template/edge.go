package template

import (
	"github.com/parrotls/parrotls/internal/greaseset"
	"github.com/parrotls/parrotls/internal/model"
)

// EdgeLike returns the Edge-family preset: the same 17-suite cipher list as
// Chrome-like, 16 extensions in an Edge-specific order, and otherwise the
// same dimensions as Chrome-like (spec.md §4.2).
func EdgeLike() model.Template {
	chrome := ChromeLike()
	return model.Template{
		Name:        NameEdge,
		Description: "Edge (Chromium) 13x desktop ClientHello shape",
		Source:      "builtin",

		CipherSuites: append([]uint16(nil), chrome.CipherSuites...),
		ExtensionOrder: []uint16{
			model.ExtServerName,
			model.ExtExtendedMasterSecret,
			model.ExtRenegotiationInfo,
			model.ExtSupportedGroups,
			model.ExtECPointFormats,
			model.ExtStatusRequest,
			model.ExtSessionTicket,
			model.ExtALPN,
			model.ExtApplicationSettingsNew,
			model.ExtSignatureAlgorithms,
			model.ExtSCT,
			model.ExtKeyShare,
			model.ExtPSKKeyExchangeModes,
			model.ExtSupportedVersions,
			model.ExtCompressCertificate,
			model.ExtPadding,
		},
		SupportedGroups:     append([]uint16(nil), chrome.SupportedGroups...),
		SignatureAlgorithms: append([]uint16(nil), chrome.SignatureAlgorithms...),
		Grease: model.GreasePattern{
			CipherSuiteProbability: 1.0,
			CipherSuitePositions:   []float64{0.0, 0.1, 0.2},
			ExtensionProbability:   1.0,
			ExtensionPositions:     []float64{0.0, 0.1, 0.2},
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
