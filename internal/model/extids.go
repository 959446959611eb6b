package model

// Extension-type identifiers for the codecs this engine implements wire
// formats for. Values are cross-checked against the teacher's own extension
// switch (internal/tls/fingerprint.go:mapExtensionIDs in the original
// retrieval pack), which disambiguates the two extensions the upstream
// source material assigns conflicting codepoints to (see SPEC_FULL.md §4.1).
const (
	ExtServerName              uint16 = 0x0000 // 0
	ExtStatusRequest            uint16 = 0x0005 // 5
	ExtSupportedGroups           uint16 = 0x000a // 10
	ExtECPointFormats            uint16 = 0x000b // 11
	ExtSignatureAlgorithms       uint16 = 0x000d // 13
	ExtALPN                      uint16 = 0x0010 // 16
	ExtStatusRequestV2           uint16 = 0x0011 // 17
	ExtSCT                       uint16 = 0x0012 // 18
	ExtPadding                   uint16 = 0x0015 // 21
	ExtExtendedMasterSecret      uint16 = 0x0017 // 23
	ExtCompressCertificate       uint16 = 0x001b // 27 — NOT application_settings
	ExtSessionTicket             uint16 = 0x0023 // 35
	ExtDelegatedCredentials      uint16 = 0x0022 // 34
	ExtSupportedVersions         uint16 = 0x002b // 43
	ExtPSKKeyExchangeModes       uint16 = 0x002d // 45
	ExtKeyShare                  uint16 = 0x0033 // 51
	ExtPreSharedKey              uint16 = 0x0029 // 41
	ExtRenegotiationInfo         uint16 = 0xff01 // 65281
	ExtApplicationSettingsOld    uint16 = 0x4469 // 17513 (ALPS, Chrome <=132)
	ExtApplicationSettingsNew    uint16 = 0x44cd // 17613 (ALPS, Chrome 133+)
	ExtEncryptedClientHelloGrease uint16 = 0xfe0d // 65037
)

// CertCompressionAlgo identifies the algorithm negotiated by the
// compress_certificate extension (RFC 8879 §3).
type CertCompressionAlgo uint16

const (
	CertCompressionZlib   CertCompressionAlgo = 1
	CertCompressionBrotli CertCompressionAlgo = 2
	CertCompressionZstd   CertCompressionAlgo = 3
)
