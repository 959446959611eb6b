package extcodec

import (
	"testing"

	"github.com/parrotls/parrotls/internal/model"
	"github.com/stretchr/testify/require"
)

func TestApplicationSettingsRoundTrip(t *testing.T) {
	protocols := [][]byte{[]byte("h2")}
	encoded := EncodeApplicationSettings(protocols)
	decoded, err := DecodeApplicationSettings(encoded)
	require.NoError(t, err)
	require.Equal(t, protocols, decoded)
}

func TestApplicationSettingsEmpty(t *testing.T) {
	encoded := EncodeApplicationSettings(nil)
	decoded, err := DecodeApplicationSettings(encoded)
	require.NoError(t, err)
	require.Empty(t, decoded)
}

func TestApplicationSettingsMalformed(t *testing.T) {
	_, err := DecodeApplicationSettings([]byte{0x00})
	require.Error(t, err)
	var merr *model.Error
	require.ErrorAs(t, err, &merr)
	require.Equal(t, model.KindMalformedExtension, merr.Kind)
}

func TestDelegatedCredentialsRoundTrip(t *testing.T) {
	schemes := []uint16{0x0403, 0x0804, 0x0503}
	encoded := EncodeDelegatedCredentials(schemes)
	decoded, err := DecodeDelegatedCredentials(encoded)
	require.NoError(t, err)
	require.Equal(t, schemes, decoded)
}

func TestDelegatedCredentialsOddLength(t *testing.T) {
	bad := []byte{0x00, 0x03, 0x01, 0x02, 0x03}
	_, err := DecodeDelegatedCredentials(bad)
	require.Error(t, err)
}

func TestCompressCertificateRoundTrip(t *testing.T) {
	algos := []model.CertCompressionAlgo{model.CertCompressionBrotli, model.CertCompressionZlib}
	encoded := EncodeCompressCertificate(algos)
	decoded, err := DecodeCompressCertificate(encoded)
	require.NoError(t, err)
	require.Equal(t, algos, decoded)
}

func TestPaddingExactLength(t *testing.T) {
	for _, n := range []int{0, 1, 128, 1500} {
		encoded := EncodePadding(n)
		require.Len(t, encoded, n)
		got, err := DecodePadding(encoded)
		require.NoError(t, err)
		require.Equal(t, n, got)
	}
}

func TestPaddingRejectsNonZero(t *testing.T) {
	_, err := DecodePadding([]byte{0x00, 0x01, 0x00})
	require.Error(t, err)
}

func TestStatusRequestRoundTrip(t *testing.T) {
	sr := StatusRequest{
		Type:              StatusTypeOCSP,
		ResponderIDs:      []byte{0x01, 0x02, 0x03},
		RequestExtensions: []byte{},
	}
	encoded := EncodeStatusRequest(sr)
	decoded, err := DecodeStatusRequest(encoded)
	require.NoError(t, err)
	require.Equal(t, sr.Type, decoded.Type)
	require.Equal(t, sr.ResponderIDs, decoded.ResponderIDs)
	require.Empty(t, decoded.RequestExtensions)
}

func TestSCTRoundTrip(t *testing.T) {
	encoded := EncodeSCT()
	require.Empty(t, encoded)
	require.NoError(t, DecodeSCT(encoded))
	require.Error(t, DecodeSCT([]byte{0x01}))
}

func TestCertCompressionRoundTrip(t *testing.T) {
	payload := []byte("a fake DER-encoded certificate, repeated for compressibility a fake DER-encoded certificate")
	for _, algo := range []model.CertCompressionAlgo{model.CertCompressionBrotli, model.CertCompressionZlib} {
		compressed, err := CompressCertificate(payload, algo)
		require.NoError(t, err)
		restored, err := DecompressCertificate(compressed, algo)
		require.NoError(t, err)
		require.Equal(t, payload, restored)
	}
}
