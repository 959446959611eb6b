package ja3import

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseKnownChromeLikeString(t *testing.T) {
	ja3 := "772,4865-4866-4867-49195-49199,0-23-65281-10-11-35-16-5-13-18-51-45-43-21,29-23-24,0"
	tpl, err := Parse(ja3)
	require.NoError(t, err)
	require.Equal(t, []uint16{4865, 4866, 4867, 49195, 49199}, tpl.CipherSuites)
	require.Len(t, tpl.ExtensionOrder, 14)
	require.Equal(t, "ja3-import", tpl.Source)
	require.Contains(t, tpl.SupportedVersions, uint16(0x0304))
}

func TestParseStripsGreaseFromCapture(t *testing.T) {
	ja3 := "772,2570-4865-4866,2570-0-23-10,29-23,0"
	tpl, err := Parse(ja3)
	require.NoError(t, err)
	require.Equal(t, []uint16{4865, 4866}, tpl.CipherSuites)
	require.Equal(t, []uint16{0, 23, 10}, tpl.ExtensionOrder)
}

func TestParseTLS12OnlyMarksTemplate(t *testing.T) {
	tpl, err := Parse("771,4865-4866,0-23")
	require.NoError(t, err)
	require.Equal(t, []uint16{0x0303}, tpl.SupportedVersions)
	require.True(t, tpl.TLS12Only)
}

func TestParseRejectsTooFewFields(t *testing.T) {
	_, err := Parse("771,4865")
	require.Error(t, err)
}

func TestParseRejectsNonNumericField(t *testing.T) {
	_, err := Parse("771,abc-4866,0-23")
	require.Error(t, err)
}
