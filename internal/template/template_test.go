package template

import (
	"testing"

	"github.com/parrotls/parrotls/internal/model"
	"github.com/stretchr/testify/require"
)

func TestBuiltinPresetsValidate(t *testing.T) {
	for _, f := range []func() model.Template{ChromeLike, FirefoxLike, SafariLike, EdgeLike} {
		tpl := f()
		require.NoError(t, Validate(tpl), tpl.Name)
	}
}

func TestChromeShapeCounts(t *testing.T) {
	c := ChromeLike()
	require.Len(t, c.CipherSuites, 17)
	require.Len(t, c.ExtensionOrder, 16)
	require.Len(t, c.SupportedGroups, 5)
}

func TestFirefoxShapeCounts(t *testing.T) {
	f := FirefoxLike()
	require.Len(t, f.CipherSuites, 17)
	require.Len(t, f.ExtensionOrder, 14)
}

func TestSafariShapeCounts(t *testing.T) {
	s := SafariLike()
	require.Len(t, s.CipherSuites, 9)
	require.Len(t, s.ExtensionOrder, 13)
	require.Equal(t, []uint16{0x0304}, s.SupportedVersions)
}

func TestEdgeSharesChromeCiphers(t *testing.T) {
	e := EdgeLike()
	c := ChromeLike()
	require.Equal(t, c.CipherSuites, e.CipherSuites)
	require.Len(t, e.ExtensionOrder, 16)
	require.NotEqual(t, c.ExtensionOrder, e.ExtensionOrder)
}

func TestGlobalStoreLookup(t *testing.T) {
	s := Global()
	tpl, ok := s.Lookup(NameChrome)
	require.True(t, ok)
	require.Equal(t, NameChrome, tpl.Name)

	_, ok = s.Lookup("does-not-exist")
	require.False(t, ok)
}

func TestLookupReturnsIndependentCopy(t *testing.T) {
	s := Global()
	tpl, ok := s.Lookup(NameChrome)
	require.True(t, ok)
	tpl.CipherSuites[0] = 0xffff

	again, ok := s.Lookup(NameChrome)
	require.True(t, ok)
	require.NotEqual(t, uint16(0xffff), again.CipherSuites[0])
}

func TestRegisterCustomTemplate(t *testing.T) {
	s := newStore()
	custom := ChromeLike()
	custom.Name = "custom-test-preset"
	require.NoError(t, s.Register(custom))

	got, ok := s.Lookup("custom-test-preset")
	require.True(t, ok)
	require.Equal(t, custom.CipherSuites, got.CipherSuites)
}

func TestRegisterRejectsBuiltinNameCollision(t *testing.T) {
	s := newStore()
	custom := ChromeLike()
	err := s.Register(custom)
	require.Error(t, err)
}

func TestValidateRejectsBadKeyShare(t *testing.T) {
	tpl := ChromeLike()
	tpl.KeyShareGroups = []uint16{0x9999}
	require.Error(t, Validate(tpl))
}

func TestValidateRejectsBadPMFWeights(t *testing.T) {
	tpl := ChromeLike()
	tpl.Padding.PMF = []model.PMFEntry{{Value: 0, Weight: 0.5}}
	require.Error(t, Validate(tpl))
}

func TestValidateRejectsNonGreaseValue(t *testing.T) {
	tpl := ChromeLike()
	tpl.Grease.Values = []uint16{0x1234}
	require.Error(t, Validate(tpl))
}

func TestValidateRequiresTLS13UnlessMarked(t *testing.T) {
	tpl := ChromeLike()
	tpl.SupportedVersions = []uint16{0x0303}
	require.Error(t, Validate(tpl))

	tpl.TLS12Only = true
	require.NoError(t, Validate(tpl))
}

func TestValidateRejectsDuplicateExtension(t *testing.T) {
	tpl := ChromeLike()
	tpl.ExtensionOrder = append(tpl.ExtensionOrder, tpl.ExtensionOrder[0])
	require.Error(t, Validate(tpl))
}

func TestValidateRejectsPSKNotLast(t *testing.T) {
	tpl := ChromeLike()
	tpl.ExtensionOrder = append([]uint16{model.ExtPreSharedKey}, tpl.ExtensionOrder...)
	require.Error(t, Validate(tpl))
}
