package utlsbridge

import (
	"testing"

	parrotls "github.com/parrotls/parrotls"
	"github.com/parrotls/parrotls/internal/model"
	"github.com/parrotls/parrotls/internal/template"
	utls "github.com/refraction-networking/utls"
	"github.com/stretchr/testify/require"
)

func TestToClientHelloSpecProducesWellFormedSpec(t *testing.T) {
	c, err := parrotls.New(parrotls.Config{Template: template.NameChrome, RandomizationLevel: model.LevelMedium})
	require.NoError(t, err)

	run, err := c.RunPipeline(model.TargetKey{Host: "example.com", Port: 443}, "")
	require.NoError(t, err)

	spec, err := toClientHelloSpec(run)
	require.NoError(t, err)
	require.NotEmpty(t, spec.CipherSuites)
	require.NotEmpty(t, spec.Extensions)
	require.Equal(t, []byte{0}, spec.CompressionMethods)
	require.NotZero(t, spec.TLSVersMin)
	require.NotZero(t, spec.TLSVersMax)

	var sawSNI bool
	for _, e := range spec.Extensions {
		if sni, ok := e.(*utls.SNIExtension); ok {
			sawSNI = true
			require.Equal(t, "example.com", sni.ServerName)
		}
	}
	require.True(t, sawSNI, "expected a native SNI extension in the converted spec")
}

func TestToClientHelloSpecFallsBackToGenericExtension(t *testing.T) {
	c, err := parrotls.New(parrotls.Config{Template: template.NameChrome, RandomizationLevel: model.LevelMedium})
	require.NoError(t, err)

	run, err := c.RunPipeline(model.TargetKey{Host: "example.com", Port: 443}, "")
	require.NoError(t, err)

	spec, err := toClientHelloSpec(run)
	require.NoError(t, err)

	var sawGeneric bool
	for _, e := range spec.Extensions {
		if _, ok := e.(*utls.GenericExtension); ok {
			sawGeneric = true
		}
	}
	require.True(t, sawGeneric, "Padding (and any GREASE extension) should fall back to GenericExtension")
}
