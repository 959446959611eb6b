package parrotls

import (
	"errors"
	"testing"

	"github.com/parrotls/parrotls/internal/model"
	"github.com/parrotls/parrotls/internal/template"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsRotationWithoutTemplates(t *testing.T) {
	_, err := New(Config{RotationPolicy: model.RotationRoundRobin})
	require.Error(t, err)
}

func TestNewAcceptsFixedTemplate(t *testing.T) {
	c, err := New(Config{Template: template.NameChrome})
	require.NoError(t, err)
	require.NotNil(t, c)
}

func TestRunPipelineColdPath(t *testing.T) {
	c, err := New(Config{Template: template.NameFirefox, RandomizationLevel: model.LevelMedium})
	require.NoError(t, err)

	target := model.TargetKey{Host: "example.com", Port: 443}
	run, err := c.RunPipeline(target, "")
	require.NoError(t, err)
	require.Equal(t, template.NameFirefox, run.Template().Name)
	require.NotEmpty(t, run.Struct().CipherSuites)

	out, err := run.TransformWireBytes([]byte{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, out)

	run.RecordOutcome(true)
	stats, ok := c.CacheStats(target)
	require.False(t, ok, "cache is disabled by default (EnableCache=false)")
	_ = stats
}

func TestRunPipelineRecordsToEnabledCache(t *testing.T) {
	c, err := New(Config{Template: template.NameSafari, EnableCache: true, MaxCacheSize: 4})
	require.NoError(t, err)

	target := model.TargetKey{Host: "example.org", Port: 443}
	run, err := c.RunPipeline(target, "")
	require.NoError(t, err)
	run.RecordOutcome(true)

	stats, ok := c.CacheStats(target)
	require.True(t, ok)
	require.Equal(t, uint32(1), stats.SuccessCount)
}

func TestRunPipelineRefusesWhenECHActive(t *testing.T) {
	c, err := New(Config{Template: template.NameChrome, ECHActive: true})
	require.NoError(t, err)

	_, err = c.RunPipeline(model.TargetKey{Host: "example.com", Port: 443}, "")
	require.Error(t, err)
	require.True(t, errors.Is(err, model.ErrECHActive))
}

func TestRotationPolicyRoundRobinCyclesTemplates(t *testing.T) {
	all := []string{template.NameChrome, template.NameEdge, template.NameFirefox, template.NameSafari}
	c, err := New(Config{RotationPolicy: model.RotationRoundRobin, RotationTemplates: all})
	require.NoError(t, err)

	seen := map[string]bool{}
	for i := 0; i < len(all); i++ {
		run, err := c.RunPipeline(model.TargetKey{Host: "example.com", Port: 443}, "")
		require.NoError(t, err)
		seen[run.Template().Name] = true
	}
	require.Len(t, seen, len(all))
}

func TestFirstSeenSkeletonReusesAcrossSession(t *testing.T) {
	c, err := New(Config{Template: template.NameChrome})
	require.NoError(t, err)

	first := model.ClientHelloConfig{CipherSuites: []uint16{1, 2, 3}}
	got1 := c.FirstSeenSkeleton("session-x", first)
	require.Equal(t, first.CipherSuites, got1.CipherSuites)

	second := model.ClientHelloConfig{CipherSuites: []uint16{9, 9}}
	got2 := c.FirstSeenSkeleton("session-x", second)
	require.Equal(t, first.CipherSuites, got2.CipherSuites, "must keep reproducing the first-seen skeleton")

	c.InvalidateSession("session-x")
	got3 := c.FirstSeenSkeleton("session-x", second)
	require.Equal(t, second.CipherSuites, got3.CipherSuites)
}
