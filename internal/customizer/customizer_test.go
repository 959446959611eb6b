package customizer

import (
	"testing"
	"time"

	"github.com/parrotls/parrotls/internal/model"
	"github.com/parrotls/parrotls/internal/randomize/testrng"
	"github.com/parrotls/parrotls/internal/template"
	"github.com/stretchr/testify/require"
)

func newTestShared(seed uint64) *SharedState {
	return NewSharedState(8, model.RotationNone, "", nil, testrng.New(seed), nil)
}

func seedRNG(seed uint64) model.RNG {
	return testrng.New(seed)
}

func TestOnConfigResolvePinnedTemplate(t *testing.T) {
	shared := newTestShared(1)
	o := NewDefaultOrchestrator(shared, template.Global(), seedRNG, model.TargetKey{Host: "example.com", Port: 443})

	p := &ConfigParams{RequestedTemplate: template.NameFirefox}
	require.NoError(t, o.OnConfigResolve(p))
	require.Equal(t, template.NameFirefox, p.SelectedTemplate.Name)
	require.False(t, p.ReplayPath)
}

func TestOnConfigResolveUnknownTemplateErrors(t *testing.T) {
	shared := newTestShared(1)
	o := NewDefaultOrchestrator(shared, template.Global(), seedRNG, model.TargetKey{Host: "example.com", Port: 443})

	err := o.OnConfigResolve(&ConfigParams{RequestedTemplate: "does-not-exist"})
	require.Error(t, err)
}

func TestOnConfigResolveRotationPicksFromOrder(t *testing.T) {
	shared := NewSharedState(8, model.RotationRoundRobin, "", nil, testrng.New(1), nil)
	target := model.TargetKey{Host: "example.com", Port: 443}

	seen := map[string]bool{}
	for i := 0; i < len(defaultRotationOrder); i++ {
		o := NewDefaultOrchestrator(shared, template.Global(), seedRNG, target)
		p := &ConfigParams{}
		require.NoError(t, o.OnConfigResolve(p))
		seen[p.SelectedTemplate.Name] = true
	}
	require.Len(t, seen, len(defaultRotationOrder), "round robin should cycle through every distinct template")
}

func TestFullPipelineColdPathProducesValidStruct(t *testing.T) {
	shared := newTestShared(7)
	target := model.TargetKey{Host: "example.com", Port: 443}
	o := NewDefaultOrchestrator(shared, template.Global(), seedRNG, target)

	p := &ConfigParams{RequestedTemplate: template.NameChrome}
	require.NoError(t, o.OnConfigResolve(p))

	c := &Components{}
	require.NoError(t, o.OnComponentsReady(c))
	require.NotEmpty(t, c.CipherSuites)
	require.NotEmpty(t, c.Extensions)

	s := &ClientHelloStruct{Extensions: NewExtensionCollection(nil, nil)}
	require.NoError(t, o.OnStructReady(s))

	_, hasPadding := s.Extensions.Get(model.ExtPadding)
	require.True(t, hasPadding, "OnStructReady must add a Padding extension")
	require.NoError(t, model.ValidateExtensionOrder(s.Extensions.Order()))

	wb := &WireBytes{Bytes: []byte{1, 2, 3}}
	require.NoError(t, o.OnTransformWireBytes(wb))
	require.Equal(t, []byte{1, 2, 3}, wb.Bytes, "default Phase 4 hook must be identity")

	assembled := o.AssembledConfig()
	require.Equal(t, p.Seed, assembled.Seed)
	require.Equal(t, target, o.Target())
}

func TestReplayPathReusesCachedSkeleton(t *testing.T) {
	shared := newTestShared(3)
	target := model.TargetKey{Host: "example.com", Port: 443}

	tpl, ok := template.Global().Lookup(template.NameSafari)
	require.True(t, ok)
	cached := model.ClientHelloConfig{
		TemplateName:   tpl.Name,
		CipherSuites:   append([]uint16(nil), tpl.CipherSuites...),
		ExtensionOrder: append([]uint16(nil), tpl.ExtensionOrder...),
		Seed:           99,
	}
	shared.cache.RecordResult(target, cached, true, time.Now())

	o := NewDefaultOrchestrator(shared, template.Global(), seedRNG, target)
	p := &ConfigParams{RequestedTemplate: template.NameSafari}
	require.NoError(t, o.OnConfigResolve(p))
	require.True(t, p.ReplayPath)
	require.Equal(t, uint64(99), p.Seed, "replay path must reseed from the cached entry's own seed")

	c := &Components{}
	require.NoError(t, o.OnComponentsReady(c))
	require.NotEmpty(t, c.CipherSuites)
}

func TestMergeOrderPreservesPreferredFirst(t *testing.T) {
	current := []uint16{5, 1, 2, 3}
	preferred := []uint16{1, 2, 3}
	got := mergeOrder(current, preferred)
	require.Equal(t, []uint16{1, 2, 3, 5}, got)
}
