package randomize

import (
	"fmt"
	"testing"

	"github.com/parrotls/parrotls/internal/greaseset"
	"github.com/parrotls/parrotls/internal/model"
	"github.com/parrotls/parrotls/internal/randomize/testrng"
	"github.com/parrotls/parrotls/internal/template"
	"github.com/stretchr/testify/require"
)

func noExtensionDuplicates(t *testing.T, extensions []uint16) {
	t.Helper()
	seen := make(map[uint16]struct{}, len(extensions))
	for _, e := range extensions {
		_, dup := seen[e]
		require.False(t, dup, "duplicate extension %d", e)
		seen[e] = struct{}{}
	}
}

func TestApplyPreservesPSKLastAcrossLevelsAndSeeds(t *testing.T) {
	e := NewEngine(nil)
	tpl := template.ChromeLike()
	tpl.ExtensionOrder = append(tpl.ExtensionOrder, model.ExtPreSharedKey)

	for _, level := range []model.RandomizationLevel{model.LevelNone, model.LevelLight, model.LevelMedium, model.LevelHigh} {
		for seed := uint64(0); seed < 20; seed++ {
			cfg, err := e.Apply(tpl, level, testrng.New(seed))
			require.NoError(t, err)
			noExtensionDuplicates(t, cfg.ExtensionOrder)
			require.Equal(t, model.ExtPreSharedKey, cfg.ExtensionOrder[len(cfg.ExtensionOrder)-1], "level=%v seed=%d", level, seed)
		}
	}
}

func TestApplyNoneReturnsTemplateListsVerbatim(t *testing.T) {
	e := NewEngine(nil)
	tpl := template.SafariLike()
	cfg, err := e.Apply(tpl, model.LevelNone, testrng.New(1))
	require.NoError(t, err)
	require.Equal(t, tpl.CipherSuites, cfg.CipherSuites)
	require.Equal(t, tpl.ExtensionOrder, cfg.ExtensionOrder)
}

func TestApplyGreaseProbabilityZeroNeverInserts(t *testing.T) {
	e := NewEngine(nil)
	tpl := template.ChromeLike()
	tpl.Grease.CipherSuiteProbability = 0
	tpl.Grease.ExtensionProbability = 0

	for seed := uint64(0); seed < 50; seed++ {
		cfg, err := e.Apply(tpl, model.LevelHigh, testrng.New(seed))
		require.NoError(t, err)
		require.Len(t, cfg.CipherSuites, len(tpl.CipherSuites))
		require.Len(t, cfg.ExtensionOrder, len(tpl.ExtensionOrder))
	}
}

func TestApplyGreaseInsertsCanonicalValue(t *testing.T) {
	e := NewEngine(nil)
	tpl := template.SafariLike()
	tpl.Grease.CipherSuiteProbability = 1.0

	canonical := make(map[uint16]struct{}, len(greaseset.Values))
	for _, v := range greaseset.Values {
		canonical[v] = struct{}{}
	}

	found := false
	for seed := uint64(0); seed < 30; seed++ {
		cfg, err := e.Apply(tpl, model.LevelLight, testrng.New(seed))
		require.NoError(t, err)
		if len(cfg.CipherSuites) == len(tpl.CipherSuites)+1 {
			found = true
			var greaseCount int
			for _, c := range cfg.CipherSuites {
				if _, ok := canonical[c]; ok {
					greaseCount++
				}
			}
			require.Equal(t, 1, greaseCount)
		}
	}
	require.True(t, found, "expected at least one seed to trigger a GREASE insertion")
}

func TestApplyPaddingAlwaysWithinTemplateBounds(t *testing.T) {
	e := NewEngine(nil)
	for _, tpl := range []model.Template{template.ChromeLike(), template.SafariLike()} {
		for seed := uint64(0); seed < 50; seed++ {
			cfg, err := e.Apply(tpl, model.LevelMedium, testrng.New(seed))
			require.NoError(t, err)
			require.GreaterOrEqual(t, cfg.PaddingLength, tpl.Padding.MinLength)
			require.LessOrEqual(t, cfg.PaddingLength, tpl.Padding.MaxLength)
		}
	}
}

// TestMediumAndHighProduceOutputsLightNeverDoes guards the level-graded
// perturbation (spec.md §4.3): Medium additionally permits equivalence-class
// extension substitution and High additionally permits standard-extension
// reordering and a wider GREASE position pool, so each level's reachable
// set of extension orders must not collapse to the level below it.
func TestMediumAndHighProduceOutputsLightNeverDoes(t *testing.T) {
	e := NewEngine(nil)
	tpl := template.ChromeLike()

	reachable := func(level model.RandomizationLevel) map[string]struct{} {
		seen := make(map[string]struct{})
		for seed := uint64(0); seed < 60; seed++ {
			cfg, err := e.Apply(tpl, level, testrng.New(seed))
			require.NoError(t, err)
			seen[fmt.Sprint(cfg.ExtensionOrder)] = struct{}{}
		}
		return seen
	}

	light := reachable(model.LevelLight)
	medium := reachable(model.LevelMedium)
	high := reachable(model.LevelHigh)

	reachesBeyond := func(upper, lower map[string]struct{}) bool {
		for order := range upper {
			if _, ok := lower[order]; !ok {
				return true
			}
		}
		return false
	}
	require.True(t, reachesBeyond(medium, light), "Medium must reach extension orders Light never produces")
	require.True(t, reachesBeyond(high, medium), "High must reach extension orders Medium never produces")
}

func TestApplyDegradesWhenNaturalnessUnsatisfiable(t *testing.T) {
	e := NewEngine(nil)
	tpl := template.ChromeLike()
	// Force an unsatisfiable naturalness filter: require an extension the
	// template never includes, with no substitution path.
	tpl.Naturalness.Requires = map[uint16][]uint16{
		tpl.ExtensionOrder[0]: {0x9999},
	}

	cfg, err := e.Apply(tpl, model.LevelHigh, testrng.New(5))
	require.NoError(t, err)
	require.Equal(t, tpl.ExtensionOrder, cfg.ExtensionOrder)
}
