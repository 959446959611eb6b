// Package randomize implements the non-uniform randomization engine:
// given a Template and a RandomizationLevel, it produces a concrete
// cipher-suite list, extension list with GREASE injected, and a padding
// length, all while respecting the NaturalnessFilter and protocol-ordering
// invariants (spec.md §4.3).
package randomize

import (
	"github.com/parrotls/parrotls/internal/model"
	"go.uber.org/zap"
)

const naturalnessRetryBudget = 8

// Engine applies RandomizationLevel-graded variation to a Template.
type Engine struct {
	// Logger receives the "reverted to unperturbed template" notice when
	// the naturalness filter cannot be satisfied within the retry budget.
	// A nil Logger is treated as zap.NewNop().
	Logger *zap.Logger
}

// NewEngine returns an Engine. A nil logger defaults to a no-op logger, so
// a caller that never wires observability pays nothing (spec.md §7
// expansion).
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{Logger: logger}
}

// Apply produces a ClientHelloConfig for tpl at the given level, using rng
// for every random decision. The returned config's Seed is not set by
// Apply — callers that need to record the governing seed do so from the
// rng they constructed, since Apply treats rng as opaque.
func (e *Engine) Apply(tpl model.Template, level model.RandomizationLevel, rng model.RNG) (model.ClientHelloConfig, error) {
	cfg := model.ClientHelloConfig{
		TemplateName:  tpl.Name,
		ExtensionData: map[uint16][]byte{},
	}

	if level == model.LevelNone {
		cfg.CipherSuites = append([]uint16(nil), tpl.CipherSuites...)
		cfg.ExtensionOrder = append([]uint16(nil), tpl.ExtensionOrder...)
		cfg.PaddingLength = choosePaddingLength(tpl.Padding, rng)
		return cfg, nil
	}

	for attempt := 0; attempt < naturalnessRetryBudget; attempt++ {
		ciphers, cipherGreasePos := e.perturbCiphers(tpl, level, rng)
		extensions, extGreasePos := e.perturbExtensions(tpl, level, rng)

		if checkNaturalness(extensions, tpl.Naturalness) {
			cfg.CipherSuites = ciphers
			cfg.ExtensionOrder = extensions
			cfg.GreaseCipherPositions = cipherGreasePos
			cfg.GreaseExtensionPositions = extGreasePos
			cfg.PaddingLength = choosePaddingLength(tpl.Padding, rng)
			return cfg, nil
		}
	}

	e.Logger.Info("naturalness filter unsatisfied after retries; reverting to unperturbed template",
		zap.String("template", tpl.Name),
		zap.Int("attempts", naturalnessRetryBudget),
	)
	cfg.CipherSuites = append([]uint16(nil), tpl.CipherSuites...)
	cfg.ExtensionOrder = append([]uint16(nil), tpl.ExtensionOrder...)
	cfg.PaddingLength = choosePaddingLength(tpl.Padding, rng)
	return cfg, nil
}

func (e *Engine) perturbCiphers(tpl model.Template, level model.RandomizationLevel, rng model.RNG) (ciphers []uint16, greasePositions []int) {
	ciphers = append([]uint16(nil), tpl.CipherSuites...)
	value, idx, ok := greaseCipherSuite(ciphers, tpl.Grease, rng)
	if !ok {
		return ciphers, nil
	}
	ciphers = insertAt(ciphers, idx, value)
	return ciphers, []int{idx}
}

func (e *Engine) perturbExtensions(tpl model.Template, level model.RandomizationLevel, rng model.RNG) (extensions []uint16, greasePositions []int) {
	extensions = append([]uint16(nil), tpl.ExtensionOrder...)

	if level >= model.LevelLight {
		extensions = shuffleOptional(extensions, rng)
	}
	if level >= model.LevelMedium {
		extensions = substituteEquivalentOptional(extensions, tpl.Naturalness.EquivalenceClasses, rng)
	}
	if level >= model.LevelHigh {
		extensions = shuffleStandard(extensions, rng)
	}

	insertLimit := len(extensions)
	if insertLimit > 0 && extensions[insertLimit-1] == model.ExtPreSharedKey {
		insertLimit--
	}

	positions := tpl.Grease.ExtensionPositions
	if level >= model.LevelHigh {
		positions = widenedPositionPool(positions)
	}

	value, idx, ok := greaseInsertion(insertLimit, tpl.Grease.ExtensionProbability, positions, tpl.Grease.Values, rng)
	if !ok {
		return extensions, nil
	}
	extensions = insertAt(extensions, idx, value)
	return extensions, []int{idx}
}
