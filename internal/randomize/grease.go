package randomize

import "github.com/parrotls/parrotls/internal/model"

// greaseCipherSuite draws a cipher-suite GREASE insertion, trialing against
// pattern.CipherSuiteProbability and, on success, an insertion index sampled
// from pattern.CipherSuitePositions. Returns ok=false when the trial fails
// or the pattern declares no GREASE values; with no position pool the value
// goes at the end of the list.
func greaseCipherSuite(current []uint16, pattern model.GreasePattern, rng model.RNG) (value uint16, index int, ok bool) {
	return greaseInsertion(len(current), pattern.CipherSuiteProbability, pattern.CipherSuitePositions, pattern.Values, rng)
}

// highLevelPositionPool supplements a template's own configured GREASE
// insertion positions at RandomizationLevel High, so the sampled index
// ranges over a denser set of candidate offsets than Light/Medium use
// (spec.md §4.3 "selection from a wider GREASE position pool").
var highLevelPositionPool = []float64{0.0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0}

// widenedPositionPool unions a template's configured extension-GREASE
// positions with highLevelPositionPool.
func widenedPositionPool(base []float64) []float64 {
	out := make([]float64, 0, len(base)+len(highLevelPositionPool))
	out = append(out, base...)
	out = append(out, highLevelPositionPool...)
	return out
}

func greaseInsertion(listLen int, probability float64, positions []float64, values []uint16, rng model.RNG) (value uint16, index int, ok bool) {
	if len(values) == 0 || probability <= 0 {
		return 0, 0, false
	}
	if model.Float64(rng) >= probability {
		return 0, 0, false
	}
	value = values[model.Intn(rng, len(values))]
	index = listLen // default: append at the end when no position pool is given
	if len(positions) > 0 {
		normalized := positions[model.Intn(rng, len(positions))]
		index = clampIndex(int(normalized*float64(listLen)), listLen)
	}
	return value, index, true
}

// insertAt inserts v into list at idx (clamped), shifting later elements
// right by one.
func insertAt(list []uint16, idx int, v uint16) []uint16 {
	idx = clampIndex(idx, len(list))
	out := make([]uint16, 0, len(list)+1)
	out = append(out, list[:idx]...)
	out = append(out, v)
	out = append(out, list[idx:]...)
	return out
}

func clampIndex(idx, listLen int) int {
	if idx < 0 {
		return 0
	}
	if idx > listLen {
		return listLen
	}
	return idx
}
