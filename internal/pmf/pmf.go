// Package pmf implements probability-mass-function sampling and the
// power-of-two-biased length sampling used by the randomization engine's
// padding-length generator (spec.md §4.7).
package pmf

import (
	"math/bits"

	"github.com/parrotls/parrotls/internal/model"
)

// SampleFromPMF draws a value from a discrete distribution given as
// (value, weight) pairs. Weights need not be pre-normalized; SampleFromPMF
// sums them and scales the draw accordingly. An empty pmf returns 0.
func SampleFromPMF(entries []model.PMFEntry, rng model.RNG) int {
	if len(entries) == 0 {
		return 0
	}
	var total float64
	for _, e := range entries {
		total += e.Weight
	}
	if total <= 0 {
		return entries[0].Value
	}
	r := model.Float64(rng) * total
	var acc float64
	for _, e := range entries {
		acc += e.Weight
		if r < acc {
			return e.Value
		}
	}
	// Floating-point rounding may leave r >= acc after the last entry; fall
	// back to the last entry rather than panicking.
	return entries[len(entries)-1].Value
}

// SampleWithPowerOfTwoBias returns a length L in [min,max]. An initial draw
// is made uniformly in that range; with probability bias, L is snapped to
// the nearest power of two that still falls in [min,max].
func SampleWithPowerOfTwoBias(min, max int, bias float64, rng model.RNG) int {
	if max < min {
		min, max = max, min
	}
	if max == min {
		return clamp(min, min, max)
	}
	span := max - min + 1
	l := min + model.Intn(rng, span)
	if model.Float64(rng) < bias {
		l = clamp(nearestPowerOfTwo(l), min, max)
	}
	return clamp(l, min, max)
}

// SnapBias takes an already-drawn length l and, with probability bias,
// snaps it to the nearest power of two within [min,max]; the result is
// always clamped to [min,max]. This is the second half of spec.md §4.3's
// "Padding length generation": draw L from padding_pmf (SampleFromPMF),
// then apply this snap.
func SnapBias(l, min, max int, bias float64, rng model.RNG) int {
	if max < min {
		min, max = max, min
	}
	if model.Float64(rng) < bias {
		l = nearestPowerOfTwo(l)
	}
	return clamp(l, min, max)
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// nearestPowerOfTwo returns the power of two closest to v (ties round up),
// treating v<=0 as 0.
func nearestPowerOfTwo(v int) int {
	if v <= 0 {
		return 0
	}
	hi := 1 << bits.Len(uint(v-1))
	lo := hi / 2
	if lo == 0 {
		return hi
	}
	if v-lo < hi-v {
		return lo
	}
	return hi
}
