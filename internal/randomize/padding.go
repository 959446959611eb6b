package randomize

import (
	"github.com/parrotls/parrotls/internal/model"
	"github.com/parrotls/parrotls/internal/pmf"
)

// choosePaddingLength draws an initial length from d.PMF, then with
// probability d.PowerOfTwoBias snaps it to the nearest power of two within
// [d.MinLength, d.MaxLength]; the result is always clamped to that range
// (spec.md §4.3 "Padding length generation").
func choosePaddingLength(d model.PaddingDistribution, rng model.RNG) int {
	l := pmf.SampleFromPMF(d.PMF, rng)
	return pmf.SnapBias(l, d.MinLength, d.MaxLength, d.PowerOfTwoBias, rng)
}
