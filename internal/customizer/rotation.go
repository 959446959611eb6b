package customizer

import (
	"sync/atomic"

	"github.com/parrotls/parrotls/internal/model"
	"github.com/parrotls/parrotls/internal/pmf"
	"github.com/parrotls/parrotls/internal/template"
)

// defaultRotationOrder is the candidate list used when a caller configures
// a rotation policy without naming an explicit RotationTemplates list.
// defaultRotationWeights favor Chrome > Edge > Firefox > Safari, reflecting
// real desktop browser-share ordering — spec.md leaves the exact weights
// unspecified, so this ordering is a recorded design decision (see
// DESIGN.md) rather than a derived constant. These weights apply only when
// the caller supplies no candidate list; any caller-supplied list, even one
// naming the same four templates, gets uniform WeightedRandom weights.
var defaultRotationOrder = []string{template.NameChrome, template.NameEdge, template.NameFirefox, template.NameSafari}

var defaultRotationWeights = []model.PMFEntry{
	{Value: 0, Weight: 0.45}, // chrome
	{Value: 1, Weight: 0.25}, // edge
	{Value: 2, Weight: 0.20}, // firefox
	{Value: 3, Weight: 0.10}, // safari
}

// rotator picks the next template name according to a TemplateRotationPolicy.
type rotator struct {
	policy     model.TemplateRotationPolicy
	fixed      string // used only by RotationNone
	candidates []string
	weights    []model.PMFEntry
	counter    uint64 // atomically incremented by RoundRobin
}

// newRotator builds a rotator. An empty candidates list defaults to
// defaultRotationOrder (and, for WeightedRandom, defaultRotationWeights);
// a non-empty caller-supplied list uses uniform weights for WeightedRandom
// since spec.md leaves custom-list weighting unspecified.
func newRotator(policy model.TemplateRotationPolicy, fixed string, candidates []string) *rotator {
	r := &rotator{policy: policy, fixed: fixed}
	if len(candidates) == 0 {
		r.candidates = defaultRotationOrder
		r.weights = defaultRotationWeights
		return r
	}
	r.candidates = candidates
	r.weights = make([]model.PMFEntry, len(candidates))
	uniform := 1.0 / float64(len(candidates))
	for i := range candidates {
		r.weights[i] = model.PMFEntry{Value: i, Weight: uniform}
	}
	return r
}

func (r *rotator) next(rng model.RNG) string {
	switch r.policy {
	case model.RotationRoundRobin:
		n := atomic.AddUint64(&r.counter, 1) - 1
		return r.candidates[n%uint64(len(r.candidates))]
	case model.RotationRandom:
		return r.candidates[model.Intn(rng, len(r.candidates))]
	case model.RotationWeightedRandom:
		idx := pmf.SampleFromPMF(r.weights, rng)
		return r.candidates[idx]
	default: // RotationNone
		if r.fixed != "" {
			return r.fixed
		}
		return r.candidates[0]
	}
}
