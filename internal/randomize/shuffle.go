package randomize

import "github.com/parrotls/parrotls/internal/model"

// shuffleOptional performs a Fisher-Yates permutation restricted to the
// indices classified ClassOptional, wherever they sit, leaving critical and
// standard extensions exactly where they were. Reimplemented against our
// own grouped model rather than calling into utls.ShuffleChromeTLSExtensions,
// since the core engine never imports utls (spec.md §4.3 "Extension
// shuffling with grouped constraints").
func shuffleOptional(extensions []uint16, rng model.RNG) []uint16 {
	return shuffleClass(extensions, model.ClassOptional, rng)
}

// shuffleStandard permutes only the ClassStandard extensions, leaving
// critical and optional extensions exactly where they were. The High
// randomization level layers this on top of shuffleOptional for more
// aggressive reordering than Light/Medium permit (spec.md §4.3 "aggressive
// reordering of optional extensions" — standard extensions are already
// documented as "ordered but swappable within the standard group", so High
// is the level that actually exercises that swap).
func shuffleStandard(extensions []uint16, rng model.RNG) []uint16 {
	return shuffleClass(extensions, model.ClassStandard, rng)
}

func shuffleClass(extensions []uint16, class model.ExtensionClass, rng model.RNG) []uint16 {
	out := append([]uint16(nil), extensions...)
	idxs := make([]int, 0, len(out))
	for i, ext := range out {
		if classify(ext) == class {
			idxs = append(idxs, i)
		}
	}
	for i := len(idxs) - 1; i > 0; i-- {
		j := model.Intn(rng, i+1)
		a, b := idxs[i], idxs[j]
		out[a], out[b] = out[b], out[a]
	}
	return out
}
