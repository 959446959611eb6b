package randomize

import "github.com/parrotls/parrotls/internal/model"

// substituteEquivalentOptional implements the Medium-level "minor
// optional-extension substitution" permitted by spec.md §4.3: for the
// first equivalence class that has exactly one side present and at least
// one side absent, swap a present member out for an absent one at the same
// position. A coin flip gates whether any substitution is attempted at
// all, since Medium permits this class of change rather than mandating it
// on every call.
func substituteEquivalentOptional(extensions []uint16, classes [][]uint16, rng model.RNG) []uint16 {
	if len(classes) == 0 {
		return extensions
	}
	if model.Float64(rng) >= 0.5 {
		return extensions
	}

	position := make(map[uint16]int, len(extensions))
	for i, ext := range extensions {
		position[ext] = i
	}

	for _, class := range classes {
		var present, absent []uint16
		for _, member := range class {
			if _, ok := position[member]; ok {
				present = append(present, member)
			} else {
				absent = append(absent, member)
			}
		}
		if len(present) == 0 || len(absent) == 0 {
			continue
		}
		drop := present[model.Intn(rng, len(present))]
		add := absent[model.Intn(rng, len(absent))]

		out := append([]uint16(nil), extensions...)
		out[position[drop]] = add
		return out
	}
	return extensions
}
