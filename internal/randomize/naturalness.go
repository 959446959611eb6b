package randomize

import "github.com/parrotls/parrotls/internal/model"

// checkNaturalness verifies, after perturbation, that no blacklisted subset
// of extensions is entirely present, that every present extension's
// required preconditions are also present, and that there are no duplicate
// extension types (spec.md §4.3 "Naturalness check").
func checkNaturalness(extensions []uint16, filter model.NaturalnessFilter) bool {
	present := make(map[uint16]struct{}, len(extensions))
	for _, ext := range extensions {
		if _, dup := present[ext]; dup {
			return false
		}
		present[ext] = struct{}{}
	}

	for _, subset := range filter.Blacklist {
		if allPresent(present, subset) {
			return false
		}
	}

	for ext := range present {
		for _, required := range filter.Requires[ext] {
			if _, ok := present[required]; !ok {
				return false
			}
		}
	}

	return true
}

func allPresent(present map[uint16]struct{}, subset []uint16) bool {
	if len(subset) == 0 {
		return false
	}
	for _, ext := range subset {
		if _, ok := present[ext]; !ok {
			return false
		}
	}
	return true
}
