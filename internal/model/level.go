package model

// RandomizationLevel governs which perturbation classes the randomization
// engine may apply (spec.md §4.3).
type RandomizationLevel int

const (
	LevelNone RandomizationLevel = iota
	LevelLight
	LevelMedium
	LevelHigh
)

// String implements fmt.Stringer for log lines and test failure messages.
func (l RandomizationLevel) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelLight:
		return "light"
	case LevelMedium:
		return "medium"
	case LevelHigh:
		return "high"
	default:
		return "unknown"
	}
}

// TemplateRotationPolicy governs how the Customizer picks an active
// Template across calls when more than one is configured (spec.md §3).
type TemplateRotationPolicy int

const (
	RotationNone TemplateRotationPolicy = iota
	RotationRoundRobin
	RotationRandom
	RotationWeightedRandom
)

// String implements fmt.Stringer for log lines and config-error messages.
func (p TemplateRotationPolicy) String() string {
	switch p {
	case RotationNone:
		return "none"
	case RotationRoundRobin:
		return "round_robin"
	case RotationRandom:
		return "random"
	case RotationWeightedRandom:
		return "weighted_random"
	default:
		return "unknown"
	}
}
