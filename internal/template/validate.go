package template

import (
	"math"

	"github.com/parrotls/parrotls/internal/greaseset"
	"github.com/parrotls/parrotls/internal/model"
)

const pmfWeightEpsilon = 1e-6

// Validate enforces every template invariant from spec.md §3: nonempty
// lists, key_share_groups ⊆ supported_groups, padding bounds, GREASE values
// drawn from the canonical 16-value set, PMF weights summing to 1±ε, and
// presence of TLS 1.3 in supported versions unless the template is marked
// TLS 1.2-only.
func Validate(t model.Template) error {
	if t.Name == "" {
		return invariantErr("<unnamed>", "name must be non-empty")
	}
	if len(t.CipherSuites) == 0 {
		return invariantErr(t.Name, "cipher_suites must be non-empty")
	}
	if len(t.ExtensionOrder) == 0 {
		return invariantErr(t.Name, "extension_order must be non-empty")
	}
	if len(t.SupportedGroups) == 0 {
		return invariantErr(t.Name, "supported_groups must be non-empty")
	}
	if len(t.SupportedVersions) == 0 {
		return invariantErr(t.Name, "supported_versions must be non-empty")
	}

	if err := validateExtensionOrderShape(t); err != nil {
		return err
	}
	if err := validateKeyShareSubset(t); err != nil {
		return err
	}
	if err := validatePadding(t); err != nil {
		return err
	}
	if err := validateGrease(t); err != nil {
		return err
	}
	if err := validateTLS13Presence(t); err != nil {
		return err
	}
	return nil
}

func invariantErr(name, clause string) error {
	return model.NewTemplateInvariantError(name, clause)
}

// validateExtensionOrderShape enforces "no extension type appears twice"
// and "pre-shared-key, if present, is the final element" (spec.md §6 — the
// same invariants the randomization engine must preserve after perturbing).
func validateExtensionOrderShape(t model.Template) error {
	seen := make(map[uint16]struct{}, len(t.ExtensionOrder))
	for i, ext := range t.ExtensionOrder {
		if _, dup := seen[ext]; dup {
			return invariantErr(t.Name, "extension_order contains a duplicate entry")
		}
		seen[ext] = struct{}{}
		if ext == model.ExtPreSharedKey && i != len(t.ExtensionOrder)-1 {
			return invariantErr(t.Name, "pre_shared_key must be the final extension when present")
		}
	}
	return nil
}

func validateKeyShareSubset(t model.Template) error {
	groups := make(map[uint16]struct{}, len(t.SupportedGroups))
	for _, g := range t.SupportedGroups {
		groups[g] = struct{}{}
	}
	for _, ks := range t.KeyShareGroups {
		if _, ok := groups[ks]; !ok {
			return invariantErr(t.Name, "key_share_groups ⊆ supported_groups")
		}
	}
	return nil
}

func validatePadding(t model.Template) error {
	p := t.Padding
	if p.MinLength < 0 || p.MaxLength < p.MinLength {
		return invariantErr(t.Name, "padding min/max bounds must satisfy 0 ≤ min ≤ max")
	}
	if p.PowerOfTwoBias < 0 || p.PowerOfTwoBias > 1 {
		return invariantErr(t.Name, "padding power_of_2_bias must be in [0,1]")
	}
	if len(p.PMF) == 0 {
		return invariantErr(t.Name, "padding_pmf must be non-empty")
	}
	var sum float64
	for _, e := range p.PMF {
		if e.Value < p.MinLength || e.Value > p.MaxLength {
			return invariantErr(t.Name, "padding_pmf value outside [min_length,max_length]")
		}
		if e.Weight < 0 {
			return invariantErr(t.Name, "padding_pmf weight must be non-negative")
		}
		sum += e.Weight
	}
	if math.Abs(sum-1.0) > pmfWeightEpsilon {
		return invariantErr(t.Name, "padding_pmf weights must sum to 1±ε")
	}
	return nil
}

func validateGrease(t model.Template) error {
	if t.Grease.CipherSuiteProbability < 0 || t.Grease.CipherSuiteProbability > 1 {
		return invariantErr(t.Name, "grease.cipher_suite_probability must be in [0,1]")
	}
	if t.Grease.ExtensionProbability < 0 || t.Grease.ExtensionProbability > 1 {
		return invariantErr(t.Name, "grease.extension_probability must be in [0,1]")
	}
	for _, pos := range t.Grease.CipherSuitePositions {
		if pos < 0 || pos > 1 {
			return invariantErr(t.Name, "grease.cipher_suite_positions must be normalized in [0,1]")
		}
	}
	for _, pos := range t.Grease.ExtensionPositions {
		if pos < 0 || pos > 1 {
			return invariantErr(t.Name, "grease.extension_positions must be normalized in [0,1]")
		}
	}
	canonical := make(map[uint16]struct{}, len(greaseset.Values))
	for _, v := range greaseset.Values {
		canonical[v] = struct{}{}
	}
	for _, v := range t.Grease.Values {
		if _, ok := canonical[v]; !ok {
			return invariantErr(t.Name, "grease.grease_values must be drawn from the canonical 16-value set")
		}
	}
	return nil
}

func validateTLS13Presence(t model.Template) error {
	if t.TLS12Only {
		return nil
	}
	for _, v := range t.SupportedVersions {
		if v == 0x0304 {
			return nil
		}
	}
	return invariantErr(t.Name, "supported_versions must include TLS 1.3 unless the template is marked TLS 1.2-only")
}
