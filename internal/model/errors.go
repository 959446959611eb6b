package model

import "fmt"

// ErrorKind tags an Error with the semantic category from spec.md §7. Kinds
// that are "absorbed" per the propagation policy (CacheError,
// RandomizationDegradation) are never returned from an exported API; they
// are logged and the caller instead observes a degraded-but-valid result.
type ErrorKind int

const (
	KindHook ErrorKind = iota
	KindTemplateInvariant
	KindMalformedExtension
	KindCache
	KindRandomizationDegradation
	KindDowngradeSuspected
	KindValidation
)

func (k ErrorKind) String() string {
	switch k {
	case KindHook:
		return "hook_error"
	case KindTemplateInvariant:
		return "template_invariant_error"
	case KindMalformedExtension:
		return "malformed_extension_error"
	case KindCache:
		return "cache_error"
	case KindRandomizationDegradation:
		return "randomization_degradation"
	case KindDowngradeSuspected:
		return "downgrade_attack_suspected"
	case KindValidation:
		return "validation_error"
	default:
		return "unknown_error"
	}
}

// Error is the single structured error type used across the engine. Each
// constructor below fixes Kind and supplies the relevant Context.
type Error struct {
	Kind    ErrorKind
	Message string
	// Context carries structured detail: which template, which phase, which
	// extension type, etc. Keys are short and stable so callers can program
	// against them.
	Context map[string]any
}

func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s %v", e.Kind, e.Message, e.Context)
}

// Is supports errors.Is(err, model.KindOnly(...)) style matching via a sentinel
// comparison on Kind, by letting callers compare against an *Error with only
// Kind set.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinel-style comparables for errors.Is(err, model.KindOnly(model.KindDowngradeSuspected)).
func KindOnly(k ErrorKind) *Error { return &Error{Kind: k} }

func NewHookError(phase string, cause error) *Error {
	return &Error{Kind: KindHook, Message: "phase callback returned an error", Context: map[string]any{"phase": phase, "cause": causeString(cause)}}
}

func NewTemplateInvariantError(template, clause string) *Error {
	return &Error{Kind: KindTemplateInvariant, Message: "template invariant violated", Context: map[string]any{"template": template, "clause": clause}}
}

func NewMalformedExtensionError(extType uint16, reason string) *Error {
	return &Error{Kind: KindMalformedExtension, Message: "malformed extension", Context: map[string]any{"extension_type": extType, "reason": reason}}
}

func NewCacheError(op string, cause error) *Error {
	return &Error{Kind: KindCache, Message: "cache operation failed", Context: map[string]any{"op": op, "cause": causeString(cause)}}
}

func NewRandomizationDegradation(template string, attempts int) *Error {
	return &Error{Kind: KindRandomizationDegradation, Message: "naturalness filter unsatisfied after retries; reverted to unperturbed template", Context: map[string]any{"template": template, "attempts": attempts}}
}

func NewDowngradeSuspectedError(canary string) *Error {
	return &Error{Kind: KindDowngradeSuspected, Message: "downgrade attack suspected", Context: map[string]any{"canary": canary}}
}

func NewValidationError(reason string) *Error {
	return &Error{Kind: KindValidation, Message: reason}
}

// ErrECHActive is returned by the Customizer Pipeline when the caller has
// indicated Encrypted Client Hello is active for this connection. The
// four-phase contract assumes a single plaintext ClientHello; reinterpreting
// it over an ECH inner/outer pair is out of scope, so the pipeline refuses
// rather than silently customizing only one side of the pair (spec.md §9
// Open Question 3, resolved as "refuse").
var ErrECHActive = &Error{Kind: KindHook, Message: "ech active: customizer pipeline refuses rather than reinterpret the four-phase contract over an inner/outer ClientHello pair"}

func causeString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
