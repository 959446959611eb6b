package customizer

// ConfigResolver implements Phase 1: select a template and seed
// randomization before any ClientHello component is built.
type ConfigResolver interface {
	OnConfigResolve(*ConfigParams) error
}

// ComponentsHook implements Phase 2: reorder, insert (GREASE), substitute,
// or drop entries in the cipher-suite and extension-type lists the host
// stack has already built from canonical defaults.
type ComponentsHook interface {
	OnComponentsReady(*Components) error
}

// StructHook implements Phase 3: final adjustments to the mutable
// ClientHello structure, including padding-extension sizing and
// reorder fixups, after the structure is complete but before encoding.
type StructHook interface {
	OnStructReady(*ClientHelloStruct) error
}

// WireHook implements Phase 4: byte-level rewrites of the fully-encoded
// ClientHello, after encoding and before handoff to the record layer.
// Implementations must not violate record-layer framing.
type WireHook interface {
	OnTransformWireBytes(*WireBytes) error
}
