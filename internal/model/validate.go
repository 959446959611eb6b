package model

// ValidateExtensionOrder checks the two invariants every produced extension
// list must satisfy regardless of which phase last touched it (spec.md §6
// invariants 1-2, exposed as the `validate_extension_order` utility in
// spec.md §4.7): the pre-shared-key extension, if present, is the final
// element, and no extension type appears twice.
func ValidateExtensionOrder(extensions []uint16) error {
	seen := make(map[uint16]struct{}, len(extensions))
	for i, ext := range extensions {
		if _, dup := seen[ext]; dup {
			return &Error{Kind: KindValidation, Message: "duplicate extension type", Context: map[string]any{"extension_type": ext}}
		}
		seen[ext] = struct{}{}
		if ext == ExtPreSharedKey && i != len(extensions)-1 {
			return &Error{Kind: KindValidation, Message: "pre_shared_key must be the final extension", Context: map[string]any{"index": i, "length": len(extensions)}}
		}
	}
	return nil
}
