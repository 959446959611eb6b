package extcodec

import "github.com/parrotls/parrotls/internal/model"

// EncodePadding returns n zero bytes: the exact wire payload of the Padding
// extension (0x0015) for a chosen padding length n. n==0 is valid and
// returns an empty (non-nil) slice, so the caller can still emit a
// zero-length Padding extension rather than omitting it.
func EncodePadding(n int) []byte {
	if n <= 0 {
		return []byte{}
	}
	return make([]byte, n)
}

// DecodePadding verifies that data is entirely zero bytes and returns its
// length. A non-zero byte anywhere in data is a malformed extension: the
// Padding extension carries no other content.
func DecodePadding(data []byte) (int, error) {
	for _, b := range data {
		if b != 0 {
			return 0, model.NewMalformedExtensionError(model.ExtPadding, "non-zero byte in padding payload")
		}
	}
	return len(data), nil
}
