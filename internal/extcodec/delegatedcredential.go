package extcodec

import (
	"encoding/binary"

	"github.com/parrotls/parrotls/internal/model"
)

// EncodeDelegatedCredentials serializes the delegated_credential signalling
// extension (0x0022): a two-byte length prefix followed by a concatenation
// of 2-byte signature-scheme identifiers.
func EncodeDelegatedCredentials(schemes []uint16) []byte {
	out := make([]byte, 2+2*len(schemes))
	binary.BigEndian.PutUint16(out, uint16(2*len(schemes)))
	for i, s := range schemes {
		binary.BigEndian.PutUint16(out[2+2*i:], s)
	}
	return out
}

// DecodeDelegatedCredentials parses the wire form produced by
// EncodeDelegatedCredentials. The inner length must be even, since it
// counts whole 2-byte identifiers.
func DecodeDelegatedCredentials(data []byte) ([]uint16, error) {
	if len(data) < 2 {
		return nil, model.NewMalformedExtensionError(model.ExtDelegatedCredentials, "truncated length prefix")
	}
	n := int(binary.BigEndian.Uint16(data[:2]))
	body := data[2:]
	if n != len(body) {
		return nil, model.NewMalformedExtensionError(model.ExtDelegatedCredentials, "declared length does not match body")
	}
	if n%2 != 0 {
		return nil, model.NewMalformedExtensionError(model.ExtDelegatedCredentials, "odd length")
	}

	schemes := make([]uint16, 0, n/2)
	for pos := 0; pos < n; pos += 2 {
		schemes = append(schemes, binary.BigEndian.Uint16(body[pos:pos+2]))
	}
	return schemes, nil
}
