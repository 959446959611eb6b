// Package extcodec implements wire encode/decode for the extensions the
// host TLS stack does not natively emit (spec.md §4.1). Every codec is
// infallible on encode and returns a *model.Error of kind
// KindMalformedExtension on decode failure — never a panic.
package extcodec

import (
	"encoding/binary"

	"github.com/parrotls/parrotls/internal/model"
)

// EncodeApplicationSettings serializes the application_settings (ALPS)
// extension body: a two-byte length prefix followed by a concatenation of
// length-prefixed ALPN identifiers.
func EncodeApplicationSettings(protocols [][]byte) []byte {
	inner := make([]byte, 0, 32)
	for _, p := range protocols {
		inner = append(inner, byte(len(p)))
		inner = append(inner, p...)
	}
	out := make([]byte, 2+len(inner))
	binary.BigEndian.PutUint16(out, uint16(len(inner)))
	copy(out[2:], inner)
	return out
}

// DecodeApplicationSettings parses the wire form produced by
// EncodeApplicationSettings.
func DecodeApplicationSettings(data []byte) ([][]byte, error) {
	if len(data) < 2 {
		return nil, model.NewMalformedExtensionError(model.ExtApplicationSettingsNew, "truncated length prefix")
	}
	n := int(binary.BigEndian.Uint16(data[:2]))
	body := data[2:]
	if n != len(body) {
		return nil, model.NewMalformedExtensionError(model.ExtApplicationSettingsNew, "declared length does not match body")
	}

	var protocols [][]byte
	pos := 0
	for pos < len(body) {
		plen := int(body[pos])
		pos++
		if pos+plen > len(body) {
			return nil, model.NewMalformedExtensionError(model.ExtApplicationSettingsNew, "protocol identifier overruns body")
		}
		protocols = append(protocols, append([]byte(nil), body[pos:pos+plen]...))
		pos += plen
	}
	return protocols, nil
}
