package extcodec

import (
	"encoding/binary"

	"github.com/parrotls/parrotls/internal/model"
)

// StatusRequest is the decoded form of the status_request extension
// (0x0005): one-byte type, a responder-ID list, and an extensions blob.
type StatusRequest struct {
	Type           byte // OCSP = 0x01
	ResponderIDs   []byte
	RequestExtensions []byte
}

// StatusTypeOCSP is the only status_type value in use on the modern web.
const StatusTypeOCSP byte = 0x01

// EncodeStatusRequest serializes an OCSP status_request extension body:
// one-byte type, two-byte responder-ID-list length + bytes, two-byte
// extensions length + bytes.
func EncodeStatusRequest(sr StatusRequest) []byte {
	out := make([]byte, 0, 1+2+len(sr.ResponderIDs)+2+len(sr.RequestExtensions))
	out = append(out, sr.Type)
	out = appendU16LenPrefixed(out, sr.ResponderIDs)
	out = appendU16LenPrefixed(out, sr.RequestExtensions)
	return out
}

// DecodeStatusRequest parses the wire form produced by EncodeStatusRequest.
func DecodeStatusRequest(data []byte) (StatusRequest, error) {
	if len(data) < 1 {
		return StatusRequest{}, model.NewMalformedExtensionError(model.ExtStatusRequest, "missing type byte")
	}
	sr := StatusRequest{Type: data[0]}
	pos := 1

	ids, next, err := readU16LenPrefixed(data, pos)
	if err != nil {
		return StatusRequest{}, err
	}
	sr.ResponderIDs = ids
	pos = next

	exts, next, err := readU16LenPrefixed(data, pos)
	if err != nil {
		return StatusRequest{}, err
	}
	sr.RequestExtensions = exts
	pos = next

	if pos != len(data) {
		return StatusRequest{}, model.NewMalformedExtensionError(model.ExtStatusRequest, "trailing bytes after extensions blob")
	}
	return sr, nil
}

func appendU16LenPrefixed(dst, body []byte) []byte {
	var lenBuf [2]byte
	binary.BigEndian.PutUint16(lenBuf[:], uint16(len(body)))
	dst = append(dst, lenBuf[:]...)
	return append(dst, body...)
}

func readU16LenPrefixed(data []byte, pos int) (body []byte, next int, err error) {
	if pos+2 > len(data) {
		return nil, 0, model.NewMalformedExtensionError(model.ExtStatusRequest, "truncated length prefix")
	}
	n := int(binary.BigEndian.Uint16(data[pos : pos+2]))
	pos += 2
	if pos+n > len(data) {
		return nil, 0, model.NewMalformedExtensionError(model.ExtStatusRequest, "declared length overruns buffer")
	}
	return append([]byte(nil), data[pos:pos+n]...), pos + n, nil
}
