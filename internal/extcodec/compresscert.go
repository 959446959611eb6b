package extcodec

import "github.com/parrotls/parrotls/internal/model"

// EncodeCompressCertificate serializes the compress_certificate extension
// body: a one-byte length prefix followed by a concatenation of 2-byte
// compression-algorithm identifiers.
func EncodeCompressCertificate(algos []model.CertCompressionAlgo) []byte {
	out := make([]byte, 1+2*len(algos))
	out[0] = byte(2 * len(algos))
	for i, a := range algos {
		out[1+2*i] = byte(a >> 8)
		out[1+2*i+1] = byte(a)
	}
	return out
}

// DecodeCompressCertificate parses the wire form produced by
// EncodeCompressCertificate. The inner length must be even.
func DecodeCompressCertificate(data []byte) ([]model.CertCompressionAlgo, error) {
	if len(data) < 1 {
		return nil, model.NewMalformedExtensionError(model.ExtCompressCertificate, "truncated length prefix")
	}
	n := int(data[0])
	body := data[1:]
	if n != len(body) {
		return nil, model.NewMalformedExtensionError(model.ExtCompressCertificate, "declared length does not match body")
	}
	if n%2 != 0 {
		return nil, model.NewMalformedExtensionError(model.ExtCompressCertificate, "odd length")
	}

	algos := make([]model.CertCompressionAlgo, 0, n/2)
	for pos := 0; pos < n; pos += 2 {
		algos = append(algos, model.CertCompressionAlgo(uint16(body[pos])<<8|uint16(body[pos+1])))
	}
	return algos, nil
}
