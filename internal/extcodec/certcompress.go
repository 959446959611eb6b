package extcodec

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/parrotls/parrotls/internal/model"
)

// CompressCertificate compresses certDER using algo, per the transform
// RFC 8879 §4 associates with each compress_certificate algorithm ID. This
// is a supplement to the wire-codec responsibility of package extcodec:
// the compress_certificate extension only negotiates the algorithm id, but
// a ClientHello-mimicry engine that claims to support one is expected to be
// able to actually produce/consume that format end to end.
//
// CertCompressionZstd is not implemented; it takes the unsupported-algorithm
// error path like any other unknown id.
func CompressCertificate(certDER []byte, algo model.CertCompressionAlgo) ([]byte, error) {
	switch algo {
	case model.CertCompressionBrotli:
		var buf bytes.Buffer
		w := brotli.NewWriter(&buf)
		if _, err := w.Write(certDER); err != nil {
			return nil, fmt.Errorf("extcodec: brotli compress: %w", err)
		}
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("extcodec: brotli compress: %w", err)
		}
		return buf.Bytes(), nil
	case model.CertCompressionZlib:
		var buf bytes.Buffer
		w := zlib.NewWriter(&buf)
		if _, err := w.Write(certDER); err != nil {
			return nil, fmt.Errorf("extcodec: zlib compress: %w", err)
		}
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("extcodec: zlib compress: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("extcodec: unsupported compress_certificate algorithm %d", algo)
	}
}

// DecompressCertificate reverses CompressCertificate.
func DecompressCertificate(compressed []byte, algo model.CertCompressionAlgo) ([]byte, error) {
	switch algo {
	case model.CertCompressionBrotli:
		r := brotli.NewReader(bytes.NewReader(compressed))
		out, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("extcodec: brotli decompress: %w", err)
		}
		return out, nil
	case model.CertCompressionZlib:
		r, err := zlib.NewReader(bytes.NewReader(compressed))
		if err != nil {
			return nil, fmt.Errorf("extcodec: zlib decompress: %w", err)
		}
		defer r.Close()
		out, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("extcodec: zlib decompress: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("extcodec: unsupported compress_certificate algorithm %d", algo)
	}
}
