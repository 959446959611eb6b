package extcodec

import "github.com/parrotls/parrotls/internal/model"

// EncodeSCT serializes the signed_certificate_timestamp extension
// (0x0012): presence-only, zero bytes of payload.
func EncodeSCT() []byte {
	return []byte{}
}

// DecodeSCT verifies that data carries no payload, per the
// signed_certificate_timestamp extension's presence-only contract.
func DecodeSCT(data []byte) error {
	if len(data) != 0 {
		return model.NewMalformedExtensionError(model.ExtSCT, "signed_certificate_timestamp must carry no payload")
	}
	return nil
}
