// Package security implements the session/security glue between the
// Customizer Pipeline and the host TLS stack's handshake outcome: the
// downgrade-canary check and session-resumption consistency tracking
// (spec.md §4.6).
package security

import (
	"bytes"

	"github.com/parrotls/parrotls/internal/model"
)

// tls12DowngradeCanary and priorDowngradeCanary are the last 8 bytes RFC
// 8446 §4.1.3 specifies a TLS 1.3-capable server must write into
// ServerHello.random when it detects an active downgrade attempt.
var (
	tls12DowngradeCanary  = [8]byte{0x44, 0x4F, 0x57, 0x4E, 0x47, 0x52, 0x44, 0x01}
	priorDowngradeCanary  = [8]byte{0x44, 0x4F, 0x57, 0x4E, 0x47, 0x52, 0x44, 0x00}
)

// CheckDowngradeCanary inspects the last 8 bytes of a ServerHello.random
// value. If either canary is present and the client offered TLS 1.3, the
// handshake is aborted with a typed downgrade-suspected error — this check
// is mandatory and not a hook (spec.md §4.6).
func CheckDowngradeCanary(serverRandom [32]byte, offeredTLS13 bool) error {
	if !offeredTLS13 {
		return nil
	}
	tail := serverRandom[24:]
	if bytes.Equal(tail, tls12DowngradeCanary[:]) {
		return model.NewDowngradeSuspectedError("tls12")
	}
	if bytes.Equal(tail, priorDowngradeCanary[:]) {
		return model.NewDowngradeSuspectedError("pre-tls12")
	}
	return nil
}
