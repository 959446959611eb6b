package utlsbridge

import (
	"github.com/parrotls/parrotls/internal/security"
	utls "github.com/refraction-networking/utls"
)

// DowngradeCheck wires internal/security.CheckDowngradeCanary against the
// ServerHello.random value uTLS captured during the handshake (spec.md
// §4.6, §6). uTLS exposes the in-progress handshake state (the teacher's
// fork of it is visible in the retrieval pack's u_parrot.go, which reads
// uconn.HandshakeState.Hello/.Session the same way) rather than surfacing
// server random on the stdlib-shaped ConnectionState, so this reads it off
// HandshakeState.ServerHello directly.
func DowngradeCheck(uConn *utls.UConn, offeredTLS13 bool) error {
	random := uConn.HandshakeState.ServerHello.Random
	var serverRandom [32]byte
	copy(serverRandom[:], random)
	return security.CheckDowngradeCanary(serverRandom, offeredTLS13)
}
