// Package model defines the data types shared by every layer of the
// ClientHello customization engine: target identity, browser templates,
// randomization knobs, and the cache payload. Nothing in this package
// talks to a network or to a concrete TLS stack.
package model

import "fmt"

// TargetKey identifies a cache entry. It is immutable and comparable, so it
// can be used directly as a map key.
type TargetKey struct {
	Host string
	Port uint16
}

// String renders the key as "host:port", matching net.JoinHostPort for the
// common case.
func (k TargetKey) String() string {
	return fmt.Sprintf("%s:%d", k.Host, k.Port)
}
