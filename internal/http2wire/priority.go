package http2wire

import (
	"bytes"

	"golang.org/x/net/http2"
)

// PriorityParam describes the dependency and weight of one HTTP/2 stream,
// mirroring http2.PriorityParam so callers of this package never need to
// import golang.org/x/net/http2 directly.
type PriorityParam struct {
	StreamDep uint32
	Exclusive bool
	Weight    uint8
}

// EncodePriority serializes a complete PRIORITY frame for streamID. Chrome
// and Firefox both open the connection with a PRIORITY frame tree before any
// request; the exact dependency/weight values are part of the Akamai-class
// HTTP/2 fingerprint.
func EncodePriority(streamID uint32, p PriorityParam) []byte {
	var buf bytes.Buffer
	fr := http2.NewFramer(&buf, nil)
	_ = fr.WritePriority(streamID, http2.PriorityParam{
		StreamDep: p.StreamDep,
		Exclusive: p.Exclusive,
		Weight:    p.Weight,
	})
	return buf.Bytes()
}
