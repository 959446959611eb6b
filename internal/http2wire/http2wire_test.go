package http2wire

import (
	"bytes"
	"testing"

	"golang.org/x/net/http2"
)

func newReader(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}

func TestEncodeSettingsRoundTrips(t *testing.T) {
	settings := []Setting{
		{ID: SettingHeaderTableSize, Val: 65536},
		{ID: SettingEnablePush, Val: 0},
		{ID: SettingMaxConcurrentStreams, Val: 1000},
		{ID: SettingInitialWindowSize, Val: 6291456},
		{ID: SettingMaxHeaderListSize, Val: 262144},
	}

	b := EncodeSettings(settings)
	fr := http2.NewFramer(nil, newReader(b))
	frame, err := fr.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	sf, ok := frame.(*http2.SettingsFrame)
	if !ok {
		t.Fatalf("got %T, want *http2.SettingsFrame", frame)
	}
	if sf.NumSettings() != len(settings) {
		t.Fatalf("NumSettings()=%d, want %d", sf.NumSettings(), len(settings))
	}
	for i, want := range settings {
		got := sf.Setting(i)
		if got.ID != http2.SettingID(want.ID) || got.Val != want.Val {
			t.Errorf("setting %d = %+v, want %+v", i, got, want)
		}
	}
}

func TestEncodePriorityRoundTrips(t *testing.T) {
	b := EncodePriority(3, PriorityParam{StreamDep: 0, Exclusive: true, Weight: 201})
	fr := http2.NewFramer(nil, newReader(b))
	frame, err := fr.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	pf, ok := frame.(*http2.PriorityFrame)
	if !ok {
		t.Fatalf("got %T, want *http2.PriorityFrame", frame)
	}
	if pf.StreamDep != 0 || !pf.Exclusive || pf.Weight != 201 {
		t.Errorf("got %+v, want StreamDep=0 Exclusive=true Weight=201", pf.PriorityParam)
	}
	if pf.FrameHeader.StreamID != 3 {
		t.Errorf("StreamID=%d, want 3", pf.FrameHeader.StreamID)
	}
}

func TestEncodeWindowUpdate(t *testing.T) {
	b := EncodeWindowUpdate(0, 15663105)
	fr := http2.NewFramer(nil, newReader(b))
	frame, err := fr.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	wf, ok := frame.(*http2.WindowUpdateFrame)
	if !ok {
		t.Fatalf("got %T, want *http2.WindowUpdateFrame", frame)
	}
	if wf.Increment != 15663105 {
		t.Errorf("Increment=%d, want 15663105", wf.Increment)
	}
}
