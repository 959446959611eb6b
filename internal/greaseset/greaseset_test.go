package greaseset

import "testing"

func TestSliceMatchesValues(t *testing.T) {
	s := Slice()
	if len(s) != len(Values) {
		t.Fatalf("len(Slice())=%d, want %d", len(s), len(Values))
	}
	for i, v := range Values {
		if s[i] != v {
			t.Fatalf("Slice()[%d]=%#x, want %#x", i, s[i], v)
		}
	}
	s[0] = 0xffff
	if Values[0] == 0xffff {
		t.Fatalf("Slice() must return an independent copy")
	}
}

func TestIsGreaseCanonicalValues(t *testing.T) {
	for _, v := range Values {
		if !IsGrease(uint32(v)) {
			t.Errorf("IsGrease(%#x) = false, want true", v)
		}
	}
}

func TestIsGreaseRejectsNonGrease(t *testing.T) {
	nonGrease := []uint32{0x1301, 0x0000, 0x0a00, 0x00a0, 0x1a2a, 0x10000}
	for _, v := range nonGrease {
		if IsGrease(v) {
			t.Errorf("IsGrease(%#x) = true, want false", v)
		}
	}
}

func TestPickCyclesThroughCanonicalSet(t *testing.T) {
	for i := uint64(0); i < uint64(len(Values))*3; i++ {
		v := Pick(i)
		if !IsGrease(uint32(v)) {
			t.Errorf("Pick(%d)=%#x is not a GREASE value", i, v)
		}
	}
	if Pick(0) != Pick(uint64(len(Values))) {
		t.Errorf("Pick should cycle with period len(Values)")
	}
}
