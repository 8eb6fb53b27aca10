package contend

import (
	"testing"
	"unsafe"
)

func TestSharedPairIsPacked(t *testing.T) {
	var p SharedPair
	gap := unsafe.Offsetof(p.b) - unsafe.Offsetof(p.a)
	if gap != unsafe.Sizeof(p.a) {
		t.Errorf("counters are %d bytes apart, want adjacent (%d)", gap, unsafe.Sizeof(p.a))
	}
	if unsafe.Sizeof(p) > CacheLineSize {
		t.Errorf("SharedPair is %d bytes, wider than one cache line (%d)", unsafe.Sizeof(p), CacheLineSize)
	}
}

func TestPaddedPairSeparatesLines(t *testing.T) {
	var p PaddedPair
	if gap := unsafe.Offsetof(p.b) - unsafe.Offsetof(p.a); gap < CacheLineSize {
		t.Errorf("counters are %d bytes apart, want at least %d", gap, CacheLineSize)
	}
	if unsafe.Offsetof(p.a) < CacheLineSize {
		t.Errorf("first counter sits %d bytes in, want a full leading pad of %d", unsafe.Offsetof(p.a), CacheLineSize)
	}
	// Trailing pad: nothing after b within the struct shares b's line.
	if tail := unsafe.Sizeof(p) - unsafe.Offsetof(p.b); tail < CacheLineSize {
		t.Errorf("last counter has %d bytes of tail, want at least %d", tail, CacheLineSize)
	}
}

func TestPaddedCountSlotsSeparateLines(t *testing.T) {
	s := make([]paddedCount, 2)
	a := uintptr(unsafe.Pointer(&s[0].n))
	b := uintptr(unsafe.Pointer(&s[1].n))
	if gap := b - a; gap < CacheLineSize {
		t.Errorf("result slots are %d bytes apart, want at least %d", gap, CacheLineSize)
	}
}
