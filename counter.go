package contend

import (
	"unsafe"

	"github.com/contendio/contend/internal/opt"
)

// CacheLineSize is the separation granularity used by the padded counter
// layout. The default comes from golang.org/x/sys/cpu for the target
// architecture; override it with one of the contend_cachelinesize_{32,64,
// 128,256} build tags when benchmarking hardware the table gets wrong.
const CacheLineSize = opt.CacheLineSize_

// linePad rounds a uint32 up to the next cache-line boundary.
type linePad = [(CacheLineSize - unsafe.Sizeof(uint32(0))%CacheLineSize) % CacheLineSize]byte

// RaceEnabled reports whether the binary was built with the race
// detector. The sharing scenarios mutate memory without synchronization
// on purpose; skip them (and any timing run — instrumented timings are
// meaningless) when this is true.
const RaceEnabled = opt.Race_

// counterPair is two uint32 counters, one per worker of a sharing
// scenario. The two layout implementations are the independent variable
// of the false-sharing experiment; everything else about the access
// pattern stays identical.
type counterPair interface {
	// slot returns the counter owned by worker i (0 or 1).
	slot(i int) *uint32
}

// SharedPair packs its two counters into adjacent words, so on almost
// any allocation they land on one cache line. Two cores incrementing
// their own words still ping-pong the line's ownership between their
// caches; that coherence traffic is the entire cost being measured.
//
// Each word is written by exactly one worker, unsynchronized. Read the
// counters only after the writers have been joined.
type SharedPair struct {
	a uint32
	b uint32
}

func (p *SharedPair) slot(i int) *uint32 {
	if i == 0 {
		return &p.a
	}
	return &p.b
}

// PaddedPair is the layout control: the same two counters with each one
// alone on its own cache line. The leading pad keeps the first counter
// off whatever line the preceding allocation ends on, and each counter
// carries a trailing pad out to the next line boundary, so no two
// writers — in this struct or a neighboring allocation — share a line.
type PaddedPair struct {
	_ [CacheLineSize]byte
	a uint32
	_ linePad
	b uint32
	_ linePad
}

func (p *PaddedPair) slot(i int) *uint32 {
	if i == 0 {
		return &p.a
	}
	return &p.b
}
