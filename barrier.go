package contend

import (
	"sync/atomic"
)

// SpinBarrier is a single-use rendezvous point for a fixed party of
// goroutines: nobody returns from ArriveAndWait until the whole party
// has called it.
//
// Waiting is a pure busy-wait. Parking a thread and waking it again puts
// scheduler latency of unpredictable size between "last arrival" and
// "release", which is exactly the jitter a timing harness cannot afford;
// spinning bounds the skew between released participants to the polling
// granularity, at the price of burning CPU on the waiting cores. Where
// that price is wrong (correctness runs, race-detector CI), use
// CyclicBarrier instead.
//
// A SpinBarrier supports exactly one rendezvous cycle. There is no reset:
// construct a fresh one per measured trial. The spin loop relies on the
// runtime's asynchronous preemption, so waiters cannot starve the last
// arrival of a P even when parties exceeds GOMAXPROCS.
type SpinBarrier struct {
	_       noCopy
	arrived atomic.Int32
	parties int32
}

// NewSpinBarrier returns a barrier that releases once parties goroutines
// have arrived. It panics if parties < 1.
func NewSpinBarrier(parties int) *SpinBarrier {
	if parties < 1 {
		panic("contend: parties must be positive")
	}
	return &SpinBarrier{parties: int32(parties)}
}

// ArriveAndWait records the caller's arrival, then spins until the whole
// party has arrived. Each participant must call it exactly once.
//
// If fewer than parties goroutines ever arrive, the callers spin forever;
// there is no timeout. Arriving twice, or from more goroutines than
// parties, leaves the barrier in an undefined state. Both are caller
// contract violations and are not detected at runtime.
func (b *SpinBarrier) ArriveAndWait() {
	b.arrived.Add(1)
	for b.arrived.Load() < b.parties {
		spinHint()
	}
}
