package contend

import (
	"sync/atomic"

	"github.com/contendio/contend/internal/opt"
)

// CyclicBarrier is the parking counterpart of SpinBarrier: a rendezvous
// point for a fixed party of goroutines in which waiters sleep on a
// semaphore instead of spinning. It is reusable; after the last arrival
// trips the barrier, the next cycle begins automatically.
//
// The wake-up goes through the scheduler, so release skew is orders of
// magnitude noisier than SpinBarrier's. Use it where the numbers don't
// matter: lock-step test choreography and trials run only for their side
// effects (see WithParkedWait).
//
// Size: 24 bytes (8 byte state + parties + 2 semaphores).
type CyclicBarrier struct {
	_ noCopy
	// state 64-bit:
	//   High 32: generation
	//   Low 32: current arrival count
	state   atomic.Uint64
	parties uint32

	// sema is double-buffered to prevent signal stealing between
	// generations: generation N parks on sema[N%2], so a fast goroutine
	// re-arriving for generation N+1 cannot consume a wake-up meant for
	// a straggler of generation N.
	sema [2]opt.Sema
}

// NewCyclicBarrier returns a reusable barrier for the given party size.
// It panics if parties < 1.
func NewCyclicBarrier(parties int) *CyclicBarrier {
	if parties < 1 {
		panic("contend: parties must be positive")
	}
	return &CyclicBarrier{parties: uint32(parties)}
}

// ArriveAndWait blocks until parties goroutines of the current generation
// have arrived. The last arrival advances the generation, wakes the
// sleepers, and returns without blocking.
func (b *CyclicBarrier) ArriveAndWait() {
	if b.parties == 1 {
		return
	}
	var spins int
	for {
		s := b.state.Load()
		gen := s >> 32
		count := uint32(s)

		if count == b.parties-1 {
			// Last to arrive: reset the count, bump the generation,
			// wake everyone parked on this generation's semaphore.
			if b.state.CompareAndSwap(s, (gen+1)<<32) {
				sema := &b.sema[gen%2]
				for range count {
					sema.Release()
				}
				return
			}
		} else if b.state.CompareAndSwap(s, s+1) {
			b.sema[gen%2].Acquire()
			return
		}
		backoff(&spins)
	}
}
