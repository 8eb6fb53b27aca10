package contend

import (
	"sync/atomic"
)

// AtomicScenario has every worker hammer one shared atomic counter: the
// same memory layout and access pattern as SharedMutexScenario, with the
// lock swapped for a lock-free RMW instruction. The final count is exact.
type AtomicScenario struct {
	workers int
	iters   int
	count   atomic.Uint32
}

// NewAtomic returns a scenario with workers goroutines performing iters
// atomic increments each. Panics unless both are positive.
func NewAtomic(workers, iters int) *AtomicScenario {
	if workers < 1 || iters < 1 {
		panic("contend: workers and iters must be positive")
	}
	return &AtomicScenario{workers: workers, iters: iters}
}

func (s *AtomicScenario) Name() string { return "atomic" }

func (s *AtomicScenario) Workers() int { return s.workers }

func (s *AtomicScenario) Run(int) error {
	for range s.iters {
		s.count.Add(1)
	}
	return nil
}

// Count returns the shared counter. Call it only after the trial has
// joined the workers.
func (s *AtomicScenario) Count() uint32 {
	return s.count.Load()
}
