package contend

import (
	"sync"
)

// SharedMutexScenario has every worker fight over a single mutex guarding
// a single counter: lock, increment, unlock, iters times per worker. The
// final count is exact — workers × iters — or the mutex is broken.
type SharedMutexScenario struct {
	workers int
	iters   int
	mu      sync.Mutex
	count   uint32
}

// NewSharedMutex returns a scenario with workers goroutines performing
// iters guarded increments each. Panics unless both are positive.
func NewSharedMutex(workers, iters int) *SharedMutexScenario {
	if workers < 1 || iters < 1 {
		panic("contend: workers and iters must be positive")
	}
	return &SharedMutexScenario{workers: workers, iters: iters}
}

func (s *SharedMutexScenario) Name() string { return "shared-mutex" }

func (s *SharedMutexScenario) Workers() int { return s.workers }

func (s *SharedMutexScenario) Run(int) error {
	for range s.iters {
		s.mu.Lock()
		s.count++
		s.mu.Unlock()
	}
	return nil
}

// Count returns the shared counter. Call it only after the trial has
// joined the workers.
func (s *SharedMutexScenario) Count() uint32 {
	return s.count
}

// IndependentMutexScenario gives every worker a private mutex and a
// private counter, so the mechanical lock/unlock cost is paid without any
// cross-thread contention ever occurring.
//
// This is deliberately not a fair comparison with SharedMutexScenario:
// an uncontended mutex stays on its fast path and never parks, so the
// difference between the two is contention plus fast-path cost, not
// contention alone. It bounds the non-contention cost of locking; read
// it as a near-baseline, nothing more.
type IndependentMutexScenario struct {
	workers int
	iters   int

	// final holds each worker's counter after its loop ends, one slot
	// per cache line so publishing results doesn't itself false-share.
	final []paddedCount
}

type paddedCount struct {
	n uint32
	_ linePad
}

// NewIndependentMutex returns a scenario with workers goroutines each
// performing iters increments under their own lock. Panics unless both
// are positive.
func NewIndependentMutex(workers, iters int) *IndependentMutexScenario {
	if workers < 1 || iters < 1 {
		panic("contend: workers and iters must be positive")
	}
	return &IndependentMutexScenario{
		workers: workers,
		iters:   iters,
		final:   make([]paddedCount, workers),
	}
}

func (s *IndependentMutexScenario) Name() string { return "independent-mutex" }

func (s *IndependentMutexScenario) Workers() int { return s.workers }

func (s *IndependentMutexScenario) Run(worker int) error {
	var mu sync.Mutex
	var count uint32
	for range s.iters {
		mu.Lock()
		count++
		mu.Unlock()
	}
	s.final[worker].n = count
	return nil
}

// FinalCount returns the private counter worker ended with. Call it only
// after the trial has joined the workers.
func (s *IndependentMutexScenario) FinalCount(worker int) uint32 {
	return s.final[worker].n
}
