package contend

import (
	"fmt"
)

// pairScenario is the body both layout scenarios share: two workers, each
// incrementing its own plain uint32, no guard of any kind. Keeping the
// access pattern identical and varying only the layout isolates
// cache-coherence traffic as the sole independent variable.
type pairScenario struct {
	iters int
	pair  counterPair
}

func (s *pairScenario) Workers() int { return 2 }

func (s *pairScenario) Run(worker int) error {
	if worker != 0 && worker != 1 {
		return fmt.Errorf("contend: pair scenario got worker %d, want 0 or 1", worker)
	}
	c := s.pair.slot(worker)
	for range s.iters {
		*c++
	}
	return nil
}

// RacyByDesign documents intent; it does nothing.
func (s *pairScenario) RacyByDesign() {}

// FinalCount returns the counter worker owns. Call it only after the
// trial has joined the workers; the value is never above iters but
// carries no other guarantee.
func (s *pairScenario) FinalCount(worker int) uint32 {
	return *s.pair.slot(worker)
}

// FalseSharingScenario runs the pair body over a SharedPair: both
// counters on one cache line, so the two writers evict each other's line
// every few increments despite never touching the same word.
type FalseSharingScenario struct {
	pairScenario
}

// NewFalseSharing returns a two-worker scenario with iters increments per
// worker over the deliberately shared layout. Panics unless iters is
// positive.
func NewFalseSharing(iters int) *FalseSharingScenario {
	if iters < 1 {
		panic("contend: iters must be positive")
	}
	s := &FalseSharingScenario{}
	s.iters = iters
	s.pair = new(SharedPair)
	return s
}

func (s *FalseSharingScenario) Name() string { return "false-sharing" }

// NoFalseSharingScenario is the control: the identical body over a
// PaddedPair, each counter on its own cache line.
type NoFalseSharingScenario struct {
	pairScenario
}

// NewNoFalseSharing returns a two-worker scenario with iters increments
// per worker over the padded layout. Panics unless iters is positive.
func NewNoFalseSharing(iters int) *NoFalseSharingScenario {
	if iters < 1 {
		panic("contend: iters must be positive")
	}
	s := &NoFalseSharingScenario{}
	s.iters = iters
	s.pair = new(PaddedPair)
	return s
}

func (s *NoFalseSharingScenario) Name() string { return "no-false-sharing" }
