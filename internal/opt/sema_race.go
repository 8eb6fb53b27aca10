//go:build race

package opt

import (
	"sync"
)

// Race_ reports whether the binary was built with the race detector.
const Race_ = true

// Sema is a counting semaphore. The race build parks on a sync.Cond
// instead of linking the runtime semaphore directly, so the detector
// observes the happens-before edge between Release and Acquire.
type Sema struct {
	mu   sync.Mutex
	cond *sync.Cond
	n    uint32
}

func (s *Sema) Acquire() {
	s.mu.Lock()
	if s.cond == nil {
		s.cond = sync.NewCond(&s.mu)
	}
	for s.n == 0 {
		s.cond.Wait()
	}
	s.n--
	s.mu.Unlock()
}

func (s *Sema) Release() {
	s.mu.Lock()
	if s.cond == nil {
		s.cond = sync.NewCond(&s.mu)
	}
	s.n++
	s.cond.Signal()
	s.mu.Unlock()
}
