//go:build !race

package opt

import (
	_ "unsafe" // for linkname
)

// Race_ reports whether the binary was built with the race detector.
const Race_ = false

// Sema is a zero-allocation counting semaphore. In !race builds it wraps
// the runtime semaphore directly, so parking and waking go through the
// same path sync.Mutex uses, with no allocation per waiter.
type Sema uint32

func (s *Sema) Acquire() {
	runtime_semacquire((*uint32)(s))
}

func (s *Sema) Release() {
	runtime_semrelease((*uint32)(s), false, 0)
}

//go:linkname runtime_semacquire sync.runtime_Semacquire
func runtime_semacquire(s *uint32)

//go:linkname runtime_semrelease sync.runtime_Semrelease
func runtime_semrelease(s *uint32, handoff bool, skipframes int)
