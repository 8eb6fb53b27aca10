package contend

import (
	"time"
	_ "unsafe" // for linkname
)

// noCopy may be added to structs which must not be copied
// after the first use.
//
// See https://golang.org/issues/8005#issuecomment-190753527
// for details.
//
// Note that it must not be embedded, due to the Lock and Unlock methods.
type noCopy struct{}

// Lock is a no-op used by -copylocks checker from `go vet`.
func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// spinHint burns a short burst of pause instructions without yielding the
// OS thread. Polling loops that must keep wake-up latency bounded by the
// pipeline (not the scheduler) call this between loads.
func spinHint() {
	runtime_doSpin()
}

// backoff spins while the runtime still considers spinning profitable,
// then sleeps. Only for CAS retry paths where wake-up jitter is harmless.
// The 500µs duration is derived from Facebook/folly's Sleeper.
func backoff(spins *int) {
	if runtime_canSpin(*spins) {
		*spins++
		runtime_doSpin()
		return
	}
	*spins = 0
	time.Sleep(500 * time.Microsecond)
}

// nolint:all
//
//go:linkname runtime_canSpin sync.runtime_canSpin
func runtime_canSpin(i int) bool

// nolint:all
//
//go:linkname runtime_doSpin sync.runtime_doSpin
func runtime_doSpin()
