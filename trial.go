package contend

import (
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// arriver is the rendezvous a trial lines its workers up on. Both barrier
// flavors implement it.
type arriver interface {
	ArriveAndWait()
}

type trialConfig struct {
	parked bool
}

// TrialOption adjusts how RunTrial coordinates a trial.
type TrialOption func(*trialConfig)

// WithParkedWait makes the trial rendezvous on a CyclicBarrier instead of
// a SpinBarrier. Parking re-introduces scheduler wake-up jitter into the
// measured window's start, so this is for runs whose numbers are thrown
// away: correctness tests, race-detector CI, constrained machines where
// burning a core per waiter is unacceptable.
func WithParkedWait() TrialOption {
	return func(c *trialConfig) { c.parked = true }
}

// RunTrial executes one measured repetition of s and returns the elapsed
// wall-clock time of the workers' active phase.
//
// It spawns s.Workers() goroutines, each pinned to its own OS thread, and
// sizes the barrier at workers+1 — the extra slot belongs to the calling
// goroutine. Every worker's first act is to arrive; the controller
// arrives last-or-with-them, stamps the start time on release, joins the
// workers, and stamps the end. Goroutine spawn and barrier setup happen
// before the start stamp and are excluded from the measurement.
//
// A worker error is fatal to the trial and returned as-is; there are no
// retries. A scenario that never reaches the barrier from every worker
// hangs the trial forever — no timeout, no detection.
func RunTrial(s Scenario, opts ...TrialOption) (time.Duration, error) {
	var cfg trialConfig
	for _, o := range opts {
		o(&cfg)
	}

	workers := s.Workers()
	if workers < 1 {
		return 0, fmt.Errorf("contend: scenario %q reports %d workers", s.Name(), workers)
	}

	var bar arriver
	if cfg.parked {
		bar = NewCyclicBarrier(workers + 1)
	} else {
		bar = NewSpinBarrier(workers + 1)
	}

	var g errgroup.Group
	for w := range workers {
		g.Go(func() error {
			// Pin the worker so the scenario exercises distinct OS
			// threads, not goroutines multiplexed onto one.
			runtime.LockOSThread()
			defer runtime.UnlockOSThread()
			bar.ArriveAndWait()
			return s.Run(w)
		})
	}

	bar.ArriveAndWait()
	start := time.Now()
	err := g.Wait()
	elapsed := time.Since(start)
	if err != nil {
		return 0, err
	}
	return elapsed, nil
}
