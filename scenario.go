package contend

// Scenario is one unit of contended work. A trial runs the same body on
// every worker simultaneously; what varies between scenarios — guard
// mechanism, memory layout — is the independent variable under test.
//
// Scenarios hold per-run counter state, so construct a fresh instance
// for every trial (Factory exists for exactly that).
type Scenario interface {
	// Name is the key the scenario is registered under.
	Name() string

	// Workers is the number of OS-pinned goroutines the trial spawns.
	Workers() int

	// Run executes worker's share of the work. The trial calls it after
	// the start rendezvous; worker ranges over [0, Workers()). A non-nil
	// error aborts the trial.
	Run(worker int) error
}

// Racy marks scenarios whose memory is written without synchronization
// on purpose: lost cache-line ownership is the effect being measured,
// and the final counter values carry no correctness guarantee beyond
// never exceeding the iteration count. Run race-detection tooling
// against the other scenarios, not these.
type Racy interface {
	// RacyByDesign documents intent; it does nothing.
	RacyByDesign()
}

// IsRacy reports whether s tolerates (and expects) unsynchronized access.
func IsRacy(s Scenario) bool {
	_, ok := s.(Racy)
	return ok
}

const (
	// DefaultWorkers is the worker-thread count used by the registered
	// factories. Two writers are enough to create coherence traffic, and
	// keeping the count below any plausible core count means the spin
	// barrier and the workers all get their own core.
	DefaultWorkers = 2

	// DefaultIterations is the per-worker increment count used when the
	// caller doesn't choose one. Large enough that the measured window
	// dwarfs the barrier's release skew.
	DefaultIterations = 1_000_000
)
