package contend

import (
	"fmt"
	"slices"

	"github.com/llxisdsh/pb"
)

// Factory builds a fresh Scenario for one trial with the given per-worker
// iteration count. Trials mutate scenario state, so every trial gets a
// new instance.
type Factory func(iters int) Scenario

var registry pb.MapOf[string, Factory]

// Register makes a scenario factory available under name. Registering a
// name twice replaces the earlier factory. Safe for concurrent use.
func Register(name string, f Factory) {
	registry.Store(name, f)
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	f, ok := registry.Load(name)
	if !ok {
		return nil, fmt.Errorf("contend: unknown scenario %q", name)
	}
	return f, nil
}

// Names returns every registered scenario name, sorted.
func Names() []string {
	var names []string
	registry.Range(func(name string, _ Factory) bool {
		names = append(names, name)
		return true
	})
	slices.Sort(names)
	return names
}

func init() {
	Register("shared-mutex", func(iters int) Scenario { return NewSharedMutex(DefaultWorkers, iters) })
	Register("independent-mutex", func(iters int) Scenario { return NewIndependentMutex(DefaultWorkers, iters) })
	Register("atomic", func(iters int) Scenario { return NewAtomic(DefaultWorkers, iters) })
	Register("false-sharing", func(iters int) Scenario { return NewFalseSharing(iters) })
	Register("no-false-sharing", func(iters int) Scenario { return NewNoFalseSharing(iters) })
}
