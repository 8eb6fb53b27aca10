package contend

import (
	"testing"
	"time"
)

// RunBenchmark adapts a scenario to the standard benchmark framework with
// manual timing: each framework iteration runs one trial on a fresh
// scenario, and the reported ns/op is overridden with the trial's own
// measured window. Letting the framework time the whole call would fold
// goroutine spawn and barrier setup into the figure, which is exactly
// what the trial protocol exists to exclude.
func RunBenchmark(b *testing.B, f Factory, iters int, opts ...TrialOption) {
	b.Helper()
	var total time.Duration
	for b.Loop() {
		d, err := RunTrial(f(iters), opts...)
		if err != nil {
			b.Fatal(err)
		}
		total += d
	}
	b.ReportMetric(float64(total.Nanoseconds())/float64(b.N), "ns/op")
}
