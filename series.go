package contend

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Series runs trials measured repetitions of fresh scenarios built by f
// and returns every duration in seconds, in run order. Execution is
// strictly sequential: each trial's workers are joined before the next
// trial's are spawned, so repetitions never contend with each other.
func Series(f Factory, iters, trials int, opts ...TrialOption) ([]float64, error) {
	if trials < 1 {
		return nil, fmt.Errorf("contend: trials must be positive, got %d", trials)
	}
	samples := make([]float64, 0, trials)
	for range trials {
		d, err := RunTrial(f(iters), opts...)
		if err != nil {
			return nil, err
		}
		samples = append(samples, d.Seconds())
	}
	return samples, nil
}

// Summary digests a Series into its headline numbers, all in seconds.
// Median is the figure to compare between scenarios; a handful of trials
// on a busy machine makes the mean untrustworthy.
type Summary struct {
	Trials int
	Min    float64
	Median float64
	Mean   float64
	Max    float64
	StdDev float64
}

// Summarize computes a Summary over seconds samples, as produced by
// Series. It fails on an empty slice.
func Summarize(samples []float64) (Summary, error) {
	if len(samples) == 0 {
		return Summary{}, fmt.Errorf("contend: no samples to summarize")
	}
	s := Summary{Trials: len(samples)}
	var err error
	if s.Min, err = stats.Min(samples); err != nil {
		return Summary{}, err
	}
	if s.Median, err = stats.Median(samples); err != nil {
		return Summary{}, err
	}
	if s.Mean, err = stats.Mean(samples); err != nil {
		return Summary{}, err
	}
	if s.Max, err = stats.Max(samples); err != nil {
		return Summary{}, err
	}
	if s.StdDev, err = stats.StandardDeviation(samples); err != nil {
		return Summary{}, err
	}
	return s, nil
}
