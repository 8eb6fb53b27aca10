package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/contendio/contend"
	"github.com/spf13/cobra"
)

var (
	runTrials int
	runIters  int
	runParked bool
)

var rootCmd = &cobra.Command{
	Use:   "contend",
	Short: "Contended-memory microbenchmarks for one CPU/compiler pair",
	Long: `contend measures what concurrent memory access really costs on the
machine it runs on: a shared mutex versus per-thread mutexes versus an
atomic counter, and two counters sharing a cache line versus padded
apart. Numbers are per-machine diagnostics, not portable facts.`,
	SilenceUsage: true,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered scenarios",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range contend.Names() {
			fmt.Println(name)
		}
	},
}

var runCmd = &cobra.Command{
	Use:   "run [scenario...]",
	Short: "Run scenarios and print a timing summary",
	Long: `Run the named scenarios (all of them when none are given), each for
--trials measured repetitions, and print per-scenario summaries. Medians
are the column to compare.`,
	RunE: runScenarios,
}

func runScenarios(cmd *cobra.Command, args []string) error {
	names := args
	if len(names) == 0 {
		names = contend.Names()
	}

	var opts []contend.TrialOption
	if runParked {
		slog.Warn("parked rendezvous adds scheduler jitter to the start of every measurement")
		opts = append(opts, contend.WithParkedWait())
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "scenario\ttrials\tmin\tmedian\tmean\tmax\tstddev")

	for _, name := range names {
		f, err := contend.Lookup(name)
		if err != nil {
			return err
		}
		if contend.RaceEnabled && contend.IsRacy(f(1)) {
			slog.Warn("skipping racy-by-design scenario under the race detector", "scenario", name)
			continue
		}

		slog.Info("running", "scenario", name, "trials", runTrials, "iters", runIters)
		samples, err := contend.Series(f, runIters, runTrials, opts...)
		if err != nil {
			return fmt.Errorf("scenario %s: %w", name, err)
		}
		sum, err := contend.Summarize(samples)
		if err != nil {
			return fmt.Errorf("scenario %s: %w", name, err)
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
			name, sum.Trials, ms(sum.Min), ms(sum.Median), ms(sum.Mean), ms(sum.Max), ms(sum.StdDev))
	}
	return w.Flush()
}

// ms formats a seconds value as milliseconds with 3 decimal places.
func ms(sec float64) string {
	return fmt.Sprintf("%.3fms", sec*1e3)
}

func init() {
	runCmd.Flags().IntVar(&runTrials, "trials", 11, "measured repetitions per scenario")
	runCmd.Flags().IntVar(&runIters, "iters", contend.DefaultIterations, "increments per worker per trial")
	runCmd.Flags().BoolVar(&runParked, "parked", false, "rendezvous on the parking barrier (correctness runs only)")
	rootCmd.AddCommand(runCmd, listCmd)
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
