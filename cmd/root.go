package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/cachesim/cachesim/sim"
	"github.com/cachesim/cachesim/sim/experiment"
	"github.com/cachesim/cachesim/sim/workload"
)

var (
	// Shared CLI flags
	seed          int64  // Seed for workload generation and the random policy
	logLevel      string // Log verbosity level
	traceLength   int    // Number of accesses per generated trace
	maxUniqueKeys int    // Exclusive upper bound on generated key values

	// `run` flags
	workloadType string // Workload type for a single run
	policyName   string // Replacement policy for a single run
	capacity     int    // Cache capacity (frames) for a single run

	// `sweep` flags
	workloads  []string // Workload types to sweep
	policies   []string // Replacement policies to sweep
	capacities []int    // Cache capacities to sweep
	workers    int      // Worker pool size (0 = NumCPU)
	planPath   string   // Optional YAML experiment plan (overrides sweep flags)
	output     string   // CSV output path
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "cachesim",
	Short: "Trace-driven simulator for cache replacement policies",
}

// setupLogging parses and installs the logrus level from the --log flag.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// runCmd replays one workload through one policy at one capacity.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a single replacement simulation",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		spec, err := workload.ScenarioByName(workloadType, seed, traceLength, maxUniqueKeys)
		if err != nil {
			logrus.Fatalf("Invalid workload: %v", err)
		}
		trace, err := workload.GenerateTrace(spec)
		if err != nil {
			logrus.Fatalf("Generating trace: %v", err)
		}

		cfg := sim.RunConfig{Capacity: capacity, MaxUniqueKeys: maxUniqueKeys, Seed: seed}
		startTime := time.Now()
		res, err := sim.Run(trace, policyName, cfg)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}

		logrus.Infof("workload=%s policy=%s capacity=%d %s (%.2fms)",
			workloadType, policyName, capacity, res, float64(time.Since(startTime).Microseconds())/1000.0)
	},
}

// sweepCmd runs the full {workload x policy x capacity} cross product and
// writes the fault statistics as CSV.
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run a full experiment sweep and write results as CSV",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		var plan *experiment.Plan
		if planPath != "" {
			loaded, err := experiment.LoadPlan(planPath)
			if err != nil {
				logrus.Fatalf("Loading experiment plan: %v", err)
			}
			plan = loaded
		} else {
			plan = DefaultPlan()
			plan.Seed = seed
			plan.TraceLength = traceLength
			plan.MaxUniqueKeys = maxUniqueKeys
			plan.Workloads = workloads
			plan.Policies = policies
			plan.Capacities = capacities
			plan.Workers = workers
			plan.Output = output
		}
		if plan.Output == "" {
			// Plan files may omit output; fall back to the flag default.
			plan.Output = output
		}

		startTime := time.Now()
		records, err := experiment.Run(plan)
		if err != nil {
			// Partial failures still produce records; persist what succeeded.
			logrus.Errorf("Sweep finished with failed runs: %v", err)
		}
		if len(records) == 0 {
			logrus.Fatalf("Sweep produced no results")
		}
		if err := experiment.WriteCSV(plan.Output, records); err != nil {
			logrus.Fatalf("Writing results: %v", err)
		}
		logrus.Infof("Sweep complete: %d runs in %v", len(records), time.Since(startTime).Round(time.Millisecond))
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	def := DefaultPlan()

	for _, cmd := range []*cobra.Command{runCmd, sweepCmd} {
		cmd.Flags().Int64Var(&seed, "seed", def.Seed, "Seed for workload generation and the random policy")
		cmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
		cmd.Flags().IntVar(&traceLength, "trace-length", def.TraceLength, "Number of accesses per generated trace")
		cmd.Flags().IntVar(&maxUniqueKeys, "max-unique-keys", def.MaxUniqueKeys, "Exclusive upper bound on key values")
	}

	runCmd.Flags().StringVar(&workloadType, "workload", workload.TypeUniform, "Workload type (uniform, hot-cold, looping, zipf)")
	runCmd.Flags().StringVar(&policyName, "policy", sim.PolicyLRU, "Replacement policy (fifo, random, lru, clock, lfu, segmented-lfu)")
	runCmd.Flags().IntVar(&capacity, "capacity", 64, "Cache capacity in frames")

	sweepCmd.Flags().StringSliceVar(&workloads, "workloads", def.Workloads, "Comma-separated workload types to sweep")
	sweepCmd.Flags().StringSliceVar(&policies, "policies", def.Policies, "Comma-separated replacement policies to sweep")
	sweepCmd.Flags().IntSliceVar(&capacities, "capacities", def.Capacities, "Comma-separated cache capacities to sweep")
	sweepCmd.Flags().IntVar(&workers, "workers", def.Workers, "Worker pool size (0 = number of CPUs)")
	sweepCmd.Flags().StringVar(&planPath, "plan", "", "YAML experiment plan (overrides sweep flags)")
	sweepCmd.Flags().StringVar(&output, "output", def.Output, "CSV output path")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(sweepCmd)
}
