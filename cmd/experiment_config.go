package cmd

import (
	sim "github.com/cachesim/cachesim/sim"
	"github.com/cachesim/cachesim/sim/experiment"
	"github.com/cachesim/cachesim/sim/workload"
)

// DefaultPlan returns the built-in sweep: every workload type and every
// policy over a capacity ladder, sized so the full cross product finishes
// in seconds. Flag values override individual fields.
func DefaultPlan() *experiment.Plan {
	return &experiment.Plan{
		Seed:          42,
		TraceLength:   100_000,
		MaxUniqueKeys: 1024,
		Workloads:     workload.TypeNames(),
		Policies:      sim.PolicyNames(),
		Capacities:    []int{8, 16, 32, 64, 128, 256},
		Workers:       0, // NumCPU
		Output:        "results.csv",
	}
}
