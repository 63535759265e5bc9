// Package experiment runs {workload x policy x capacity} sweeps over the
// simulation driver and persists the resulting fault statistics.
package experiment

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/cachesim/cachesim/sim"
	"github.com/cachesim/cachesim/sim/workload"
)

// Plan describes one experiment sweep: every listed workload is generated
// once, then replayed through every listed policy at every listed capacity.
// Loadable from YAML via LoadPlan(path).
type Plan struct {
	Seed          int64    `yaml:"seed"`
	TraceLength   int      `yaml:"trace_length"`
	MaxUniqueKeys int      `yaml:"max_unique_keys"`
	Workloads     []string `yaml:"workloads"`
	Policies      []string `yaml:"policies"`
	Capacities    []int    `yaml:"capacities"`
	Workers       int      `yaml:"workers,omitempty"` // 0 = runtime.NumCPU()
	Output        string   `yaml:"output,omitempty"`  // CSV path for the sweep subcommand
}

// LoadPlan reads and parses a YAML experiment plan file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading experiment plan: %w", err)
	}
	var plan Plan
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&plan); err != nil {
		return nil, fmt.Errorf("parsing experiment plan: %w", err)
	}
	return &plan, nil
}

// Validate checks every name and range in the plan before any run starts.
func (p *Plan) Validate() error {
	if p.TraceLength <= 0 {
		return fmt.Errorf("trace_length must be positive, got %d", p.TraceLength)
	}
	if p.MaxUniqueKeys <= 0 {
		return fmt.Errorf("max_unique_keys must be positive, got %d", p.MaxUniqueKeys)
	}
	if len(p.Workloads) == 0 || len(p.Policies) == 0 || len(p.Capacities) == 0 {
		return fmt.Errorf("workloads, policies, and capacities must each be non-empty")
	}
	for _, name := range p.Policies {
		if !sim.ValidPolicies[name] {
			return fmt.Errorf("unknown replacement policy %q", name)
		}
	}
	for _, c := range p.Capacities {
		cfg := sim.RunConfig{Capacity: c, MaxUniqueKeys: p.MaxUniqueKeys, Seed: p.Seed}
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	for _, name := range p.Workloads {
		if _, err := workload.ScenarioByName(name, p.Seed, p.TraceLength, p.MaxUniqueKeys); err != nil {
			return err
		}
	}
	if p.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", p.Workers)
	}
	return nil
}

// job is one (workload, policy, capacity) run within a sweep.
type job struct {
	idx      int
	workload string
	policy   string
	capacity int
	trace    []sim.Key
}

// Run executes the full sweep and returns one ResultRecord per successful
// run, in deterministic plan order. Runs for distinct triples share no
// mutable state: each gets its own policy instance, RNG stream, and fault
// counter. A failed run aborts only itself; its error is logged, collected,
// and joined into the returned error without disturbing sibling records.
func Run(plan *Plan) ([]sim.ResultRecord, error) {
	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("invalid experiment plan: %w", err)
	}

	// Generate each workload trace once, shared read-only across runs.
	traces := make(map[string][]sim.Key, len(plan.Workloads))
	for _, name := range plan.Workloads {
		spec, err := workload.ScenarioByName(name, plan.Seed, plan.TraceLength, plan.MaxUniqueKeys)
		if err != nil {
			return nil, err
		}
		trace, err := workload.GenerateTrace(spec)
		if err != nil {
			return nil, fmt.Errorf("generating %s trace: %w", name, err)
		}
		traces[name] = trace
	}

	var jobs []job
	for _, w := range plan.Workloads {
		for _, pol := range plan.Policies {
			for _, c := range plan.Capacities {
				jobs = append(jobs, job{idx: len(jobs), workload: w, policy: pol, capacity: c, trace: traces[w]})
			}
		}
	}

	workers := plan.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}
	logrus.Infof("sweep: %d runs (%d workloads x %d policies x %d capacities) on %d workers",
		len(jobs), len(plan.Workloads), len(plan.Policies), len(plan.Capacities), workers)

	// Results and errors are indexed by job, so workers never share a slot.
	records := make([]sim.ResultRecord, len(jobs))
	runErrs := make([]error, len(jobs))

	jobCh := make(chan job)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobCh {
				records[j.idx], runErrs[j.idx] = runOne(plan, j)
			}
		}()
	}
	for _, j := range jobs {
		jobCh <- j
	}
	close(jobCh)
	wg.Wait()

	out := make([]sim.ResultRecord, 0, len(jobs))
	var failures []error
	for i := range jobs {
		if runErrs[i] != nil {
			logrus.Errorf("run %s/%s/cap=%d failed: %v", jobs[i].workload, jobs[i].policy, jobs[i].capacity, runErrs[i])
			failures = append(failures, runErrs[i])
			continue
		}
		out = append(out, records[i])
	}
	return out, errors.Join(failures...)
}

// runOne executes a single run with run-scoped RNG isolation.
func runOne(plan *Plan, j job) (sim.ResultRecord, error) {
	cfg := sim.RunConfig{Capacity: j.capacity, MaxUniqueKeys: plan.MaxUniqueKeys, Seed: plan.Seed}
	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(plan.Seed)).ForSubsystem(sim.SubsystemRun(j.idx))
	policy, err := sim.NewPolicy(j.policy, rng)
	if err != nil {
		return sim.ResultRecord{}, err
	}
	res, err := sim.Replay(j.trace, policy, cfg)
	if err != nil {
		return sim.ResultRecord{}, err
	}
	return sim.NewResultRecord(j.workload, j.policy, j.capacity, res), nil
}
