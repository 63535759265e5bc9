package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Replay feeds trace through an already-constructed policy and counts
// faults. The logical clock advances once per trace element. Each call owns
// its policy instance for exactly one run; Teardown always runs before
// returning a result.
func Replay(trace []Key, policy ReplacementPolicy, cfg RunConfig) (SimulationResult, error) {
	if len(trace) > MaxTraceLength {
		return SimulationResult{}, fmt.Errorf("trace length %d exceeds maximum %d", len(trace), MaxTraceLength)
	}
	if err := policy.Init(cfg); err != nil {
		return SimulationResult{}, fmt.Errorf("initializing policy: %w", err)
	}
	defer policy.Teardown()

	faults := 0
	clock := int64(0)
	for _, key := range trace {
		clock++
		if policy.Access(key, clock) == Fault {
			faults++
		}
	}

	res := SimulationResult{FaultCount: faults, TotalAccesses: len(trace)}
	logrus.Debugf("replay complete: capacity=%d %s", cfg.Capacity, res)
	return res, nil
}

// Run constructs the named policy from cfg and replays trace through it.
// This is the invocation contract the experiment sweep uses; the driver
// itself has no policy-specific code path.
func Run(trace []Key, policyName string, cfg RunConfig) (SimulationResult, error) {
	rng := NewPartitionedRNG(NewSimulationKey(cfg.Seed)).ForSubsystem(SubsystemPolicy)
	policy, err := NewPolicy(policyName, rng)
	if err != nil {
		return SimulationResult{}, err
	}
	return Replay(trace, policy, cfg)
}
