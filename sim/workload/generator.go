package workload

import (
	"fmt"
	"math/rand"

	"github.com/cachesim/cachesim/sim"
)

// GenerateTrace creates a key-access trace from a WorkloadSpec.
// Deterministic given the same spec and seed. Every key is in
// [0, spec.MaxUniqueKeys).
func GenerateTrace(spec *WorkloadSpec) ([]sim.Key, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workload spec: %w", err)
	}

	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(spec.Seed)).ForSubsystem(sim.SubsystemWorkload)

	trace := make([]sim.Key, spec.Length)
	switch spec.Type {
	case TypeUniform:
		for i := range trace {
			trace[i] = sim.Key(rng.Intn(spec.MaxUniqueKeys))
		}
	case TypeHotCold:
		fillHotCold(trace, spec, rng)
	case TypeLooping:
		loop := spec.LoopLength
		if loop == 0 {
			loop = spec.MaxUniqueKeys
		}
		for i := range trace {
			trace[i] = sim.Key(i % loop)
		}
	case TypeZipf:
		// rand.Zipf draws from [0, imax] with P(k) proportional to
		// (v+k)^-s, giving the rank-skewed popularity curve.
		zipf := rand.NewZipf(rng, spec.ZipfS, spec.ZipfV, uint64(spec.MaxUniqueKeys-1))
		for i := range trace {
			trace[i] = sim.Key(zipf.Uint64())
		}
	}
	return trace, nil
}

// fillHotCold draws each access from the hot key prefix with probability
// HotProbability, otherwise from the cold remainder. The hot set is the
// lowest-numbered keys so resident-set assertions in tests stay simple.
func fillHotCold(trace []sim.Key, spec *WorkloadSpec, rng *rand.Rand) {
	hotKeys := int(spec.HotFraction * float64(spec.MaxUniqueKeys))
	if hotKeys < 1 {
		hotKeys = 1
	}
	coldKeys := spec.MaxUniqueKeys - hotKeys
	for i := range trace {
		if coldKeys == 0 || rng.Float64() < spec.HotProbability {
			trace[i] = sim.Key(rng.Intn(hotKeys))
		} else {
			trace[i] = sim.Key(hotKeys + rng.Intn(coldKeys))
		}
	}
}
