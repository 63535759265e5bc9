package workload

import "fmt"

// Built-in scenario presets for common access patterns.
// Each returns a valid WorkloadSpec ready for use with GenerateTrace.

// ScenarioUniform spreads accesses uniformly over the key space.
func ScenarioUniform(seed int64, length, maxUniqueKeys int) *WorkloadSpec {
	return &WorkloadSpec{Type: TypeUniform, Seed: seed, Length: length, MaxUniqueKeys: maxUniqueKeys}
}

// ScenarioHotCold concentrates 90% of accesses on the hottest 10% of keys.
func ScenarioHotCold(seed int64, length, maxUniqueKeys int) *WorkloadSpec {
	return &WorkloadSpec{
		Type: TypeHotCold, Seed: seed, Length: length, MaxUniqueKeys: maxUniqueKeys,
		HotFraction: 0.1, HotProbability: 0.9,
	}
}

// ScenarioLooping sweeps the whole key space cyclically, the adversarial
// pattern for LRU when the loop exceeds the cache.
func ScenarioLooping(seed int64, length, maxUniqueKeys int) *WorkloadSpec {
	return &WorkloadSpec{
		Type: TypeLooping, Seed: seed, Length: length, MaxUniqueKeys: maxUniqueKeys,
		LoopLength: maxUniqueKeys,
	}
}

// ScenarioZipf draws rank-skewed accesses (s=1.2).
func ScenarioZipf(seed int64, length, maxUniqueKeys int) *WorkloadSpec {
	return &WorkloadSpec{
		Type: TypeZipf, Seed: seed, Length: length, MaxUniqueKeys: maxUniqueKeys,
		ZipfS: 1.2, ZipfV: 1.0,
	}
}

// ScenarioByName returns the preset spec for a workload type name.
// Unknown names are a configuration error.
func ScenarioByName(name string, seed int64, length, maxUniqueKeys int) (*WorkloadSpec, error) {
	switch name {
	case TypeUniform:
		return ScenarioUniform(seed, length, maxUniqueKeys), nil
	case TypeHotCold:
		return ScenarioHotCold(seed, length, maxUniqueKeys), nil
	case TypeLooping:
		return ScenarioLooping(seed, length, maxUniqueKeys), nil
	case TypeZipf:
		return ScenarioZipf(seed, length, maxUniqueKeys), nil
	default:
		return nil, fmt.Errorf("unknown workload type %q", name)
	}
}
