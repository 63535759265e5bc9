// Package workload synthesizes key-access traces for the replacement
// simulator. Specs are loaded from YAML or built from scenario presets;
// generation is deterministic given the spec's seed.
package workload

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cachesim/cachesim/sim"
)

// Workload type names.
const (
	TypeUniform = "uniform"
	TypeHotCold = "hot-cold"
	TypeLooping = "looping"
	TypeZipf    = "zipf"
)

// validWorkloadTypes is the set of recognized workload type names.
var validWorkloadTypes = map[string]bool{
	TypeUniform: true, TypeHotCold: true, TypeLooping: true, TypeZipf: true,
}

// TypeNames returns the valid workload types in canonical order.
func TypeNames() []string {
	return []string{TypeUniform, TypeHotCold, TypeLooping, TypeZipf}
}

// WorkloadSpec describes one synthetic trace.
// Loaded from YAML via LoadWorkloadSpec(path) or built by a scenario preset.
type WorkloadSpec struct {
	Type          string `yaml:"type"`
	Seed          int64  `yaml:"seed"`
	Length        int    `yaml:"length"`
	MaxUniqueKeys int    `yaml:"max_unique_keys"`

	// hot-cold parameters
	HotFraction    float64 `yaml:"hot_fraction,omitempty"`    // fraction of the key space that is hot
	HotProbability float64 `yaml:"hot_probability,omitempty"` // probability an access targets the hot set

	// looping parameters
	LoopLength int `yaml:"loop_length,omitempty"` // cycle length; 0 defaults to max_unique_keys

	// zipf parameters
	ZipfS float64 `yaml:"zipf_s,omitempty"` // skew exponent (> 1)
	ZipfV float64 `yaml:"zipf_v,omitempty"` // offset (>= 1)
}

// LoadWorkloadSpec reads and parses a YAML workload specification file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadWorkloadSpec(path string) (*WorkloadSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload spec: %w", err)
	}
	var spec WorkloadSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing workload spec: %w", err)
	}
	return &spec, nil
}

// Validate checks that all fields in the spec are valid.
func (s *WorkloadSpec) Validate() error {
	if !validWorkloadTypes[s.Type] {
		return fmt.Errorf("unknown workload type %q; valid: uniform, hot-cold, looping, zipf", s.Type)
	}
	if s.Length <= 0 {
		return fmt.Errorf("length must be positive, got %d", s.Length)
	}
	if s.Length > sim.MaxTraceLength {
		return fmt.Errorf("length %d exceeds maximum trace length %d", s.Length, sim.MaxTraceLength)
	}
	if s.MaxUniqueKeys <= 0 {
		return fmt.Errorf("max_unique_keys must be positive, got %d", s.MaxUniqueKeys)
	}
	switch s.Type {
	case TypeHotCold:
		if s.HotFraction <= 0 || s.HotFraction >= 1 {
			return fmt.Errorf("hot_fraction must be in (0, 1), got %f", s.HotFraction)
		}
		if s.HotProbability <= 0 || s.HotProbability >= 1 {
			return fmt.Errorf("hot_probability must be in (0, 1), got %f", s.HotProbability)
		}
	case TypeLooping:
		if s.LoopLength < 0 {
			return fmt.Errorf("loop_length must be non-negative, got %d", s.LoopLength)
		}
		if s.LoopLength > s.MaxUniqueKeys {
			return fmt.Errorf("loop_length %d exceeds max_unique_keys %d", s.LoopLength, s.MaxUniqueKeys)
		}
	case TypeZipf:
		if s.ZipfS <= 1 {
			return fmt.Errorf("zipf_s must be > 1, got %f", s.ZipfS)
		}
		if s.ZipfV < 1 {
			return fmt.Errorf("zipf_v must be >= 1, got %f", s.ZipfV)
		}
	}
	return nil
}
