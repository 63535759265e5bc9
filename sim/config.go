package sim

import "fmt"

const (
	// MaxFrameCount is the largest cache capacity a run may configure.
	MaxFrameCount = 4096

	// MaxTraceLength bounds the number of accesses in a single trace.
	MaxTraceLength = 10_000_000
)

// RunConfig groups the parameters of one simulation run.
// One RunConfig describes exactly one (policy, capacity) replay; it is
// immutable for the duration of the run.
type RunConfig struct {
	Capacity      int   // number of cache frames (must be in [1, MaxFrameCount])
	MaxUniqueKeys int   // exclusive upper bound on key values; sizes the segmented policy's global table
	Seed          int64 // master seed for the run's PartitionedRNG
}

// Validate checks the configuration against the supported ranges.
// A non-nil error means the run must not start.
func (c RunConfig) Validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("capacity must be positive, got %d", c.Capacity)
	}
	if c.Capacity > MaxFrameCount {
		return fmt.Errorf("capacity %d exceeds maximum frame count %d", c.Capacity, MaxFrameCount)
	}
	if c.MaxUniqueKeys <= 0 {
		return fmt.Errorf("max unique keys must be positive, got %d", c.MaxUniqueKeys)
	}
	return nil
}
