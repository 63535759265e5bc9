package sim

import (
	"fmt"
	"strconv"
)

// SimulationResult is the outcome of replaying one trace through one policy
// at one capacity. Immutable after creation.
type SimulationResult struct {
	FaultCount    int
	TotalAccesses int
}

// FaultRate returns FaultCount / TotalAccesses, or 0 for an empty trace.
func (r SimulationResult) FaultRate() float64 {
	if r.TotalAccesses == 0 {
		return 0
	}
	return float64(r.FaultCount) / float64(r.TotalAccesses)
}

func (r SimulationResult) String() string {
	return fmt.Sprintf("faults=%d/%d (rate=%.4f)", r.FaultCount, r.TotalAccesses, r.FaultRate())
}

// ResultRecord is the reporting tuple for one run of an experiment sweep.
// Downstream tabulation and plotting consume these rows; nothing feeds back
// into the engine.
type ResultRecord struct {
	Workload      string
	Policy        string
	Capacity      int
	TotalAccesses int
	FaultCount    int
	FaultRate     float64
}

// NewResultRecord builds the reporting row for a finished run.
func NewResultRecord(workload, policy string, capacity int, res SimulationResult) ResultRecord {
	return ResultRecord{
		Workload:      workload,
		Policy:        policy,
		Capacity:      capacity,
		TotalAccesses: res.TotalAccesses,
		FaultCount:    res.FaultCount,
		FaultRate:     res.FaultRate(),
	}
}

// ResultColumns is the CSV header for persisted result records.
var ResultColumns = []string{
	"WorkloadType", "Algorithm", "CacheSize", "TotalAccesses", "PageFaults", "FaultRate",
}

// Row renders the record as one CSV row matching ResultColumns.
func (r ResultRecord) Row() []string {
	return []string{
		r.Workload,
		r.Policy,
		strconv.Itoa(r.Capacity),
		strconv.Itoa(r.TotalAccesses),
		strconv.Itoa(r.FaultCount),
		strconv.FormatFloat(r.FaultRate, 'f', 6, 64),
	}
}
