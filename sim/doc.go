// Package sim provides the core cache-replacement simulation engine.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - frames.go: the fixed-capacity frame table every policy mutates
//   - policy.go: the ReplacementPolicy contract and the policy registry
//   - driver.go: the replay loop that turns a trace into fault counts
//
// # Architecture
//
// The sim package holds the engine; collaborators live in sub-packages:
//   - sim/workload/: synthetic trace generation (uniform, hot-cold, looping, zipf)
//   - sim/experiment/: the {workload x policy x capacity} sweep and CSV reporting
//
// Each replacement policy is its own state machine over a FrameStore it owns
// for the duration of one run. Policies are selected by name through
// NewPolicy; the driver depends only on the ReplacementPolicy interface and
// has no policy-specific code path.
package sim
