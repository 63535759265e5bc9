package sim

import (
	"fmt"
	"math/rand"
)

// AccessOutcome classifies a single access: the key was either resident
// (Hit) or had to be brought in (Fault). A fault is a valid outcome,
// never an error.
type AccessOutcome int

const (
	Hit AccessOutcome = iota
	Fault
)

func (o AccessOutcome) String() string {
	switch o {
	case Hit:
		return "hit"
	case Fault:
		return "fault"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// ReplacementPolicy is the shared contract every eviction policy implements.
// A policy instance serves exactly one run: Init once, Access once per trace
// element, Teardown once (idempotent) at the end.
//
// Access must follow the strict capacity-before-eviction order:
//  1. if key is resident, do on-hit bookkeeping and return Hit;
//  2. else if a frame is free, install there and return Fault;
//  3. else select a victim per the policy rule, replace it, and return Fault.
//
// clock is a strictly increasing logical time supplied by the driver, one
// increment per trace element.
type ReplacementPolicy interface {
	Init(cfg RunConfig) error
	Access(key Key, clock int64) AccessOutcome
	Teardown()
}

// Policy names accepted by NewPolicy.
const (
	PolicyFIFO      = "fifo"
	PolicyRandom    = "random"
	PolicyLRU       = "lru"
	PolicyClock     = "clock"
	PolicyLFU       = "lfu"
	PolicySegmented = "segmented-lfu"
)

// ValidPolicies is the set of recognized replacement policy names.
// Shared by config validation and NewPolicy to avoid duplication.
var ValidPolicies = map[string]bool{
	PolicyFIFO:      true,
	PolicyRandom:    true,
	PolicyLRU:       true,
	PolicyClock:     true,
	PolicyLFU:       true,
	PolicySegmented: true,
}

// PolicyNames returns the valid policy names in canonical evaluation order.
func PolicyNames() []string {
	return []string{PolicyFIFO, PolicyRandom, PolicyLRU, PolicyClock, PolicyLFU, PolicySegmented}
}

// NewPolicy creates a replacement policy by name. The rng is consumed only
// by policies with internal randomness; deterministic policies ignore it.
// Unknown names are a configuration error.
func NewPolicy(name string, rng *rand.Rand) (ReplacementPolicy, error) {
	switch name {
	case PolicyFIFO:
		return &FIFOPolicy{}, nil
	case PolicyRandom:
		return &RandomPolicy{rng: rng}, nil
	case PolicyLRU:
		return &LRUPolicy{}, nil
	case PolicyClock:
		return &ClockPolicy{}, nil
	case PolicyLFU:
		return &LFUPolicy{}, nil
	case PolicySegmented:
		return &SegmentedLFUPolicy{}, nil
	default:
		return nil, fmt.Errorf("unknown replacement policy %q", name)
	}
}
