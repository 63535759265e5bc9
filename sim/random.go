package sim

import "math/rand"

// RandomPolicy evicts a uniformly random resident frame. It keeps no
// per-frame metadata; hits are free.
//
// The victim stream comes from the run's partitioned RNG, so runs with the
// same seed reproduce the same evictions even though the policy itself is
// exempt from the determinism guarantee.
type RandomPolicy struct {
	frames *FrameStore
	rng    *rand.Rand
}

func (p *RandomPolicy) Init(cfg RunConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if p.rng == nil {
		p.rng = NewPartitionedRNG(NewSimulationKey(cfg.Seed)).ForSubsystem(SubsystemPolicy)
	}
	p.frames = NewFrameStore(cfg.Capacity)
	return nil
}

func (p *RandomPolicy) Access(key Key, clock int64) AccessOutcome {
	if _, ok := p.frames.Find(key); ok {
		return Hit
	}
	if i, ok := p.frames.FreeFrame(); ok {
		p.frames.Place(i, key)
		return Fault
	}
	// Store is full, so every frame is resident and a fair draw over all
	// frame indices is a fair draw over resident frames.
	victim := p.rng.Intn(p.frames.Capacity())
	p.frames.Place(victim, key)
	return Fault
}

func (p *RandomPolicy) Teardown() {
	p.frames = nil
}
