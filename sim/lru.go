package sim

// LRUPolicy evicts the frame with the smallest logical-time stamp.
// Every hit restamps the frame with the current clock; ties (possible only
// before the first access, since the clock is strictly increasing) resolve
// to the lowest frame index.
type LRUPolicy struct {
	frames   *FrameStore
	lastUsed []int64 // logical time of the most recent access, per frame
}

func (p *LRUPolicy) Init(cfg RunConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	p.frames = NewFrameStore(cfg.Capacity)
	p.lastUsed = make([]int64, cfg.Capacity)
	return nil
}

func (p *LRUPolicy) Access(key Key, clock int64) AccessOutcome {
	if i, ok := p.frames.Find(key); ok {
		p.lastUsed[i] = clock
		return Hit
	}
	if i, ok := p.frames.FreeFrame(); ok {
		p.frames.Place(i, key)
		p.lastUsed[i] = clock
		return Fault
	}
	victim := 0
	for i := 1; i < len(p.lastUsed); i++ {
		// Strict < keeps the lowest index on equal stamps.
		if p.lastUsed[i] < p.lastUsed[victim] {
			victim = i
		}
	}
	p.frames.Place(victim, key)
	p.lastUsed[victim] = clock
	return Fault
}

func (p *LRUPolicy) Teardown() {
	p.frames = nil
	p.lastUsed = nil
}
