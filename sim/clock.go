package sim

// ClockPolicy implements second-chance replacement. A circular hand sweeps
// the frame table; frames referenced since the last sweep get their use bit
// cleared and are passed over once, and the first zero-bit frame becomes the
// victim. The sweep order itself resolves ties.
type ClockPolicy struct {
	frames *FrameStore
	useBit []bool
	hand   int
}

func (p *ClockPolicy) Init(cfg RunConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	p.frames = NewFrameStore(cfg.Capacity)
	p.useBit = make([]bool, cfg.Capacity)
	p.hand = 0
	return nil
}

func (p *ClockPolicy) Access(key Key, clock int64) AccessOutcome {
	if i, ok := p.frames.Find(key); ok {
		p.useBit[i] = true
		return Hit
	}
	if i, ok := p.frames.FreeFrame(); ok {
		p.frames.Place(i, key)
		p.useBit[i] = true
		return Fault
	}
	// All bits set means one full revolution clears them and the sweep
	// terminates at the starting frame, so this loop is bounded.
	for p.useBit[p.hand] {
		p.useBit[p.hand] = false
		p.hand = (p.hand + 1) % p.frames.Capacity()
	}
	victim := p.hand
	p.frames.Place(victim, key)
	p.useBit[victim] = true
	p.hand = (p.hand + 1) % p.frames.Capacity()
	return Fault
}

func (p *ClockPolicy) Teardown() {
	p.frames = nil
	p.useBit = nil
}
