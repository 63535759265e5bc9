package sim

// FIFOPolicy evicts the frame whose key was admitted earliest.
// Hits do not refresh a key's position in the admission order.
type FIFOPolicy struct {
	frames *FrameStore
	order  []int // frame indices, earliest admitted first
}

func (p *FIFOPolicy) Init(cfg RunConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	p.frames = NewFrameStore(cfg.Capacity)
	p.order = make([]int, 0, cfg.Capacity)
	return nil
}

func (p *FIFOPolicy) Access(key Key, clock int64) AccessOutcome {
	if _, ok := p.frames.Find(key); ok {
		return Hit
	}
	if i, ok := p.frames.FreeFrame(); ok {
		p.frames.Place(i, key)
		p.order = append(p.order, i)
		return Fault
	}
	victim := p.order[0]
	p.order = p.order[1:]
	p.frames.Place(victim, key)
	p.order = append(p.order, victim)
	return Fault
}

func (p *FIFOPolicy) Teardown() {
	p.frames = nil
	p.order = nil
}
