package sim

// LFUPolicy evicts the frame with the minimum access frequency. Frequencies
// start at 1 on install and grow by 1 per hit; among minimum-frequency
// frames the oldest load time loses. Load time is stamped at install only,
// so the tie-break is admission order within a frequency class.
type LFUPolicy struct {
	frames   *FrameStore
	freq     []int
	loadTime []int64
}

func (p *LFUPolicy) Init(cfg RunConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	p.frames = NewFrameStore(cfg.Capacity)
	p.freq = make([]int, cfg.Capacity)
	p.loadTime = make([]int64, cfg.Capacity)
	return nil
}

func (p *LFUPolicy) Access(key Key, clock int64) AccessOutcome {
	if i, ok := p.frames.Find(key); ok {
		p.freq[i]++
		return Hit
	}
	if i, ok := p.frames.FreeFrame(); ok {
		p.install(i, key, clock)
		return Fault
	}
	victim := 0
	for i := 1; i < len(p.freq); i++ {
		if p.freq[i] < p.freq[victim] ||
			(p.freq[i] == p.freq[victim] && p.loadTime[i] < p.loadTime[victim]) {
			victim = i
		}
	}
	p.install(victim, key, clock)
	return Fault
}

func (p *LFUPolicy) install(i int, key Key, clock int64) {
	p.frames.Place(i, key)
	p.freq[i] = 1
	p.loadTime[i] = clock
}

func (p *LFUPolicy) Teardown() {
	p.frames = nil
	p.freq = nil
	p.loadTime = nil
}
