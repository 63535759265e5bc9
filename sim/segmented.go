package sim

import "github.com/sirupsen/logrus"

// SegmentedLFUPolicy is a W-TinyLFU-shaped policy with two fixed regions:
// probation (the first ceil(0.20*capacity) frames, at least one) and
// protected (the rest). On a fault it evicts the minimum-(frequency, then
// oldest access time) frame inside probation, falling back to the protected
// region under the same rule only when probation holds no resident frame.
//
// Deliberate simplifications, kept as specified behavior: there is no
// promotion from probation to protected on repeated hits, and no admission
// filter comparing the incoming key's global frequency against the victim's.
// The global table is therefore maintained but never consulted by victim
// selection. See DESIGN.md.
type SegmentedLFUPolicy struct {
	frames     *FrameStore
	freq       []int   // per-frame access count since install
	lastAccess []int64 // per-frame logical time of the latest access
	global     []uint64
	probation  int // frames [0, probation) form the probation region
}

func (p *SegmentedLFUPolicy) Init(cfg RunConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	p.frames = NewFrameStore(cfg.Capacity)
	p.freq = make([]int, cfg.Capacity)
	p.lastAccess = make([]int64, cfg.Capacity)
	p.global = make([]uint64, cfg.MaxUniqueKeys)
	p.probation = (cfg.Capacity + 4) / 5 // ceil(0.20 * capacity), >= 1
	return nil
}

func (p *SegmentedLFUPolicy) Access(key Key, clock int64) AccessOutcome {
	if i, ok := p.frames.Find(key); ok {
		p.freq[i]++
		p.lastAccess[i] = clock
		p.bumpGlobal(key)
		return Hit
	}
	if i, ok := p.frames.FreeFrame(); ok {
		p.install(i, key, clock)
		return Fault
	}
	victim, ok := p.selectVictim(0, p.probation)
	if !ok {
		victim, _ = p.selectVictim(p.probation, p.frames.Capacity())
	}
	p.install(victim, key, clock)
	return Fault
}

// selectVictim scans frames [lo, hi) for the resident frame with minimum
// frequency, breaking ties toward the oldest access time.
func (p *SegmentedLFUPolicy) selectVictim(lo, hi int) (int, bool) {
	victim := -1
	for i := lo; i < hi; i++ {
		if _, resident := p.frames.KeyAt(i); !resident {
			continue
		}
		if victim < 0 ||
			p.freq[i] < p.freq[victim] ||
			(p.freq[i] == p.freq[victim] && p.lastAccess[i] < p.lastAccess[victim]) {
			victim = i
		}
	}
	return victim, victim >= 0
}

func (p *SegmentedLFUPolicy) install(i int, key Key, clock int64) {
	p.frames.Place(i, key)
	p.freq[i] = 1
	p.lastAccess[i] = clock
	p.bumpGlobal(key)
}

// bumpGlobal updates the per-key frequency estimate. Keys outside the
// configured range skip this bookkeeping step only; hit/fault
// classification is unaffected.
func (p *SegmentedLFUPolicy) bumpGlobal(key Key) {
	if key < 0 || int(key) >= len(p.global) {
		logrus.Debugf("segmented-lfu: key %d outside global table range %d, skipping frequency update", key, len(p.global))
		return
	}
	p.global[key]++
}

func (p *SegmentedLFUPolicy) Teardown() {
	p.frames = nil
	p.freq = nil
	p.lastAccess = nil
	p.global = nil
}
