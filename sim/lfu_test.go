package sim

import "testing"

func TestLFUPolicy_EvictsMinimumFrequency(t *testing.T) {
	// GIVEN trace [1,2,3,1,2,4] with capacity 3:
	// frequencies after five accesses are 1:2, 2:2, 3:1
	p := &LFUPolicy{}
	if err := p.Init(testConfig(3)); err != nil {
		t.Fatalf("Init: %v", err)
	}

	outcomes := replay(t, p, []Key{1, 2, 3, 1, 2, 4})

	// THEN admitting 4 evicts 3, the minimum-frequency frame
	if got := countFaults(outcomes); got != 4 {
		t.Errorf("faults = %d, want 4", got)
	}
	if _, ok := p.frames.Find(Key(3)); ok {
		t.Errorf("key 3 still resident, want evicted")
	}
	assertResident(t, p.frames, 1, 2, 4)
}

func TestLFUPolicy_TieBreak_OldestLoadTime(t *testing.T) {
	// GIVEN all frames at frequency 1, admitted at clocks 1,2,3
	p := &LFUPolicy{}
	if err := p.Init(testConfig(3)); err != nil {
		t.Fatalf("Init: %v", err)
	}

	replay(t, p, []Key{1, 2, 3, 4})

	// THEN the oldest load (key 1) is the victim
	if _, ok := p.frames.Find(Key(1)); ok {
		t.Errorf("key 1 still resident, want evicted as oldest of the minimum-frequency frames")
	}
	assertResident(t, p.frames, 4, 2, 3)
}

func TestLFUPolicy_EvictedFrameFrequencyResets(t *testing.T) {
	p := &LFUPolicy{}
	if err := p.Init(testConfig(2)); err != nil {
		t.Fatalf("Init: %v", err)
	}

	// 1 reaches frequency 3, then 2 and 3 churn through the other frame.
	replay(t, p, []Key{1, 1, 1, 2, 3})

	i, ok := p.frames.Find(Key(3))
	if !ok {
		t.Fatalf("key 3 not resident")
	}
	if p.freq[i] != 1 {
		t.Errorf("freq of freshly installed frame = %d, want 1", p.freq[i])
	}
	if _, ok := p.frames.Find(Key(1)); !ok {
		t.Errorf("key 1 evicted, want the high-frequency frame kept")
	}
}
