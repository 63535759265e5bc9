package sim

import "testing"

func TestClockPolicy_FullSweep_EvictsFirstFrame(t *testing.T) {
	// GIVEN capacity 3 filled with 1,2,3 (all use bits set)
	p := &ClockPolicy{}
	if err := p.Init(testConfig(3)); err != nil {
		t.Fatalf("Init: %v", err)
	}

	// WHEN 4 faults in
	outcomes := replay(t, p, []Key{1, 2, 3, 4})

	// THEN the hand clears every bit in one revolution and evicts frame 0
	if got := countFaults(outcomes); got != 4 {
		t.Errorf("faults = %d, want 4", got)
	}
	if _, ok := p.frames.Find(Key(1)); ok {
		t.Errorf("key 1 still resident, want evicted")
	}
	assertResident(t, p.frames, 4, 2, 3)
	if p.hand != 1 {
		t.Errorf("hand = %d, want 1 (one past the victim)", p.hand)
	}
}

func TestClockPolicy_ClearedBitFrame_EvictedWithoutSweep(t *testing.T) {
	p := &ClockPolicy{}
	if err := p.Init(testConfig(3)); err != nil {
		t.Fatalf("Init: %v", err)
	}

	// After [1,2,3,4] the bits are [set,clear,clear] with the hand at 1,
	// so 5 evicts frame 1 (key 2) immediately; 3 then still hits.
	outcomes := replay(t, p, []Key{1, 2, 3, 4, 5, 3})

	if got := countFaults(outcomes); got != 5 {
		t.Errorf("faults = %d, want 5", got)
	}
	assertResident(t, p.frames, 4, 5, 3)
}

func TestClockPolicy_HitGrantsSecondChance(t *testing.T) {
	// GIVEN 2's use bit re-set by a hit while the hand points at it
	p := &ClockPolicy{}
	if err := p.Init(testConfig(3)); err != nil {
		t.Fatalf("Init: %v", err)
	}

	outcomes := replay(t, p, []Key{1, 2, 3, 4, 2, 5})

	// THEN the sweep passes over 2 once and evicts 3 instead
	if got := countFaults(outcomes); got != 5 {
		t.Errorf("faults = %d, want 5", got)
	}
	if _, ok := p.frames.Find(Key(3)); ok {
		t.Errorf("key 3 still resident, want evicted")
	}
	assertResident(t, p.frames, 4, 2, 5)
}

func TestClockPolicy_InstallSetsUseBit(t *testing.T) {
	p := &ClockPolicy{}
	if err := p.Init(testConfig(2)); err != nil {
		t.Fatalf("Init: %v", err)
	}

	replay(t, p, []Key{1, 2})

	for i := 0; i < 2; i++ {
		if !p.useBit[i] {
			t.Errorf("useBit[%d] = false after install, want true", i)
		}
	}
}
