package sim

// Key identifies the resource being accessed. Keys are opaque to the frame
// store and the driver; policies compare them only for equality.
type Key int

const noKey Key = -1

// FrameStore is the fixed-capacity slot table shared by all policies.
// It owns residency: which key sits in which frame and how many frames are
// occupied. Policies reference frames only by index and keep their own
// metadata in parallel arrays.
//
// At most one frame holds a given key at any time. The store itself never
// evicts; policies overwrite frames through Place.
type FrameStore struct {
	keys     []Key
	resident []bool
	index    map[Key]int // key -> frame index, accelerated Find
	occupied int
}

// NewFrameStore creates a store with the given number of empty frames.
// Capacity must already be validated (>= 1).
func NewFrameStore(capacity int) *FrameStore {
	fs := &FrameStore{
		keys:     make([]Key, capacity),
		resident: make([]bool, capacity),
		index:    make(map[Key]int, capacity),
	}
	for i := range fs.keys {
		fs.keys[i] = noKey
	}
	return fs
}

// Find returns the frame index holding key, if resident. Read-only.
func (fs *FrameStore) Find(key Key) (int, bool) {
	i, ok := fs.index[key]
	return i, ok
}

// IsFull reports whether every frame is occupied.
func (fs *FrameStore) IsFull() bool {
	return fs.occupied == len(fs.keys)
}

// FreeFrame returns the lowest-index empty frame.
// The second result is false when the store is full.
func (fs *FrameStore) FreeFrame() (int, bool) {
	for i, r := range fs.resident {
		if !r {
			return i, true
		}
	}
	return -1, false
}

// Place installs key into frame i, overwriting any prior occupant.
// The occupancy count grows only when the frame was previously empty.
func (fs *FrameStore) Place(i int, key Key) {
	if fs.resident[i] {
		delete(fs.index, fs.keys[i])
	} else {
		fs.resident[i] = true
		fs.occupied++
	}
	fs.keys[i] = key
	fs.index[key] = i
}

// KeyAt returns the key resident in frame i, if any.
func (fs *FrameStore) KeyAt(i int) (Key, bool) {
	if !fs.resident[i] {
		return noKey, false
	}
	return fs.keys[i], true
}

// Occupied returns the number of occupied frames.
func (fs *FrameStore) Occupied() int {
	return fs.occupied
}

// Capacity returns the total number of frames.
func (fs *FrameStore) Capacity() int {
	return len(fs.keys)
}
