package engine

// Handle identifies a game object slot inside a scene's arena.
// It encodes the slot generation (upper 32 bits) and the slot index (lower 32 bits).
type Handle uint64

// NewHandle creates a Handle from a slot generation and index.
func NewHandle(generation uint32, index uint32) Handle {
	return Handle(uint64(generation)<<32 | uint64(index))
}

// Generation extracts the slot generation from the handle.
func (h Handle) Generation() uint32 {
	return uint32(h >> 32)
}

// Index extracts the arena slot index from the handle.
func (h Handle) Index() uint32 {
	return uint32(h & 0xFFFFFFFF)
}

// Valid reports whether the handle could refer to a live object.
// Generations start at 1, so the zero Handle is never valid.
func (h Handle) Valid() bool {
	return h.Generation() != 0
}
