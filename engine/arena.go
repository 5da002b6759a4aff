package engine

import (
	"weak"

	"github.com/kamstrup/intmap"
)

const arenaBlockSize = 64

// arenaSlot holds one game object. Slots are reused after despawn; the
// generation stamped into the slot makes stale handles miss instead of
// aliasing the new occupant.
type arenaSlot struct {
	object     GameObject
	generation uint32
	live       bool
}

// arena is the scene's object storage: fixed-size blocks with a free-slot
// list. Addresses of live objects are stable until Compact moves them, so
// *GameObject pointers must not be held across frames; use Handle or
// ObjectRef for that.
// Generations are drawn from a single arena-wide counter rather than
// per-slot counters. Compact relocates objects between indexes, and a
// per-slot counter would let a moved object land on an index whose previous
// occupant was issued the same generation, turning a stale handle into an
// alias. With a shared counter every allocation gets a generation no handle
// has ever carried, at any index.
type arena struct {
	blocks    []*[arenaBlockSize]arenaSlot
	freeSlots []uint32
	nextIndex uint32
	nextGen   uint32
	count     int
	refs      *intmap.Map[Handle, weak.Pointer[ObjectRef]]
}

func newArena() *arena {
	return &arena{
		nextGen: 1,
		refs:    intmap.New[Handle, weak.Pointer[ObjectRef]](64),
	}
}

func (a *arena) slot(index uint32) *arenaSlot {
	blockIdx := int(index) / arenaBlockSize
	if blockIdx >= len(a.blocks) {
		return nil
	}
	return &a.blocks[blockIdx][int(index)%arenaBlockSize]
}

// alloc reserves a slot and returns its handle together with a pointer to
// the zeroed object value stored in it.
func (a *arena) alloc() (Handle, *GameObject) {
	var index uint32
	if n := len(a.freeSlots); n > 0 {
		index = a.freeSlots[n-1]
		a.freeSlots = a.freeSlots[:n-1]
	} else {
		index = a.nextIndex
		a.nextIndex++
		if int(index)/arenaBlockSize >= len(a.blocks) {
			a.blocks = append(a.blocks, &[arenaBlockSize]arenaSlot{})
		}
	}

	s := a.slot(index)
	s.generation = a.nextGen
	a.nextGen++
	if a.nextGen == 0 { // generation 0 is reserved for the invalid handle
		a.nextGen = 1
	}
	s.live = true
	s.object = GameObject{}
	a.count++
	return NewHandle(s.generation, index), &s.object
}

// get returns the object for the handle, or nil when the handle is stale or
// was never allocated.
func (a *arena) get(h Handle) *GameObject {
	if !h.Valid() {
		return nil
	}
	s := a.slot(h.Index())
	if s == nil || !s.live || s.generation != h.Generation() {
		return nil
	}
	return &s.object
}

// free releases the slot behind the handle. Any outstanding ObjectRef is
// invalidated. Reports whether the handle was live.
func (a *arena) free(h Handle) bool {
	if a.get(h) == nil {
		return false
	}

	if weakPtr, ok := a.refs.Get(h); ok {
		if ref := weakPtr.Value(); ref != nil {
			ref.Handle = 0
			ref.scene = nil
		}
		a.refs.Del(h)
	}

	s := a.slot(h.Index())
	s.object = GameObject{}
	s.live = false
	a.freeSlots = append(a.freeSlots, h.Index())
	a.count--
	return true
}

// ref returns a stable reference for the handle, reusing an existing live
// ObjectRef when one is still reachable.
func (a *arena) ref(h Handle, scene *Scene) *ObjectRef {
	if a.get(h) == nil {
		return nil
	}

	if weakPtr, ok := a.refs.Get(h); ok {
		if ref := weakPtr.Value(); ref != nil {
			return ref
		}
		// Weak pointer is dead, remove it
		a.refs.Del(h)
	}

	ref := &ObjectRef{Handle: h, scene: scene}
	a.refs.Put(h, weak.Make(ref))
	return ref
}

func (a *arena) len() int { return a.count }

// compact reorganizes storage to eliminate empty slots. Raw handles taken
// before the call are invalidated; ObjectRefs remain valid and are updated
// to the new handles. Returns the old-to-new handle mapping.
func (a *arena) compact() map[Handle]Handle {
	remap := make(map[Handle]Handle, a.count)

	totalBlocks := (a.count + arenaBlockSize - 1) / arenaBlockSize
	newBlocks := make([]*[arenaBlockSize]arenaSlot, totalBlocks)
	for i := range newBlocks {
		newBlocks[i] = &[arenaBlockSize]arenaSlot{}
	}

	updatedRefs := make(map[Handle]weak.Pointer[ObjectRef])
	writePos := uint32(0)
	for index := uint32(0); index < a.nextIndex; index++ {
		s := a.slot(index)
		if s == nil || !s.live {
			continue
		}

		oldHandle := NewHandle(s.generation, index)
		// The generation is unique arena-wide, so carrying it to the new
		// index cannot collide with any handle ever issued there.
		newHandle := NewHandle(s.generation, writePos)

		dst := &newBlocks[int(writePos)/arenaBlockSize][int(writePos)%arenaBlockSize]
		dst.object = s.object
		dst.object.handle = newHandle
		dst.generation = s.generation
		dst.live = true

		remap[oldHandle] = newHandle

		if weakPtr, ok := a.refs.Get(oldHandle); ok {
			if ref := weakPtr.Value(); ref != nil {
				ref.Handle = newHandle
				updatedRefs[newHandle] = weakPtr
			}
		}

		writePos++
	}

	a.blocks = newBlocks
	a.freeSlots = nil
	a.nextIndex = writePos

	a.refs.Clear()
	for h, weakPtr := range updatedRefs {
		a.refs.Put(h, weakPtr)
	}

	return remap
}
