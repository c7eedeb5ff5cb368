// Package pool holds the generation-stamped slot identifiers and the
// fixed-array slot helpers shared by every entity pool in the world.
package pool

import "fmt"

// UID is a revocable reference to a pool slot: the low IndexBits hold the
// slot index, the rest a generation counter bumped on every assignment.
type UID uint64

const (
	IndexBits = 16
	// MaxSlots is the largest pool a UID can address.
	MaxSlots = 1 << IndexBits

	indexMask UID = MaxSlots - 1
	step      UID = 1 << IndexBits
)

const (
	// Null is never assigned to a slot.
	Null UID = 0
	// Ship stands for the player ship, which has no slot. Its generation is
	// zero, which Assign never produces.
	Ship UID = indexMask
)

// Index returns the slot index encoded in u.
func (u UID) Index() int { return int(u & indexMask) }

// Generation returns the assignment counter encoded in u.
func (u UID) Generation() uint64 { return uint64(u >> IndexBits) }

func (u UID) String() string {
	switch u {
	case Null:
		return "uid(null)"
	case Ship:
		return "uid(ship)"
	}
	return fmt.Sprintf("uid(%d#%d)", u.Index(), u.Generation())
}

// Assign stamps a fresh uid for the slot at index into *uid. The new value
// differs from every value previously assigned through the same pointer.
func Assign(index int, uid *UID) {
	if index < 0 || index >= MaxSlots {
		panic(fmt.Sprintf("pool: slot index %d out of range", index))
	}
	u := ((*uid + step) &^ indexMask) | UID(index)
	if u.Generation() == 0 {
		// Counter wrapped; generation 0 is reserved for Null and Ship.
		u = ((u + step) &^ indexMask) | UID(index)
	}
	*uid = u
}
