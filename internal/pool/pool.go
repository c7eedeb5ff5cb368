package pool

// Slot is implemented by pointers to pool entries. Live reports whether the
// entry's kind tag is anything other than absent.
type Slot interface {
	Live() bool
}

// Identified slots carry a UID.
type Identified interface {
	Slot
	ID() UID
}

// FirstFree returns the index of the first absent slot, scanning in index
// order. A full pool reports false; callers drop the spawn.
func FirstFree[T any, P interface {
	*T
	Slot
}](slots []T) (int, bool) {
	for i := range slots {
		if !P(&slots[i]).Live() {
			return i, true
		}
	}
	return -1, false
}

// Lookup resolves uid against slots. It reports false when the index is out
// of range, the slot is absent, or the slot has been reused since uid was
// handed out.
func Lookup[T any, P interface {
	*T
	Identified
}](slots []T, uid UID) (P, bool) {
	if uid == Null || uid == Ship {
		return nil, false
	}
	i := uid.Index()
	if i >= len(slots) {
		return nil, false
	}
	p := P(&slots[i])
	if !p.Live() || p.ID() != uid {
		return nil, false
	}
	return p, true
}

// Count returns the number of live slots.
func Count[T any, P interface {
	*T
	Slot
}](slots []T) int {
	n := 0
	for i := range slots {
		if P(&slots[i]).Live() {
			n++
		}
	}
	return n
}
