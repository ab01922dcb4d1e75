package arraylist

import "fmt"

// minCapacity is the floor for shrinking the backing store. Below it the
// shrink trigger degenerates: with capacity < 4, capacity/4 is 0 and the
// 25%-load check would never (or wrongly) fire.
const minCapacity = 4

// resize swaps the backing store for one of newCapacity, copying all size
// elements in order. The old store is dropped with the last reference to it.
func (l *List[T]) resize(newCapacity int) {
	assertThat(newCapacity >= l.size, "new capacity %d cannot hold %d elements", newCapacity, l.size)
	tracer().Debugf("resizing backing store %d -> %d, holding %d elements", len(l.data), newCapacity, l.size)
	store := make([]T, newCapacity)
	copy(store, l.data[:l.size])
	l.data = store
}

// shrinkIfSparse halves the backing store when the list occupies exactly a
// quarter of it, clamped at minCapacity. Callers invoke it before removing
// an element, so size is at least 1 here.
func (l *List[T]) shrinkIfSparse() {
	capacity := len(l.data)
	if l.size != capacity/4 {
		return
	}
	if capacity/2 < minCapacity {
		return
	}
	l.resize(capacity / 2)
}

// isElementIndex reports whether an element is present at index i.
func (l *List[T]) isElementIndex(i int) bool {
	return i >= 0 && i < l.size
}

// isPositionIndex reports whether i is a legal insertion position. Unlike
// isElementIndex it accepts i == size, the append position. The two
// predicates are distinct on purpose: mixing them up either rejects
// appending via Insert or lets Get read one past the last element.
func (l *List[T]) isPositionIndex(i int) bool {
	return i >= 0 && i <= l.size
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("arraylist: "+msg, msgargs...)
		panic(msg)
	}
}
