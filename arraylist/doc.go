/*
Package arraylist implements a mutable growable array list, i.e. a sequence
of elements backed by a single contiguous block of memory.

The list keeps its elements in a backing store with room for `capacity`
elements, of which the first `size` are present. Appending is amortized O(1):
whenever the store is full its capacity is doubled, so the total copy work
over N appends forms a geometric series bounded by O(N). Removal halves the
store once the list occupies only a quarter of it; shrinking at 25% load
(rather than 50%) keeps alternating push/pop sequences near a capacity
boundary from thrashing between grow and shrink, and bounds the load factor
to [25%, 100%] after any single removal.

Array lists are not safe for concurrent mutation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package arraylist

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mutable.arraylist'.
func tracer() tracing.Trace {
	return tracing.Select("mutable.arraylist")
}
