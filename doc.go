/*
Package mutable offers a selection of mutable in-memory container types:
a growable array list and thin stack/queue adapters on top of it.

Mutable containers trade the structural sharing and concurrency-safety of
persistent data structures for in-place updates and a smaller memory
footprint. None of the containers in this module provide internal locking;
clients needing concurrent access have to synchronize externally.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package mutable
