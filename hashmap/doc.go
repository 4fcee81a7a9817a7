// Package hashmap implements a separately-chained hash table that maps a
// generic key to an integer value plus an auxiliary integer slot.
//
// The table is the common map substrate for every graph algorithm in
// gravl: traversals and shortest-path runs allocate a fresh Map keyed by
// vertex id and repurpose Value/Aux as depth, distance, finish position
// or predecessor.
//
// Keys of any comparable type hash through a caller-supplied
// KeyConverter that renders the canonical string form; the string is
// hashed with djb2 and reduced modulo the table capacity. This
// indirection lets one hash function serve arbitrary key domains
// without parametrizing the hash itself.
//
// Resizing uses table doubling with hysteresis: the bucket array doubles
// when the population reaches capacity and halves when the population
// drops to one quarter of capacity, never below the initial capacity
// of 8. The asymmetric thresholds prevent oscillation when inserts and
// deletes alternate at a boundary.
//
// Complexity:
//
//   - Insert/Search/Delete: O(1) expected, amortized across resizes;
//     O(chain length) worst case.
//   - DeleteEntry: O(1) via the doubly-linked bucket chains.
//
// The Map is not safe for concurrent use.
package hashmap
