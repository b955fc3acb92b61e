// Package rope implements an immutable rope for text storage, measured
// in unicode scalar values.
//
// The rope is a B+ tree whose leaves hold bounded string chunks and whose
// nodes carry aggregated summaries (bytes, scalars, newlines), giving
// O(log n) scalar-offset addressing, line/offset conversion, and
// localized insert/remove. All mutating operations are persistent: they
// return a new Rope and leave the receiver untouched, so snapshots are
// free and read access never needs locking.
package rope
