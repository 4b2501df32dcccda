// Package ordkey allocates dense, totally-ordered keys for replicated
// ordered collections. Given any two keys a < b, Between returns a fresh
// key strictly between them without renumbering anything already issued,
// so independent writers can keep inserting elements between two
// neighbours and still agree on the final order.
//
// Representation:
// --------------
//
// A key (ID) is a non-empty sequence of Digit levels, most significant
// first. Each Digit holds 16 uint16 lanes of which only a leading prefix
// is significant; the prefix is tracked as a bitmap (low bits set) and
// the remaining lanes are scratch space, masked out of every comparison.
//
// Reading the significant lanes of all levels in order gives a fraction
// in base max+1. With max = 2:
//
//	[1]        = 0.1
//	[0 1]      = 0.01
//	[2][1]     = 0.2 0000 0000 0000 001  (second level after 16 lanes)
//
// Midpoints:
// ---------
//
// Between walks paired levels of both bounds. An exhausted lower bound
// pads with Digit 0, an exhausted upper bound with Digit max. Equal
// levels are copied; at the first differing pair the digit layer computes
// a lane-wise floor midpoint between the lower bound's zero-padded view
// and the upper bound's max-padded view, cut at the first lane that
// strictly exceeds the lower view. When no lane grows within the 16
// available (the bounds are numerically adjacent at full precision) the
// lower digit is kept as-is and the walk descends one more level, where
// the lower bound supplies real data and the upper bound supplies only
// its padding. Precision therefore grows by exactly one level per
// exhausted gap and is unbounded.
//
// Everything is an immutable value: no shared state, no locks, and
// identical inputs always produce identical output keys. Comparing the
// per-level significant lanes of two serialized keys recovers the same
// order on every site, provided all sites use the same max.
//
// Callers own tie-breaking between concurrent inserts at the same
// position (for example by author id), serialization and transport.
package ordkey
