// Package ring provides a circular doubly linked list of bounded digits.
//
// A Ring holds digits in [0, base) where the base is fixed when the ring is
// created. Read as a whole, most significant digit first, the digits are a
// non-negative integer:
//
//  r := ring.Parse("10")   // base 2: 1 0 1 0
//  r.String()              // "1010"
//  r.ChangeScale()         // base 3: 1 0 1
//
// Structure
//
// Nodes are kept in an arena and linked by index. The head node is position
// 0 and the node before it is the tail, so appending is constant time. The
// head is not fixed: ShiftLeft and ShiftRight rotate the ring by moving it.
//
//  head
//   |
//   v
//  [1] <-> [0] <-> [1] <-> [0]
//   ^                       ^
//   +-----------------------+
//
// Iteration
//
// Iterator and ListIterator are fail fast. Any change made to the ring
// other than through the iterator itself invalidates it and every later
// positional call returns a ConcurrentModification error.
//
// Decimal Text
//
// Parse and Load never fail on bad input; they produce an empty ring and log
// the reason at debug level. An empty ring reads back as "0".
package ring
