// Package integer converts between arbitrary precision non-negative integers
// and their digit sequences in a given base.
//
// Digit sequences are most significant digit first:
//
//  base 2:  [1 0 1 0] = 10
//  base 3:  [1 0 1]   = 10
//
// Zero is always encoded as a single zero digit rather than an empty
// sequence. Decoding an empty sequence yields zero.
//
// Bases are limited to 2 through 256 so that every digit fits in a byte.
package integer
