// Package arith is the arithmetic core of an arbitrary-precision
// unsigned-integer library. Numbers are stored as little-endian
// slices of 64-bit words; this package provides the primitive
// algorithms a signed big-integer façade is built on: add/sub/shift,
// a three-tier multiplication dispatcher (schoolbook, Karatsuba,
// three-prime NTT/CRT), Knuth Algorithm D division, and radix
// conversion.
//
// The package owns no state across calls: every operation takes
// caller-provided buffers and any scratch space is released before
// the call returns. Sign handling and allocation policy belong to the
// façade, not here; numeral.go carries only a thin ASCII decimal/hex
// string codec.
package arith
