package arith

// This file implements L1 multi-word add, subtract and compare over
// little-endian word slices, in the style of math/big's unexported
// arith primitives (addVV, subVV, addVW, ...), generalized to the
// buffer-oriented contract the core exposes: callers own every
// buffer, nothing is allocated here.

// AddVV adds x and y (same length) into z, returning the carry out.
// z may alias x or y.
func AddVV(z, x, y []Word) (carry Word) {
	n := len(x)
	if len(y) != n || len(z) != n {
		panic("arith: AddVV length mismatch")
	}
	for i := 0; i < n; i++ {
		z[i], carry = AddWithCarry(x[i], y[i], carry)
	}
	return carry
}

// AddVW adds y (a single word) to x into z, returning the carry out.
func AddVW(z, x []Word, y Word) (carry Word) {
	n := len(x)
	if len(z) != n {
		panic("arith: AddVW length mismatch")
	}
	if n == 0 {
		return y
	}
	z[0], carry = AddWithCarry(x[0], y, 0)
	for i := 1; i < n; i++ {
		z[i], carry = AddWithCarry(x[i], 0, carry)
	}
	return carry
}

// SubVV subtracts y from x (same length) into z, returning the borrow out.
func SubVV(z, x, y []Word) (borrow Word) {
	n := len(x)
	if len(y) != n || len(z) != n {
		panic("arith: SubVV length mismatch")
	}
	for i := 0; i < n; i++ {
		z[i], borrow = SubWithBorrow(x[i], y[i], borrow)
	}
	return borrow
}

// SubVW subtracts y (a single word) from x into z, returning the borrow out.
func SubVW(z, x []Word, y Word) (borrow Word) {
	n := len(x)
	if len(z) != n {
		panic("arith: SubVW length mismatch")
	}
	if n == 0 {
		return y
	}
	z[0], borrow = SubWithBorrow(x[0], y, 0)
	for i := 1; i < n; i++ {
		z[i], borrow = SubWithBorrow(x[i], 0, borrow)
	}
	return borrow
}

// Add writes out = a + b, where a and b are canonical-or-not
// little-endian magnitudes of arbitrary (possibly unequal) length.
// out must have room for max(len(a),len(b))+1 words; the returned
// length already reflects the canonical (rlz'd) form.
func Add(a, b, out []Word) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	m, n := len(a), len(b)
	if len(out) < m+1 {
		panic("arith: Add output buffer too small")
	}
	c := AddVV(out[:n], a[:n], b)
	if m > n {
		c = AddVW(out[n:m], a[n:m], c)
	}
	out[m] = c
	return Rlz(out[:m+1])
}

// Sub writes out = a - b. Requires |a| >= |b| (in the magnitude-compare
// sense); panics on underflow. Use Difference for a signed result.
func Sub(a, b, out []Word) int {
	m, n := len(a), len(b)
	if len(out) < m {
		panic("arith: Sub output buffer too small")
	}
	c := SubVV(out[:n], a[:n], b)
	if m > n {
		c = SubVW(out[n:m], a[n:m], c)
	}
	if c != 0 {
		panic("arith: Sub underflow, |a| < |b|")
	}
	return Rlz(out[:m])
}

// Compare returns -1, 0, +1 as a <, ==, > b, comparing by length first
// and then top-down word, per the canonical-length convention.
func Compare(a, b []Word) int {
	return compareCanon(trim(a), trim(b))
}

// trim returns the canonical (leading-zero-free) view of x without copying.
func trim(x []Word) []Word {
	i := len(x)
	for i > 0 && x[i-1] == 0 {
		i--
	}
	return x[:i]
}

func compareCanon(a, b []Word) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Difference writes out = ||a|-|b|| and returns sign = Compare(a,b).
func Difference(a, b, out []Word) int {
	ta, tb := trim(a), trim(b)
	sign := compareCanon(ta, tb)
	switch {
	case sign == 0:
		for i := range out {
			out[i] = 0
		}
		return 0
	case sign > 0:
		Sub(ta, tb, out)
	default:
		Sub(tb, ta, out)
	}
	n := Rlz(out[:max(len(ta), len(tb))])
	if sign < 0 {
		return -signOf(n, out)
	}
	return signOf(n, out)
}

func signOf(n int, z []Word) int {
	if n == 1 && z[0] == 0 {
		return 0
	}
	return 1
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// MulAddScalar computes out += in*mul + add (in place, out and in may
// be the same slice region), propagating carry across len(in) words
// and returning the final carry word.
func MulAddScalar(out, in []Word, mul, add Word) (carry Word) {
	if len(out) < len(in) {
		panic("arith: MulAddScalar output buffer too small")
	}
	carry = add
	for i, xi := range in {
		lo, hi := Mul64(xi, mul)
		var c1 Word
		lo, c1 = AddWithCarry(lo, carry, 0)
		hi += c1
		var c2 Word
		out[i], c2 = AddWithCarry(out[i], lo, 0)
		carry = hi + c2
	}
	return carry
}

// Rlz ("remove leading zeros") shrinks a magnitude to canonical form:
// the returned length has a non-zero top word, or length 1 with
// value zero if the whole magnitude is zero. It does not move words
// around, only computes the canonical length in place semantics.
func Rlz(a []Word) int {
	n := len(a)
	for n > 1 && a[n-1] == 0 {
		n--
	}
	return n
}
