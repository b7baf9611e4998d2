package arith

// L5/L6: chunked unbalanced multiply, for operands whose length ratio
// n1/n2 >= 2. Rather than pad the short operand up to the long one
// (wasting a transform on mostly-zero coefficients), the short operand
// is transformed once and reused (ConvSingle) against successive
// chunks of the long operand, each chunk sized so the convolution
// stays in the single-transform regime.

// isqrt returns floor(sqrt(n)) for n >= 0 via Newton's method.
func isqrt(n int) int {
	if n <= 0 {
		return 0
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}

// unbalancedNTTMul multiplies x (long) by y (short, n1/len(y) >= 2)
// via chunked NTT convolution, accumulating partial results across
// chunk boundaries with carry propagation.
func unbalancedNTTMul(x, y []Word, out []Word) {
	n1, n2 := len(x), len(y)
	m := isqrt(n1 / n2)
	chunkCandidate := n2 + max(n2, m)
	convLen := int(CeilPow2(uint64(chunkCandidate)))
	s := convLen - n2
	if s <= 0 {
		s = 1
	}

	for i := range out {
		out[i] = 0
	}

	var twiddles [3]*Twiddles
	var yTrans [3][]Word
	for i := range Primes {
		p := &Primes[i]
		tw := BuildTwiddles(p, p.MontRoot, p.MontInvRoot, convLen)
		twiddles[i] = tw
		yTrans[i] = TransformOperand(p, tw, y, convLen)
	}

	for start := 0; start < n1; start += s {
		end := start + s
		if end > n1 {
			end = n1
		}
		chunk := x[start:end]
		var residues [3][]Word
		for i := range Primes {
			r := make([]Word, convLen)
			ConvSingle(&Primes[i], twiddles[i], yTrans[i], chunk, r)
			residues[i] = r
		}
		accumulateDigitsAt(residues, out, start)
	}
}
