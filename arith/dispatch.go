package arith

// L6: the multiplication dispatcher. Selects schoolbook, Karatsuba,
// balanced three-prime NTT, or chunked unbalanced NTT by operand
// length and length ratio, per the design's threshold table:
//
//	n2 < 24                         -> schoolbook
//	n2 < 1536 && n1/n2 < 2          -> Karatsuba
//	n2 >= 1536 && n1/n2 < 2         -> balanced NTT
//	n1/n2 >= 2                      -> chunked unbalanced NTT
//
// where n1 = len(longer operand), n2 = len(shorter operand), both
// canonical (trimmed) lengths.

const ntBalancedThreshold = 1536

// Mul computes out = x*y for arbitrary-length canonical-or-not
// magnitudes; out must have room for len(x)+len(y) words. Squaring
// (x and y the same value) is not auto-detected here: callers that
// know they are squaring should call Sqr instead to take the
// dedicated identity path.
func Mul(x, y, out []Word) {
	xt, yt := trim(x), trim(y)
	if len(xt) < len(yt) {
		xt, yt = yt, xt
	}
	n1, n2 := len(xt), len(yt)
	if n2 == 0 {
		for i := range out[:len(x)+len(y)] {
			out[i] = 0
		}
		return
	}
	switch {
	case n2 < karatsubaMin:
		SchoolbookMul(xt, yt, out[:n1+n2])
		for i := n1 + n2; i < len(x)+len(y); i++ {
			out[i] = 0
		}
	case n2 < ntBalancedThreshold && n1/n2 < 2:
		KaratsubaMul(xt, yt, out[:n1+n2])
		for i := n1 + n2; i < len(x)+len(y); i++ {
			out[i] = 0
		}
	case n1/n2 < 2:
		balancedNTTMul(xt, yt, out[:n1+n2])
		for i := n1 + n2; i < len(x)+len(y); i++ {
			out[i] = 0
		}
	default:
		unbalancedNTTMul(xt, yt, out[:n1+n2])
		for i := n1 + n2; i < len(x)+len(y); i++ {
			out[i] = 0
		}
	}
}

// Sqr computes out = x*x. The schoolbook and NTT tiers use dedicated
// squaring paths (SchoolbookSqr; balancedNTTSqr, which transforms x
// once per prime); the Karatsuba tier has no squaring variant and runs
// the general KaratsubaMul(x, x).
func Sqr(x, out []Word) {
	xt := trim(x)
	n := len(xt)
	if n == 0 {
		for i := range out[:2*len(x)] {
			out[i] = 0
		}
		return
	}
	switch {
	case n < karatsubaMin:
		SchoolbookSqr(xt, out[:2*n])
	case n < ntBalancedThreshold:
		KaratsubaMul(xt, xt, out[:2*n])
	default:
		balancedNTTSqr(xt, out[:2*n])
	}
	for i := 2 * n; i < 2*len(x); i++ {
		out[i] = 0
	}
}

// balancedNTTMul multiplies two roughly-equal-length operands via the
// three-prime NTT convolution and CRT reassembly.
func balancedNTTMul(x, y []Word, out []Word) {
	n1, n2 := len(x), len(y)
	convLen := int(CeilPow2(uint64(n1 + n2)))
	var residues [3][]Word
	for i := range Primes {
		p := &Primes[i]
		tw := BuildTwiddles(p, p.MontRoot, p.MontInvRoot, convLen)
		r := make([]Word, convLen)
		ConvRec(p, tw, x, y, r)
		residues[i] = r
	}
	buf := make([]Word, convLen+3)
	accumulateDigits(residues, buf)
	copy(out, buf[:n1+n2])
}

// balancedNTTSqr squares a single operand via the three-prime NTT
// convolution's dedicated squaring path.
func balancedNTTSqr(x []Word, out []Word) {
	n := len(x)
	convLen := int(CeilPow2(uint64(2 * n)))
	var residues [3][]Word
	for i := range Primes {
		p := &Primes[i]
		tw := BuildTwiddles(p, p.MontRoot, p.MontInvRoot, convLen)
		r := make([]Word, convLen)
		ConvSqr(p, tw, x, r)
		residues[i] = r
	}
	buf := make([]Word, convLen+3)
	accumulateDigits(residues, buf)
	copy(out, buf[:2*n])
}
