package arith

// L4: Montgomery64 modular arithmetic over a single fixed prime,
// generalizing the teacher's per-prime macro-expanded kernel (and the
// CIOS-style REDC in the montgomery reference implementation) into
// one kernel parameterised by a *PrimeDescriptor, so the three NTT
// lanes share code instead of being copy-pasted three times.
//
// MontAdd, MontSub and MontMulLazy keep values "lazy" in [0, 2p),
// matching the butterflies' need to avoid a conditional subtract on
// every operation; ToMont, ToInt, MontMul and MontNorm return values
// in [0, p).

// ToMont maps x in [0,p) into Montgomery form x*R mod p.
func ToMont(p *PrimeDescriptor, x Word) Word {
	return mulMont(p, x, p.RSquare)
}

// ToInt maps a Montgomery-form value back to [0,p).
func ToInt(p *PrimeDescriptor, xm Word) Word {
	return redc(p, 0, xm)
}

// redc computes REDC(hi:lo) where the 128-bit input is hi*2^64+lo,
// returning a fully reduced value in [0, p).
func redc(p *PrimeDescriptor, hi, lo Word) Word {
	m := lo * p.ModInvNeg
	mhLo, mhHi := Mul64(m, p.Mod)
	_, c := AddWithCarry(lo, mhLo, 0)
	r, _ := AddWithCarry(hi, mhHi, c)
	if r >= p.Mod {
		r -= p.Mod
	}
	return r
}

// redcLazy is REDC without the final conditional subtract, returning
// a value in [0, 2p); used inside butterflies where the next
// operation tolerates the lazy range.
func redcLazy(p *PrimeDescriptor, hi, lo Word) Word {
	m := lo * p.ModInvNeg
	mhLo, mhHi := Mul64(m, p.Mod)
	_, c := AddWithCarry(lo, mhLo, 0)
	r, _ := AddWithCarry(hi, mhHi, c)
	return r
}

func mulMont(p *PrimeDescriptor, a, b Word) Word {
	lo, hi := Mul64(a, b)
	return redc(p, hi, lo)
}

func mulMontLazy(p *PrimeDescriptor, a, b Word) Word {
	lo, hi := Mul64(a, b)
	return redcLazy(p, hi, lo)
}

// MontAdd adds two lazy Montgomery values (each < 2p), returning a
// value < 2p via a single conditional subtract of 2p.
func MontAdd(p *PrimeDescriptor, a, b Word) Word {
	s := a + b
	if s >= p.Mod2() {
		s -= p.Mod2()
	}
	return s
}

// MontSub subtracts two lazy Montgomery values (each < 2p), returning
// a value < 2p.
func MontSub(p *PrimeDescriptor, a, b Word) Word {
	if a >= b {
		return a - b
	}
	return a - b + p.Mod2()
}

// MontNorm reduces a lazy value (< 2p) into canonical range [0, p).
func MontNorm(p *PrimeDescriptor, a Word) Word {
	if a >= p.Mod {
		return a - p.Mod
	}
	return a
}

// MontMul multiplies two Montgomery-form values, returning a fully
// reduced Montgomery-form product in [0, p).
func MontMul(p *PrimeDescriptor, a, b Word) Word {
	return mulMont(p, a, b)
}

// MontMulLazy is MontMul without the final conditional subtract.
func MontMulLazy(p *PrimeDescriptor, a, b Word) Word {
	return mulMontLazy(p, a, b)
}

// MontPow computes base^exp mod p, base and result in Montgomery
// form, via standard binary (square-and-multiply) exponentiation.
func MontPow(p *PrimeDescriptor, base Word, exp uint64) Word {
	result := p.MontOne
	for exp > 0 {
		if exp&1 == 1 {
			result = mulMont(p, result, base)
		}
		base = mulMont(p, base, base)
		exp >>= 1
	}
	return result
}
