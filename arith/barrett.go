package arith

// L8: Barrett-style reduction specialised to a power-of-two modulus,
// used by Div's power-of-two-divisor fast path to cut a magnitude at
// an arbitrary bit boundary without running full Algorithm D. Against
// modulus 2^n this degenerates to a mask and a shift: no quotient
// estimate, no multiply-subtract, no add-back correction.

// Split2PowWords splits x at a word boundary k: low = x mod 2^(64k),
// high = x div 2^(64k). low and high are independent copies (no
// aliasing with x). This is the word-aligned case of Split2PowBits,
// factored out since it needs no shifting.
func Split2PowWords(x []Word, k int) (low, high []Word) {
	if k >= len(x) {
		low = append([]Word(nil), x...)
		high = nil
		return
	}
	low = append([]Word(nil), x[:k]...)
	high = append([]Word(nil), x[k:]...)
	return
}

// Split2PowBits splits x at an arbitrary bit boundary n: low = x mod
// 2^n (n bits, ceil(n/64) words), high = x div 2^n. Used by Div to
// answer u/2^n and u%2^n directly whenever the divisor is a power of
// two, bypassing divKnuth entirely.
func Split2PowBits(x []Word, n uint) (low, high []Word) {
	wordOff := n / wordBits
	bitOff := n % wordBits
	if bitOff == 0 {
		return Split2PowWords(x, int(wordOff))
	}
	if wordOff >= uint(len(x)) {
		return append([]Word(nil), x...), nil
	}
	lowLen := int(wordOff) + 1
	low = make([]Word, lowLen)
	copy(low, x[:wordOff])
	low[wordOff] = x[wordOff] & (Word(1)<<bitOff - 1)

	high = make([]Word, len(x)-int(wordOff))
	RshiftBits(x[wordOff:], high, bitOff)
	high = trim(high)
	return low, high
}

// powerOfTwoBits reports whether v (not necessarily canonical) equals
// 2^n for some n, returning that n. Used by Div to detect when the
// divisor admits the Split2PowBits fast path.
func powerOfTwoBits(v []Word) (n uint, ok bool) {
	vt := trim(v)
	if len(vt) == 0 {
		return 0, false
	}
	for _, w := range vt[:len(vt)-1] {
		if w != 0 {
			return 0, false
		}
	}
	top := vt[len(vt)-1]
	if top&(top-1) != 0 {
		return 0, false
	}
	n = uint(len(vt)-1)*wordBits + uint(bits64Len(uint64(top))-1)
	return n, true
}
