package arith

// L4 constants: the three NTT primes and their precomputed Montgomery
// machinery, ported verbatim from the teacher's 3ntt_crt_data.h so
// that any conforming implementation produces bit-identical results.
// Each pi satisfies 2^32 < pi < 2^62 and pi = 1 (mod 2^23), giving NTT
// transforms of length up to ~2^22 room to exist.

// PrimeDescriptor holds a single NTT prime's Montgomery-form constants:
// the modulus, its primitive root (and inverse) in Montgomery form,
// the negated modular inverse of the modulus mod 2^64 used by REDC,
// R^2 mod p for converting integers into Montgomery form, and the
// fourth/eighth-root-of-unity table used to seed short transforms.
type PrimeDescriptor struct {
	Mod         Word // p
	ModInvNeg   Word // -p^-1 mod 2^64
	RSquare     Word // R^2 mod p, R = 2^64
	MontRoot    Word // mont(root)
	MontInvRoot Word // mont(root^-1 mod p)
	MontOne     Word // mont(1)

	W41    Word // mont(root^((p-1)/4))
	W41Inv Word // mont(rootInv^((p-1)/4))
	W1     Word // mont(root^((p-1)/8))
	W2     Word // W1^2
	W3     Word // W1^3
	W1Inv  Word
	W2Inv  Word
	W3Inv  Word
}

// Mod2 is 2p, the bound "lazy" Montgomery values are kept under.
func (p *PrimeDescriptor) Mod2() Word { return p.Mod * 2 }

// Primes holds the three fixed NTT moduli used by the convolution
// engine, in the order the three-prime CRT reassembly expects them.
var Primes = [3]PrimeDescriptor{
	{
		Mod:         2485986994308513793,
		ModInvNeg:   2485986994308513791,
		RSquare:     1974795801822054070,
		MontRoot:    252201579132747739,
		MontInvRoot: 208967022709991013,
		MontOne:     1044835113549955065,
		W41:         1114193638674092305,
		W41Inv:      1371793355634421488,
		W1:          1397546744561501820,
		W2:          1114193638674092305,
		W3:          1540210943987252404,
		W1Inv:       945776050321261389,
		W2Inv:       1371793355634421488,
		W3Inv:       1088440249747011973,
	},
	{
		Mod:         1945555039024054273,
		ModInvNeg:   1945555039024054271,
		RSquare:     269548777697434221,
		MontRoot:    792633534417207249,
		MontInvRoot: 965571760108234341,
		MontOne:     936748722493063159,
		W41:         1227753429952047858,
		W41Inv:      717801609072006415,
		W1:          352122307744000116,
		W2:          1227753429952047858,
		W3:          1132446406557179953,
		W1Inv:       813108632466874320,
		W2Inv:       717801609072006415,
		W3Inv:       1593432731280054157,
	},
	{
		Mod:         4179340454199820289,
		ModInvNeg:   4179340454199820287,
		RSquare:     1878466934230121386,
		MontRoot:    1008806316530991091,
		MontInvRoot: 3362687721769970346,
		MontOne:     1729382256910270460,
		W41:         2751416685589087298,
		W41Inv:      1427923768610732991,
		W1:          457531513967587773,
		W2:          2751416685589087298,
		W3:          2098898615074297118,
		W1Inv:       2080441839125523171,
		W2Inv:       1427923768610732991,
		W3Inv:       3721808940232232516,
	},
}

// PrimeRoots are the primitive roots (outside Montgomery form) used to
// derive each prime's tables; retained for documentation/tests since
// the Montgomery-form values above are what the engine actually uses.
var PrimeRoots = [3]uint32{5, 5, 3}
