package arith

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMontgomeryRoundTrip(t *testing.T) {
	for i := range Primes {
		p := &Primes[i]
		testTable := []Word{0, 1, 2, p.Mod - 1, p.Mod / 2, 12345}
		for _, x := range testTable {
			m := ToMont(p, x)
			back := ToInt(p, m)
			assert.Equal(t, x%p.Mod, back, "prime %d value %d", i, x)
		}
	}
}

func TestMontMulMatchesPlainMultiplication(t *testing.T) {
	for i := range Primes {
		p := &Primes[i]
		a, b := Word(123456789), Word(987654321)
		want := mulModSlow(a%p.Mod, b%p.Mod, p.Mod)

		ma := ToMont(p, a%p.Mod)
		mb := ToMont(p, b%p.Mod)
		got := ToInt(p, MontMul(p, ma, mb))

		assert.Equal(t, want, got, "prime %d", i)
	}
}

func TestMontPowMatchesRepeatedMultiplication(t *testing.T) {
	for i := range Primes {
		p := &Primes[i]
		base := Word(17)
		mbase := ToMont(p, base)

		got := ToInt(p, MontPow(p, mbase, 10))

		want := Word(1)
		for e := 0; e < 10; e++ {
			want = mulModSlow(want, base, p.Mod)
		}
		assert.Equal(t, want, got, "prime %d", i)
	}
}

func TestMontOneIsIdentity(t *testing.T) {
	for i := range Primes {
		p := &Primes[i]
		assert.Equal(t, Word(1), ToInt(p, p.MontOne))
	}
}
