package arith

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvRecMatchesSchoolbookForOnePrime(t *testing.T) {
	p := &Primes[0]
	x := []Word{3, 1, 4, 1}
	y := []Word{5, 9, 2, 6}

	n := 8
	tw := BuildTwiddles(p, p.MontRoot, p.MontInvRoot, n)
	got := make([]Word, n)
	ConvRec(p, tw, x, y, got)

	want := make([]Word, n)
	for i, xi := range x {
		for j, yj := range y {
			want[i+j] = (want[i+j] + mulModSlow(xi, yj, p.Mod)) % p.Mod
		}
	}
	assert.Equal(t, want, got)
}

func TestConvSqrMatchesConvRecSelf(t *testing.T) {
	p := &Primes[1]
	x := []Word{11, 22, 33, 44}
	n := 8
	tw := BuildTwiddles(p, p.MontRoot, p.MontInvRoot, n)

	got := make([]Word, n)
	ConvSqr(p, tw, x, got)

	want := make([]Word, n)
	ConvRec(p, tw, x, x, want)

	assert.Equal(t, want, got)
}

func TestBalancedNTTMulMatchesSchoolbook(t *testing.T) {
	x := fillPattern(2000, 0xABCDEF)
	y := fillPattern(2000, 0x123456)

	want := make([]Word, len(x)+len(y))
	SchoolbookMul(x, y, want)

	got := make([]Word, len(x)+len(y))
	balancedNTTMul(x, y, got)

	assert.Equal(t, want, got)
}

func TestMulDispatcherAllTiers(t *testing.T) {
	testTable := []struct {
		desc string
		lenX int
		lenY int
	}{
		{"schoolbook tier", 10, 8},
		{"karatsuba tier", 100, 90},
		{"balanced ntt tier", 2000, 1900},
		{"unbalanced ntt tier", 4000, 100},
	}
	for _, tt := range testTable {
		x := fillPattern(tt.lenX, 0x9E3779B9)
		y := fillPattern(tt.lenY, 0x85EBCA6B)

		want := make([]Word, tt.lenX+tt.lenY)
		SchoolbookMul(x, y, want)

		got := make([]Word, tt.lenX+tt.lenY)
		Mul(x, y, got)

		assert.Equal(t, want, got, tt.desc)
	}
}
