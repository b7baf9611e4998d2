package arith

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDivWordExact(t *testing.T) {
	u := []Word{100, 0}
	quo := make([]Word, 2)
	rem := DivWord(u, 7, quo)
	assert.Equal(t, Word(14), quo[0])
	assert.Equal(t, Word(2), rem)
}

func TestDivKnuthRoundTrip(t *testing.T) {
	testTable := []struct {
		desc string
		u, v []Word
	}{
		{"divisor two words, exact", []Word{0, 6}, []Word{0, 2}},
		{"divisor two words, remainder", []Word{7, 6}, []Word{0, 2}},
		{"u just below v, both two words", []Word{wordMax, wordMax - 1}, []Word{wordMax, wordMax}},
		{"dividend much larger", []Word{1, 2, 3, 4}, []Word{5, 6}},
		{"u < v", []Word{1, 2}, []Word{5, 6, 7}},
	}
	for _, tt := range testTable {
		m := len(tt.u) - len(tt.v) + 1
		if m < 1 {
			m = 1
		}
		quo := make([]Word, m)
		rem := make([]Word, len(tt.v))
		Div(tt.u, tt.v, quo, rem)

		// reconstruct u' = quo*v + rem and compare to u
		prod := make([]Word, len(quo)+len(tt.v))
		Mul(quo, tt.v, prod)
		sum := make([]Word, len(prod)+1)
		n := Add(trim(prod), trim(rem), sum)
		sum = sum[:n]

		assert.Equal(t, 0, Compare(trim(tt.u), sum), "round trip failed for %s", tt.desc)
		assert.True(t, Compare(trim(rem), trim(tt.v)) < 0, "remainder not smaller than divisor for %s", tt.desc)
	}
}

func TestDivByZeroPanics(t *testing.T) {
	assert.Panics(t, func() {
		quo := make([]Word, 1)
		rem := make([]Word, 1)
		Div([]Word{1}, []Word{0}, quo, rem)
	})
}
