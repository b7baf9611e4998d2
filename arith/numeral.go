package arith

import (
	"fmt"
	"strings"
)

// Numeral-level string codecs: ASCII decimal and hex in, a binary
// magnitude out, and back, for callers (the CLI, tests) that want to
// work with ordinary number strings rather than packed-digit word
// slices. FormatDecimalString goes through BinaryToBase; the two
// parsers and FormatHexString work digit by digit and use neither
// BinaryToBase nor BaseToBinary.

// ParseDecimalString parses an ASCII decimal string (no sign, no
// leading "0x") into a canonical binary magnitude.
func ParseDecimalString(s string) ([]Word, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("arith: empty decimal string")
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("arith: invalid decimal digit %q", c)
		}
	}
	out := []Word{0}
	for _, c := range s {
		out = mulAddWordBig(out, 10, Word(c-'0'))
	}
	return trim(out), nil
}

// FormatDecimalString renders a binary magnitude as an ASCII decimal
// string, via the packed-radix converter.
func FormatDecimalString(x []Word) string {
	digits := BinaryToBase(x)
	var b strings.Builder
	top := len(digits) - 1
	fmt.Fprintf(&b, "%d", digits[top])
	for i := top - 1; i >= 0; i-- {
		fmt.Fprintf(&b, "%0*d", decimalDigitsPerWord, digits[i])
	}
	return b.String()
}

// ParseHexString parses an ASCII hex string (optionally prefixed with
// "0x"/"0X", no sign) into a canonical binary magnitude.
func ParseHexString(s string) ([]Word, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	if s == "" {
		return nil, fmt.Errorf("arith: empty hex string")
	}
	nibbles := len(s)
	words := (nibbles + 15) / 16
	out := make([]Word, words)
	for i, c := range s {
		var v Word
		switch {
		case c >= '0' && c <= '9':
			v = Word(c - '0')
		case c >= 'a' && c <= 'f':
			v = Word(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v = Word(c-'A') + 10
		default:
			return nil, fmt.Errorf("arith: invalid hex digit %q", c)
		}
		pos := nibbles - 1 - i
		word := pos / 16
		shift := uint(pos%16) * 4
		out[word] |= v << shift
	}
	return trim(out), nil
}

// FormatHexString renders a binary magnitude as a lowercase hex string
// with no leading zeros (other than a single "0" for the zero value).
func FormatHexString(x []Word) string {
	xt := trim(x)
	if len(xt) == 0 {
		return "0"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%x", xt[len(xt)-1])
	for i := len(xt) - 2; i >= 0; i-- {
		fmt.Fprintf(&b, "%016x", xt[i])
	}
	return b.String()
}
