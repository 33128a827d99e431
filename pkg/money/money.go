// Package money implements the client's monetary convention: every amount is
// an integer count of centavos (BRL minor units). User input is read by
// stripping non-digit characters, so a typed "150,00" means 15000 centavos.
package money

import (
	"strconv"
	"strings"
)

// maxInputDigits bounds parsed input, mirroring the form field's length limit.
const maxInputDigits = 15

// Centavos is a BRL amount in minor units.
type Centavos int64

// Parse reads a currency string as centavos by keeping only its digits.
// "R$ 300,00" → 30000, "150,00" → 15000, "abc" → 0. Input beyond 15 digits
// is truncated.
func Parse(s string) Centavos {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if b.Len() == maxInputDigits {
				break
			}
		}
	}
	digits := strings.TrimLeft(b.String(), "0")
	if digits == "" {
		return 0
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return Centavos(n)
}

// Format renders the amount as pt-BR currency: "R$ 1.234,56".
func (c Centavos) Format() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}

	cents := v % 100
	whole := strconv.FormatInt(v/100, 10)

	// Group the integer part with '.' every three digits from the right.
	var grouped strings.Builder
	for i, d := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(d)
	}

	return sign + "R$ " + grouped.String() + "," + pad2(cents)
}

// String implements fmt.Stringer.
func (c Centavos) String() string { return c.Format() }

func pad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}
