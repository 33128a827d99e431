package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_FormattedCurrency(t *testing.T) {
	assert.Equal(t, Centavos(30000), Parse("R$ 300,00"))
}

func TestParse_PlainDecimal(t *testing.T) {
	// "150,00" is read as 15000 centavos, not 150 reais.
	assert.Equal(t, Centavos(15000), Parse("150,00"))
}

func TestParse_ThousandsSeparators(t *testing.T) {
	assert.Equal(t, Centavos(123456), Parse("R$ 1.234,56"))
}

func TestParse_BareDigits(t *testing.T) {
	assert.Equal(t, Centavos(50000), Parse("50000"))
}

func TestParse_Empty(t *testing.T) {
	assert.Equal(t, Centavos(0), Parse(""))
}

func TestParse_NoDigits(t *testing.T) {
	assert.Equal(t, Centavos(0), Parse("abc"))
}

func TestParse_LeadingZeros(t *testing.T) {
	assert.Equal(t, Centavos(700), Parse("007,00"))
}

func TestParse_Zero(t *testing.T) {
	assert.Equal(t, Centavos(0), Parse("R$ 0,00"))
}

func TestParse_TruncatesLongInput(t *testing.T) {
	// Input beyond the form's 15-digit limit is cut off, never overflows.
	assert.Equal(t, Centavos(999999999999999), Parse("99999999999999999999"))
}

func TestFormat_Basic(t *testing.T) {
	assert.Equal(t, "R$ 300,00", Centavos(30000).Format())
}

func TestFormat_Zero(t *testing.T) {
	assert.Equal(t, "R$ 0,00", Centavos(0).Format())
}

func TestFormat_Grouping(t *testing.T) {
	assert.Equal(t, "R$ 1.234,56", Centavos(123456).Format())
}

func TestFormat_LargeGrouping(t *testing.T) {
	assert.Equal(t, "R$ 1.234.567,89", Centavos(123456789).Format())
}

func TestFormat_SubUnit(t *testing.T) {
	assert.Equal(t, "R$ 0,05", Centavos(5).Format())
}

func TestFormat_Negative(t *testing.T) {
	assert.Equal(t, "-R$ 200,00", Centavos(-20000).Format())
}

func TestRoundTrip(t *testing.T) {
	for _, c := range []Centavos{0, 1, 99, 100, 10000, 123456, 123456789, 999999999999999} {
		assert.Equal(t, c, Parse(c.Format()), "round-trip of %d", int64(c))
	}
}
