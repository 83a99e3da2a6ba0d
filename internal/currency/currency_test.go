package currency

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCompact(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		amount float64
		want   string
	}{
		{"millions round to a tenth", 2_500_000, "2.5 " + wordMillion + " " + Symbol},
		{"exactly one million", 1_000_000, "1.0 " + wordMillion + " " + Symbol},
		{"millions round up", 1_250_000, "1.3 " + wordMillion + " " + Symbol},
		{"thousands truncate", 1_500, "1 " + wordThousand + " " + Symbol},
		{"exactly one thousand", 1_000, "1 " + wordThousand + " " + Symbol},
		{"just under a million", 999_999, "999 " + wordThousand + " " + Symbol},
		{"below a thousand", 999, "999 " + Symbol},
		{"zero", 0, "0 " + Symbol},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatCompact(tc.amount))
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want float64
	}{
		{"western grouped", "1,500,000 " + Symbol, 1_500_000},
		{"arabic indic digits", "٢٥٠٠", 2500},
		{"arabic grouping and decimal", "١٬٢٣٤٫٥", 1234.5},
		{"compact millions", "2.5 " + wordMillion + " " + Symbol, 2_500_000},
		{"compact thousands", "750 " + wordThousand + " " + Symbol, 750_000},
		{"iqd suffix", "1200 IQD", 1200},
		{"plain number", "42", 42},
		{"garbage", "abc", 0},
		{"empty", "", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Parse(tc.in))
		})
	}
}

// A formatted amount must parse back to the same value. Format keeps
// full precision so the round trip is exact; FormatCompact drops to
// display precision so the round trip stays within the shown digits.
func TestParseRoundTrip(t *testing.T) {
	t.Parallel()

	for _, amount := range []float64{0, 7, 999, 12_345, 1_000_000, 2_500_000, 7_654_321} {
		got := Parse(Format(amount))
		require.Equal(t, amount, got, "Format(%v) = %q did not round-trip", amount, Format(amount))
	}

	// compact: 2,547,000 shows as 2.5 millions and parses to 2,500,000
	assert.Equal(t, 2_500_000.0, Parse(FormatCompact(2_547_000)))
	assert.Equal(t, 1_000.0, Parse(FormatCompact(1_500)))
}

func TestFormatOptions(t *testing.T) {
	t.Parallel()

	assert.False(t, strings.Contains(Format(1234, Options{NoSymbol: true}), Symbol))
	assert.True(t, strings.HasSuffix(Format(1234), Symbol))
}

func TestFallbackGrouping(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1,234,567 "+Symbol, fallback(1234567, Options{}))
	assert.Equal(t, "-1,234,567 "+Symbol, fallback(-1234567, Options{}))
	assert.Equal(t, "1,234.50", fallback(1234.5, Options{FractionDigits: 2, NoSymbol: true}))
	assert.Equal(t, "999 "+Symbol, fallback(999, Options{}))
}
