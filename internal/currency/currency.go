// Package currency formats and parses Iraqi Dinar (IQD) amounts for
// the dashboard.  All functions are pure and never fail for finite
// input: formatting falls back to manual grouping when the locale
// data cannot be resolved, and parsing returns 0 for anything it
// cannot understand.
package currency

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Symbol is the Arabic abbreviation for the Iraqi Dinar, appended to
// every formatted amount.
const Symbol = "د.ع" // د.ع

// Compact magnitude words used by FormatCompact and understood by Parse.
const (
	wordMillion  = "مليون" // مليون
	wordThousand = "ألف"             // ألف
)

// arabicIraq is the display locale.  language.Parse can fail if the
// tag is not well formed; in that case every formatter takes the
// manual fallback path instead.
var arabicIraq, localeErr = language.Parse("ar-IQ")

// Options control Format.  The zero value matches the dashboard
// default: whole dinars with the currency suffix.
type Options struct {
	FractionDigits int  // digits after the decimal separator
	NoSymbol       bool // suppress the currency suffix
}

// Format renders an amount as a localized IQD string.  The locale
// path uses the ar-IQ number system (Arabic-Indic digits and
// separators); if the locale tag could not be resolved it falls back
// to manual thousands grouping with Western digits.  Either way the
// function returns a usable string and never panics for finite input.
func Format(amount float64, opts ...Options) string {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}
	if localeErr != nil {
		return fallback(amount, o)
	}
	p := message.NewPrinter(arabicIraq)
	s := p.Sprintf("%v", number.Decimal(amount,
		number.MinFractionDigits(o.FractionDigits),
		number.MaxFractionDigits(o.FractionDigits)))
	if o.NoSymbol {
		return s
	}
	return s + " " + Symbol
}

// FormatCompact abbreviates an amount for table and card display:
// one decimal of millions at or above 1,000,000, whole thousands at
// or above 1,000, and the full fallback form below that.  Both
// thresholds are inclusive.  The thousands branch truncates rather
// than rounds, so 1,500 renders as "1 ألف" and never crosses up into
// a bucket label the raw amount has not reached; the millions branch
// rounds to the nearest tenth.
func FormatCompact(amount float64) string {
	switch {
	case amount >= 1_000_000:
		m := math.Round(amount/1_000_000*10) / 10
		return strconv.FormatFloat(m, 'f', 1, 64) + " " + wordMillion + " " + Symbol
	case amount >= 1_000:
		k := math.Floor(amount / 1_000)
		return strconv.FormatFloat(k, 'f', 0, 64) + " " + wordThousand + " " + Symbol
	default:
		return fallback(amount, Options{})
	}
}

// Parse recovers a numeric amount from a formatted string.  It strips
// the currency suffix, maps Arabic-Indic digits and separators to
// their Western equivalents, drops grouping separators, and scales by
// the مليون/ألف magnitude words so Parse(FormatCompact(a)) stays
// within the display precision of a.  Invalid input yields 0.
func Parse(text string) float64 {
	millions := strings.Contains(text, wordMillion)
	thousands := strings.Contains(text, wordThousand)
	s := strings.NewReplacer(Symbol, "", wordMillion, "", wordThousand, "", "IQD", "").Replace(text)

	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= '٠' && r <= '٩': // Arabic-Indic digits
			b.WriteRune('0' + (r - '٠'))
		case r == '.':
			b.WriteRune('.')
		case r == '٫': // Arabic decimal separator
			b.WriteRune('.')
		case r == ',', r == '٬', r == ' ', r == ' ':
			// grouping separators, dropped
		}
	}

	n, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0
	}
	switch {
	case millions:
		n *= 1_000_000
	case thousands:
		n *= 1_000
	}
	return n
}

// fallback groups an amount into comma-separated thousands with
// Western digits.  It backs Format when the locale is unavailable and
// FormatCompact for sub-thousand amounts.
func fallback(amount float64, o Options) string {
	s := strconv.FormatFloat(amount, 'f', o.FractionDigits, 64)
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}
	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	out := b.String()
	if neg {
		out = "-" + out
	}
	if hasFrac {
		out += "." + fracPart
	}
	if o.NoSymbol {
		return out
	}
	return out + " " + Symbol
}
