package currency

// Severity buckets a debt amount for display emphasis.  Four ordered
// tiers; comparisons in Classify are strict, so an amount sitting
// exactly on a threshold falls into the lower tier.
type Severity int

const (
	SeverityLow      Severity = iota // up to 1M IQD
	SeverityElevated                 // over 1M IQD
	SeverityHigh                     // over 5M IQD
	SeverityCritical                 // over 10M IQD
)

// Classify maps an amount to its severity tier.
func Classify(amount float64) Severity {
	switch {
	case amount > 10_000_000:
		return SeverityCritical
	case amount > 5_000_000:
		return SeverityHigh
	case amount > 1_000_000:
		return SeverityElevated
	default:
		return SeverityLow
	}
}

func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "critical"
	case SeverityHigh:
		return "high"
	case SeverityElevated:
		return "elevated"
	default:
		return "low"
	}
}

// ColorClass returns the UI text-color token for the tier.  The
// mapping is a fixed lookup used by the dashboard tables.
func (s Severity) ColorClass() string {
	switch s {
	case SeverityCritical:
		return "text-destructive"
	case SeverityHigh:
		return "text-warning"
	case SeverityElevated:
		return "text-primary"
	default:
		return "text-success"
	}
}

// BadgeVariant returns the badge style for the tier.  Only the top
// two tiers get a distinct variant.
func (s Severity) BadgeVariant() string {
	switch s {
	case SeverityCritical:
		return "destructive"
	case SeverityHigh:
		return "secondary"
	default:
		return "default"
	}
}
