package fx

// Convention is a day-count convention over calendar-day tenors.
type Convention int

const (
	// Act365F divides actual days by a fixed 365-day year.
	Act365F Convention = iota
	// Act360 divides actual days by a 360-day year (money-market basis).
	Act360
)

// YearFraction converts a calendar-day count to a year fraction under the
// given convention. Unrecognised conventions fall back to ACT/365F.
func YearFraction(days int, c Convention) float64 {
	switch c {
	case Act360:
		return float64(days) / 360.0
	default:
		return float64(days) / 365.0
	}
}
