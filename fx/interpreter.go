package fx

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Interpreter derives premium/discount metrics and plain-language
// explanations from a (forward, spot, tenor) triple. It is immutable
// after construction; every accessor recomputes from the stored inputs.
//
// Rounding is round-half-to-even throughout. Note the annualisation uses
// ACT/360 while the rate engine accrues on ACT/365F; the mismatch is the
// quoting convention, not an error.
type Interpreter struct {
	forwardRate float64
	spotRate    float64
	tenorDays   int
}

// InterpretationSummary is the structured counterpart of
// DetailedInterpretations, for consumers that need the semantics without
// parsing text.
type InterpretationSummary struct {
	Direction Direction
	// MagnitudePercent is |forward/spot ratio − 1| × 100, the figure
	// embedded in the detailed statements (before 2-dp formatting).
	MagnitudePercent float64
	ForwardPoints    float64
}

// NewInterpreter builds an Interpreter. The spot rate must be nonzero and
// the tenor non-negative; a zero tenor is accepted but annualisation over
// it is refused.
func NewInterpreter(forwardRate, spotRate float64, tenorDays int) (*Interpreter, error) {
	if spotRate == 0 {
		return nil, fmt.Errorf("NewInterpreter: %w", ErrZeroSpotRate)
	}
	if tenorDays < 0 {
		return nil, fmt.Errorf("NewInterpreter: %d days: %w", tenorDays, ErrNegativeTenor)
	}
	return &Interpreter{forwardRate: forwardRate, spotRate: spotRate, tenorDays: tenorDays}, nil
}

// roundBank rounds half-to-even at the given number of decimal places.
func roundBank(x float64, places int32) float64 {
	return decimal.NewFromFloat(x).RoundBank(places).InexactFloat64()
}

// ForwardRate returns the forward rate supplied at construction.
func (i *Interpreter) ForwardRate() float64 { return i.forwardRate }

// SpotRate returns the spot rate supplied at construction.
func (i *Interpreter) SpotRate() float64 { return i.spotRate }

// TenorDays returns the tenor supplied at construction.
func (i *Interpreter) TenorDays() int { return i.tenorDays }

// ForwardSpotRatio is forward/spot, rounded to 4 decimal places.
func (i *Interpreter) ForwardSpotRatio() float64 {
	return roundBank(i.forwardRate/i.spotRate, 4)
}

// ForwardPremiumDiscount is the forward premium (positive) or discount
// (negative) of the foreign currency as a decimal, e.g. 0.1 for 10%.
// Rounded to 4 decimal places.
func (i *Interpreter) ForwardPremiumDiscount() float64 {
	return roundBank(i.ForwardSpotRatio()-1, 4)
}

// AnnualisedPremiumDiscount scales the premium/discount to an annual rate
// on an ACT/360 basis, enabling comparison across tenors. Rounded to 4
// decimal places.
func (i *Interpreter) AnnualisedPremiumDiscount() (float64, error) {
	if i.tenorDays == 0 {
		return 0, fmt.Errorf("AnnualisedPremiumDiscount: %w", ErrZeroTenor)
	}
	premium := (i.ForwardSpotRatio() - 1) / YearFraction(i.tenorDays, Act360)
	return roundBank(premium, 4), nil
}

// ForwardPoints is (forward − spot) in pips, rounded to the nearest whole
// pip. Assumes 1 pip = 0.0001 of the quoted rate.
func (i *Interpreter) ForwardPoints() float64 {
	return roundBank((i.forwardRate-i.spotRate)*10_000, 0)
}

// Summary reports the direction of the forward relative to spot and the
// magnitude quoted in the detailed statements.
func (i *Interpreter) Summary() InterpretationSummary {
	ratio := i.ForwardSpotRatio()
	direction := ForeignDiscount
	if ratio > 1 {
		direction = ForeignPremium
	}
	magnitude := (ratio - 1) * 100
	if magnitude < 0 {
		magnitude = -magnitude
	}
	return InterpretationSummary{
		Direction:        direction,
		MagnitudePercent: magnitude,
		ForwardPoints:    i.ForwardPoints(),
	}
}

// DetailedInterpretations returns six statements explaining what the
// forward/spot relationship implies about the interest-rate differential
// and which currency trades at a forward premium. The branch and the
// embedded percentage both use the rounded forward/spot ratio.
func (i *Interpreter) DetailedInterpretations() []string {
	ratio := i.ForwardSpotRatio()
	magnitude := (ratio - 1) * 100
	if magnitude < 0 {
		magnitude = -magnitude
	}

	if ratio > 1 {
		return []string{
			"The forward rate is greater than the spot rate which implies that domestic rates are higher than foreign rates.",
			"Intuition: If the domestic rates are higher than foreign rates then the forward needs to be higher (foreign currency appreciation) than spot to makeup for higher domestic payoff.",
			"1 unit of foreign currency will buy more domestic currency at time T (today) than it does at today's spot (foreign currency is at a forward premium)",
			"Also means the same amount of domestic currency will buy less foreign currency at time T today than it does today's spot (domestic currency is at a forward discount)",
			fmt.Sprintf("Domestic currency forward must be %.2f%% cheaper (relative to spot) to prevent arbitrage.", magnitude),
			fmt.Sprintf("Foreign currency forward must be %.2f%% more expensive (relative to spot) to prevent arbitrage.", magnitude),
		}
	}
	return []string{
		"The forward rate is less than the spot rate which implies that domestic rates are lower than foreign rates.",
		"Intuition: If the domestic rates are lower than foreign rates then the forward needs to be lower (foreign currency depreciation) than spot to makeup for lower domestic payoff.",
		"1 unit of foreign currency will buy less domestic currency at time T (today) than it does at today's spot (foreign currency is at a forward discount)",
		"Also means the same amount of domestic currency will buy more foreign currency at time T today than it does today's spot (domestic currency is at a forward premium)",
		fmt.Sprintf("Domestic currency must be %.2f%% more expensive in the forward (relative to spot) to prevent arbitrage.", magnitude),
		fmt.Sprintf("Foreign currency must be %.2f%% cheaper in the forward to prevent arbitrage.", magnitude),
	}
}
