// Package fx computes and interprets FX forward rates under covered
// interest parity (CIP).
//
// Rates are decimals (e.g., 0.05 == 5%). Spot and forward rates are quoted
// as domestic currency units per 1 unit of foreign currency. Tenors are
// calendar days; the rate engine accrues on ACT/365F.
package fx

import "fmt"

// cipTolerance is the absolute payoff tolerance for the CIP equality
// check.
const cipTolerance = 1e-10

// cipPayoffs returns the domestic simple-interest payoff of 1 unit of
// domestic currency and the foreign payoff expressed in foreign currency
// per domestic unit invested (1/spot units grown at the foreign rate).
func cipPayoffs(domesticRate, foreignRate float64, daysToMaturity int, spotRate float64) (domestic, foreign float64) {
	t := YearFraction(daysToMaturity, Act365F)
	domestic = 1 + domesticRate*t
	foreign = (1 + foreignRate*t) * (1 / spotRate)
	return domestic, foreign
}

// ForwardRate computes the theoretical forward rate implied by covered
// interest parity.
//
// Under CIP the forward is the ratio of the domestic payoff to the
// foreign payoff, so at zero tenor the forward equals spot. Rates may be
// negative; the tenor may not.
func ForwardRate(domesticRate, foreignRate float64, daysToMaturity int, spotRate float64) (float64, error) {
	if spotRate == 0 {
		return 0, fmt.Errorf("ForwardRate: %w", ErrZeroSpotRate)
	}
	if daysToMaturity < 0 {
		return 0, fmt.Errorf("ForwardRate: %d days: %w", daysToMaturity, ErrNegativeTenor)
	}

	domestic, foreign := cipPayoffs(domesticRate, foreignRate, daysToMaturity, spotRate)
	return domestic / foreign, nil
}

// ForwardRates computes one forward rate per tenor, preserving input
// order. Tenors do not interact; an empty input yields an empty output.
// The first invalid tenor aborts the whole computation.
func ForwardRates(domesticRate, foreignRate float64, tenorsDays []int, spotRate float64) ([]float64, error) {
	forwards := make([]float64, 0, len(tenorsDays))
	for _, tenorDays := range tenorsDays {
		fwd, err := ForwardRate(domesticRate, foreignRate, tenorDays, spotRate)
		if err != nil {
			return nil, fmt.Errorf("ForwardRates: tenor %d: %w", tenorDays, err)
		}
		forwards = append(forwards, fwd)
	}
	return forwards, nil
}

// CIPHolds reports whether the supplied forward rate satisfies the CIP
// payoff equality within an absolute tolerance of 1e-10.
//
// The tolerance is absolute, not relative: the forward must be quoted on
// the same decimal scale as spot (not in pips) or the check is
// meaningless.
func CIPHolds(forwardRate, domesticRate, foreignRate float64, daysToMaturity int, spotRate float64) (bool, error) {
	if spotRate == 0 {
		return false, fmt.Errorf("CIPHolds: %w", ErrZeroSpotRate)
	}
	if daysToMaturity < 0 {
		return false, fmt.Errorf("CIPHolds: %d days: %w", daysToMaturity, ErrNegativeTenor)
	}

	domestic, foreign := cipPayoffs(domesticRate, foreignRate, daysToMaturity, spotRate)
	diff := domestic - foreign*forwardRate
	if diff < 0 {
		diff = -diff
	}
	return diff < cipTolerance, nil
}
