package fx

import "errors"

var (
	// ErrZeroSpotRate is returned when a spot rate of zero would force a
	// division by zero.
	ErrZeroSpotRate = errors.New("zero spot rate")

	// ErrNegativeTenor is returned for negative day counts.
	ErrNegativeTenor = errors.New("negative tenor")

	// ErrZeroTenor is returned when annualisation over a zero-day tenor
	// is requested.
	ErrZeroTenor = errors.New("zero tenor")
)

// Direction states which side of spot the forward trades on, from the
// foreign currency's point of view.
type Direction int

const (
	// ForeignPremium: forward above spot, foreign currency buys more
	// domestic currency forward than it does at spot.
	ForeignPremium Direction = iota
	// ForeignDiscount: forward at or below spot.
	ForeignDiscount
)

func (d Direction) String() string {
	switch d {
	case ForeignPremium:
		return "foreign currency forward premium"
	case ForeignDiscount:
		return "foreign currency forward discount"
	default:
		return "unknown"
	}
}
