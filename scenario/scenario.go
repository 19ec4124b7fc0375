// Package scenario loads TOML market snapshots for the forward-rate CLIs.
package scenario

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// defaultTenorDays is the standard money-market grid used when a scenario
// omits its own tenors.
var defaultTenorDays = []int{30, 60, 90, 180, 365}

// Scenario is a single-date market snapshot: the spot rate, the two
// deposit rates, the tenor grid to compute forwards over, and any dealer
// quotes to check against CIP.
type Scenario struct {
	Market struct {
		// SpotRate is domestic currency per 1 unit of foreign currency.
		SpotRate float64 `toml:"spot_rate"`
		// DomesticRate is the annual domestic deposit rate as a decimal.
		DomesticRate float64 `toml:"domestic_rate"`
		// ForeignRate is the annual foreign deposit rate as a decimal.
		ForeignRate float64 `toml:"foreign_rate"`
	} `toml:"market"`

	TenorDays []int `toml:"tenor_days"`

	Quotes []Quote `toml:"quotes"`
}

// Quote is a dealer forward quote to validate against the no-arbitrage
// forward for its tenor.
type Quote struct {
	TenorDays   int     `toml:"tenor_days"`
	ForwardRate float64 `toml:"forward_rate"`
}

// Load reads and validates a scenario file, filling in the default tenor
// grid when none is given.
func Load(path string) (*Scenario, error) {
	var sc Scenario
	if _, err := toml.DecodeFile(path, &sc); err != nil {
		return nil, fmt.Errorf("scenario.Load: %w", err)
	}
	applyDefaults(&sc)
	if err := validate(&sc); err != nil {
		return nil, fmt.Errorf("scenario.Load: %w", err)
	}
	return &sc, nil
}

func applyDefaults(sc *Scenario) {
	if len(sc.TenorDays) == 0 {
		sc.TenorDays = append([]int(nil), defaultTenorDays...)
	}
}

func validate(sc *Scenario) error {
	if sc.Market.SpotRate == 0 {
		return errors.New("market.spot_rate is required and must be nonzero")
	}
	for _, days := range sc.TenorDays {
		if days < 0 {
			return fmt.Errorf("tenor_days contains negative tenor %d", days)
		}
	}
	for i, q := range sc.Quotes {
		if q.TenorDays < 0 {
			return fmt.Errorf("quotes[%d]: negative tenor %d", i, q.TenorDays)
		}
		if q.ForwardRate <= 0 {
			return fmt.Errorf("quotes[%d]: forward_rate must be positive", i)
		}
	}
	return nil
}
