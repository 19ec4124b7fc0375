package fx_test

import (
	"errors"
	"math"
	"testing"

	"github.com/meenmo/fxlib/fx"
)

func TestForwardRate_ZeroTenorEqualsSpot(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		domestic float64
		foreign  float64
		spot     float64
	}{
		{"usd over eur", 0.05, 0.02, 1.0865},
		{"negative domestic", -0.005, 0.012, 0.92},
		{"equal rates", 0.03, 0.03, 145.32},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			fwd, err := fx.ForwardRate(tc.domestic, tc.foreign, 0, tc.spot)
			if err != nil {
				t.Fatalf("ForwardRate error: %v", err)
			}
			if fwd != tc.spot {
				t.Fatalf("zero-tenor forward: got %v, want spot %v", fwd, tc.spot)
			}
		})
	}
}

func TestForwardRate_KnownValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		domestic float64
		foreign  float64
		days     int
		spot     float64
		want     float64
	}{
		{"one year unit spot", 0.05, 0.02, 365, 1.0, 1.0294117647058825},
		{"90d eurusd", 0.0525, 0.0315, 90, 1.0865, 1.0920826253619151},
		{"negative domestic rate", -0.005, 0.012, 180, 0.92, 0.9123324980934744},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			fwd, err := fx.ForwardRate(tc.domestic, tc.foreign, tc.days, tc.spot)
			if err != nil {
				t.Fatalf("ForwardRate error: %v", err)
			}
			if math.Abs(fwd-tc.want) > 1e-12 {
				t.Fatalf("forward mismatch: got %.13f, want %.13f", fwd, tc.want)
			}
		})
	}
}

func TestForwardRate_MonotonicInDomesticRate(t *testing.T) {
	t.Parallel()

	prev := math.Inf(-1)
	for _, domestic := range []float64{-0.02, 0.0, 0.015, 0.03, 0.08} {
		fwd, err := fx.ForwardRate(domestic, 0.02, 180, 1.25)
		if err != nil {
			t.Fatalf("ForwardRate(%v) error: %v", domestic, err)
		}
		if fwd <= prev {
			t.Fatalf("forward not increasing at domestic=%v: %v <= %v", domestic, fwd, prev)
		}
		prev = fwd
	}
}

func TestForwardRate_MonotonicDecreasingInForeignRate(t *testing.T) {
	t.Parallel()

	prev := math.Inf(1)
	for _, foreign := range []float64{-0.01, 0.0, 0.02, 0.05} {
		fwd, err := fx.ForwardRate(0.03, foreign, 180, 1.25)
		if err != nil {
			t.Fatalf("ForwardRate(foreign=%v) error: %v", foreign, err)
		}
		if fwd >= prev {
			t.Fatalf("forward not decreasing at foreign=%v: %v >= %v", foreign, fwd, prev)
		}
		prev = fwd
	}
}

func TestForwardRate_InvalidInputs(t *testing.T) {
	t.Parallel()

	if _, err := fx.ForwardRate(0.05, 0.02, 90, 0); !errors.Is(err, fx.ErrZeroSpotRate) {
		t.Fatalf("zero spot: got %v, want ErrZeroSpotRate", err)
	}
	if _, err := fx.ForwardRate(0.05, 0.02, -30, 1.0); !errors.Is(err, fx.ErrNegativeTenor) {
		t.Fatalf("negative tenor: got %v, want ErrNegativeTenor", err)
	}
}

func TestForwardRates_MatchesSingleTenorCalls(t *testing.T) {
	t.Parallel()

	tenors := []int{30, 60, 90, 120}
	want := []float64{1.0024617067833697, 1.0049153468050247, 1.007360959651036, 1.009798584648884}

	got, err := fx.ForwardRates(0.05, 0.02, tenors, 1.0)
	if err != nil {
		t.Fatalf("ForwardRates error: %v", err)
	}
	if len(got) != len(tenors) {
		t.Fatalf("expected %d forwards, got %d", len(tenors), len(got))
	}
	for i, tenor := range tenors {
		single, err := fx.ForwardRate(0.05, 0.02, tenor, 1.0)
		if err != nil {
			t.Fatalf("ForwardRate(%d) error: %v", tenor, err)
		}
		if got[i] != single {
			t.Fatalf("tenor %d: vector %v != single %v", tenor, got[i], single)
		}
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("tenor %d: got %.13f, want %.13f", tenor, got[i], want[i])
		}
	}
}

func TestForwardRates_EmptyAndInvalid(t *testing.T) {
	t.Parallel()

	got, err := fx.ForwardRates(0.05, 0.02, nil, 1.0)
	if err != nil {
		t.Fatalf("ForwardRates(nil) error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty output, got %v", got)
	}

	if _, err := fx.ForwardRates(0.05, 0.02, []int{30, -60, 90}, 1.0); !errors.Is(err, fx.ErrNegativeTenor) {
		t.Fatalf("negative tenor in vector: got %v, want ErrNegativeTenor", err)
	}
}

func TestCIPHolds_RoundTrip(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		domestic float64
		foreign  float64
		days     int
		spot     float64
	}{
		{"flat year", 0.05, 0.02, 365, 1.0},
		{"short tenor", 0.0525, 0.0315, 30, 1.0865},
		{"negative rates", -0.0075, -0.002, 270, 0.8841},
		{"zero tenor", 0.04, 0.01, 0, 1.31},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			fwd, err := fx.ForwardRate(tc.domestic, tc.foreign, tc.days, tc.spot)
			if err != nil {
				t.Fatalf("ForwardRate error: %v", err)
			}
			ok, err := fx.CIPHolds(fwd, tc.domestic, tc.foreign, tc.days, tc.spot)
			if err != nil {
				t.Fatalf("CIPHolds error: %v", err)
			}
			if !ok {
				t.Fatalf("computed forward %v failed its own CIP check", fwd)
			}
		})
	}
}

func TestCIPHolds_RejectsOffMarketForward(t *testing.T) {
	t.Parallel()

	fwd, err := fx.ForwardRate(0.05, 0.02, 90, 1.0)
	if err != nil {
		t.Fatalf("ForwardRate error: %v", err)
	}

	ok, err := fx.CIPHolds(fwd+0.0001, 0.05, 0.02, 90, 1.0)
	if err != nil {
		t.Fatalf("CIPHolds error: %v", err)
	}
	if ok {
		t.Fatalf("off-market forward %v passed the CIP check", fwd+0.0001)
	}
}

func TestCIPHolds_InvalidInputs(t *testing.T) {
	t.Parallel()

	if _, err := fx.CIPHolds(1.01, 0.05, 0.02, 90, 0); !errors.Is(err, fx.ErrZeroSpotRate) {
		t.Fatalf("zero spot: got %v, want ErrZeroSpotRate", err)
	}
	if _, err := fx.CIPHolds(1.01, 0.05, 0.02, -1, 1.0); !errors.Is(err, fx.ErrNegativeTenor) {
		t.Fatalf("negative tenor: got %v, want ErrNegativeTenor", err)
	}
}
