package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/meenmo/fxlib/fx"
	"github.com/meenmo/fxlib/scenario"
)

func main() {
	scenarioPath := flag.String("scenario", "", "TOML scenario path")
	interpretDays := flag.Int("interpret", 0, "Tenor in days to print detailed interpretations for (0 = skip)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	setupLogger(*debug)

	if *scenarioPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: fwdcurve -scenario <path> [-interpret <days>]")
		os.Exit(2)
	}

	sc, err := scenario.Load(*scenarioPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *scenarioPath).Msg("load scenario")
	}
	log.Debug().
		Float64("spot", sc.Market.SpotRate).
		Float64("domestic", sc.Market.DomesticRate).
		Float64("foreign", sc.Market.ForeignRate).
		Ints("tenor_days", sc.TenorDays).
		Msg("scenario loaded")

	forwards, err := fx.ForwardRates(sc.Market.DomesticRate, sc.Market.ForeignRate, sc.TenorDays, sc.Market.SpotRate)
	if err != nil {
		log.Fatal().Err(err).Msg("compute forward curve")
	}

	printCurve(sc, forwards)

	if len(sc.Quotes) > 0 {
		printQuoteChecks(sc)
	}

	if *interpretDays > 0 {
		if err := printInterpretations(sc, *interpretDays); err != nil {
			log.Fatal().Err(err).Int("tenor_days", *interpretDays).Msg("interpret tenor")
		}
	}
}

func setupLogger(debug bool) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

func printCurve(sc *scenario.Scenario, forwards []float64) {
	fmt.Printf("spot %.6f  domestic %.4f%%  foreign %.4f%%\n\n",
		sc.Market.SpotRate, sc.Market.DomesticRate*100, sc.Market.ForeignRate*100)
	fmt.Printf("%8s %12s %10s %12s %8s\n", "days", "forward", "prem/disc", "annualised", "points")

	for i, days := range sc.TenorDays {
		in, err := fx.NewInterpreter(forwards[i], sc.Market.SpotRate, days)
		if err != nil {
			log.Fatal().Err(err).Int("tenor_days", days).Msg("interpret curve point")
		}

		annualised := "n/a"
		if ann, err := in.AnnualisedPremiumDiscount(); err == nil {
			annualised = fmt.Sprintf("%.4f", ann)
		}
		fmt.Printf("%8d %12.6f %10.4f %12s %8.0f\n",
			days, forwards[i], in.ForwardPremiumDiscount(), annualised, in.ForwardPoints())
	}
}

func printQuoteChecks(sc *scenario.Scenario) {
	fmt.Printf("\nquoted forwards vs CIP (tolerance 1e-10):\n")
	for _, q := range sc.Quotes {
		holds, err := fx.CIPHolds(q.ForwardRate, sc.Market.DomesticRate, sc.Market.ForeignRate, q.TenorDays, sc.Market.SpotRate)
		if err != nil {
			log.Fatal().Err(err).Int("tenor_days", q.TenorDays).Msg("check quote")
		}
		verdict := "off-market"
		if holds {
			verdict = "holds"
		}
		fair, err := fx.ForwardRate(sc.Market.DomesticRate, sc.Market.ForeignRate, q.TenorDays, sc.Market.SpotRate)
		if err != nil {
			log.Fatal().Err(err).Int("tenor_days", q.TenorDays).Msg("fair forward")
		}
		fmt.Printf("%8d %12.6f  fair %.6f  %s\n", q.TenorDays, q.ForwardRate, fair, verdict)
	}
}

func printInterpretations(sc *scenario.Scenario, days int) error {
	fwd, err := fx.ForwardRate(sc.Market.DomesticRate, sc.Market.ForeignRate, days, sc.Market.SpotRate)
	if err != nil {
		return err
	}
	in, err := fx.NewInterpreter(fwd, sc.Market.SpotRate, days)
	if err != nil {
		return err
	}

	summary := in.Summary()
	fmt.Printf("\n%dd forward %.6f (%s, %.0f points):\n", days, fwd, summary.Direction, summary.ForwardPoints)
	for _, line := range in.DetailedInterpretations() {
		fmt.Printf("  - %s\n", line)
	}
	return nil
}
