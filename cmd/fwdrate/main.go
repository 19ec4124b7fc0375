package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/meenmo/fxlib/fx"
)

type rateInput struct {
	TaskID       string  `json:"task_id,omitempty"`
	DomesticRate float64 `json:"domestic_rate"`
	ForeignRate  float64 `json:"foreign_rate"`
	SpotRate     float64 `json:"spot_rate"`
	// DaysToMaturity computes a single forward; TenorDays computes a
	// vector. Exactly one of the two must be set.
	DaysToMaturity *int  `json:"days_to_maturity,omitempty"`
	TenorDays      []int `json:"tenor_days,omitempty"`
	// QuotedForward, when present, is checked against the CIP payoff
	// equality instead of deriving the forward only.
	QuotedForward *float64 `json:"quoted_forward,omitempty"`
}

type rateOutput struct {
	TaskID       string    `json:"task_id,omitempty"`
	SpotRate     float64   `json:"spot_rate,omitempty"`
	ForwardRate  *float64  `json:"forward_rate,omitempty"`
	ForwardRates []float64 `json:"forward_rates,omitempty"`
	CIPHolds     *bool     `json:"cip_holds,omitempty"`
	Error        string    `json:"error,omitempty"`
}

func main() {
	inputPath := flag.String("input", "", "JSON input path (reads stdin if omitted)")
	help := flag.Bool("h", false, "Show help")
	flag.BoolVar(help, "help", false, "Show help")
	flag.Parse()

	if *help {
		fmt.Fprintln(os.Stderr, "Usage: fwdrate -input <path>")
		fmt.Fprintln(os.Stderr, "Compute CIP-implied FX forward rates and check quoted forwards.")
		return
	}

	path := strings.TrimSpace(*inputPath)
	if path == "" {
		if stat, err := os.Stdin.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
			fmt.Fprintln(os.Stderr, "Usage: fwdrate -input <path>")
			os.Exit(2)
		}
	}

	raw, err := readInput(path)
	if err != nil {
		exitError(fmt.Sprintf("read input: %v", err))
	}

	inputs, isArray, err := parseInputs(raw)
	if err != nil {
		exitError(fmt.Sprintf("parse JSON: %v", err))
	}

	hadError := false
	outputs := make([]rateOutput, 0, len(inputs))
	for _, in := range inputs {
		out, err := process(in)
		if err != nil {
			hadError = true
			outputs = append(outputs, rateOutput{TaskID: in.TaskID, Error: err.Error()})
			continue
		}
		outputs = append(outputs, *out)
	}

	if isArray {
		b, _ := json.Marshal(outputs)
		fmt.Println(string(b))
	} else {
		b, _ := json.Marshal(outputs[0])
		fmt.Println(string(b))
	}

	if hadError {
		os.Exit(1)
	}
}

func process(in rateInput) (*rateOutput, error) {
	if in.DaysToMaturity == nil && len(in.TenorDays) == 0 {
		return nil, fmt.Errorf("either days_to_maturity or tenor_days is required")
	}
	if in.DaysToMaturity != nil && len(in.TenorDays) > 0 {
		return nil, fmt.Errorf("days_to_maturity and tenor_days are mutually exclusive")
	}

	out := rateOutput{TaskID: in.TaskID, SpotRate: in.SpotRate}

	if len(in.TenorDays) > 0 {
		forwards, err := fx.ForwardRates(in.DomesticRate, in.ForeignRate, in.TenorDays, in.SpotRate)
		if err != nil {
			return nil, err
		}
		out.ForwardRates = forwards
		return &out, nil
	}

	days := *in.DaysToMaturity
	fwd, err := fx.ForwardRate(in.DomesticRate, in.ForeignRate, days, in.SpotRate)
	if err != nil {
		return nil, err
	}
	out.ForwardRate = &fwd

	if in.QuotedForward != nil {
		holds, err := fx.CIPHolds(*in.QuotedForward, in.DomesticRate, in.ForeignRate, days, in.SpotRate)
		if err != nil {
			return nil, err
		}
		out.CIPHolds = &holds
	}
	return &out, nil
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func parseInputs(raw []byte) ([]rateInput, bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, false, fmt.Errorf("empty input")
	}

	if trimmed[0] == '[' {
		var inputs []rateInput
		if err := json.Unmarshal(trimmed, &inputs); err != nil {
			return nil, true, err
		}
		if len(inputs) == 0 {
			return nil, true, fmt.Errorf("empty input array")
		}
		return inputs, true, nil
	}

	var in rateInput
	if err := json.Unmarshal(trimmed, &in); err != nil {
		return nil, false, err
	}
	return []rateInput{in}, false, nil
}

func exitError(msg string) {
	b, _ := json.Marshal(rateOutput{Error: msg})
	fmt.Println(string(b))
	os.Exit(1)
}
