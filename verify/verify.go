// Package verify runs the FIR golden model end to end.
//
// A run has three stages:
//
//  1. Source check: every coefficient and sample source must exist before
//     anything is read.
//  2. Load: the coefficient banks are parsed and concatenated in order, and
//     the input vector is parsed.
//  3. Filter: the input vector is convolved with the taps using exact
//     integer arithmetic.
//
// The result is a Report holding the expected output vector, ready to be
// compared with an RTL or hardware trace.
//
// # Failures
//
// Run returns a fault.Error. SourceNotFound and MalformedLiteral are fatal
// and never come with a report. EmptyResult means a loader found nothing to
// work with; Run stops before filtering and the caller should exit
// gracefully.
//
// # Usage Example
//
//	cfg := config.DefaultBuilder().WithBaseDir("bench").Build()
//	report, err := verify.Run(cfg)
//	if fault.IsWarning(err) {
//	    fmt.Println("Cannot run FIR:", err)
//	    return
//	}
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report.WriteReport(os.Stdout)
package verify

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/sarchlab/firgold/coef"
	"github.com/sarchlab/firgold/config"
	"github.com/sarchlab/firgold/fault"
	"github.com/sarchlab/firgold/fir"
	"github.com/sarchlab/firgold/signal"
	"github.com/sarchlab/firgold/source"
)

// Run executes one validation run.
func Run(cfg *config.Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	all := append(append([]source.Source(nil), cfg.CoefficientSources...), cfg.SampleSource)
	if err := source.CheckAll(all...); err != nil {
		return nil, err
	}

	taps, coefErr := coef.Load(cfg.CoefficientSources...)
	if coefErr != nil && !fault.IsWarning(coefErr) {
		return nil, errors.WithMessage(coefErr, "loading coefficients")
	}

	samples, sampleErr := signal.LoadAuto(cfg.SampleSource)
	if sampleErr != nil && !fault.IsWarning(sampleErr) {
		return nil, errors.WithMessage(sampleErr, "loading input vector")
	}

	if warn := firstWarning(coefErr, sampleErr); warn != nil {
		return nil, warn
	}

	outputs := fir.Convolve(samples, taps)

	slog.Info("golden model computed",
		"impl", cfg.Label,
		"taps", len(taps),
		"samples", len(samples),
		"outputs", len(outputs),
	)

	return &Report{
		Label:        cfg.Label,
		Coefficients: taps,
		Samples:      samples,
		Outputs:      outputs,
		Preview:      cfg.Preview,
	}, nil
}

// firstWarning logs every warning and returns the first.
func firstWarning(errs ...error) error {
	var first error

	for _, err := range errs {
		if err == nil {
			continue
		}

		slog.Warn("empty input", "error", err)

		if first == nil {
			first = err
		}
	}

	return first
}
