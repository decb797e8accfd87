package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/tebeka/atexit"

	"github.com/sarchlab/firgold/config"
	"github.com/sarchlab/firgold/fault"
	"github.com/sarchlab/firgold/util/trace"
	"github.com/sarchlab/firgold/verify"
)

const (
	exitOK    = 0
	exitFatal = 1
	exitEmpty = 2
)

func main() {
	atexit.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fir-golden", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "YAML run config; other flags override it")
	label := fs.String("label", "impl0", "implementation under test")
	baseDir := fs.String("base", ".", "directory holding the coefficient and vector files")
	coefs := fs.String("coef", "p0.cfg,p4.cfg,p7.cfg,p9.cfg", "comma-separated coefficient files, in tap order")
	vec := fs.String("vec", "sqr.vec", "input vector file (.wav captures are decoded as PCM)")
	preview := fs.Int("preview", config.DefaultPreview, "number of outputs listed in the summary")
	out := fs.String("out", "", "write the full output vector to this file")
	hex := fs.Bool("hex", false, "write the output vector in 0x notation")
	reportPath := fs.String("report", "", "also save the summary to this file")
	logLevel := fs.String("log-level", "warn", "trace, debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return exitFatal
	}

	level, err := trace.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return exitFatal
	}
	trace.Install(stderr, level)

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg, err := buildConfig(*configPath, set, flagValues{
		label:   *label,
		baseDir: *baseDir,
		coefs:   *coefs,
		vec:     *vec,
		preview: *preview,
		out:     *out,
		hex:     *hex,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return exitFatal
	}

	report, err := verify.Run(cfg)
	switch {
	case fault.IsWarning(err):
		fmt.Fprintln(stderr, "Warning:", err)
		fmt.Fprintln(stderr, "Error: Cannot run FIR. Check coefficient or input vector files.")
		return exitEmpty
	case err != nil:
		fmt.Fprintln(stderr, "Error:", err)
		return exitFatal
	}

	report.WriteReport(stdout)

	if cfg.OutputPath != "" {
		if err := report.SaveOutputsToFile(cfg.OutputPath, cfg.Hex); err != nil {
			fmt.Fprintln(stderr, "Error:", err)
			return exitFatal
		}
		slog.Info("output vector written", "path", cfg.OutputPath)
	}

	if *reportPath != "" {
		if err := report.SaveReportToFile(*reportPath); err != nil {
			fmt.Fprintln(stderr, "Error:", err)
			return exitFatal
		}
	}

	return exitOK
}

type flagValues struct {
	label   string
	baseDir string
	coefs   string
	vec     string
	preview int
	out     string
	hex     bool
}

// buildConfig starts from the YAML config when given, otherwise from the
// flag defaults, and applies every flag the user set explicitly.
func buildConfig(path string, set map[string]bool, v flagValues) (*config.Config, error) {
	if path == "" {
		return config.NewBuilder().
			WithLabel(v.label).
			WithBaseDir(v.baseDir).
			WithCoefficientFiles(splitList(v.coefs)...).
			WithSampleFile(v.vec).
			WithPreview(v.preview).
			WithOutput(v.out).
			WithHex(v.hex).
			Build(), nil
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}

	if set["label"] {
		cfg.Label = v.label
	}

	// -base only applies to files named on the command line.
	if set["coef"] || set["vec"] {
		files := config.NewBuilder().WithBaseDir(v.baseDir)
		if set["coef"] {
			cfg.CoefficientSources = files.WithCoefficientFiles(splitList(v.coefs)...).Build().CoefficientSources
		}
		if set["vec"] {
			cfg.SampleSource = files.WithSampleFile(v.vec).Build().SampleSource
		}
	}

	if set["preview"] {
		cfg.Preview = v.preview
	}

	if set["out"] {
		cfg.OutputPath = v.out
	}

	if set["hex"] {
		cfg.Hex = v.hex
	}

	return cfg, cfg.Validate()
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
