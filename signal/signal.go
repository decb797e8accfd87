// Package signal loads the input sample vector fed to the filter.
package signal

import (
	"log/slog"
	"math/big"
	"strings"

	"github.com/pkg/errors"

	"github.com/sarchlab/firgold/fault"
	"github.com/sarchlab/firgold/literal"
	"github.com/sarchlab/firgold/source"
	"github.com/sarchlab/firgold/util/trace"
)

// Load reads one sample per line from src. Blank lines and lines starting
// with '#' are ignored. An empty result comes back with an EmptyResult
// error.
func Load(src source.Source) ([]*big.Int, error) {
	texts, err := source.ReadAllText(src)
	if err != nil {
		return nil, err
	}

	samples, err := Parse(src.Name(), texts[0])
	if err != nil {
		return nil, err
	}

	slog.Debug("samples loaded", "source", src.Name(), "samples", len(samples))

	if len(samples) == 0 {
		return samples, fault.Empty(src.Name(), "input vector is empty")
	}

	return samples, nil
}

// Parse extracts the samples from the text of one source.
func Parse(name, text string) ([]*big.Int, error) {
	samples := []*big.Int{}

	for i, raw := range source.Lines(text) {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			trace.Trace("sample line skipped", "source", name, "line", i+1)
			continue
		}

		v, err := literal.Parse(line)
		if err != nil {
			return nil, errors.WithMessage(fault.At(err, name, i+1), "sample")
		}

		samples = append(samples, v)
	}

	return samples, nil
}

// LoadAuto loads WAV captures by name suffix and text vectors otherwise.
func LoadAuto(src source.Source) ([]*big.Int, error) {
	if strings.HasSuffix(strings.ToLower(src.Name()), ".wav") {
		return LoadWAV(src, 0)
	}

	return Load(src)
}
