// Package coef loads FIR tap values from coefficient definition files.
//
// Each record line reads "index,enable,value". Only records whose enable
// field is exactly 1 contribute a tap, and taps keep the order in which
// they appear. The index field is never used for ordering.
package coef

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

// Record is one parsed coefficient line. Value is nil for disabled records,
// whose value field is not parsed.
type Record struct {
	Index   string
	Enabled bool
	Value   *big.Int
}

// Load reads every source and concatenates their enabled taps in the given
// order. All sources are checked for existence before any is read.
//
// If no source contributes a tap, Load returns an empty slice together with
// an EmptyResult error.
func Load(srcs ...source.Source) ([]*big.Int, error) {
	texts, err := source.ReadAllText(srcs...)
	if err != nil {
		return nil, err
	}

	perSource := make([][]*big.Int, len(srcs))
	for i, src := range srcs {
		taps, err := Parse(src.Name(), texts[i])
		if err != nil {
			return nil, err
		}

		slog.Debug("coefficients loaded", "source", src.Name(), "taps", len(taps))
		perSource[i] = taps
	}

	taps := Concat(perSource...)
	if len(taps) == 0 {
		return taps, fault.Empty(sourceNames(srcs), "no enabled coefficients found")
	}

	return taps, nil
}

// Parse extracts the enabled taps from the text of one source.
func Parse(name, text string) ([]*big.Int, error) {
	taps := []*big.Int{}

	for i, raw := range source.Lines(text) {
		rec, ok, err := ParseLine(raw)
		if err != nil {
			return nil, errors.WithMessage(fault.At(err, name, i+1), "coefficient record")
		}

		if !ok {
			trace.Trace("coefficient line skipped", "source", name, "line", i+1)
			continue
		}

		if !rec.Enabled {
			continue
		}

		taps = append(taps, rec.Value)
	}

	return taps, nil
}

// ParseLine parses one coefficient line. ok is false for blank, comment,
// header and short lines, which are skipped rather than rejected.
func ParseLine(raw string) (rec Record, ok bool, err error) {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "#") ||
		strings.Contains(strings.ToLower(line), "coef") {
		return Record{}, false, nil
	}

	fields := strings.Split(line, ",")
	if len(fields) < 3 {
		return Record{}, false, nil
	}

	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	en, err := literal.ParseDecimal(fields[1])
	if err != nil {
		return Record{}, false, err
	}

	rec = Record{
		Index:   fields[0],
		Enabled: en.IsInt64() && en.Int64() == 1,
	}
	if !rec.Enabled {
		return rec, true, nil
	}

	rec.Value, err = literal.Parse(fields[2])
	if err != nil {
		return Record{}, false, err
	}

	return rec, true, nil
}

// Concat joins tap sequences in order.
func Concat(seqs ...[]*big.Int) []*big.Int {
	n := 0
	for _, s := range seqs {
		n += len(s)
	}

	out := make([]*big.Int, 0, n)
	for _, s := range seqs {
		out = append(out, s...)
	}

	return out
}

func sourceNames(srcs []source.Source) string {
	names := make([]string, len(srcs))
	for i, src := range srcs {
		names[i] = src.Name()
	}

	return strings.Join(names, ", ")
}
