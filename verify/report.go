package verify

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sarchlab/firgold/literal"
)

// Report is the result of a successful run.
type Report struct {
	Label        string
	Coefficients []*big.Int
	Samples      []*big.Int
	Outputs      []*big.Int

	// Preview is the number of leading outputs WriteReport lists.
	Preview int
}

// PreviewLines returns the leading outputs formatted as "y[00] = v".
func (r *Report) PreviewLines() []string {
	n := r.Preview
	if n > len(r.Outputs) {
		n = len(r.Outputs)
	}

	lines := make([]string, 0, n)
	for i := 0; i < n; i++ {
		lines = append(lines, fmt.Sprintf("y[%02d] = %s", i, r.Outputs[i]))
	}

	return lines
}

// WriteReport writes a formatted summary to a writer.
func (r *Report) WriteReport(w io.Writer) {
	separator := strings.Repeat("=", 60)

	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "VALIDATING FIR FILTER IP ON %s\n", r.Label)
	fmt.Fprintln(w, separator)
	fmt.Fprintln(w)

	summary := table.NewWriter()
	summary.SetTitle("FIR Validation Summary")
	summary.AppendRow(table.Row{"Impl", r.Label})
	summary.AppendRow(table.Row{"Total coefficients", len(r.Coefficients)})
	summary.AppendRow(table.Row{"Input samples", len(r.Samples)})
	summary.AppendRow(table.Row{"Output samples", len(r.Outputs)})
	fmt.Fprintln(w, summary.Render())

	if lines := r.PreviewLines(); len(lines) > 0 {
		fmt.Fprintf(w, "\nFirst %d FIR outputs:\n", len(lines))
		for _, line := range lines {
			fmt.Fprintln(w, line)
		}
	}

	fmt.Fprintln(w, "\nFIR signal processing validation completed successfully.")
	fmt.Fprintln(w)
}

// WriteOutputs writes every output value, one per line.
func (r *Report) WriteOutputs(w io.Writer, hex bool) error {
	bw := bufio.NewWriter(w)
	for _, v := range r.Outputs {
		if _, err := fmt.Fprintln(bw, literal.Format(v, hex)); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// SaveOutputsToFile writes the output vector to a file, creating parent
// directories as needed.
func (r *Report) SaveOutputsToFile(filename string, hex bool) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := r.WriteOutputs(file, hex); err != nil {
		file.Close()
		return fmt.Errorf("failed to write output file: %w", err)
	}

	return file.Close()
}

// SaveReportToFile saves the report to a file
func (r *Report) SaveReportToFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	r.WriteReport(file)
	return nil
}
