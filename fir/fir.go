// Package fir is the golden-model FIR engine.
//
// The filter is causal and direct-form:
//
//	y[n] = sum over k of h[k] * x[n-k],  for n-k >= 0
//
// Samples before index 0 are treated as zero and the output has exactly one
// value per input sample. Arithmetic is exact: no fixed-point width,
// saturation or rounding is modeled.
package fir

import "math/big"

// Filter is an immutable set of taps.
type Filter struct {
	taps []*big.Int
}

// NewFilter copies taps into a Filter. Tap 0 multiplies the newest sample.
func NewFilter(taps []*big.Int) *Filter {
	f := &Filter{taps: make([]*big.Int, len(taps))}
	for i, t := range taps {
		f.taps[i] = new(big.Int).Set(t)
	}

	return f
}

// Len returns the number of taps.
func (f *Filter) Len() int {
	return len(f.taps)
}

// Apply filters samples and returns a new output slice of the same length.
// With no taps every output is zero.
func (f *Filter) Apply(samples []*big.Int) []*big.Int {
	out := make([]*big.Int, len(samples))
	prod := new(big.Int)

	for n := range samples {
		acc := new(big.Int)
		for k, h := range f.taps {
			if n-k < 0 {
				break
			}
			acc.Add(acc, prod.Mul(h, samples[n-k]))
		}
		out[n] = acc
	}

	return out
}

// Convolve computes the causal convolution of samples with taps.
func Convolve(samples, taps []*big.Int) []*big.Int {
	return NewFilter(taps).Apply(samples)
}
