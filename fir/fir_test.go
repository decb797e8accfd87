package fir_test

import (
	"math/big"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/firgold/fir"
	"github.com/sarchlab/firgold/util/valgen"
)

func seq(vs ...int64) []*big.Int {
	out := make([]*big.Int, len(vs))
	for i, v := range vs {
		out[i] = big.NewInt(v)
	}
	return out
}

func ints(vs []*big.Int) []int64 {
	out := make([]int64, len(vs))
	for i, v := range vs {
		out[i] = v.Int64()
	}
	return out
}

var _ = Describe("Convolve", func() {
	It("should treat samples before index 0 as zero", func() {
		out := fir.Convolve(seq(10, 20, 30), seq(1, 2))
		Expect(ints(out)).To(Equal([]int64{10, 40, 70}))
	})

	It("should filter the loaded example vectors", func() {
		out := fir.Convolve(seq(1, 2, 3), seq(16, -3))
		Expect(ints(out)).To(Equal([]int64{16, 29, 42}))
	})

	It("should be the identity for a unit tap", func() {
		samples := valgen.Take(valgen.MakeSquareGen(100, -100, 3), 32)
		Expect(ints(fir.Convolve(samples, seq(1)))).To(Equal(ints(samples)))
	})

	It("should produce zeros for a zero tap", func() {
		samples := valgen.Take(valgen.MakeIncreasingGen(0), 16)
		out := fir.Convolve(samples, seq(0))

		Expect(out).To(HaveLen(16))
		for _, v := range out {
			Expect(v.Sign()).To(Equal(0))
		}
	})

	It("should keep the sample count for any tap count", func() {
		for taps := 1; taps <= 12; taps++ {
			h := valgen.Take(valgen.MakeConstGen(1), taps)
			out := fir.Convolve(valgen.Take(valgen.MakeConstGen(2), 5), h)

			Expect(out).To(HaveLen(5))
		}
	})

	It("should use fewer terms while taps outnumber samples", func() {
		out := fir.Convolve(seq(1, 1, 1), seq(1, 1, 1, 1, 1))
		Expect(ints(out)).To(Equal([]int64{1, 2, 3}))
	})

	It("should return the taps as the impulse response", func() {
		taps := seq(3, -1, 4, 1, -5)
		out := fir.Convolve(valgen.Take(valgen.MakeImpulseGen(1), 8), taps)

		Expect(ints(out)).To(Equal([]int64{3, -1, 4, 1, -5, 0, 0, 0}))
	})

	It("should give zeros for empty taps", func() {
		out := fir.Convolve(seq(5, 6), nil)
		Expect(ints(out)).To(Equal([]int64{0, 0}))
	})

	It("should give an empty output for empty samples", func() {
		out := fir.Convolve(nil, seq(1, 2))
		Expect(out).NotTo(BeNil())
		Expect(out).To(BeEmpty())
	})

	It("should not overflow 64 bits", func() {
		x := new(big.Int).Lsh(big.NewInt(1), 62)
		out := fir.Convolve([]*big.Int{x, x}, []*big.Int{x, x})

		want := new(big.Int).Lsh(big.NewInt(1), 125)
		Expect(out[0].Cmp(new(big.Int).Lsh(big.NewInt(1), 124))).To(Equal(0))
		Expect(out[1].Cmp(want)).To(Equal(0))
	})

	It("should not modify its inputs", func() {
		samples := seq(1, 2, 3)
		taps := seq(4, 5)
		fir.Convolve(samples, taps)

		Expect(ints(samples)).To(Equal([]int64{1, 2, 3}))
		Expect(ints(taps)).To(Equal([]int64{4, 5}))
	})

	It("should be deterministic", func() {
		samples := valgen.Take(valgen.MakeSquareGen(7, -3, 2), 20)
		taps := seq(2, 0, -1, 3)

		Expect(ints(fir.Convolve(samples, taps))).To(Equal(ints(fir.Convolve(samples, taps))))
	})
})

var _ = Describe("Filter", func() {
	It("should copy its taps", func() {
		taps := seq(1, 2)
		f := fir.NewFilter(taps)
		taps[0].SetInt64(99)

		Expect(f.Len()).To(Equal(2))
		Expect(ints(f.Apply(seq(1, 0)))).To(Equal([]int64{1, 2}))
	})

	It("should return fresh output values", func() {
		samples := seq(5)
		out := fir.NewFilter(seq(1)).Apply(samples)
		out[0].SetInt64(0)

		Expect(samples[0].Int64()).To(Equal(int64(5)))
	})
})
