package signal_test

import (
	"math/big"
	"os"

	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/firgold/fault"
	"github.com/sarchlab/firgold/signal"
	"github.com/sarchlab/firgold/source"
)

func ints(vs []*big.Int) []int64 {
	out := make([]int64, len(vs))
	for i, v := range vs {
		out[i] = v.Int64()
	}
	return out
}

var _ = Describe("Load", func() {
	It("should skip blank and comment lines", func() {
		samples, err := signal.Load(source.Text("sqr.vec", "1\n0x2\n\n#comment\n3\n"))

		Expect(err).NotTo(HaveOccurred())
		Expect(ints(samples)).To(Equal([]int64{1, 2, 3}))
	})

	It("should trim surrounding whitespace", func() {
		samples, err := signal.Load(source.Text("sqr.vec", "  -7 \r\n\t0XfF\n   # indented comment\n"))

		Expect(err).NotTo(HaveOccurred())
		Expect(ints(samples)).To(Equal([]int64{-7, 255}))
	})

	It("should fail on a malformed line with its location", func() {
		samples, err := signal.Load(source.Text("sqr.vec", "1\n2\n3 4\n"))

		Expect(samples).To(BeNil())
		Expect(fault.Is(err, fault.MalformedLiteral)).To(BeTrue())
		Expect(err).To(MatchError(ContainSubstring("sqr.vec line 3")))
	})

	It("should warn on an empty vector", func() {
		samples, err := signal.Load(source.Text("sqr.vec", "# nothing here\n\n"))

		Expect(samples).To(BeEmpty())
		Expect(fault.IsWarning(err)).To(BeTrue())
	})

	It("should not open a missing source", func() {
		mockCtrl := gomock.NewController(GinkgoT())
		defer mockCtrl.Finish()

		src := NewMockSource(mockCtrl)
		src.EXPECT().Name().Return("sqr.vec").AnyTimes()
		src.EXPECT().Stat().Return(os.ErrNotExist)

		samples, err := signal.Load(src)

		Expect(samples).To(BeNil())
		Expect(fault.Is(err, fault.SourceNotFound)).To(BeTrue())
	})

	It("should fail on a nonexistent path", func() {
		_, err := signal.Load(source.File("/no/such/dir/sqr.vec"))
		Expect(fault.Is(err, fault.SourceNotFound)).To(BeTrue())
	})
})

var _ = Describe("LoadAuto", func() {
	It("should use the text loader for vector files", func() {
		samples, err := signal.LoadAuto(source.Text("sqr.vec", "5\n"))

		Expect(err).NotTo(HaveOccurred())
		Expect(ints(samples)).To(Equal([]int64{5}))
	})

	It("should use the WAV loader by suffix", func() {
		_, err := signal.LoadAuto(source.Text("capture.WAV", "5\n"))

		Expect(fault.Is(err, fault.MalformedLiteral)).To(BeTrue())
		Expect(err).To(MatchError(ContainSubstring("not a valid WAV file")))
	})
})
