package space_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/vexdse/space"
)

var _ = Describe("ParameterRange", func() {
	Describe("Len", func() {
		It("should count exact multiples of the step", func() {
			r := space.ParameterRange{Min: 2, Step: 2, Max: 8}
			Expect(r.Len()).To(Equal(3))
		})

		It("should round a partial final step up", func() {
			r := space.ParameterRange{Min: 0, Step: 3, Max: 10}
			Expect(r.Len()).To(Equal(4))
		})

		It("should not overflow with a huge step", func() {
			r := space.ParameterRange{Min: 0, Step: math.MaxInt, Max: math.MaxInt}
			Expect(r.Len()).To(Equal(1))
			Expect(r.Values()).To(Equal([]int{0}))
		})

		It("should count a range reaching the top of int", func() {
			r := space.ParameterRange{Min: math.MaxInt - 5, Step: 2, Max: math.MaxInt}
			Expect(r.Len()).To(Equal(3))
		})

		It("should be zero when min equals max", func() {
			r := space.ParameterRange{Min: 5, Step: 1, Max: 5}
			Expect(r.Len()).To(Equal(0))
		})

		It("should be zero when min exceeds max", func() {
			r := space.ParameterRange{Min: 9, Step: 1, Max: 5}
			Expect(r.Len()).To(Equal(0))
		})
	})

	Describe("Values", func() {
		It("should generate the default B0 sequence", func() {
			b0 := space.DefaultRanges()[space.B0]
			Expect(b0.Values()).To(Equal([]int{2, 6, 10, 14, 18, 22, 26, 30}))
		})

		It("should stop before max", func() {
			r := space.ParameterRange{Min: 32, Step: 32, Max: 256}
			Expect(r.Values()).To(Equal([]int{32, 64, 96, 128, 160, 192, 224}))
		})

		It("should be empty for an inverted range", func() {
			r := space.ParameterRange{Min: 8, Step: 2, Max: 2}
			Expect(r.Values()).To(BeEmpty())
		})
	})

	Describe("Validate", func() {
		It("should accept an inverted range", func() {
			r := space.ParameterRange{Min: 8, Step: 2, Max: 2}
			Expect(r.Validate()).To(Succeed())
		})

		It("should reject a zero step", func() {
			r := space.ParameterRange{Min: 0, Step: 0, Max: 4}
			Expect(errors.Is(r.Validate(), space.ErrInvalidRange)).To(BeTrue())
		})

		It("should reject a negative step", func() {
			r := space.ParameterRange{Min: 0, Step: -1, Max: 4}
			Expect(errors.Is(r.Validate(), space.ErrInvalidRange)).To(BeTrue())
		})

		It("should reject a negative minimum", func() {
			r := space.ParameterRange{Min: -2, Step: 1, Max: 4}
			Expect(errors.Is(r.Validate(), space.ErrInvalidRange)).To(BeTrue())
		})
	})
})

var _ = Describe("Ranges", func() {
	It("should count the default design space", func() {
		// 15 issue widths, 3 values for each of the six unit counts,
		// 7 GPR sizes, 8 branch register sizes.
		Expect(space.DefaultRanges().Count()).To(Equal(15 * 729 * 7 * 8))
	})

	It("should count zero points when one range is empty", func() {
		ranges := space.DefaultRanges()
		ranges[space.Mpy] = space.ParameterRange{Min: 4, Step: 1, Max: 4}
		Expect(ranges.Empty()).To(BeTrue())
		Expect(ranges.Count()).To(Equal(0))
	})

	It("should name the offending parameter", func() {
		ranges := space.DefaultRanges()
		ranges[space.R0].Step = 0
		err := ranges.Validate()
		Expect(err).To(MatchError(ContainSubstring("R0")))
		Expect(errors.Is(err, space.ErrInvalidRange)).To(BeTrue())
	})
})

var _ = Describe("Param", func() {
	It("should list parameters in declaration order", func() {
		names := make([]string, 0, space.NumParams)
		for _, p := range space.Params() {
			names = append(names, p.String())
		}
		Expect(names).To(Equal([]string{
			"IssueWidth", "MemLoad", "MemStore", "MemPft",
			"Alu", "Mpy", "Memory", "R0", "B0",
		}))
	})

	It("should parse names case-insensitively", func() {
		p, err := space.ParseParam("memstore")
		Expect(err).NotTo(HaveOccurred())
		Expect(p).To(Equal(space.MemStore))
	})

	It("should reject unknown names", func() {
		_, err := space.ParseParam("Cache")
		Expect(errors.Is(err, space.ErrUnknownParam)).To(BeTrue())
	})
})

var _ = Describe("Point", func() {
	It("should format as space-separated integers", func() {
		p := space.Point{4, 1, 1, 1, 4, 2, 1, 64, 8}
		Expect(p.String()).To(Equal("4 1 1 1 4 2 1 64 8"))
		Expect(string(p.AppendTo([]byte("> ")))).To(Equal("> 4 1 1 1 4 2 1 64 8"))
	})

	It("should expose fields by name", func() {
		p := space.Point{4, 1, 2, 3, 5, 6, 7, 64, 8}
		Expect(p.IssueWidth()).To(Equal(4))
		Expect(p.MemLoad()).To(Equal(1))
		Expect(p.MemStore()).To(Equal(2))
		Expect(p.MemPft()).To(Equal(3))
		Expect(p.Alu()).To(Equal(5))
		Expect(p.Mpy()).To(Equal(6))
		Expect(p.Memory()).To(Equal(7))
		Expect(p.R0()).To(Equal(64))
		Expect(p.B0()).To(Equal(8))
		Expect(p.Get(space.R0)).To(Equal(64))
	})

	Describe("ParsePoint", func() {
		It("should parse nine integers", func() {
			p, err := space.ParsePoint([]string{"4", "1", "1", "1", "4", "2", "1", "64", "8"})
			Expect(err).NotTo(HaveOccurred())
			Expect(p).To(Equal(space.Point{4, 1, 1, 1, 4, 2, 1, 64, 8}))
		})

		It("should reject the wrong number of values", func() {
			_, err := space.ParsePoint([]string{"4", "1"})
			var countErr *space.ArgCountError
			Expect(errors.As(err, &countErr)).To(BeTrue())
			Expect(countErr.Got).To(Equal(2))
		})

		It("should name the parameter of a malformed value", func() {
			_, err := space.ParsePoint([]string{"4", "1", "1", "1", "x", "2", "1", "64", "8"})
			var parseErr *space.ParseError
			Expect(errors.As(err, &parseErr)).To(BeTrue())
			Expect(parseErr.Param).To(Equal(space.Alu))
		})
	})
})
