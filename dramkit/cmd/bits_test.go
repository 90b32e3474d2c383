package cmd

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/dramkit/bitfield"
)

var _ = Describe("Bit commands", func() {
	It("should extract fields", func() {
		out, err := run("field", "--strict=false", "0xABCD", "4", "4")

		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("12 0xc\n"))
	})

	It("should reject bad fields in strict mode", func() {
		_, err := run("field", "--strict", "0xABCD", "8", "60")

		Expect(err).To(MatchError(bitfield.ErrInvalidArgument))
	})

	It("should reject unparsable numbers", func() {
		_, err := run("field", "--strict=false", "zz", "4", "4")

		Expect(err).To(MatchError(ContainSubstring("invalid address")))
	})

	It("should print bits", func() {
		out, err := run("bit", "--strict=false", "0b1010", "1")

		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("1\n"))
	})

	It("should saturate bit positions unless strict", func() {
		out, err := run("bit", "--strict=false", "0xFF", "70")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("0\n"))

		_, err = run("bit", "--strict", "0xFF", "70")
		Expect(err).To(MatchError(bitfield.ErrInvalidArgument))
	})

	It("should compute logarithms", func() {
		out, err := run("log2", "--strict=false", "256")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("8\n"))

		out, err = run("log2", "--strict=false", "0")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("0\n"))

		_, err = run("log2", "--strict", "0")
		Expect(err).To(MatchError(bitfield.ErrInvalidArgument))
	})
})
