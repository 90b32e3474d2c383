package bitfield

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Checked functions", func() {
	It("should pass valid arguments through", func() {
		v, err := CheckedModuloWidth(0xABCD, 4, 4)
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(uint32(0xC)))

		v, err = CheckedModuloWidth(0xFFFFFFFF00000000, 32, 32)
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(uint32(0xFFFFFFFF)))

		b, err := CheckedGetBitInPos(0b1010, 3)
		Expect(err).NotTo(HaveOccurred())
		Expect(b).To(Equal(uint8(1)))

		l, err := CheckedLogBase2(1)
		Expect(err).NotTo(HaveOccurred())
		Expect(l).To(BeZero())
	})

	DescribeTable("should reject invalid arguments",
		func(call func() error, arg string) {
			err := call()

			Expect(err).To(MatchError(ErrInvalidArgument))

			var argErr *ArgumentError
			Expect(errors.As(err, &argErr)).To(BeTrue())
			Expect(argErr.Arg).To(Equal(arg))
		},
		Entry("pos of 64", func() error {
			_, err := CheckedModuloWidth(0, 0, 64)
			return err
		}, "pos"),
		Entry("field past bit 63", func() error {
			_, err := CheckedModuloWidth(0, 8, 60)
			return err
		}, "bit_width"),
		Entry("field wider than 32 bits", func() error {
			_, err := CheckedModuloWidth(0, 33, 0)
			return err
		}, "bit_width"),
		Entry("bit pos of 64", func() error {
			_, err := CheckedGetBitInPos(0, 64)
			return err
		}, "pos"),
		Entry("log of 0", func() error {
			_, err := CheckedLogBase2(0)
			return err
		}, "power_of_two"),
		Entry("log of 12", func() error {
			_, err := CheckedLogBase2(12)
			return err
		}, "power_of_two"),
	)

	It("should describe the violation", func() {
		_, err := CheckedModuloWidth(0, 8, 60)
		Expect(err.Error()).To(Equal(
			"bitfield: ModuloWidth: bit_width=8: field at pos 60 exceeds 64 bits"))
	})
})

var _ = Describe("Field", func() {
	It("should partition an address into disjoint fields", func() {
		column := FieldOfSize(1024, 6)
		bank := FieldOfSize(8, column.Next())
		row := FieldOfSize(32768, bank.Next())

		Expect(column).To(Equal(Field{Width: 10, Pos: 6}))
		Expect(bank).To(Equal(Field{Width: 3, Pos: 16}))
		Expect(row).To(Equal(Field{Width: 15, Pos: 19}))
		Expect(FieldsOverlap(column, bank)).To(BeFalse())
		Expect(FieldsOverlap(bank, row)).To(BeFalse())

		addr := uint64(0x1234)<<19 | uint64(5)<<16 | uint64(0x2AB)<<6 | 0x3F

		Expect(column.Extract(addr)).To(Equal(uint32(0x2AB)))
		Expect(bank.Extract(addr)).To(Equal(uint32(5)))
		Expect(row.Extract(addr)).To(Equal(uint32(0x1234)))
	})

	It("should detect overlapping fields", func() {
		Expect(FieldsOverlap(Field{4, 0}, Field{4, 3})).To(BeTrue())
		Expect(FieldsOverlap(Field{0, 3}, Field{4, 0})).To(BeFalse())
	})

	It("should build masks", func() {
		Expect(Field{4, 4}.Mask()).To(Equal(uint64(0xF0)))
		Expect(Field{64, 0}.Mask()).To(Equal(^uint64(0)))
		Expect(Field{4, 64}.Mask()).To(BeZero())
	})

	It("should validate", func() {
		Expect(Field{32, 32}.Validate()).To(Succeed())
		Expect(Field{4, 62}.Validate()).To(MatchError(ErrInvalidArgument))
	})

	It("should print bit ranges", func() {
		Expect(Field{4, 4}.String()).To(Equal("[7:4]"))
		Expect(Field{0, 9}.String()).To(Equal("[empty@9]"))
	})

	It("should print the full range of oversized fields", func() {
		f := Field{Width: math.MaxUint32, Pos: 5}
		Expect(f.String()).To(Equal("[4294967299:5]"))
	})
})
