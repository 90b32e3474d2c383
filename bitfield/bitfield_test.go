package bitfield

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func maskedField(addr uint64, bitWidth, pos uint32) uint32 {
	return uint32((addr >> pos) & ((uint64(1) << bitWidth) - 1))
}

var _ = Describe("ModuloWidth", func() {
	It("should extract nibbles", func() {
		Expect(ModuloWidth(0xABCD, 4, 0)).To(Equal(uint32(0xD)))
		Expect(ModuloWidth(0xABCD, 4, 4)).To(Equal(uint32(0xC)))
		Expect(ModuloWidth(0xABCD, 4, 8)).To(Equal(uint32(0xB)))
		Expect(ModuloWidth(0xABCD, 4, 12)).To(Equal(uint32(0xA)))
		Expect(ModuloWidth(0xABCD, 8, 4)).To(Equal(uint32(0xBC)))
	})

	It("should return 0 for an empty field", func() {
		for pos := uint32(0); pos < 64; pos++ {
			Expect(ModuloWidth(0xFFFFFFFFFFFFFFFF, 0, pos)).To(BeZero())
		}
	})

	It("should return 0 when pos is beyond the address", func() {
		Expect(ModuloWidth(0xFFFFFFFFFFFFFFFF, 4, 64)).To(BeZero())
		Expect(ModuloWidth(0xFFFFFFFFFFFFFFFF, 4, 100)).To(BeZero())
	})

	It("should extract the top bits", func() {
		Expect(ModuloWidth(0xF000000000000000, 4, 60)).To(Equal(uint32(0xF)))
		Expect(ModuloWidth(0x8000000000000000, 1, 63)).To(Equal(uint32(1)))
	})

	It("should truncate wide fields to 32 bits", func() {
		Expect(ModuloWidth(0x123456789ABCDEF0, 64, 0)).
			To(Equal(uint32(0x9ABCDEF0)))
		Expect(ModuloWidth(0x123456789ABCDEF0, 40, 4)).
			To(Equal(uint32(0x89ABCDEF)))
	})

	It("should match shift and mask for random inputs", func() {
		r := rand.New(rand.NewSource(1))

		for i := 0; i < 10000; i++ {
			addr := r.Uint64()
			bitWidth := uint32(r.Intn(33))
			pos := uint32(r.Intn(int(64 - bitWidth + 1)))
			if pos == 64 {
				continue
			}

			Expect(ModuloWidth(addr, bitWidth, pos)).
				To(Equal(maskedField(addr, bitWidth, pos)),
					"addr=%#x width=%d pos=%d", addr, bitWidth, pos)
		}
	})

	It("should not modify the caller's address", func() {
		addr := uint64(0xABCD)
		ModuloWidth(addr, 4, 4)
		Expect(addr).To(Equal(uint64(0xABCD)))
	})
})

var _ = Describe("GetBitInPos", func() {
	It("should return individual bits", func() {
		Expect(GetBitInPos(0b1010, 0)).To(Equal(uint8(0)))
		Expect(GetBitInPos(0b1010, 1)).To(Equal(uint8(1)))
		Expect(GetBitInPos(0b1010, 2)).To(Equal(uint8(0)))
		Expect(GetBitInPos(0b1010, 3)).To(Equal(uint8(1)))
		Expect(GetBitInPos(1<<63, 63)).To(Equal(uint8(1)))
	})

	It("should return 0 beyond bit 63", func() {
		Expect(GetBitInPos(0xFFFFFFFFFFFFFFFF, 64)).To(BeZero())
		Expect(GetBitInPos(0xFFFFFFFFFFFFFFFF, 1000)).To(BeZero())
	})

	It("should agree with shift and mask", func() {
		r := rand.New(rand.NewSource(2))

		for i := 0; i < 1000; i++ {
			bits := r.Uint64()
			for pos := uint32(0); pos < 64; pos++ {
				b := GetBitInPos(bits, pos)
				Expect(b).To(BeNumerically("<=", 1))
				Expect(uint64(b)).To(Equal((bits >> pos) & 1))
			}
		}
	})
})

var _ = Describe("LogBase2", func() {
	It("should compute exact logarithms", func() {
		Expect(LogBase2(1)).To(Equal(uint32(0)))
		Expect(LogBase2(2)).To(Equal(uint32(1)))
		Expect(LogBase2(256)).To(Equal(uint32(8)))
		Expect(LogBase2(1024)).To(Equal(uint32(10)))

		for k := uint32(0); k < 32; k++ {
			Expect(LogBase2(1 << k)).To(Equal(k))
		}
	})

	It("should return 0 for 0", func() {
		Expect(LogBase2(0)).To(BeZero())
	})

	It("should round down for other values", func() {
		Expect(LogBase2(3)).To(Equal(uint32(1)))
		Expect(LogBase2(1000)).To(Equal(uint32(9)))
		Expect(LogBase2(0xFFFFFFFF)).To(Equal(uint32(31)))
	})
})
