// Package bitfield extracts and classifies bit fields of 64-bit addresses.
//
// The functions in this package never fail. Degenerate inputs produce a
// numeric answer, matching the behavior that existing address-decoding code
// relies on. Use the Checked variants when the caller wants the preconditions
// enforced.
package bitfield

// ModuloWidth returns the bitWidth bits of addr that start at bit pos, where
// bit 0 is the least significant bit. The field is right aligned in the
// result and truncated to 32 bits.
//
// A bitWidth of 0 returns 0. A pos of 64 or more returns 0, as the field is
// shifted out entirely.
func ModuloWidth(addr uint64, bitWidth, pos uint32) uint32 {
	addr >>= pos
	store := addr
	addr >>= bitWidth
	addr <<= bitWidth

	return uint32(store ^ addr)
}

// GetBitInPos returns the bit of bits at pos as 0 or 1. Bit 0 is the least
// significant bit. A pos of 64 or more returns 0.
func GetBitInPos(bits uint64, pos uint32) uint8 {
	return uint8((bits >> pos) & 1)
}

// LogBase2 returns k such that powerOfTwo == 2^k.
//
// Both 0 and 1 return 0. Whether 0 is meant to be treated as 2^0 is unclear;
// callers that care should use CheckedLogBase2. An input that is not a power
// of two returns floor(log2(powerOfTwo)).
func LogBase2(powerOfTwo uint32) uint32 {
	var i uint32

	for powerOfTwo > 1 {
		powerOfTwo /= 2
		i++
	}

	return i
}
