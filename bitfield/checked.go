package bitfield

import (
	"errors"
	"fmt"
)

// AddressWidth is the number of bits in an address.
const AddressWidth = 64

// MaxLosslessWidth is the widest field that ModuloWidth can return without
// truncation.
const MaxLosslessWidth = 32

// ErrInvalidArgument is matched by every error returned from the Checked
// functions.
var ErrInvalidArgument = errors.New("invalid argument")

// An ArgumentError describes a violated precondition.
type ArgumentError struct {
	Op     string
	Arg    string
	Value  uint64
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("bitfield: %s: %s=%d: %s",
		e.Op, e.Arg, e.Value, e.Reason)
}

// Is reports ErrInvalidArgument as the error kind.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// CheckedModuloWidth is ModuloWidth with its preconditions enforced. The
// field must lie within the 64 address bits and must be at most 32 bits wide.
func CheckedModuloWidth(addr uint64, bitWidth, pos uint32) (uint32, error) {
	const op = "ModuloWidth"

	if pos >= AddressWidth {
		return 0, &ArgumentError{op, "pos", uint64(pos),
			"must be less than 64"}
	}

	if uint64(bitWidth)+uint64(pos) > AddressWidth {
		return 0, &ArgumentError{op, "bit_width", uint64(bitWidth),
			fmt.Sprintf("field at pos %d exceeds 64 bits", pos)}
	}

	if bitWidth > MaxLosslessWidth {
		return 0, &ArgumentError{op, "bit_width", uint64(bitWidth),
			"result would be truncated to 32 bits"}
	}

	return ModuloWidth(addr, bitWidth, pos), nil
}

// CheckedGetBitInPos is GetBitInPos that rejects a pos outside [0, 63].
func CheckedGetBitInPos(bits uint64, pos uint32) (uint8, error) {
	if pos >= AddressWidth {
		return 0, &ArgumentError{"GetBitInPos", "pos", uint64(pos),
			"must be less than 64"}
	}

	return GetBitInPos(bits, pos), nil
}

// CheckedLogBase2 is LogBase2 that only accepts exact, positive powers of
// two.
func CheckedLogBase2(powerOfTwo uint32) (uint32, error) {
	const op = "LogBase2"

	if powerOfTwo == 0 {
		return 0, &ArgumentError{op, "power_of_two", 0, "must be positive"}
	}

	if !IsPowerOfTwo(uint64(powerOfTwo)) {
		return 0, &ArgumentError{op, "power_of_two", uint64(powerOfTwo),
			"not a power of two"}
	}

	return LogBase2(powerOfTwo), nil
}

// IsPowerOfTwo reports whether v is 2^k for some k.
func IsPowerOfTwo(v uint64) bool {
	return v != 0 && v&(v-1) == 0
}
