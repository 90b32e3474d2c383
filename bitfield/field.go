package bitfield

import "fmt"

// A Field is a contiguous run of bits, Width bits wide, starting at bit Pos.
type Field struct {
	Width uint32
	Pos   uint32
}

// FieldOfSize returns the field that holds indexes into count entries,
// placed at pos. Count is expected to be a power of two.
func FieldOfSize(count, pos uint32) Field {
	return Field{Width: LogBase2(count), Pos: pos}
}

// Extract returns the value of the field in addr.
func (f Field) Extract(addr uint64) uint32 {
	return ModuloWidth(addr, f.Width, f.Pos)
}

// Next returns the position of the first bit above the field.
func (f Field) Next() uint32 {
	return f.Pos + f.Width
}

// Mask returns the field as a mask over a 64-bit address.
func (f Field) Mask() uint64 {
	if f.Width == 0 || f.Pos >= AddressWidth {
		return 0
	}

	if f.Width >= AddressWidth {
		return ^uint64(0) << f.Pos
	}

	return ((uint64(1) << f.Width) - 1) << f.Pos
}

// Validate checks the field against the CheckedModuloWidth preconditions.
func (f Field) Validate() error {
	_, err := CheckedModuloWidth(0, f.Width, f.Pos)
	return err
}

func (f Field) String() string {
	if f.Width == 0 {
		return fmt.Sprintf("[empty@%d]", f.Pos)
	}

	high := uint64(f.Pos) + uint64(f.Width) - 1

	return fmt.Sprintf("[%d:%d]", high, f.Pos)
}

// FieldsOverlap reports whether any bit belongs to both a and b.
func FieldsOverlap(a, b Field) bool {
	return a.Mask()&b.Mask() != 0
}
