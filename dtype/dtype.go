// SPDX-License-Identifier: MIT

package dtype

import "fmt"

// DType tags the element type of a numeric buffer.
type DType uint8

// Supported element types. Invalid is the zero value and never resolves.
const (
	Invalid DType = iota
	Int8
	Uint8
	Uint8Clamped
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
	Float32
	Float64
)

// names maps every valid DType to its canonical name.
var names = [...]string{
	Invalid:      "invalid",
	Int8:         "int8",
	Uint8:        "uint8",
	Uint8Clamped: "uint8_clamped",
	Int16:        "int16",
	Uint16:       "uint16",
	Int32:        "int32",
	Uint32:       "uint32",
	Int64:        "int64",
	Uint64:       "uint64",
	Float32:      "float32",
	Float64:      "float64",
}

// String returns the canonical dtype name.
func (d DType) String() string {
	if int(d) < len(names) {
		return names[d]
	}

	return fmt.Sprintf("dtype(%d)", uint8(d))
}

// Valid reports whether d names a real element type.
func (d DType) Valid() bool {
	return d > Invalid && int(d) < len(names)
}

// IsFloat reports whether d stores floating-point values.
func (d DType) IsFloat() bool {
	return d == Float32 || d == Float64
}

// Bits returns the element width in bits (0 for Invalid).
func (d DType) Bits() int {
	switch d {
	case Int8, Uint8, Uint8Clamped:
		return 8
	case Int16, Uint16:
		return 16
	case Int32, Uint32, Float32:
		return 32
	case Int64, Uint64, Float64:
		return 64
	default:
		return 0
	}
}

// Parse resolves a dtype name. The empty string is not a dtype.
func Parse(name string) (DType, error) {
	for i := Int8; int(i) < len(names); i++ {
		if names[i] == name {
			return i, nil
		}
	}

	return Invalid, fmt.Errorf("Parse(%q): %w", name, ErrUnknownDType)
}
