package tiff

import "fmt"

// DType is the wire representation of a TIFF field type, stored as a 16-bit
// word in every directory entry.
type DType uint16

// The 16 field types defined by the TIFF 6.0 and BigTIFF specifications.
const (
	Byte           DType = 1
	Ascii          DType = 2
	Short          DType = 3
	Long           DType = 4
	Rational       DType = 5
	SignedByte     DType = 6
	Undefined      DType = 7
	SignedShort    DType = 8
	SignedLong     DType = 9
	SignedRational DType = 10
	Float          DType = 11
	Double         DType = 12
	Ifd            DType = 13
	BigLong        DType = 16
	BigSignedLong  DType = 17
	BigIfd         DType = 18
)

// ParseDType validates v as one of the 16 known field types.
func ParseDType(v uint16) (DType, error) {
	switch DType(v) {
	case Byte, Ascii, Short, Long, Rational, SignedByte, Undefined, SignedShort,
		SignedLong, SignedRational, Float, Double, Ifd, BigLong, BigSignedLong, BigIfd:
		return DType(v), nil
	default:
		return 0, &UnknownDTypeError{Value: v}
	}
}

// Size returns the number of bytes a single value of this type occupies on
// the wire.
func (d DType) Size() int {
	switch d {
	case Byte, Ascii, SignedByte, Undefined:
		return 1
	case Short, SignedShort:
		return 2
	case Long, SignedLong, Float, Ifd:
		return 4
	case Rational, SignedRational, Double, BigLong, BigSignedLong, BigIfd:
		return 8
	default:
		return 0
	}
}

func (d DType) String() string {
	switch d {
	case Byte:
		return "Byte"
	case Ascii:
		return "Ascii"
	case Short:
		return "Short"
	case Long:
		return "Long"
	case Rational:
		return "Rational"
	case SignedByte:
		return "SignedByte"
	case Undefined:
		return "Undefined"
	case SignedShort:
		return "SignedShort"
	case SignedLong:
		return "SignedLong"
	case SignedRational:
		return "SignedRational"
	case Float:
		return "Float"
	case Double:
		return "Double"
	case Ifd:
		return "Ifd"
	case BigLong:
		return "BigLong"
	case BigSignedLong:
		return "BigSignedLong"
	case BigIfd:
		return "BigIfd"
	default:
		return fmt.Sprintf("DType(%d)", uint16(d))
	}
}
