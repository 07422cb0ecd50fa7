package tiff

import (
	"io"

	"github.com/tingold/tiffcore/byteorder"
)

// Header is the fixed-layout preamble every TIFF and BigTIFF stream opens
// with: a byte-order signature, a version word, and (BigTIFF only) an
// offset-size/reserved pair, followed by the offset of the first directory.
type Header struct {
	Order    byteorder.ByteOrder
	Version  Version
	FirstIFD uint64
}

// ReadHeader parses the header at the current position of src, which must
// be positioned at the start of the stream. It does not seek to FirstIFD;
// callers use Header.FirstIFD to begin directory traversal explicitly.
func ReadHeader(src io.Reader) (Header, error) {
	var sig [2]byte
	if _, err := io.ReadFull(src, sig[:]); err != nil {
		return Header{}, err
	}
	order, err := DetectByteOrder(sig)
	if err != nil {
		return Header{}, err
	}

	var versionBuf [2]byte
	if _, err := io.ReadFull(src, versionBuf[:]); err != nil {
		return Header{}, err
	}
	version, err := parseVersion(order.Uint16(versionBuf[:]))
	if err != nil {
		return Header{}, err
	}

	if version == Classic {
		var off [4]byte
		if _, err := io.ReadFull(src, off[:]); err != nil {
			return Header{}, err
		}
		return Header{Order: order, Version: version, FirstIFD: uint64(order.Uint32(off[:]))}, nil
	}

	// BigTIFF: 2-byte offset size (always 8), 2-byte reserved (always 0),
	// then the 8-byte first-IFD offset.
	var rest [12]byte
	if _, err := io.ReadFull(src, rest[:]); err != nil {
		return Header{}, err
	}
	offsetSize := order.Uint16(rest[0:2])
	reserved := order.Uint16(rest[2:4])
	if offsetSize != 8 {
		return Header{}, &InvalidVersionError{Value: offsetSize, Reason: "offset size must be 8"}
	}
	if reserved != 0 {
		return Header{}, &InvalidVersionError{Value: reserved, Reason: "reserved field must be 0"}
	}
	firstIFD := order.Uint64(rest[4:12])
	return Header{Order: order, Version: version, FirstIFD: firstIFD}, nil
}

// DetectByteOrder maps the two-byte TIFF signature to a byte order:
// "II" for little-endian (Intel), "MM" for big-endian (Motorola).
func DetectByteOrder(sig [2]byte) (byteorder.ByteOrder, error) {
	switch sig {
	case [2]byte{'I', 'I'}:
		return byteorder.LittleEndian, nil
	case [2]byte{'M', 'M'}:
		return byteorder.BigEndian, nil
	default:
		return nil, &InvalidSignatureError{Signature: sig}
	}
}
