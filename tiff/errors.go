package tiff

import "fmt"

// InvalidSignatureError is returned when the first two bytes of the stream
// are neither "II" nor "MM".
type InvalidSignatureError struct {
	Signature [2]byte
}

func (e *InvalidSignatureError) Error() string {
	return fmt.Sprintf("tiff: invalid byte-order signature 0x%02x%02x, want 0x4949 or 0x4d4d",
		e.Signature[0], e.Signature[1])
}

// InvalidVersionError is returned when the version word following the
// signature is neither 42 (Classic) nor 43 (BigTiff), or when a BigTiff
// header's offset-size/reserved disambiguator pair is not (8, 0).
type InvalidVersionError struct {
	Value  uint16
	Reason string
}

func (e *InvalidVersionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("tiff: invalid BigTiff header: %s (got %d)", e.Reason, e.Value)
	}
	return fmt.Sprintf("tiff: invalid version %d, want 42 or 43", e.Value)
}

// UnknownDTypeError is returned when a directory entry declares a field
// type outside the 16 recognized by ParseDType.
type UnknownDTypeError struct {
	Value uint16
}

func (e *UnknownDTypeError) Error() string {
	return fmt.Sprintf("tiff: unknown field type %d", e.Value)
}

// UnexpectedDTypeError is returned when an entry's declared DType is not
// acceptable for the Go type a caller tried to decode it into, per the
// dtype-compatibility table.
type UnexpectedDTypeError struct {
	Tag  Tag
	Got  DType
	Want string
}

func (e *UnexpectedDTypeError) Error() string {
	return fmt.Sprintf("tiff: tag %s: unexpected field type %s, want %s", e.Tag, e.Got, e.Want)
}

// MissingRequiredTagError is returned by Metadata construction when a
// directory lacks a tag needed to determine image dimensions or layout.
type MissingRequiredTagError struct {
	Tag Tag
}

func (e *MissingRequiredTagError) Error() string {
	return fmt.Sprintf("tiff: missing required tag %s", e.Tag)
}

// AmbiguousLayoutError is returned when a directory mixes strip tags and
// tile tags, or supplies neither.
type AmbiguousLayoutError struct {
	Reason string
}

func (e *AmbiguousLayoutError) Error() string {
	return fmt.Sprintf("tiff: ambiguous chunk layout: %s", e.Reason)
}

// ChunkCountMismatchError is returned when the strip/tile offset table is
// shorter than the layout-derived chunk count, or the offsets and byte
// counts tables disagree in length.
type ChunkCountMismatchError struct {
	Reason string
}

func (e *ChunkCountMismatchError) Error() string {
	return fmt.Sprintf("tiff: chunk table mismatch: %s", e.Reason)
}

// UnsupportedCompressionError is returned by the compress package when a
// directory names a Compression value with no registered reader.
type UnsupportedCompressionError struct {
	Value uint16
}

func (e *UnsupportedCompressionError) Error() string {
	return fmt.Sprintf("tiff: unsupported compression scheme %d", e.Value)
}
