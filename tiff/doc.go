// Package tiff implements a pull-style decoder for the structural layout of
// TIFF and BigTIFF files: header, image file directories, and the entries
// within them. It stops at decoded, validated per-image Metadata; turning
// the referenced strips or tiles into pixels is the job of the compress and
// predictor subpackages plus a caller-supplied pixel unpacker.
//
// A Decoder holds exclusive use of the underlying io.ReadSeeker for as long
// as it, or any Directory/Entry obtained from it, is alive: directory
// traversal and on-demand entry decoding both seek the stream, so sharing
// one Decoder across goroutines without external synchronization will
// produce garbled reads, not a panic. Open a second Decoder (or a second
// *os.File) per goroutine that needs concurrent access instead.
package tiff
