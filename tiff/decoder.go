package tiff

import (
	"io"

	"github.com/tingold/tiffcore/byteorder"
)

// Decoder walks the directory structure of a TIFF or BigTIFF stream. It
// holds exclusive use of src for as long as any iterator or Entry obtained
// from it is in play: directory traversal and entry decoding both seek the
// underlying stream, so a Decoder is not safe for concurrent use from
// multiple goroutines (see the package doc for the full contract).
type Decoder struct {
	src     io.ReadSeeker
	order   byteorder.ByteOrder
	version Version
	first   uint64
}

// NewDecoder parses the header at the start of src and returns a Decoder
// positioned to walk the directory chain starting at src's first IFD.
func NewDecoder(src io.ReadSeeker) (*Decoder, error) {
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	h, err := ReadHeader(src)
	if err != nil {
		return nil, err
	}
	return &Decoder{src: src, order: h.Order, version: h.Version, first: h.FirstIFD}, nil
}

// Order reports the byte order detected from the stream's signature.
func (d *Decoder) Order() byteorder.ByteOrder { return d.order }

// Version reports whether the stream is Classic TIFF or BigTIFF.
func (d *Decoder) Version() Version { return d.version }

func (d *Decoder) readAt(offset uint64, n int) ([]byte, error) {
	if _, err := d.src.Seek(int64(offset), io.SeekStart); err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(d.src, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// Directories returns an iterator over the chain of image directories
// starting at the stream's first IFD, following each directory's
// next-directory offset until it reaches zero.
func (d *Decoder) Directories() *Directories {
	return &Directories{dec: d, next: d.first}
}

// Directories is a pull-style, lazily-advancing iterator over a TIFF
// directory chain. Call Next until it returns false.
type Directories struct {
	dec  *Decoder
	next uint64
	err  error
}

// Err returns the error, if any, that caused the last Next to return false.
// A clean end of chain (next-directory offset of zero) reports nil.
func (it *Directories) Err() error { return it.err }

// Next advances to the next directory in the chain. It returns false at the
// end of the chain or on error; distinguish the two with Err.
func (it *Directories) Next() (*Directory, bool) {
	if it.next == 0 {
		return nil, false
	}
	dir, err := readDirectory(it.dec, it.next)
	if err != nil {
		it.err = err
		it.next = 0
		return nil, false
	}
	it.next = dir.next
	return dir, true
}

// Directory is one Image File Directory: an ordered list of entries plus
// the offset of the next directory in the chain (0 if this is the last).
type Directory struct {
	Offset  uint64
	entries []rawEntry
	next    uint64
	dec     *Decoder
}

type rawEntry struct {
	tag   Tag
	dtype DType
	count uint64
	value []byte // raw, still in stream byte order; len == decoder.offsetSize()
}

func (d *Decoder) offsetSize() int { return d.version.OffsetSize() }

// readDirectory reads one IFD in full: entry count, every entry's fixed-size
// header, and the trailing next-directory offset. It never follows an
// entry's indirect value — that happens lazily, only when a caller asks an
// Entry to decode itself — so a directory with entries nobody decodes costs
// one read for the entry count, one per entry header and one for the
// next-directory offset, and nothing more.
func readDirectory(d *Decoder, offset uint64) (*Directory, error) {
	countSize := 2
	if d.version == BigTiff {
		countSize = 8
	}
	head, err := d.readAt(offset, countSize)
	if err != nil {
		return nil, err
	}
	var count uint64
	if d.version == BigTiff {
		count = d.order.Uint64(head)
	} else {
		count = uint64(d.order.Uint16(head))
	}

	offSize := d.offsetSize()
	entrySize := 2 + 2 + offSize + offSize // tag + dtype + count + value/offset
	entries := make([]rawEntry, 0, count)
	pos := offset + uint64(countSize)
	for i := uint64(0); i < count; i++ {
		raw, err := d.readAt(pos, entrySize)
		if err != nil {
			return nil, err
		}
		tag := Tag(d.order.Uint16(raw[0:2]))
		dtypeVal, err := ParseDType(d.order.Uint16(raw[2:4]))
		if err != nil {
			return nil, err
		}
		var entryCount uint64
		if offSize == 8 {
			entryCount = d.order.Uint64(raw[4:12])
		} else {
			entryCount = uint64(d.order.Uint32(raw[4:8]))
		}
		value := make([]byte, offSize)
		copy(value, raw[4+offSize:4+2*offSize])
		entries = append(entries, rawEntry{tag: tag, dtype: dtypeVal, count: entryCount, value: value})
		pos += uint64(entrySize)
	}

	nextRaw, err := d.readAt(pos, offSize)
	if err != nil {
		return nil, err
	}
	var next uint64
	if offSize == 8 {
		next = d.order.Uint64(nextRaw)
	} else {
		next = uint64(d.order.Uint32(nextRaw))
	}

	return &Directory{Offset: offset, entries: entries, next: next, dec: d}, nil
}

// Len reports the number of entries in the directory.
func (dir *Directory) Len() int { return len(dir.entries) }

// Entries returns an iterator over the directory's entries in on-disk
// order.
func (dir *Directory) Entries() *Entries {
	return &Entries{dir: dir}
}

// Find returns the entry for tag, if present. Directory entries are stored
// in the order they appear on disk, which TIFF 6.0 requires to be sorted by
// tag; Find does a linear scan rather than assuming that order since
// BigTIFF writers are not always well-behaved.
func (dir *Directory) Find(tag Tag) (*Entry, bool) {
	for i := range dir.entries {
		if dir.entries[i].tag == tag {
			return &Entry{dir: dir, raw: dir.entries[i]}, true
		}
	}
	return nil, false
}

// Entries is a pull-style, exact-sized, double-ended iterator over a
// Directory's entries.
type Entries struct {
	dir        *Directory
	frontIndex int
	backIndex  int
	started    bool
}

// Len reports the number of entries not yet consumed from either end.
func (it *Entries) Len() int {
	if !it.started {
		return len(it.dir.entries)
	}
	return it.backIndex - it.frontIndex + 1
}

// Next returns the next entry from the front of the iterator.
func (it *Entries) Next() (*Entry, bool) {
	if !it.started {
		it.frontIndex = 0
		it.backIndex = len(it.dir.entries) - 1
		it.started = true
	}
	if it.frontIndex > it.backIndex {
		return nil, false
	}
	e := &Entry{dir: it.dir, raw: it.dir.entries[it.frontIndex]}
	it.frontIndex++
	return e, true
}

// NextBack returns the next entry from the back of the iterator.
func (it *Entries) NextBack() (*Entry, bool) {
	if !it.started {
		it.frontIndex = 0
		it.backIndex = len(it.dir.entries) - 1
		it.started = true
	}
	if it.frontIndex > it.backIndex {
		return nil, false
	}
	e := &Entry{dir: it.dir, raw: it.dir.entries[it.backIndex]}
	it.backIndex--
	return e, true
}

// Entry is a single directory entry: a tag, its declared field type and
// count, and enough information to fetch its value on demand.
type Entry struct {
	dir *Directory
	raw rawEntry
}

// Tag returns the entry's field tag.
func (e *Entry) Tag() Tag { return e.raw.tag }

// DType returns the entry's declared field type.
func (e *Entry) DType() DType { return e.raw.dtype }

// Count returns the number of values of type DType the entry holds.
func (e *Entry) Count() uint64 { return e.raw.count }

// valueBytes returns the entry's raw value bytes, still in stream byte
// order, fetching them from the indirect offset if they didn't fit in the
// entry's inline value slot.
func (e *Entry) valueBytes() ([]byte, error) {
	size := e.raw.dtype.Size()
	total := size * int(e.raw.count)
	offSize := e.dir.dec.offsetSize()
	if total <= offSize {
		return e.raw.value[:total], nil
	}
	order := e.dir.dec.order
	var offset uint64
	if offSize == 8 {
		offset = order.Uint64(e.raw.value)
	} else {
		offset = uint64(order.Uint32(e.raw.value))
	}
	return e.dir.dec.readAt(offset, total)
}
