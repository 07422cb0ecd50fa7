package compress

import "io"

// packbitsState is the state of the PackBits run-length decoder between
// calls to Read, following the state machine in Apple Tech Note 1023: a
// control byte starts either a literal run (copy the next n+1 bytes
// verbatim) or a replicate run (repeat the next single byte 1-n times).
type packbitsState int

const (
	packbitsStart packbitsState = iota
	packbitsLiteral
	packbitsReplicate
)

// PackBitsReader decompresses a PackBits-encoded byte stream.
type PackBitsReader struct {
	r     io.Reader
	state packbitsState

	literalRemaining int
	replicateByte    byte
	replicateCount   int
}

// NewPackBitsReader wraps r, whose bytes are PackBits-encoded.
func NewPackBitsReader(r io.Reader) *PackBitsReader {
	return &PackBitsReader{r: r, state: packbitsStart}
}

func (p *PackBitsReader) readByte() (byte, error) {
	var buf [1]byte
	if _, err := io.ReadFull(p.r, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// Read implements io.Reader. It fills buf as far as the current run allows,
// consuming a new control byte only once the prior run is exhausted, so a
// caller reading one byte at a time drives exactly the same state
// transitions as one reading in large chunks.
func (p *PackBitsReader) Read(buf []byte) (int, error) {
	n := 0
	for n < len(buf) {
		switch p.state {
		case packbitsStart:
			ctrl, err := p.readByte()
			if err != nil {
				if err == io.EOF && n > 0 {
					return n, nil
				}
				return n, err
			}
			c := int8(ctrl)
			switch {
			case c >= 0:
				p.state = packbitsLiteral
				p.literalRemaining = int(c) + 1
			case c == -128:
				// No-op control byte; stay in Start and read another.
			default:
				b, err := p.readByte()
				if err != nil {
					return n, err
				}
				p.state = packbitsReplicate
				p.replicateByte = b
				p.replicateCount = int(-c) + 1
			}
		case packbitsLiteral:
			b, err := p.readByte()
			if err != nil {
				return n, err
			}
			buf[n] = b
			n++
			p.literalRemaining--
			if p.literalRemaining == 0 {
				p.state = packbitsStart
			}
		case packbitsReplicate:
			buf[n] = p.replicateByte
			n++
			p.replicateCount--
			if p.replicateCount == 0 {
				p.state = packbitsStart
			}
		}
	}
	return n, nil
}
