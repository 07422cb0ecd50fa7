package geocog

import (
	"fmt"
	"io"
	"sync"

	"github.com/valyala/fasthttp"
)

const defaultReadAheadSize = 64 * 1024

// HTTPRangeReader implements io.ReadSeeker over an HTTP server that
// supports byte-range requests, so a TIFF directory chain and the chunks a
// query touches can be fetched without downloading the whole file. A
// read-ahead buffer absorbs the directory-walk's small sequential reads
// into one request each instead of one round trip per read.
type HTTPRangeReader struct {
	url    string
	client *fasthttp.Client
	size   int64
	mu     sync.Mutex
	pos    int64

	buffer        []byte
	bufferStart   int64
	bufferEnd     int64
	readAheadSize int
}

// NewHTTPRangeReader creates a range reader over url, issuing a HEAD
// request up front to learn the file size.
func NewHTTPRangeReader(url string, client *fasthttp.Client) *HTTPRangeReader {
	rr := &HTTPRangeReader{
		url:           url,
		client:        client,
		readAheadSize: defaultReadAheadSize,
		bufferStart:   -1,
		bufferEnd:     -1,
	}
	rr.size = rr.fetchSize()
	return rr
}

func (rr *HTTPRangeReader) fetchSize() int64 {
	if rr.client == nil {
		return -1
	}
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(rr.url)
	req.Header.SetMethod("HEAD")
	if err := rr.client.Do(req, resp); err != nil {
		return -1
	}
	if n := resp.Header.ContentLength(); n > 0 {
		return int64(n)
	}
	return -1
}

// Read implements io.Reader, serving from the read-ahead buffer when
// possible and falling back to a direct ranged fetch otherwise.
func (rr *HTTPRangeReader) Read(p []byte) (int, error) {
	rr.mu.Lock()
	defer rr.mu.Unlock()

	if rr.size > 0 && rr.pos >= rr.size {
		return 0, io.EOF
	}

	toRead := len(p)
	if rr.size > 0 && rr.pos+int64(toRead) > rr.size {
		toRead = int(rr.size - rr.pos)
	}

	if rr.buffer != nil && rr.pos >= rr.bufferStart && rr.pos < rr.bufferEnd {
		offset := int(rr.pos - rr.bufferStart)
		available := int(rr.bufferEnd - rr.pos)
		if available >= toRead {
			n := copy(p[:toRead], rr.buffer[offset:offset+toRead])
			rr.pos += int64(n)
			return n, nil
		}
		n := copy(p[:available], rr.buffer[offset:])
		rr.pos += int64(n)
		remaining := toRead - n
		nn, err := rr.readFromNetwork(p[n:n+remaining], remaining)
		return n + nn, err
	}

	return rr.readWithReadAhead(p, toRead)
}

func (rr *HTTPRangeReader) readWithReadAhead(p []byte, toRead int) (int, error) {
	readSize := rr.readAheadSize
	if readSize < toRead {
		readSize = toRead
	}
	if rr.size > 0 && rr.pos+int64(readSize) > rr.size {
		readSize = int(rr.size - rr.pos)
	}

	data, err := rr.fetchRange(rr.pos, rr.pos+int64(readSize)-1)
	if err != nil {
		return 0, err
	}

	if len(data) > toRead {
		if cap(rr.buffer) >= len(data) {
			rr.buffer = rr.buffer[:len(data)]
		} else {
			rr.buffer = make([]byte, len(data))
		}
		copy(rr.buffer, data)
		rr.bufferStart = rr.pos
		rr.bufferEnd = rr.pos + int64(len(data))
	}

	if len(data) < toRead {
		toRead = len(data)
	}
	n := copy(p[:toRead], data[:toRead])
	if n == 0 {
		return 0, io.EOF
	}
	rr.pos += int64(n)
	return n, nil
}

func (rr *HTTPRangeReader) readFromNetwork(p []byte, toRead int) (int, error) {
	data, err := rr.fetchRange(rr.pos, rr.pos+int64(toRead)-1)
	if err != nil {
		return 0, err
	}
	if len(data) < toRead {
		toRead = len(data)
	}
	n := copy(p[:toRead], data[:toRead])
	rr.pos += int64(n)
	return n, nil
}

func (rr *HTTPRangeReader) fetchRange(start, end int64) ([]byte, error) {
	if rr.size > 0 && end >= rr.size {
		end = rr.size - 1
	}
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(rr.url)
	req.Header.SetMethod("GET")
	req.Header.Set("Range", fmt.Sprintf("bytes=%d-%d", start, end))

	if err := rr.client.Do(req, resp); err != nil {
		return nil, err
	}
	status := resp.StatusCode()
	if status != fasthttp.StatusPartialContent && status != fasthttp.StatusOK {
		return nil, fmt.Errorf("geocog: unexpected status code %d", status)
	}
	body := resp.Body()
	out := make([]byte, len(body))
	copy(out, body)
	return out, nil
}

// Seek implements io.Seeker, invalidating the read-ahead buffer on any
// jump outside its currently buffered range.
func (rr *HTTPRangeReader) Seek(offset int64, whence int) (int64, error) {
	rr.mu.Lock()
	defer rr.mu.Unlock()

	var newPos int64
	switch whence {
	case io.SeekStart:
		newPos = offset
	case io.SeekCurrent:
		newPos = rr.pos + offset
	case io.SeekEnd:
		if rr.size < 0 {
			return 0, fmt.Errorf("geocog: cannot seek from end: size unknown")
		}
		newPos = rr.size + offset
	default:
		return 0, fmt.Errorf("geocog: invalid whence %d", whence)
	}
	if newPos < 0 {
		return 0, fmt.Errorf("geocog: negative seek position %d", newPos)
	}
	if rr.buffer != nil && (newPos < rr.bufferStart || newPos >= rr.bufferEnd) {
		rr.bufferStart, rr.bufferEnd = -1, -1
	}
	rr.pos = newPos
	return rr.pos, nil
}

// Size returns the file size, or -1 if it could not be determined.
func (rr *HTTPRangeReader) Size() int64 { return rr.size }
