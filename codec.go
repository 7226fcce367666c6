package wrapfile

import (
	"bufio"
	"io"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/gzip"
)

// Codec provides compression and decompression for a file suffix.
type Codec interface {
	// NewReader wraps r to decompress data read from it.
	NewReader(r io.Reader) (io.ReadCloser, error)
	// NewWriter wraps w to compress data written to it.
	NewWriter(w io.Writer) (io.WriteCloser, error)
}

// GzipCodec compresses with gzip. The zero value uses
// gzip.DefaultCompression; NewGzipCodec selects any other level, including
// gzip.NoCompression.
type GzipCodec struct {
	level    int
	hasLevel bool
}

// NewGzipCodec returns a GzipCodec that writes at level.
func NewGzipCodec(level int) GzipCodec {
	return GzipCodec{level: level, hasLevel: true}
}

// Level returns the compression level used for writing.
func (c GzipCodec) Level() int {
	if !c.hasLevel {
		return gzip.DefaultCompression
	}
	return c.level
}

// NewReader returns a gzip reader over r. Concatenated members are read as
// one stream, and an empty input reads as an empty stream.
func (c GzipCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	br, empty, err := peekEmpty(r)
	if err != nil {
		return nil, err
	}
	if empty {
		return io.NopCloser(br), nil
	}
	return gzip.NewReader(br)
}

// NewWriter returns a gzip writer over w.
func (c GzipCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return gzip.NewWriterLevel(w, c.Level())
}

// Bzip2Codec compresses with bzip2. The zero value uses the default level.
type Bzip2Codec struct {
	// Level is a bzip2 compression level (1-9); zero selects the default.
	Level int
}

// NewReader returns a bzip2 reader over r. An empty input reads as an
// empty stream.
func (c Bzip2Codec) NewReader(r io.Reader) (io.ReadCloser, error) {
	br, empty, err := peekEmpty(r)
	if err != nil {
		return nil, err
	}
	if empty {
		return io.NopCloser(br), nil
	}
	return bzip2.NewReader(br, nil)
}

// NewWriter returns a bzip2 writer over w.
func (c Bzip2Codec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return bzip2.NewWriter(w, &bzip2.WriterConfig{Level: c.Level})
}

// peekEmpty buffers r and reports whether it holds no data at all.
func peekEmpty(r io.Reader) (*bufio.Reader, bool, error) {
	br := bufio.NewReader(r)
	if _, err := br.Peek(1); err != nil {
		if err == io.EOF {
			return br, true, nil
		}
		return nil, false, err
	}
	return br, false, nil
}

// codecEntry binds a path suffix to a codec.
type codecEntry struct {
	suffix string
	codec  Codec
}

// codecTable is an ordered suffix lookup; the first matching suffix wins.
type codecTable []codecEntry

var defaultCodecs = codecTable{
	{suffix: ".gz", codec: GzipCodec{}},
	{suffix: ".bz2", codec: Bzip2Codec{}},
}

func (t codecTable) clone() codecTable {
	return append(codecTable(nil), t...)
}

// with returns the table with suffix bound to codec.
func (t codecTable) with(suffix string, codec Codec) codecTable {
	for i, e := range t {
		if e.suffix == suffix {
			t[i].codec = codec
			return t
		}
	}
	return append(t, codecEntry{suffix: suffix, codec: codec})
}

// lookup returns the codec for name, or nil when name selects the plain
// opener. Suffixes are matched case-sensitively.
func (t codecTable) lookup(name string) Codec {
	for _, e := range t {
		if strings.HasSuffix(name, e.suffix) {
			return e.codec
		}
	}
	return nil
}

// CodecFor returns the default codec for name, or nil for uncompressed paths.
func CodecFor(name string) Codec {
	return defaultCodecs.lookup(name)
}
