package wrapfile

import (
	"io"
	"io/fs"
	"iter"
)

// File is the operation set shared by Wrapper, Reader and Writer.
type File interface {
	io.ReadWriteSeeker
	io.ReaderAt
	io.WriterAt
	io.StringWriter
	io.Closer

	Truncate(size int64) error
	Sync() error
	Flush() error
	Stat() (fs.FileInfo, error)
	Name() string
	Value() ([]byte, error)
	Lines() iter.Seq2[string, error]

	Owns() bool
	Mode() Mode
	Source() Source
	Unwrap() any
	Supports(c Capability) bool
	Capabilities() []Capability
}

// Compile-time interface checks.
var (
	_ File = (*Wrapper)(nil)
	_ File = (*Reader)(nil)
	_ File = (*Writer)(nil)
)

// Reader is a Wrapper resolved with ModeRead.
type Reader struct {
	*Wrapper
}

// NewReader resolves arg for reading text. A nil arg is rejected with
// ErrInvalidMemoryMode since there is nothing to read.
func NewReader(arg any, opts ...Option) (*Reader, error) {
	w, err := New(arg, ModeRead, opts...)
	if err != nil {
		return nil, err
	}
	return &Reader{Wrapper: w}, nil
}

// Writer is a Wrapper resolved with ModeWrite. When its argument is nil,
// the written data can be retrieved with Buffered.
type Writer struct {
	*Wrapper
}

// NewWriter resolves arg for writing text. A nil arg allocates an in-memory
// text buffer.
func NewWriter(arg any, opts ...Option) (*Writer, error) {
	w, err := New(arg, ModeWrite, opts...)
	if err != nil {
		return nil, err
	}
	return &Writer{Wrapper: w}, nil
}

// Buffered returns the data written so far when the Writer backs an
// in-memory buffer it allocated. For files and caller-supplied handles it
// returns false.
func (w *Writer) Buffered() ([]byte, bool) {
	b, ok := w.backing.(*memBuffer)
	if !ok {
		return nil, false
	}
	data, err := b.Value()
	if err != nil {
		return nil, false
	}
	return data, true
}

// BufferedString is Buffered returning a string.
func (w *Writer) BufferedString() (string, bool) {
	data, ok := w.Buffered()
	return string(data), ok
}

// Wrap resolves arg with the wrapper type selected by mode: a *Reader for
// "r" and "rt", a *Writer for "", "w" and "wt", and a plain *Wrapper for any
// other mode, which is passed through to the opener unchanged.
func Wrap(arg any, mode Mode, opts ...Option) (File, error) {
	switch {
	case mode.isReadFamily():
		return asFile(NewReader(arg, opts...))
	case mode.isWriteFamily():
		return asFile(NewWriter(arg, opts...))
	default:
		return asFile(New(arg, mode, opts...))
	}
}

// asFile converts a constructor result, keeping a failed result a nil File.
func asFile[T File](v T, err error) (File, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}

// UseReader is Use with a Reader.
func UseReader(arg any, fn func(*Reader) error, opts ...Option) error {
	r, err := NewReader(arg, opts...)
	if err != nil {
		return err
	}
	return scoped(r, fn)
}

// UseWriter is Use with a Writer.
func UseWriter(arg any, fn func(*Writer) error, opts ...Option) error {
	w, err := NewWriter(arg, opts...)
	if err != nil {
		return err
	}
	return scoped(w, fn)
}
