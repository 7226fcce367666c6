package wrapfile

import (
	"bufio"
	"io"
	"io/fs"
	"iter"
	"strings"

	"github.com/jmgilman/go/fs/core"
)

// The methods below forward to the backing resource. When the backing
// resource lacks the capability, they return an error matching
// core.ErrUnsupported.

// Read reads from the backing resource.
func (w *Wrapper) Read(p []byte) (int, error) {
	r, ok := w.backing.(io.Reader)
	if !ok {
		return 0, unsupported(CapRead, w.backing)
	}
	return r.Read(p)
}

// Write writes to the backing resource.
func (w *Wrapper) Write(p []byte) (int, error) {
	wr, ok := w.backing.(io.Writer)
	if !ok {
		return 0, unsupported(CapWrite, w.backing)
	}
	return wr.Write(p)
}

// WriteString writes s to the backing resource, using its own WriteString
// when it has one.
func (w *Wrapper) WriteString(s string) (int, error) {
	if sw, ok := w.backing.(io.StringWriter); ok {
		return sw.WriteString(s)
	}
	return w.Write([]byte(s))
}

// Seek sets the offset of the backing resource.
func (w *Wrapper) Seek(offset int64, whence int) (int64, error) {
	s, ok := w.backing.(io.Seeker)
	if !ok {
		return 0, unsupported(CapSeek, w.backing)
	}
	return s.Seek(offset, whence)
}

// ReadAt reads from the backing resource at offset off.
func (w *Wrapper) ReadAt(p []byte, off int64) (int, error) {
	r, ok := w.backing.(io.ReaderAt)
	if !ok {
		return 0, unsupported(CapReadAt, w.backing)
	}
	return r.ReadAt(p, off)
}

// WriteAt writes to the backing resource at offset off.
func (w *Wrapper) WriteAt(p []byte, off int64) (int, error) {
	wr, ok := w.backing.(io.WriterAt)
	if !ok {
		return 0, unsupported(CapWriteAt, w.backing)
	}
	return wr.WriteAt(p, off)
}

// Truncate changes the size of the backing resource.
func (w *Wrapper) Truncate(size int64) error {
	t, ok := w.backing.(core.Truncater)
	if !ok {
		return unsupported(CapTruncate, w.backing)
	}
	return t.Truncate(size)
}

// Sync commits the backing resource to stable storage.
func (w *Wrapper) Sync() error {
	s, ok := w.backing.(core.Syncer)
	if !ok {
		return unsupported(CapSync, w.backing)
	}
	return s.Sync()
}

// Flush flushes buffered data held by the backing resource.
func (w *Wrapper) Flush() error {
	f, ok := w.backing.(Flusher)
	if !ok {
		return unsupported(CapFlush, w.backing)
	}
	return f.Flush()
}

// Stat returns metadata of the backing resource.
func (w *Wrapper) Stat() (fs.FileInfo, error) {
	s, ok := w.backing.(Statter)
	if !ok {
		return nil, unsupported(CapStat, w.backing)
	}
	return s.Stat()
}

// Name returns the name of the backing resource, or "" when it has none.
func (w *Wrapper) Name() string {
	if n, ok := w.backing.(Namer); ok {
		return n.Name()
	}
	return ""
}

// Value returns the contents of an in-memory backing resource.
func (w *Wrapper) Value() ([]byte, error) {
	v, ok := w.backing.(Valuer)
	if !ok {
		return nil, unsupported(CapValue, w.backing)
	}
	return v.Value()
}

// Lines iterates over the lines read from the backing resource, without
// "\n" or "\r\n" terminators. Lines may be of any length. Iteration stops
// at the first read error, which is yielded with an empty line.
func (w *Wrapper) Lines() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		r, ok := w.backing.(io.Reader)
		if !ok {
			yield("", unsupported(CapRead, w.backing))
			return
		}

		br := bufio.NewReader(r)
		for {
			line, err := br.ReadString('\n')
			if len(line) > 0 {
				line = strings.TrimSuffix(line, "\n")
				line = strings.TrimSuffix(line, "\r")
				if !yield(line, nil) {
					return
				}
			}
			if err == io.EOF {
				return
			}
			if err != nil {
				yield("", err)
				return
			}
		}
	}
}
