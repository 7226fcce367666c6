package wrapfile

import (
	"io"
	"os"

	"github.com/jmgilman/go/fs/billy"
	"github.com/jmgilman/go/fs/core"
)

// bufferPath is the name of the single file inside a buffer's private
// in-memory filesystem.
const bufferPath = "buffer"

// BufferName is the name reported by in-memory buffers.
const BufferName = "<buffer>"

// memBuffer is an in-memory resource backed by a private go-billy memory
// filesystem holding one file. It supports reading, writing, seeking and
// truncation, and returns its contents through Value.
type memBuffer struct {
	core.File
	fsys *billy.MemoryFS
	text bool
}

func newMemBuffer(text bool) (*memBuffer, error) {
	fsys := billy.NewMemory()
	f, err := fsys.OpenFile(bufferPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return nil, err
	}
	return &memBuffer{File: f, fsys: fsys, text: text}, nil
}

// Name returns BufferName.
func (b *memBuffer) Name() string {
	return BufferName
}

// Seek sets the offset for the next Read or Write.
func (b *memBuffer) Seek(offset int64, whence int) (int64, error) {
	s, ok := b.File.(io.Seeker)
	if !ok {
		return 0, unsupported(CapSeek, b.File)
	}
	return s.Seek(offset, whence)
}

// Truncate changes the size of the buffer.
func (b *memBuffer) Truncate(size int64) error {
	t, ok := b.File.(core.Truncater)
	if !ok {
		return unsupported(CapTruncate, b.File)
	}
	return t.Truncate(size)
}

// Value returns the full contents of the buffer regardless of the current
// offset. It remains available after Close.
func (b *memBuffer) Value() ([]byte, error) {
	return b.fsys.ReadFile(bufferPath)
}

// IsText reports whether the buffer was allocated for text.
func (b *memBuffer) IsText() bool {
	return b.text
}
