package wrapfile

import (
	"errors"
	"io"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jmgilman/go/fs/core"
	"github.com/natefinch/atomic"
)

// compressedReader decompresses a file opened by the wrapper.
// Closing it closes the decompressor and then the file.
type compressedReader struct {
	stream io.ReadCloser
	file   io.Closer
	name   string
	closed bool
}

func newCompressedReader(codec Codec, file io.ReadCloser, name string) (*compressedReader, error) {
	stream, err := codec.NewReader(file)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	return &compressedReader{stream: stream, file: file, name: name}, nil
}

// Read reads decompressed data.
func (r *compressedReader) Read(p []byte) (int, error) {
	if r.closed {
		return 0, core.ErrClosed
	}
	return r.stream.Read(p)
}

// Name returns the path the file was opened with.
func (r *compressedReader) Name() string {
	return r.name
}

// Close closes the decompressor, then the file. The first error wins.
func (r *compressedReader) Close() error {
	if r.closed {
		return core.ErrClosed
	}
	r.closed = true
	return closeBoth(r.stream, r.file)
}

// compressedWriter compresses into a file opened by the wrapper.
// Closing it flushes the compressor trailer and then closes the file.
type compressedWriter struct {
	stream io.WriteCloser
	file   io.Closer
	name   string
	closed bool
}

func newCompressedWriter(codec Codec, file io.WriteCloser, name string) (*compressedWriter, error) {
	stream, err := codec.NewWriter(file)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	return &compressedWriter{stream: stream, file: file, name: name}, nil
}

// Write compresses p into the file.
func (w *compressedWriter) Write(p []byte) (int, error) {
	if w.closed {
		return 0, core.ErrClosed
	}
	return w.stream.Write(p)
}

// Name returns the path the file was opened with.
func (w *compressedWriter) Name() string {
	return w.name
}

// Close closes the compressor, then the file. The first error wins.
func (w *compressedWriter) Close() error {
	if w.closed {
		return core.ErrClosed
	}
	w.closed = true
	return closeBoth(w.stream, w.file)
}

// closeBoth closes inner and then outer, returning the first error.
// outer is closed even when inner fails.
func closeBoth(inner, outer io.Closer) error {
	err := inner.Close()
	if cerr := outer.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// atomicFile writes to a temporary file next to name and publishes it to
// name with an atomic rename on Close. The temporary file is created when
// the atomicFile is, so an unwritable destination fails early.
type atomicFile struct {
	name   string
	tmp    *os.File
	closed bool
}

// maxTempAttempts bounds the search for an unused temporary name.
const maxTempAttempts = 100

// newAtomicFile creates the temporary file for name. A new file gets perm,
// subject to the umask. An existing file keeps its permissions.
func newAtomicFile(name string, perm fs.FileMode) (*atomicFile, error) {
	preserve := false
	if info, err := os.Stat(name); err == nil {
		perm = info.Mode().Perm()
		preserve = true
	}

	dir, base := filepath.Split(name)
	for range maxTempAttempts {
		tmpName := filepath.Join(dir, "."+base+"."+strconv.FormatUint(rand.Uint64(), 36)+".tmp")
		tmp, err := os.OpenFile(tmpName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if preserve {
			if err := tmp.Chmod(perm); err != nil {
				_ = tmp.Close()
				_ = os.Remove(tmpName)
				return nil, err
			}
		}
		return &atomicFile{name: name, tmp: tmp}, nil
	}
	return nil, &fs.PathError{Op: "createtemp", Path: name, Err: fs.ErrExist}
}

// Write writes p to the temporary file.
func (f *atomicFile) Write(p []byte) (int, error) {
	if f.closed {
		return 0, core.ErrClosed
	}
	return f.tmp.Write(p)
}

// Name returns the destination path.
func (f *atomicFile) Name() string {
	return f.name
}

// Close syncs the temporary file and renames it over the destination. On
// failure the temporary file is removed and the destination is untouched.
func (f *atomicFile) Close() error {
	if f.closed {
		return core.ErrClosed
	}
	f.closed = true

	err := f.tmp.Sync()
	if cerr := f.tmp.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err == nil {
		err = atomic.ReplaceFile(f.tmp.Name(), f.name)
	}
	if err != nil {
		_ = os.Remove(f.tmp.Name())
	}
	return err
}
