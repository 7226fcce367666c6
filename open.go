package wrapfile

import (
	"errors"
	"io"
	"io/fs"
	"path/filepath"
	"reflect"
	"syscall"

	"github.com/jmgilman/go/fs/core"
)

// Source identifies how a Wrapper obtained its backing resource.
type Source int

const (
	// SourceBuffer indicates a freshly allocated in-memory buffer.
	SourceBuffer Source = iota + 1
	// SourceHandle indicates a caller-supplied open handle.
	SourceHandle
	// SourcePath indicates a resource opened from a path.
	SourcePath
)

// String returns a string representation of the Source.
func (s Source) String() string {
	switch s {
	case SourceBuffer:
		return "buffer"
	case SourceHandle:
		return "handle"
	case SourcePath:
		return "path"
	default:
		return "unknown"
	}
}

// Path is a filesystem path argument. Plain strings are treated the same.
type Path string

// isHandle reports whether arg is an already-open resource. Anything that
// can be read from or written to qualifies.
func isHandle(arg any) bool {
	switch arg.(type) {
	case io.Reader, io.Writer:
		return true
	default:
		return false
	}
}

// isNilValue reports whether arg is a typed nil, such as a nil *os.File
// stored in an interface.
func isNilValue(arg any) bool {
	v := reflect.ValueOf(arg)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}

// resolved is the outcome of classifying an argument.
type resolved struct {
	backing any
	source  Source
	// name is the buffer name or the opened path. It is empty for handles.
	name string
}

// resolve classifies arg and establishes the backing resource.
// Precedence: nil, then handles, then paths. Typed nils are rejected.
func resolve(arg any, mode Mode, cfg *config) (resolved, error) {
	if arg == nil {
		b, err := allocateBuffer(mode)
		if err != nil {
			return resolved{}, err
		}
		return resolved{backing: b, source: SourceBuffer, name: BufferName}, nil
	}

	if isNilValue(arg) {
		return resolved{}, unsupportedArgument(arg)
	}

	if isHandle(arg) {
		// The handle's own mode is not checked against mode.
		return resolved{backing: arg, source: SourceHandle}, nil
	}

	var name string
	switch v := arg.(type) {
	case string:
		name = v
	case Path:
		name = string(v)
	default:
		return resolved{}, unsupportedArgument(arg)
	}

	f, name, err := openPath(name, mode, cfg)
	if err != nil {
		return resolved{}, err
	}
	return resolved{backing: f, source: SourcePath, name: name}, nil
}

// allocateBuffer returns an in-memory buffer for a write mode.
func allocateBuffer(mode Mode) (*memBuffer, error) {
	ms, err := mode.parse()
	if err != nil || ms.access != AccessWrite {
		return nil, invalidMemoryMode(mode)
	}
	return newMemBuffer(!ms.binary)
}

// openPath opens name with the plain opener or, when the suffix selects
// one, a codec. It returns the backing resource and the name it was opened
// under. Provider and codec errors are returned unchanged.
func openPath(name string, mode Mode, cfg *config) (any, string, error) {
	ms, err := mode.parse()
	if err != nil {
		return nil, "", err
	}

	codec := cfg.codecs.lookup(name)
	if codec != nil && ms.update {
		return nil, "", invalidMode(mode, "compressed files cannot be opened for update")
	}

	if cfg.hostPaths {
		if name, err = filepath.Abs(name); err != nil {
			return nil, "", err
		}
	}

	if ms.access != AccessRead {
		if err := checkParent(cfg.fsys, name); err != nil {
			return nil, "", err
		}
	}

	if cfg.atomic && cfg.hostPaths && ms.access == AccessWrite && !ms.update {
		sink, err := newAtomicFile(name, cfg.perm)
		if err != nil {
			return nil, "", err
		}
		if codec == nil {
			return sink, name, nil
		}
		w, err := newCompressedWriter(codec, sink, name)
		if err != nil {
			return nil, "", err
		}
		return w, name, nil
	}

	f, err := cfg.fsys.OpenFile(name, ms.flags(), cfg.perm)
	if err != nil {
		return nil, "", err
	}

	switch {
	case codec == nil:
		return f, name, nil
	case ms.access == AccessRead:
		r, err := newCompressedReader(codec, f, name)
		if err != nil {
			return nil, "", err
		}
		return r, name, nil
	default:
		w, err := newCompressedWriter(codec, f, name)
		if err != nil {
			return nil, "", err
		}
		return w, name, nil
	}
}

// checkParent fails with a *fs.PathError when the directory that would hold
// name does not exist. Filesystem providers may create missing parents on
// O_CREATE; a plain open must not.
func checkParent(fsys core.FS, name string) error {
	dir := filepath.Dir(name)
	if dir == "." || dir == filepath.Dir(dir) {
		return nil
	}

	info, err := fsys.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	case err != nil:
		return err
	case !info.IsDir():
		return &fs.PathError{Op: "open", Path: name, Err: syscall.ENOTDIR}
	}
	return nil
}
