// Package wrapfile resolves "something to read from or write to" into a
// single resource with well-defined ownership.
//
// Functions that accept a destination or source often want to take a path,
// an already-open file, or nothing at all (collect the output in memory).
// This package removes the branching: the argument is classified once, the
// backing resource is opened or adopted, and the result is used like any
// other file.
//
// # Resolution
//
// The argument is classified in this order:
//
//   - nil allocates an in-memory buffer (write modes only)
//   - a value implementing io.Reader or io.Writer is adopted as a handle
//   - a string or Path is opened on a filesystem
//
// Paths ending in ".gz" and ".bz2" are opened through gzip and bzip2 codecs;
// all other paths are opened as plain files. The suffix table can be
// extended with WithCodec.
//
// # Ownership
//
// A Wrapper closes only what it created. Buffers and opened paths are closed
// by Close; caller-supplied handles are never closed, so the caller keeps
// full control over their lifetime:
//
//	f, _ := os.Create("report.txt")
//	defer f.Close()
//
//	w, _ := wrapfile.NewWriter(f)
//	fmt.Fprintln(w, "hello")
//	w.Close() // f remains open
//
// # Scoped Use
//
// Use, UseReader and UseWriter close the Wrapper when the callback returns
// or panics, and never discard the callback's error:
//
//	err := wrapfile.UseReader("data.txt.gz", func(r *wrapfile.Reader) error {
//	    _, err := io.Copy(os.Stdout, r)
//	    return err
//	})
//
// # In-Memory Buffers
//
// A Writer over nil collects written data, which Buffered returns:
//
//	w, _ := wrapfile.NewWriter(nil)
//	w.WriteString("abc")
//	data, ok := w.Buffered() // "abc", true
//
// Buffered returns false for files and foreign handles.
//
// # Capabilities
//
// A Wrapper forwards every operation it knows (Read, Write, Seek, ReadAt,
// WriteAt, Truncate, Sync, Flush, Stat, Name, Value) to its backing
// resource. Operations the backing resource does not support fail with an
// error matching core.ErrUnsupported, and Supports reports the same set, so
// a Wrapper never claims more than the resource it wraps. Unwrap returns
// the backing resource for anything else.
//
// # Filesystems
//
// Paths are opened on the local disk by default. Any core.FS provider can be
// used instead:
//
//	mem := billy.NewMemory()
//	w, _ := wrapfile.NewWriter("out.txt.gz", wrapfile.WithFS(mem))
//
// # Thread Safety
//
// A Wrapper is not safe for concurrent use, matching the resources it wraps.
package wrapfile
