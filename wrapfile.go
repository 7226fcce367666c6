package wrapfile

import (
	"errors"
	"io"
	"log/slog"
)

// Wrapper presents a path, an open handle or an in-memory buffer as one
// resource. It forwards every operation to the backing resource and closes
// that resource only when it created it.
//
// A Wrapper is not safe for concurrent use.
type Wrapper struct {
	backing any
	owns    bool
	mode    Mode
	source  Source
	name    string
	logger  *slog.Logger
}

// New resolves arg into a Wrapper opened with mode. An empty mode selects
// DefaultMode.
//
// arg is classified in this order:
//   - nil allocates an in-memory buffer. mode must be a write mode ("w",
//     "wt", "wb", optionally with '+'); anything else returns an error
//     matching ErrInvalidMemoryMode.
//   - a value implementing io.Reader or io.Writer is adopted as is. mode is
//     recorded but not checked against how the handle was opened, and the
//     handle is never closed by the Wrapper. A typed nil, such as a nil
//     *os.File, returns an error matching ErrUnsupportedArgument.
//   - a string or Path is opened on the configured filesystem. Paths ending
//     in ".gz" or ".bz2" are opened through the matching codec.
//
// Errors from the filesystem or codec are returned unchanged.
func New(arg any, mode Mode, opts ...Option) (*Wrapper, error) {
	cfg := newConfig(opts...)

	r, err := resolve(arg, mode, cfg)
	if err != nil {
		return nil, err
	}

	w := &Wrapper{
		backing: r.backing,
		owns:    r.source != SourceHandle,
		mode:    mode.orDefault(),
		source:  r.source,
		name:    r.name,
		logger:  cfg.logger,
	}
	w.logger.Debug("resolved",
		"source", w.source.String(),
		"mode", w.mode.String(),
		"owns", w.owns,
		"name", w.name,
	)
	return w, nil
}

// Close closes the backing resource if the Wrapper created it, and does
// nothing otherwise. Repeated calls on an owning Wrapper are passed to the
// backing resource, which decides whether they fail.
func (w *Wrapper) Close() error {
	w.logger.Debug("released", "source", w.source.String(), "name", w.name, "owns", w.owns)
	if !w.owns {
		return nil
	}
	c, ok := w.backing.(io.Closer)
	if !ok {
		return nil
	}
	return c.Close()
}

// Owns reports whether the Wrapper created, and will close, its backing
// resource.
func (w *Wrapper) Owns() bool {
	return w.owns
}

// Mode returns the mode the Wrapper was resolved with.
func (w *Wrapper) Mode() Mode {
	return w.mode
}

// Source returns how the backing resource was obtained.
func (w *Wrapper) Source() Source {
	return w.source
}

// Unwrap returns the backing resource. For a caller-supplied handle this is
// the handle itself.
func (w *Wrapper) Unwrap() any {
	return w.backing
}

// Supports reports whether the backing resource has capability c.
func (w *Wrapper) Supports(c Capability) bool {
	return Has(w.backing, c)
}

// Capabilities returns the capabilities of the backing resource.
func (w *Wrapper) Capabilities() []Capability {
	return CapabilitiesOf(w.backing)
}

// Use resolves arg with mode, calls fn with the Wrapper and closes the
// Wrapper when fn returns or panics. An error from fn is always returned;
// a close error is joined to it.
func Use(arg any, mode Mode, fn func(*Wrapper) error, opts ...Option) error {
	w, err := New(arg, mode, opts...)
	if err != nil {
		return err
	}
	return scoped(w, fn)
}

// scoped runs fn with r and closes r afterwards.
func scoped[T io.Closer](r T, fn func(T) error) (err error) {
	defer func() {
		if cerr := r.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()
	return fn(r)
}
