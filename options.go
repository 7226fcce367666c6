package wrapfile

import (
	"io/fs"
	"log/slog"

	"github.com/jmgilman/go/fs/billy"
	"github.com/jmgilman/go/fs/core"
)

// defaultPerm is the permission used for created files, before umask.
const defaultPerm fs.FileMode = 0o666

// Option configures how a Wrapper resolves its argument.
type Option func(*config)

// config holds the resolution settings of a single Wrapper.
type config struct {
	fsys   core.FS
	codecs codecTable
	perm   fs.FileMode
	atomic bool
	logger *slog.Logger

	// hostPaths is set when fsys is the default local filesystem, whose
	// root is "/"; relative paths are then resolved against the working
	// directory.
	hostPaths bool
}

// newConfig creates a configuration with default values and applies opts.
func newConfig(opts ...Option) *config {
	cfg := &config{
		codecs: defaultCodecs.clone(),
		perm:   defaultPerm,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.fsys == nil {
		cfg.fsys = billy.NewLocal()
		cfg.hostPaths = true
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	return cfg
}

// WithFS sets the filesystem paths are opened on.
// Defaults to the local disk.
//
// Example:
//
//	mem := billy.NewMemory()
//	w, _ := wrapfile.NewWriter("out.txt", wrapfile.WithFS(mem))
func WithFS(fsys core.FS) Option {
	return func(c *config) {
		c.fsys = fsys
	}
}

// WithCodec registers codec for paths ending in suffix. An existing entry
// for the same suffix is replaced in place; new entries are consulted after
// the existing ones.
//
// Example:
//
//	w, _ := wrapfile.NewWriter("out.tgz", wrapfile.WithCodec(".tgz", wrapfile.GzipCodec{}))
func WithCodec(suffix string, codec Codec) Option {
	return func(c *config) {
		c.codecs = c.codecs.with(suffix, codec)
	}
}

// WithPerm sets the permission bits used when a path is created.
func WithPerm(perm fs.FileMode) Option {
	return func(c *config) {
		c.perm = perm
	}
}

// WithAtomicWrites stages data written to a path opened in a truncating,
// write-only mode ("w", "wb", "wt") and publishes it with an atomic rename
// when the wrapper is closed. Readers of the path never observe a partially
// written file. It applies only to the default local filesystem; paths on
// a filesystem set with WithFS are opened normally.
func WithAtomicWrites() Option {
	return func(c *config) {
		c.atomic = true
	}
}

// WithLogger sets the logger used for debug records about resolution and
// release. Defaults to a logger that discards all records.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}
