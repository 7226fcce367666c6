package wrapfile

import (
	"io"
	"io/fs"

	"github.com/jmgilman/go/fs/core"
)

// Capability names an operation a resource may support.
type Capability string

// Capabilities a Wrapper forwards to its backing resource.
const (
	CapRead     Capability = "read"
	CapWrite    Capability = "write"
	CapSeek     Capability = "seek"
	CapReadAt   Capability = "read-at"
	CapWriteAt  Capability = "write-at"
	CapTruncate Capability = "truncate"
	CapSync     Capability = "sync"
	CapFlush    Capability = "flush"
	CapStat     Capability = "stat"
	CapName     Capability = "name"
	CapValue    Capability = "value"
)

// AllCapabilities lists every capability in a stable order.
var AllCapabilities = []Capability{
	CapRead,
	CapWrite,
	CapSeek,
	CapReadAt,
	CapWriteAt,
	CapTruncate,
	CapSync,
	CapFlush,
	CapStat,
	CapName,
	CapValue,
}

// Optional resource capabilities beyond the io and core interfaces.
type (
	// Flusher flushes buffered data to the underlying resource.
	Flusher interface {
		Flush() error
	}

	// Statter returns metadata about an open resource.
	Statter interface {
		Stat() (fs.FileInfo, error)
	}

	// Namer returns the name a resource was opened with.
	Namer interface {
		Name() string
	}

	// Valuer returns the accumulated contents of an in-memory resource.
	Valuer interface {
		Value() ([]byte, error)
	}
)

// Has reports whether v supports capability c.
func Has(v any, c Capability) bool {
	if v == nil {
		return false
	}

	var ok bool
	switch c {
	case CapRead:
		_, ok = v.(io.Reader)
	case CapWrite:
		_, ok = v.(io.Writer)
	case CapSeek:
		_, ok = v.(io.Seeker)
	case CapReadAt:
		_, ok = v.(io.ReaderAt)
	case CapWriteAt:
		_, ok = v.(io.WriterAt)
	case CapTruncate:
		_, ok = v.(core.Truncater)
	case CapSync:
		_, ok = v.(core.Syncer)
	case CapFlush:
		_, ok = v.(Flusher)
	case CapStat:
		_, ok = v.(Statter)
	case CapName:
		_, ok = v.(Namer)
	case CapValue:
		_, ok = v.(Valuer)
	}
	return ok
}

// CapabilitiesOf returns the capabilities v supports, in AllCapabilities order.
func CapabilitiesOf(v any) []Capability {
	var caps []Capability
	for _, c := range AllCapabilities {
		if Has(v, c) {
			caps = append(caps, c)
		}
	}
	return caps
}
