package wrapfile

import "os"

// Mode is an access mode string such as "r", "wb" or "a+".
//
// A mode holds exactly one of 'r' (read), 'w' (truncate and write),
// 'a' (append) or 'x' (exclusive create), optionally '+' for update, and
// optionally one of 't' (text, the default) or 'b' (binary). Characters may
// appear in any order. "rw" is accepted as an alias of "r+".
type Mode string

// Common modes.
const (
	ModeRead        Mode = "r"
	ModeReadText    Mode = "rt"
	ModeReadBinary  Mode = "rb"
	ModeWrite       Mode = "w"
	ModeWriteText   Mode = "wt"
	ModeWriteBinary Mode = "wb"
	ModeAppend      Mode = "a"
	ModeExclusive   Mode = "x"
	ModeReadWrite   Mode = "r+"

	// DefaultMode is used when an empty mode is given.
	DefaultMode = ModeWrite
)

// Access is the primary access kind of a mode.
type Access int

const (
	// AccessRead opens an existing resource for reading.
	AccessRead Access = iota + 1
	// AccessWrite creates or truncates a resource for writing.
	AccessWrite
	// AccessAppend creates a resource or appends to an existing one.
	AccessAppend
	// AccessExclusive creates a resource and fails if it already exists.
	AccessExclusive
)

// String returns the mode character of the access kind.
func (a Access) String() string {
	switch a {
	case AccessRead:
		return "r"
	case AccessWrite:
		return "w"
	case AccessAppend:
		return "a"
	case AccessExclusive:
		return "x"
	default:
		return "?"
	}
}

var modeAliases = map[Mode]Mode{
	"rw": ModeReadWrite,
}

// modeSpec is the parsed form of a Mode.
type modeSpec struct {
	access Access
	update bool
	binary bool
}

// orDefault returns DefaultMode for the empty mode.
func (m Mode) orDefault() Mode {
	if m == "" {
		return DefaultMode
	}
	return m
}

func (m Mode) parse() (modeSpec, error) {
	raw := m.orDefault()
	if alias, ok := modeAliases[raw]; ok {
		raw = alias
	}

	var ms modeSpec
	var text bool
	seen := make(map[rune]bool, len(raw))
	for _, c := range string(raw) {
		if seen[c] {
			return modeSpec{}, invalidMode(m, "duplicate mode character "+string(c))
		}
		seen[c] = true

		switch c {
		case 'r', 'w', 'a', 'x':
			if ms.access != 0 {
				return modeSpec{}, invalidMode(m, "must have exactly one of r, w, a, x")
			}
			ms.access = accessOf(c)
		case '+':
			ms.update = true
		case 'b':
			ms.binary = true
		case 't':
			text = true
		default:
			return modeSpec{}, invalidMode(m, "unknown mode character "+string(c))
		}
	}

	if ms.access == 0 {
		return modeSpec{}, invalidMode(m, "must have exactly one of r, w, a, x")
	}
	if text && ms.binary {
		return modeSpec{}, invalidMode(m, "cannot be both text and binary")
	}
	return ms, nil
}

func accessOf(c rune) Access {
	switch c {
	case 'r':
		return AccessRead
	case 'w':
		return AccessWrite
	case 'a':
		return AccessAppend
	default:
		return AccessExclusive
	}
}

// Valid reports whether the mode follows the mode grammar.
func (m Mode) Valid() bool {
	_, err := m.parse()
	return err == nil
}

// Access returns the access kind of the mode, or zero if the mode is invalid.
func (m Mode) Access() Access {
	ms, err := m.parse()
	if err != nil {
		return 0
	}
	return ms.access
}

// IsBinary reports whether the mode requests binary access.
func (m Mode) IsBinary() bool {
	ms, err := m.parse()
	return err == nil && ms.binary
}

// Flags converts the mode into os.OpenFile flags.
func (m Mode) Flags() (int, error) {
	ms, err := m.parse()
	if err != nil {
		return 0, err
	}
	return ms.flags(), nil
}

func (s modeSpec) flags() int {
	flag := os.O_WRONLY
	if s.update {
		flag = os.O_RDWR
	}

	switch s.access {
	case AccessRead:
		if !s.update {
			flag = os.O_RDONLY
		}
	case AccessWrite:
		flag |= os.O_CREATE | os.O_TRUNC
	case AccessAppend:
		flag |= os.O_CREATE | os.O_APPEND
	case AccessExclusive:
		flag |= os.O_CREATE | os.O_EXCL
	}
	return flag
}

// isReadFamily reports whether the mode selects a Reader in Wrap.
func (m Mode) isReadFamily() bool {
	return m == ModeRead || m == ModeReadText
}

// isWriteFamily reports whether the mode selects a Writer in Wrap.
func (m Mode) isWriteFamily() bool {
	return m == "" || m == ModeWrite || m == ModeWriteText
}

// String returns the mode as given, or DefaultMode when empty.
func (m Mode) String() string {
	return string(m.orDefault())
}
