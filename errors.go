package wrapfile

import (
	"fmt"

	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/fs/core"
)

var (
	// ErrInvalidMemoryMode is returned when a nil argument is combined with a
	// mode that cannot back an in-memory buffer. Returned errors wrap it and
	// carry the offending mode in their context under the "mode" key.
	ErrInvalidMemoryMode = errors.New(errors.CodeInvalidInput, "invalid mode for in-memory buffer")

	// ErrInvalidMode is returned by openers when a mode string does not
	// follow the mode grammar or is not supported by the opener.
	ErrInvalidMode = errors.New(errors.CodeInvalidInput, "invalid mode")

	// ErrUnsupportedArgument is returned when the argument is neither nil,
	// an open handle, nor a path.
	ErrUnsupportedArgument = errors.New(errors.CodeInvalidInput, "unsupported argument")
)

func invalidMemoryMode(mode Mode) error {
	return errors.WrapWithContext(
		ErrInvalidMemoryMode,
		errors.CodeInvalidInput,
		fmt.Sprintf("cannot allocate in-memory buffer with mode %q", string(mode)),
		map[string]interface{}{"mode": string(mode)},
	)
}

func invalidMode(mode Mode, reason string) error {
	return errors.WrapWithContext(
		ErrInvalidMode,
		errors.CodeInvalidInput,
		fmt.Sprintf("mode %q: %s", string(mode), reason),
		map[string]interface{}{"mode": string(mode)},
	)
}

func unsupportedArgument(arg any) error {
	return errors.WrapWithContext(
		ErrUnsupportedArgument,
		errors.CodeInvalidInput,
		fmt.Sprintf("cannot wrap argument of type %T", arg),
		map[string]interface{}{"type": fmt.Sprintf("%T", arg)},
	)
}

// unsupported reports a capability the backing resource does not have.
// The result matches core.ErrUnsupported under errors.Is.
func unsupported(c Capability, backing any) error {
	return errors.WrapWithContext(
		core.ErrUnsupported,
		errors.CodeNotImplemented,
		fmt.Sprintf("%s not supported by %T", c, backing),
		map[string]interface{}{"capability": string(c)},
	)
}
