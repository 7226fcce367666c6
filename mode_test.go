package wrapfile

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMode_Flags(t *testing.T) {
	tests := []struct {
		mode   Mode
		flags  int
		access Access
		binary bool
	}{
		{"r", os.O_RDONLY, AccessRead, false},
		{"rt", os.O_RDONLY, AccessRead, false},
		{"rb", os.O_RDONLY, AccessRead, true},
		{"br", os.O_RDONLY, AccessRead, true},
		{"r+", os.O_RDWR, AccessRead, false},
		{"rw", os.O_RDWR, AccessRead, false},
		{"w", os.O_WRONLY | os.O_CREATE | os.O_TRUNC, AccessWrite, false},
		{"wb", os.O_WRONLY | os.O_CREATE | os.O_TRUNC, AccessWrite, true},
		{"w+", os.O_RDWR | os.O_CREATE | os.O_TRUNC, AccessWrite, false},
		{"a", os.O_WRONLY | os.O_CREATE | os.O_APPEND, AccessAppend, false},
		{"ab+", os.O_RDWR | os.O_CREATE | os.O_APPEND, AccessAppend, true},
		{"x", os.O_WRONLY | os.O_CREATE | os.O_EXCL, AccessExclusive, false},
		{"", os.O_WRONLY | os.O_CREATE | os.O_TRUNC, AccessWrite, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			flags, err := tt.mode.Flags()
			require.NoError(t, err)
			assert.Equal(t, tt.flags, flags)
			assert.Equal(t, tt.access, tt.mode.Access())
			assert.Equal(t, tt.binary, tt.mode.IsBinary())
			assert.True(t, tt.mode.Valid())
		})
	}
}

func TestMode_Invalid(t *testing.T) {
	modes := []Mode{"q", "rr", "rw+", "wa", "+", "b", "rtb", "w++", "R"}

	for _, m := range modes {
		t.Run(string(m), func(t *testing.T) {
			_, err := m.Flags()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidMode)
			assert.False(t, m.Valid())
			assert.Equal(t, Access(0), m.Access())
		})
	}
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "w", Mode("").String())
	assert.Equal(t, "rb", ModeReadBinary.String())
	assert.Equal(t, "a", AccessAppend.String())
	assert.Equal(t, "?", Access(0).String())
}

func TestMode_Families(t *testing.T) {
	assert.True(t, ModeRead.isReadFamily())
	assert.True(t, ModeReadText.isReadFamily())
	assert.False(t, ModeReadBinary.isReadFamily())

	assert.True(t, Mode("").isWriteFamily())
	assert.True(t, ModeWrite.isWriteFamily())
	assert.True(t, ModeWriteText.isWriteFamily())
	assert.False(t, ModeWriteBinary.isWriteFamily())
	assert.False(t, ModeAppend.isWriteFamily())
}
