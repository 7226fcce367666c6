package wrapfile

import (
	"io"
	"testing"

	"github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testData = "ndht5433\nC44nhcx 44dmnhn4\n\nkjnh43uyx 4%54x"

func TestMemoryBuffer_Modes(t *testing.T) {
	tests := []struct {
		mode Mode
		ok   bool
		text bool
	}{
		{"", true, true},
		{"w", true, true},
		{"wt", true, true},
		{"wb", true, false},
		{"w+", true, true},
		{"wb+", true, false},
		{"r", false, false},
		{"rt", false, false},
		{"rb", false, false},
		{"r+", false, false},
		{"a", false, false},
		{"x", false, false},
		{"q", false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			w, err := New(nil, tt.mode)
			if !tt.ok {
				require.Error(t, err)
				assert.Nil(t, w)
				assert.ErrorIs(t, err, ErrInvalidMemoryMode)
				assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
				assert.Contains(t, err.Error(), string(tt.mode))

				var pe errors.PlatformError
				require.True(t, errors.As(err, &pe))
				assert.Equal(t, string(tt.mode), pe.Context()["mode"])
				return
			}

			require.NoError(t, err)
			defer func() { _ = w.Close() }()

			assert.True(t, w.Owns())
			assert.Equal(t, SourceBuffer, w.Source())
			buf, ok := w.Unwrap().(*memBuffer)
			require.True(t, ok)
			assert.Equal(t, tt.text, buf.IsText())
		})
	}
}

func TestMemoryBuffer_ReadBack(t *testing.T) {
	w, err := New(nil, "w+")
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	_, err = w.WriteString(testData)
	require.NoError(t, err)

	pos, err := w.Seek(0, io.SeekStart)
	require.NoError(t, err)
	assert.Equal(t, int64(0), pos)

	got, err := io.ReadAll(w)
	require.NoError(t, err)
	assert.Equal(t, testData, string(got))

	value, err := w.Value()
	require.NoError(t, err)
	assert.Equal(t, testData, string(value))
}

func TestMemoryBuffer_Truncate(t *testing.T) {
	w, err := New(nil, "wb")
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	_, err = w.Write([]byte("abcdef"))
	require.NoError(t, err)
	require.NoError(t, w.Truncate(3))

	value, err := w.Value()
	require.NoError(t, err)
	assert.Equal(t, "abc", string(value))
}

func TestMemoryBuffer_ValueAfterClose(t *testing.T) {
	w, err := NewWriter(nil)
	require.NoError(t, err)

	_, err = w.WriteString("abc")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	got, ok := w.BufferedString()
	assert.True(t, ok)
	assert.Equal(t, "abc", got)
}

func TestMemoryBuffer_Name(t *testing.T) {
	w, err := New(nil, "w")
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	assert.Equal(t, BufferName, w.Name())

	info, err := w.Stat()
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}

func TestMemoryBuffer_Independent(t *testing.T) {
	a, err := NewWriter(nil)
	require.NoError(t, err)
	defer func() { _ = a.Close() }()

	b, err := NewWriter(nil)
	require.NoError(t, err)
	defer func() { _ = b.Close() }()

	_, err = a.WriteString("first")
	require.NoError(t, err)
	_, err = b.WriteString("second")
	require.NoError(t, err)

	got, _ := a.BufferedString()
	assert.Equal(t, "first", got)
	got, _ = b.BufferedString()
	assert.Equal(t, "second", got)
}
