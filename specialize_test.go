package wrapfile

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_SelectsType(t *testing.T) {
	path := writeTestFile(t, "data.txt", testData)

	tests := []struct {
		mode     Mode
		want     string
		wantMode Mode
	}{
		{"r", "reader", ModeRead},
		{"rt", "reader", ModeRead},
		{"", "writer", ModeWrite},
		{"w", "writer", ModeWrite},
		{"wt", "writer", ModeWrite},
		{"rb", "wrapper", "rb"},
		{"wb", "wrapper", "wb"},
		{"a", "wrapper", "a"},
		{"r+", "wrapper", "r+"},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			f, err := Wrap(path, tt.mode)
			require.NoError(t, err)
			defer testCloser(t, f)

			var got string
			switch f.(type) {
			case *Reader:
				got = "reader"
			case *Writer:
				got = "writer"
			case *Wrapper:
				got = "wrapper"
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantMode, f.Mode())
		})
	}
}

func TestWrap_ErrorReturnsNilFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")

	for _, mode := range []Mode{"r", "rb"} {
		f, err := Wrap(missing, mode)
		require.Error(t, err)
		assert.Nil(t, f)
	}

	f, err := Wrap(nil, ModeRead)
	require.Error(t, err)
	assert.Nil(t, f)
}

func TestWrap_BinaryBuffer(t *testing.T) {
	f, err := Wrap(nil, ModeWriteBinary)
	require.NoError(t, err)
	defer testCloser(t, f)

	_, isWriter := f.(*Writer)
	assert.False(t, isWriter)

	_, err = f.Write([]byte{0x00, 0xff})
	require.NoError(t, err)

	value, err := f.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xff}, value)
}

func TestWriter_Buffered(t *testing.T) {
	w, err := NewWriter(nil)
	require.NoError(t, err)
	defer testCloser(t, w)

	_, err = w.WriteString("abc")
	require.NoError(t, err)

	got, ok := w.Buffered()
	assert.True(t, ok)
	assert.Equal(t, []byte("abc"), got)

	s, ok := w.BufferedString()
	assert.True(t, ok)
	assert.Equal(t, "abc", s)
}

func TestWriter_BufferedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	w, err := NewWriter(path)
	require.NoError(t, err)

	_, err = w.WriteString(testData)
	require.NoError(t, err)

	got, ok := w.Buffered()
	assert.False(t, ok)
	assert.Nil(t, got)
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, testData, string(data))
}

func TestWriter_BufferedForeignHandle(t *testing.T) {
	var buf bytes.Buffer

	w, err := NewWriter(&buf)
	require.NoError(t, err)
	defer testCloser(t, w)

	_, err = w.WriteString("abc")
	require.NoError(t, err)

	_, ok := w.Buffered()
	assert.False(t, ok)

	s, ok := w.BufferedString()
	assert.False(t, ok)
	assert.Empty(t, s)
	assert.Equal(t, "abc", buf.String())
}

func TestReader_NilArgument(t *testing.T) {
	r, err := NewReader(nil)
	require.Error(t, err)
	assert.Nil(t, r)
	assert.ErrorIs(t, err, ErrInvalidMemoryMode)
}

func TestReader_Handle(t *testing.T) {
	path := writeTestFile(t, "data.txt", testData)
	f, err := os.Open(path)
	require.NoError(t, err)
	defer testCloser(t, f)

	r, err := NewReader(f)
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, testData, string(got))

	require.NoError(t, r.Close())
	assert.False(t, r.Owns())

	_, err = f.Seek(0, io.SeekStart)
	assert.NoError(t, err, "handle must remain open")
}
