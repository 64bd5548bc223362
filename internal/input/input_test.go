package input

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "162,817,812\n57,618,57\n906,360,560\n"

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func compress(t *testing.T, newWriter func(io.Writer) (io.WriteCloser, error)) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := newWriter(&buf)
	require.NoError(t, err)
	_, err = io.WriteString(w, sample)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func readAll(t *testing.T, path string) string {
	t.Helper()
	rc, err := Open(path, nil)
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(data)
}

func TestOpen_Plain(t *testing.T) {
	path := writeFile(t, "points.txt", []byte(sample))
	assert.Equal(t, sample, readAll(t, path))
}

func TestOpen_Compressed(t *testing.T) {
	tests := []struct {
		name      string
		newWriter func(io.Writer) (io.WriteCloser, error)
	}{
		{"points.txt.gz", func(w io.Writer) (io.WriteCloser, error) { return gzip.NewWriter(w), nil }},
		{"points.txt.zst", func(w io.Writer) (io.WriteCloser, error) { return zstd.NewWriter(w) }},
		{"points.txt.lz4", func(w io.Writer) (io.WriteCloser, error) { return lz4.NewWriter(w), nil }},
		{"POINTS.TXT.GZ", func(w io.Writer) (io.WriteCloser, error) { return gzip.NewWriter(w), nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.name, compress(t, tt.newWriter))
			assert.Equal(t, sample, readAll(t, path))
		})
	}
}

func TestOpen_Stdin(t *testing.T) {
	rc, err := Open(Stdin, strings.NewReader(sample))
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, sample, string(data))
	assert.NoError(t, rc.Close())
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.txt"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpen_CorruptGzip(t *testing.T) {
	path := writeFile(t, "points.gz", []byte(sample))
	_, err := Open(path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "points.gz")
}
