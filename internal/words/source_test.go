package words

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	entries, err := Load(strings.NewReader("cat\ndog\r\n\nowl"))
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "dog", "", "owl"}, entries)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("alpha\nbeta\n"), 0o600))

	entries, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, entries)
}

func TestLoadFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	_, err := LoadFile(path)
	require.Error(t, err)

	var srcErr *SourceError
	require.True(t, errors.As(err, &srcErr))
	assert.Equal(t, path, srcErr.Path)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestResolveExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("gamma\n"), 0o600))

	entries, origin, err := Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, path, origin)
	assert.Equal(t, []string{"gamma"}, entries)
}

func TestResolveExplicitPathMissingIsFatal(t *testing.T) {
	_, _, err := Resolve(filepath.Join(t.TempDir(), "nope.txt"))

	var srcErr *SourceError
	assert.ErrorAs(t, err, &srcErr)
}

func TestResolveDefault(t *testing.T) {
	entries, origin, err := Resolve("")
	require.NoError(t, err)
	assert.NotEmpty(t, entries)
	assert.Contains(t, []string{SystemDictPath, OriginEmbedded}, origin)
}

func TestDefaultListIsValid(t *testing.T) {
	entries := Default()
	require.NotEmpty(t, entries)

	d, err := New(entries, nil)
	require.NoError(t, err)
	assert.Equal(t, len(entries), d.Len(), "every built-in word should be valid")
}
