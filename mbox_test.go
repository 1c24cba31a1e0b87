package mbox_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-mbox"
)

func TestOpenRecordsSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "archive.mbox")
	content := "From a b\nSubject: x\n\nbody\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	m, err := mbox.Open(path)
	require.NoError(t, err)
	defer m.Release()

	assert.EqualValues(t, len(content), m.Size())
	assert.Equal(t, path, m.Path())
}

func TestOpenMissingFileErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := mbox.Open(filepath.Join(dir, "missing.mbox"))
	assert.Error(t, err)
}

func TestReleaseIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "archive.mbox")
	require.NoError(t, os.WriteFile(path, []byte("From a b\n\n\n"), 0o644))

	m, err := mbox.Open(path)
	require.NoError(t, err)

	assert.NoError(t, m.Release())
	assert.NoError(t, m.Release())
}
