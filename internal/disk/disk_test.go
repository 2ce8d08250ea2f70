package disk

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "disk.img")
	require.NoError(t, os.WriteFile(path, make([]byte, 1<<20), 0o600))

	info, err := Open(path)
	require.NoError(t, err)
	defer info.Close()

	assert.Equal(t, path, info.Path)
	assert.False(t, info.IsDevice)
	assert.Equal(t, uint64(DefaultBlockSize), info.BlockSize)
	assert.Equal(t, uint64(2048), info.Blocks)
}

func TestOpenImageOddSizeRoundsDown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "disk.img")
	require.NoError(t, os.WriteFile(path, make([]byte, 1000), 0o600))

	info, err := Open(path)
	require.NoError(t, err)
	defer info.Close()

	assert.Equal(t, uint64(1), info.Blocks)
}

func TestOpenMissingPath(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestRescanImageIsNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "disk.img")
	require.NoError(t, os.WriteFile(path, make([]byte, 1<<20), 0o600))

	info, err := Open(path)
	require.NoError(t, err)
	defer info.Close()

	assert.NoError(t, info.Rescan())
}
