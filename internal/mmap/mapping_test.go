package mmap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapAnon(t *testing.T) {
	m, err := MapAnon(4096)
	require.NoError(t, err)
	defer m.Close()

	data := m.Bytes()
	require.Len(t, data, 4096)
	assert.Equal(t, 4096, m.Size())

	// Anonymous mappings start zero-filled
	for _, b := range data[:64] {
		assert.Zero(t, b)
	}

	// Writable
	data[0] = 0xAB
	data[4095] = 0xCD
	assert.Equal(t, byte(0xAB), m.Bytes()[0])
	assert.Equal(t, byte(0xCD), m.Bytes()[4095])
}

func TestMapAnonInvalidSize(t *testing.T) {
	_, err := MapAnon(0)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = MapAnon(-1)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestCloseIdempotent(t *testing.T) {
	m, err := MapAnon(4096)
	require.NoError(t, err)

	assert.NoError(t, m.Close())
	assert.NoError(t, m.Close())
	assert.Nil(t, m.Bytes())
}

func TestOpenShared(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shared.bin")

	m, err := OpenShared(path, 4096)
	require.NoError(t, err)

	data := m.Bytes()
	require.Len(t, data, 4096)
	copy(data, []byte("persisted"))
	require.NoError(t, m.Close())

	// Writes are visible through the file
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("persisted"), raw[:9])

	// And through a fresh mapping of the same file
	m2, err := OpenShared(path, 4096)
	require.NoError(t, err)
	defer m2.Close()
	assert.Equal(t, []byte("persisted"), m2.Bytes()[:9])
}

func TestAdvise(t *testing.T) {
	m, err := MapAnon(4096)
	require.NoError(t, err)
	defer m.Close()

	assert.NoError(t, m.Advise(AccessSequential))
	assert.NoError(t, m.Advise(AccessRandom))

	require.NoError(t, m.Close())
	assert.ErrorIs(t, m.Advise(AccessRandom), ErrClosed)
}
