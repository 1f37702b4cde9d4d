package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileBackendRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data.json")
	b := NewFileBackend(path)

	// Nothing persisted yet.
	raw, err := b.Load()
	require.NoError(t, err)
	assert.Nil(t, raw)

	require.NoError(t, b.Save([]byte(`{"hello":"world"}`)))
	raw, err = b.Load()
	require.NoError(t, err)
	assert.Equal(t, `{"hello":"world"}`, string(raw))

	// Overwrite, then check no temp files were left behind.
	require.NoError(t, b.Save([]byte(`{}`)))
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "data.json", entries[0].Name())

	require.NoError(t, b.Close())
}

func TestBoltBackendRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.db")
	b, err := NewBoltBackend(path)
	require.NoError(t, err)
	defer b.Close()

	raw, err := b.Load()
	require.NoError(t, err)
	assert.Nil(t, raw)

	require.NoError(t, b.Save([]byte(`{"a":1}`)))
	raw, err = b.Load()
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(raw))

	require.NoError(t, b.Save([]byte(`{"a":2}`)))
	raw, err = b.Load()
	require.NoError(t, err)
	assert.Equal(t, `{"a":2}`, string(raw))
}

func TestBoltBackendReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.db")

	b, err := NewBoltBackend(path)
	require.NoError(t, err)
	require.NoError(t, b.Save([]byte(`{"kept":true}`)))
	require.NoError(t, b.Close())

	b, err = NewBoltBackend(path)
	require.NoError(t, err)
	defer b.Close()
	raw, err := b.Load()
	require.NoError(t, err)
	assert.Equal(t, `{"kept":true}`, string(raw))
}

func TestMemoryBackendErrorHooks(t *testing.T) {
	b := NewMemoryBackend()
	require.NoError(t, b.Save([]byte("x")))

	b.LoadErr = assert.AnError
	_, err := b.Load()
	assert.Error(t, err)

	b.LoadErr = nil
	b.SaveErr = assert.AnError
	assert.Error(t, b.Save([]byte("y")))

	// Failed save must not clobber the stored payload.
	b.SaveErr = nil
	raw, err := b.Load()
	require.NoError(t, err)
	assert.Equal(t, "x", string(raw))
}
