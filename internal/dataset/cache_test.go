package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_MemoizesPerPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte("a\n"), 0o644))

	loads := 0
	cache := NewCache(func(p string) (string, error) {
		loads++
		data, err := os.ReadFile(p)
		return string(data), err
	})

	for i := 0; i < 3; i++ {
		value, err := cache.Get(path)
		require.NoError(t, err)
		assert.Equal(t, "a\n", value)
	}

	assert.Equal(t, 1, loads)
}

func TestCache_ReloadsOnModTimeChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte("a\n"), 0o644))

	loads := 0
	cache := NewCache(func(p string) (string, error) {
		loads++
		data, err := os.ReadFile(p)
		return string(data), err
	})

	_, err := cache.Get(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("b\n"), 0o644))
	newTime := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, newTime, newTime))

	value, err := cache.Get(path)
	require.NoError(t, err)
	assert.Equal(t, "b\n", value)
	assert.Equal(t, 2, loads)
}

func TestCache_Invalidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte("a\n"), 0o644))

	loads := 0
	cache := NewCache(func(p string) (string, error) {
		loads++
		return "", nil
	})

	_, err := cache.Get(path)
	require.NoError(t, err)
	cache.Invalidate(path)
	_, err = cache.Get(path)
	require.NoError(t, err)

	assert.Equal(t, 2, loads)
}

func TestCache_MissingFile(t *testing.T) {
	cache := NewCache(func(p string) (string, error) {
		t.Fatal("load should not be called for a missing file")
		return "", nil
	})

	_, err := cache.Get(filepath.Join(t.TempDir(), "absent.csv"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestCache_LoadErrorNotCached(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte("a\n"), 0o644))

	loads := 0
	cache := NewCache(func(p string) (string, error) {
		loads++
		if loads == 1 {
			return "", errors.New("transient")
		}
		return "ok", nil
	})

	_, err := cache.Get(path)
	assert.Error(t, err)

	value, err := cache.Get(path)
	require.NoError(t, err)
	assert.Equal(t, "ok", value)
	assert.Equal(t, 2, loads)
}
