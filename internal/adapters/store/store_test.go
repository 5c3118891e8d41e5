package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/prj/internal/adapters/store"
	"go.trai.ch/prj/internal/core/domain"
)

func TestStore_SetGetClear(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "state")
	s, err := store.NewStoreWithPath(dir)
	require.NoError(t, err)

	t.Run("get missing", func(t *testing.T) {
		got, err := s.Get("missing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("set creates directory and get returns value", func(t *testing.T) {
		require.NoError(t, s.Set("projects", []byte(`[{"name":"a"}]`)))

		got, err := s.Get("projects")
		require.NoError(t, err)
		assert.JSONEq(t, `[{"name":"a"}]`, string(got))

		info, err := os.Stat(filepath.Join(dir, "projects.json"))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(domain.PrivateFilePerm), info.Mode().Perm())
	})

	t.Run("set replaces", func(t *testing.T) {
		require.NoError(t, s.Set("roots", []byte("one")))
		require.NoError(t, s.Set("roots", []byte("two")))

		got, err := s.Get("roots")
		require.NoError(t, err)
		assert.Equal(t, "two", string(got))
	})

	t.Run("empty value is distinct from absent", func(t *testing.T) {
		require.NoError(t, s.Set("empty", []byte{}))

		got, err := s.Get("empty")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("clear", func(t *testing.T) {
		require.NoError(t, s.Set("gone", []byte("x")))
		require.NoError(t, s.Clear("gone"))

		got, err := s.Get("gone")
		require.NoError(t, err)
		assert.Nil(t, got)

		require.NoError(t, s.Clear("gone"), "clearing an absent key is a no-op")
	})

	t.Run("no temp files are left behind", func(t *testing.T) {
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		for _, e := range entries {
			assert.NotContains(t, e.Name(), ".tmp")
		}
	})
}

func TestStore_InvalidKey(t *testing.T) {
	t.Parallel()

	s, err := store.NewStoreWithPath(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "../escape", "a/b", ".hidden"} {
		_, err := s.Get(key)
		require.ErrorContains(t, err, domain.ErrInvalidStoreKey.Error(), key)
		require.ErrorContains(t, s.Set(key, nil), domain.ErrInvalidStoreKey.Error(), key)
		require.ErrorContains(t, s.Clear(key), domain.ErrInvalidStoreKey.Error(), key)
	}
}

func TestNewStoreWithPath_Empty(t *testing.T) {
	t.Parallel()

	_, err := store.NewStoreWithPath("")
	require.ErrorContains(t, err, domain.ErrStoreCreateFailed.Error())
}

func TestNewStore_UsesStateDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(domain.StateEnvVar, dir)

	s, err := store.NewStore()
	require.NoError(t, err)
	assert.Equal(t, dir, s.Dir())
}
