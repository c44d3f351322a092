package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeFactory creates a fresh store for conformance testing.
type storeFactory func(t *testing.T) Store

// testStoreConformance runs the Store contract against any implementation.
func testStoreConformance(t *testing.T, newStore storeFactory) {
	t.Run("put and get", func(t *testing.T) {
		s := newStore(t)
		defer s.Close()

		require.NoError(t, s.Put("set1", "input", []string{"a", "b"}))

		got, err := s.Get("set1", "input")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, got)
	})

	t.Run("get missing entry", func(t *testing.T) {
		s := newStore(t)
		defer s.Close()

		_, err := s.Get("set1", "absent")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("put overwrites", func(t *testing.T) {
		s := newStore(t)
		defer s.Close()

		require.NoError(t, s.Put("set1", "input", []string{"old"}))
		require.NoError(t, s.Put("set1", "input", []string{"new"}))

		got, err := s.Get("set1", "input")
		require.NoError(t, err)
		assert.Equal(t, []string{"new"}, got)
	})

	t.Run("empty result set round-trips", func(t *testing.T) {
		s := newStore(t)
		defer s.Close()

		require.NoError(t, s.Put("set1", "input", []string{}))

		got, err := s.Get("set1", "input")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("sets are isolated", func(t *testing.T) {
		s := newStore(t)
		defer s.Close()

		require.NoError(t, s.Put("set1", "input", []string{"one"}))
		require.NoError(t, s.Put("set2", "input", []string{"two"}))

		got, err := s.Get("set2", "input")
		require.NoError(t, err)
		assert.Equal(t, []string{"two"}, got)
	})

	t.Run("delete", func(t *testing.T) {
		s := newStore(t)
		defer s.Close()

		require.NoError(t, s.Put("set1", "input", []string{"a"}))
		require.NoError(t, s.Delete("set1", "input"))

		_, err := s.Get("set1", "input")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete missing entry is nil", func(t *testing.T) {
		s := newStore(t)
		defer s.Close()

		assert.NoError(t, s.Delete("set1", "absent"))
	})

	t.Run("delete set", func(t *testing.T) {
		s := newStore(t)
		defer s.Close()

		require.NoError(t, s.Put("set1", "a", []string{"1"}))
		require.NoError(t, s.Put("set1", "b", []string{"2"}))
		require.NoError(t, s.Put("set2", "a", []string{"3"}))

		require.NoError(t, s.DeleteSet("set1"))

		_, err := s.Get("set1", "a")
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = s.Get("set1", "b")
		assert.ErrorIs(t, err, ErrNotFound)

		got, err := s.Get("set2", "a")
		require.NoError(t, err)
		assert.Equal(t, []string{"3"}, got)
	})

	t.Run("closed store rejects operations", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Close())

		assert.ErrorIs(t, s.Put("set1", "a", []string{"1"}), ErrStoreClosed)
		_, err := s.Get("set1", "a")
		assert.ErrorIs(t, err, ErrStoreClosed)
		assert.ErrorIs(t, s.Delete("set1", "a"), ErrStoreClosed)
		assert.ErrorIs(t, s.DeleteSet("set1"), ErrStoreClosed)
	})
}
