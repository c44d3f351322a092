package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/translator/pkg/translator"
)

// countingTranslator wraps a translator and counts All calls, so tests can
// tell cache hits from recomputation.
type countingTranslator struct {
	translator.Translator
	calls int
}

func (c *countingTranslator) All(input any, opts ...translator.QueryOption) []any {
	c.calls++
	return c.Translator.All(input, opts...)
}

func newCounting(entries map[string]any) *countingTranslator {
	return &countingTranslator{Translator: translator.NewDict(entries)}
}

// TestMemoized_ReadThrough tests the miss-then-hit cycle.
func TestMemoized_ReadThrough(t *testing.T) {
	ct := newCounting(map[string]any{"apple": "fruit"})
	store := NewMemoryStore()
	defer store.Close()
	m := NewMemoized(ct, store, "food")

	got := m.All("apple")
	assert.Equal(t, []any{"fruit"}, got)
	assert.Equal(t, 1, ct.calls)

	got = m.All("apple")
	assert.Equal(t, []any{"fruit"}, got)
	assert.Equal(t, 1, ct.calls, "second query should hit the cache")
}

// TestMemoized_EmptyResultsCached tests that a miss writes an empty entry,
// so repeat misses do not recompute.
func TestMemoized_EmptyResultsCached(t *testing.T) {
	ct := newCounting(map[string]any{"apple": "fruit"})
	store := NewMemoryStore()
	defer store.Close()
	m := NewMemoized(ct, store, "food")

	assert.Empty(t, m.All("pear"))
	assert.Empty(t, m.All("pear"))
	assert.Equal(t, 1, ct.calls, "empty result sets are cached too")
}

// TestMemoized_NonStringResultsBypassCache tests that tuple or non-string
// values are computed every time.
func TestMemoized_NonStringResultsBypassCache(t *testing.T) {
	ct := newCounting(map[string]any{"pair": translator.Tuple{"a", 1}})
	store := NewMemoryStore()
	defer store.Close()
	m := NewMemoized(ct, store, "pairs")

	assert.Equal(t, []any{translator.Tuple{"a", 1}}, m.All("pair"))
	assert.Equal(t, []any{translator.Tuple{"a", 1}}, m.All("pair"))
	assert.Equal(t, 2, ct.calls)
	assert.Equal(t, 0, store.Len())
}

// TestMemoized_ListInput tests per-string resolution and de-duplication.
func TestMemoized_ListInput(t *testing.T) {
	ct := newCounting(map[string]any{"a": "same", "b": "same", "c": "other"})
	store := NewMemoryStore()
	defer store.Close()
	m := NewMemoized(ct, store, "letters")

	got := m.All([]string{"a", "b", "c"})
	assert.Equal(t, []any{"same", "other"}, got)
	assert.Equal(t, 3, ct.calls, "each input string resolves separately")
	assert.Equal(t, 3, store.Len())
}

// TestMemoized_First tests the short-circuit query through the cache.
func TestMemoized_First(t *testing.T) {
	ct := newCounting(map[string]any{"b": "found"})
	store := NewMemoryStore()
	defer store.Close()
	m := NewMemoized(ct, store, "set")

	got, ok := m.First([]string{"a", "b"})
	require.True(t, ok)
	assert.Equal(t, "found", got)

	_, ok = m.First("absent")
	assert.False(t, ok)
}

// TestMemoized_Invalidate tests dropping entries.
func TestMemoized_Invalidate(t *testing.T) {
	ct := newCounting(map[string]any{"apple": "fruit", "beet": "vegetable"})
	store := NewMemoryStore()
	defer store.Close()
	m := NewMemoized(ct, store, "food")

	m.All("apple")
	m.All("beet")
	require.Equal(t, 2, ct.calls)

	require.NoError(t, m.Invalidate("apple"))
	m.All("apple")
	m.All("beet")
	assert.Equal(t, 3, ct.calls, "only the invalidated entry recomputes")

	require.NoError(t, m.InvalidateAll())
	m.All("apple")
	m.All("beet")
	assert.Equal(t, 5, ct.calls)
}

// TestMemoized_StoreFailureDegrades tests that a broken store turns every
// query into a recomputation instead of an error.
func TestMemoized_StoreFailureDegrades(t *testing.T) {
	ct := newCounting(map[string]any{"apple": "fruit"})
	store := NewMemoryStore()
	require.NoError(t, store.Close())
	m := NewMemoized(ct, store, "food")

	assert.Equal(t, []any{"fruit"}, m.All("apple"))
	assert.Equal(t, []any{"fruit"}, m.All("apple"))
	assert.Equal(t, 2, ct.calls)
}

// TestMemoized_Underlying tests access to the wrapped translator.
func TestMemoized_Underlying(t *testing.T) {
	d := translator.NewDict(map[string]any{"a": "1"})
	m := NewMemoized(d, NewMemoryStore(), "set")
	assert.Equal(t, translator.Translator(d), m.Underlying())
}
