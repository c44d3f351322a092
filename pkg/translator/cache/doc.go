/*
Package cache memoizes translator query results.

# Overview

Large rule sets applied to large path collections redo the same regex work
run after run. cache stores the derived values per (rule set, input string)
pair behind a small Store interface, with an in-memory implementation for
tests and single runs and a SQLite implementation that persists across
processes.

# Stores

	store := cache.NewMemoryStore()

	store, err := cache.NewSQLiteStore("./translations.db")
	defer store.Close()

# Memoizing a translator

Memoized wraps a translator's query surface with read-through caching:

	m := cache.NewMemoized(t, store, "mappings-v1")
	results := m.All([]string{"data/2024/observations.txt"})

Only result sets consisting entirely of strings are cached; queries whose
results carry tuples or other non-string values are computed every time.
Batch queries traverse string-major (each input resolved fully, in order),
since per-input caching cannot reproduce rule-major interleaving. Memoized
is deliberately not a translator.Translator: the composition algebra is
closed over the five core variants, and a caching wrapper has no place in
its merge rules. Compose first, wrap last.

The set name keys the cache. Bump it whenever the underlying rule set
changes; stale entries of old sets can be dropped with InvalidateAll.
*/
package cache
