package wordsapi

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileCache_Do(t *testing.T) {
	t.Run("miss fills and stores", func(t *testing.T) {
		dir := t.TempDir()
		cache := NewFileCache(dir)

		fillCount := 0
		got, err := cache.Do("effect-synonyms", func() ([]byte, error) {
			fillCount++
			return []byte(`{"synonyms":["outcome"]}`), nil
		})
		require.NoError(t, err)
		assert.Equal(t, `{"synonyms":["outcome"]}`, string(got))
		assert.Equal(t, 1, fillCount)

		stored, err := os.ReadFile(filepath.Join(dir, "effect-synonyms.json"))
		require.NoError(t, err)
		assert.Equal(t, got, stored)
	})

	t.Run("hit skips fill", func(t *testing.T) {
		dir := t.TempDir()
		cache := NewFileCache(dir)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "effect.json"), []byte(`{"word":"effect"}`), 0o644))

		got, err := cache.Do("effect", func() ([]byte, error) {
			t.Fatal("fill must not be called on a cache hit")
			return nil, nil
		})
		require.NoError(t, err)
		assert.Equal(t, `{"word":"effect"}`, string(got))
	})

	t.Run("fill error is not stored", func(t *testing.T) {
		dir := t.TempDir()
		cache := NewFileCache(dir)

		wantErr := errors.New("status code 404")
		_, err := cache.Do("zzzzz", func() ([]byte, error) {
			return nil, wantErr
		})
		require.ErrorIs(t, err, wantErr)

		_, err = os.Stat(filepath.Join(dir, "zzzzz.json"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("keys with path separators stay inside the root", func(t *testing.T) {
		dir := t.TempDir()
		cache := NewFileCache(dir)

		_, err := cache.Do("../escape/attempt", func() ([]byte, error) {
			return []byte(`{}`), nil
		})
		require.NoError(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "..%2Fescape%2Fattempt.json", entries[0].Name())

		// the escaped entry is still a hit for the same key
		got, err := cache.Do("../escape/attempt", func() ([]byte, error) {
			t.Fatal("fill must not be called on a cache hit")
			return nil, nil
		})
		require.NoError(t, err)
		assert.Equal(t, `{}`, string(got))
	})

	t.Run("missing root directory is created", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "cache")
		cache := NewFileCache(dir)

		_, err := cache.Do("effect", func() ([]byte, error) {
			return []byte(`{}`), nil
		})
		require.NoError(t, err)
	})
}

func TestParseResponseKey(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		wantWord string
		wantVerb Verb
	}{
		{
			name:     "full-detail key",
			key:      "effect",
			wantWord: "effect",
			wantVerb: "",
		},
		{
			name:     "per-attribute key",
			key:      "effect-synonyms",
			wantWord: "effect",
			wantVerb: VerbSynonyms,
		},
		{
			name:     "grouped verb key",
			key:      "effect-definitions",
			wantWord: "effect",
			wantVerb: VerbDefinitions,
		},
		{
			name:     "hyphenated word",
			key:      "well-being",
			wantWord: "well-being",
			wantVerb: "",
		},
		{
			name:     "hyphenated word with verb suffix",
			key:      ResponseKey("well-being", VerbRhymes),
			wantWord: "well-being",
			wantVerb: VerbRhymes,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, verb := ParseResponseKey(tt.key)
			assert.Equal(t, tt.wantWord, word)
			assert.Equal(t, tt.wantVerb, verb)
		})
	}
}

func TestFileCache_Walk(t *testing.T) {
	t.Run("visits newest entries first", func(t *testing.T) {
		dir := t.TempDir()
		cache := NewFileCache(dir)

		older := filepath.Join(dir, "older.json")
		newer := filepath.Join(dir, "newer.json")
		require.NoError(t, os.WriteFile(older, []byte(`{"word":"older"}`), 0o644))
		require.NoError(t, os.WriteFile(newer, []byte(`{"word":"newer"}`), 0o644))
		require.NoError(t, os.Chtimes(older, time.Now().Add(-time.Hour), time.Now().Add(-time.Hour)))

		var keys []string
		err := cache.Walk(func(key string, body []byte) error {
			keys = append(keys, key)
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"newer", "older"}, keys)
	})

	t.Run("skips non-json files", func(t *testing.T) {
		dir := t.TempDir()
		cache := NewFileCache(dir)
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("*"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "effect.json"), []byte(`{}`), 0o644))

		var keys []string
		err := cache.Walk(func(key string, body []byte) error {
			keys = append(keys, key)
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"effect"}, keys)
	})

	t.Run("escaped keys round-trip", func(t *testing.T) {
		dir := t.TempDir()
		cache := NewFileCache(dir)
		_, err := cache.Do("set up/extra", func() ([]byte, error) {
			return []byte(`{}`), nil
		})
		require.NoError(t, err)

		var keys []string
		err = cache.Walk(func(key string, body []byte) error {
			keys = append(keys, key)
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"set up/extra"}, keys)
	})

	t.Run("missing directory walks nothing", func(t *testing.T) {
		cache := NewFileCache(filepath.Join(t.TempDir(), "missing"))
		err := cache.Walk(func(key string, body []byte) error {
			t.Fatal("unexpected entry")
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("callback error stops the walk", func(t *testing.T) {
		dir := t.TempDir()
		cache := NewFileCache(dir)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "effect.json"), []byte(`{}`), 0o644))

		wantErr := errors.New("sink failed")
		err := cache.Walk(func(key string, body []byte) error {
			return wantErr
		})
		assert.ErrorIs(t, err, wantErr)
	})
}
