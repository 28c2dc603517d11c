package wordsapi

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ResponseCache stores raw API response bodies keyed by request. A cache is
// consulted before the network and filled after a successful fetch, so a
// Service with a cache skips lookups it has already answered.
type ResponseCache interface {
	Do(key string, fill func() ([]byte, error)) ([]byte, error)
}

// ResponseKey builds the cache key for one request: the word alone for a
// full-detail lookup, or word-verb for a per-attribute lookup.
func ResponseKey(word string, verb Verb) string {
	if verb == "" {
		return word
	}
	return word + "-" + string(verb)
}

// ParseResponseKey splits a cache key back into its word and verb. A key
// with no known verb suffix is a full-detail key. A word that itself ends
// in a verb name cannot be told apart from a per-attribute key.
func ParseResponseKey(key string) (string, Verb) {
	for verb := range flatRules {
		if word, ok := strings.CutSuffix(key, "-"+string(verb)); ok && word != "" {
			return word, verb
		}
	}
	for verb := range groupRules {
		if word, ok := strings.CutSuffix(key, "-"+string(verb)); ok && word != "" {
			return word, verb
		}
	}
	return key, ""
}

// FileCache is a ResponseCache keeping one JSON file per key under a root
// directory. There is no eviction.
type FileCache struct {
	rootDir string
}

// NewFileCache creates a FileCache rooted at cacheDirectory.
func NewFileCache(cacheDirectory string) *FileCache {
	return &FileCache{
		rootDir: cacheDirectory,
	}
}

func (cache *FileCache) filePath(key string) string {
	// Keys are derived from looked-up words and may contain path
	// separators; escape them so every entry stays a single file
	// directly under the root.
	return filepath.Join(cache.rootDir, url.PathEscape(key)+".json")
}

// Do returns the cached body for key, calling fill and storing its result
// on a miss. A fill error is returned without touching the cache.
func (cache *FileCache) Do(key string, fill func() ([]byte, error)) ([]byte, error) {
	localFilePath := cache.filePath(key)
	if _, err := os.Stat(localFilePath); err == nil {
		contents, err := cache.read(localFilePath)
		if err != nil {
			return nil, fmt.Errorf("cache.read > %w", err)
		}
		return contents, nil
	}

	contents, err := fill()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cache.rootDir, 0o755); err != nil {
		return contents, fmt.Errorf("os.MkdirAll > %w", err)
	}
	file, err := os.Create(localFilePath)
	if err != nil {
		return contents, fmt.Errorf("os.Create > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()
	if _, err := file.Write(contents); err != nil {
		return contents, fmt.Errorf("file.Write > %w", err)
	}
	return contents, nil
}

func (cache *FileCache) read(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	contents, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll > %w", err)
	}
	return contents, nil
}

// Walk visits every cached entry, most recently written first, and calls fn
// with the entry's key and raw body.
func (cache *FileCache) Walk(fn func(key string, body []byte) error) error {
	entries, err := os.ReadDir(cache.rootDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("os.ReadDir > %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		// sort by file's timestamp in descending order

		iStat, err := os.Stat(filepath.Join(cache.rootDir, entries[i].Name()))
		if err != nil {
			return false
		}
		jStat, err := os.Stat(filepath.Join(cache.rootDir, entries[j].Name()))
		if err != nil {
			return false
		}
		return iStat.ModTime().After(jStat.ModTime())
	})

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".json") {
			continue
		}
		key := strings.TrimSuffix(name, ".json")
		if unescaped, err := url.PathUnescape(key); err == nil {
			key = unescaped
		}

		contents, err := cache.read(filepath.Join(cache.rootDir, name))
		if err != nil {
			return fmt.Errorf("key: %s, cache.read > %w", key, err)
		}
		if err := fn(key, contents); err != nil {
			return fmt.Errorf("key: %s > %w", key, err)
		}
	}
	return nil
}
