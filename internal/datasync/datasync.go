// Package datasync moves lookup responses between the file cache, the
// database and YAML exports.
package datasync

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lexigo/wordsapi"
	"github.com/lexigo/wordsapi/internal/storage"
)

// ImportResult tracks counts for one cache import.
type ImportResult struct {
	Imported int
	Skipped  int
}

// ImportCache upserts every cached response body into the repository.
// Bodies that are not JSON objects are counted as skipped. The word and
// attribute are recovered from the cache key, so the full-detail body and
// the per-attribute bodies for one word land in distinct rows regardless
// of the order Walk visits them in.
func ImportCache(ctx context.Context, repo storage.LookupRepository, cache *wordsapi.FileCache, host string) (ImportResult, error) {
	var result ImportResult
	err := cache.Walk(func(key string, body []byte) error {
		var decoded map[string]any
		if err := json.Unmarshal(body, &decoded); err != nil {
			result.Skipped++
			return nil
		}

		word, verb := wordsapi.ParseResponseKey(key)
		sourceURL := fmt.Sprintf("https://%s/words/%s", host, word)
		if verb != "" {
			sourceURL += "/" + string(verb)
		}

		entry := &storage.LookupEntry{
			Word:      word,
			Attribute: string(verb),
			SourceURL: sourceURL,
			Response:  json.RawMessage(body),
		}
		if err := repo.Upsert(ctx, entry); err != nil {
			return fmt.Errorf("repo.Upsert > %w", err)
		}
		result.Imported++
		return nil
	})
	if err != nil {
		return result, fmt.Errorf("cache.Walk > %w", err)
	}
	return result, nil
}

// ExportYAML writes every stored lookup entry to a YAML file at path.
func ExportYAML(ctx context.Context, repo storage.LookupRepository, path string) error {
	entries, err := repo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("repo.FindAll > %w", err)
	}
	if err := writeYAML(path, entries); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func writeYAML(path string, data interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	enc := yaml.NewEncoder(f)
	defer func() { _ = enc.Close() }()
	return enc.Encode(data)
}
