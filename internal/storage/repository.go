package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/storage/mock_repository.go -package=mock_storage

// LookupEntry records one raw API response. Attribute is empty for a
// full-detail lookup and the attribute name for a per-attribute lookup,
// so the two kinds of response for the same word map to distinct rows.
// The lookup_entries table has a unique key over (word, attribute).
type LookupEntry struct {
	Word      string          `db:"word" yaml:"word"`
	Attribute string          `db:"attribute" yaml:"attribute,omitempty"`
	SourceURL string          `db:"source_url" yaml:"source_url"`
	Response  json.RawMessage `db:"response" yaml:"response"`
	CreatedAt time.Time       `db:"created_at" yaml:"created_at"`
	UpdatedAt time.Time       `db:"updated_at" yaml:"updated_at"`
}

// MarshalYAML serializes LookupEntry with Response flattened to a JSON
// string, which keeps the exported YAML readable.
func (e LookupEntry) MarshalYAML() (interface{}, error) {
	type flattened struct {
		Word      string    `yaml:"word"`
		Attribute string    `yaml:"attribute,omitempty"`
		SourceURL string    `yaml:"source_url"`
		Response  string    `yaml:"response"`
		CreatedAt time.Time `yaml:"created_at"`
		UpdatedAt time.Time `yaml:"updated_at"`
	}
	return flattened{
		Word:      e.Word,
		Attribute: e.Attribute,
		SourceURL: e.SourceURL,
		Response:  string(e.Response),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}, nil
}

// LookupRepository defines operations for managing lookup entries.
type LookupRepository interface {
	FindAll(ctx context.Context) ([]LookupEntry, error)
	FindByWord(ctx context.Context, word string) ([]LookupEntry, error)
	Upsert(ctx context.Context, entry *LookupEntry) error
}

// DBLookupRepository implements LookupRepository using MySQL.
type DBLookupRepository struct {
	db *sqlx.DB
}

// NewDBLookupRepository creates a new DBLookupRepository.
func NewDBLookupRepository(db *sqlx.DB) *DBLookupRepository {
	return &DBLookupRepository{db: db}
}

// FindAll returns every lookup entry, grouped by word with the
// full-detail row first within each group.
func (r *DBLookupRepository) FindAll(ctx context.Context) ([]LookupEntry, error) {
	return r.find(ctx, "SELECT * FROM lookup_entries ORDER BY word, attribute")
}

// FindByWord returns every lookup entry recorded for word, one row per
// attribute. The result is empty when the word was never looked up.
func (r *DBLookupRepository) FindByWord(ctx context.Context, word string) ([]LookupEntry, error) {
	return r.find(ctx, "SELECT * FROM lookup_entries WHERE word = ? ORDER BY attribute", word)
}

func (r *DBLookupRepository) find(ctx context.Context, query string, args ...interface{}) ([]LookupEntry, error) {
	entries := []LookupEntry{}
	if err := r.db.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, fmt.Errorf("db.SelectContext(lookup_entries) > %w", err)
	}
	return entries, nil
}

// Upsert inserts entry, replacing an existing row with the same
// (word, attribute) pair.
func (r *DBLookupRepository) Upsert(ctx context.Context, entry *LookupEntry) error {
	_, err := r.db.NamedExecContext(ctx,
		`INSERT INTO lookup_entries (word, attribute, source_url, response)
		VALUES (:word, :attribute, :source_url, :response)
		ON DUPLICATE KEY UPDATE source_url = VALUES(source_url), response = VALUES(response)`,
		entry)
	if err != nil {
		return fmt.Errorf("db.NamedExecContext(upsert lookup_entry) > %w", err)
	}
	return nil
}
