package datasync

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v3"

	"github.com/lexigo/wordsapi"
	mock_storage "github.com/lexigo/wordsapi/internal/mocks/storage"
	"github.com/lexigo/wordsapi/internal/storage"
)

func TestImportCache(t *testing.T) {
	tests := []struct {
		name      string
		files     map[string]string
		mockSetup func(repo *mock_storage.MockLookupRepository)

		want    ImportResult
		wantErr bool
	}{
		{
			name: "full-detail and per-attribute bodies for one word become distinct rows",
			files: map[string]string{
				"effect.json":          `{"word":"effect","results":[]}`,
				"effect-synonyms.json": `{"word":"effect","synonyms":["outcome"]}`,
			},
			mockSetup: func(repo *mock_storage.MockLookupRepository) {
				repo.EXPECT().
					Upsert(gomock.Any(), &storage.LookupEntry{
						Word:      "effect",
						SourceURL: "https://wordsapiv1.p.rapidapi.com/words/effect",
						Response:  []byte(`{"word":"effect","results":[]}`),
					}).
					Return(nil)
				repo.EXPECT().
					Upsert(gomock.Any(), &storage.LookupEntry{
						Word:      "effect",
						Attribute: "synonyms",
						SourceURL: "https://wordsapiv1.p.rapidapi.com/words/effect/synonyms",
						Response:  []byte(`{"word":"effect","synonyms":["outcome"]}`),
					}).
					Return(nil)
			},
			want: ImportResult{Imported: 2},
		},
		{
			name: "skips bodies that are not JSON objects",
			files: map[string]string{
				"broken.json": `not json`,
			},
			mockSetup: func(repo *mock_storage.MockLookupRepository) {},
			want:      ImportResult{Skipped: 1},
		},
		{
			name: "upsert error stops the import",
			files: map[string]string{
				"effect.json": `{"word":"effect"}`,
			},
			mockSetup: func(repo *mock_storage.MockLookupRepository) {
				repo.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					Return(errors.New("connection lost"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_storage.NewMockLookupRepository(ctrl)
			tt.mockSetup(repo)

			dir := t.TempDir()
			for name, content := range tt.files {
				require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
			}
			cache := wordsapi.NewFileCache(dir)

			got, err := ImportCache(context.Background(), repo, cache, "wordsapiv1.p.rapidapi.com")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExportYAML(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	t.Run("writes all entries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_storage.NewMockLookupRepository(ctrl)
		repo.EXPECT().FindAll(gomock.Any()).Return([]storage.LookupEntry{
			{
				Word:      "effect",
				SourceURL: "https://wordsapiv1.p.rapidapi.com/words/effect",
				Response:  []byte(`{"word":"effect"}`),
				CreatedAt: now,
				UpdatedAt: now,
			},
		}, nil)

		path := filepath.Join(t.TempDir(), "lookup_entries.yml")
		require.NoError(t, ExportYAML(context.Background(), repo, path))

		contents, err := os.ReadFile(path)
		require.NoError(t, err)

		var decoded []map[string]any
		require.NoError(t, yaml.Unmarshal(contents, &decoded))
		require.Len(t, decoded, 1)
		assert.Equal(t, "effect", decoded[0]["word"])
		assert.Equal(t, `{"word":"effect"}`, decoded[0]["response"])
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_storage.NewMockLookupRepository(ctrl)
		repo.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("connection lost"))

		err := ExportYAML(context.Background(), repo, filepath.Join(t.TempDir(), "out.yml"))
		assert.Error(t, err)
	})
}
