package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lexigo/wordsapi"
	"github.com/lexigo/wordsapi/internal/config"
	"github.com/lexigo/wordsapi/internal/datasync"
	"github.com/lexigo/wordsapi/internal/storage"
)

func newHistoryCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "history",
		Short: "Manage the lookup history stored in the database",
	}
	command.AddCommand(
		newHistoryListCommand(),
		newHistorySyncCommand(),
		newHistoryExportCommand(),
	)
	return command
}

func openRepository(cfg *config.Config) (storage.LookupRepository, func(), error) {
	db, err := storage.Open(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("storage.Open > %w", err)
	}
	closeDB := func() {
		_ = db.Close()
	}
	return storage.NewDBLookupRepository(db), closeDB, nil
}

func newHistoryListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [word]",
		Short: "List the lookup history, optionally for a single word",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			repo, closeDB, err := openRepository(cfg)
			if err != nil {
				return err
			}
			defer closeDB()

			var entries []storage.LookupEntry
			if len(args) == 1 {
				entries, err = repo.FindByWord(cmd.Context(), args[0])
			} else {
				entries, err = repo.FindAll(cmd.Context())
			}
			if err != nil {
				return fmt.Errorf("repo.Find > %w", err)
			}
			for _, entry := range entries {
				attribute := entry.Attribute
				if attribute == "" {
					attribute = "full"
				}
				fmt.Printf("%s\t%s\t%s\n", entry.Word, attribute, entry.UpdatedAt.Format("2006-01-02"))
			}
			return nil
		},
	}
}

func newHistorySyncCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Import file-cached responses into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			repo, closeDB, err := openRepository(cfg)
			if err != nil {
				return err
			}
			defer closeDB()

			cache := wordsapi.NewFileCache(cfg.Dictionary.CacheDirectory)
			result, err := datasync.ImportCache(cmd.Context(), repo, cache, cfg.Dictionary.Host)
			if err != nil {
				return fmt.Errorf("datasync.ImportCache > %w", err)
			}

			fmt.Printf("imported %d, skipped %d\n", result.Imported, result.Skipped)
			return nil
		},
	}
}

func newHistoryExportCommand() *cobra.Command {
	var output string
	command := &cobra.Command{
		Use:   "export",
		Short: "Export the lookup history to a YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			repo, closeDB, err := openRepository(cfg)
			if err != nil {
				return err
			}
			defer closeDB()

			if err := datasync.ExportYAML(cmd.Context(), repo, output); err != nil {
				return fmt.Errorf("datasync.ExportYAML > %w", err)
			}

			fmt.Printf("wrote %s\n", output)
			return nil
		},
	}
	command.Flags().StringVar(&output, "output", "lookup_entries.yml", "output YAML file path")

	return command
}
