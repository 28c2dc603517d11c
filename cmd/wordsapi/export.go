package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lexigo/wordsapi"
	"github.com/lexigo/wordsapi/internal/report"
)

func newExportCommand() *cobra.Command {
	var toPDF bool
	command := &cobra.Command{
		Use:   "export <word>",
		Short: "Write a word report as markdown, optionally converted to PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := args[0]

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			service, err := newService(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = service.Close()
			}()

			result, err := service.Fetch(cmd.Context(), word, wordsapi.VerbDefinitions, true)
			if err != nil {
				return fmt.Errorf("service.Fetch > %w", err)
			}

			path, err := report.WriteMarkdown(cfg.Outputs.ReportDirectory, word, result)
			if err != nil {
				return fmt.Errorf("report.WriteMarkdown > %w", err)
			}
			if toPDF {
				path, err = report.ConvertMarkdownToPDF(path)
				if err != nil {
					return fmt.Errorf("report.ConvertMarkdownToPDF > %w", err)
				}
			}

			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}
	command.Flags().BoolVar(&toPDF, "pdf", false, "also convert the markdown report to PDF")

	return command
}
