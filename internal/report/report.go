// Package report renders looked-up words as markdown and PDF documents.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mandolyte/mdtopdf"

	"github.com/lexigo/wordsapi"
)

// Markdown renders the attributes of one word as a markdown document.
// Only the attributes present in result appear in the output.
func Markdown(word string, result map[wordsapi.Verb]wordsapi.Value) string {
	builder := strings.Builder{}
	builder.WriteString("# " + word + "\n")

	if pronunciation, ok := result[wordsapi.VerbPronunciation]; ok && pronunciation.Text() != "" {
		builder.WriteString(fmt.Sprintf("\nPronunciation: /%s/\n", pronunciation.Text()))
	}
	if syllables, ok := result[wordsapi.VerbSyllables]; ok && !syllables.IsEmpty() {
		builder.WriteString(fmt.Sprintf("\nSyllables: %s\n", strings.Join(syllables.Strings(), "-")))
	}

	if definitions, ok := result[wordsapi.VerbDefinitions]; ok {
		for _, group := range definitions.Groups() {
			builder.WriteString(fmt.Sprintf("\n## %s\n", group.PartOfSpeech))
			for i, entry := range group.Entries {
				builder.WriteString(fmt.Sprintf("\n%d. %s\n", i+1, entry.Definition))
				for _, verb := range []wordsapi.Verb{
					wordsapi.VerbSynonyms,
					wordsapi.VerbAntonyms,
					wordsapi.VerbExamples,
					wordsapi.VerbSimilarTo,
					wordsapi.VerbTypeOf,
					wordsapi.VerbDerivation,
				} {
					if items := entry.Details[verb]; len(items) > 0 {
						builder.WriteString(fmt.Sprintf("   - %s: %s\n", verb, strings.Join(items, ", ")))
					}
				}
			}
		}
	}

	return builder.String()
}

// WriteMarkdown writes the markdown report for word into dir and returns
// the file path.
func WriteMarkdown(dir, word string, result map[wordsapi.Verb]wordsapi.Value) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("os.MkdirAll > %w", err)
	}

	path := filepath.Join(dir, word+".md")
	if err := os.WriteFile(path, []byte(Markdown(word, result)), 0o644); err != nil {
		return "", fmt.Errorf("os.WriteFile > %w", err)
	}
	return path, nil
}

// ConvertMarkdownToPDF converts a markdown file to PDF using mdtopdf package
// The PDF file will be created in the same directory as the markdown file
func ConvertMarkdownToPDF(markdownPath string) (string, error) {
	if !strings.HasSuffix(markdownPath, ".md") {
		return "", fmt.Errorf("input file must have .md extension: %s", markdownPath)
	}

	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}

	pdfPath := strings.TrimSuffix(markdownPath, ".md") + ".pdf"

	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(content); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}

	return absPath, nil
}
