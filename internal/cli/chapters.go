package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/cp4-practice/internal/book"
	"github.com/pfrederiksen/cp4-practice/internal/titles"
)

var flagChaptersFormat string

func newChaptersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chapters",
		Short: "List the book's chapters and section counts",
		RunE:  runChapters,
	}

	cmd.Flags().StringVar(&flagChaptersFormat, "format", "text", "Output format: text or json")

	return cmd
}

// runChapters is the chapters command logic
func runChapters(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagChaptersFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagChaptersFormat)
	}

	table, err := titles.Load()
	if err != nil {
		return fmt.Errorf("loading title table: %w", err)
	}

	listings := make([]ChapterListing, 0, book.NumChapters)
	for _, id := range table.ChapterIDs() {
		info, err := table.Chapter(id)
		if err != nil {
			return err
		}
		listings = append(listings, ChapterListing{
			ID:       id,
			Title:    info.Title,
			Sections: len(info.Sections),
		})
	}

	if err := WriteChapterList(os.Stdout, listings, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
