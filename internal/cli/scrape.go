package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/cp4-practice/internal/book"
	"github.com/pfrederiksen/cp4-practice/internal/scraper"
	"github.com/pfrederiksen/cp4-practice/internal/storage"
	"github.com/pfrederiksen/cp4-practice/internal/titles"
)

var (
	flagScrapeDelay  time.Duration
	flagScrapeFormat string
)

func newScrapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Scrape all nine chapters and write the problem document",
		Long: `Fetches every chapter's problem table from cpbook.net for both judges,
merges and renames the result, and writes it to problems.json in the data
directory. The whole book is fetched on every run; there is no resume.`,
		RunE: runScrape,
	}

	cmd.Flags().DurationVar(&flagScrapeDelay, "delay", scraper.ChapterDelay, "Courtesy pause after each chapter")
	cmd.Flags().StringVar(&flagScrapeFormat, "format", "text", "Output format: text or json")

	return cmd
}

// runScrape is the scrape command logic
func runScrape(cmd *cobra.Command, args []string) error {
	// Validate format
	format := OutputFormat(strings.ToLower(flagScrapeFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagScrapeFormat)
	}

	// Initialize storage
	store, err := storage.New(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	table, err := titles.Load()
	if err != nil {
		return fmt.Errorf("loading title table: %w", err)
	}

	delay := cfg.ChapterDelay
	if cmd.Flags().Changed("delay") {
		delay = flagScrapeDelay
	}

	sc := scraper.New(scraper.Config{
		BaseURL:   cfg.BaseURL,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.Timeout,
		Delay:     delay,
	})

	start := time.Now()
	tree, err := sc.FetchBook()
	if err != nil {
		return fmt.Errorf("scraping book: %w", err)
	}

	doc, err := book.NewRenamer(table).RenameBook(tree)
	if err != nil {
		return fmt.Errorf("renaming book: %w", err)
	}

	if err := store.SaveDocument(doc); err != nil {
		return fmt.Errorf("saving document: %w", err)
	}

	result := buildScrapeResult(doc, store.DocumentPath(), time.Since(start))
	if err := WriteScrapeResult(os.Stdout, result, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
