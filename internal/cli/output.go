package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pfrederiksen/cp4-practice/internal/book"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// ScrapeResult summarizes a completed scrape
type ScrapeResult struct {
	ScrapedAt     time.Time      `json:"scraped_at"`
	DocumentPath  string         `json:"document_path"`
	Chapters      []ChapterStats `json:"chapters"`
	TotalProblems int            `json:"total_problems"`
	TotalStarred  int            `json:"total_starred"`
	Elapsed       string         `json:"elapsed"`
}

// ChapterStats counts one chapter's contents. For the rare-topics chapter
// Sections counts its topics.
type ChapterStats struct {
	Name     string `json:"name"`
	Sections int    `json:"sections"`
	Problems int    `json:"problems"`
	Starred  int    `json:"starred"`
}

// ChapterListing is one row of the chapters command
type ChapterListing struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Sections int    `json:"sections"`
}

// buildScrapeResult counts the document's chapters in book order.
func buildScrapeResult(doc book.Document, path string, elapsed time.Duration) *ScrapeResult {
	result := &ScrapeResult{
		ScrapedAt:    time.Now().UTC(),
		DocumentPath: path,
		Elapsed:      elapsed.Round(time.Millisecond).String(),
	}

	for n := 1; n <= book.NumChapters; n++ {
		name, chapter, err := doc.Chapter(n)
		if err != nil {
			continue
		}

		stats := ChapterStats{Name: name}
		if chapter.Rare != nil {
			stats.Sections = len(chapter.Rare)
			countSection(chapter.Rare, &stats)
		} else {
			stats.Sections = len(chapter.Sections)
			for _, section := range chapter.Sections {
				countSection(section, &stats)
			}
		}

		result.Chapters = append(result.Chapters, stats)
		result.TotalProblems += stats.Problems
		result.TotalStarred += stats.Starred
	}

	return result
}

// countSection adds a section's per-judge problem counts to stats.
func countSection(section book.FormattedSection, stats *ChapterStats) {
	for _, probs := range section {
		if probs.UVa != nil {
			stats.Problems += probs.UVa.Len()
			stats.Starred += len(probs.UVa.Starred)
		}
		if probs.Kattis != nil {
			stats.Problems += probs.Kattis.Len()
			stats.Starred += len(probs.Kattis.Starred)
		}
	}
}

// WriteScrapeResult writes the result in the specified format
func WriteScrapeResult(w io.Writer, result *ScrapeResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeScrapeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteChapterList writes the chapter listing in the specified format
func WriteChapterList(w io.Writer, chapters []ChapterListing, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, chapters)
	case FormatText:
		for _, ch := range chapters {
			fmt.Fprintf(w, "%s  %s (%d sections)\n", ch.ID, ch.Title, ch.Sections)
		}
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// writeScrapeText outputs the scrape summary as human-readable text
func writeScrapeText(w io.Writer, result *ScrapeResult) error {
	fmt.Fprintf(w, "Scraped %d chapters in %s\n", len(result.Chapters), result.Elapsed)
	for _, ch := range result.Chapters {
		fmt.Fprintf(w, "  %s: %d sections, %d problems (%d starred)\n",
			ch.Name, ch.Sections, ch.Problems, ch.Starred)
	}
	fmt.Fprintf(w, "\nTotal: %d problems (%d starred)\n", result.TotalProblems, result.TotalStarred)
	fmt.Fprintf(w, "Document: %s\n", result.DocumentPath)
	return nil
}
