// Package cli implements the command-line interface for cp4-practice.
//
// The cli package provides the Cobra-based CLI with subcommands for scraping
// the book's problem listings (scrape), scaffolding practice directories
// (setup chapter, setup problem), listing chapters (chapters), and writing a
// starter configuration (config init). It coordinates the scraper, storage,
// and scaffold packages and formats results as text or JSON.
package cli
