// Package scraper provides HTTP fetching and HTML parsing for the CP4
// problem listings on cpbook.net.
//
// The scraper package fetches the "Methods to Solve" page once per
// (chapter, judge) pair and walks the returned problem table, turning its
// rows into the section mapping defined by the book package. The full-book
// loop is strictly sequential and pauses between chapters as a courtesy to
// the upstream server.
package scraper
