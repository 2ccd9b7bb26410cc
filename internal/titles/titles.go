// Package titles carries the static chapter and section title table used to
// rename scraped book keys into readable directory names.
package titles

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

//go:embed book_titles.json
var rawTable []byte

// ChapterInfo names one chapter and its sections. For standard chapters the
// section values are display strings ("4.5 All-Pairs Shortest Paths"); for
// the rare-topics chapter they are the numeric ids that replace its
// letter-coded subsection keys ("9.a" becomes "9.1").
type ChapterInfo struct {
	Title    string            `json:"title"`
	Sections map[string]string `json:"sections"`
}

// Table is the immutable chapter title lookup, loaded once per process from
// the embedded book_titles.json.
type Table struct {
	chapters map[string]ChapterInfo
}

var (
	loadOnce sync.Once
	loaded   *Table
	loadErr  error
)

// Load parses the embedded table. The result is cached; every call returns
// the same Table.
func Load() (*Table, error) {
	loadOnce.Do(func() {
		var chapters map[string]ChapterInfo
		if err := json.Unmarshal(rawTable, &chapters); err != nil {
			loadErr = fmt.Errorf("parsing embedded title table: %w", err)
			return
		}
		loaded = &Table{chapters: chapters}
	})
	return loaded, loadErr
}

// Chapter returns the title information for a chapter id.
func (t *Table) Chapter(id string) (ChapterInfo, error) {
	info, ok := t.chapters[id]
	if !ok {
		return ChapterInfo{}, fmt.Errorf("no title entry for chapter %q", id)
	}
	return info, nil
}

// Section returns the table entry for a section id within a chapter.
func (t *Table) Section(chapterID, sectionID string) (string, error) {
	info, err := t.Chapter(chapterID)
	if err != nil {
		return "", err
	}
	name, ok := info.Sections[sectionID]
	if !ok {
		return "", fmt.Errorf("no title entry for section %q of chapter %q", sectionID, chapterID)
	}
	return name, nil
}

// ChapterIDs returns every chapter id in the table, sorted.
func (t *Table) ChapterIDs() []string {
	ids := make([]string, 0, len(t.chapters))
	for id := range t.chapters {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
