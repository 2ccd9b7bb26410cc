package book

import (
	"fmt"
	"strings"
)

// Judge identifies an online judge whose problem ids appear in the book's
// tables.
type Judge string

const (
	JudgeUVa    Judge = "uva"
	JudgeKattis Judge = "kattis"
)

// Judges returns the judges scraped for every chapter, in fetch order.
func Judges() []Judge {
	return []Judge{JudgeUVa, JudgeKattis}
}

// ParseJudge validates a judge token given on the command line.
func ParseJudge(s string) (Judge, error) {
	switch j := Judge(strings.ToLower(strings.TrimSpace(s))); j {
	case JudgeUVa, JudgeKattis:
		return j, nil
	}
	return "", fmt.Errorf("unknown judge %q (must be %q or %q)", s, JudgeUVa, JudgeKattis)
}

// NumChapters is the number of chapters in the book.
const NumChapters = 9

// ChapterID returns the site token for chapter n ("ch1".."ch9").
func ChapterID(n int) (string, error) {
	if n < 1 || n > NumChapters {
		return "", fmt.Errorf("chapter %d out of range [1,%d]", n, NumChapters)
	}
	return fmt.Sprintf("ch%d", n), nil
}

// ChapterIDs returns every chapter token in book order.
func ChapterIDs() []string {
	ids := make([]string, NumChapters)
	for n := 1; n <= NumChapters; n++ {
		ids[n-1] = fmt.Sprintf("ch%d", n)
	}
	return ids
}

// ProblemList holds one judge's problem ids for a subsection, split by the
// book's star marker. Ids stay in table-row order; rows repeating an id are
// kept as-is.
type ProblemList struct {
	Starred []string `json:"starred"`
	Extra   []string `json:"extra"`
}

// NewProblemList creates an empty problem list.
func NewProblemList() *ProblemList {
	return &ProblemList{
		Starred: make([]string, 0),
		Extra:   make([]string, 0),
	}
}

// Add appends id to the starred or extra list.
func (p *ProblemList) Add(id string, starred bool) {
	if starred {
		p.Starred = append(p.Starred, id)
		return
	}
	p.Extra = append(p.Extra, id)
}

// Len returns the total number of ids in the list.
func (p *ProblemList) Len() int {
	return len(p.Starred) + len(p.Extra)
}

// Subsection is one judge's view of a book subsection.
type Subsection struct {
	Title string       `json:"title"`
	Probs *ProblemList `json:"probs"`
}

// SubsectionMap maps subsection ids ("4.5a") to entries.
type SubsectionMap map[string]*Subsection

// SectionMap is one judge's parse of a chapter table: section id ("4.5") to
// its subsections.
type SectionMap map[string]SubsectionMap

// JudgeProblems carries the per-judge problem lists of a merged subsection.
// A judge's field is nil when that judge does not list the subsection.
type JudgeProblems struct {
	UVa    *ProblemList `json:"uva,omitempty"`
	Kattis *ProblemList `json:"kattis,omitempty"`
}

// ByJudge returns the list for one judge, or nil.
func (j *JudgeProblems) ByJudge(judge Judge) *ProblemList {
	switch judge {
	case JudgeUVa:
		return j.UVa
	case JudgeKattis:
		return j.Kattis
	}
	return nil
}

// MergedSubsection is a subsection entry carrying both judges' lists.
type MergedSubsection struct {
	Title string `json:"title"`
	JudgeProblems
}

// MergedChapter maps section id to subsection id to merged entry.
type MergedChapter map[string]map[string]*MergedSubsection

// Tree is the whole raw book, keyed by chapter id ("ch1".."ch9"). It is
// built chapter by chapter during the scrape loop and renamed into a
// Document once at the end.
type Tree map[string]MergedChapter

// ParseDescription splits a problem description of the form
// "{chapter}.{section}{letter}, {Title}" into the fully qualified section
// ("{chapter}.{section}"), the fully qualified subsection
// ("{chapter}.{section}{letter}"), and the title.
//
// Only the first comma separates the locator from the title; later commas
// stay in the title. A missing comma leaves the title empty. The locator
// must contain exactly one dot.
func ParseDescription(desc string) (section, subsection, title string, err error) {
	locator := desc
	if i := strings.Index(desc, ","); i >= 0 {
		locator = desc[:i]
		title = strings.TrimSpace(desc[i+1:])
	}

	chapter, rest, ok := strings.Cut(locator, ".")
	if !ok || strings.Contains(rest, ".") {
		return "", "", "", fmt.Errorf("malformed locator %q: want {chapter}.{section}{letter}", locator)
	}

	// The leading run of digits is the section number; whatever follows is
	// the subsection letter(s). Rare-topics rows carry no digits at all,
	// which leaves the section number empty and every row under the
	// chapter's bare "9." section.
	i := 0
	for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
		i++
	}
	number, letter := rest[:i], rest[i:]

	section = chapter + "." + number
	return section, section + letter, title, nil
}
