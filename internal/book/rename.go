package book

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pfrederiksen/cp4-practice/internal/titles"
)

const (
	// RareChapterID is the rare-topics chapter. Its table nests every row
	// under a single nameless section with letter-coded subsection keys,
	// so renaming unwraps it before the common path.
	RareChapterID = "ch9"

	// rareWrapperSection is the nameless section wrapping every
	// rare-topics row. Those rows carry no section number, so the digit
	// scan in ParseDescription leaves the bare "9." prefix as their
	// section.
	rareWrapperSection = "9."
)

// chapterLayout tags how a scraped chapter is shaped, chosen once per
// chapter before renaming.
type chapterLayout int

const (
	layoutStandard chapterLayout = iota
	layoutRare
)

func layoutFor(chapterID string) chapterLayout {
	if chapterID == RareChapterID {
		return layoutRare
	}
	return layoutStandard
}

// FormattedSection maps final subsection directory names
// ("4_5a_APSP_Standard") to per-judge problem lists. Each entry's title has
// been folded into its key.
type FormattedSection map[string]*JudgeProblems

// FormattedChapter is one chapter of the final document. Standard chapters
// keep a section layer; the rare-topics chapter has none, its topics
// hanging directly off the chapter.
type FormattedChapter struct {
	Sections map[string]FormattedSection
	Rare     FormattedSection
}

// MarshalJSON writes whichever layout the chapter carries.
func (c FormattedChapter) MarshalJSON() ([]byte, error) {
	if c.Rare != nil {
		return json.Marshal(c.Rare)
	}
	return json.Marshal(c.Sections)
}

// UnmarshalJSON restores a chapter from either layout. Rare-layout chapters
// are recognized by their entries mapping judge tokens, rather than
// subsection names, to problem lists.
func (c *FormattedChapter) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	rare := false
	for _, entry := range raw {
		var inner map[string]json.RawMessage
		if err := json.Unmarshal(entry, &inner); err != nil {
			return err
		}
		rare = len(inner) > 0
		for key := range inner {
			if key != string(JudgeUVa) && key != string(JudgeKattis) {
				rare = false
				break
			}
		}
		break // every entry shares the layout, one settles it
	}

	if rare {
		c.Sections = nil
		return json.Unmarshal(data, &c.Rare)
	}
	c.Rare = nil
	return json.Unmarshal(data, &c.Sections)
}

// Document is the final output mapping, keyed by normalized chapter names
// ("ch4_Graph").
type Document map[string]FormattedChapter

// Chapter returns the formatted chapter numbered n together with its full
// document key.
func (d Document) Chapter(n int) (string, FormattedChapter, error) {
	prefix := fmt.Sprintf("ch%d_", n)
	for name, chapter := range d {
		if strings.HasPrefix(name, prefix) {
			return name, chapter, nil
		}
	}
	return "", FormattedChapter{}, fmt.Errorf("no chapter %d in document", n)
}

// Renamer rewrites a scraped Tree into the final Document using the static
// chapter and section title table.
type Renamer struct {
	table *titles.Table
}

// NewRenamer creates a Renamer backed by the given title table.
func NewRenamer(table *titles.Table) *Renamer {
	return &Renamer{table: table}
}

// RenameBook renames every chapter of the tree. Chapter keys become
// sanitized "{id} {title}" names; section and subsection keys are rewritten
// through the table and each subsection's own title. A chapter or section
// missing from the table fails the whole rename.
func (r *Renamer) RenameBook(tree Tree) (Document, error) {
	doc := make(Document, len(tree))
	for chapterID, chapter := range tree {
		info, err := r.table.Chapter(chapterID)
		if err != nil {
			return nil, err
		}

		var formatted FormattedChapter
		switch layoutFor(chapterID) {
		case layoutRare:
			formatted, err = r.renameRare(chapterID, chapter, info)
		default:
			formatted, err = r.renameStandard(chapterID, chapter, info)
		}
		if err != nil {
			return nil, err
		}

		doc[Sanitize(chapterID+" "+info.Title)] = formatted
	}
	return doc, nil
}

// renameStandard renames a chapter with the usual section layer. Section
// keys come wholly from the table; subsection keys are formatted from their
// id and scraped title.
func (r *Renamer) renameStandard(chapterID string, chapter MergedChapter, info titles.ChapterInfo) (FormattedChapter, error) {
	sections := make(map[string]FormattedSection, len(chapter))
	for sectionID, subsections := range chapter {
		name, ok := info.Sections[sectionID]
		if !ok {
			return FormattedChapter{}, fmt.Errorf("no title entry for section %q of %s", sectionID, chapterID)
		}
		sections[Sanitize(name)] = formatSection(subsections)
	}
	return FormattedChapter{Sections: sections}, nil
}

// renameRare unwraps the rare-topics chapter's nameless wrapper section,
// rewrites its letter-coded subsection keys to the numeric ids from the
// table, and formats the result one level up.
func (r *Renamer) renameRare(chapterID string, chapter MergedChapter, info titles.ChapterInfo) (FormattedChapter, error) {
	wrapped, ok := chapter[rareWrapperSection]
	if !ok {
		return FormattedChapter{}, fmt.Errorf("chapter %s: missing %q wrapper section", chapterID, rareWrapperSection)
	}

	renamed := make(map[string]*MergedSubsection, len(wrapped))
	for subsectionID, sub := range wrapped {
		numeric, ok := info.Sections[subsectionID]
		if !ok {
			return FormattedChapter{}, fmt.Errorf("no numeric id for rare-topics subsection %q", subsectionID)
		}
		renamed[numeric] = sub
	}
	return FormattedChapter{Rare: formatSection(renamed)}, nil
}

// formatSection rewrites one subsection mapping into final directory-name
// keys, folding each entry's title into its key and dropping the title
// field.
func formatSection(subsections map[string]*MergedSubsection) FormattedSection {
	out := make(FormattedSection, len(subsections))
	for subsectionID, sub := range subsections {
		out[Sanitize(subsectionID+" "+sub.Title)] = &JudgeProblems{
			UVa:    sub.UVa,
			Kattis: sub.Kattis,
		}
	}
	return out
}
