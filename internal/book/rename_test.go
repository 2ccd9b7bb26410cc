package book

import (
	"encoding/json"
	"testing"

	"github.com/pfrederiksen/cp4-practice/internal/titles"
)

// mergedEntry builds a merged subsection with a single uva starred id, which
// is all the rename path cares about.
func mergedEntry(title string, ids ...string) *MergedSubsection {
	return &MergedSubsection{
		Title: title,
		JudgeProblems: JudgeProblems{
			UVa: &ProblemList{Starred: ids, Extra: []string{}},
		},
	}
}

func loadTable(t *testing.T) *titles.Table {
	t.Helper()
	table, err := titles.Load()
	if err != nil {
		t.Fatalf("loading title table: %v", err)
	}
	return table
}

func TestRenameBook_StandardChapter(t *testing.T) {
	tree := Tree{
		"ch4": MergedChapter{
			"4.5": {
				"4.5a": mergedEntry("APSP, Standard", "821"),
				"4.5b": mergedEntry("APSP, Variants", "10171"),
			},
		},
	}

	doc, err := NewRenamer(loadTable(t)).RenameBook(tree)
	if err != nil {
		t.Fatalf("RenameBook() error: %v", err)
	}

	chapter, ok := doc["ch4_Graph"]
	if !ok {
		t.Fatalf("document keys = %v, want ch4_Graph", keysOf(doc))
	}
	if chapter.Rare != nil {
		t.Fatal("standard chapter came back with the rare layout")
	}

	section, ok := chapter.Sections["4_5_All_Pairs_Shortest_Paths"]
	if !ok {
		t.Fatalf("section keys = %v, want 4_5_All_Pairs_Shortest_Paths", sectionKeys(chapter))
	}

	for _, want := range []string{"4_5a_APSP_Standard", "4_5b_APSP_Variants"} {
		entry, ok := section[want]
		if !ok {
			t.Errorf("subsection %q missing from formatted section", want)
			continue
		}
		if entry.UVa == nil {
			t.Errorf("subsection %q lost its uva lists", want)
		}
	}
}

func TestRenameBook_RareChapter(t *testing.T) {
	tree := Tree{
		"ch9": MergedChapter{
			"9.": {
				"9.a": mergedEntry("2-SAT", "10319"),
				"9.b": mergedEntry("Art Gallery Problem", "588"),
			},
		},
	}

	doc, err := NewRenamer(loadTable(t)).RenameBook(tree)
	if err != nil {
		t.Fatalf("RenameBook() error: %v", err)
	}

	chapter, ok := doc["ch9_Rare_Topics"]
	if !ok {
		t.Fatalf("document keys = %v, want ch9_Rare_Topics", keysOf(doc))
	}
	if chapter.Rare == nil {
		t.Fatal("rare chapter came back with the standard layout")
	}

	if _, ok := chapter.Rare["9_1_2_SAT"]; !ok {
		t.Errorf("rare topic keys = %v, want 9_1_2_SAT", rareKeys(chapter))
	}
	if _, ok := chapter.Rare["9_2_Art_Gallery_Problem"]; !ok {
		t.Errorf("rare topic keys = %v, want 9_2_Art_Gallery_Problem", rareKeys(chapter))
	}
}

func TestRenameBook_LookupFailures(t *testing.T) {
	table := loadTable(t)

	tests := []struct {
		name string
		tree Tree
	}{
		{
			name: "unknown chapter",
			tree: Tree{"ch42": MergedChapter{}},
		},
		{
			name: "unknown section",
			tree: Tree{"ch4": MergedChapter{"4.99": {"4.99a": mergedEntry("Nope")}}},
		},
		{
			name: "rare chapter missing wrapper",
			tree: Tree{"ch9": MergedChapter{"9.1": {"9.1a": mergedEntry("Nope")}}},
		},
		{
			name: "rare subsection not in table",
			tree: Tree{"ch9": MergedChapter{"9.": {"9.zz": mergedEntry("Nope")}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewRenamer(table).RenameBook(tt.tree); err == nil {
				t.Error("RenameBook() expected error, got nil")
			}
		})
	}
}

func TestDocument_Chapter(t *testing.T) {
	doc := Document{
		"ch4_Graph":       {Sections: map[string]FormattedSection{}},
		"ch9_Rare_Topics": {Rare: FormattedSection{}},
	}

	name, _, err := doc.Chapter(4)
	if err != nil {
		t.Fatalf("Chapter(4) error: %v", err)
	}
	if name != "ch4_Graph" {
		t.Errorf("Chapter(4) name = %q, want ch4_Graph", name)
	}

	if _, _, err := doc.Chapter(5); err == nil {
		t.Error("Chapter(5) expected error for missing chapter, got nil")
	}
}

func TestFormattedChapter_JSONLayouts(t *testing.T) {
	doc := Document{
		"ch4_Graph": {
			Sections: map[string]FormattedSection{
				"4_5_All_Pairs_Shortest_Paths": {
					"4_5a_APSP_Standard": &JudgeProblems{
						UVa: &ProblemList{Starred: []string{"821"}, Extra: []string{}},
					},
				},
			},
		},
		"ch9_Rare_Topics": {
			Rare: FormattedSection{
				"9_1_2_SAT": &JudgeProblems{
					Kattis: &ProblemList{Starred: []string{"reactivity"}, Extra: []string{}},
				},
			},
		},
	}

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var decoded Document
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	standard := decoded["ch4_Graph"]
	if standard.Sections == nil || standard.Rare != nil {
		t.Errorf("standard chapter decoded into wrong layout: %+v", standard)
	}
	if entry := standard.Sections["4_5_All_Pairs_Shortest_Paths"]["4_5a_APSP_Standard"]; entry == nil || entry.UVa == nil {
		t.Error("standard chapter lost its subsection entry through JSON")
	}

	rare := decoded["ch9_Rare_Topics"]
	if rare.Rare == nil || rare.Sections != nil {
		t.Errorf("rare chapter decoded into wrong layout: %+v", rare)
	}
	if entry := rare.Rare["9_1_2_SAT"]; entry == nil || entry.Kattis == nil {
		t.Error("rare chapter lost its topic entry through JSON")
	}
}

func keysOf(doc Document) []string {
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	return keys
}

func sectionKeys(c FormattedChapter) []string {
	keys := make([]string, 0, len(c.Sections))
	for k := range c.Sections {
		keys = append(keys, k)
	}
	return keys
}

func rareKeys(c FormattedChapter) []string {
	keys := make([]string, 0, len(c.Rare))
	for k := range c.Rare {
		keys = append(keys, k)
	}
	return keys
}
