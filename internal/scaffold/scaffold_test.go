package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/pfrederiksen/cp4-practice/internal/book"
)

func newTestWorkspace(t *testing.T) *Workspace {
	t.Helper()
	tmpDir, err := os.MkdirTemp("", "scaffold-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	w, err := New(tmpDir)
	if err != nil {
		t.Fatalf("Failed to create workspace: %v", err)
	}
	return w
}

func assertDir(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory %s: %v", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("%s is not a directory", path)
	}
}

func TestSetupProblem(t *testing.T) {
	w := newTestWorkspace(t)

	if err := w.SetupProblem("practice", "821", ProblemOptions{}); err != nil {
		t.Fatalf("SetupProblem() error: %v", err)
	}

	assertDir(t, filepath.Join(w.Root(), "practice", "821"))
	assertDir(t, filepath.Join(w.Root(), "practice", "821", TestCasesDirName))

	// No extension requested, so no source file
	entries, err := os.ReadDir(filepath.Join(w.Root(), "practice", "821"))
	if err != nil {
		t.Fatalf("reading problem dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("problem dir has %d entries, want just test_cases", len(entries))
	}
}

func TestSetupProblem_SourceFile(t *testing.T) {
	tests := []struct {
		name     string
		ext      string
		wantFile string
	}{
		{"extension with dot", ".py", "main.py"},
		{"extension without dot", "cpp", "main.cpp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorkspace(t)

			if err := w.SetupProblem("p", "100", ProblemOptions{Ext: tt.ext}); err != nil {
				t.Fatalf("SetupProblem() error: %v", err)
			}

			path := filepath.Join(w.Root(), "p", "100", tt.wantFile)
			info, err := os.Stat(path)
			if err != nil {
				t.Fatalf("expected source file %s: %v", path, err)
			}
			if info.Size() != 0 {
				t.Errorf("source file should be blank, has %d bytes", info.Size())
			}
		})
	}
}

func TestSetupProblem_NeverOverwritesSource(t *testing.T) {
	w := newTestWorkspace(t)

	if err := w.SetupProblem("p", "100", ProblemOptions{Ext: "py"}); err != nil {
		t.Fatalf("SetupProblem() error: %v", err)
	}

	// Simulate work in progress
	path := filepath.Join(w.Root(), "p", "100", "main.py")
	content := []byte("print('solved')\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("writing source: %v", err)
	}

	// Re-running setup must not clobber it
	if err := w.SetupProblem("p", "100", ProblemOptions{Ext: "py"}); err != nil {
		t.Fatalf("SetupProblem() rerun error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading source: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("source file was overwritten: %q", got)
	}
}

func TestSetupProblem_Samples(t *testing.T) {
	w := newTestWorkspace(t)

	samples := []Sample{
		{Name: "1.in", Data: []byte("3\n1 2 3\n")},
		{Name: "1.ans", Data: []byte("6\n")},
	}
	if err := w.SetupProblem("p", "allpairspath", ProblemOptions{Samples: samples}); err != nil {
		t.Fatalf("SetupProblem() error: %v", err)
	}

	sampleDir := filepath.Join(w.Root(), "p", "allpairspath", TestCasesDirName, SampleFilesDirName)
	assertDir(t, sampleDir)

	for _, s := range samples {
		got, err := os.ReadFile(filepath.Join(sampleDir, s.Name))
		if err != nil {
			t.Errorf("sample %s not written: %v", s.Name, err)
			continue
		}
		if string(got) != string(s.Data) {
			t.Errorf("sample %s = %q, want %q", s.Name, got, s.Data)
		}
	}
}

func TestSetupChapter_StandardLayout(t *testing.T) {
	w := newTestWorkspace(t)

	chapter := book.FormattedChapter{
		Sections: map[string]book.FormattedSection{
			"4_5_All_Pairs_Shortest_Paths": {
				"4_5a_APSP_Standard": &book.JudgeProblems{
					UVa:    &book.ProblemList{Starred: []string{"821"}, Extra: []string{"341"}},
					Kattis: &book.ProblemList{Starred: []string{"allpairspath"}, Extra: []string{}},
				},
			},
		},
	}

	count, err := w.SetupChapter(chapter, "ch4_Graph", ChapterOptions{})
	if err != nil {
		t.Fatalf("SetupChapter() error: %v", err)
	}
	if count != 3 {
		t.Errorf("SetupChapter() = %d problems, want 3", count)
	}

	base := filepath.Join(w.Root(), "ch4_Graph", "4_5_All_Pairs_Shortest_Paths", "4_5a_APSP_Standard")
	assertDir(t, filepath.Join(base, "uva", "821", TestCasesDirName))
	assertDir(t, filepath.Join(base, "uva", "341", TestCasesDirName))
	assertDir(t, filepath.Join(base, "kattis", "allpairspath", TestCasesDirName))
}

func TestSetupChapter_RareLayout(t *testing.T) {
	w := newTestWorkspace(t)

	chapter := book.FormattedChapter{
		Rare: book.FormattedSection{
			"9_1_2_SAT": &book.JudgeProblems{
				UVa: &book.ProblemList{Starred: []string{"10319"}, Extra: []string{}},
			},
		},
	}

	count, err := w.SetupChapter(chapter, "ch9_Rare_Topics", ChapterOptions{})
	if err != nil {
		t.Fatalf("SetupChapter() error: %v", err)
	}
	if count != 1 {
		t.Errorf("SetupChapter() = %d problems, want 1", count)
	}

	// No section layer for rare topics
	assertDir(t, filepath.Join(w.Root(), "ch9_Rare_Topics", "9_1_2_SAT", "uva", "10319", TestCasesDirName))
}

func TestSetupChapter_Options(t *testing.T) {
	chapter := book.FormattedChapter{
		Sections: map[string]book.FormattedSection{
			"4_2_Graph_Traversal": {
				"4_2a_Just_Graph_Traversal": &book.JudgeProblems{
					UVa:    &book.ProblemList{Starred: []string{"11902"}, Extra: []string{"118", "280"}},
					Kattis: &book.ProblemList{Starred: []string{"runningmom"}, Extra: []string{"birthday"}},
				},
			},
		},
	}

	t.Run("starred only", func(t *testing.T) {
		w := newTestWorkspace(t)
		count, err := w.SetupChapter(chapter, "ch4", ChapterOptions{StarredOnly: true})
		if err != nil {
			t.Fatalf("SetupChapter() error: %v", err)
		}
		if count != 2 {
			t.Errorf("count = %d, want 2 (one starred per judge)", count)
		}

		base := filepath.Join(w.Root(), "ch4", "4_2_Graph_Traversal", "4_2a_Just_Graph_Traversal")
		assertDir(t, filepath.Join(base, "uva", "11902"))
		if _, err := os.Stat(filepath.Join(base, "uva", "118")); !os.IsNotExist(err) {
			t.Error("extra problem scaffolded despite StarredOnly")
		}
	})

	t.Run("judge subset", func(t *testing.T) {
		w := newTestWorkspace(t)
		count, err := w.SetupChapter(chapter, "ch4", ChapterOptions{Judges: []book.Judge{book.JudgeKattis}})
		if err != nil {
			t.Fatalf("SetupChapter() error: %v", err)
		}
		if count != 2 {
			t.Errorf("count = %d, want 2 (kattis problems only)", count)
		}

		base := filepath.Join(w.Root(), "ch4", "4_2_Graph_Traversal", "4_2a_Just_Graph_Traversal")
		assertDir(t, filepath.Join(base, "kattis", "runningmom"))
		if _, err := os.Stat(filepath.Join(base, "uva")); !os.IsNotExist(err) {
			t.Error("uva directory created despite kattis-only option")
		}
	})

	t.Run("source extension everywhere", func(t *testing.T) {
		w := newTestWorkspace(t)
		if _, err := w.SetupChapter(chapter, "ch4", ChapterOptions{Ext: "cpp", StarredOnly: true}); err != nil {
			t.Fatalf("SetupChapter() error: %v", err)
		}

		base := filepath.Join(w.Root(), "ch4", "4_2_Graph_Traversal", "4_2a_Just_Graph_Traversal")
		if _, err := os.Stat(filepath.Join(base, "uva", "11902", "main.cpp")); err != nil {
			t.Errorf("missing source file: %v", err)
		}
	})
}

func TestSetupChapter_FetchSamples(t *testing.T) {
	w := newTestWorkspace(t)

	chapter := book.FormattedChapter{
		Sections: map[string]book.FormattedSection{
			"4_2_Graph_Traversal": {
				"4_2a_Just_Graph_Traversal": &book.JudgeProblems{
					UVa:    &book.ProblemList{Starred: []string{"11902"}, Extra: []string{}},
					Kattis: &book.ProblemList{Starred: []string{"runningmom", "birthday"}, Extra: []string{}},
				},
			},
		},
	}

	var fetched []string
	opts := ChapterOptions{
		FetchSamples: func(problemID string) ([]Sample, error) {
			fetched = append(fetched, problemID)
			if problemID == "birthday" {
				// No samples published for this one
				return nil, nil
			}
			return []Sample{{Name: "1.in", Data: []byte("x\n")}}, nil
		},
	}

	if _, err := w.SetupChapter(chapter, "ch4", opts); err != nil {
		t.Fatalf("SetupChapter() error: %v", err)
	}

	// Only kattis problems request samples
	if len(fetched) != 2 {
		t.Fatalf("FetchSamples called for %v, want the two kattis problems", fetched)
	}
	for _, id := range fetched {
		if id == "11902" {
			t.Error("FetchSamples called for a uva problem")
		}
	}

	base := filepath.Join(w.Root(), "ch4", "4_2_Graph_Traversal", "4_2a_Just_Graph_Traversal", "kattis")
	assertDir(t, filepath.Join(base, "runningmom", TestCasesDirName, SampleFilesDirName))
	if _, err := os.Stat(filepath.Join(base, "birthday", TestCasesDirName, SampleFilesDirName)); !os.IsNotExist(err) {
		t.Error("sample directory created for a problem without samples")
	}
}

func TestSetupChapter_FetchSamplesError(t *testing.T) {
	w := newTestWorkspace(t)

	chapter := book.FormattedChapter{
		Sections: map[string]book.FormattedSection{
			"s": {
				"sub": &book.JudgeProblems{
					Kattis: &book.ProblemList{Starred: []string{"runningmom"}, Extra: []string{}},
				},
			},
		},
	}

	wantErr := errors.New("connection refused")
	opts := ChapterOptions{
		FetchSamples: func(problemID string) ([]Sample, error) {
			return nil, wantErr
		},
	}

	_, err := w.SetupChapter(chapter, "ch", opts)
	if err == nil {
		t.Fatal("SetupChapter() expected error from sample fetch, got nil")
	}
	if !errors.Is(err, wantErr) {
		t.Errorf("error %v should wrap the fetch failure", err)
	}
}

func TestSetupChapter_Count(t *testing.T) {
	w := newTestWorkspace(t)

	// Three subsections across two sections, mixed judges
	chapter := book.FormattedChapter{
		Sections: map[string]book.FormattedSection{},
	}
	want := 0
	for s := 1; s <= 2; s++ {
		section := fmt.Sprintf("%d_Section", s)
		chapter.Sections[section] = book.FormattedSection{}
		for sub := 0; sub < s; sub++ {
			name := fmt.Sprintf("%d_%d_Sub", s, sub)
			chapter.Sections[section][name] = &book.JudgeProblems{
				UVa: &book.ProblemList{
					Starred: []string{fmt.Sprintf("%d%d1", s, sub)},
					Extra:   []string{fmt.Sprintf("%d%d2", s, sub), fmt.Sprintf("%d%d3", s, sub)},
				},
			}
			want += 3
		}
	}

	count, err := w.SetupChapter(chapter, "ch", ChapterOptions{})
	if err != nil {
		t.Fatalf("SetupChapter() error: %v", err)
	}
	if count != want {
		t.Errorf("count = %d, want %d", count, want)
	}
}
