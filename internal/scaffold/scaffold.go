package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pfrederiksen/cp4-practice/internal/book"
	"github.com/pfrederiksen/cp4-practice/internal/logger"
)

const (
	// TestCasesDirName is the subdirectory created inside every problem
	// directory.
	TestCasesDirName = "test_cases"

	// SampleFilesDirName holds downloaded sample inputs and answers,
	// inside the test_cases directory.
	SampleFilesDirName = "sample_files"

	// SourceFileBase is the base name of the blank source file created
	// when an extension is requested.
	SourceFileBase = "main"
)

// Sample is one downloaded sample file, name and contents.
type Sample struct {
	Name string
	Data []byte
}

// ProblemOptions controls what a single problem directory gets beyond its
// test_cases subdirectory.
type ProblemOptions struct {
	// Ext, when non-empty, adds a blank source file main{Ext}. The
	// leading dot is optional.
	Ext string

	// Samples are written under test_cases/sample_files.
	Samples []Sample
}

// ChapterOptions narrows and enriches a whole-chapter scaffold.
type ChapterOptions struct {
	// Judges limits scaffolding to these judges. Empty means both.
	Judges []book.Judge

	// StarredOnly skips each list's extra problems.
	StarredOnly bool

	// Ext is passed through to every problem.
	Ext string

	// FetchSamples, when set, is called for every kattis problem and its
	// result written as that problem's samples. Returning (nil, nil)
	// skips the problem's samples without failing the chapter.
	FetchSamples func(problemID string) ([]Sample, error)
}

// Workspace is the root directory practice problems are scaffolded under.
type Workspace struct {
	root string
}

// New creates a Workspace rooted at the given directory.
func New(root string) (*Workspace, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(root, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		root = filepath.Join(home, root[2:])
	}

	return &Workspace{root: root}, nil
}

// Root returns the workspace root path.
func (w *Workspace) Root() string {
	return w.root
}

// SetupProblem creates the directory structure for one problem under
// {root}/{dir}/{id}: the problem directory, its test_cases subdirectory,
// and whatever opts adds. Existing directories are reused and an existing
// source file is left alone, so re-running setup is safe.
func (w *Workspace) SetupProblem(dir, id string, opts ProblemOptions) error {
	problemDir := filepath.Join(w.root, dir, id)
	testCases := filepath.Join(problemDir, TestCasesDirName)

	if err := os.MkdirAll(testCases, 0755); err != nil {
		return fmt.Errorf("creating problem directory: %w", err)
	}

	if opts.Ext != "" {
		if err := writeBlankSource(problemDir, opts.Ext); err != nil {
			return err
		}
	}

	if len(opts.Samples) > 0 {
		sampleDir := filepath.Join(testCases, SampleFilesDirName)
		if err := os.MkdirAll(sampleDir, 0755); err != nil {
			return fmt.Errorf("creating sample directory: %w", err)
		}
		for _, sample := range opts.Samples {
			name := filepath.Base(sample.Name)
			if err := os.WriteFile(filepath.Join(sampleDir, name), sample.Data, 0644); err != nil {
				return fmt.Errorf("writing sample %s: %w", name, err)
			}
		}
	}

	return nil
}

// writeBlankSource creates an empty main{ext} unless one already exists.
// Never overwrites: a problem may have work in progress.
func writeBlankSource(problemDir, ext string) error {
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	path := filepath.Join(problemDir, SourceFileBase+ext)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return nil
		}
		return fmt.Errorf("creating source file: %w", err)
	}
	return f.Close()
}

// SetupChapter scaffolds every problem of a formatted chapter under
// {root}/{chapterDir}, mirroring the chapter's own nesting. Standard
// chapters produce section/subsection/judge/id paths; the rare-topics
// layout drops the section layer. Starred problems are created before
// extras and keys are walked in sorted order. Returns the number of
// problems scaffolded.
func (w *Workspace) SetupChapter(chapter book.FormattedChapter, chapterDir string, opts ChapterOptions) (int, error) {
	judges := opts.Judges
	if len(judges) == 0 {
		judges = book.Judges()
	}

	count := 0
	setup := func(dir string, probs *book.JudgeProblems, judge book.Judge) error {
		list := probs.ByJudge(judge)
		if list == nil {
			return nil
		}

		ids := list.Starred
		if !opts.StarredOnly {
			ids = append(append([]string{}, list.Starred...), list.Extra...)
		}
		for _, id := range ids {
			probOpts := ProblemOptions{Ext: opts.Ext}
			if judge == book.JudgeKattis && opts.FetchSamples != nil {
				samples, err := opts.FetchSamples(id)
				if err != nil {
					return fmt.Errorf("fetching samples for %s: %w", id, err)
				}
				probOpts.Samples = samples
			}
			if err := w.SetupProblem(dir, id, probOpts); err != nil {
				return err
			}
			count++
		}
		return nil
	}

	if chapter.Rare != nil {
		for _, topic := range sortedKeys(chapter.Rare) {
			for _, judge := range judges {
				dir := filepath.Join(chapterDir, topic, string(judge))
				if err := setup(dir, chapter.Rare[topic], judge); err != nil {
					return count, err
				}
			}
		}
	} else {
		for _, section := range sortedKeys(chapter.Sections) {
			subsections := chapter.Sections[section]
			for _, subsection := range sortedKeys(subsections) {
				for _, judge := range judges {
					dir := filepath.Join(chapterDir, section, subsection, string(judge))
					if err := setup(dir, subsections[subsection], judge); err != nil {
						return count, err
					}
				}
			}
		}
	}

	logger.Debug("chapter scaffolded", logger.Fields{
		"chapter":  chapterDir,
		"problems": count,
	})
	return count, nil
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
