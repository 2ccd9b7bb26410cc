package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/cp4-practice/internal/book"
	"github.com/pfrederiksen/cp4-practice/internal/kattis"
	"github.com/pfrederiksen/cp4-practice/internal/logger"
	"github.com/pfrederiksen/cp4-practice/internal/scaffold"
	"github.com/pfrederiksen/cp4-practice/internal/storage"
)

var (
	flagSetupRoot    string
	flagSetupExt     string
	flagSetupStarred bool
	flagSetupSamples bool

	// The two setup subcommands default their judge differently, so each
	// binds its own variable.
	flagChapterJudge string
	flagProblemJudge string
)

func newSetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Create practice directories",
	}

	cmd.PersistentFlags().StringVar(&flagSetupRoot, "root", "", "Workspace root (overrides config)")
	cmd.PersistentFlags().StringVar(&flagSetupExt, "ext", "", "Create a blank main file with this extension (overrides config)")
	cmd.PersistentFlags().BoolVar(&flagSetupSamples, "samples", false, "Download Kattis sample test cases")

	cmd.AddCommand(newSetupChapterCmd())
	cmd.AddCommand(newSetupProblemCmd())

	return cmd
}

func newSetupChapterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chapter <n>",
		Short: "Scaffold every problem of a book chapter",
		Long: `Loads the problem document written by the scrape command and creates a
practice directory for every problem of chapter n, mirroring the chapter's
sections and subsections.`,
		Args: cobra.ExactArgs(1),
		RunE: runSetupChapter,
	}

	cmd.Flags().StringVar(&flagChapterJudge, "judge", "all", "Limit to one judge: uva, kattis, or all")
	cmd.Flags().BoolVar(&flagSetupStarred, "starred-only", false, "Skip the extra (non-starred) problems")

	return cmd
}

// runSetupChapter is the setup chapter command logic
func runSetupChapter(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid chapter number %q", args[0])
	}
	if _, err := book.ChapterID(n); err != nil {
		return err
	}

	store, err := storage.New(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	doc, err := store.LoadDocument()
	if err != nil {
		return err
	}
	name, chapter, err := doc.Chapter(n)
	if err != nil {
		return err
	}

	ws, err := newWorkspace()
	if err != nil {
		return err
	}

	opts := scaffold.ChapterOptions{
		StarredOnly: flagSetupStarred,
		Ext:         setupExt(cmd),
	}
	if flagChapterJudge != "all" {
		judge, err := book.ParseJudge(flagChapterJudge)
		if err != nil {
			return err
		}
		opts.Judges = []book.Judge{judge}
	}
	if flagSetupSamples {
		client := kattis.NewClient()
		opts.FetchSamples = func(problemID string) ([]scaffold.Sample, error) {
			samples, err := client.FetchSamples(problemID)
			if errors.Is(err, kattis.ErrNoSamples) {
				logger.Warn("no samples published", logger.Fields{
					"problem": problemID,
				})
				return nil, nil
			}
			return samples, err
		}
	}

	count, err := ws.SetupChapter(chapter, name, opts)
	if err != nil {
		return fmt.Errorf("scaffolding chapter: %w", err)
	}

	fmt.Printf("Scaffolded %d problems under %s\n", count, filepath.Join(ws.Root(), name))
	return nil
}

func newSetupProblemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "problem <id>",
		Short: "Scaffold a single practice problem",
		Long: `Creates a practice directory for one problem directly under the workspace
root. The id is the judge's problem id, e.g. 821 for UVa or allpairspath
for Kattis.`,
		Args: cobra.ExactArgs(1),
		RunE: runSetupProblem,
	}

	cmd.Flags().StringVar(&flagProblemJudge, "judge", "kattis", "Judge the problem belongs to: uva or kattis")

	return cmd
}

// runSetupProblem is the setup problem command logic
func runSetupProblem(cmd *cobra.Command, args []string) error {
	id := args[0]
	judge, err := book.ParseJudge(flagProblemJudge)
	if err != nil {
		return err
	}

	ws, err := newWorkspace()
	if err != nil {
		return err
	}

	opts := scaffold.ProblemOptions{Ext: setupExt(cmd)}
	if flagSetupSamples {
		if judge != book.JudgeKattis {
			logger.Warn("samples are only available for kattis problems", logger.Fields{
				"judge": string(judge),
			})
		} else {
			samples, err := kattis.NewClient().FetchSamples(id)
			switch {
			case errors.Is(err, kattis.ErrNoSamples):
				logger.Warn("no samples published", logger.Fields{
					"problem": id,
				})
			case err != nil:
				return fmt.Errorf("fetching samples: %w", err)
			default:
				opts.Samples = samples
			}
		}
	}

	if err := ws.SetupProblem("", id, opts); err != nil {
		return fmt.Errorf("scaffolding problem: %w", err)
	}

	fmt.Printf("Scaffolded %s\n", filepath.Join(ws.Root(), id))
	return nil
}

// newWorkspace opens the scaffold workspace from the root flag or config.
func newWorkspace() (*scaffold.Workspace, error) {
	root := cfg.Workspace
	if flagSetupRoot != "" {
		root = flagSetupRoot
	}
	ws, err := scaffold.New(root)
	if err != nil {
		return nil, fmt.Errorf("opening workspace: %w", err)
	}
	return ws, nil
}

// setupExt resolves the source extension, letting an explicit --ext
// (including an empty one) override the config.
func setupExt(cmd *cobra.Command) string {
	if cmd.Flags().Changed("ext") {
		return flagSetupExt
	}
	return cfg.SourceExt
}
