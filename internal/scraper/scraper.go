package scraper

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/cp4-practice/internal/book"
	"github.com/pfrederiksen/cp4-practice/internal/logger"
)

const (
	// ProblemsURL is the "Methods to Solve" listing on cpbook.net.
	ProblemsURL = "https://cpbook.net/methodstosolve"
	UserAgent   = "cp4-practice/1.0 (github.com/pfrederiksen/cp4-practice)"
	Timeout     = 30 * time.Second

	// ChapterDelay is the courtesy pause after each chapter's pair of
	// fetches. Not a correctness requirement, just politeness.
	ChapterDelay = 3 * time.Second

	// problemTableID identifies the problem table in the page.
	problemTableID = "problemtable"
)

// Config carries scraper settings. Zero-value fields fall back to the
// package defaults.
type Config struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	Delay     time.Duration
}

// Scraper fetches and parses the book's per-chapter problem tables.
type Scraper struct {
	client    *http.Client
	baseURL   string
	userAgent string
	delay     time.Duration
}

// New creates a new Scraper from cfg.
func New(cfg Config) *Scraper {
	if cfg.BaseURL == "" {
		cfg.BaseURL = ProblemsURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = UserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = Timeout
	}
	if cfg.Delay == 0 {
		cfg.Delay = ChapterDelay
	}
	return &Scraper{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		delay:     cfg.Delay,
	}
}

// RequestError reports a non-success response from the listing site.
type RequestError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("bad response from %s: %s", e.URL, e.Status)
}

// FetchChapterTable fetches one (chapter, judge) listing and parses its
// problem table into the per-judge section mapping.
func (s *Scraper) FetchChapterTable(chapterID string, judge book.Judge) (book.SectionMap, error) {
	params := url.Values{}
	params.Set("oj", string(judge))
	params.Set("topic", chapterID)
	params.Set("quality", "all")
	reqURL := s.baseURL + "?" + params.Encode()

	req, err := http.NewRequest("GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &RequestError{
			URL:        reqURL,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
	}

	return s.parseProblemTable(resp.Body)
}

// parseProblemTable extracts the section mapping from a chapter listing
// page. Each table row contributes its problem id (first cell) to the
// starred or extra list of the subsection named by its description (third
// cell). Row order is preserved and repeated ids are kept.
func (s *Scraper) parseProblemTable(r io.Reader) (book.SectionMap, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	table := doc.Find("table#" + problemTableID)
	if table.Length() == 0 {
		return nil, fmt.Errorf("no #%s table in page", problemTableID)
	}

	sections := make(book.SectionMap)
	var rowErr error
	table.Find("tbody tr").EachWithBreak(func(i int, row *goquery.Selection) bool {
		cells := row.Find("td")
		if cells.Length() < 3 {
			rowErr = fmt.Errorf("row %d: want at least 3 cells, got %d", i, cells.Length())
			return false
		}

		problemID := cells.Eq(0).Text()
		section, subsection, title, err := book.ParseDescription(cells.Eq(2).Text())
		if err != nil {
			rowErr = fmt.Errorf("row %d: %w", i, err)
			return false
		}

		if sections[section] == nil {
			sections[section] = make(book.SubsectionMap)
		}
		sub := sections[section][subsection]
		if sub == nil {
			sub = &book.Subsection{Title: title, Probs: book.NewProblemList()}
			sections[section][subsection] = sub
		}
		sub.Probs.Add(problemID, isStarred(row))

		logger.IncrCounter("scrape.rows")
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}

	return sections, nil
}

// isStarred reports whether a table row marks a starred problem. Rows
// without a class attribute are plain extra problems.
func isStarred(row *goquery.Selection) bool {
	return row.HasClass("starred")
}

// FetchChapter fetches a chapter from both judges and merges the two
// parses into one chapter mapping.
func (s *Scraper) FetchChapter(chapterID string) (book.MergedChapter, error) {
	uva, err := s.FetchChapterTable(chapterID, book.JudgeUVa)
	if err != nil {
		return nil, fmt.Errorf("fetching %s/%s: %w", chapterID, book.JudgeUVa, err)
	}

	kattis, err := s.FetchChapterTable(chapterID, book.JudgeKattis)
	if err != nil {
		return nil, fmt.Errorf("fetching %s/%s: %w", chapterID, book.JudgeKattis, err)
	}

	return book.MergeJudges(uva, kattis), nil
}

// FetchBook walks all nine chapters in order, one at a time, pausing the
// courtesy delay after each chapter's fetches. Any failure aborts the whole
// run; there is no retry and the partial tree is discarded.
func (s *Scraper) FetchBook() (book.Tree, error) {
	tree := make(book.Tree, book.NumChapters)
	for _, chapterID := range book.ChapterIDs() {
		start := time.Now()
		logger.Info("fetching chapter", logger.Fields{
			"chapter": chapterID,
		})

		chapter, err := s.FetchChapter(chapterID)
		if err != nil {
			return nil, err
		}
		tree[chapterID] = chapter

		logger.IncrCounter("scrape.chapters")
		logger.RecordTiming("scrape.chapter", time.Since(start))
		logger.Debug("chapter fetched", logger.Fields{
			"chapter":  chapterID,
			"sections": len(chapter),
			"elapsed":  time.Since(start).String(),
		})

		time.Sleep(s.delay)
	}
	return tree, nil
}
