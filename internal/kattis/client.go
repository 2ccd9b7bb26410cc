// Package kattis downloads sample test cases from open.kattis.com
package kattis

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/pfrederiksen/cp4-practice/internal/scaffold"
)

// BaseURL is the Kattis site serving sample archives.
const BaseURL = "https://open.kattis.com"

// ErrNoSamples reports that a problem has no published sample archive.
// Setup treats this as "nothing to download", not a failure.
var ErrNoSamples = errors.New("no samples published for problem")

// Client is a client for Kattis sample downloads
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Kattis client
func NewClient() *Client {
	return &Client{
		baseURL: BaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchSamples downloads and unpacks the sample archive for a problem.
// Member names are preserved (1.in, 1.ans, ...) and returned in archive
// order. A 404 wraps ErrNoSamples.
func (c *Client) FetchSamples(problemID string) ([]scaffold.Sample, error) {
	reqURL := fmt.Sprintf("%s/problems/%s/file/statement/samples.zip", c.baseURL, problemID)

	resp, err := c.httpClient.Get(reqURL)
	if err != nil {
		return nil, fmt.Errorf("fetching samples: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("problem %s: %w", problemID, ErrNoSamples)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("samples request for %s returned status %d", problemID, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading samples archive: %w", err)
	}

	return unpackSamples(data)
}

// unpackSamples extracts every file member of the zip archive.
func unpackSamples(data []byte) ([]scaffold.Sample, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening samples archive: %w", err)
	}

	samples := make([]scaffold.Sample, 0, len(zr.File))
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("opening archive member %s: %w", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("reading archive member %s: %w", f.Name, err)
		}

		samples = append(samples, scaffold.Sample{
			Name: filepath.Base(f.Name),
			Data: content,
		})
	}
	return samples, nil
}
