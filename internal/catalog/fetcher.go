// Package catalog acquires the program catalog: live from the
// admissions site when possible, from the curated static data
// otherwise.
package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/openabit/advisor/internal/common"
	"github.com/openabit/advisor/internal/model"
)

const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Fetcher downloads and parses the program pages.
type Fetcher struct {
	client   *http.Client
	progress func(url string)
	retry    common.RetryOptions
}

// FetcherOption customizes a Fetcher.
type FetcherOption func(*Fetcher)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) FetcherOption {
	return func(f *Fetcher) { f.client = c }
}

// WithRetryOptions replaces the default retry policy.
func WithRetryOptions(opts common.RetryOptions) FetcherOption {
	return func(f *Fetcher) { f.retry = opts }
}

// WithProgress registers a callback invoked after each page is
// processed, fetched or not.
func WithProgress(fn func(url string)) FetcherOption {
	return func(f *Fetcher) { f.progress = fn }
}

// NewFetcher creates a fetcher with a 30s timeout and three attempts
// per page.
func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		client: &http.Client{Timeout: 30 * time.Second},
		retry: common.RetryOptions{
			MaxAttempts:  3,
			InitialDelay: time.Second,
		},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch downloads both program pages and returns the parsed catalog.
// Each page that cannot be fetched falls back to its static entry, so
// the returned catalog always has both programs; the error reports the
// last fetch failure, if any.
func (f *Fetcher) Fetch(ctx context.Context) ([]model.Program, error) {
	static := Static()

	pages := []struct {
		name    string
		url     string
		courses []model.Course
	}{
		{aiProgramName, AIProgramURL, staticAICourses()},
		{productProgramName, ProductProgramURL, staticProductCourses()},
	}

	var fetchErr error
	programs := make([]model.Program, 0, len(pages))

	for i, page := range pages {
		doc, err := f.fetchDocument(ctx, page.url)
		if err != nil {
			slog.Warn("Falling back to static program data",
				"program", page.name,
				"error", err)
			programs = append(programs, static[i])
			fetchErr = err
		} else {
			programs = append(programs, parseProgram(doc, page.name, page.url, page.courses))
		}
		if f.progress != nil {
			f.progress(page.url)
		}
	}

	return programs, fetchErr
}

// fetchDocument gets one page with retries and parses it.
func (f *Fetcher) fetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	var body string

	err := common.WithRetry(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return &common.RetryableError{Err: err, Retryable: false}
		}
		req.Header.Set("User-Agent", browserUserAgent)

		resp, err := f.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("%w: %s returned %d", common.ErrFetchFailed, url, resp.StatusCode)
		}

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		body = string(data)
		return nil
	}, f.retry)
	if err != nil {
		return nil, err
	}

	slog.Info("Fetched program page", "url", url, "bytes", len(body))
	return goquery.NewDocumentFromReader(strings.NewReader(body))
}
