package catalog

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openabit/advisor/internal/common"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func htmlResponse(req *http.Request, body string) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
		Request:    req,
	}
}

func singleAttempt() FetcherOption {
	return WithRetryOptions(common.RetryOptions{MaxAttempts: 1, InitialDelay: 1})
}

func TestFetchParsesBothPrograms(t *testing.T) {
	client := &http.Client{Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		assert.Contains(t, req.Header.Get("User-Agent"), "Mozilla")
		return htmlResponse(req, programPageHTML), nil
	})}

	fetcher := NewFetcher(WithHTTPClient(client), singleAttempt())
	programs, err := fetcher.Fetch(context.Background())

	require.NoError(t, err)
	require.Len(t, programs, 2)
	assert.Equal(t, aiProgramName, programs[0].Name)
	assert.Equal(t, productProgramName, programs[1].Name)
	assert.Equal(t, "Создавайте AI-продукты и технологии, которые меняют мир.", programs[0].Description)
	assert.Len(t, programs[0].Courses, 15)
	assert.Len(t, programs[1].Courses, 15)
}

func TestFetchFallsBackToStaticOnError(t *testing.T) {
	client := &http.Client{Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})}

	fetcher := NewFetcher(WithHTTPClient(client), singleAttempt())
	programs, err := fetcher.Fetch(context.Background())

	// The catalog stays complete even when every fetch fails.
	require.Error(t, err)
	require.Len(t, programs, 2)
	assert.Equal(t, defaultDescription, programs[0].Description)
	assert.Len(t, programs[0].Courses, 15)
}

func TestFetchRetriesOnServerError(t *testing.T) {
	attempts := 0
	client := &http.Client{Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		attempts++
		if attempts < 2 {
			return &http.Response{
				StatusCode: http.StatusInternalServerError,
				Body:       io.NopCloser(strings.NewReader("")),
				Header:     make(http.Header),
				Request:    req,
			}, nil
		}
		return htmlResponse(req, programPageHTML), nil
	})}

	fetcher := NewFetcher(WithHTTPClient(client), WithRetryOptions(common.RetryOptions{
		MaxAttempts:  3,
		InitialDelay: 1,
	}))
	programs, err := fetcher.Fetch(context.Background())

	require.NoError(t, err)
	require.Len(t, programs, 2)
	assert.GreaterOrEqual(t, attempts, 3)
}

func TestFetchReportsProgress(t *testing.T) {
	client := &http.Client{Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return htmlResponse(req, programPageHTML), nil
	})}

	var seen []string
	fetcher := NewFetcher(WithHTTPClient(client), singleAttempt(),
		WithProgress(func(url string) { seen = append(seen, url) }))

	_, err := fetcher.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{AIProgramURL, ProductProgramURL}, seen)
}
