package cve

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// sentinel errors.
var (
	ErrHTTPStatus = errors.New("unexpected http status")
)

// Doer executes HTTP requests; *http.Client and *httpclient.Client satisfy it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Search issues a single GET against the search endpoint with the keyword
// embedded in the query string and returns the response body. A transport
// failure is returned wrapped; a non-2xx response yields ErrHTTPStatus.
func Search(ctx context.Context, client Doer, endpoint, keyword string) (string, error) {
	target := SearchURL(endpoint, keyword)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("search request: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("%w: %d", ErrHTTPStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	return string(body), nil
}
