// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// TransportError reports a failed HTTP exchange: either the request never
// produced a response (Err is set) or the server answered with a non-2xx
// status (StatusCode is set).
type TransportError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("request to %s returned HTTP %d", e.URL, e.StatusCode)
}

// Unwrap returns the underlying network error, if any.
func (e *TransportError) Unwrap() error { return e.Err }

// Get issues a single GET request and returns the response body. There is
// no retry: a network failure or any status outside 200-299 is returned
// as a *TransportError. The URL in the error has its query string removed
// so API keys are not echoed back to the user.
func Get(ctx context.Context, client *http.Client, rawURL, userAgent string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	display := req.URL.Scheme + "://" + req.URL.Host + req.URL.Path

	resp, err := client.Do(req)
	if err != nil {
		return nil, &TransportError{URL: display, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		io.Copy(io.Discard, resp.Body)
		return nil, &TransportError{URL: display, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: display, Err: fmt.Errorf("reading body: %w", err)}
	}
	return body, nil
}
