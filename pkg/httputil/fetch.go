package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// fetchLimit caps how much of a remote document Fetch will read.
const fetchLimit = 16 << 20 // 16 MiB

// Fetch retrieves the document at url with up to three attempts.
// Network errors and 5xx responses are retried with backoff; 4xx
// responses fail immediately.
func Fetch(ctx context.Context, url string) ([]byte, error) {
	var body []byte
	err := Retry(ctx, 3, time.Second, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return &RetryableError{Err: err}
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode >= 500:
			return &RetryableError{Err: fmt.Errorf("GET %s: %s", url, resp.Status)}
		case resp.StatusCode != http.StatusOK:
			return fmt.Errorf("GET %s: %s", url, resp.Status)
		}

		body, err = io.ReadAll(io.LimitReader(resp.Body, fetchLimit))
		if err != nil {
			return &RetryableError{Err: err}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}
