package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// progressEvery is how many chunk writes pass between progress callbacks.
const progressEvery = 10

// Client wraps HTTP operations against the archive server.
//
// Client provides:
//   - Text fetches with a bounded timeout and a fixed retry budget
//   - Existence probes via HEAD requests
//   - File download with progress tracking
//
// Example usage:
//
//	client := NewClient(5*time.Second, 2, "ribget")
//
//	html, err := client.GetString(ctx, "http://archive.routeviews.org/bgpdata")
//
//	err = client.DownloadFile(ctx, fileURL, "v4-rib.20240315.1200.bz2", func(written, total int64) {
//	    percent := float64(written) / float64(total) * 100
//	    fmt.Printf("%.2f%%\r", percent)
//	})
type Client struct {
	httpClient     *http.Client
	downloadClient *http.Client
	userAgent      string
	maxRetries     int
}

// NewClient creates a new HTTP client.
//
// timeout bounds every listing fetch and probe; maxRetries is the number of
// extra attempts GetString makes after the first failure. Downloads are not
// bounded by the timeout (an archive file takes far longer than any listing
// page); they stop only when the context is cancelled.
func NewClient(timeout time.Duration, maxRetries int, userAgent string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		downloadClient: &http.Client{},
		userAgent:      userAgent,
		maxRetries:     maxRetries,
	}
}

// ProgressWriter wraps a writer to track download progress.
//
// OnUpdate fires every tenth Write and once more when the written count
// reaches Total, so large downloads report at a readable rate without
// flooding the caller.
type ProgressWriter struct {
	// Writer is the underlying writer to write data to.
	Writer io.Writer

	// Total is the expected total bytes (from Content-Length header).
	// Zero or negative when the server did not say.
	Total int64

	// Written is the current number of bytes written.
	Written int64

	// OnUpdate is called with (bytesWritten, totalExpected).
	OnUpdate func(written, total int64)

	writes int64
}

// Write implements io.Writer, tracking progress and calling OnUpdate.
func (pw *ProgressWriter) Write(p []byte) (int, error) {
	n, err := pw.Writer.Write(p)
	pw.Written += int64(n)
	pw.writes++
	if pw.OnUpdate != nil && (pw.writes%progressEvery == 0 || (pw.Total > 0 && pw.Written >= pw.Total)) {
		pw.OnUpdate(pw.Written, pw.Total)
	}
	return n, err
}

// get performs a single GET attempt and returns the body.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// GetString fetches a URL and returns the response body as a string,
// retrying failed attempts up to the configured budget.
//
// Every failure is treated the same: transport errors, timeouts, and
// non-200 responses all consume one attempt. There is no backoff between
// attempts. A cancelled context stops the loop immediately.
//
// Example:
//
//	html, err := client.GetString(ctx, monthURL)
func (c *Client) GetString(ctx context.Context, url string) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		body, err := c.get(ctx, url)
		if err == nil {
			return string(body), nil
		}
		lastErr = err
	}
	return "", fmt.Errorf("GET %s failed after %d attempts: %w", url, c.maxRetries+1, lastErr)
}

// Exists reports whether a URL points at an existing resource.
//
// A URL that already names an archive file (".bz2" suffix) is taken to
// exist without a network round-trip; it was just discovered in a listing.
// Anything else is probed with a HEAD request.
func (c *Client) Exists(ctx context.Context, url string) (bool, error) {
	if strings.HasSuffix(url, ".bz2") {
		return true, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK, nil
}

// GetFileSize returns the size of a file at the given URL via HEAD request.
//
// Returns an error if the request fails or the server doesn't send a
// Content-Length header.
func (c *Client) GetFileSize(ctx context.Context, url string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.ContentLength < 0 {
		return 0, fmt.Errorf("no Content-Length header for %s", url)
	}

	return resp.ContentLength, nil
}

// DownloadFile downloads a file to the specified path with optional
// progress callback.
//
// The file is created (or truncated if it exists) and the content is
// streamed directly to disk. Downloads are not retried and a partial file
// is left in place on failure.
//
// Parameters:
//   - ctx: Context for cancellation
//   - url: URL to download from
//   - destPath: Local file path to save to
//   - onProgress: Optional callback called with (bytesWritten, totalBytes);
//     pass nil to disable progress tracking
func (c *Client) DownloadFile(ctx context.Context, url, destPath string, onProgress func(written, total int64)) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.downloadClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	file, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer file.Close()

	var writer io.Writer = file
	if onProgress != nil {
		writer = &ProgressWriter{
			Writer:   file,
			Total:    resp.ContentLength,
			OnUpdate: onProgress,
		}
	}

	_, err = io.Copy(writer, resp.Body)
	return err
}
