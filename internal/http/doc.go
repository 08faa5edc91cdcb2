// Package http provides the HTTP client used to crawl the archive server
// and download archive files.
//
// The Client in this package handles:
//   - Text fetches with a fixed retry budget (listing pages)
//   - Existence probes via HEAD requests
//   - Streaming file downloads with progress tracking
//   - Timeout handling
//
// # Basic Usage
//
//	client := http.NewClient(5*time.Second, 2, "ribget")
//
//	// Fetch a directory-listing page; transient failures are retried.
//	html, err := client.GetString(ctx, "http://archive.routeviews.org/bgpdata")
//
//	// Download a file with progress callback
//	client.DownloadFile(ctx, fileURL, "v4-rib.20240315.1200.bz2", func(written, total int64) {
//	    fmt.Printf("%.2f%%\r", float64(written)/float64(total)*100)
//	})
//
// # Retry Policy
//
// GetString retries any failure (transport error or non-200 status) up to
// the configured number of extra attempts, with no backoff and no error
// classification. Downloads are never retried; a failure propagates to the
// caller.
package http
