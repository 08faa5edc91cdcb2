// Package download provides the orchestration logic for fetching the
// latest MRT/RIB archives from the archive server.
//
// # Manager
//
// The Manager runs the whole pipeline for each requested IP version, one
// after the other:
//
//  1. Resolve the latest archive file URL (crawl the listing tree)
//  2. Probe that the resolved URL exists
//  3. Stream the file to the output directory as v<ipv>-<basename>
//
// # Basic Usage
//
//	manager := download.NewManager(settings, func(event download.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	err := manager.Run(ctx, []model.IPVersion{model.V4, model.V6})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success, Progress
//	    Percent float64       // set for LevelProgress events
//	}
//
// Byte and file counters are also kept as atomics, readable through
// GetProgress, so a UI can poll instead of consuming events.
//
// # Failure Policy
//
// Listing fetches retry inside the HTTP client; everything else is fatal.
// A resolver error, a failed probe, or a download failure aborts the run
// and propagates to the caller. A partial file is left on disk as-is.
package download
