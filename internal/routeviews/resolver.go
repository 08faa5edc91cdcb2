package routeviews

import (
	"context"
	"errors"
	"fmt"

	"github.com/ribget/ribget/internal/model"
)

// ErrNoArchive is returned when no archive file can be found in any month
// of the collector tree.
//
// This typically occurs when:
//   - The archive root listing contains no year-month directories
//   - Every month directory exists but has an empty RIBS listing
//   - The server layout changed and the listing patterns no longer match
var ErrNoArchive = errors.New("no archive file found in any month listing")

// Fetcher fetches the text of a URL. It is satisfied by http.Client's
// GetString, and by test stubs.
type Fetcher interface {
	GetString(ctx context.Context, url string) (string, error)
}

// Resolver finds the most recent archive file in one collector tree.
//
// Resolution crawls two levels of directory listings: the archive root for
// year-month directories, then the newest month's RIBS page for archive
// files. A month directory that exists but contains no files yet (created
// at month rollover, not yet populated) is skipped in favor of the
// next-most-recent month.
//
// Example usage:
//
//	resolver := NewResolver(client, model.V4Archive("archive.routeviews.org", "bgpdata"))
//	artifact, err := resolver.FindLatest(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(artifact.URL)
type Resolver struct {
	fetcher Fetcher
	archive model.Archive
}

// NewResolver creates a Resolver over the given fetcher and collector tree.
func NewResolver(fetcher Fetcher, archive model.Archive) *Resolver {
	return &Resolver{
		fetcher: fetcher,
		archive: archive,
	}
}

// FindLatest resolves the URL of the most recent archive file in the tree.
//
// The algorithm:
//  1. Fetch the archive root listing; collect (year, month) candidates.
//  2. Take the maximum candidate and fetch its RIBS listing.
//  3. A non-empty listing wins: the maximum (date, time) file there is the
//     artifact.
//  4. An empty listing discards the month; the next-highest candidate is
//     tried, until candidates run out (ErrNoArchive).
//
// Only an empty month triggers fallback. A fetch failure on any listing
// page propagates after the fetcher's own retries: retrying a different
// month would mask a network problem as "no archive".
//
// FindLatest is idempotent: against unchanged listings it returns the same
// artifact every time.
func (r *Resolver) FindLatest(ctx context.Context) (model.Artifact, error) {
	base := r.archive.BaseURL()

	rootHTML, err := r.fetcher.GetString(ctx, base)
	if err != nil {
		return model.Artifact{}, fmt.Errorf("fetch archive root: %w", err)
	}

	months := ExtractCandidates(rootHTML, MonthPattern)
	if len(months) == 0 {
		return model.Artifact{}, fmt.Errorf("%s: %w", base, ErrNoArchive)
	}
	model.SortCandidates(months)

	// Pop months newest-first until one has files.
	for i := len(months) - 1; i >= 0; i-- {
		monthURL := base + "/" + months[i].String() + "/RIBS"

		monthHTML, err := r.fetcher.GetString(ctx, monthURL)
		if err != nil {
			return model.Artifact{}, fmt.Errorf("fetch month listing: %w", err)
		}

		files := ExtractCandidates(monthHTML, FilePattern)
		if len(files) == 0 {
			continue
		}
		model.SortCandidates(files)

		latest := files[len(files)-1]
		return model.Artifact{
			URL:       monthURL + "/rib." + latest.String() + ".bz2",
			IPVersion: r.archive.IPVersion,
		}, nil
	}

	return model.Artifact{}, fmt.Errorf("%s: %w", base, ErrNoArchive)
}
