package routeviews

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ribget/ribget/internal/model"
)

// stubFetcher serves canned listing pages keyed by URL and records the
// fetch order.
type stubFetcher struct {
	pages   map[string]string
	fetched []string
}

func (f *stubFetcher) GetString(_ context.Context, url string) (string, error) {
	f.fetched = append(f.fetched, url)
	page, ok := f.pages[url]
	if !ok {
		return "", fmt.Errorf("unexpected fetch of %s", url)
	}
	return page, nil
}

func listingPage(hrefs ...string) string {
	page := "<html><body><pre>\n"
	for _, href := range hrefs {
		page += `<a href="` + href + `">` + href + "</a>\n"
	}
	return page + "</pre></body></html>"
}

const testBase = "http://archive.test/bgpdata"

func newTestResolver(pages map[string]string) (*Resolver, *stubFetcher) {
	fetcher := &stubFetcher{pages: pages}
	archive := model.V4Archive("archive.test", "bgpdata")
	return NewResolver(fetcher, archive), fetcher
}

func TestFindLatestPicksMaximumFile(t *testing.T) {
	resolver, _ := newTestResolver(map[string]string{
		testBase: listingPage("2024.02/", "2024.03/", "other/"),
		testBase + "/2024.03/RIBS": listingPage(
			"rib.20240310.0000.bz2",
			"rib.20240315.1200.bz2",
			"updates.20240315.1200.bz2",
		),
	})

	artifact, err := resolver.FindLatest(context.Background())
	if err != nil {
		t.Fatalf("FindLatest() error = %v", err)
	}

	want := testBase + "/2024.03/RIBS/rib.20240315.1200.bz2"
	if artifact.URL != want {
		t.Errorf("URL = %q, want %q", artifact.URL, want)
	}
	if artifact.IPVersion != model.V4 {
		t.Errorf("IPVersion = %q, want 4", artifact.IPVersion)
	}
}

func TestFindLatestFallsBackToPreviousMonth(t *testing.T) {
	resolver, fetcher := newTestResolver(map[string]string{
		testBase:                   listingPage("2024.02/", "2024.03/"),
		testBase + "/2024.03/RIBS": listingPage("../"), // month rolled over, nothing published yet
		testBase + "/2024.02/RIBS": listingPage("rib.20240215.1200.bz2"),
	})

	artifact, err := resolver.FindLatest(context.Background())
	if err != nil {
		t.Fatalf("FindLatest() error = %v", err)
	}

	want := testBase + "/2024.02/RIBS/rib.20240215.1200.bz2"
	if artifact.URL != want {
		t.Errorf("URL = %q, want %q", artifact.URL, want)
	}

	// The empty month must have been tried first.
	wantOrder := []string{
		testBase,
		testBase + "/2024.03/RIBS",
		testBase + "/2024.02/RIBS",
	}
	if len(fetcher.fetched) != len(wantOrder) {
		t.Fatalf("fetched %v, want %v", fetcher.fetched, wantOrder)
	}
	for i := range wantOrder {
		if fetcher.fetched[i] != wantOrder[i] {
			t.Errorf("fetch[%d] = %q, want %q", i, fetcher.fetched[i], wantOrder[i])
		}
	}
}

func TestFindLatestExhaustsAllMonths(t *testing.T) {
	resolver, _ := newTestResolver(map[string]string{
		testBase:                   listingPage("2024.02/", "2024.03/"),
		testBase + "/2024.03/RIBS": listingPage("../"),
		testBase + "/2024.02/RIBS": listingPage("../"),
	})

	_, err := resolver.FindLatest(context.Background())
	if !errors.Is(err, ErrNoArchive) {
		t.Fatalf("error = %v, want ErrNoArchive", err)
	}
}

func TestFindLatestEmptyRootListing(t *testing.T) {
	resolver, _ := newTestResolver(map[string]string{
		testBase: listingPage("other/", "README.txt"),
	})

	_, err := resolver.FindLatest(context.Background())
	if !errors.Is(err, ErrNoArchive) {
		t.Fatalf("error = %v, want ErrNoArchive", err)
	}
}

func TestFindLatestPropagatesFetchFailure(t *testing.T) {
	// The month page is missing from the stub, which makes GetString fail.
	// That must propagate instead of being shrugged off as an empty month.
	resolver, _ := newTestResolver(map[string]string{
		testBase: listingPage("2024.03/"),
	})

	_, err := resolver.FindLatest(context.Background())
	if err == nil {
		t.Fatal("expected fetch failure to propagate")
	}
	if errors.Is(err, ErrNoArchive) {
		t.Fatalf("fetch failure misreported as ErrNoArchive: %v", err)
	}
}

func TestFindLatestIsIdempotent(t *testing.T) {
	pages := map[string]string{
		testBase:                   listingPage("2023.12/", "2024.01/"),
		testBase + "/2024.01/RIBS": listingPage("rib.20240101.0000.bz2", "rib.20240115.2200.bz2"),
	}

	resolver, _ := newTestResolver(pages)
	first, err := resolver.FindLatest(context.Background())
	if err != nil {
		t.Fatalf("first FindLatest() error = %v", err)
	}

	second, err := resolver.FindLatest(context.Background())
	if err != nil {
		t.Fatalf("second FindLatest() error = %v", err)
	}

	if first != second {
		t.Errorf("resolver not idempotent: %v then %v", first, second)
	}
}

func TestFindLatestV6UsesV6Root(t *testing.T) {
	base := "http://archive.test/route-views6/bgpdata"
	fetcher := &stubFetcher{pages: map[string]string{
		base:                   listingPage("2024.03/"),
		base + "/2024.03/RIBS": listingPage("rib.20240315.0600.bz2"),
	}}

	resolver := NewResolver(fetcher, model.V6Archive("archive.test", "route-views6/bgpdata"))
	artifact, err := resolver.FindLatest(context.Background())
	if err != nil {
		t.Fatalf("FindLatest() error = %v", err)
	}

	if artifact.IPVersion != model.V6 {
		t.Errorf("IPVersion = %q, want 6", artifact.IPVersion)
	}
	if artifact.LocalName() != "v6-rib.20240315.0600.bz2" {
		t.Errorf("LocalName() = %q", artifact.LocalName())
	}
}
