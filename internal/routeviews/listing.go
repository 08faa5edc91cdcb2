package routeviews

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ribget/ribget/internal/model"
)

// Listing patterns. Both are anchored at the start of the href and carry
// exactly two capture groups, which become Candidate.Major and
// Candidate.Minor.
var (
	// MonthPattern matches year-month directory links on the archive root
	// page, e.g. "2024.03/".
	MonthPattern = regexp.MustCompile(`^(\d{4})\.(\d{2})`)

	// FilePattern matches archive file links on a month's RIBS page,
	// e.g. "rib.20240315.1200.bz2".
	FilePattern = regexp.MustCompile(`^rib\.(\d{8})\.(\d{4})\.bz2`)
)

// ExtractCandidates scans all anchors in a directory-listing page and
// returns the timestamp tuples whose link target matches pattern.
//
// Matching is anchored at the start of the href; a link that doesn't match
// is ignored, not an error. Malformed HTML never aborts the scan: the
// underlying parser is permissive and simply skips markup it cannot make
// sense of, so the worst case is an empty result.
func ExtractCandidates(html string, pattern *regexp.Regexp) []model.Candidate {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var candidates []model.Candidate
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok {
			return
		}
		m := pattern.FindStringSubmatch(href)
		if len(m) < 3 {
			return
		}
		candidates = append(candidates, model.Candidate{Major: m[1], Minor: m[2]})
	})

	return candidates
}
