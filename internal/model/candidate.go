package model

import "sort"

// Candidate is a timestamp tuple captured from a single directory-listing
// link. Major and Minor are the two capture groups of the listing pattern:
// (year, month) on the archive root page, (date, time) on a month page.
//
// Both parts are fixed-width, zero-padded numeric strings, so comparing the
// concatenated Key lexicographically is the same as comparing chronologically.
type Candidate struct {
	// Major is the coarse part: "2024" for a month listing,
	// "20240315" for a file listing.
	Major string

	// Minor is the fine part: "03" for a month listing,
	// "1200" for a file listing.
	Minor string
}

// Key returns the sort key: the concatenation of both parts.
func (c Candidate) Key() string {
	return c.Major + c.Minor
}

// String renders the candidate in the dotted form used by the archive
// server, e.g. "2024.03" or "20240315.1200".
func (c Candidate) String() string {
	return c.Major + "." + c.Minor
}

// SortCandidates orders candidates ascending by Key, so the most recent
// candidate ends up last and can be popped off the tail.
func SortCandidates(candidates []Candidate) {
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Key() < candidates[j].Key()
	})
}
