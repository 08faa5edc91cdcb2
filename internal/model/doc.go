// Package model defines the core data structures used throughout ribget.
//
// # Candidate
//
// Candidate is a timestamp tuple extracted from one directory-listing link.
// The same type covers both listing levels of the RouteViews archive:
//
//	month := model.Candidate{Major: "2024", Minor: "03"}      // 2024.03/
//	file := model.Candidate{Major: "20240315", Minor: "1200"} // rib.20240315.1200.bz2
//
// Candidates order by Key(), the concatenation of both parts. Because the
// parts are fixed-width and zero-padded, lexicographic comparison of the key
// coincides with chronological order.
//
// # Archive
//
// Archive describes one collector tree on the archive server:
//
//	a := model.V4Archive("archive.routeviews.org")
//	fmt.Println(a.BaseURL()) // http://archive.routeviews.org/bgpdata
//
// # Artifact
//
// Artifact is a fully resolved archive file, carrying the absolute URL and
// the IP-version tag used to name the local copy:
//
//	art := model.Artifact{URL: fileURL, IPVersion: model.V4}
//	fmt.Println(art.LocalName()) // v4-rib.20240315.1200.bz2
package model
