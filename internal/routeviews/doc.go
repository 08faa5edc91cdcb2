// Package routeviews locates the most recent MRT/RIB archive on a
// RouteViews-style archive server.
//
// The server exposes no machine-readable "latest" pointer, only nested HTML
// directory listings: the archive root lists year-month directories
// (2024.03/), each month's RIBS directory lists dated archive files
// (rib.20240315.1200.bz2). Finding the latest snapshot therefore means
// crawling two levels of listings and selecting the maximum timestamp.
//
// # Listing Parser
//
// ExtractCandidates scans every anchor on a listing page and collects the
// timestamp tuples whose href matches a pattern:
//
//	months := routeviews.ExtractCandidates(html, routeviews.MonthPattern)
//
// # Resolver
//
// Resolver composes two parser passes with a defensive fallback: when the
// newest month directory exists but holds no files yet, the next-most-recent
// month is tried, until either a file is found or every month came up empty
// (ErrNoArchive).
//
//	resolver := routeviews.NewResolver(client, settings.ArchiveFor(model.V4))
//	artifact, err := resolver.FindLatest(ctx)
//	if errors.Is(err, routeviews.ErrNoArchive) {
//	    // nothing published in any month
//	}
package routeviews
