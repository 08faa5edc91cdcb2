package model

import (
	"path"
	"path/filepath"
	"strings"
)

// IPVersion tags an archive tree and the files downloaded from it.
type IPVersion string

const (
	// V4 selects the IPv4 collector tree.
	V4 IPVersion = "4"

	// V6 selects the IPv6 collector tree.
	V6 IPVersion = "6"
)

// Valid reports whether v is one of the two known IP versions.
func (v IPVersion) Valid() bool {
	return v == V4 || v == V6
}

// Archive identifies one collector tree on an archive server.
//
// Server may include a port ("archive.routeviews.org",
// "127.0.0.1:8080"). Root is the path of the tree below the server
// ("bgpdata", "route-views6/bgpdata").
type Archive struct {
	Server    string
	Root      string
	IPVersion IPVersion
}

// V4Archive returns the Archive for the IPv4 collector tree on server.
func V4Archive(server, root string) Archive {
	return Archive{Server: server, Root: root, IPVersion: V4}
}

// V6Archive returns the Archive for the IPv6 collector tree on server.
func V6Archive(server, root string) Archive {
	return Archive{Server: server, Root: root, IPVersion: V6}
}

// BaseURL builds the URL of the archive root listing page. The archive
// server speaks plain HTTP.
func (a Archive) BaseURL() string {
	return "http://" + a.Server + "/" + strings.Trim(a.Root, "/")
}

// Artifact is a fully resolved archive file.
type Artifact struct {
	// URL is the absolute URL of the archive file.
	URL string

	// IPVersion is the collector tree the artifact came from.
	IPVersion IPVersion
}

// LocalName returns the file name the artifact is saved under:
// "v<ipv>-<basename>", e.g. "v4-rib.20240315.1200.bz2".
func (a Artifact) LocalName() string {
	return "v" + string(a.IPVersion) + "-" + path.Base(a.URL)
}

// LocalPath returns the full path of the artifact inside dir.
func (a Artifact) LocalPath(dir string) string {
	return filepath.Join(dir, a.LocalName())
}
