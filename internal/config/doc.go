// Package config holds the ribget settings and their TOML persistence.
//
// Settings cover the archive server location, the per-request timeout and
// retry budget, and where downloaded archives are written. All fields have
// working defaults, so a config file is optional:
//
//	settings := config.DefaultSettings()
//
//	// or, with a file (missing file falls back to defaults):
//	settings, err := config.Load("/home/user/.config/ribget/config.toml")
//
// # Format
//
// The config file is TOML:
//
//	server = "archive.routeviews.org"
//	v4_archive_root = "bgpdata"
//	v6_archive_root = "route-views6/bgpdata"
//	output_dir = "."
//	request_timeout_seconds = 5
//	fetch_max_retries = 2
package config
