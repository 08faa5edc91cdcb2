// Package cli implements the ribget command-line interface.
//
// The root command resolves and downloads the latest MRT/RIB archive for
// the requested IP versions. There are no required arguments; with neither
// --latestv4 nor --latestv6 the command prints usage and exits cleanly.
//
// # Flags
//
//   - --latestv4, -4: download the latest IPv4 archive
//   - --latestv6, -6: download the latest IPv6 archive
//   - --output, -o: output directory (overrides config)
//   - --config: path to a TOML config file
//   - --verbose, -v: debug-level logging
//   - --version: print version information
//
// # Output
//
// Diagnostics go to stderr through a charmbracelet/log logger; download
// progress is rendered to stdout as a carriage-returned percentage line.
package cli
