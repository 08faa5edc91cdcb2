package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/ribget/ribget/internal/model"
)

// Settings holds all configuration options.
type Settings struct {
	// Archive server settings
	Server        string `toml:"server"`
	V4ArchiveRoot string `toml:"v4_archive_root"`
	V6ArchiveRoot string `toml:"v6_archive_root"`

	// HTTP settings
	RequestTimeoutSeconds int    `toml:"request_timeout_seconds"`
	FetchMaxRetries       int    `toml:"fetch_max_retries"`
	UserAgent             string `toml:"user_agent"`

	// Local output settings
	OutputDir string `toml:"output_dir"`
}

// DefaultSettings returns settings with default values: the public
// RouteViews archive, a 5 second request timeout, and 2 extra attempts per
// listing fetch.
func DefaultSettings() *Settings {
	return &Settings{
		Server:        "archive.routeviews.org",
		V4ArchiveRoot: "bgpdata",
		V6ArchiveRoot: "route-views6/bgpdata",

		RequestTimeoutSeconds: 5,
		FetchMaxRetries:       2,
		UserAgent:             "ribget",

		OutputDir: ".",
	}
}

// Load reads settings from a TOML file. A missing file is not an error:
// defaults are returned so ribget works without any configuration.
func Load(path string) (*Settings, error) {
	settings := DefaultSettings()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return settings, nil
	}

	if _, err := toml.DecodeFile(path, settings); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return settings, nil
}

// Save writes settings to a TOML file, creating parent directories as
// needed.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s); err != nil {
		return err
	}

	return os.WriteFile(path, buf.Bytes(), 0644)
}

// RequestTimeout returns the per-request timeout as a duration.
func (s *Settings) RequestTimeout() time.Duration {
	return time.Duration(s.RequestTimeoutSeconds) * time.Second
}

// ArchiveFor returns the archive tree descriptor for the given IP version.
func (s *Settings) ArchiveFor(ipv model.IPVersion) model.Archive {
	if ipv == model.V6 {
		return model.V6Archive(s.Server, s.V6ArchiveRoot)
	}
	return model.V4Archive(s.Server, s.V4ArchiveRoot)
}
