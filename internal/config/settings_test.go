package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/ribget/ribget/internal/model"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.Server != "archive.routeviews.org" {
		t.Errorf("Server = %q, want archive.routeviews.org", s.Server)
	}
	if s.V4ArchiveRoot != "bgpdata" {
		t.Errorf("V4ArchiveRoot = %q, want bgpdata", s.V4ArchiveRoot)
	}
	if s.V6ArchiveRoot != "route-views6/bgpdata" {
		t.Errorf("V6ArchiveRoot = %q, want route-views6/bgpdata", s.V6ArchiveRoot)
	}
	if s.RequestTimeout() != 5*time.Second {
		t.Errorf("RequestTimeout() = %v, want 5s", s.RequestTimeout())
	}
	if s.FetchMaxRetries != 2 {
		t.Errorf("FetchMaxRetries = %d, want 2", s.FetchMaxRetries)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Server != DefaultSettings().Server {
		t.Errorf("Server = %q, want default", s.Server)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	s := DefaultSettings()
	s.Server = "127.0.0.1:8080"
	s.OutputDir = "/tmp/ribs"
	s.FetchMaxRetries = 5

	if err := s.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loaded.Server != "127.0.0.1:8080" {
		t.Errorf("Server = %q, want 127.0.0.1:8080", loaded.Server)
	}
	if loaded.OutputDir != "/tmp/ribs" {
		t.Errorf("OutputDir = %q, want /tmp/ribs", loaded.OutputDir)
	}
	if loaded.FetchMaxRetries != 5 {
		t.Errorf("FetchMaxRetries = %d, want 5", loaded.FetchMaxRetries)
	}
	// Fields absent from the file keep their defaults.
	if loaded.V4ArchiveRoot != "bgpdata" {
		t.Errorf("V4ArchiveRoot = %q, want bgpdata", loaded.V4ArchiveRoot)
	}
}

func TestArchiveFor(t *testing.T) {
	s := DefaultSettings()

	v4 := s.ArchiveFor(model.V4)
	if v4.BaseURL() != "http://archive.routeviews.org/bgpdata" {
		t.Errorf("v4 BaseURL = %q", v4.BaseURL())
	}
	if v4.IPVersion != model.V4 {
		t.Errorf("v4 IPVersion = %q, want 4", v4.IPVersion)
	}

	v6 := s.ArchiveFor(model.V6)
	if v6.BaseURL() != "http://archive.routeviews.org/route-views6/bgpdata" {
		t.Errorf("v6 BaseURL = %q", v6.BaseURL())
	}
}
