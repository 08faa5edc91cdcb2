package download

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/ribget/ribget/internal/config"
	"github.com/ribget/ribget/internal/http"
	"github.com/ribget/ribget/internal/model"
	"github.com/ribget/ribget/internal/routeviews"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
	LevelProgress
)

// ProgressEvent represents a progress update from the pipeline.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel

	// Percent is the download completion percentage, set only on
	// LevelProgress events.
	Percent float64
}

// Manager coordinates archive resolution and download.
type Manager struct {
	settings *config.Settings
	client   *http.Client

	totalBytes      int64
	receivedBytes   int64
	totalFiles      int32
	downloadedFiles int32

	onProgress func(ProgressEvent)
}

// NewManager creates a new download Manager.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) *Manager {
	return &Manager{
		settings:   settings,
		client:     http.NewClient(settings.RequestTimeout(), settings.FetchMaxRetries, settings.UserAgent),
		onProgress: onProgress,
	}
}

// Run resolves and downloads the latest archive for each requested IP
// version, strictly one after the other. The first failure aborts the run
// and propagates.
func (m *Manager) Run(ctx context.Context, versions []model.IPVersion) error {
	for _, ipv := range versions {
		if !ipv.Valid() {
			return fmt.Errorf("unknown IP version %q", ipv)
		}
		if err := m.runOne(ctx, ipv); err != nil {
			return err
		}
	}
	return nil
}

// Resolve finds the latest archive URL for one IP version without
// downloading it.
func (m *Manager) Resolve(ctx context.Context, ipv model.IPVersion) (model.Artifact, error) {
	resolver := routeviews.NewResolver(m.client, m.settings.ArchiveFor(ipv))
	return resolver.FindLatest(ctx)
}

// GetProgress returns current download progress.
func (m *Manager) GetProgress() (received, total int64, filesReceived, filesTotal int32) {
	return atomic.LoadInt64(&m.receivedBytes), atomic.LoadInt64(&m.totalBytes),
		atomic.LoadInt32(&m.downloadedFiles), atomic.LoadInt32(&m.totalFiles)
}

func (m *Manager) runOne(ctx context.Context, ipv model.IPVersion) error {
	m.progress(ProgressEvent{Message: fmt.Sprintf("Finding latest IPv%s archive...", ipv), Level: LevelInfo})

	artifact, err := m.Resolve(ctx, ipv)
	if err != nil {
		return fmt.Errorf("resolve IPv%s archive: %w", ipv, err)
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Latest IPv%s archive: %s", ipv, artifact.URL), Level: LevelInfo})

	ok, err := m.client.Exists(ctx, artifact.URL)
	if err != nil {
		return fmt.Errorf("probe %s: %w", artifact.URL, err)
	}
	if !ok {
		return fmt.Errorf("resolved artifact %s does not exist", artifact.URL)
	}

	return m.download(ctx, artifact)
}

func (m *Manager) download(ctx context.Context, artifact model.Artifact) error {
	if err := os.MkdirAll(m.settings.OutputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	dest := artifact.LocalPath(m.settings.OutputDir)

	atomic.AddInt32(&m.totalFiles, 1)
	if size, err := m.client.GetFileSize(ctx, artifact.URL); err == nil {
		atomic.AddInt64(&m.totalBytes, size)
	} else {
		m.progress(ProgressEvent{Message: fmt.Sprintf("No size for %s: %v", artifact.URL, err), Level: LevelVerbose})
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Downloading %s ...", artifact.URL), Level: LevelInfo})

	var prev int64
	err := m.client.DownloadFile(ctx, artifact.URL, dest, func(written, total int64) {
		atomic.AddInt64(&m.receivedBytes, written-prev)
		prev = written

		if total <= 0 {
			return
		}
		percent := float64(written) / float64(total) * 100
		if percent > 100 {
			percent = 100
		}
		m.progress(ProgressEvent{
			Message: fmt.Sprintf("%.2f%%", percent),
			Level:   LevelProgress,
			Percent: percent,
		})
	})
	if err != nil {
		return fmt.Errorf("download %s: %w", artifact.URL, err)
	}

	atomic.AddInt32(&m.downloadedFiles, 1)
	m.progress(ProgressEvent{Message: fmt.Sprintf("Saved %s", dest), Level: LevelSuccess})
	return nil
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
