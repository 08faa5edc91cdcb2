package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/ribget/ribget/internal/config"
	"github.com/ribget/ribget/internal/download"
	"github.com/ribget/ribget/internal/model"
)

// run drives the download pipeline and renders its progress events.
//
// The pipeline itself is strictly sequential; the errgroup only pairs it
// with the event-rendering goroutine so progress lines appear while a
// download is in flight.
func run(ctx context.Context, logger *log.Logger, settings *config.Settings, versions []model.IPVersion) error {
	events := make(chan download.ProgressEvent, 64)
	manager := download.NewManager(settings, func(event download.ProgressEvent) {
		events <- event
	})

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(events)
		return manager.Run(ctx, versions)
	})
	g.Go(func() error {
		renderEvents(os.Stdout, logger, events)
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	received, _, files, _ := manager.GetProgress()
	logger.Infof("Done: %d file(s), %.2f MB", files, float64(received)/1024/1024)
	return nil
}

// renderEvents prints progress percentages to w as a single
// carriage-returned line and routes every other event through the logger.
func renderEvents(w io.Writer, logger *log.Logger, events <-chan download.ProgressEvent) {
	midLine := false
	endLine := func() {
		if midLine {
			fmt.Fprintln(w)
			midLine = false
		}
	}

	for event := range events {
		if event.Level == download.LevelProgress {
			fmt.Fprintf(w, "\r %6.2f%%", event.Percent)
			midLine = true
			continue
		}

		endLine()
		switch event.Level {
		case download.LevelVerbose:
			logger.Debug(event.Message)
		case download.LevelWarning:
			logger.Warn(event.Message)
		case download.LevelError:
			logger.Error(event.Message)
		default:
			logger.Info(event.Message)
		}
	}
	endLine()
}
