// Package tui provides a Bubble Tea terminal user interface for ribget.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ribget/ribget/internal/config"
	"github.com/ribget/ribget/internal/download"
	"github.com/ribget/ribget/internal/model"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ECDC4")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	artifactStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateOptions State = iota
	StateResolving
	StateDownloading
	StateComplete
	StateError
)

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state    State
	spinner  spinner.Model
	progress progress.Model
	settings *config.Settings

	artifacts []model.Artifact
	err       error

	// Download context
	ctx    context.Context
	cancel context.CancelFunc

	// Download manager reference
	manager *download.Manager

	// Download progress
	totalBytes      int64
	receivedBytes   int64
	totalFiles      int32
	downloadedFiles int32

	// Options
	latestV4 bool
	latestV6 bool

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel() Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:    StateOptions,
		spinner:  sp,
		progress: prog,
		settings: config.DefaultSettings(),
		latestV4: true,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Message types
type (
	// ResolveDoneMsg is sent when artifact resolution completes.
	ResolveDoneMsg struct {
		Artifacts []model.Artifact
		Manager   *download.Manager
		Err       error
	}

	// DownloadDoneMsg is sent when all downloads complete.
	DownloadDoneMsg struct {
		Received int64
		Total    int64
		Files    int32
		TotalF   int32
		Err      error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateOptions {
				return m, tea.Quit
			}
			if m.state == StateResolving || m.state == StateDownloading {
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "enter":
			if m.state == StateOptions && (m.latestV4 || m.latestV6) {
				m.state = StateResolving
				return m, tea.Batch(m.resolveArtifacts(), m.spinner.Tick)
			}

		case "4":
			if m.state == StateOptions {
				m.latestV4 = !m.latestV4
			}

		case "6":
			if m.state == StateOptions {
				m.latestV6 = !m.latestV6
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Reset for a new run
				m.state = StateOptions
				m.artifacts = nil
				m.err = nil
				m.downloadedFiles = 0
				m.totalFiles = 0
				m.receivedBytes = 0
				m.totalBytes = 0
				m.manager = nil
				m.ctx, m.cancel = context.WithCancel(context.Background())
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ResolveDoneMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.artifacts = msg.Artifacts
			m.manager = msg.Manager
			m.state = StateDownloading
			cmds = append(cmds, m.startDownload(), m.tickProgress())
		}

	case DownloadDoneMsg:
		m.receivedBytes = msg.Received
		m.totalBytes = msg.Total
		m.downloadedFiles = msg.Files
		m.totalFiles = msg.TotalF
		if msg.Err != nil && m.ctx.Err() == nil {
			m.state = StateError
			m.err = msg.Err
		} else if m.ctx.Err() != nil {
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		} else {
			m.state = StateComplete
		}

	case TickMsg:
		// Update progress from manager
		if m.manager != nil && m.state == StateDownloading {
			received, total, files, totalFiles := m.manager.GetProgress()
			m.receivedBytes = received
			m.totalBytes = total
			m.downloadedFiles = files
			m.totalFiles = totalFiles

			var percent float64
			if total > 0 {
				percent = float64(received) / float64(total)
			}
			progressCmd := m.progress.SetPercent(percent)
			cmds = append(cmds, progressCmd, m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("ribget"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Download the latest RouteViews MRT/RIB archive"))
	b.WriteString("\n\n")

	switch m.state {
	case StateOptions:
		b.WriteString(m.viewOptions())
	case StateResolving:
		b.WriteString(m.viewResolving())
	case StateDownloading:
		b.WriteString(m.viewDownloading())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewOptions() string {
	var b strings.Builder

	v4Check := "[ ]"
	if m.latestV4 {
		v4Check = "[x]"
	}
	v6Check := "[ ]"
	if m.latestV6 {
		v6Check = "[x]"
	}

	b.WriteString(subtitleStyle.Render("Collector trees:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s IPv4  %s (4)\n", v4Check, dimStyle.Render(m.settings.ArchiveFor(model.V4).BaseURL())))
	b.WriteString(fmt.Sprintf("  %s IPv6  %s (6)\n", v6Check, dimStyle.Render(m.settings.ArchiveFor(model.V6).BaseURL())))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Output directory: %s", m.settings.OutputDir)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewResolving() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Crawling archive listings..."))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewDownloading() string {
	var b strings.Builder

	if len(m.artifacts) > 0 {
		b.WriteString(successStyle.Render(fmt.Sprintf("Resolved %d archive(s):", len(m.artifacts))))
		b.WriteString("\n")
		for _, artifact := range m.artifacts {
			b.WriteString(artifactStyle.Render(fmt.Sprintf("  %s", artifact.LocalName())))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	var percent float64
	if m.totalBytes > 0 {
		percent = float64(m.receivedBytes) / float64(m.totalBytes)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")

	b.WriteString(subtitleStyle.Render(fmt.Sprintf(
		"Files: %d/%d | Downloaded: %.2f MB",
		m.downloadedFiles,
		m.totalFiles,
		float64(m.receivedBytes)/1024/1024,
	)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewComplete() string {
	box := boxStyle.Render(fmt.Sprintf(
		"Download complete\n\n"+
			"Files: %d\n"+
			"Size: %.2f MB",
		m.downloadedFiles,
		float64(m.receivedBytes)/1024/1024,
	))
	return box
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Error:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateOptions:
		return "enter: start | 4: toggle IPv4 | 6: toggle IPv6 | esc: quit"
	case StateResolving, StateDownloading:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: new run | q: quit"
	}
	return ""
}

// versions returns the IP versions selected on the options screen.
func (m Model) versions() []model.IPVersion {
	var versions []model.IPVersion
	if m.latestV4 {
		versions = append(versions, model.V4)
	}
	if m.latestV6 {
		versions = append(versions, model.V6)
	}
	return versions
}

// resolveArtifacts crawls the listings and resolves the latest artifact for
// each selected version, so the download screen can show what it is
// fetching.
func (m *Model) resolveArtifacts() tea.Cmd {
	versions := m.versions()

	return func() tea.Msg {
		manager := download.NewManager(m.settings, nil)

		var artifacts []model.Artifact
		for _, ipv := range versions {
			artifact, err := manager.Resolve(m.ctx, ipv)
			if err != nil {
				return ResolveDoneMsg{Err: err}
			}
			artifacts = append(artifacts, artifact)
		}

		return ResolveDoneMsg{
			Artifacts: artifacts,
			Manager:   manager,
		}
	}
}

// startDownload runs the download pipeline in the background.
func (m *Model) startDownload() tea.Cmd {
	versions := m.versions()

	return func() tea.Msg {
		if m.manager == nil {
			return DownloadDoneMsg{Err: fmt.Errorf("no manager")}
		}

		err := m.manager.Run(m.ctx, versions)
		received, total, files, totalFiles := m.manager.GetProgress()

		return DownloadDoneMsg{
			Received: received,
			Total:    total,
			Files:    files,
			TotalF:   totalFiles,
			Err:      err,
		}
	}
}

// Run starts the TUI application.
func Run() error {
	p := tea.NewProgram(NewModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
