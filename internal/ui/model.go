// Package ui is the interactive consumer of the scan core: a bubbletea
// program that starts scans, polls the worker's event stream without
// ever blocking on I/O, and drives zoom navigation over the treemap.
package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/kpouer/Disk-Mosaic/internal/scanner"
	"github.com/kpouer/Disk-Mosaic/internal/settings"
	"github.com/kpouer/Disk-Mosaic/internal/storage"
	"github.com/kpouer/Disk-Mosaic/internal/tree"
)

// Options configures the program at startup.
type Options struct {
	// Path, when set, skips the storage picker and scans immediately.
	Path string
	// MaxDepth caps zoom navigation (0 = unlimited).
	MaxDepth int
	Settings *settings.Settings
}

// Model represents the application state
type Model struct {
	settings *settings.Settings
	state    string // "pick", "scanning", "browse"
	width    int
	height   int
	err      error

	initialPath string
	maxDepth    int

	// pick state
	disks     []storage.Storage
	diskTable table.Model

	// scanning state
	spinner     spinner.Model
	progress    progress.Model
	scanID      int
	cancel      context.CancelFunc
	events      <-chan scanner.Event
	scanRoot    string
	scanPath    string
	scanEntries int64
	scanBytes   int64
	usedBytes   uint64 // denominator for the progress estimate

	// browse state
	result     *tree.AnalysisResult
	errorCount int64
	blocks     []block
	selected   int // index into blocks
	statusMsg  string
}

// InitialModel builds the starting state.
func InitialModel(opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	disks := storage.List()

	return Model{
		settings:    opts.Settings,
		state:       "pick",
		initialPath: opts.Path,
		maxDepth:    opts.MaxDepth,
		disks:       disks,
		diskTable:   buildDiskTable(disks),
		spinner:     s,
		progress:    progress.New(progress.WithDefaultGradient()),
	}
}

// Init starts the spinner, and the scan when a path came from the CLI.
func (m Model) Init() tea.Cmd {
	if m.initialPath != "" {
		return tea.Batch(m.spinner.Tick, func() tea.Msg {
			return startScanMsg{path: m.initialPath}
		})
	}
	return m.spinner.Tick
}

// buildDiskTable lists the mounted filesystems on the start screen.
func buildDiskTable(disks []storage.Storage) table.Model {
	columns := []table.Column{
		{Title: "Mount point", Width: 30},
		{Title: "Device", Width: 20},
		{Title: "Size", Width: 10},
		{Title: "Free", Width: 10},
	}

	rows := make([]table.Row, 0, len(disks))
	for _, d := range disks {
		rows = append(rows, table.Row{
			d.MountPoint,
			d.Device,
			humanize.Bytes(d.Total),
			humanize.Bytes(d.Free),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}
