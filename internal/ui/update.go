package ui

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kpouer/Disk-Mosaic/internal/scanner"
	"github.com/kpouer/Disk-Mosaic/internal/storage"
	"github.com/kpouer/Disk-Mosaic/internal/tree"
	"github.com/kpouer/Disk-Mosaic/internal/utils"
)

// Vertical lines around the treemap grid in the browse view. View and
// mouse handling must agree on these.
const (
	browseHeaderLines = 2
	browseFooterLines = 1
)

// timeRound trims scan durations for the status line.
const timeRound = 10 * time.Millisecond

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(60, max(10, msg.Width-10))
		if m.state == "browse" {
			m.relayout()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case startScanMsg:
		return m.beginScan(msg.path)

	case scanEventMsg:
		return m.handleScanEvent(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.cancelScan()
		return m, tea.Quit
	}

	switch m.state {
	case "pick":
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case "enter":
			if len(m.disks) > 0 {
				return m.beginScan(m.disks[m.diskTable.Cursor()].MountPoint)
			}
		default:
			var cmd tea.Cmd
			m.diskTable, cmd = m.diskTable.Update(msg)
			return m, cmd
		}

	case "scanning":
		switch msg.String() {
		case "q", "esc":
			// Cooperative cancellation; partial results are discarded.
			m.cancelScan()
			m.state = "pick"
			m.statusMsg = "Scan cancelled"
			return m, nil
		}

	case "browse":
		return m.handleBrowseKey(msg)
	}

	return m, nil
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "esc":
		// Discarding the result destroys the tree.
		m.result = nil
		m.blocks = nil
		m.state = "pick"
		m.statusMsg = ""
		return m, nil

	case "enter":
		if m.selected >= 0 && m.selected < len(m.blocks) {
			m.zoomIn(m.selected)
		}
		return m, nil

	case "u", "backspace":
		m.zoomOut()
		return m, nil

	case "left", "h":
		m.selected = moveSelection(m.blocks, m.selected, -1, 0)
		return m, nil
	case "right", "l":
		m.selected = moveSelection(m.blocks, m.selected, 1, 0)
		return m, nil
	case "up", "k":
		m.selected = moveSelection(m.blocks, m.selected, 0, -1)
		return m, nil
	case "down", "j":
		m.selected = moveSelection(m.blocks, m.selected, 0, 1)
		return m, nil

	case "i":
		return m.ignoreSelected()

	case "r":
		if m.result != nil {
			return m.beginScan(m.result.RootPath)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.state != "browse" {
		return m, nil
	}

	gy := msg.Y - browseHeaderLines

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		// Scroll gesture: ancestor re-select, not a pop.
		if m.result != nil && m.result.SelectDepth(m.result.Depth()-2) {
			m.relayout()
		}

	case msg.Button == tea.MouseButtonWheelDown:
		if idx := hitTest(m.blocks, msg.X, gy); idx >= 0 {
			m.zoomIn(idx)
		}

	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		if idx := hitTest(m.blocks, msg.X, gy); idx >= 0 {
			m.selected = idx
		}
	}

	return m, nil
}

// beginScan cancels any running worker and launches a fresh one. The
// ignore configuration is snapshotted here; mutations during the scan
// wait for the next one.
func (m Model) beginScan(path string) (tea.Model, tea.Cmd) {
	m.cancelScan()

	abs, err := filepath.Abs(path)
	if err != nil {
		m.err = fmt.Errorf("resolving %s: %w", path, err)
		return m, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.scanID++
	m.state = "scanning"
	m.err = nil
	m.result = nil
	m.blocks = nil
	m.scanRoot = abs
	m.scanPath = ""
	m.scanEntries = 0
	m.scanBytes = 0

	// Used bytes on the mount give the progress denominator; zero just
	// hides the percentage.
	if total, free, err := storage.Usage(abs); err == nil && total > free {
		m.usedBytes = total - free
	} else {
		m.usedBytes = 0
	}

	m.events = scanner.Scan(ctx, abs, m.settings.Filter())
	return m, tea.Batch(m.spinner.Tick, waitForScanEvent(m.scanID, m.events))
}

func (m *Model) cancelScan() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

func (m Model) handleScanEvent(msg scanEventMsg) (tea.Model, tea.Cmd) {
	// A superseded scan's events carry a stale id; drop them and stop
	// polling that channel.
	if msg.id != m.scanID {
		return m, nil
	}

	switch ev := msg.ev.(type) {
	case nil:
		// Channel closed after its terminal event.
		return m, nil

	case scanner.Progress:
		m.scanPath = ev.Path
		m.scanEntries = ev.Entries
		m.scanBytes = ev.Bytes
		return m, waitForScanEvent(m.scanID, m.events)

	case scanner.Done:
		m.result = tree.NewAnalysisResult(m.scanRoot, ev.Root)
		m.result.MaxDepth = m.maxDepth
		m.errorCount = ev.Errors
		m.state = "browse"
		m.statusMsg = fmt.Sprintf("Scanned %s in %s",
			utils.FormatFileSize(ev.Root.Size), ev.Elapsed.Round(timeRound))
		m.relayout()
		m.selected = 0
		return m, waitForScanEvent(m.scanID, m.events)

	case scanner.Failed:
		m.err = fmt.Errorf("cannot scan %s: %w", ev.Path, ev.Err)
		m.state = "pick"
		return m, waitForScanEvent(m.scanID, m.events)

	case scanner.Cancelled:
		if m.state == "scanning" {
			m.state = "pick"
			m.statusMsg = "Scan cancelled"
		}
		return m, waitForScanEvent(m.scanID, m.events)
	}

	return m, nil
}

// zoomIn drills into the block at blockIdx. Files and capped depth
// leave everything untouched.
func (m *Model) zoomIn(blockIdx int) {
	if m.result == nil || blockIdx < 0 || blockIdx >= len(m.blocks) {
		return
	}
	if m.result.ZoomIn(m.blocks[blockIdx].index) {
		m.relayout()
	}
}

// zoomOut pops one level, restoring the node into its parent.
func (m *Model) zoomOut() {
	if m.result != nil && m.result.ZoomOut() {
		m.relayout()
	}
}

// ignoreSelected adds the selected entry's path to the ignore list,
// persists the settings and rescans so the exclusion takes effect.
func (m Model) ignoreSelected() (tea.Model, tea.Cmd) {
	if m.result == nil || m.selected < 0 || m.selected >= len(m.blocks) {
		return m, nil
	}

	path := filepath.Join(m.result.CurrentPath(), m.blocks[m.selected].node.Name)
	m.settings.AddIgnoredPath(path)
	if err := m.settings.Save(); err != nil {
		m.err = fmt.Errorf("saving settings: %w", err)
		return m, nil
	}

	return m.beginScan(m.result.RootPath)
}

// relayout recomputes blocks for the displayed directory and clamps
// the selection. Every layout pass rewrites the transient bounds.
func (m *Model) relayout() {
	var dir *tree.Node
	if m.result != nil {
		dir = m.result.Current()
	}
	m.blocks = layoutBlocks(dir, m.gridWidth(), m.gridHeight())

	if len(m.blocks) == 0 {
		m.selected = -1
	} else if m.selected < 0 || m.selected >= len(m.blocks) {
		m.selected = 0
	}
}

func (m Model) gridWidth() int {
	return max(1, m.width)
}

func (m Model) gridHeight() int {
	return max(1, m.height-browseHeaderLines-browseFooterLines)
}
