package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/kpouer/Disk-Mosaic/internal/utils"
)

// View renders the UI
func (m Model) View() string {
	switch m.state {
	case "scanning":
		return m.renderScanning()
	case "browse":
		return m.renderBrowse()
	default:
		return m.renderPick()
	}
}

func (m Model) renderPick() string {
	var s strings.Builder

	header := TitleStyle.Render("Disk Mosaic")
	s.WriteString("\n")
	s.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, header))
	s.WriteString("\n\n")

	var content strings.Builder
	content.WriteString(HeaderStyle.Render("Select a disk to scan"))
	content.WriteString("\n\n")
	content.WriteString(m.diskTable.View())
	content.WriteString("\n\n")

	if m.err != nil {
		content.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		content.WriteString("\n\n")
	} else if m.statusMsg != "" {
		content.WriteString(DimStyle.Render(m.statusMsg))
		content.WriteString("\n\n")
	}

	content.WriteString(DimStyle.Render("Use ↑/↓ to navigate, Enter to scan, q to quit"))

	s.WriteString(lipgloss.NewStyle().Padding(0, 3).Render(content.String()))
	s.WriteString("\n")
	return s.String()
}

func (m Model) renderScanning() string {
	var s strings.Builder

	header := TitleStyle.Render("Disk Mosaic")
	s.WriteString("\n")
	s.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, header))
	s.WriteString("\n\n")

	var content strings.Builder
	content.WriteString(HeaderStyle.Render("Scanning " + utils.TruncatePath(m.scanRoot, 60)))
	content.WriteString("\n\n")

	if m.scanEntries > 0 {
		stats := fmt.Sprintf("%s entries | %s",
			humanize.Comma(m.scanEntries),
			utils.FormatFileSize(m.scanBytes))
		content.WriteString(SuccessStyle.Render(stats))
		content.WriteString("\n\n")
	}

	content.WriteString(m.spinner.View() + " " + utils.TruncatePath(m.scanPath, 70))
	content.WriteString("\n\n")

	if m.usedBytes > 0 {
		pct := float64(m.scanBytes) / float64(m.usedBytes)
		if pct > 1 {
			pct = 1
		}
		content.WriteString(m.progress.ViewAs(pct))
		content.WriteString("\n\n")
	}

	content.WriteString(DimStyle.Render("Esc to cancel"))

	s.WriteString(lipgloss.NewStyle().Padding(0, 3).Render(content.String()))
	s.WriteString("\n")
	return s.String()
}

func (m Model) renderBrowse() string {
	if m.result == nil {
		return ""
	}

	var s strings.Builder
	current := m.result.Current()

	// Header: path and aggregate size of the displayed directory.
	title := fmt.Sprintf(" %s — %s ",
		utils.TruncatePath(m.result.CurrentPath(), max(10, m.width-25)),
		utils.FormatFileSize(current.Size))
	s.WriteString(TitleStyle.Render(title))
	s.WriteString("\n")

	// Info line: depth, selection, aggregated error count.
	info := fmt.Sprintf("depth %d", m.result.Depth())
	if m.selected >= 0 && m.selected < len(m.blocks) {
		sel := m.blocks[m.selected].node
		info += fmt.Sprintf(" | %s (%s)", sel.Name, utils.FormatFileSize(sel.Size))
	}
	if m.errorCount > 0 {
		info += ErrorStyle.Render(fmt.Sprintf(" | %d unreadable entries skipped", m.errorCount))
	}
	if m.statusMsg != "" {
		info += DimStyle.Render(" | " + m.statusMsg)
	}
	s.WriteString(info)
	s.WriteString("\n")

	s.WriteString(m.renderTreemap())
	s.WriteString("\n")

	s.WriteString(DimStyle.Render("arrows: select | enter/wheel: zoom in | u/wheel up: zoom out | i: ignore | r: rescan | q: quit"))
	return s.String()
}

// renderTreemap draws the laid-out blocks into a cell grid.
func (m Model) renderTreemap() string {
	w, h := m.gridWidth(), m.gridHeight()

	grid := make([][]rune, h)
	styles := make([][]lipgloss.Style, h)
	blank := DimStyle
	for y := range grid {
		grid[y] = make([]rune, w)
		styles[y] = make([]lipgloss.Style, w)
		for x := range grid[y] {
			grid[y][x] = ' '
			styles[y][x] = blank
		}
	}

	for i, b := range m.blocks {
		m.drawBlock(grid, styles, b, i == m.selected)
	}

	var lines []string
	for y := 0; y < h; y++ {
		var line strings.Builder
		for x := 0; x < w; x++ {
			line.WriteString(styles[y][x].Render(string(grid[y][x])))
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

func (m Model) blockStyle(b block, selected bool) lipgloss.Style {
	if selected {
		return SelectedBlockStyle
	}
	if b.node.IsDir() {
		return DirBlockStyle
	}
	if m.settings != nil && b.node.Size >= m.settings.BigFileThreshold {
		return BigFileBlockStyle
	}
	return FileBlockStyle
}

// drawBlock fills one block with its style, border and label.
func (m Model) drawBlock(grid [][]rune, styles [][]lipgloss.Style, b block, selected bool) {
	gridH := len(grid)
	if gridH == 0 {
		return
	}
	gridW := len(grid[0])
	style := m.blockStyle(b, selected)

	for y := b.y; y < b.y+b.h && y < gridH; y++ {
		for x := b.x; x < b.x+b.w && x < gridW; x++ {
			if y >= 0 && x >= 0 {
				grid[y][x] = ' '
				styles[y][x] = style
			}
		}
	}

	if b.w >= 2 && b.h >= 2 {
		drawBorder(grid, styles, b, style, gridW, gridH)
	}

	// Label when space permits.
	if b.w > 4 && b.h > 2 {
		writeLabel(grid, styles, b.node.Name, b.x+2, b.y+1, b.x+b.w-2, style, gridW, gridH)
		if b.h > 3 {
			writeLabel(grid, styles, utils.FormatFileSize(b.node.Size), b.x+2, b.y+2, b.x+b.w-2, style, gridW, gridH)
		}
	} else if b.w > 4 && b.h >= 1 {
		writeLabel(grid, styles, b.node.Name, b.x+1, b.y, b.x+b.w-1, style, gridW, gridH)
	}
}

func drawBorder(grid [][]rune, styles [][]lipgloss.Style, b block, style lipgloss.Style, gridW, gridH int) {
	set := func(x, y int, ch rune) {
		if y >= 0 && y < gridH && x >= 0 && x < gridW {
			grid[y][x] = ch
			styles[y][x] = style
		}
	}

	right := b.x + b.w - 1
	bottom := b.y + b.h - 1

	for x := b.x; x <= right; x++ {
		set(x, b.y, '─')
		set(x, bottom, '─')
	}
	for y := b.y; y <= bottom; y++ {
		set(b.x, y, '│')
		set(right, y, '│')
	}
	set(b.x, b.y, '┌')
	set(right, b.y, '┐')
	set(b.x, bottom, '└')
	set(right, bottom, '┘')
}

func writeLabel(grid [][]rune, styles [][]lipgloss.Style, label string, x0, y, x1 int, style lipgloss.Style, gridW, gridH int) {
	if y < 0 || y >= gridH {
		return
	}
	x := x0
	for _, ch := range label {
		if x >= x1 || x >= gridW {
			return
		}
		if x >= 0 {
			grid[y][x] = ch
			styles[y][x] = style
		}
		x++
	}
}
