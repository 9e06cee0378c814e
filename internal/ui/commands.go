package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kpouer/Disk-Mosaic/internal/scanner"
)

// startScanMsg asks the model to launch a scan of path.
type startScanMsg struct {
	path string
}

// scanEventMsg wraps one worker event. The id ties it to the scan that
// produced it; events from a superseded scan are dropped on arrival.
// A nil event means the worker closed its channel.
type scanEventMsg struct {
	id int
	ev scanner.Event
}

// waitForScanEvent reads the next worker event. The read blocks inside
// the command goroutine, never in Update, so the presentation side
// stays non-blocking.
func waitForScanEvent(id int, events <-chan scanner.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return scanEventMsg{id: id}
		}
		return scanEventMsg{id: id, ev: ev}
	}
}
