package model

import (
	"swatchctl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// ListenForLogEntriesCmd waits for the next entry on the logging channel.
// It returns nil once the channel is closed.
func ListenForLogEntriesCmd(logChan <-chan logging.LogEntry) tea.Cmd {
	if logChan == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-logChan
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}
