package model

import "swatchctl/pkg/logging"

// ClearStatusBarMsg clears the status bar message it was scheduled for.
type ClearStatusBarMsg struct {
	Seq uint64
}

// NewLogEntryMsg carries one log entry from the logging channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// ClipboardResultMsg reports the outcome of copying a hex value.
type ClipboardResultMsg struct {
	Hex string
	Err error
}
