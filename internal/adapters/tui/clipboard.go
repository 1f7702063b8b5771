package tui

import (
	"github.com/atotto/clipboard"

	"datacat/internal/ports"
)

// SystemClipboard writes to the OS clipboard
type SystemClipboard struct{}

// Ensure SystemClipboard implements ClipboardWriter
var _ ports.ClipboardWriter = SystemClipboard{}

// WriteAll copies text to the clipboard
func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// NewClipboard returns the system clipboard, or nil when the platform has
// no clipboard utility.
func NewClipboard() ports.ClipboardWriter {
	if clipboard.Unsupported {
		return nil
	}
	return SystemClipboard{}
}
