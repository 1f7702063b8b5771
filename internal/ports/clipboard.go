package ports

// ClipboardWriter copies text to the system clipboard
type ClipboardWriter interface {
	WriteAll(text string) error
}
