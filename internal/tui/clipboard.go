package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"golang.design/x/clipboard"
)

// ClipboardCopyMsg reports the outcome of a clipboard write.
type ClipboardCopyMsg struct {
	Content string
	Success bool
	Error   string
}

// copyToClipboard writes content to the system clipboard off the update
// loop. clipboard.Init is cheap after the first call, so it is done here
// rather than at startup - a headless environment only fails when the
// user actually asks for a copy.
func copyToClipboard(content string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.Init(); err != nil {
			return ClipboardCopyMsg{
				Success: false,
				Error:   fmt.Sprintf("Failed to initialize clipboard: %v", err),
			}
		}

		clipboard.Write(clipboard.FmtText, []byte(content))

		return ClipboardCopyMsg{Content: content, Success: true}
	}
}
