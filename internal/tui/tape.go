package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
)

const (
	tapePanelWidth = 24
	tapePanelGap   = 2
	// tapeTriggerWidth is the minimum terminal width at which the tape
	// panel fits next to the grid.
	tapeTriggerWidth = leftMargin + gridWidth + tapePanelGap + tapePanelWidth + 2
)

// tape keeps the session's committed evaluations, newest at the bottom,
// inside a scrollable viewport. It lives in memory only; nothing is
// persisted between runs.
type tape struct {
	entries  []string
	limit    int
	viewport viewport.Model
}

func newTape(limit int) *tape {
	vp := viewport.New(tapePanelWidth-2, 1)
	return &tape{limit: limit, viewport: vp}
}

// push appends one evaluation line, dropping the oldest entries beyond
// the configured limit.
func (t *tape) push(entry string) {
	t.entries = append(t.entries, entry)
	if len(t.entries) > t.limit {
		t.entries = t.entries[len(t.entries)-t.limit:]
	}
	t.refresh()
}

// setLimit applies a new limit, trimming existing entries if needed.
func (t *tape) setLimit(limit int) {
	t.limit = limit
	if len(t.entries) > limit {
		t.entries = t.entries[len(t.entries)-limit:]
		t.refresh()
	}
}

// setHeight resizes the viewport to the panel's inner height.
func (t *tape) setHeight(h int) {
	if h < 1 {
		h = 1
	}
	t.viewport.Height = h
	t.refresh()
}

func (t *tape) refresh() {
	t.viewport.SetContent(strings.Join(t.entries, "\n"))
	t.viewport.GotoBottom()
}

// view renders the bordered tape panel.
func (t *tape) view(styles Styles) string {
	title := styles.TapeTitle.Render("Tape")
	body := t.viewport.View()
	if len(t.entries) == 0 {
		body = "(empty)"
	}
	return styles.TapePanel.Render(title + "\n" + styles.TapeEntry.Render(body))
}
