package tui

import (
	"github.com/charmbracelet/glamour"

	"github.com/codefionn/taschenrechner/internal/logger"
)

const helpMarkdown = `# taschenrechner

A pocket calculator for the terminal.

## Using the grid

Move the cursor with the arrow keys (or h/j/k/l) and press a button with
enter or space. With mouse support enabled, clicking a button presses it.

Operations chain strictly left to right: ` + "`2 + 3 × 4`" + ` evaluates
as ` + "`(2 + 3) × 4 = 20`" + `. There is no operator precedence.

## Buttons

* **C** clears everything.
* **⌫** removes the last character of the expression.
* **%** is the floating point remainder; its sign follows the left operand.
* **÷** by zero shows ` + "`+Inf`" + ` or ` + "`NaN`" + ` - press **C** to move on.

## Keys

| Key | Action |
| --- | ------ |
| y   | copy the displayed value to the clipboard |
| t   | show or hide the tape |
| ?   | toggle this help |
| q   | quit |

The tape on the right lists this session's results. It is not saved.
`

const helpWordWrap = 64

// renderHelp renders the help markdown for the active theme. Glamour
// rendering is not free, so the result is cached until the theme changes.
func renderHelp(glamourStyle string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(glamourStyle),
		glamour.WithWordWrap(helpWordWrap),
	)
	if err != nil {
		logger.Global().Error("failed to create help renderer: %v", err)
		return helpMarkdown
	}

	out, err := renderer.Render(helpMarkdown)
	if err != nil {
		logger.Global().Error("failed to render help: %v", err)
		return helpMarkdown
	}
	return out
}
