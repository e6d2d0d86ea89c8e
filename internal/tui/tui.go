// Package tui renders the calculator: a button grid and a display,
// optionally flanked by a tape of this session's results. It captures
// cursor and mouse input and translates it into the symbolic events the
// calc engine consumes; the engine itself knows nothing about terminals.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/ansi"

	"github.com/codefionn/taschenrechner/internal/calc"
	"github.com/codefionn/taschenrechner/internal/config"
	"github.com/codefionn/taschenrechner/internal/logger"
)

const (
	statusDuration = 3 * time.Second
	// Inner text width of the display box: grid width minus border and
	// padding.
	displayTextWidth = gridWidth - 4
	// The tape panel matches the display-plus-grid column: border and
	// title eat three of its lines.
	tapeViewportHeight = 3 + gridRows*btnVisibleH - 3
)

// ConfigReloadedMsg carries a freshly loaded config into the update loop.
// The config watcher sends it through Program.Send.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// statusExpiredMsg clears a transient status line. seq guards against an
// old timer wiping a newer message.
type statusExpiredMsg struct {
	seq int
}

// Model is the bubbletea model for the calculator surface.
type Model struct {
	engine *calc.Engine
	cfg    *config.Config
	keys   keyMap
	help   help.Model
	theme  Theme
	styles Styles
	tape   *tape
	log    *logger.Logger

	cursorRow int
	cursorCol int
	width     int
	height    int
	ready     bool
	showTape  bool
	showHelp  bool
	helpCache string
	status    string
	statusErr bool
	statusSeq int
}

// New creates the surface for the given configuration.
func New(cfg *config.Config) *Model {
	theme := themeByName(cfg.Theme)
	t := newTape(cfg.TapeLimit)
	t.setHeight(tapeViewportHeight)

	return &Model{
		engine:   calc.New(),
		cfg:      cfg,
		keys:     defaultKeyMap(),
		help:     help.New(),
		theme:    theme,
		styles:   newStyles(theme),
		tape:     t,
		log:      logger.Global().WithPrefix("tui"),
		showTape: cfg.ShowTape,
		// Start on the "5" button, the middle of the grid.
		cursorRow: 2,
		cursorCol: 1,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case ClipboardCopyMsg:
		m.statusSeq++
		if msg.Success {
			m.status = fmt.Sprintf("Copied %q", msg.Content)
			m.statusErr = false
		} else {
			m.status = msg.Error
			m.statusErr = true
			m.log.Warn("clipboard copy failed: %s", msg.Error)
		}
		return m, m.expireStatus()

	case ConfigReloadedMsg:
		m.applyConfig(msg.Config)
		return m, nil

	case statusExpiredMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any bound key dismisses the overlay; quit still quits.
		if key.Matches(msg, m.keys.Quit) && msg.String() != "esc" {
			return m, tea.Quit
		}
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.log.Info("quit requested")
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		if m.helpCache == "" {
			m.helpCache = renderHelp(m.theme.GlamourStyle)
		}
		m.showHelp = true

	case key.Matches(msg, m.keys.Up):
		if m.cursorRow > 0 {
			m.cursorRow--
			m.cursorCol = clampCol(m.cursorRow, m.cursorCol)
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursorRow < len(buttonGrid)-1 {
			m.cursorRow++
			m.cursorCol = clampCol(m.cursorRow, m.cursorCol)
		}

	case key.Matches(msg, m.keys.Left):
		if m.cursorCol > 0 {
			m.cursorCol--
		}

	case key.Matches(msg, m.keys.Right):
		if m.cursorCol < len(buttonGrid[m.cursorRow])-1 {
			m.cursorCol++
		}

	case key.Matches(msg, m.keys.Select):
		return m, m.press(buttonGrid[m.cursorRow][m.cursorCol])

	case key.Matches(msg, m.keys.Copy):
		return m, copyToClipboard(m.engine.Value())

	case key.Matches(msg, m.keys.Tape):
		m.showTape = !m.showTape
	}

	return m, nil
}

func (m *Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		if row, col, ok := hitTest(msg.X, msg.Y); ok {
			m.cursorRow, m.cursorCol = row, col
			return m, m.press(buttonGrid[row][col])
		}
		return m, nil
	}

	// Wheel events scroll the tape.
	var cmd tea.Cmd
	m.tape.viewport, cmd = m.tape.viewport.Update(msg)
	return m, cmd
}

// press feeds one button event into the engine. A committed equals also
// lands on the tape as "<expression> = <result>".
func (m *Model) press(b button) tea.Cmd {
	prevOp := m.engine.Operation()
	prevExpr := m.engine.Expression()

	m.engine.Apply(b.event)
	m.log.Debug("pressed %q, display now %q", b.label, m.engine.DisplayText())

	if b.event.Kind == calc.KindEquals && prevOp != "" && m.engine.Expression() == "" {
		m.tape.push(prevExpr + " = " + m.engine.Value())
	}
	return nil
}

func (m *Model) applyConfig(cfg *config.Config) {
	oldTheme := m.theme.Name
	m.cfg = cfg
	m.theme = themeByName(cfg.Theme)
	m.styles = newStyles(m.theme)
	m.showTape = cfg.ShowTape
	m.tape.setLimit(cfg.TapeLimit)
	if m.theme.Name != oldTheme {
		m.helpCache = ""
	}
	m.log.Info("configuration reloaded, theme %s", m.theme.Name)
}

func (m *Model) expireStatus() tea.Cmd {
	seq := m.statusSeq
	return tea.Tick(statusDuration, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return "\n  Starting..."
	}
	if m.showHelp {
		return m.helpCache + m.styles.Help.Render("press any key to close")
	}

	display := m.styles.Display.Render(
		m.styles.DisplayText.Render(tailTruncate(m.engine.DisplayText(), displayTextWidth)))

	left := display + "\n" + m.gridView()
	main := left
	if m.showTape && m.width >= tapeTriggerWidth {
		main = lipgloss.JoinHorizontal(lipgloss.Top,
			left, strings.Repeat(" ", tapePanelGap), m.tape.view(m.styles))
	}
	main = lipgloss.NewStyle().MarginLeft(leftMargin).Render(main)

	status := " "
	if m.status != "" {
		if m.statusErr {
			status = m.styles.StatusError.Render(m.status)
		} else {
			status = m.styles.Status.Render(m.status)
		}
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("taschenrechner"))
	b.WriteString("\n\n")
	b.WriteString(main)
	b.WriteString("\n")
	b.WriteString(status)
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))
	return b.String()
}

func (m *Model) gridView() string {
	rows := make([]string, 0, len(buttonGrid))
	for r, row := range buttonGrid {
		cells := make([]string, 0, len(row)*2)
		for c, b := range row {
			style := m.styles.Button
			if b.accent {
				style = m.styles.ButtonAccent
			}
			if r == m.cursorRow && c == m.cursorCol {
				style = m.styles.ButtonFocused
			}
			if b.span > 1 {
				style = style.Width(buttonVisibleWidth(b.span) - 2)
			}
			if c > 0 {
				cells = append(cells, strings.Repeat(" ", btnGapX))
			}
			cells = append(cells, style.Render(b.label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

// tailTruncate keeps the rightmost part of s within max cells, prefixing
// an ellipsis when something was cut. A calculator display grows at the
// right edge, so the tail is the interesting part.
func tailTruncate(s string, max int) string {
	if ansi.PrintableRuneWidth(s) <= max {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && ansi.PrintableRuneWidth("…"+string(runes)) > max {
		runes = runes[1:]
	}
	return "…" + string(runes)
}
