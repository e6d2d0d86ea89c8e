package tui

import "github.com/codefionn/taschenrechner/internal/calc"

// Fixed grid geometry. The layout is flow-from-top with a two column
// margin, so button positions are constants and mouse hit-testing is
// plain arithmetic instead of measuring rendered output.
const (
	leftMargin    = 2
	btnInnerWidth = 5
	btnGapX       = 1
	btnVisibleH   = 3 // content line plus top/bottom border
	gridColumns   = 4
	gridRows      = 5
	gridWidth     = gridColumns*(btnInnerWidth+2) + (gridColumns-1)*btnGapX
	// Rows above the grid: title, blank, three display lines.
	gridTop = 5
)

// button is one cell of the grid. span counts horizontal grid cells, so a
// span-2 button swallows its right neighbour's space plus the gap.
type button struct {
	label  string
	event  calc.Event
	span   int
	accent bool
}

// buttonGrid is the calculator face. Row and column indices double as the
// cursor coordinates.
var buttonGrid = [][]button{
	{
		{label: "C", event: calc.ClearEvent(), span: 1, accent: true},
		{label: "⌫", event: calc.BackspaceEvent(), span: 1, accent: true},
		{label: "%", event: calc.OperatorEvent(calc.OpModulo), span: 1, accent: true},
		{label: "÷", event: calc.OperatorEvent(calc.OpDivide), span: 1, accent: true},
	},
	{
		{label: "7", event: calc.DigitEvent('7'), span: 1},
		{label: "8", event: calc.DigitEvent('8'), span: 1},
		{label: "9", event: calc.DigitEvent('9'), span: 1},
		{label: "×", event: calc.OperatorEvent(calc.OpMultiply), span: 1, accent: true},
	},
	{
		{label: "4", event: calc.DigitEvent('4'), span: 1},
		{label: "5", event: calc.DigitEvent('5'), span: 1},
		{label: "6", event: calc.DigitEvent('6'), span: 1},
		{label: "-", event: calc.OperatorEvent(calc.OpSubtract), span: 1, accent: true},
	},
	{
		{label: "1", event: calc.DigitEvent('1'), span: 1},
		{label: "2", event: calc.DigitEvent('2'), span: 1},
		{label: "3", event: calc.DigitEvent('3'), span: 1},
		{label: "+", event: calc.OperatorEvent(calc.OpAdd), span: 1, accent: true},
	},
	{
		{label: "0", event: calc.DigitEvent('0'), span: 2},
		{label: ".", event: calc.DecimalPointEvent(), span: 1},
		{label: "=", event: calc.EqualsEvent(), span: 1, accent: true},
	},
}

// buttonVisibleWidth is the rendered width of a button including its
// border and any swallowed gaps.
func buttonVisibleWidth(span int) int {
	return span*(btnInnerWidth+2) + (span-1)*btnGapX
}

// hitTest maps terminal coordinates to a grid position. ok is false for
// coordinates outside any button, including the gaps between them.
func hitTest(x, y int) (row, col int, ok bool) {
	x -= leftMargin
	y -= gridTop
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	row = y / btnVisibleH
	if row >= len(buttonGrid) {
		return 0, 0, false
	}
	cx := 0
	for i, b := range buttonGrid[row] {
		w := buttonVisibleWidth(b.span)
		if x >= cx && x < cx+w {
			return row, i, true
		}
		cx += w + btnGapX
	}
	return 0, 0, false
}

// clampCol keeps the cursor column valid when moving between rows of
// different lengths.
func clampCol(row, col int) int {
	if max := len(buttonGrid[row]) - 1; col > max {
		return max
	}
	return col
}
