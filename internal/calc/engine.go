// Package calc implements the expression state machine behind the
// calculator: it consumes discrete button events (digits, decimal point,
// operators, equals, clear, backspace) and maintains the running textual
// expression together with the value being typed.
package calc

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Recognized binary operators. Multiply and divide use the traditional
// calculator glyphs, which are multi-byte in UTF-8 - anything that edits
// the expression string has to be rune-aware.
const (
	OpAdd      = "+"
	OpSubtract = "-"
	OpMultiply = "×"
	OpDivide   = "÷"
	OpModulo   = "%"
)

// Engine holds the complete calculator state. All mutation goes through
// the event methods below; the zero value is not usable, create one with
// New (which is equivalent to pressing clear).
type Engine struct {
	currentValue      string
	previousValue     string
	operation         string
	awaitingNewValue  bool
	currentExpression string
}

// New returns an engine in its initial state.
func New() *Engine {
	e := &Engine{}
	e.Clear()
	return e
}

// Digit appends the digit d ('0'..'9') to the operand being typed, or
// starts a fresh operand after an operator or result was committed.
func (e *Engine) Digit(d byte) {
	if d < '0' || d > '9' {
		return
	}
	if e.awaitingNewValue {
		e.currentExpression = e.currentValue + " " + e.operation + " "
		e.currentValue = string(d)
		e.awaitingNewValue = false
	} else if e.currentValue == "0" {
		// Leading zeros are suppressed: the first real digit replaces
		// the default "0" instead of extending it.
		e.currentValue = string(d)
	} else {
		e.currentValue += string(d)
	}
	e.rebuildExpression()
}

// DecimalPoint starts the fractional part of the current operand. A second
// press within the same operand is ignored.
func (e *Engine) DecimalPoint() {
	if e.awaitingNewValue {
		e.currentExpression = e.currentValue + " " + e.operation + " "
		e.currentValue = "0."
		e.awaitingNewValue = false
	} else if !strings.Contains(e.currentValue, ".") {
		e.currentValue += "."
	}
	e.rebuildExpression()
}

// ApplyOperator records op as the pending binary operation. If a previous
// operation already has both operands it is folded first, so pressing
// operators back to back chains strictly left to right.
func (e *Engine) ApplyOperator(op string) {
	if e.operation != "" && !e.awaitingNewValue {
		e.evaluate(false)
	}
	e.previousValue = e.currentValue
	e.operation = op
	e.awaitingNewValue = true
	e.currentExpression = e.currentValue + " " + op
}

// Equals folds the pending operation into the current value and clears the
// expression so the bare result is displayed. With no pending operation it
// is a no-op.
func (e *Engine) Equals() {
	e.evaluate(true)
}

// evaluate computes the pending binary operation. commitResult is true on
// an equals press and false for the implicit evaluation that an operator
// press triggers; the latter leaves the expression for ApplyOperator to
// overwrite. Malformed operands, a missing operation, or an unrecognized
// operator abort silently with the state untouched.
func (e *Engine) evaluate(commitResult bool) {
	prev, errPrev := strconv.ParseFloat(e.previousValue, 64)
	cur, errCur := strconv.ParseFloat(e.currentValue, 64)
	if errPrev != nil || errCur != nil {
		return
	}

	var result float64
	switch e.operation {
	case OpAdd:
		result = prev + cur
	case OpSubtract:
		result = prev - cur
	case OpMultiply:
		result = prev * cur
	case OpDivide:
		// Deliberately unguarded: division by zero yields +Inf/-Inf/NaN,
		// which flows into the display as a terminal state.
		result = prev / cur
	case OpModulo:
		// Remainder semantics, sign follows the dividend.
		result = math.Mod(prev, cur)
	default:
		return
	}

	if commitResult {
		e.currentExpression = ""
	}
	e.currentValue = strconv.FormatFloat(result, 'g', -1, 64)
	e.operation = ""
	e.previousValue = ""
	e.awaitingNewValue = true
}

// Clear resets the engine to its initial state.
func (e *Engine) Clear() {
	e.currentValue = "0"
	e.previousValue = ""
	e.operation = ""
	e.awaitingNewValue = false
	e.currentExpression = ""
}

// Backspace removes one trailing character. While an expression is shown
// the character comes off the expression string and the current value is
// re-derived from what remains; the two-token remainder ("left op") leaves
// the current value untouched, which keeps historical behaviour.
func (e *Engine) Backspace() {
	if e.currentExpression != "" {
		e.currentExpression = trimLastRune(e.currentExpression)
		switch parts := strings.Split(e.currentExpression, " "); len(parts) {
		case 1:
			e.currentValue = orZero(parts[0])
		case 3:
			e.currentValue = orZero(parts[2])
		}
		return
	}
	e.currentValue = orZero(trimLastRune(e.currentValue))
}

// DisplayText is what the rendering layer shows: the expression while one
// is being built, otherwise the current value.
func (e *Engine) DisplayText() string {
	if e.currentExpression != "" {
		return e.currentExpression
	}
	return e.currentValue
}

// Value returns the operand currently being typed or the last result.
func (e *Engine) Value() string { return e.currentValue }

// Expression returns the incremental expression string, empty when the
// display should show the bare value.
func (e *Engine) Expression() string { return e.currentExpression }

// Operation returns the pending operator, empty when none is pending.
func (e *Engine) Operation() string { return e.operation }

// rebuildExpression refreshes the expression after the current value
// changed. With an operator pending the token before the first space is
// kept as the left operand and the right side is rewritten; without one
// the expression is just the value being typed.
func (e *Engine) rebuildExpression() {
	if e.operation == "" || e.currentExpression == "" {
		e.currentExpression = e.currentValue
		return
	}
	left, _, _ := strings.Cut(e.currentExpression, " ")
	e.currentExpression = left + " " + e.operation + " " + e.currentValue
}

func trimLastRune(s string) string {
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
