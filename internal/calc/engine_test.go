package calc

import (
	"strings"
	"testing"
)

func press(e *Engine, keys string) {
	for _, r := range keys {
		switch r {
		case '.':
			e.DecimalPoint()
		case '=':
			e.Equals()
		case '+', '-', '%':
			e.ApplyOperator(string(r))
		case '*':
			e.ApplyOperator(OpMultiply)
		case '/':
			e.ApplyOperator(OpDivide)
		case '<':
			e.Backspace()
		case 'C':
			e.Clear()
		default:
			e.Digit(byte(r))
		}
	}
}

func TestDigitEntry(t *testing.T) {
	tests := []struct {
		name string
		keys string
		want string
	}{
		{"single digit", "7", "7"},
		{"multiple digits", "123", "123"},
		{"leading zero replaced", "07", "7"},
		{"repeated zeros collapse", "000", "0"},
		{"zero then digits", "0042", "42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New()
			press(e, tt.keys)
			if e.Value() != tt.want {
				t.Errorf("Value() = %q, want %q", e.Value(), tt.want)
			}
			if e.DisplayText() != tt.want {
				t.Errorf("DisplayText() = %q, want %q", e.DisplayText(), tt.want)
			}
		})
	}
}

func TestDecimalPoint(t *testing.T) {
	e := New()
	press(e, "1.5")
	if e.Value() != "1.5" {
		t.Fatalf("Value() = %q, want 1.5", e.Value())
	}

	// A second decimal point in the same operand is ignored.
	press(e, ".7")
	if e.Value() != "1.57" {
		t.Errorf("Value() after second point = %q, want 1.57", e.Value())
	}
	if strings.Count(e.Value(), ".") != 1 {
		t.Errorf("Value() contains %d decimal points", strings.Count(e.Value(), "."))
	}
}

func TestDecimalPointStartsOperand(t *testing.T) {
	e := New()
	e.Digit('5')
	e.ApplyOperator(OpAdd)
	e.DecimalPoint()
	if e.Value() != "0." {
		t.Errorf("Value() = %q, want 0.", e.Value())
	}
	if e.Expression() != "5 + 0." {
		t.Errorf("Expression() = %q, want \"5 + 0.\"", e.Expression())
	}
}

func TestChainedOperators(t *testing.T) {
	// 6 - 2 folds when + is pressed, then 4 + 3 = 7.
	e := New()
	press(e, "6-2+3=")
	if e.Value() != "7" {
		t.Errorf("Value() = %q, want 7", e.Value())
	}
	if e.Expression() != "" {
		t.Errorf("Expression() = %q, want empty after equals", e.Expression())
	}
}

func TestLeftToRightNoPrecedence(t *testing.T) {
	// 2 + 3 × 4 chains left to right: (2+3)×4 = 20.
	e := New()
	press(e, "2+3*4=")
	if e.Value() != "20" {
		t.Errorf("Value() = %q, want 20", e.Value())
	}
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		keys string
		want string
	}{
		{"8+9=", "17"},
		{"9-12=", "-3"},
		{"2.5*4=", "10"},
		{"7/2=", "3.5"},
		{"7%3=", "1"},
		{"1.5+1.25=", "2.75"},
	}
	for _, tt := range tests {
		e := New()
		press(e, tt.keys)
		if e.Value() != tt.want {
			t.Errorf("%q: Value() = %q, want %q", tt.keys, e.Value(), tt.want)
		}
	}
}

func TestModuloSignFollowsDividend(t *testing.T) {
	e := New()
	e.Digit('7')
	e.ApplyOperator(OpSubtract)
	e.Digit('1')
	e.Digit('0')
	e.Equals() // -3
	e.ApplyOperator(OpModulo)
	e.Digit('4')
	e.Equals()
	if e.Value() != "-3" {
		t.Errorf("Value() = %q, want -3 (remainder keeps dividend sign)", e.Value())
	}
}

func TestEqualsWithoutOperatorIsNoop(t *testing.T) {
	e := New()
	press(e, "5=")
	if e.Value() != "5" {
		t.Errorf("Value() = %q, want 5", e.Value())
	}
	if e.DisplayText() != "5" {
		t.Errorf("DisplayText() = %q, want 5", e.DisplayText())
	}
}

func TestRepeatedEqualsIsNoop(t *testing.T) {
	e := New()
	press(e, "6+2==")
	if e.Value() != "8" {
		t.Errorf("Value() = %q, want 8 (second equals must not re-apply)", e.Value())
	}
}

func TestOperatorWithoutOperandRecordsPending(t *testing.T) {
	e := New()
	e.ApplyOperator(OpAdd)
	if e.Operation() != OpAdd {
		t.Errorf("Operation() = %q, want +", e.Operation())
	}
	if e.Expression() != "0 +" {
		t.Errorf("Expression() = %q, want \"0 +\"", e.Expression())
	}
	press(e, "5=")
	if e.Value() != "5" {
		t.Errorf("Value() = %q, want 5 (0 + 5)", e.Value())
	}
}

func TestOperatorReplacedBeforeOperand(t *testing.T) {
	// Changing your mind before typing the right operand must not evaluate.
	e := New()
	press(e, "6-")
	press(e, "+")
	if e.Expression() != "6 +" {
		t.Errorf("Expression() = %q, want \"6 +\"", e.Expression())
	}
	press(e, "3=")
	if e.Value() != "9" {
		t.Errorf("Value() = %q, want 9", e.Value())
	}
}

func TestDivideByZero(t *testing.T) {
	e := New()
	press(e, "5/0=")
	if e.Value() != "+Inf" {
		t.Errorf("Value() = %q, want +Inf", e.Value())
	}

	e = New()
	press(e, "0/0=")
	if e.Value() != "NaN" {
		t.Errorf("Value() = %q, want NaN", e.Value())
	}
}

func TestModuloByZero(t *testing.T) {
	e := New()
	press(e, "5%0=")
	if e.Value() != "NaN" {
		t.Errorf("Value() = %q, want NaN", e.Value())
	}
}

func TestClearResetsEverything(t *testing.T) {
	e := New()
	press(e, "12.5*3")
	press(e, "C")
	if e.Value() != "0" {
		t.Errorf("Value() = %q, want 0", e.Value())
	}
	if e.Expression() != "" {
		t.Errorf("Expression() = %q, want empty", e.Expression())
	}
	if e.Operation() != "" {
		t.Errorf("Operation() = %q, want empty", e.Operation())
	}
	if e.DisplayText() != "0" {
		t.Errorf("DisplayText() = %q, want 0", e.DisplayText())
	}
}

func TestBackspaceRoundTrip(t *testing.T) {
	e := New()
	press(e, "123<<<")
	if e.Value() != "0" {
		t.Errorf("Value() = %q, want 0", e.Value())
	}
}

func TestBackspaceOnResult(t *testing.T) {
	e := New()
	press(e, "12+34=") // 46, expression cleared
	press(e, "<")
	if e.Value() != "4" {
		t.Errorf("Value() = %q, want 4", e.Value())
	}
	press(e, "<")
	if e.Value() != "0" {
		t.Errorf("Value() = %q, want 0", e.Value())
	}
}

func TestBackspaceThroughExpression(t *testing.T) {
	e := New()
	press(e, "6-2")
	// "6 - 2" -> "6 - ": right token empty, value falls back to 0.
	press(e, "<")
	if e.Expression() != "6 - " {
		t.Errorf("Expression() = %q, want \"6 - \"", e.Expression())
	}
	if e.Value() != "0" {
		t.Errorf("Value() = %q, want 0", e.Value())
	}
	// "6 - " -> "6 -": two tokens, value deliberately left untouched.
	press(e, "<")
	if e.Expression() != "6 -" {
		t.Errorf("Expression() = %q, want \"6 -\"", e.Expression())
	}
	if e.Value() != "0" {
		t.Errorf("Value() = %q, want 0 (stale across the two-token form)", e.Value())
	}
	// "6 -" -> "6 ": still two tokens.
	press(e, "<")
	if e.Expression() != "6 " {
		t.Errorf("Expression() = %q, want \"6 \"", e.Expression())
	}
	// "6 " -> "6": one token again.
	press(e, "<")
	if e.Value() != "6" {
		t.Errorf("Value() = %q, want 6", e.Value())
	}
	press(e, "<")
	if e.Value() != "0" || e.Expression() != "" {
		t.Errorf("Value() = %q, Expression() = %q, want 0 and empty", e.Value(), e.Expression())
	}
}

func TestBackspaceRemovesWholeOperatorRune(t *testing.T) {
	// × and ÷ are multi-byte; backspace must remove the whole rune.
	e := New()
	press(e, "3*")
	press(e, "<")
	if e.Expression() != "3 " {
		t.Errorf("Expression() = %q, want \"3 \"", e.Expression())
	}

	e = New()
	press(e, "8/")
	press(e, "<")
	if e.Expression() != "8 " {
		t.Errorf("Expression() = %q, want \"8 \"", e.Expression())
	}
}

func TestExpressionMirrorsEntry(t *testing.T) {
	e := New()
	press(e, "12")
	if e.DisplayText() != "12" {
		t.Errorf("DisplayText() = %q, want 12", e.DisplayText())
	}
	press(e, "+")
	if e.DisplayText() != "12 +" {
		t.Errorf("DisplayText() = %q, want \"12 +\"", e.DisplayText())
	}
	press(e, "34")
	if e.DisplayText() != "12 + 34" {
		t.Errorf("DisplayText() = %q, want \"12 + 34\"", e.DisplayText())
	}
	press(e, "=")
	if e.DisplayText() != "46" {
		t.Errorf("DisplayText() = %q, want 46", e.DisplayText())
	}
}

func TestEntryAfterEqualsStartsFresh(t *testing.T) {
	e := New()
	press(e, "6+2=") // 8 displayed
	press(e, "5")
	if e.Value() != "5" {
		t.Errorf("Value() = %q, want 5", e.Value())
	}
	if e.DisplayText() != "5" {
		t.Errorf("DisplayText() = %q, want 5", e.DisplayText())
	}
}

func TestResultChainsIntoNextOperation(t *testing.T) {
	e := New()
	press(e, "6+2=") // 8
	press(e, "*3=")
	if e.Value() != "24" {
		t.Errorf("Value() = %q, want 24", e.Value())
	}
}

// Display must always be the expression when non-empty, otherwise the
// current value, after every single event.
func TestDisplayInvariantHolds(t *testing.T) {
	e := New()
	events := []Event{
		DigitEvent('6'), OperatorEvent(OpSubtract), DigitEvent('2'),
		OperatorEvent(OpAdd), DecimalPointEvent(), DigitEvent('5'),
		EqualsEvent(), BackspaceEvent(), DigitEvent('9'),
		OperatorEvent(OpDivide), DigitEvent('0'), EqualsEvent(),
		BackspaceEvent(), ClearEvent(),
	}
	for i, ev := range events {
		e.Apply(ev)
		want := e.Expression()
		if want == "" {
			want = e.Value()
		}
		if e.DisplayText() != want {
			t.Fatalf("event %d: DisplayText() = %q, want %q", i, e.DisplayText(), want)
		}
	}
}

func TestFloatFormattingIsShortest(t *testing.T) {
	e := New()
	press(e, "0.1+0.2=")
	if e.Value() != "0.30000000000000004" {
		t.Errorf("Value() = %q, want the shortest round-trip form", e.Value())
	}

	e = New()
	press(e, "1+1=")
	if e.Value() != "2" {
		t.Errorf("Value() = %q, want 2 (no trailing fraction)", e.Value())
	}
}
