package calc

// EventKind discriminates the button events the engine understands.
type EventKind int

const (
	KindDigit EventKind = iota
	KindDecimalPoint
	KindOperator
	KindEquals
	KindClear
	KindBackspace
)

// Event is one symbolic button press. The input-capture layer produces
// these; how a press was captured (cursor, mouse, anything else) never
// reaches the engine.
type Event struct {
	Kind  EventKind
	Digit byte   // set for KindDigit
	Op    string // set for KindOperator
}

// DigitEvent returns the event for pressing digit d.
func DigitEvent(d byte) Event { return Event{Kind: KindDigit, Digit: d} }

// OperatorEvent returns the event for pressing the operator button op.
func OperatorEvent(op string) Event { return Event{Kind: KindOperator, Op: op} }

// DecimalPointEvent returns the event for pressing the decimal point.
func DecimalPointEvent() Event { return Event{Kind: KindDecimalPoint} }

// EqualsEvent returns the event for pressing equals.
func EqualsEvent() Event { return Event{Kind: KindEquals} }

// ClearEvent returns the event for pressing clear.
func ClearEvent() Event { return Event{Kind: KindClear} }

// BackspaceEvent returns the event for pressing backspace.
func BackspaceEvent() Event { return Event{Kind: KindBackspace} }

// Apply dispatches ev to the matching engine operation. Unknown kinds are
// ignored.
func (e *Engine) Apply(ev Event) {
	switch ev.Kind {
	case KindDigit:
		e.Digit(ev.Digit)
	case KindDecimalPoint:
		e.DecimalPoint()
	case KindOperator:
		e.ApplyOperator(ev.Op)
	case KindEquals:
		e.Equals()
	case KindClear:
		e.Clear()
	case KindBackspace:
		e.Backspace()
	}
}
