// Package action models a user-defined device command: a named, optionally
// timer-driven payload that the service transmits to the connected device.
package action

// TimerMode controls how and when an action is executed repeatedly.
type TimerMode int

const (
	// TimerOff disables timer-driven execution.
	TimerOff TimerMode = iota
	// TimerAutoStart starts the repeating trigger as soon as the device
	// connects, without user interaction.
	TimerAutoStart
	// TimerStartOnTrigger starts the repeating trigger after the first
	// manual invocation; later invocations leave the timer alone.
	TimerStartOnTrigger
	// TimerToggleOnTrigger flips the timer between running and stopped on
	// each manual invocation.
	TimerToggleOnTrigger
)

// Valid reports whether m is one of the four named modes. Persisted data may
// carry arbitrary integers; decoding keeps them as-is for round-trip fidelity
// and callers treat invalid modes as TimerOff.
func (m TimerMode) Valid() bool {
	return m >= TimerOff && m <= TimerToggleOnTrigger
}

func (m TimerMode) String() string {
	switch m {
	case TimerOff:
		return "off"
	case TimerAutoStart:
		return "autoStart"
	case TimerStartOnTrigger:
		return "startOnTrigger"
	case TimerToggleOnTrigger:
		return "toggleOnTrigger"
	}
	return "unknown"
}

// DefaultIcon is the display label assigned to freshly created actions.
const DefaultIcon = "Play Property"

// DefaultTimerIntervalMs is the cadence used when no interval is configured.
const DefaultTimerIntervalMs = 100

// Action describes a single transmittable command. It is a flat value type
// with single-owner semantics: no internal locking, mutation only through
// setters. The id is assigned at construction and never changes.
type Action struct {
	id                   int
	binaryData           bool
	icon                 string
	title                string
	txData               string
	eolSequence          string
	timerIntervalMs      int
	timerMode            TimerMode
	autoExecuteOnConnect bool
}

// New creates an Action with the given id and default field values.
func New(id int) *Action {
	return &Action{
		id:              id,
		icon:            DefaultIcon,
		timerIntervalMs: DefaultTimerIntervalMs,
		timerMode:       TimerOff,
	}
}

// ID returns the action id used by the owning collection. Not serialized.
func (a *Action) ID() int { return a.id }

// BinaryData reports whether the payload text is interpreted as hex bytes.
func (a *Action) BinaryData() bool { return a.binaryData }

// Icon returns the display label.
func (a *Action) Icon() string { return a.icon }

// Title returns the display name.
func (a *Action) Title() string { return a.title }

// TxData returns the payload source text.
func (a *Action) TxData() string { return a.txData }

// EOLSequence returns the end-of-line text appended after the payload.
func (a *Action) EOLSequence() string { return a.eolSequence }

// TimerIntervalMs returns the milliseconds between timed triggers.
func (a *Action) TimerIntervalMs() int { return a.timerIntervalMs }

// Mode returns the declared timer behavior.
func (a *Action) Mode() TimerMode { return a.timerMode }

// AutoExecuteOnConnect reports whether the action fires once on connection.
func (a *Action) AutoExecuteOnConnect() bool { return a.autoExecuteOnConnect }

func (a *Action) SetBinaryData(b bool) { a.binaryData = b }

// SetIcon stores the display label with whitespace simplified.
func (a *Action) SetIcon(icon string) { a.icon = simplify(icon) }

// SetTitle stores the display name with whitespace simplified.
func (a *Action) SetTitle(title string) { a.title = simplify(title) }

func (a *Action) SetTxData(data string) { a.txData = data }

func (a *Action) SetEOLSequence(eol string) { a.eolSequence = eol }

func (a *Action) SetTimerIntervalMs(ms int) { a.timerIntervalMs = ms }

func (a *Action) SetMode(m TimerMode) { a.timerMode = m }

func (a *Action) SetAutoExecuteOnConnect(b bool) { a.autoExecuteOnConnect = b }

// TxByteArray builds the exact byte sequence to transmit for this action.
//
// In binary mode the payload text is decoded as hexadecimal byte pairs;
// malformed pairs are dropped rather than reported. Otherwise backslash
// escape sequences are resolved and the result is encoded as UTF-8. A
// non-empty EOL sequence goes through the same escape resolution and is
// appended. The method never fails and never mutates the action.
func (a *Action) TxByteArray() []byte {
	var bin []byte
	if a.binaryData {
		bin = HexToBytes(a.txData)
	} else {
		bin = []byte(ResolveEscapeSequences(a.txData))
	}

	if a.eolSequence != "" {
		bin = append(bin, []byte(ResolveEscapeSequences(a.eolSequence))...)
	}

	return bin
}
