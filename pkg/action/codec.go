package action

// Document is the generic key/value representation an action is persisted
// as. It matches what encoding/json produces for a JSON object, so values
// are strings, float64 numbers, bools or nil.
type Document map[string]any

// String returns the value stored under key, or def when the key is absent.
// Presence wins over the default: an explicit null or a non-string value
// yields the empty string, not def.
func (d Document) String(key, def string) string {
	v, ok := d[key]
	if !ok {
		return def
	}
	s, _ := v.(string)
	return s
}

// Bool returns the value stored under key, or def when the key is absent.
func (d Document) Bool(key string, def bool) bool {
	v, ok := d[key]
	if !ok {
		return def
	}
	b, _ := v.(bool)
	return b
}

// Int returns the value stored under key, or def when the key is absent.
// JSON decoding produces float64 numbers; int and int64 are accepted for
// documents built in-process.
func (d Document) Int(key string, def int) int {
	v, ok := d[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case int64:
		return int(n)
	}
	return 0
}

// Serialize converts the action to its persisted document form. The action
// id is intentionally excluded; identity is managed by the owning collection.
func (a *Action) Serialize() Document {
	return Document{
		"icon":                 a.icon,
		"txData":               a.txData,
		"eol":                  a.eolSequence,
		"binary":               a.binaryData,
		"title":                simplify(a.title),
		"timerIntervalMs":      a.timerIntervalMs,
		"timerMode":            int(a.timerMode),
		"autoExecuteOnConnect": a.autoExecuteOnConnect,
	}
}

// Read hydrates the action from a persisted document. A document with no
// keys at all fails the read and leaves no guarantee about field state.
// Otherwise every missing key silently falls back to its default, so a
// partial document is not an error. The action id is left untouched.
func (a *Action) Read(doc Document) bool {
	if len(doc) == 0 {
		return false
	}

	a.eolSequence = doc.String("eol", "")
	a.txData = doc.String("txData", "")
	a.binaryData = doc.Bool("binary", false)
	a.timerIntervalMs = doc.Int("timerIntervalMs", DefaultTimerIntervalMs)
	a.icon = simplify(doc.String("icon", ""))
	a.title = simplify(doc.String("title", ""))
	a.autoExecuteOnConnect = doc.Bool("autoExecuteOnConnect", false)
	a.timerMode = TimerMode(doc.Int("timerMode", int(TimerOff)))

	return true
}
