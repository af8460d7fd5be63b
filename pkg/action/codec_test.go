package action

import (
	"encoding/json"
	"testing"
)

func sampleAction() *Action {
	a := New(3)
	a.SetBinaryData(true)
	a.SetIcon("Flash")
	a.SetTitle("Reset Device")
	a.SetTxData("DE AD BE EF")
	a.SetEOLSequence(`\r\n`)
	a.SetTimerIntervalMs(250)
	a.SetMode(TimerToggleOnTrigger)
	a.SetAutoExecuteOnConnect(true)
	return a
}

func TestSerialize_Keys(t *testing.T) {
	doc := sampleAction().Serialize()

	want := map[string]any{
		"icon":                 "Flash",
		"txData":               "DE AD BE EF",
		"eol":                  `\r\n`,
		"binary":               true,
		"title":                "Reset Device",
		"timerIntervalMs":      250,
		"timerMode":            int(TimerToggleOnTrigger),
		"autoExecuteOnConnect": true,
	}
	if len(doc) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(doc))
	}
	for k, v := range want {
		if doc[k] != v {
			t.Errorf("key %q = %v, want %v", k, doc[k], v)
		}
	}
	if _, ok := doc["actionId"]; ok {
		t.Error("action id must not be serialized")
	}
}

func TestRoundTrip(t *testing.T) {
	orig := sampleAction()

	fresh := New(orig.ID())
	if !fresh.Read(orig.Serialize()) {
		t.Fatal("read failed on serialized document")
	}

	if *fresh != *orig {
		t.Errorf("round trip mismatch: got %+v, want %+v", *fresh, *orig)
	}
}

func TestRoundTrip_ThroughJSON(t *testing.T) {
	// The document survives an encode/decode cycle where numbers come back
	// as float64.
	orig := sampleAction()

	raw, err := json.Marshal(orig.Serialize())
	if err != nil {
		t.Fatal(err)
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatal(err)
	}

	fresh := New(orig.ID())
	if !fresh.Read(doc) {
		t.Fatal("read failed")
	}
	if *fresh != *orig {
		t.Errorf("JSON round trip mismatch: got %+v, want %+v", *fresh, *orig)
	}
}

func TestRead_EmptyDocumentFails(t *testing.T) {
	a := New(1)
	if a.Read(Document{}) {
		t.Error("expected read to fail on a document with zero keys")
	}
	if a.Read(nil) {
		t.Error("expected read to fail on a nil document")
	}
}

func TestRead_DefaultFill(t *testing.T) {
	a := sampleAction()

	// Non-empty document with none of the action keys: read succeeds and
	// every field falls back to its default.
	if !a.Read(Document{"unused": float64(1)}) {
		t.Fatal("expected read to succeed on a non-empty document")
	}

	if a.ID() != 3 {
		t.Errorf("read must not touch the id, got %d", a.ID())
	}
	if a.Icon() != "" || a.Title() != "" || a.TxData() != "" || a.EOLSequence() != "" {
		t.Errorf("expected empty string fields, got %+v", *a)
	}
	if a.BinaryData() || a.AutoExecuteOnConnect() {
		t.Error("expected boolean fields false")
	}
	if a.TimerIntervalMs() != DefaultTimerIntervalMs {
		t.Errorf("expected default interval, got %d", a.TimerIntervalMs())
	}
	if a.Mode() != TimerOff {
		t.Errorf("expected timer off, got %v", a.Mode())
	}
}

func TestRead_TrimsIconAndTitle(t *testing.T) {
	a := New(1)
	ok := a.Read(Document{
		"icon":  "  Play   Property ",
		"title": "  Hello   World  ",
	})
	if !ok {
		t.Fatal("read failed")
	}
	if a.Icon() != "Play Property" {
		t.Errorf("expected simplified icon, got %q", a.Icon())
	}
	if a.Title() != "Hello World" {
		t.Errorf("expected simplified title, got %q", a.Title())
	}
}

func TestRead_PreservesUnknownTimerMode(t *testing.T) {
	a := New(1)
	if !a.Read(Document{"timerMode": float64(42)}) {
		t.Fatal("read failed")
	}
	if int(a.Mode()) != 42 {
		t.Errorf("expected raw mode 42 preserved, got %d", int(a.Mode()))
	}
	if a.Mode().Valid() {
		t.Error("mode 42 must not report valid")
	}

	// And it round-trips.
	fresh := New(1)
	if !fresh.Read(a.Serialize()) {
		t.Fatal("read failed")
	}
	if int(fresh.Mode()) != 42 {
		t.Errorf("raw mode lost in round trip, got %d", int(fresh.Mode()))
	}
}

func TestDocument_PresenceBeatsDefault(t *testing.T) {
	// A key that is present with an explicit null (or a mistyped value)
	// yields the zero value of the requested type, not the default.
	doc := Document{
		"eol":             nil,
		"binary":          nil,
		"timerIntervalMs": nil,
		"txData":          float64(5),
	}

	if got := doc.String("eol", "fallback"); got != "" {
		t.Errorf("null string: expected empty, got %q", got)
	}
	if got := doc.Bool("binary", true); got {
		t.Error("null bool: expected false")
	}
	if got := doc.Int("timerIntervalMs", 100); got != 0 {
		t.Errorf("null int: expected 0, got %d", got)
	}
	if got := doc.String("txData", "fallback"); got != "" {
		t.Errorf("mistyped string: expected empty, got %q", got)
	}

	// Absent keys do use the default.
	if got := doc.String("missing", "fallback"); got != "fallback" {
		t.Errorf("absent key: expected fallback, got %q", got)
	}
	if got := doc.Int("missingInt", 100); got != 100 {
		t.Errorf("absent key: expected 100, got %d", got)
	}
}
