package action

import (
	"bytes"
	"testing"
)

func TestNew_Defaults(t *testing.T) {
	a := New(7)

	if a.ID() != 7 {
		t.Errorf("expected id 7, got %d", a.ID())
	}
	if a.BinaryData() {
		t.Error("expected binary mode off by default")
	}
	if a.Icon() != DefaultIcon {
		t.Errorf("expected default icon %q, got %q", DefaultIcon, a.Icon())
	}
	if a.Title() != "" || a.TxData() != "" || a.EOLSequence() != "" {
		t.Error("expected empty string fields")
	}
	if a.TimerIntervalMs() != DefaultTimerIntervalMs {
		t.Errorf("expected interval %d, got %d", DefaultTimerIntervalMs, a.TimerIntervalMs())
	}
	if a.Mode() != TimerOff {
		t.Errorf("expected timer off, got %v", a.Mode())
	}
	if a.AutoExecuteOnConnect() {
		t.Error("expected autoExecuteOnConnect false by default")
	}
}

func TestSetters_SimplifyWhitespace(t *testing.T) {
	a := New(1)
	a.SetTitle("  Hello   World  ")
	if a.Title() != "Hello World" {
		t.Errorf("expected simplified title, got %q", a.Title())
	}
	// Simplifying twice must be stable.
	a.SetTitle(a.Title())
	if a.Title() != "Hello World" {
		t.Errorf("simplify not idempotent: %q", a.Title())
	}

	a.SetIcon("\tPlay \n Property ")
	if a.Icon() != "Play Property" {
		t.Errorf("expected simplified icon, got %q", a.Icon())
	}
}

func TestTxByteArray_Text(t *testing.T) {
	a := New(1)
	a.SetTxData(`A\nB`)

	got := a.TxByteArray()
	want := []byte{0x41, 0x0A, 0x42}
	if !bytes.Equal(got, want) {
		t.Errorf("expected % X, got % X", want, got)
	}
}

func TestTxByteArray_AppendsEOL(t *testing.T) {
	a := New(1)
	a.SetTxData(`A\nB`)
	a.SetEOLSequence(`\r\n`)

	got := a.TxByteArray()
	want := []byte{0x41, 0x0A, 0x42, 0x0D, 0x0A}
	if !bytes.Equal(got, want) {
		t.Errorf("expected % X, got % X", want, got)
	}
}

func TestTxByteArray_Hex(t *testing.T) {
	a := New(1)
	a.SetBinaryData(true)
	a.SetTxData("41 42")

	got := a.TxByteArray()
	want := []byte{0x41, 0x42}
	if !bytes.Equal(got, want) {
		t.Errorf("expected % X, got % X", want, got)
	}
}

func TestTxByteArray_LossyHex(t *testing.T) {
	a := New(1)
	a.SetBinaryData(true)
	a.SetTxData("4G")

	if got := a.TxByteArray(); len(got) != 0 {
		t.Errorf("malformed pair should contribute no bytes, got % X", got)
	}
}

func TestTxByteArray_HexEOLStillEscaped(t *testing.T) {
	// EOL resolution is textual even when the payload is binary.
	a := New(1)
	a.SetBinaryData(true)
	a.SetTxData("FF")
	a.SetEOLSequence(`\n`)

	got := a.TxByteArray()
	want := []byte{0xFF, 0x0A}
	if !bytes.Equal(got, want) {
		t.Errorf("expected % X, got % X", want, got)
	}
}

func TestTxByteArray_Pure(t *testing.T) {
	a := New(1)
	a.SetTxData(`X\tY`)
	a.SetEOLSequence(`\n`)

	first := a.TxByteArray()
	second := a.TxByteArray()
	if !bytes.Equal(first, second) {
		t.Errorf("repeated builds differ: % X vs % X", first, second)
	}
	if a.TxData() != `X\tY` || a.EOLSequence() != `\n` {
		t.Error("payload build must not mutate fields")
	}
}

func TestTimerMode_Valid(t *testing.T) {
	for _, m := range []TimerMode{TimerOff, TimerAutoStart, TimerStartOnTrigger, TimerToggleOnTrigger} {
		if !m.Valid() {
			t.Errorf("expected %v valid", m)
		}
	}
	if TimerMode(99).Valid() {
		t.Error("expected 99 invalid")
	}
	if TimerMode(-1).Valid() {
		t.Error("expected -1 invalid")
	}
}
