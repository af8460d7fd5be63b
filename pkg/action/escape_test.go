package action

import (
	"bytes"
	"testing"
)

func TestResolveEscapeSequences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no escapes", "hello", "hello"},
		{"newline", `a\nb`, "a\nb"},
		{"carriage return", `\r`, "\r"},
		{"tab", `col1\tcol2`, "col1\tcol2"},
		{"form feed", `\f`, "\f"},
		{"vertical tab", `\v`, "\v"},
		{"nul", `\0`, "\x00"},
		{"backslash", `a\\n`, `a\n`},
		{"unknown escape kept", `\q`, `\q`},
		{"trailing backslash kept", `abc\`, `abc\`},
		{"mixed", `AT\r\n`, "AT\r\n"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveEscapeSequences(tt.in); got != tt.want {
				t.Errorf("ResolveEscapeSequences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestHexToBytes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []byte
	}{
		{"plain", "4142", []byte{0x41, 0x42}},
		{"spaced", "41 42", []byte{0x41, 0x42}},
		{"separators", "de:ad-be,ef", []byte{0xDE, 0xAD, 0xBE, 0xEF}},
		{"mixed case", "Ff0a", []byte{0xFF, 0x0A}},
		{"invalid pair dropped", "4G", nil},
		{"invalid pair amid valid", "414G42", []byte{0x41, 0x42}},
		{"odd trailing nibble", "41 4", []byte{0x41, 0x04}},
		{"empty", "", nil},
		{"whitespace only", " \t\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HexToBytes(tt.in)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("HexToBytes(%q) = % X, want % X", tt.in, got, tt.want)
			}
		})
	}
}

func TestSimplify(t *testing.T) {
	if got := simplify("  Hello   World  "); got != "Hello World" {
		t.Errorf("expected %q, got %q", "Hello World", got)
	}
	if got := simplify(simplify(" a \t b ")); got != "a b" {
		t.Errorf("expected stable result, got %q", got)
	}
	if got := simplify(""); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}
