package schema

import "testing"

func TestValidate_FullDocument(t *testing.T) {
	v := NewValidator()

	err := v.Validate(map[string]any{
		"icon":                 "Play Property",
		"title":                "Reset",
		"txData":               "RST",
		"eol":                  "\\n",
		"binary":               false,
		"timerIntervalMs":      float64(100),
		"timerMode":            float64(2),
		"autoExecuteOnConnect": true,
	})
	if err != nil {
		t.Errorf("expected valid document, got: %v", err)
	}
}

func TestValidate_PartialDocument(t *testing.T) {
	// No key is required; a partial document hydrates with defaults.
	v := NewValidator()

	err := v.Validate(map[string]any{"title": "Ping"})
	if err != nil {
		t.Errorf("expected partial document to validate, got: %v", err)
	}
}

func TestValidate_EmptyDocument(t *testing.T) {
	v := NewValidator()

	if err := v.Validate(map[string]any{}); err != nil {
		t.Errorf("expected empty document to validate, got: %v", err)
	}
}

func TestValidate_UnknownKeyAllowed(t *testing.T) {
	v := NewValidator()

	err := v.Validate(map[string]any{"unused": float64(1)})
	if err != nil {
		t.Errorf("expected unknown keys to be allowed, got: %v", err)
	}
}

func TestValidate_MistypedString(t *testing.T) {
	v := NewValidator()

	if err := v.Validate(map[string]any{"txData": float64(5)}); err == nil {
		t.Error("expected validation error for numeric txData")
	}
}

func TestValidate_MistypedBool(t *testing.T) {
	v := NewValidator()

	if err := v.Validate(map[string]any{"binary": "yes"}); err == nil {
		t.Error("expected validation error for string binary flag")
	}
}

func TestValidate_NonIntegerInterval(t *testing.T) {
	v := NewValidator()

	if err := v.Validate(map[string]any{"timerIntervalMs": float64(0)}); err == nil {
		t.Error("expected validation error for zero interval")
	}
}

func TestValidate_CompilesOnce(t *testing.T) {
	v := NewValidator()

	if err := v.Validate(map[string]any{"title": "a"}); err != nil {
		t.Fatal(err)
	}
	first := v.compiled

	if err := v.Validate(map[string]any{"title": "b"}); err != nil {
		t.Fatal(err)
	}
	if v.compiled != first {
		t.Error("expected schema to compile once")
	}
}
