package errcode

import (
	"errors"
	"testing"
)

func TestCodesAreStableStrings(t *testing.T) {
	cases := map[string]Code{
		"ok":              OK,
		"invalid_param":   InvalidParam,
		"not_initialized": NotInitialized,
		"unknown_led":     UnknownLED,
		"invalid_config":  InvalidConfig,
		"error":           Error,
	}
	for want, c := range cases {
		if c.Error() != want {
			t.Fatalf("code %q mismatch: got %q", want, c.Error())
		}
	}
}

func TestOf(t *testing.T) {
	if Of(nil) != OK {
		t.Fatalf("Of(nil) = %v, want OK", Of(nil))
	}
	if Of(NotInitialized) != NotInitialized {
		t.Fatalf("Of(Code) should pass the code through")
	}
	e := &E{C: InvalidConfig, Op: "validate", Msg: "pin out of range"}
	if Of(e) != InvalidConfig {
		t.Fatalf("Of(*E) = %v, want InvalidConfig", Of(e))
	}
	if Of(errors.New("boom")) != Error {
		t.Fatalf("unknown errors should map to the generic fallback")
	}
}

func TestEWrapping(t *testing.T) {
	cause := errors.New("i2c timeout")
	e := &E{C: Error, Op: "read", Msg: "bus read failed", Err: cause}
	if e.Error() != "error: bus read failed" {
		t.Fatalf("unexpected message: %q", e.Error())
	}
	if !errors.Is(e, cause) {
		t.Fatalf("E should unwrap to its cause")
	}
}
