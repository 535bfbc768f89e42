package boards

import (
	"testing"

	"blinky-go/errcode"
)

func TestTableLookup(t *testing.T) {
	tbl := Table{
		LED1: {Port: PortA, Pin: 5},
		LED3: {Port: PortB, Pin: 2},
	}

	cfg, ok := tbl.Lookup(LED1)
	if !ok || cfg != tbl[LED1] {
		t.Fatalf("Lookup(LED1) = %v, %v; want the table's own descriptor", cfg, ok)
	}
	if _, ok := tbl.Lookup(LED2); ok {
		t.Fatalf("Lookup(LED2) should report absent for an unwired LED")
	}
	if _, ok := tbl.Lookup(LEDNone); ok {
		t.Fatalf("Lookup(LEDNone) should report absent")
	}
	if _, ok := tbl.Lookup(LEDID(NumLEDs)); ok {
		t.Fatalf("Lookup past the table end should report absent")
	}
}

func TestTableIsSupported(t *testing.T) {
	tbl := Table{LED1: {Port: PortA, Pin: 5}}
	if !tbl.IsSupported(LED1) {
		t.Fatalf("LED1 should be supported")
	}
	for _, id := range []LEDID{LEDNone, LED2, LED3, LEDID(99)} {
		if tbl.IsSupported(id) {
			t.Fatalf("id %d should not be supported", id)
		}
	}
}

func TestTableValidate(t *testing.T) {
	good := Table{
		LED1: {Port: PortA, Pin: 5},
		LED2: {Port: PortD, Pin: 15},
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("valid table rejected: %v", err)
	}

	badPort := Table{LED1: {Port: PortD + 1, Pin: 0}}
	if err := badPort.Validate(); errcode.Of(err) != errcode.InvalidConfig {
		t.Fatalf("out-of-range port should fail validation, got %v", err)
	}

	badPin := Table{LED2: {Port: PortA, Pin: 16}}
	if err := badPin.Validate(); errcode.Of(err) != errcode.InvalidConfig {
		t.Fatalf("out-of-range pin should fail validation, got %v", err)
	}

	var empty Table
	if err := empty.Validate(); err != nil {
		t.Fatalf("all-absent table should validate: %v", err)
	}
}

func TestResolvable(t *testing.T) {
	var nilCfg *LEDConfig
	if nilCfg.Resolvable() {
		t.Fatalf("nil descriptor must not resolve")
	}
	if !(&LEDConfig{Port: PortA, Pin: 0}).Resolvable() {
		t.Fatalf("PA0 should resolve")
	}
	if (&LEDConfig{Port: 4, Pin: 0}).Resolvable() {
		t.Fatalf("port 4 is out of range")
	}
	if (&LEDConfig{Port: PortC, Pin: 16}).Resolvable() {
		t.Fatalf("pin 16 is out of range")
	}
}
