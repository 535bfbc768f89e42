// Package boards defines the hardware mapping contract between a concrete
// board's GPIO layer and the generic LED driver above it: the line
// descriptor, logical LED identifiers, the digital-output provider
// interface, and the per-board wiring table.
package boards

import (
	"strconv"

	"blinky-go/errcode"
)

// LEDID names one logical LED. A board's table decides which ids are wired.
type LEDID int8

const (
	LEDNone LEDID = iota - 1
	LED1
	LED2
	LED3

	NumLEDs = 3
)

// GPIO port indices as used in LEDConfig.Port.
const (
	PortA uint8 = iota
	PortB
	PortC
	PortD

	maxPin = 15
)

// LEDConfig describes one digital output line. It is owned by the board
// layer; consumers hold a borrowed pointer and must not mutate it.
type LEDConfig struct {
	Port uint8
	Pin  uint8
}

// Resolvable reports whether the descriptor names a line a provider could
// drive. Providers use it before touching hardware; unresolvable descriptors
// are silently ignored per the board-layer contract.
func (c *LEDConfig) Resolvable() bool {
	return c != nil && c.Port <= PortD && c.Pin <= maxPin
}

// Provider performs digital output operations against a described line.
// SetOutput and ToggleOutput have no failure channel: an unresolvable
// descriptor is a no-op. ReadOutput reports false when the descriptor
// cannot be resolved.
type Provider interface {
	SetOutput(cfg *LEDConfig, level bool)
	ToggleOutput(cfg *LEDConfig)
	ReadOutput(cfg *LEDConfig) bool
}

// Table is the per-board wiring: one descriptor-or-absent entry per logical
// LED, in LEDID order. A nil entry means the board does not wire that LED.
type Table [NumLEDs]*LEDConfig

// Lookup returns the descriptor for id, or false when id is out of range or
// not wired on this board.
func (t *Table) Lookup(id LEDID) (*LEDConfig, bool) {
	if t == nil || id < 0 || id >= NumLEDs {
		return nil, false
	}
	cfg := t[id]
	return cfg, cfg != nil
}

// IsSupported reports whether this board wires the given logical LED.
func (t *Table) IsSupported(id LEDID) bool {
	_, ok := t.Lookup(id)
	return ok
}

// Validate checks every wired entry at startup so that a bad table fails
// loudly instead of degrading into silent no-ops at the provider boundary.
func (t *Table) Validate() error {
	if t == nil {
		return &errcode.E{C: errcode.InvalidConfig, Op: "validate", Msg: "nil table"}
	}
	for id, cfg := range t {
		if cfg == nil {
			continue
		}
		if !cfg.Resolvable() {
			return &errcode.E{
				C:   errcode.InvalidConfig,
				Op:  "validate",
				Msg: "led " + strconv.Itoa(id) + ": port/pin out of range",
			}
		}
	}
	return nil
}
