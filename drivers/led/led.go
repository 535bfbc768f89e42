// Package led implements a validated, typed interface over a single digital
// output. It shields callers from raw boolean polarity and from touching
// hardware through an unready handle; the actual pin access is delegated to
// an injected boards.Provider.
package led

import (
	"blinky-go/boards"
	"blinky-go/errcode"
)

// State is the logical LED state.
type State uint8

const (
	Off State = iota
	On
)

func (s State) String() string {
	if s == On {
		return "on"
	}
	return "off"
}

// Device is a handle to one LED. The zero value is uninitialized; Init binds
// it to a provider and a line descriptor, after which it stays bound for the
// handle's lifetime. The descriptor is borrowed from the board layer, never
// copied.
type Device struct {
	out boards.Provider
	hw  *boards.LEDConfig
}

// Init binds the provider and descriptor into d. It touches no hardware.
func (d *Device) Init(out boards.Provider, hw *boards.LEDConfig) error {
	if d == nil || out == nil || hw == nil {
		return errcode.InvalidParam
	}
	d.out = out
	d.hw = hw
	return nil
}

// SetState drives the output to the given logical state. The provider has
// no failure channel, so a bound handle always reports success.
func (d *Device) SetState(s State) error {
	if d == nil {
		return errcode.InvalidParam
	}
	if d.hw == nil {
		return errcode.NotInitialized
	}
	d.out.SetOutput(d.hw, s == On)
	return nil
}

// Toggle inverts the current output state using the provider's toggle
// primitive directly, never a read-modify-write pair.
func (d *Device) Toggle() error {
	if d == nil {
		return errcode.InvalidParam
	}
	if d.hw == nil {
		return errcode.NotInitialized
	}
	d.out.ToggleOutput(d.hw)
	return nil
}

// GetState reads the current output level into *state.
func (d *Device) GetState(state *State) error {
	if d == nil || state == nil {
		return errcode.InvalidParam
	}
	if d.hw == nil {
		return errcode.NotInitialized
	}
	if d.out.ReadOutput(d.hw) {
		*state = On
	} else {
		*state = Off
	}
	return nil
}
