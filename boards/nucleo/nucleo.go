//go:build stm32

// Package nucleo drives LED lines on the Nucleo-G431RB through the machine
// package. Port indices map onto the STM32 pin numbering (16 pins per port).
package nucleo

import (
	"machine"

	"blinky-go/boards"
)

type Provider struct{}

func New() Provider { return Provider{} }

func pinFor(cfg *boards.LEDConfig) (machine.Pin, bool) {
	if !cfg.Resolvable() {
		return 0, false
	}
	return machine.Pin(int(cfg.Port)*16 + int(cfg.Pin)), true
}

// Configure puts the line into push-pull output mode. Called once per wired
// LED from the boot glue, before any driver handle is bound over it.
func (Provider) Configure(cfg *boards.LEDConfig, initial bool) {
	pin, ok := pinFor(cfg)
	if !ok {
		return
	}
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pin.Set(initial)
}

func (Provider) SetOutput(cfg *boards.LEDConfig, level bool) {
	if pin, ok := pinFor(cfg); ok {
		pin.Set(level)
	}
}

func (Provider) ToggleOutput(cfg *boards.LEDConfig) {
	pin, ok := pinFor(cfg)
	if !ok {
		return
	}
	if pin.Get() {
		pin.Low()
	} else {
		pin.High()
	}
}

func (Provider) ReadOutput(cfg *boards.LEDConfig) bool {
	pin, ok := pinFor(cfg)
	if !ok {
		return false
	}
	return pin.Get()
}
