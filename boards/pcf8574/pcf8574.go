// Package pcf8574 implements the board provider contract over a PCF8574
// 8-bit I²C port expander. The part has a single quasi-bidirectional port,
// exposed here as port A, pins 0-7; any other descriptor is unresolvable
// and silently ignored, matching the board-layer contract.
//
// The expander has no toggle register, so set and toggle go through a
// shadow copy of the output latch. Bus errors are absorbed: the shadow is
// only committed once the write succeeds, so a failed transfer leaves the
// next operation consistent with the hardware.
package pcf8574

import (
	"tinygo.org/x/drivers"

	"blinky-go/boards"
)

// DefaultAddress is the PCF8574 base address with A2..A0 strapped low.
const DefaultAddress = 0x20

type Provider struct {
	bus  drivers.I2C
	addr uint16

	// shadow mirrors the output latch; the part powers up with all lines
	// high (weak pull-ups).
	shadow uint8
}

func New(bus drivers.I2C, addr uint16) *Provider {
	return &Provider{bus: bus, addr: addr, shadow: 0xFF}
}

func mask(cfg *boards.LEDConfig) (uint8, bool) {
	if cfg == nil || cfg.Port != boards.PortA || cfg.Pin > 7 {
		return 0, false
	}
	return 1 << cfg.Pin, true
}

func (p *Provider) write(next uint8) {
	buf := [1]byte{next}
	if err := p.bus.Tx(p.addr, buf[:], nil); err != nil {
		return
	}
	p.shadow = next
}

func (p *Provider) SetOutput(cfg *boards.LEDConfig, level bool) {
	m, ok := mask(cfg)
	if !ok {
		return
	}
	next := p.shadow
	if level {
		next |= m
	} else {
		next &^= m
	}
	p.write(next)
}

func (p *Provider) ToggleOutput(cfg *boards.LEDConfig) {
	m, ok := mask(cfg)
	if !ok {
		return
	}
	p.write(p.shadow ^ m)
}

func (p *Provider) ReadOutput(cfg *boards.LEDConfig) bool {
	m, ok := mask(cfg)
	if !ok {
		return false
	}
	var buf [1]byte
	if err := p.bus.Tx(p.addr, nil, buf[:]); err != nil {
		return false
	}
	return buf[0]&m != 0
}
