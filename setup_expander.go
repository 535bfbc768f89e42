//go:build stm32 && ledexp

package main

import (
	"machine"

	"blinky-go/boards"
	"blinky-go/boards/pcf8574"
	"blinky-go/boards/setups"
)

func setup() (boards.Provider, *boards.Table) {
	machine.I2C0.Configure(machine.I2CConfig{Frequency: 100_000})
	return pcf8574.New(machine.I2C0, pcf8574.DefaultAddress), &setups.ExpanderDemo
}
