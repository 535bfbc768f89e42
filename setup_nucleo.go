//go:build stm32 && !ledexp

package main

import (
	"blinky-go/boards"
	"blinky-go/boards/nucleo"
	"blinky-go/boards/setups"
)

func setup() (boards.Provider, *boards.Table) {
	p := nucleo.New()
	tbl := &setups.NucleoG431RB
	for _, cfg := range tbl {
		if cfg != nil {
			p.Configure(cfg, false)
		}
	}
	return p, tbl
}
