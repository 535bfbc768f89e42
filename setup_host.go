//go:build !stm32

package main

import (
	"log/slog"
	"os"

	"blinky-go/boards"
	"blinky-go/boards/setups"
	"blinky-go/boards/sim"
)

// Host fallback so `go build ./...` and host debugging work without a
// cross-toolchain: same table as the nucleo, lines held in memory.
func setup() (boards.Provider, *boards.Table) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return sim.New(logger), &setups.NucleoG431RB
}
