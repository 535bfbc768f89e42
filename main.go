package main

import (
	"time"

	"blinky-go/boards"
	"blinky-go/drivers/led"
)

const blinkInterval = 500 * time.Millisecond

// idle parks the firmware when there is nothing to drive. The loop never
// returns; on an MCU there is nowhere to return to.
func idle() {
	for {
		time.Sleep(time.Hour)
	}
}

func main() {
	provider, table := setup()

	if err := table.Validate(); err != nil {
		println("bad board table:", err.Error())
		idle()
	}

	cfg, ok := table.Lookup(boards.LED1)
	if !ok {
		// Board without a user LED.
		idle()
	}

	var d led.Device
	if err := d.Init(provider, cfg); err != nil {
		println("led init:", err.Error())
		idle()
	}

	_ = d.SetState(led.Off)
	for {
		_ = d.Toggle()
		time.Sleep(blinkInterval)
	}
}
