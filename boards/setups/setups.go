// Package setups holds the wiring tables for the boards this firmware is
// built for. Tables are plain data; provider selection happens in the
// build-tagged setup files at the module root.
package setups

import "blinky-go/boards"

// NucleoG431RB wires the LD2 user LED on PA5. LED2 and LED3 have no
// footprint on this board and stay absent.
var NucleoG431RB = boards.Table{
	boards.LED1: {Port: boards.PortA, Pin: 5},
}

// ExpanderDemo drives three LEDs off a PCF8574 at the default address.
// The expander has a single 8-bit port, addressed here as port A.
var ExpanderDemo = boards.Table{
	boards.LED1: {Port: boards.PortA, Pin: 0},
	boards.LED2: {Port: boards.PortA, Pin: 1},
	boards.LED3: {Port: boards.PortA, Pin: 2},
}
