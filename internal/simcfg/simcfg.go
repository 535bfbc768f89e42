// Package simcfg loads a board wiring table from TOML for host-side runs.
// The firmware itself uses the compiled-in tables under boards/setups; this
// loader exists so that ledsim can model arbitrary wirings without a
// rebuild.
package simcfg

import (
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"blinky-go/boards"
	"blinky-go/errcode"
)

// ledEntry is one [[led]] block. IDs are 1-based in the file (led 1 is the
// first logical LED).
type ledEntry struct {
	ID   int   `toml:"id"`
	Port uint8 `toml:"port"`
	Pin  uint8 `toml:"pin"`
}

type file struct {
	LED []ledEntry `toml:"led"`
}

// Load reads and validates a wiring table from path.
func Load(path string) (*boards.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errcode.E{C: errcode.InvalidConfig, Op: "load", Msg: path, Err: err}
	}
	return Parse(data)
}

// Parse decodes a wiring table and validates it the same way the firmware
// validates its compiled-in tables at boot.
func Parse(data []byte) (*boards.Table, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, &errcode.E{C: errcode.InvalidConfig, Op: "parse", Msg: "bad toml", Err: err}
	}

	var tbl boards.Table
	for _, e := range f.LED {
		// Range-check before converting to the narrower LEDID so oversized
		// ids fail instead of wrapping onto a valid one.
		if e.ID < 1 || e.ID > boards.NumLEDs {
			return nil, &errcode.E{
				C:   errcode.UnknownLED,
				Op:  "parse",
				Msg: "led id " + strconv.Itoa(e.ID),
			}
		}
		id := boards.LEDID(e.ID - 1)
		if tbl[id] != nil {
			return nil, &errcode.E{
				C:   errcode.InvalidConfig,
				Op:  "parse",
				Msg: "duplicate led id " + strconv.Itoa(e.ID),
			}
		}
		tbl[id] = &boards.LEDConfig{Port: e.Port, Pin: e.Pin}
	}
	if err := tbl.Validate(); err != nil {
		return nil, err
	}
	return &tbl, nil
}
