// ledsim blinks a logical LED through the in-memory board provider. It is
// the host-side stand-in for the firmware loop: same driver stack, wiring
// table loaded from TOML instead of compiled in.
package main

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"blinky-go/boards"
	"blinky-go/boards/setups"
	"blinky-go/boards/sim"
	"blinky-go/drivers/led"
	"blinky-go/errcode"
	"blinky-go/internal/simcfg"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configFile string
		ledNum     int
		interval   time.Duration
		count      int
		logJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "ledsim",
		Short: "Blink a simulated board LED",
		Long: `Runs the LED driver stack against an in-memory board. ` +
			`Without --config the compiled-in Nucleo-G431RB wiring is used.`,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			var handler slog.Handler = slog.NewTextHandler(os.Stderr, nil)
			if logJSON {
				handler = slog.NewJSONHandler(os.Stderr, nil)
			}
			logger := slog.New(handler)

			table := &setups.NucleoG431RB
			if configFile != "" {
				t, err := simcfg.Load(configFile)
				if err != nil {
					logger.Error("Failed to load board table", "error", err, "config", configFile)
					return err
				}
				table = t
			}

			// Range-check before converting to the narrower LEDID so an
			// oversized --led value cannot wrap onto a wired one.
			if ledNum < 1 || ledNum > boards.NumLEDs {
				err := &errcode.E{C: errcode.UnknownLED, Op: "lookup", Msg: "led " + strconv.Itoa(ledNum) + " is out of range"}
				logger.Error("Unknown LED", "error", err, "led", ledNum)
				return err
			}
			cfg, ok := table.Lookup(boards.LEDID(ledNum - 1))
			if !ok {
				err := &errcode.E{C: errcode.UnknownLED, Op: "lookup", Msg: "led " + strconv.Itoa(ledNum) + " is not wired"}
				logger.Error("Unknown LED", "error", err, "led", ledNum)
				return err
			}

			provider := sim.New(logger)
			var d led.Device
			if err := d.Init(provider, cfg); err != nil {
				return err
			}

			logger.Info("Blinking", "led", ledNum, "port", cfg.Port, "pin", cfg.Pin,
				"interval", interval, "count", count)
			for i := 0; count == 0 || i < count; i++ {
				if err := d.Toggle(); err != nil {
					return err
				}
				time.Sleep(interval)
			}

			var s led.State
			if err := d.GetState(&s); err != nil {
				return err
			}
			logger.Info("Done", "led", ledNum, "state", s.String())
			return nil
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "board wiring table (TOML)")
	cmd.Flags().IntVar(&ledNum, "led", 1, "logical LED to blink (1-based)")
	cmd.Flags().DurationVar(&interval, "interval", 500*time.Millisecond, "time between toggles")
	cmd.Flags().IntVar(&count, "count", 0, "number of toggles, 0 to run forever")
	cmd.Flags().BoolVar(&logJSON, "json", false, "emit JSON logs")

	return cmd
}
