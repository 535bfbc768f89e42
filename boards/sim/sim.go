// Package sim is an in-memory board provider for host builds. It keeps one
// level per (port, pin) line and logs transitions, which is enough to run
// the firmware loop and the ledsim tool without hardware attached.
package sim

import (
	"io"
	"log/slog"

	"blinky-go/boards"
)

type line struct {
	port, pin uint8
}

type Provider struct {
	logger *slog.Logger
	levels map[line]bool
}

func New(logger *slog.Logger) *Provider {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Provider{
		logger: logger,
		levels: make(map[line]bool),
	}
}

func key(cfg *boards.LEDConfig) (line, bool) {
	if !cfg.Resolvable() {
		return line{}, false
	}
	return line{port: cfg.Port, pin: cfg.Pin}, true
}

func (p *Provider) SetOutput(cfg *boards.LEDConfig, level bool) {
	k, ok := key(cfg)
	if !ok {
		return
	}
	p.levels[k] = level
	p.logger.Info("line set", "port", k.port, "pin", k.pin, "level", level)
}

func (p *Provider) ToggleOutput(cfg *boards.LEDConfig) {
	k, ok := key(cfg)
	if !ok {
		return
	}
	p.levels[k] = !p.levels[k]
	p.logger.Info("line toggled", "port", k.port, "pin", k.pin, "level", p.levels[k])
}

func (p *Provider) ReadOutput(cfg *boards.LEDConfig) bool {
	k, ok := key(cfg)
	if !ok {
		return false
	}
	return p.levels[k]
}
