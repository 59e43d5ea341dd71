//go:build !baremetal

package slcan

import (
	"errors"
	"fmt"
	"time"

	"go.bug.st/serial"
	"go.uber.org/multierr"
)

// Open opens the serial device named in cfg and attaches a Bus to it.
func Open(cfg Config) (*Bus, error) {
	if cfg.Device == "" {
		return nil, errors.New("slcan: serial device path is required")
	}
	if cfg.SerialBaud == 0 {
		cfg.SerialBaud = 115200
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = time.Second
	}

	mode := &serial.Mode{
		BaudRate: cfg.SerialBaud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(cfg.Device, mode)
	if err != nil {
		return nil, fmt.Errorf("slcan: failed to open %s: %w", cfg.Device, err)
	}

	// Short read timeout so the Bus deadline loop stays responsive; the
	// overall wait is bounded by cfg.ReadTimeout.
	if err := port.SetReadTimeout(10 * time.Millisecond); err != nil {
		return nil, multierr.Append(
			fmt.Errorf("slcan: failed to set read timeout: %w", err),
			port.Close(),
		)
	}

	bus, err := NewBus(port, cfg)
	if err != nil {
		return nil, multierr.Append(err, port.Close())
	}
	return bus, nil
}
