package periphbus

import (
	"fmt"
	"io"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/codytrey/shared-bus/hal"
)

// I2C adapts a periph.io I2C bus to hal.I2C.
type I2C struct {
	bus    i2c.Bus
	closer io.Closer // set when the bus was opened by OpenI2C
}

var _ hal.I2C = (*I2C)(nil)

// NewI2C wraps an already-open periph.io bus.
func NewI2C(bus i2c.Bus) *I2C {
	return &I2C{bus: bus}
}

// OpenI2C initializes the periph.io host drivers and opens the registered bus
// named name. An empty name selects the first available bus.
func OpenI2C(name string) (*I2C, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periphbus: host init: %w", err)
	}
	bus, err := i2creg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("periphbus: open i2c bus %q: %w", name, err)
	}
	return &I2C{bus: bus, closer: bus}, nil
}

func (b *I2C) Write(addr byte, w []byte) error {
	return b.bus.Tx(uint16(addr), w, nil)
}

func (b *I2C) Read(addr byte, r []byte) error {
	return b.bus.Tx(uint16(addr), nil, r)
}

func (b *I2C) WriteRead(addr byte, w, r []byte) error {
	return b.bus.Tx(uint16(addr), w, r)
}

// Close releases the bus if OpenI2C opened it.
func (b *I2C) Close() error {
	if b.closer == nil {
		return nil
	}
	return b.closer.Close()
}
