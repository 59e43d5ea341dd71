//go:build baremetal

package machinebus

import (
	"machine"

	"github.com/codytrey/shared-bus/hal"
)

// i2cTx is the transaction method shared by every target's machine.I2C.
type i2cTx interface {
	Tx(addr uint16, w, r []byte) error
}

// I2C adapts a machine I2C peripheral (machine.I2C0 and friends) to hal.I2C.
type I2C struct {
	bus i2cTx
}

var _ hal.I2C = (*I2C)(nil)

// NewI2C wraps a configured machine I2C peripheral.
func NewI2C(bus i2cTx) *I2C {
	return &I2C{bus: bus}
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

// spiTx is the transaction method shared by every target's machine.SPI.
type spiTx interface {
	Tx(w, r []byte) error
}

// SPI adapts a machine SPI peripheral (machine.SPI0 and friends) to hal.SPI.
// Chip-select is not handled here; the driver toggles its own pin.
type SPI struct {
	bus spiTx
}

var _ hal.SPI = (*SPI)(nil)

// NewSPI wraps a configured machine SPI peripheral.
func NewSPI(bus spiTx) *SPI {
	return &SPI{bus: bus}
}

func (b *SPI) Transfer(words []byte) error {
	// machine.SPI.Tx wants distinct buffers; the hal contract is in-place.
	w := append([]byte(nil), words...)
	return b.bus.Tx(w, words)
}

func (b *SPI) Write(words []byte) error {
	return b.bus.Tx(words, nil)
}

// ADC adapts the machine ADC unit to hal.OneShot, with machine.ADC pins as
// channel selectors and 16-bit sample words. machine.ADC.Get blocks until the
// sample is ready, so ReadChannel never reports hal.ErrWouldBlock.
type ADC struct{}

var _ hal.OneShot[machine.ADC, uint16] = ADC{}

func (ADC) ReadChannel(ch machine.ADC) (uint16, error) {
	return ch.Get(), nil
}
