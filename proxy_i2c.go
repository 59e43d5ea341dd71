package sharedbus

import "github.com/codytrey/shared-bus/hal"

// I2CProxy forwards I2C operations through the shared mutex so the bus can be
// passed to several drivers at once. It implements [hal.I2C], so a driver
// written against a raw handle takes a proxy without changes.
//
// Every operation is one mutex acquisition tightly wrapping exactly one bus
// operation. A WriteRead executes both phases inside a single hold, so no
// other sharer can interleave between the write and the read. Errors are the
// underlying bus's own, returned unmodified.
//
// I2CProxy is safe to use from any execution context the mutex supports:
// unlike SPI there is no out-of-band state (such as an asserted chip-select
// line) that must survive outside the mutex.
type I2CProxy[B hal.I2C, M BusMutex[B]] struct {
	mutex M
}

// Write writes w to the device at addr.
func (p *I2CProxy[B, M]) Write(addr byte, w []byte) error {
	var err error
	p.mutex.Lock(func(bus B) {
		err = bus.Write(addr, w)
	})
	return err
}

// Read fills r from the device at addr.
func (p *I2CProxy[B, M]) Read(addr byte, r []byte) error {
	var err error
	p.mutex.Lock(func(bus B) {
		err = bus.Read(addr, r)
	})
	return err
}

// WriteRead writes w to the device at addr, then fills r from it, as one
// uninterrupted transaction.
func (p *I2CProxy[B, M]) WriteRead(addr byte, w, r []byte) error {
	var err error
	p.mutex.Lock(func(bus B) {
		err = bus.WriteRead(addr, w, r)
	})
	return err
}

// Clone returns another proxy sharing the same mutex. It never copies the
// bus.
func (p *I2CProxy[B, M]) Clone() *I2CProxy[B, M] {
	return &I2CProxy[B, M]{mutex: p.mutex}
}
