package sharedbus

import "github.com/codytrey/shared-bus/hal"

// SPIProxy forwards SPI operations through the shared mutex. It implements
// [hal.SPI].
//
// An SPIProxy may only be shared within a single execution context. SPI
// drivers conventionally assert their chip-select line themselves, before
// invoking the bus — that is, before this proxy takes the mutex. If a second
// context could run at that point, its transfer would start while the first
// driver's chip-select is still asserted and both transactions would be
// corrupted. The proxy therefore can only be acquired from a
// [SingleContextMutex] (see [AcquireSPI]), and the struct carries a vet
// copylocks marker so copies of the value are flagged. The remaining
// obligation is the caller's: assert chip-select, call the proxy immediately
// and do not yield in between.
type SPIProxy[B hal.SPI, M BusMutex[B]] struct {
	mutex  M
	noCopy noCopy
}

// Transfer clocks words out while reading into words in place.
func (p *SPIProxy[B, M]) Transfer(words []byte) error {
	var err error
	p.mutex.Lock(func(bus B) {
		err = bus.Transfer(words)
	})
	return err
}

// Write clocks words out, discarding whatever is read back.
func (p *SPIProxy[B, M]) Write(words []byte) error {
	var err error
	p.mutex.Lock(func(bus B) {
		err = bus.Write(words)
	})
	return err
}

// Clone returns another proxy sharing the same mutex, for handing to a second
// driver in the same execution context.
func (p *SPIProxy[B, M]) Clone() *SPIProxy[B, M] {
	return &SPIProxy[B, M]{mutex: p.mutex}
}

// noCopy triggers the vet copylocks check on types that embed it.
// See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
