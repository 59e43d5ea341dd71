package sharedbus

import "github.com/codytrey/shared-bus/hal"

// CANProxy forwards CAN operations through the shared mutex. It implements
// [hal.CAN] with the underlying bus's own frame type F, unchanged.
//
// Transmit and Receive each take their own independent mutex acquisition;
// they are serialized against every other sharer but are not atomic with each
// other. Errors — including arbitration and buffer-full conditions — are the
// underlying bus's own, returned unmodified.
type CANProxy[F any, B hal.CAN[F], M BusMutex[B]] struct {
	mutex M
}

// Transmit queues frame for transmission on the bus.
func (p *CANProxy[F, B, M]) Transmit(frame F) error {
	var err error
	p.mutex.Lock(func(bus B) {
		err = bus.Transmit(frame)
	})
	return err
}

// Receive returns the next frame from the bus.
func (p *CANProxy[F, B, M]) Receive() (F, error) {
	var (
		frame F
		err   error
	)
	p.mutex.Lock(func(bus B) {
		frame, err = bus.Receive()
	})
	return frame, err
}

// Clone returns another proxy sharing the same mutex.
func (p *CANProxy[F, B, M]) Clone() *CANProxy[F, B, M] {
	return &CANProxy[F, B, M]{mutex: p.mutex}
}
