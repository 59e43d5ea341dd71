package bustest

import (
	"errors"

	"github.com/codytrey/shared-bus/hal"
)

// ErrNoFrames is returned by CAN.Receive when the scripted queue is empty
// and no ReceiveErr is armed.
var ErrNoFrames = errors.New("bustest: no frames queued")

// CAN is a recording fake CAN bus handle using the hal.Frame representation.
// Receive drains the Recv queue in order.
type CAN struct {
	Sent []hal.Frame
	Recv []hal.Frame

	TransmitErr error
	ReceiveErr  error
}

func (b *CAN) Transmit(frame hal.Frame) error {
	b.Sent = append(b.Sent, frame)
	return b.TransmitErr
}

func (b *CAN) Receive() (hal.Frame, error) {
	if b.ReceiveErr != nil {
		return hal.Frame{}, b.ReceiveErr
	}
	if len(b.Recv) == 0 {
		return hal.Frame{}, ErrNoFrames
	}
	frame := b.Recv[0]
	b.Recv = b.Recv[1:]
	return frame, nil
}
