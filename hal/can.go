package hal

// CAN is the operation set of a CAN bus handle. F is the bus's own frame
// representation; many controllers have one ([Frame] serves the common
// classical-CAN case) and it is passed through untranslated.
type CAN[F any] interface {
	// Transmit queues frame for transmission. It may block until the
	// controller accepts the frame.
	Transmit(frame F) error

	// Receive returns the next received frame, blocking until one is
	// available or the controller reports an error.
	Receive() (F, error)
}
