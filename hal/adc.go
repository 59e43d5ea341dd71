package hal

import "errors"

// ErrWouldBlock reports that a non-blocking operation has been started but
// has not completed yet. Callers either retry later or spin until the
// operation returns something else.
var ErrWouldBlock = errors.New("hal: would block")

// OneShot is a single-sample analog-to-digital converter. C selects the
// channel (a pin, a mux index — whatever the converter uses) and W is the
// sample word type.
//
// ReadChannel is a non-blocking contract: a converter that needs time to
// acquire the sample returns ErrWouldBlock until it is ready. Implementations
// that complete synchronously simply never return it.
type OneShot[C, W any] interface {
	// ReadChannel requests a one-shot sample from ch. It returns
	// ErrWouldBlock while the conversion is still in progress.
	ReadChannel(ch C) (W, error)
}
