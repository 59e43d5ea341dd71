package sharedbus

import (
	"errors"

	"github.com/codytrey/shared-bus/hal"
)

// ADCProxy forwards one-shot sample reads through the shared mutex. It
// implements [hal.OneShot] so drivers take it in place of the converter
// itself.
//
// Note: [hal.OneShot] describes a non-blocking contract — a read may report
// [hal.ErrWouldBlock] until the sample is ready. Access to a shared converter
// cannot be arbitrated both non-blockingly and safely: a conversion started
// by one driver must finish before another may touch the unit. This proxy
// therefore breaks the non-blocking contract and busy-polls the underlying
// read inside the mutex until a sample is returned. ReadChannel never returns
// ErrWouldBlock; instead the call stalls the calling context for the full
// sample-acquisition time, and every other proxy sharing the mutex stalls
// with it.
type ADCProxy[C, W any, B hal.OneShot[C, W], M BusMutex[B]] struct {
	mutex M
}

// ReadChannel requests a one-shot sample from ch and blocks until the
// converter delivers it.
func (p *ADCProxy[C, W, B, M]) ReadChannel(ch C) (W, error) {
	var (
		word W
		err  error
	)
	p.mutex.Lock(func(bus B) {
		for {
			word, err = bus.ReadChannel(ch)
			if !errors.Is(err, hal.ErrWouldBlock) {
				return
			}
		}
	})
	return word, err
}

// Clone returns another proxy sharing the same mutex.
func (p *ADCProxy[C, W, B, M]) Clone() *ADCProxy[C, W, B, M] {
	return &ADCProxy[C, W, B, M]{mutex: p.mutex}
}
