package bustest

import "github.com/codytrey/shared-bus/hal"

// ADC is a fake one-shot converter with int channel selectors and uint16
// sample words. It reports hal.ErrWouldBlock for the first WouldBlock polls
// of each conversion, then delivers Sample — the shape sharedbus.ADCProxy's
// busy-wait bridging is tested against.
type ADC struct {
	WouldBlock int    // polls to reject before the sample is ready
	Sample     uint16 // delivered once ready
	Err        error  // if set, returned immediately instead

	Polls    int   // total ReadChannel calls
	Channels []int // channel selector of each call

	remaining int
	started   bool
}

func (b *ADC) ReadChannel(ch int) (uint16, error) {
	b.Polls++
	b.Channels = append(b.Channels, ch)
	if b.Err != nil {
		return 0, b.Err
	}
	if !b.started {
		b.started = true
		b.remaining = b.WouldBlock
	}
	if b.remaining > 0 {
		b.remaining--
		return 0, hal.ErrWouldBlock
	}
	b.started = false
	return b.Sample, nil
}
