package sharedbus

import (
	"errors"
	"testing"

	"github.com/codytrey/shared-bus/bustest"
)

func TestADCProxyBlocksUntilSampleReady(t *testing.T) {
	bus := &bustest.ADC{WouldBlock: 5, Sample: 0x0123}
	mgr := NewManager[*bustest.ADC](bustest.NewMutex(bus))
	proxy := AcquireADC[int, uint16](mgr)

	sample, err := proxy.ReadChannel(3)
	if err != nil {
		t.Fatalf("ReadChannel failed: %v", err)
	}
	if sample != 0x0123 {
		t.Errorf("sample = %#x, want 0x0123", sample)
	}

	// N would-block polls plus the completing one, all inside a single
	// mutex hold.
	if bus.Polls != 6 {
		t.Errorf("polls = %d, want 6", bus.Polls)
	}
	if got := mgr.mutex.Acquisitions(); got != 1 {
		t.Errorf("acquisitions = %d, want 1", got)
	}
	for i, ch := range bus.Channels {
		if ch != 3 {
			t.Errorf("poll %d used channel %d, want 3", i, ch)
		}
	}
}

func TestADCProxyImmediateSample(t *testing.T) {
	bus := &bustest.ADC{Sample: 42}
	proxy := AcquireADC[int, uint16](NewManager[*bustest.ADC](bustest.NewMutex(bus)))

	sample, err := proxy.ReadChannel(0)
	if err != nil {
		t.Fatalf("ReadChannel failed: %v", err)
	}
	if sample != 42 || bus.Polls != 1 {
		t.Errorf("sample = %d after %d polls, want 42 after 1", sample, bus.Polls)
	}
}

func TestADCProxyErrorPassThrough(t *testing.T) {
	errRef := errors.New("reference voltage out of range")
	bus := &bustest.ADC{Err: errRef}
	proxy := AcquireADC[int, uint16](NewManager[*bustest.ADC](bustest.NewMutex(bus)))

	if _, err := proxy.ReadChannel(1); err != errRef {
		t.Errorf("err = %v, want the converter's own %v", err, errRef)
	}
	if bus.Polls != 1 {
		t.Errorf("polls = %d, want 1: a real error must not be retried", bus.Polls)
	}
}

func TestADCProxyRepeatedReads(t *testing.T) {
	bus := &bustest.ADC{WouldBlock: 2, Sample: 7}
	mgr := NewManager[*bustest.ADC](bustest.NewMutex(bus))
	proxy := AcquireADC[int, uint16](mgr)

	for i := 0; i < 2; i++ {
		if _, err := proxy.ReadChannel(5); err != nil {
			t.Fatalf("read %d failed: %v", i, err)
		}
	}

	// Each read is its own acquisition spinning through its own N+1 polls.
	if bus.Polls != 6 {
		t.Errorf("polls = %d, want 6", bus.Polls)
	}
	if got := mgr.mutex.Acquisitions(); got != 2 {
		t.Errorf("acquisitions = %d, want 2", got)
	}
}
