package bustest

import (
	"sync/atomic"
	"time"
)

// I2COp is one recorded I2C operation.
type I2COp struct {
	Name string // "write", "read" or "write-read"
	Addr byte
	W    []byte // copy of the written bytes, nil for reads
	R    int    // length of the read buffer, 0 for writes
}

// I2C is a recording fake I2C bus handle.
//
// The Ops slice is deliberately unsynchronized: when arbitration works the
// fake is only ever entered by one holder at a time, and when it doesn't the
// Interleaved flag (and the race detector) will say so.
type I2C struct {
	Ops      []I2COp
	ReadData []byte // copied into every read buffer

	WriteErr     error
	ReadErr      error
	WriteReadErr error

	// OpDelay widens the window in which a second concurrent operation
	// would be caught overlapping this one.
	OpDelay time.Duration

	busy        atomic.Bool
	interleaved atomic.Bool
}

func (b *I2C) begin() {
	if !b.busy.CompareAndSwap(false, true) {
		b.interleaved.Store(true)
	}
	if b.OpDelay > 0 {
		time.Sleep(b.OpDelay)
	}
}

func (b *I2C) end() {
	b.busy.Store(false)
}

// Interleaved reports whether two operations were ever in flight at once.
func (b *I2C) Interleaved() bool {
	return b.interleaved.Load()
}

func (b *I2C) Write(addr byte, w []byte) error {
	b.begin()
	defer b.end()
	b.Ops = append(b.Ops, I2COp{Name: "write", Addr: addr, W: append([]byte(nil), w...)})
	return b.WriteErr
}

func (b *I2C) Read(addr byte, r []byte) error {
	b.begin()
	defer b.end()
	copy(r, b.ReadData)
	b.Ops = append(b.Ops, I2COp{Name: "read", Addr: addr, R: len(r)})
	return b.ReadErr
}

func (b *I2C) WriteRead(addr byte, w, r []byte) error {
	b.begin()
	defer b.end()
	copy(r, b.ReadData)
	b.Ops = append(b.Ops, I2COp{Name: "write-read", Addr: addr, W: append([]byte(nil), w...), R: len(r)})
	return b.WriteReadErr
}
