package periphbus

import (
	"bytes"
	"errors"
	"testing"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// fakeI2CBus records Tx calls in place of a kernel bus.
type fakeI2CBus struct {
	addr uint16
	w, r []byte
	err  error
}

func (f *fakeI2CBus) String() string { return "fake-i2c" }

func (f *fakeI2CBus) Tx(addr uint16, w, r []byte) error {
	f.addr = addr
	f.w = append([]byte(nil), w...)
	f.r = r
	copy(r, []byte{0xAA, 0xBB})
	return f.err
}

func (f *fakeI2CBus) SetSpeed(freq physic.Frequency) error { return nil }

func TestI2CMapsOntoTx(t *testing.T) {
	fake := &fakeI2CBus{}
	bus := NewI2C(fake)

	if err := bus.Write(0x42, []byte{1, 2}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if fake.addr != 0x42 || !bytes.Equal(fake.w, []byte{1, 2}) || fake.r != nil {
		t.Errorf("Write mapped to Tx(%#x, %v, %v)", fake.addr, fake.w, fake.r)
	}

	r := make([]byte, 2)
	if err := bus.Read(0x42, r); err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(fake.w) != 0 || !bytes.Equal(r, []byte{0xAA, 0xBB}) {
		t.Errorf("Read mapped to Tx(w=%v) with result %X", fake.w, r)
	}

	if err := bus.WriteRead(0x42, []byte{9}, r); err != nil {
		t.Fatalf("WriteRead failed: %v", err)
	}
	if !bytes.Equal(fake.w, []byte{9}) || len(fake.r) != 2 {
		t.Errorf("WriteRead mapped to Tx(%v, len %d)", fake.w, len(fake.r))
	}
}

func TestI2CErrorPassThrough(t *testing.T) {
	errNack := errors.New("i2c: nack")
	bus := NewI2C(&fakeI2CBus{err: errNack})

	if err := bus.Write(1, nil); err != errNack {
		t.Errorf("err = %v, want the bus's own %v", err, errNack)
	}
}

func TestI2CCloseWithoutOpen(t *testing.T) {
	if err := NewI2C(&fakeI2CBus{}).Close(); err != nil {
		t.Errorf("Close on wrapped bus: %v", err)
	}
}

// fakeSPIConn records Tx calls in place of a connected SPI device.
type fakeSPIConn struct {
	w, r []byte
	resp []byte
	err  error
}

func (f *fakeSPIConn) String() string { return "fake-spi" }

func (f *fakeSPIConn) Tx(w, r []byte) error {
	f.w = append([]byte(nil), w...)
	f.r = r
	copy(r, f.resp)
	return f.err
}

func (f *fakeSPIConn) Duplex() conn.Duplex { return conn.Full }

func (f *fakeSPIConn) TxPackets(p []spi.Packet) error { return nil }

func TestSPITransferInPlace(t *testing.T) {
	fake := &fakeSPIConn{resp: []byte{0x55, 0x66}}
	bus := NewSPI(fake)

	words := []byte{0x11, 0x22}
	if err := bus.Transfer(words); err != nil {
		t.Fatalf("Transfer failed: %v", err)
	}
	if !bytes.Equal(fake.w, []byte{0x11, 0x22}) {
		t.Errorf("clocked out %X, want 1122", fake.w)
	}
	if !bytes.Equal(words, []byte{0x55, 0x66}) {
		t.Errorf("words after transfer = %X, want 5566", words)
	}
}

func TestSPIWrite(t *testing.T) {
	fake := &fakeSPIConn{}
	bus := NewSPI(fake)

	if err := bus.Write([]byte{0xDE}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if !bytes.Equal(fake.w, []byte{0xDE}) || fake.r != nil {
		t.Errorf("Write mapped to Tx(%v, %v)", fake.w, fake.r)
	}
}
