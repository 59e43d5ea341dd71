// Package slcan drives a serial-line CAN (LAWICEL SLCAN) adapter, exposing it
// as a hal.CAN bus handle so it can sit behind a sharedbus CANProxy.
//
// The adapter speaks an ASCII protocol over a serial port: Sn selects the CAN
// bitrate, O opens and C closes the channel, and frames travel as t/T/r/R
// messages terminated by a carriage return. A BEL byte is the adapter's
// failure acknowledgement.
package slcan

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"go.uber.org/multierr"

	"github.com/codytrey/shared-bus/hal"
)

// ack bytes from the adapter.
const (
	ackOK    = cr
	ackError = 0x07 // BEL
)

// Port is the serial connection to the adapter. Open provides one from a
// device path; tests substitute their own.
type Port interface {
	io.ReadWriteCloser

	// SetReadTimeout sets the read timeout duration.
	SetReadTimeout(timeout time.Duration) error
}

// Config holds configuration for attaching to an adapter.
type Config struct {
	// Device is the serial device path (e.g. "/dev/ttyACM0"). Used by
	// Open; ignored by NewBus.
	Device string

	// SerialBaud is the serial port speed. Default is 115200.
	SerialBaud int

	// Bitrate is the CAN bus bitrate. Default is 500000. Must be one of
	// the adapter's supported rates (10k up to 1M).
	Bitrate int

	// ReadTimeout bounds how long Receive and command acknowledgements
	// wait for adapter bytes. Default is 1 second.
	ReadTimeout time.Duration
}

// Bus is an open slcan channel. It implements hal.CAN[hal.Frame].
//
// A Bus serializes nothing itself; to share it between drivers, hand it to a
// sharedbus manager and give each driver its own proxy.
type Bus struct {
	port    Port
	timeout time.Duration
	rbuf    []byte
	pending [][]byte // frames that arrived while waiting for an ack
	closed  bool
}

// NewBus configures the adapter behind port and opens its CAN channel.
func NewBus(port Port, cfg Config) (*Bus, error) {
	if cfg.Bitrate == 0 {
		cfg.Bitrate = 500000
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = time.Second
	}
	code, ok := bitrateCodes[cfg.Bitrate]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrBitrate, cfg.Bitrate)
	}

	b := &Bus{port: port, timeout: cfg.ReadTimeout}

	// The channel may still be open from a previous run; the close is
	// expected to fail on an already-closed adapter.
	_ = b.command("C")

	if err := b.command(fmt.Sprintf("S%c", code)); err != nil {
		return nil, err
	}
	if err := b.command("O"); err != nil {
		return nil, err
	}
	return b, nil
}

// Transmit encodes frame and sends it to the adapter, waiting for the
// acknowledgement.
func (b *Bus) Transmit(frame hal.Frame) error {
	if b.closed {
		return ErrClosed
	}
	msg, err := marshalFrame(frame)
	if err != nil {
		return err
	}
	if _, err := b.port.Write(msg); err != nil {
		return fmt.Errorf("slcan: transmit: %w", err)
	}
	return b.readAck()
}

// Receive returns the next frame from the adapter, blocking until one
// arrives or the read timeout passes with no bytes.
func (b *Bus) Receive() (hal.Frame, error) {
	if b.closed {
		return hal.Frame{}, ErrClosed
	}
	for {
		msg, err := b.readMessage()
		if err != nil {
			return hal.Frame{}, err
		}
		switch msg[0] {
		case kindStd, kindExt, kindStdRTR, kindExtRTR:
			return unmarshalFrame(msg)
		default:
			// Transmit acknowledgements ('z', 'Z') and the like;
			// not frames, not errors.
		}
	}
}

// Close shuts the adapter's CAN channel and closes the port.
func (b *Bus) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	_, werr := b.port.Write([]byte{'C', cr})
	return multierr.Combine(werr, b.port.Close())
}

// command sends a CR-terminated setup command and waits for its ack.
func (b *Bus) command(cmd string) error {
	if _, err := b.port.Write(append([]byte(cmd), cr)); err != nil {
		return &CommandError{Cmd: cmd, Err: err}
	}
	if err := b.readAck(); err != nil {
		return &CommandError{Cmd: cmd, Err: err}
	}
	return nil
}

// readAck consumes bytes until the adapter acknowledges, skipping any frame
// traffic that arrives in between.
func (b *Bus) readAck() error {
	start := time.Now()
	for {
		if tok, err := b.nextToken(); err == nil {
			switch {
			case len(tok) == 0, tok[0] == 'z', tok[0] == 'Z':
				return nil // plain CR or transmit ack
			case tok[0] == ackError:
				return ErrRejected
			default:
				// A frame raced the ack; keep it for Receive.
				b.pending = append(b.pending, tok)
			}
			continue
		}
		if time.Since(start) > b.timeout {
			return ErrNoResponse
		}
		if err := b.fill(); err != nil {
			return err
		}
	}
}

// readMessage returns the next non-empty CR-delimited message.
func (b *Bus) readMessage() ([]byte, error) {
	if len(b.pending) > 0 {
		tok := b.pending[0]
		b.pending = b.pending[1:]
		return tok, nil
	}
	start := time.Now()
	for {
		if tok, err := b.nextToken(); err == nil {
			if len(tok) == 0 {
				continue
			}
			if tok[0] == ackError {
				return nil, ErrRejected
			}
			return tok, nil
		}
		if time.Since(start) > b.timeout {
			return nil, ErrNoResponse
		}
		if err := b.fill(); err != nil {
			return nil, err
		}
	}
}

// nextToken pops one buffered message, delimited by CR. A lone BEL is also a
// complete token.
func (b *Bus) nextToken() ([]byte, error) {
	if len(b.rbuf) > 0 && b.rbuf[0] == ackError {
		b.rbuf = b.rbuf[1:]
		return []byte{ackError}, nil
	}
	i := bytes.IndexByte(b.rbuf, cr)
	if i < 0 {
		return nil, io.ErrShortBuffer
	}
	tok := append([]byte(nil), b.rbuf[:i]...)
	b.rbuf = b.rbuf[i+1:]
	return tok, nil
}

// fill reads more adapter bytes into the buffer.
func (b *Bus) fill() error {
	buf := make([]byte, 256)
	n, err := b.port.Read(buf)
	if err != nil {
		return fmt.Errorf("slcan: read: %w", err)
	}
	b.rbuf = append(b.rbuf, buf[:n]...)
	if n == 0 {
		// Serial read timeouts surface as empty reads; back off briefly
		// so the deadline loop does not spin.
		time.Sleep(time.Millisecond)
	}
	return nil
}
