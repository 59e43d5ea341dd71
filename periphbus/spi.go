package periphbus

import (
	"fmt"

	"go.uber.org/multierr"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/codytrey/shared-bus/hal"
)

// SPI adapts a periph.io SPI connection to hal.SPI.
type SPI struct {
	conn spi.Conn
	port spi.PortCloser // set when the port was opened by OpenSPI
}

var _ hal.SPI = (*SPI)(nil)

// NewSPI wraps an already-connected periph.io SPI connection.
func NewSPI(conn spi.Conn) *SPI {
	return &SPI{conn: conn}
}

// OpenSPI initializes the periph.io host drivers, opens the registered port
// named name (empty selects the first available one) and connects it at the
// given frequency and mode with 8-bit words.
func OpenSPI(name string, freq physic.Frequency, mode spi.Mode) (*SPI, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periphbus: host init: %w", err)
	}
	port, err := spireg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("periphbus: open spi port %q: %w", name, err)
	}
	conn, err := port.Connect(freq, mode, 8)
	if err != nil {
		return nil, multierr.Append(
			fmt.Errorf("periphbus: connect spi port %q: %w", name, err),
			port.Close(),
		)
	}
	return &SPI{conn: conn, port: port}, nil
}

func (b *SPI) Transfer(words []byte) error {
	// periph.io wants distinct write and read buffers; the hal contract is
	// in-place.
	w := append([]byte(nil), words...)
	return b.conn.Tx(w, words)
}

func (b *SPI) Write(words []byte) error {
	return b.conn.Tx(words, nil)
}

// Close releases the port if OpenSPI opened it.
func (b *SPI) Close() error {
	if b.port == nil {
		return nil
	}
	return b.port.Close()
}
