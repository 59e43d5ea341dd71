package hal

import (
	"errors"
	"fmt"
)

// Frame is a classical CAN (2.0A/2.0B) frame, for bus handles that do not
// bring their own representation.
type Frame struct {
	ID       uint32 // 11-bit (standard) or 29-bit (extended) identifier
	Extended bool   // true for a 29-bit identifier
	RTR      bool   // remote transmission request, no data
	Len      uint8  // 0..8
	Data     [8]byte
}

// Identifier limits.
const (
	maxStdID = 0x7FF
	maxExtID = 0x1FFFFFFF
)

var (
	ErrInvalidID  = errors.New("hal: invalid CAN identifier")
	ErrInvalidLen = errors.New("hal: invalid CAN data length")
)

// NewFrame builds a standard-identifier data frame from up to 8 bytes.
func NewFrame(id uint32, data []byte) (Frame, error) {
	f := Frame{ID: id, Len: uint8(len(data))}
	if len(data) > len(f.Data) {
		return Frame{}, ErrInvalidLen
	}
	copy(f.Data[:], data)
	if err := f.Validate(); err != nil {
		return Frame{}, err
	}
	return f, nil
}

// Validate reports whether the frame's identifier and length are in range.
func (f Frame) Validate() error {
	if f.Len > 8 {
		return ErrInvalidLen
	}
	max := uint32(maxStdID)
	if f.Extended {
		max = maxExtID
	}
	if f.ID > max {
		return ErrInvalidID
	}
	return nil
}

// Payload returns the valid portion of the data bytes.
func (f Frame) Payload() []byte {
	return f.Data[:f.Len]
}

func (f Frame) String() string {
	if f.Extended {
		return fmt.Sprintf("%08X#%X", f.ID, f.Payload())
	}
	return fmt.Sprintf("%03X#%X", f.ID, f.Payload())
}
