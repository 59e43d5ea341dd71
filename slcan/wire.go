package slcan

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/codytrey/shared-bus/hal"
)

// Serial-line CAN message kinds.
const (
	kindStd    = 't' // standard identifier, data frame
	kindExt    = 'T' // extended identifier, data frame
	kindStdRTR = 'r' // standard identifier, remote request
	kindExtRTR = 'R' // extended identifier, remote request
)

const cr = '\r'

// marshalFrame encodes f as an slcan ASCII message, CR-terminated.
func marshalFrame(f hal.Frame) ([]byte, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	var msg []byte
	switch {
	case f.Extended && f.RTR:
		msg = fmt.Appendf(nil, "%c%08X%d", kindExtRTR, f.ID, f.Len)
	case f.Extended:
		msg = fmt.Appendf(nil, "%c%08X%d", kindExt, f.ID, f.Len)
	case f.RTR:
		msg = fmt.Appendf(nil, "%c%03X%d", kindStdRTR, f.ID, f.Len)
	default:
		msg = fmt.Appendf(nil, "%c%03X%d", kindStd, f.ID, f.Len)
	}
	if !f.RTR {
		msg = fmt.Appendf(msg, "%X", f.Payload())
	}
	return append(msg, cr), nil
}

// unmarshalFrame decodes one slcan message (without the trailing CR).
func unmarshalFrame(msg []byte) (hal.Frame, error) {
	if len(msg) == 0 {
		return hal.Frame{}, ErrInvalidResponse
	}

	var f hal.Frame
	var idLen int
	switch msg[0] {
	case kindStd:
		idLen = 3
	case kindExt:
		idLen = 8
		f.Extended = true
	case kindStdRTR:
		idLen = 3
		f.RTR = true
	case kindExtRTR:
		idLen = 8
		f.Extended = true
		f.RTR = true
	default:
		return hal.Frame{}, fmt.Errorf("%w: message kind %q", ErrInvalidResponse, msg[0])
	}

	if len(msg) < 1+idLen+1 {
		return hal.Frame{}, fmt.Errorf("%w: message too short", ErrInvalidResponse)
	}
	id, err := strconv.ParseUint(string(msg[1:1+idLen]), 16, 32)
	if err != nil {
		return hal.Frame{}, fmt.Errorf("%w: bad identifier: %v", ErrInvalidResponse, err)
	}
	f.ID = uint32(id)

	dlc := msg[1+idLen]
	if dlc < '0' || dlc > '8' {
		return hal.Frame{}, fmt.Errorf("%w: bad data length %q", ErrInvalidResponse, dlc)
	}
	f.Len = dlc - '0'

	if !f.RTR {
		data := msg[1+idLen+1:]
		if len(data) != 2*int(f.Len) {
			return hal.Frame{}, fmt.Errorf("%w: %d data chars for length %d", ErrInvalidResponse, len(data), f.Len)
		}
		if _, err := hex.Decode(f.Data[:f.Len], data); err != nil {
			return hal.Frame{}, fmt.Errorf("%w: bad data: %v", ErrInvalidResponse, err)
		}
	}

	if err := f.Validate(); err != nil {
		return hal.Frame{}, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return f, nil
}

// bitrateCodes maps CAN bitrates to the adapter's Sn setup codes.
var bitrateCodes = map[int]byte{
	10000:   '0',
	20000:   '1',
	50000:   '2',
	100000:  '3',
	125000:  '4',
	250000:  '5',
	500000:  '6',
	800000:  '7',
	1000000: '8',
}
