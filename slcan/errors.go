package slcan

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure modes.
var (
	ErrClosed          = errors.New("slcan: bus is closed")
	ErrNoResponse      = errors.New("slcan: no response from adapter")
	ErrInvalidResponse = errors.New("slcan: invalid response from adapter")
	ErrRejected        = errors.New("slcan: adapter rejected command")
	ErrBitrate         = errors.New("slcan: unsupported bitrate")
)

// CommandError reports a failed adapter command.
type CommandError struct {
	Cmd string // command as sent, without the trailing CR
	Err error  // underlying error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("slcan: command %q failed: %v", e.Cmd, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
