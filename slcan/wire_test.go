package slcan

import (
	"bytes"
	"errors"
	"testing"

	"github.com/codytrey/shared-bus/hal"
)

func TestMarshalFrame(t *testing.T) {
	tests := []struct {
		name  string
		frame hal.Frame
		want  string
	}{
		{
			name:  "standard data frame",
			frame: hal.Frame{ID: 0x123, Len: 2, Data: [8]byte{0xDE, 0xAD}},
			want:  "t1232DEAD\r",
		},
		{
			name:  "standard empty frame",
			frame: hal.Frame{ID: 0x7FF},
			want:  "t7FF0\r",
		},
		{
			name:  "extended data frame",
			frame: hal.Frame{ID: 0x18DAF110, Extended: true, Len: 1, Data: [8]byte{0x42}},
			want:  "T18DAF110142\r",
		},
		{
			name:  "standard remote request",
			frame: hal.Frame{ID: 0x456, RTR: true, Len: 4},
			want:  "r4564\r",
		},
		{
			name:  "extended remote request",
			frame: hal.Frame{ID: 0x1FFFFFFF, Extended: true, RTR: true, Len: 8},
			want:  "R1FFFFFFF8\r",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := marshalFrame(tt.frame)
			if err != nil {
				t.Fatalf("marshalFrame failed: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("marshalFrame() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMarshalFrameInvalid(t *testing.T) {
	if _, err := marshalFrame(hal.Frame{ID: 0x800}); !errors.Is(err, hal.ErrInvalidID) {
		t.Errorf("err = %v, want ErrInvalidID", err)
	}
	if _, err := marshalFrame(hal.Frame{ID: 1, Len: 9}); !errors.Is(err, hal.ErrInvalidLen) {
		t.Errorf("err = %v, want ErrInvalidLen", err)
	}
}

func TestUnmarshalFrame(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want hal.Frame
	}{
		{
			name: "standard data frame",
			msg:  "t1232DEAD",
			want: hal.Frame{ID: 0x123, Len: 2, Data: [8]byte{0xDE, 0xAD}},
		},
		{
			name: "extended data frame",
			msg:  "T18DAF110142",
			want: hal.Frame{ID: 0x18DAF110, Extended: true, Len: 1, Data: [8]byte{0x42}},
		},
		{
			name: "standard remote request",
			msg:  "r4564",
			want: hal.Frame{ID: 0x456, RTR: true, Len: 4},
		},
		{
			name: "extended remote request",
			msg:  "R1FFFFFFF8",
			want: hal.Frame{ID: 0x1FFFFFFF, Extended: true, RTR: true, Len: 8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := unmarshalFrame([]byte(tt.msg))
			if err != nil {
				t.Fatalf("unmarshalFrame failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("unmarshalFrame() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUnmarshalFrameInvalid(t *testing.T) {
	tests := []struct {
		name string
		msg  string
	}{
		{name: "empty", msg: ""},
		{name: "unknown kind", msg: "x123"},
		{name: "truncated id", msg: "t12"},
		{name: "bad id hex", msg: "tXYZ0"},
		{name: "dlc out of range", msg: "t1239"},
		{name: "short data", msg: "t1232DE"},
		{name: "bad data hex", msg: "t1231ZZ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := unmarshalFrame([]byte(tt.msg)); !errors.Is(err, ErrInvalidResponse) {
				t.Errorf("unmarshalFrame(%q) err = %v, want ErrInvalidResponse", tt.msg, err)
			}
		})
	}
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	f := hal.Frame{ID: 0x2A0, Len: 8, Data: [8]byte{1, 2, 3, 4, 5, 6, 7, 8}}
	msg, err := marshalFrame(f)
	if err != nil {
		t.Fatal(err)
	}
	got, err := unmarshalFrame(bytes.TrimSuffix(msg, []byte{cr}))
	if err != nil {
		t.Fatal(err)
	}
	if got != f {
		t.Errorf("round trip = %+v, want %+v", got, f)
	}
}
