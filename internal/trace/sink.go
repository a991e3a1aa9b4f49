package trace

import (
	"fmt"
	"io"

	"github.com/Alia5/kanamatrix/device/keyboard"
)

// Sink receives resolved keyboard reports.
type Sink interface {
	Send(r keyboard.Report) error
}

// HexSink writes one report per line as 8 hex bytes.
type HexSink struct {
	W io.Writer
}

func (s HexSink) Send(r keyboard.Report) error {
	_, err := fmt.Fprintf(s.W, "% x\n", r[:])
	return err
}

// NamesSink writes one report per line as modifier and key names.
type NamesSink struct {
	W io.Writer
}

func (s NamesSink) Send(r keyboard.Report) error {
	_, err := fmt.Fprintln(s.W, r.String())
	return err
}

// RawSink writes raw 8-byte reports, e.g. to a Linux HID gadget device
// (/dev/hidg0).
type RawSink struct {
	W io.Writer
}

func (s RawSink) Send(r keyboard.Report) error {
	b, err := r.MarshalBinary()
	if err != nil {
		return err
	}
	_, err = s.W.Write(b)
	return err
}
