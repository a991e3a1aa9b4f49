package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/Alia5/kanamatrix/device/keyboard"
)

// Descriptor prints the HID report descriptor matching the reports the run
// command writes, for setting up a Linux USB HID gadget.
type Descriptor struct {
	Output string    `help:"Write the raw descriptor to this file, e.g. functions/hid.usb0/report_desc" type:"path"`
	Format string    `help:"Output format when printing" enum:"hex,raw" default:"hex"`
	Out    io.Writer `kong:"-"`
}

func (d *Descriptor) Run() error {
	if d.Output != "" {
		return os.WriteFile(d.Output, keyboard.ReportDescriptor, 0o644)
	}
	out := output(d.Out)
	if d.Format == "raw" {
		_, err := out.Write(keyboard.ReportDescriptor)
		return err
	}
	_, err := fmt.Fprintf(out, "% x\n", keyboard.ReportDescriptor)
	return err
}
