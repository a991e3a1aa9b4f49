// Package config holds the kong root CLI definition.
package config

import "github.com/Alia5/kanamatrix/internal/cmd"

// Log configures the process logger and the raw report log.
type Log struct {
	Level   string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"KANAMATRIX_LOG_LEVEL"`
	Format  string `help:"Log record format" enum:"text,json" default:"text" env:"KANAMATRIX_LOG_FORMAT"`
	File    string `help:"Also write log records to this file" type:"path" env:"KANAMATRIX_LOG_FILE"`
	RawFile string `help:"Write a hex dump of every scan and HID report to this file" type:"path" env:"KANAMATRIX_LOG_RAW_FILE"`
}

// CLI is the kong root.
type CLI struct {
	Config string `help:"Config file (.json, .yaml, .toml)" type:"path" env:"KANAMATRIX_CONFIG"`
	Log    Log    `embed:"" prefix:"log."`

	Run        cmd.Run           `cmd:"" help:"Translate scan reports from the matrix into HID reports"`
	Translate  cmd.Translate     `cmd:"" help:"Replay a trace file and print the resulting reports"`
	Mode       cmd.Mode          `cmd:"" help:"Inspect or change the persisted layouts"`
	Descriptor cmd.Descriptor    `cmd:"" help:"Print the HID report descriptor for a USB gadget"`
	ConfigCmd  cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration helpers"`
}

// ReportsOnStdout reports whether the selected command writes reports to
// stdout, in which case log records must stay on stderr.
func (c *CLI) ReportsOnStdout(command string) bool {
	switch command {
	case "run":
		return c.Run.Output == ""
	case "translate <file>":
		return true
	case "descriptor":
		return c.Descriptor.Output == ""
	}
	return false
}
