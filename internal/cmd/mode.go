package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Alia5/kanamatrix/device/keyboard"
	"github.com/Alia5/kanamatrix/layout"
	"github.com/Alia5/kanamatrix/resolver"
)

// Mode groups the layout subcommands.
type Mode struct {
	Show ModeShow `cmd:"" default:"1" help:"Print the persisted layouts"`
	Next ModeNext `cmd:"" help:"Advance a layout as the Fn layer does and print the confirmation"`
	Set  ModeSet  `cmd:"" help:"Select a layout by name"`
	List ModeList `cmd:"" help:"List the layout names"`
}

func output(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}

func openEngine(s StoreFlags) (*resolver.Engine, error) {
	store, err := s.Open()
	if err != nil {
		return nil, err
	}
	e := resolver.New(&resolver.Options{Store: store})
	if err := e.Init(); err != nil {
		return nil, err
	}
	return e, nil
}

type ModeShow struct {
	Store StoreFlags `embed:""`
	Out   io.Writer  `kong:"-"`
}

func (m *ModeShow) Run() error {
	e, err := openEngine(m.Store)
	if err != nil {
		return err
	}
	out := output(m.Out)
	_, _ = fmt.Fprintf(out, "base: %s\n", e.BaseMode())
	_, _ = fmt.Fprintf(out, "kana: %s\n", e.KanaMode())
	return nil
}

type ModeNext struct {
	Which string     `arg:"" help:"Layout to advance" enum:"base,kana"`
	Store StoreFlags `embed:""`
	Out   io.Writer  `kong:"-"`
}

func (m *ModeNext) Run(logger *slog.Logger) error {
	e, err := openEngine(m.Store)
	if err != nil {
		return err
	}

	var report keyboard.Report
	var name fmt.Stringer
	switch m.Which {
	case "base":
		_, err = e.SwitchBase(&report, keyboard.FirstKeySlot)
		name = e.BaseMode()
	case "kana":
		_, err = e.SwitchKana(&report, keyboard.FirstKeySlot)
		name = e.KanaMode()
	default:
		return fmt.Errorf("unknown layout kind: %s", m.Which)
	}
	if err != nil {
		return err
	}
	logger.Debug("Layout advanced", "kind", m.Which, "mode", name)

	out := output(m.Out)
	_, _ = fmt.Fprintf(out, "%s: %s\n", m.Which, name)
	_, _ = fmt.Fprintf(out, "confirm: %s\n", report)
	return nil
}

type ModeSet struct {
	Which string     `arg:"" help:"Layout kind" enum:"base,kana"`
	Name  string     `arg:"" help:"Layout name or number, see 'mode list'"`
	Store StoreFlags `embed:""`
}

func (m *ModeSet) Run(logger *slog.Logger) error {
	e, err := openEngine(m.Store)
	if err != nil {
		return err
	}
	switch m.Which {
	case "base":
		mode, err := layout.ParseBaseMode(m.Name)
		if err != nil {
			return err
		}
		if err := e.SetBaseMode(mode); err != nil {
			return err
		}
		logger.Info("Base layout set", "mode", mode)
	case "kana":
		mode, err := layout.ParseKanaMode(m.Name)
		if err != nil {
			return err
		}
		if err := e.SetKanaMode(mode); err != nil {
			return err
		}
		logger.Info("Kana layout set", "mode", mode)
	default:
		return fmt.Errorf("unknown layout kind: %s", m.Which)
	}
	return nil
}

type ModeList struct {
	Out io.Writer `kong:"-"`
}

func (m *ModeList) Run() error {
	out := output(m.Out)
	for i, n := range layout.BaseModeNames() {
		_, _ = fmt.Fprintf(out, "base %d %s\n", i, n)
	}
	for i, n := range layout.KanaModeNames() {
		_, _ = fmt.Fprintf(out, "kana %d %s\n", i, n)
	}
	return nil
}
