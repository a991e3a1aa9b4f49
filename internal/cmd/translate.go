package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/Alia5/kanamatrix/eeprom"
	"github.com/Alia5/kanamatrix/internal/log"
	"github.com/Alia5/kanamatrix/internal/trace"
	"github.com/Alia5/kanamatrix/layout"
	"github.com/Alia5/kanamatrix/resolver"
)

type Translate struct {
	File   string `arg:"" help:"Trace file (.yaml, .yml, .toml or .json)" type:"existingfile"`
	Format string `help:"Output format; auto prints key names on a terminal and hex otherwise" enum:"auto,hex,names,raw" default:"auto" env:"KANAMATRIX_TRANSLATE_FORMAT"`
	Base   string `help:"Base layout, overrides the trace file" env:"KANAMATRIX_TRANSLATE_BASE"`
	Kana   string `help:"Kana layout, overrides the trace file" env:"KANAMATRIX_TRANSLATE_KANA"`
}

// Run is called by Kong when the translate command is executed.
func (t *Translate) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	return t.Translate(context.Background(), logger, rawLogger, os.Stdout)
}

// Translate replays the trace file against an in-memory store and writes
// one report per resolved cycle to out.
func (t *Translate) Translate(ctx context.Context, logger *slog.Logger, rawLogger log.RawLogger, out io.Writer) error {
	f, err := trace.Load(t.File)
	if err != nil {
		return err
	}

	baseName, kanaName := f.Base, f.Kana
	if t.Base != "" {
		baseName = t.Base
	}
	if t.Kana != "" {
		kanaName = t.Kana
	}
	seed := map[eeprom.Addr]byte{}
	if baseName != "" {
		m, err := layout.ParseBaseMode(baseName)
		if err != nil {
			return err
		}
		seed[eeprom.AddrBase] = byte(m)
	}
	if kanaName != "" {
		m, err := layout.ParseKanaMode(kanaName)
		if err != nil {
			return err
		}
		seed[eeprom.AddrKana] = byte(m)
	}

	engine := resolver.New(&resolver.Options{
		Store:   eeprom.NewMemory(seed),
		NumLock: resolver.NewKeypad(f.NumLock),
	})
	if err := engine.Init(); err != nil {
		return err
	}
	engine.SetKanaLED(f.KanaLED)

	sink, err := t.sink(out)
	if err != nil {
		return err
	}

	logger.Debug("Replaying trace",
		"file", t.File,
		"cycles", len(f.Cycles),
		"base", engine.BaseMode(),
		"kana", engine.KanaMode(),
	)
	tr := trace.NewTranslator(engine, trace.Options{Sink: sink, Raw: rawLogger, Logger: logger})
	return tr.Replay(ctx, trace.NewCycleSource(f.Cycles))
}

func (t *Translate) sink(out io.Writer) (trace.Sink, error) {
	switch t.Format {
	case "", "auto":
		if isTerminal(out) {
			return trace.NamesSink{W: out}, nil
		}
		return trace.HexSink{W: out}, nil
	case "hex":
		return trace.HexSink{W: out}, nil
	case "names":
		return trace.NamesSink{W: out}, nil
	case "raw":
		return trace.RawSink{W: out}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", t.Format)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}
