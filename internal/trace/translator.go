package trace

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/Alia5/kanamatrix/device/keyboard"
	"github.com/Alia5/kanamatrix/internal/log"
	"github.com/Alia5/kanamatrix/matrix"
	"github.com/Alia5/kanamatrix/resolver"
)

// Observer is told about every scan cycle and transmitted report.
type Observer interface {
	ScanCycle()
	Transmit(x resolver.Xmit)
}

type nopObserver struct{}

func (nopObserver) ScanCycle()             {}
func (nopObserver) Transmit(resolver.Xmit) {}

// Options configure a Translator. Sink is required.
type Options struct {
	Sink     Sink
	Raw      log.RawLogger
	Logger   *slog.Logger
	Observer Observer
}

// Translator drives an Engine one scan cycle at a time, keeping the previous
// cycle as the processed report.
type Translator struct {
	engine    *resolver.Engine
	sink      Sink
	raw       log.RawLogger
	logger    *slog.Logger
	observer  Observer
	processed matrix.ScanReport
}

func NewTranslator(e *resolver.Engine, o Options) *Translator {
	t := &Translator{
		engine:   e,
		sink:     o.Sink,
		raw:      o.Raw,
		logger:   o.Logger,
		observer: o.Observer,
	}
	if t.raw == nil {
		t.raw = log.NewRaw(nil)
	}
	if t.logger == nil {
		t.logger = slog.New(slog.DiscardHandler)
	}
	if t.observer == nil {
		t.observer = nopObserver{}
	}
	return t
}

// Processed returns the scan report the next cycle is compared against.
func (t *Translator) Processed() matrix.ScanReport { return t.processed }

// Reset forgets the previous cycle, e.g. after the engine reloaded its modes.
func (t *Translator) Reset() { t.processed = matrix.ScanReport{} }

// Step resolves one scan cycle and sends the result. A break transmit sends
// a neutral report and resolves the same scan again.
func (t *Translator) Step(current matrix.ScanReport) error {
	return t.step(current, "")
}

// StepCycle is Step for a trace cycle, honouring its Switch.
func (t *Translator) StepCycle(c Cycle, current matrix.ScanReport) error {
	return t.step(current, c.Switch)
}

func (t *Translator) step(current matrix.ScanReport, switchTo string) error {
	t.raw.Log(log.DirScan, current[:])
	t.observer.ScanCycle()

	report, xmit := t.engine.Process(current, t.processed)
	if xmit == resolver.XmitBreak {
		t.logger.Debug("break before repeated kana", "scan", fmt.Sprintf("% x", current[:]))
		t.observer.Transmit(xmit)
		if err := t.send(keyboard.Report{}); err != nil {
			return err
		}
		report, xmit = t.engine.Process(current, t.processed)
	}

	if switchTo != "" {
		count := keyboard.FirstKeySlot + len(report.Keys())
		var err error
		switch switchTo {
		case SwitchBase:
			_, err = t.engine.SwitchBase(&report, count)
			t.logger.Info("base layout switched", "mode", t.engine.BaseMode())
		case SwitchKana:
			_, err = t.engine.SwitchKana(&report, count)
			t.logger.Info("kana layout switched", "mode", t.engine.KanaMode())
		}
		if err != nil {
			t.logger.Error("failed to persist mode", "error", err)
		}
	}

	t.observer.Transmit(xmit)
	if err := t.send(report); err != nil {
		return err
	}
	t.processed = current
	return nil
}

func (t *Translator) send(r keyboard.Report) error {
	t.raw.Log(log.DirHID, r[:])
	if err := t.sink.Send(r); err != nil {
		return fmt.Errorf("send report: %w", err)
	}
	return nil
}

// Replay steps through every cycle of src until it is exhausted or ctx is
// done.
func (t *Translator) Replay(ctx context.Context, src *CycleSource) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c, s, err := src.NextCycle()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := t.StepCycle(c, s); err != nil {
			return err
		}
	}
}
