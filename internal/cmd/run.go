package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"go.bug.st/serial"

	"github.com/Alia5/kanamatrix/device/keyboard"
	"github.com/Alia5/kanamatrix/eeprom"
	"github.com/Alia5/kanamatrix/internal/log"
	"github.com/Alia5/kanamatrix/internal/metrics"
	"github.com/Alia5/kanamatrix/internal/trace"
	"github.com/Alia5/kanamatrix/matrix"
	"github.com/Alia5/kanamatrix/resolver"
)

// SerialConfig selects a serial link to the matrix scanner.
type SerialConfig struct {
	Port string `help:"Serial port of the matrix scanner, read as raw 8-byte frames" env:"KANAMATRIX_SERIAL_PORT"`
	Baud int    `help:"Serial baud rate" default:"115200" env:"KANAMATRIX_SERIAL_BAUD"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	Addr string `help:"Serve Prometheus metrics on this address, e.g. :9120" env:"KANAMATRIX_METRICS_ADDR"`
}

type Run struct {
	Store   StoreFlags    `embed:""`
	Serial  SerialConfig  `embed:"" prefix:"serial."`
	Metrics MetricsConfig `embed:"" prefix:"metrics."`
	Input   string        `help:"File of hex scan reports, '-' for stdin. Ignored when a serial port is set" default:"-" env:"KANAMATRIX_INPUT"`
	Output  string        `help:"Write raw reports to this device, e.g. /dev/hidg0. Hex lines on stdout when empty" env:"KANAMATRIX_OUTPUT"`
	NumLock bool          `help:"Start with the numeric keypad overlay enabled" env:"KANAMATRIX_NUM_LOCK"`
	KanaLED bool          `help:"Start with kana input on" env:"KANAMATRIX_KANA_LED"`
	Watch   bool          `help:"Reload the layouts when the EEPROM image changes" default:"true" negatable:"" env:"KANAMATRIX_WATCH"`
	HostLED bool          `name:"host-leds" help:"Read the host's LED reports back from the output device; Num Lock drives the keypad overlay" env:"KANAMATRIX_HOST_LEDS"`
}

// Run is called by Kong when the run command is executed.
func (r *Run) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return r.Start(ctx, logger, rawLogger, os.Stdin, os.Stdout)
}

// Start runs the translation loop until ctx is done or the input ends.
func (r *Run) Start(ctx context.Context, logger *slog.Logger, rawLogger log.RawLogger, stdin io.Reader, stdout io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	path, err := r.Store.Path()
	if err != nil {
		return err
	}
	store, err := eeprom.Open(path)
	if err != nil {
		return err
	}

	pad := resolver.NewKeypad(r.NumLock)
	engine := resolver.New(&resolver.Options{
		Store:   store,
		NumLock: pad,
	})
	if err := engine.Init(); err != nil {
		return err
	}
	engine.SetKanaLED(r.KanaLED)

	src, closeSrc, err := r.openSource(stdin)
	if err != nil {
		return err
	}
	defer closeSrc()

	sink, ledReader, closeSink, err := r.openSink(stdout)
	if err != nil {
		return err
	}
	defer closeSink()

	m := metrics.New()
	m.SetModes(engine.BaseMode(), engine.KanaMode())
	if r.Metrics.Addr != "" {
		go func() {
			if err := m.Serve(ctx, r.Metrics.Addr, logger); err != nil {
				logger.Error("metrics server failed", "error", err)
			}
		}()
	}

	tr := trace.NewTranslator(engine, trace.Options{
		Sink:     sink,
		Raw:      rawLogger,
		Logger:   logger,
		Observer: m,
	})

	var changes <-chan struct{}
	var watchErrs <-chan error
	if r.Watch {
		changes, watchErrs, err = eeprom.Watch(ctx, path)
		if err != nil {
			logger.Warn("EEPROM image is not watched", "path", path, "error", err)
		}
	}

	scans := make(chan matrix.ScanReport)
	readErr := make(chan error, 1)
	go func() {
		defer close(scans)
		for {
			s, err := src.Next()
			if err != nil {
				readErr <- err
				return
			}
			select {
			case scans <- s:
			case <-ctx.Done():
				return
			}
		}
	}()

	var leds <-chan uint8
	if ledReader != nil {
		leds = readLEDs(ctx, ledReader)
	}

	logger.Info("Translating scan reports",
		"eeprom", path,
		"base", engine.BaseMode(),
		"kana", engine.KanaMode(),
	)

	for {
		select {
		case <-ctx.Done():
			logger.Info("Shutting down")
			return nil
		case s, ok := <-scans:
			if !ok {
				err := <-readErr
				if errors.Is(err, io.EOF) {
					logger.Info("Input closed")
					return nil
				}
				return fmt.Errorf("read scan report: %w", err)
			}
			if err := tr.Step(s); err != nil {
				return err
			}
		case _, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			if err := engine.Reload(); err != nil {
				logger.Error("failed to reload layouts", "path", path, "error", err)
				continue
			}
			tr.Reset()
			m.Reload()
			m.SetModes(engine.BaseMode(), engine.KanaMode())
			logger.Info("Layouts reloaded", "base", engine.BaseMode(), "kana", engine.KanaMode())
		case b, ok := <-leds:
			if !ok {
				leds = nil
				continue
			}
			state := keyboard.ParseLEDs(b)
			pad.SetEnabled(state.NumLock)
			logger.Debug("Host LEDs changed",
				"numLock", state.NumLock,
				"indicator", fmt.Sprintf("%02x", engine.ControlKanaLED(b)),
			)
		case err, ok := <-watchErrs:
			if !ok {
				watchErrs = nil
				continue
			}
			logger.Warn("EEPROM watch error", "error", err)
		}
	}
}

func (r *Run) openSource(stdin io.Reader) (trace.Source, func(), error) {
	if r.Serial.Port != "" {
		port, err := serial.Open(r.Serial.Port, &serial.Mode{
			BaudRate: r.Serial.Baud,
			DataBits: 8,
			Parity:   serial.NoParity,
			StopBits: serial.OneStopBit,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("open serial port %s: %w", r.Serial.Port, err)
		}
		return trace.NewFrameReader(port), func() { _ = port.Close() }, nil
	}
	if r.Input == "" || r.Input == "-" {
		return trace.NewHexReader(stdin), func() {}, nil
	}
	f, err := os.Open(r.Input)
	if err != nil {
		return nil, nil, err
	}
	return trace.NewHexReader(f), func() { _ = f.Close() }, nil
}

// openSink returns the report sink and, with host LEDs enabled, the reader
// the host's LED output reports arrive on.
func (r *Run) openSink(stdout io.Writer) (trace.Sink, io.Reader, func(), error) {
	if r.Output == "" {
		return trace.HexSink{W: stdout}, nil, func() {}, nil
	}
	flags := os.O_WRONLY | os.O_CREATE | os.O_APPEND
	if r.HostLED {
		flags = os.O_RDWR | os.O_CREATE | os.O_APPEND
	}
	f, err := os.OpenFile(r.Output, flags, 0o644)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open output: %w", err)
	}
	var leds io.Reader
	if r.HostLED {
		leds = f
	}
	return trace.RawSink{W: f}, leds, func() { _ = f.Close() }, nil
}

// readLEDs forwards every LED output report byte read from r until it fails.
func readLEDs(ctx context.Context, r io.Reader) <-chan uint8 {
	ch := make(chan uint8)
	go func() {
		defer close(ch)
		buf := make([]byte, 1)
		for {
			if _, err := io.ReadFull(r, buf); err != nil {
				return
			}
			select {
			case ch <- buf[0]:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}
