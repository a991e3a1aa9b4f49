// Package metrics exposes Prometheus collectors for the translation loop.
package metrics

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Alia5/kanamatrix/layout"
	"github.com/Alia5/kanamatrix/resolver"
)

const namespace = "kanamatrix"

// Metrics holds the collectors of one run. They live on a private registry
// so tests and several runs in one process do not collide.
type Metrics struct {
	registry   *prometheus.Registry
	scanCycles prometheus.Counter
	transmits  *prometheus.CounterVec
	reloads    prometheus.Counter
	baseMode   prometheus.Gauge
	kanaMode   prometheus.Gauge
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Metrics{
		registry: reg,
		scanCycles: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scan_cycles_total",
			Help:      "Scan reports read from the matrix source.",
		}),
		transmits: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transmits_total",
			Help:      "Keyboard reports resolved, by transmit class.",
		}, []string{"class"}),
		reloads: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mode_reloads_total",
			Help:      "Times the modes were reloaded from the EEPROM image.",
		}),
		baseMode: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "base_mode",
			Help:      "Active base layout.",
		}),
		kanaMode: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "kana_mode",
			Help:      "Active kana layout, 0 for romaji.",
		}),
	}
}

func (m *Metrics) ScanCycle() { m.scanCycles.Inc() }

func (m *Metrics) Transmit(x resolver.Xmit) { m.transmits.WithLabelValues(x.String()).Inc() }

func (m *Metrics) Reload() { m.reloads.Inc() }

func (m *Metrics) SetModes(base layout.BaseMode, kana layout.KanaMode) {
	m.baseMode.Set(float64(base))
	m.kanaMode.Set(float64(kana))
}

// Registry returns the registry the collectors are registered on.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the collectors in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is done.
func (m *Metrics) Serve(ctx context.Context, addr string, logger *slog.Logger) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return m.serve(ctx, ln, logger)
}

func (m *Metrics) serve(ctx context.Context, ln net.Listener, logger *slog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	logger.Info("Serving metrics", "addr", ln.Addr().String())

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		<-errCh
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
