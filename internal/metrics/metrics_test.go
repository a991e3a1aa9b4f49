package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Alia5/kanamatrix/internal/metrics"
	"github.com/Alia5/kanamatrix/layout"
	"github.com/Alia5/kanamatrix/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler(t *testing.T) {
	m := metrics.New()
	m.ScanCycle()
	m.ScanCycle()
	m.Transmit(resolver.XmitNormal)
	m.Transmit(resolver.XmitBreak)
	m.Transmit(resolver.XmitNormal)
	m.Reload()
	m.SetModes(layout.BaseJIS, layout.KanaTron)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	for _, line := range []string{
		"kanamatrix_scan_cycles_total 2",
		`kanamatrix_transmits_total{class="normal"} 2`,
		`kanamatrix_transmits_total{class="break"} 1`,
		"kanamatrix_mode_reloads_total 1",
		"kanamatrix_base_mode 3",
		"kanamatrix_kana_mode 4",
	} {
		assert.Contains(t, string(body), line)
	}
}

func TestRegistryIsPrivate(t *testing.T) {
	a, b := metrics.New(), metrics.New()
	a.ScanCycle()

	families, err := b.Registry().Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() == "kanamatrix_scan_cycles_total" {
			assert.Zero(t, f.GetMetric()[0].GetCounter().GetValue())
		}
	}
}
