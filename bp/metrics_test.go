package bp_test

import (
	"testing"

	"github.com/katalvlaran/ldpc/bp"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

// findMetric returns the series of family name whose labels include want.
func findMetric(t *testing.T, reg *prometheus.Registry, name string, want map[string]string) *dto.Metric {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	series:
		for _, m := range mf.GetMetric() {
			got := map[string]string{}
			for _, lp := range m.GetLabel() {
				got[lp.GetName()] = lp.GetValue()
			}
			for k, v := range want {
				if got[k] != v {
					continue series
				}
			}
			return m
		}
	}
	return nil
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := bp.NewMetrics(reg)
	require.NoError(t, err)

	d := mustDecoder(t, repetition3(t), bp.WithErrorRate(0.1), bp.WithMetrics(m))
	for i := 0; i < 3; i++ {
		_, err = d.Decode([]uint8{1, 1}) // converges in 2
		require.NoError(t, err)
	}
	require.NoError(t, d.SetMaxIter(1))
	_, err = d.Decode([]uint8{1, 1})
	require.NoError(t, err)

	ok := findMetric(t, reg, "ldpc_bp_decodes_total",
		map[string]string{"method": "sum_product", "schedule": "parallel", "converged": "true"})
	require.NotNil(t, ok)
	require.Equal(t, 3.0, ok.GetCounter().GetValue())

	failed := findMetric(t, reg, "ldpc_bp_decodes_total", map[string]string{"converged": "false"})
	require.NotNil(t, failed)
	require.Equal(t, 1.0, failed.GetCounter().GetValue())

	hist := findMetric(t, reg, "ldpc_bp_iterations", map[string]string{"method": "sum_product"})
	require.NotNil(t, hist)
	require.Equal(t, uint64(4), hist.GetHistogram().GetSampleCount())
	require.Equal(t, 7.0, hist.GetHistogram().GetSampleSum())
}

func TestMetrics_Shared(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := bp.NewMetrics(reg)
	require.NoError(t, err)

	sp := mustDecoder(t, repetition3(t), bp.WithErrorRate(0.1), bp.WithMetrics(m))
	ms := mustDecoder(t, repetition3(t), bp.WithErrorRate(0.1), bp.WithMetrics(m),
		bp.WithMethod(bp.MinSum), bp.WithSchedule(bp.Serial))
	_, err = sp.Decode([]uint8{0, 0})
	require.NoError(t, err)
	_, err = ms.Decode([]uint8{0, 0})
	require.NoError(t, err)

	got := findMetric(t, reg, "ldpc_bp_decodes_total", map[string]string{"method": "min_sum", "schedule": "serial"})
	require.NotNil(t, got)
	require.Equal(t, 1.0, got.GetCounter().GetValue())
}

func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := bp.NewMetrics(reg)
	require.NoError(t, err)
	_, err = bp.NewMetrics(reg)
	require.Error(t, err)

	m, err := bp.NewMetrics(nil)
	require.NoError(t, err)
	require.NotNil(t, m)
}
