package dash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ronaldocrispimsg/SistemaMonitoramentoDeRede-NOC/internal/api"
)

func TestBucketFor(t *testing.T) {
	tests := []struct {
		name    string
		latency *float64
		expect  LatencyBucket
	}{
		{"nil is no-data", nil, BucketNoData},
		{"zero is fast", f64(0), BucketFast},
		{"just under fast threshold", f64(49.9), BucketFast},
		{"at fast threshold", f64(50), BucketMid},
		{"just under mid threshold", f64(149.9), BucketMid},
		{"at mid threshold", f64(150), BucketSlow},
		{"very slow", f64(2000), BucketSlow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, BucketFor(tt.latency))
		})
	}
}

func TestBucket_String(t *testing.T) {
	assert.Equal(t, "fast", BucketFast.String())
	assert.Equal(t, "mid", BucketMid.String())
	assert.Equal(t, "slow", BucketSlow.String())
	assert.Equal(t, "no-data", BucketNoData.String())
}

func TestRenderHeatmap(t *testing.T) {
	cells := []api.HeatmapCell{
		{Time: "12:00", Latency: f64(10)},
		{Time: "12:01", Latency: nil},
		{Time: "12:02", Latency: f64(300)},
	}

	out := renderHeatmap(cells, 20)

	// One filled cell per reachable sample, a hollow cell for the gap.
	assert.Equal(t, 2, strings.Count(out, heatCellFilled)-strings.Count(heatmapLegend(), heatCellFilled))
	assert.Contains(t, out, heatCellEmpty)
	assert.Contains(t, out, "no data")
	assert.Contains(t, out, "<50ms")
}

func TestRenderHeatmap_WrapsRows(t *testing.T) {
	var cells []api.HeatmapCell
	for i := 0; i < 25; i++ {
		cells = append(cells, api.HeatmapCell{Latency: f64(10)})
	}

	out := renderHeatmap(cells, 10)

	// 25 cells at width 10 wrap to 3 rows, plus the legend line.
	assert.Len(t, strings.Split(out, "\n"), 4)
}

func TestRenderHeatmap_KeepsNewestWhenOverflowing(t *testing.T) {
	var cells []api.HeatmapCell
	for i := 0; i < 100; i++ {
		cells = append(cells, api.HeatmapCell{Latency: f64(10)})
	}

	out := renderHeatmap(cells, 10)

	// Capped at heatmapMaxRows of cells plus the legend.
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, heatmapMaxRows+1)
}

func TestRenderHeatmap_Empty(t *testing.T) {
	assert.Contains(t, renderHeatmap(nil, 20), "no samples")
}
