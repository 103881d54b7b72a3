package dash

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ronaldocrispimsg/SistemaMonitoramentoDeRede-NOC/internal/api"
)

// Latency buckets for heatmap cells. NoData is its own bucket: an
// unreachable sample must stay distinguishable from any latency class.
type LatencyBucket int

const (
	BucketNoData LatencyBucket = iota
	BucketFast                 // < 50ms
	BucketMid                  // < 150ms
	BucketSlow                 // >= 150ms
)

// Bucket thresholds in milliseconds.
const (
	fastThresholdMs = 50
	midThresholdMs  = 150
)

// String returns the bucket's display class.
func (b LatencyBucket) String() string {
	switch b {
	case BucketFast:
		return "fast"
	case BucketMid:
		return "mid"
	case BucketSlow:
		return "slow"
	default:
		return "no-data"
	}
}

// BucketFor classifies a latency sample. A nil latency is NoData.
func BucketFor(latency *float64) LatencyBucket {
	if latency == nil {
		return BucketNoData
	}
	switch {
	case *latency < fastThresholdMs:
		return BucketFast
	case *latency < midThresholdMs:
		return BucketMid
	default:
		return BucketSlow
	}
}

// bucketColor returns the cell color for a bucket.
func bucketColor(b LatencyBucket) lipgloss.Color {
	switch b {
	case BucketFast:
		return ColorHeatFast
	case BucketMid:
		return ColorHeatMid
	case BucketSlow:
		return ColorHeatSlow
	default:
		return ColorHeatNoData
	}
}

// Heatmap cell glyphs. NoData uses a hollow cell so the gap reads as absence
// rather than as a good (fast) sample.
const (
	heatCellFilled = "■"
	heatCellEmpty  = "□"
)

// renderHeatCell renders one styled heatmap cell.
func renderHeatCell(b LatencyBucket) string {
	glyph := heatCellFilled
	if b == BucketNoData {
		glyph = heatCellEmpty
	}
	return lipgloss.NewStyle().Foreground(bucketColor(b)).Render(glyph)
}

// renderHeatmap renders the samples as rows of cells, most recent last,
// wrapping at width cells per row, followed by a bucket legend.
func renderHeatmap(cells []api.HeatmapCell, width int) string {
	if width < 8 {
		width = 8
	}
	if len(cells) == 0 {
		return MutedStyle.Render("no samples yet")
	}

	// Keep only the newest samples that fit in the panel.
	maxCells := width * heatmapMaxRows
	if len(cells) > maxCells {
		cells = cells[len(cells)-maxCells:]
	}

	var rows []string
	var row strings.Builder
	count := 0
	for _, cell := range cells {
		row.WriteString(renderHeatCell(BucketFor(cell.Latency)))
		count++
		if count == width {
			rows = append(rows, row.String())
			row.Reset()
			count = 0
		}
	}
	if count > 0 {
		rows = append(rows, row.String())
	}

	rows = append(rows, heatmapLegend())
	return strings.Join(rows, "\n")
}

// heatmapMaxRows caps the number of cell rows per heatmap panel.
const heatmapMaxRows = 4

// heatmapLegend renders the bucket key shown under every heatmap.
func heatmapLegend() string {
	parts := []string{
		renderHeatCell(BucketFast) + MutedStyle.Render(" <50ms"),
		renderHeatCell(BucketMid) + MutedStyle.Render(" <150ms"),
		renderHeatCell(BucketSlow) + MutedStyle.Render(" ≥150ms"),
		renderHeatCell(BucketNoData) + MutedStyle.Render(" no data"),
	}
	return strings.Join(parts, "  ")
}
