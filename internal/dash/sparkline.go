package dash

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille character rendering for the latency and SLA charts.
//
// Braille patterns use a 2x4 dot matrix per character, so each character
// column carries two data points at four vertical levels per row. Unicode
// braille starts at U+2800 (empty) with one bit per dot.

const brailleBase = '⠀'

// brailleDots maps row/column to the bit offset for the braille pattern.
// [row][col] where row is 0-3 (top to bottom) and col is 0-1.
var brailleDots = [4][2]uint8{
	{0, 3}, // Row 0: dots 1 and 4
	{1, 4}, // Row 1: dots 2 and 5
	{2, 5}, // Row 2: dots 3 and 6
	{6, 7}, // Row 3: dots 7 and 8
}

// RenderGapSparkline plots a nil-aware series as a braille sparkline.
// A nil entry leaves its column empty instead of plotting zero, so gaps in
// the data stay visually distinct from low values.
//
//   - values: samples to plot, nil meaning "no data"
//   - width: number of braille characters (each covers 2 samples)
//   - height: number of character rows (each covers 4 vertical levels)
//   - color: series color
func RenderGapSparkline(values []*float64, width, height int, color lipgloss.Color) string {
	if len(values) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	minVal, maxVal, any := seriesRange(values)
	if !any {
		// Nothing but gaps: render empty rows at the requested size.
		empty := strings.Repeat(string(brailleBase), width)
		rows := make([]string, height)
		for i := range rows {
			rows[i] = MutedStyle.Render(empty)
		}
		return strings.Join(rows, "\n")
	}

	targetPoints := width * 2
	resampled := values
	if len(values) > targetPoints {
		resampled = resampleSeries(values, targetPoints)
	}

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = make([]rune, width)
		for j := range grid[i] {
			grid[i][j] = brailleBase
		}
	}

	totalDots := height * 4

	// Right-align when the series is shorter than the plot.
	offset := targetPoints - len(resampled)
	if offset < 0 {
		offset = 0
	}

	for i, val := range resampled {
		if val == nil {
			continue
		}

		normalized := normalize(*val, minVal, maxVal)
		dotHeight := int(normalized * float64(totalDots))
		if dotHeight > totalDots {
			dotHeight = totalDots
		}
		if dotHeight < 1 {
			dotHeight = 1 // a present sample always shows at least one dot
		}

		charCol := (i + offset) / 2
		if charCol >= width {
			continue
		}
		subCol := (i + offset) % 2

		// Fill dots from the bottom up
		for dot := 0; dot < dotHeight; dot++ {
			row := height - 1 - (dot / 4)
			if row < 0 {
				continue
			}
			subRow := 3 - (dot % 4)
			grid[row][charCol] |= rune(1 << brailleDots[subRow][subCol])
		}
	}

	style := lipgloss.NewStyle().Foreground(color)
	lines := make([]string, height)
	for i, row := range grid {
		lines[i] = style.Render(string(row))
	}
	return strings.Join(lines, "\n")
}

// seriesRange finds the min and max over the non-nil samples. The any flag
// is false when the series is all gaps.
func seriesRange(values []*float64) (minVal, maxVal float64, any bool) {
	for _, v := range values {
		if v == nil {
			continue
		}
		if !any {
			minVal, maxVal = *v, *v
			any = true
			continue
		}
		if *v < minVal {
			minVal = *v
		}
		if *v > maxVal {
			maxVal = *v
		}
	}
	return minVal, maxVal, any
}

// normalize converts a value to the 0-1 range given min/max bounds.
func normalize(val, minVal, maxVal float64) float64 {
	if maxVal > minVal {
		return (val - minVal) / (maxVal - minVal)
	}
	return 0.5
}

// resampleSeries downsamples to targetSize buckets, keeping the max present
// sample per bucket so spikes survive compression. A bucket with only gaps
// stays a gap.
func resampleSeries(values []*float64, targetSize int) []*float64 {
	if len(values) == 0 || targetSize <= 0 {
		return nil
	}
	if len(values) <= targetSize {
		return values
	}

	result := make([]*float64, targetSize)
	bucketSize := float64(len(values)) / float64(targetSize)

	for i := 0; i < targetSize; i++ {
		start := int(float64(i) * bucketSize)
		end := int(float64(i+1) * bucketSize)
		if end > len(values) {
			end = len(values)
		}
		if start >= end {
			start = end - 1
		}

		var bucketMax *float64
		for j := start; j < end; j++ {
			if values[j] == nil {
				continue
			}
			if bucketMax == nil || *values[j] > *bucketMax {
				v := *values[j]
				bucketMax = &v
			}
		}
		result[i] = bucketMax
	}

	return result
}
