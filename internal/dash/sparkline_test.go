package dash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderGapSparkline_Dimensions(t *testing.T) {
	values := []*float64{f64(1), f64(2), f64(3), f64(4)}

	out := RenderGapSparkline(values, 10, 2, ColorSeriesPing)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Equal(t, 10, len([]rune(line)))
	}
}

func TestRenderGapSparkline_GapsStayEmpty(t *testing.T) {
	// Two samples with a gap between them: the gap column must stay blank
	// instead of plotting zero.
	values := []*float64{f64(100), nil, f64(100), nil}

	out := RenderGapSparkline(values, 2, 1, ColorSeriesPing)

	runes := []rune(out)
	require.Len(t, runes, 2)
	// Column 0 carries samples 0-1 (sample, gap), column 1 carries 2-3.
	// Each braille cell keeps its right half (the gap sub-column) empty.
	for _, r := range runes {
		assert.NotEqual(t, brailleBase, r, "present samples must plot dots")
	}
}

func TestRenderGapSparkline_AllGaps(t *testing.T) {
	values := []*float64{nil, nil, nil, nil}

	out := RenderGapSparkline(values, 4, 2, ColorSeriesPing)

	for _, line := range strings.Split(out, "\n") {
		for _, r := range line {
			assert.Equal(t, brailleBase, r)
		}
	}
}

func TestRenderGapSparkline_Degenerate(t *testing.T) {
	assert.Empty(t, RenderGapSparkline(nil, 10, 2, ColorSeriesPing))
	assert.Empty(t, RenderGapSparkline([]*float64{f64(1)}, 0, 2, ColorSeriesPing))
	assert.Empty(t, RenderGapSparkline([]*float64{f64(1)}, 10, 0, ColorSeriesPing))
}

func TestRenderGapSparkline_MinimumDot(t *testing.T) {
	// The lowest present sample still renders at least one dot, so a flat
	// series is visible rather than blank.
	values := []*float64{f64(5), f64(5)}

	out := RenderGapSparkline(values, 1, 1, ColorSeriesPing)
	assert.NotEqual(t, string(brailleBase), out)
}

func TestResampleSeries(t *testing.T) {
	// Max-per-bucket: the spike survives downsampling.
	var values []*float64
	for i := 0; i < 100; i++ {
		values = append(values, f64(1))
	}
	values[57] = f64(500)

	result := resampleSeries(values, 10)
	require.Len(t, result, 10)

	var max float64
	for _, v := range result {
		require.NotNil(t, v)
		if *v > max {
			max = *v
		}
	}
	assert.Equal(t, 500.0, max)
}

func TestResampleSeries_GapBucketsStayGaps(t *testing.T) {
	// A bucket containing only gaps resamples to a gap.
	values := make([]*float64, 100)
	for i := 0; i < 50; i++ {
		values[i] = f64(1)
	}

	result := resampleSeries(values, 10)
	require.Len(t, result, 10)
	assert.NotNil(t, result[0])
	assert.Nil(t, result[9])
}

func TestSeriesRange(t *testing.T) {
	_, _, any := seriesRange([]*float64{nil, nil})
	assert.False(t, any)

	minVal, maxVal, any := seriesRange([]*float64{f64(3), nil, f64(9), f64(1)})
	assert.True(t, any)
	assert.Equal(t, 1.0, minVal)
	assert.Equal(t, 9.0, maxVal)
}
