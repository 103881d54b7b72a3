package dash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_EnsureCreatesOnce(t *testing.T) {
	r := NewRegistry()

	card, created := r.Ensure("web1")
	require.NotNil(t, card)
	assert.True(t, created)
	assert.Equal(t, "web1", card.Name)

	again, created := r.Ensure("web1")
	assert.False(t, created)
	assert.Same(t, card, again)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_OrderIsFirstSighting(t *testing.T) {
	r := NewRegistry()
	r.Ensure("zeta")
	r.Ensure("alpha")
	r.Ensure("mid")
	r.Ensure("alpha")

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, r.Names())
}

func TestRegistry_LookupUnknown(t *testing.T) {
	r := NewRegistry()
	assert.Nil(t, r.Lookup("ghost"))
}

func TestRegistry_MarkAllStale(t *testing.T) {
	r := NewRegistry()
	a, _ := r.Ensure("a")
	b, _ := r.Ensure("b")

	r.MarkAllStale()
	assert.True(t, a.Stale)
	assert.True(t, b.Stale)
}

func TestCard_VisibilityDefaultsHidden(t *testing.T) {
	card := newCard("web1")

	for _, kind := range widgetKinds {
		assert.Equal(t, Hidden, card.Visibility(kind))
	}
	assert.Empty(t, card.OpenWidgets())
}

func TestCard_OpenWidgetsInDisplayOrder(t *testing.T) {
	card := newCard("web1")
	card.SetVisibility(WidgetHeatmap, Visible)
	card.SetVisibility(WidgetHistory, Visible)
	card.SetVisibility(WidgetSLAChart, Loading) // not open yet

	assert.Equal(t, []WidgetKind{WidgetHistory, WidgetHeatmap}, card.OpenWidgets())
}

func TestCard_WidgetErrors(t *testing.T) {
	card := newCard("web1")

	assert.Empty(t, card.WidgetError(WidgetHistory))
	card.SetWidgetError(WidgetHistory, "fetch failed")
	assert.Equal(t, "fetch failed", card.WidgetError(WidgetHistory))

	card.SetWidgetError(WidgetHistory, "")
	assert.Empty(t, card.WidgetError(WidgetHistory))
}

func TestVisibility_String(t *testing.T) {
	assert.Equal(t, "hidden", Hidden.String())
	assert.Equal(t, "loading", Loading.String())
	assert.Equal(t, "visible", Visible.String())
}

func TestWidgetKind_String(t *testing.T) {
	assert.Equal(t, "history", WidgetHistory.String())
	assert.Equal(t, "latency", WidgetLatencyChart.String())
	assert.Equal(t, "sla", WidgetSLAChart.String())
	assert.Equal(t, "heatmap", WidgetHeatmap.String())
}
