package dash

import (
	"github.com/ronaldocrispimsg/SistemaMonitoramentoDeRede-NOC/internal/api"
)

// WidgetKind identifies one of the lazily-loaded views attached to a card.
type WidgetKind int

const (
	WidgetHistory WidgetKind = iota
	WidgetLatencyChart
	WidgetSLAChart
	WidgetHeatmap
)

// widgetKinds lists every widget kind, in display order.
var widgetKinds = []WidgetKind{WidgetHistory, WidgetLatencyChart, WidgetSLAChart, WidgetHeatmap}

// String returns a human-readable label for the widget kind.
func (k WidgetKind) String() string {
	switch k {
	case WidgetHistory:
		return "history"
	case WidgetLatencyChart:
		return "latency"
	case WidgetSLAChart:
		return "sla"
	case WidgetHeatmap:
		return "heatmap"
	default:
		return "unknown"
	}
}

// Visibility is the lifecycle state of one widget on one card.
//
// Hidden -> Loading -> Visible, and Visible -> Hidden. A widget that fails
// its fetch still lands in Visible with an inline error, so a toggle never
// flaps back on failure.
type Visibility int

const (
	Hidden Visibility = iota
	Loading
	Visible
)

// String returns a human-readable label for the visibility state.
func (v Visibility) String() string {
	switch v {
	case Hidden:
		return "hidden"
	case Loading:
		return "loading"
	case Visible:
		return "visible"
	default:
		return "unknown"
	}
}

// Card is the client-owned state for one host. Created on first sighting of
// the host name in a snapshot list and never destroyed automatically: a host
// that drops out of a later list is only flagged stale.
type Card struct {
	Name     string
	Snapshot api.HostSnapshot

	// Stale marks a card whose host was absent from the most recent
	// snapshot list. Stale cards render dimmed and are skipped by
	// widget refreshes until the host reappears.
	Stale bool

	// Summary is the always-visible latest check result. A failed summary
	// fetch sets SummaryErr without touching the previous content.
	Summary    *api.CheckResponse
	SummaryErr string

	// History and Heatmap hold the content of their panels; chart widgets
	// keep their datasets inside the chart handle table instead.
	History []api.CheckRecord
	Heatmap []api.HeatmapCell

	visibility map[WidgetKind]Visibility
	widgetErr  map[WidgetKind]string
}

// newCard creates a card with every widget Hidden.
func newCard(name string) *Card {
	return &Card{
		Name:       name,
		visibility: make(map[WidgetKind]Visibility),
		widgetErr:  make(map[WidgetKind]string),
	}
}

// Visibility returns the state of one widget. Unknown widgets are Hidden.
func (c *Card) Visibility(kind WidgetKind) Visibility {
	return c.visibility[kind]
}

// SetVisibility transitions one widget to the given state.
func (c *Card) SetVisibility(kind WidgetKind, v Visibility) {
	c.visibility[kind] = v
}

// WidgetError returns the inline error for one widget, empty when none.
func (c *Card) WidgetError(kind WidgetKind) string {
	return c.widgetErr[kind]
}

// SetWidgetError records an inline error for one widget. An empty message
// clears it.
func (c *Card) SetWidgetError(kind WidgetKind, msg string) {
	if msg == "" {
		delete(c.widgetErr, kind)
		return
	}
	c.widgetErr[kind] = msg
}

// OpenWidgets returns the kinds currently Visible, in display order.
func (c *Card) OpenWidgets() []WidgetKind {
	var open []WidgetKind
	for _, kind := range widgetKinds {
		if c.visibility[kind] == Visible {
			open = append(open, kind)
		}
	}
	return open
}

// Registry is the identity-keyed map from host name to card state. The map,
// not any rendered output, is the authoritative record of which cards exist
// and which widgets are open.
type Registry struct {
	cards map[string]*Card
	order []string // first-sighting order, stable across polls
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		cards: make(map[string]*Card),
	}
}

// Lookup returns the card for a host, or nil if the host has never been seen.
// Fetch completion handlers use this to no-op when their target is gone.
func (r *Registry) Lookup(name string) *Card {
	return r.cards[name]
}

// Ensure returns the card for a host, creating it on first sighting.
// The created flag reports whether this call materialized the card.
func (r *Registry) Ensure(name string) (*Card, bool) {
	if card, ok := r.cards[name]; ok {
		return card, false
	}
	card := newCard(name)
	r.cards[name] = card
	r.order = append(r.order, name)
	return card, true
}

// Names returns all known host names in first-sighting order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Len returns the number of cards in the registry.
func (r *Registry) Len() int {
	return len(r.cards)
}

// MarkAllStale flags every card stale. The reconcile pass clears the flag
// for each host present in the incoming snapshot list.
func (r *Registry) MarkAllStale() {
	for _, card := range r.cards {
		card.Stale = true
	}
}
