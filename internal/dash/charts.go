package dash

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ChartKind identifies which chart a handle renders for a host.
type ChartKind int

const (
	ChartLatency ChartKind = iota
	ChartSLA
)

// String returns a human-readable label for the chart kind.
func (k ChartKind) String() string {
	switch k {
	case ChartLatency:
		return "latency"
	case ChartSLA:
		return "sla"
	default:
		return "unknown"
	}
}

// chartKey addresses one handle in the table.
type chartKey struct {
	host string
	kind ChartKind
}

// ChartSeries is one plotted series: a label plus values parallel to the
// dataset's label axis. A nil value is a genuine gap ("no data"), never zero.
type ChartSeries struct {
	Label  string
	Color  lipgloss.Color
	Values []*float64
}

// ChartDataset is the data bound to a chart handle: a shared label axis and
// one or more series parallel to it.
type ChartDataset struct {
	Labels []string
	Series []ChartSeries
}

// Handle is the live rendering resource for one (host, kind) pair. At most
// one live handle exists per key; Table.Bind releases the prior handle
// before constructing its replacement.
type Handle struct {
	host     string
	kind     ChartKind
	dataset  ChartDataset
	gen      uint64
	released bool
}

// Released reports whether this handle has been replaced.
func (h *Handle) Released() bool {
	return h.released
}

// Generation returns the handle's creation sequence number. Useful for
// asserting that a reconcile pass did not silently rebind a chart.
func (h *Handle) Generation() uint64 {
	return h.gen
}

// Dataset returns the data this handle renders.
func (h *Handle) Dataset() ChartDataset {
	return h.dataset
}

// release marks the handle dead. A released handle renders nothing.
func (h *Handle) release() {
	h.released = true
}

// View renders the chart into a block of the given width: one sparkline row
// group per series plus a legend line with the most recent values.
func (h *Handle) View(width int) string {
	if h.released || width < chartMinWidth {
		return ""
	}

	var lines []string
	for _, s := range h.dataset.Series {
		legend := h.legendLine(s, width)
		lines = append(lines, legend)
		lines = append(lines, RenderGapSparkline(s.Values, width, chartRowHeight, s.Color))
	}

	if len(h.dataset.Labels) > 0 {
		lines = append(lines, h.axisLine(width))
	}

	return strings.Join(lines, "\n")
}

// legendLine renders a series label with its latest non-nil value right-aligned.
func (h *Handle) legendLine(s ChartSeries, width int) string {
	label := lipgloss.NewStyle().Foreground(s.Color).Render(s.Label)

	latest := "---"
	for i := len(s.Values) - 1; i >= 0; i-- {
		if s.Values[i] != nil {
			latest = fmt.Sprintf("%.1f", *s.Values[i])
			break
		}
	}
	value := ValueStyle.Render(latest)

	pad := width - lipgloss.Width(label) - lipgloss.Width(value)
	if pad < 1 {
		pad = 1
	}
	return label + strings.Repeat(" ", pad) + value
}

// axisLine renders the first and last time labels under the plot.
func (h *Handle) axisLine(width int) string {
	first := h.dataset.Labels[0]
	last := h.dataset.Labels[len(h.dataset.Labels)-1]

	pad := width - len(first) - len(last)
	if pad < 1 {
		return MutedStyle.Render(last)
	}
	return MutedStyle.Render(first + strings.Repeat(" ", pad) + last)
}

// Chart layout constants
const (
	chartRowHeight = 2 // braille rows per series
	chartMinWidth  = 10
)

// Table owns every chart handle, keyed by (host, kind). Replacement is a
// single atomic swap: callers only ever see Bind, never a separate release
// step, so a binding can never leak the prior handle.
type Table struct {
	handles map[chartKey]*Handle
	nextGen uint64
}

// NewTable creates an empty chart handle table.
func NewTable() *Table {
	return &Table{
		handles: make(map[chartKey]*Handle),
	}
}

// Bind installs a new handle for (host, kind) bound to the given dataset.
// Any prior handle for the key is released first; binding without releasing
// would corrupt the shared rendering surface.
func (t *Table) Bind(host string, kind ChartKind, dataset ChartDataset) *Handle {
	key := chartKey{host: host, kind: kind}

	if prior, ok := t.handles[key]; ok {
		prior.release()
	}

	t.nextGen++
	handle := &Handle{
		host:    host,
		kind:    kind,
		dataset: dataset,
		gen:     t.nextGen,
	}
	t.handles[key] = handle
	return handle
}

// Lookup returns the live handle for (host, kind), or nil when none exists.
func (t *Table) Lookup(host string, kind ChartKind) *Handle {
	return t.handles[chartKey{host: host, kind: kind}]
}

// Len returns the number of live handles.
func (t *Table) Len() int {
	return len(t.handles)
}
