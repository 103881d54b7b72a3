package dash

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ronaldocrispimsg/SistemaMonitoramentoDeRede-NOC/internal/api"
)

// defaultWidth is used before the first WindowSizeMsg arrives.
const defaultWidth = 80

// renderDashboard assembles the whole screen: header, notices, cards, footer.
func (m Model) renderDashboard() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}

	var sections []string
	sections = append(sections, m.renderHeader(width))

	if notices := renderNotices(m.notices); notices != "" {
		sections = append(sections, notices)
	}

	names := m.registry.Names()
	if len(names) == 0 {
		sections = append(sections, MutedStyle.Render("  waiting for hosts..."))
	}
	for i, name := range names {
		card := m.registry.Lookup(name)
		sections = append(sections, m.renderCard(card, i == m.selected, width))
		if m.edit != nil && m.edit.Host == name {
			sections = append(sections, m.edit.View(width-4))
		}
	}

	sections = append(sections, m.renderFooter(width))
	return strings.Join(sections, "\n")
}

// renderHeader renders the title bar with host count, last refresh time and
// any poller errors.
func (m Model) renderHeader(width int) string {
	title := HeaderStyle.Render("NOC " + MutedStyle.Render("host monitor"))

	status := fmt.Sprintf("%d hosts", m.registry.Len())
	if !m.lastUpdate.IsZero() {
		status += " · updated " + m.lastUpdate.Format("15:04:05")
	}
	right := MutedStyle.Render(status)

	pad := width - lipgloss.Width(title) - lipgloss.Width(right)
	if pad < 1 {
		pad = 1
	}
	header := title + strings.Repeat(" ", pad) + right

	var errLines []string
	if m.listErr != "" {
		errLines = append(errLines, InlineErrorStyle.Render("  hosts: "+m.listErr))
	}
	if m.alertErr != "" {
		errLines = append(errLines, InlineErrorStyle.Render("  alerts: "+m.alertErr))
	}
	if len(errLines) > 0 {
		header += "\n" + strings.Join(errLines, "\n")
	}
	return header
}

// renderCard renders one host card with its summary and any open panels.
func (m Model) renderCard(card *Card, selected bool, width int) string {
	innerWidth := width - 6
	if innerWidth < chartMinWidth {
		innerWidth = chartMinWidth
	}

	var b strings.Builder
	b.WriteString(m.renderCardTitle(card))
	b.WriteString("\n")
	b.WriteString(renderMetricsLine(card.Snapshot))
	b.WriteString("\n")

	if card.SummaryErr != "" {
		b.WriteString(InlineErrorStyle.Render(card.SummaryErr))
	} else {
		b.WriteString(renderSummary(card.Summary))
	}

	for _, kind := range widgetKinds {
		panel := m.renderPanel(card, kind, innerWidth)
		if panel != "" {
			b.WriteString("\n\n")
			b.WriteString(panel)
		}
	}

	style := CardStyle
	if selected {
		style = CardSelectedStyle
	}
	if card.Stale {
		style = style.BorderForeground(ColorTextMuted)
	}
	return style.Width(width - 2).Render(b.String())
}

// renderCardTitle renders the card's first line: status indicator, name,
// endpoint and severity.
func (m Model) renderCardTitle(card *Card) string {
	snap := card.Snapshot

	name := HostNameStyle.Render(card.Name)
	if card.Stale {
		name = StaleHostStyle.Render(card.Name) + MutedStyle.Render(" (stale)")
	}

	parts := []string{
		StatusIndicator(snap.Status),
		name,
		MutedStyle.Render(snap.Endpoint()),
		SeverityStyle(snap.Severity).Render(string(snap.Severity)),
	}
	return strings.Join(parts, " ")
}

// renderMetricsLine renders the snapshot's health score and per-probe SLA.
func renderMetricsLine(snap api.HostSnapshot) string {
	health := lipgloss.NewStyle().
		Foreground(HealthColor(snap.HealthScore)).
		Render(fmt.Sprintf("health %.0f", snap.HealthScore))

	parts := []string{health}
	for _, probe := range []api.ProbeType{api.ProbePing, api.ProbeTCP, api.ProbeHTTP} {
		if sla := snap.SLA(probe); sla != nil {
			parts = append(parts, MutedStyle.Render(fmt.Sprintf("%s %.1f%%", probeLabel(probe), *sla)))
		}
	}
	return strings.Join(parts, "  ")
}

// renderPanel renders one widget panel, or "" when the widget is Hidden.
func (m Model) renderPanel(card *Card, kind WidgetKind, width int) string {
	switch card.Visibility(kind) {
	case Hidden:
		return ""
	case Loading:
		return PanelTitleStyle.Render(kind.String()) + "\n" + MutedStyle.Render("loading...")
	}

	body := m.renderPanelBody(card, kind, width)
	if msg := card.WidgetError(kind); msg != "" {
		body = InlineErrorStyle.Render(msg) + "\n" + body
	}
	return PanelTitleStyle.Render(kind.String()) + "\n" + body
}

// renderPanelBody renders the content of a Visible widget.
func (m Model) renderPanelBody(card *Card, kind WidgetKind, width int) string {
	switch kind {
	case WidgetHistory:
		return renderHistory(card.History)
	case WidgetHeatmap:
		return renderHeatmap(card.Heatmap, width)
	case WidgetLatencyChart:
		return renderChart(m.charts, card.Name, ChartLatency, width)
	case WidgetSLAChart:
		return renderChart(m.charts, card.Name, ChartSLA, width)
	}
	return ""
}

// renderChart renders the live handle for (host, kind), or a placeholder when
// no handle has been bound yet.
func renderChart(charts *Table, host string, kind ChartKind, width int) string {
	handle := charts.Lookup(host, kind)
	if handle == nil || handle.Released() {
		return MutedStyle.Render("no data yet")
	}
	return handle.View(width)
}

// renderFooter renders the key help line.
func (m Model) renderFooter(width int) string {
	help := "↑/↓ select · h history · l latency · s sla · m heatmap · e edit · r refresh · q quit"
	if m.edit != nil {
		help = "enter save · esc cancel · tab next field"
	}
	return FooterStyle.Width(width).Render(help)
}
