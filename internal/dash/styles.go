package dash

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ronaldocrispimsg/SistemaMonitoramentoDeRede-NOC/internal/api"
)

// Dashboard color palette
const (
	// Background colors
	ColorDarkBg    = lipgloss.Color("#0A0A0F") // Deep void
	ColorSurfaceBg = lipgloss.Color("#12121A") // Dark surface
	ColorBorder    = lipgloss.Color("#2A2A4A") // Glass border (purple tint)

	// Semantic status colors
	ColorUp       = lipgloss.Color("#39FF14") // Neon green
	ColorDegraded = lipgloss.Color("#FFAA00") // Electric amber
	ColorDown     = lipgloss.Color("#FF0055") // Hot red-pink
	ColorUnknown  = lipgloss.Color("#6B6B8D") // Purple-gray

	// Text colors
	ColorTextPrimary   = lipgloss.Color("#FFFFFF")
	ColorTextSecondary = lipgloss.Color("#B4B4D0")
	ColorTextMuted     = lipgloss.Color("#6B6B8D")

	// Accent colors
	ColorAccent    = lipgloss.Color("#FF2E97") // Neon pink
	ColorAccentDim = lipgloss.Color("#BF40FF") // Neon purple

	// Chart colors, one per probe series
	ColorSeriesPing = lipgloss.Color("#00FFFF") // Neon cyan
	ColorSeriesTCP  = lipgloss.Color("#BF40FF") // Neon purple
	ColorSeriesHTTP = lipgloss.Color("#FFAA00") // Electric amber

	// Heatmap bucket colors
	ColorHeatFast   = lipgloss.Color("#39FF14") // < 50ms
	ColorHeatMid    = lipgloss.Color("#FFAA00") // < 150ms
	ColorHeatSlow   = lipgloss.Color("#FF0055") // >= 150ms
	ColorHeatNoData = lipgloss.Color("#2A2A4A") // unreachable sample
)

// Base styles for the dashboard
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1).
			MarginBottom(1)

	CardSelectedStyle = CardStyle.
				BorderForeground(ColorAccent)

	HostNameStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true)

	StaleHostStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	InlineErrorStyle = lipgloss.NewStyle().
				Foreground(ColorDown)

	PanelTitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	HistoryOKStyle = lipgloss.NewStyle().
			Foreground(ColorUp)

	HistoryFailStyle = lipgloss.NewStyle().
				Foreground(ColorDown)

	NoticeStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			MarginRight(1)
)

// Status indicator characters
const (
	IndicatorUp       = "◉"
	IndicatorDown     = "◌"
	IndicatorDegraded = "◔"
	IndicatorUnknown  = "◐"
)

// StatusColor maps a backend host status to its indicator color.
func StatusColor(s api.Status) lipgloss.Color {
	switch s {
	case api.StatusUp:
		return ColorUp
	case api.StatusDown:
		return ColorDown
	case api.StatusDegraded:
		return ColorDegraded
	default:
		return ColorUnknown
	}
}

// StatusIndicator returns the styled indicator glyph for a host status.
func StatusIndicator(s api.Status) string {
	var glyph string
	switch s {
	case api.StatusUp:
		glyph = IndicatorUp
	case api.StatusDown:
		glyph = IndicatorDown
	case api.StatusDegraded:
		glyph = IndicatorDegraded
	default:
		glyph = IndicatorUnknown
	}
	return lipgloss.NewStyle().Foreground(StatusColor(s)).Render(glyph)
}

// SeverityColor maps a backend severity to a display color.
func SeverityColor(s api.Severity) lipgloss.Color {
	switch s {
	case api.SeverityHealthy:
		return ColorUp
	case api.SeverityWarning, api.SeverityDegraded:
		return ColorDegraded
	case api.SeverityCritical:
		return ColorDown
	default:
		return ColorUnknown
	}
}

// SeverityStyle returns a style colored for the given severity.
func SeverityStyle(s api.Severity) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(SeverityColor(s))
}

// HealthColor returns the color for a 0-100 health score.
func HealthColor(score float64) lipgloss.Color {
	switch {
	case score >= 90:
		return ColorUp
	case score >= 40:
		return ColorDegraded
	default:
		return ColorDown
	}
}

// probeColor returns the series color for a probe type.
func probeColor(p api.ProbeType) lipgloss.Color {
	switch p {
	case api.ProbeTCP:
		return ColorSeriesTCP
	case api.ProbeHTTP:
		return ColorSeriesHTTP
	default:
		return ColorSeriesPing
	}
}
