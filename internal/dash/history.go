package dash

import (
	"fmt"
	"strings"

	"github.com/ronaldocrispimsg/SistemaMonitoramentoDeRede-NOC/internal/api"
)

// historyMaxLines caps how many check records a history panel shows.
// The backend returns most-recent-last; the panel shows the newest slice.
const historyMaxLines = 12

// renderHistory renders the check history panel for one card.
func renderHistory(checks []api.CheckRecord) string {
	if len(checks) == 0 {
		return MutedStyle.Render("no history yet")
	}

	if len(checks) > historyMaxLines {
		checks = checks[len(checks)-historyMaxLines:]
	}

	lines := make([]string, 0, len(checks))
	for _, c := range checks {
		lines = append(lines, renderHistoryLine(c))
	}
	return strings.Join(lines, "\n")
}

// renderHistoryLine renders one record: [TYPE] OK/FAIL, latency, time.
func renderHistoryLine(c api.CheckRecord) string {
	badge := MutedStyle.Render(fmt.Sprintf("[%s]", strings.ToUpper(string(c.Type))))

	verdict := HistoryOKStyle.Render("OK")
	if !c.Success {
		verdict = HistoryFailStyle.Render("FAIL")
	}

	latency := "---"
	if c.Latency != nil {
		latency = fmt.Sprintf("%.1f ms", *c.Latency)
	}

	line := fmt.Sprintf("%s %s  %s  %s", badge, verdict,
		ValueStyle.Render(latency),
		MutedStyle.Render(c.Timestamp.Format("15:04:05")))

	if c.Error != nil && *c.Error != "" {
		line += "  " + InlineErrorStyle.Render(*c.Error)
	}
	return line
}

// renderSummary renders the always-visible check summary of a card: one dot
// per probe with the latest latency, "N/A" when unreachable.
func renderSummary(summary *api.CheckResponse) string {
	if summary == nil {
		return MutedStyle.Render("checking...")
	}

	lines := []string{renderProbeLine("Ping", summary.Ping)}
	if summary.TCP != nil {
		lines = append(lines, renderProbeLine("TCP", *summary.TCP))
	}
	if summary.HTTP != nil {
		lines = append(lines, renderProbeLine("HTTP", *summary.HTTP))
	}
	return strings.Join(lines, "\n")
}

// renderProbeLine renders one probe result with a success/failure dot.
func renderProbeLine(label string, probe api.ProbeResult) string {
	status := api.StatusDown
	if probe.Success && probe.Latency != nil {
		status = api.StatusUp
	}

	latency := "N/A"
	if probe.Latency != nil {
		latency = fmt.Sprintf("%.1f ms", *probe.Latency)
	}

	line := fmt.Sprintf("%s %s: %s", StatusIndicator(status), LabelStyle.Render(label), ValueStyle.Render(latency))
	if probe.StatusCode != nil {
		line += MutedStyle.Render(fmt.Sprintf(" (%d)", *probe.StatusCode))
	}
	return line
}
