package dash

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/ronaldocrispimsg/SistemaMonitoramentoDeRede-NOC/internal/api"
)

func TestRenderDashboard_Empty(t *testing.T) {
	m := newTestModel(newFakeBackend())

	out := m.View()
	assert.Contains(t, out, "NOC")
	assert.Contains(t, out, "waiting for hosts")
	assert.Contains(t, out, "q quit")
}

func TestRenderDashboard_Cards(t *testing.T) {
	fake := newFakeBackend()
	m := newTestModel(fake)
	m.reconcile([]api.HostSnapshot{
		snapshot("web1", api.StatusUp),
		snapshot("db1", api.StatusDown),
	})

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(Model)

	out := m.View()
	assert.Contains(t, out, "web1")
	assert.Contains(t, out, "db1")
	assert.Contains(t, out, "2 hosts")
	assert.Contains(t, out, "health 100")
	assert.Contains(t, out, "checking...")
}

func TestRenderDashboard_StaleTag(t *testing.T) {
	m := newTestModel(newFakeBackend())
	m.reconcile([]api.HostSnapshot{snapshot("db1", api.StatusUp)})
	m.reconcile(nil)

	assert.Contains(t, m.View(), "(stale)")
}

func TestRenderDashboard_PollerErrors(t *testing.T) {
	m := newTestModel(newFakeBackend())
	m.listErr = "backend unreachable"
	m.alertErr = "feed stalled"

	out := m.View()
	assert.Contains(t, out, "hosts: backend unreachable")
	assert.Contains(t, out, "alerts: feed stalled")
}

func TestRenderDashboard_OpenPanels(t *testing.T) {
	m := newTestModel(newFakeBackend())
	m.reconcile([]api.HostSnapshot{snapshot("web1", api.StatusUp)})
	card := m.registry.Lookup("web1")

	card.SetVisibility(WidgetHistory, Loading)
	assert.Contains(t, m.View(), "loading...")

	card.SetVisibility(WidgetHistory, Visible)
	card.History = []api.CheckRecord{
		{Type: api.ProbePing, Success: true, Latency: f64(12),
			Timestamp: api.Timestamp{Time: time.Date(2026, 8, 27, 9, 30, 0, 0, time.UTC)}},
	}
	out := m.View()
	assert.Contains(t, out, "history")
	assert.Contains(t, out, "[PING]")
	assert.Contains(t, out, "12.0 ms")
	assert.Contains(t, out, "09:30:00")

	card.SetWidgetError(WidgetHistory, "stale fetch failed")
	assert.Contains(t, m.View(), "stale fetch failed")
}

func TestRenderDashboard_EditOverlay(t *testing.T) {
	m := newTestModel(newFakeBackend())
	m.reconcile([]api.HostSnapshot{snapshot("web1", api.StatusUp)})
	m.openEdit()

	out := m.View()
	assert.Contains(t, out, "Edit web1")
	assert.Contains(t, out, "enter save")
}

func TestRenderHistory(t *testing.T) {
	assert.Contains(t, renderHistory(nil), "no history")

	errMsg := "connection reset"
	checks := []api.CheckRecord{
		{Type: api.ProbeTCP, Success: false, Error: &errMsg},
	}
	out := renderHistory(checks)
	assert.Contains(t, out, "[TCP]")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "---")
	assert.Contains(t, out, "connection reset")
}

func TestRenderHistory_CapsLines(t *testing.T) {
	var checks []api.CheckRecord
	for i := 0; i < 50; i++ {
		checks = append(checks, api.CheckRecord{Type: api.ProbePing, Success: true, Latency: f64(float64(1000 + i))})
	}

	out := renderHistory(checks)

	// Newest slice wins: the last record's latency is present, the first's
	// position has been trimmed away.
	assert.Contains(t, out, "1049.0 ms")
	assert.NotContains(t, out, "1000.0 ms")
}

func TestRenderSummary(t *testing.T) {
	assert.Contains(t, renderSummary(nil), "checking")

	code := 200
	summary := &api.CheckResponse{
		Ping: api.ProbeResult{Success: true, Latency: f64(4.2)},
		TCP:  &api.ProbeResult{Success: false},
		HTTP: &api.ProbeResult{Success: true, Latency: f64(30), StatusCode: &code},
	}

	out := renderSummary(summary)
	assert.Contains(t, out, "Ping: 4.2 ms")
	assert.Contains(t, out, "TCP: N/A")
	assert.Contains(t, out, "HTTP: 30.0 ms")
	assert.Contains(t, out, "(200)")
}
