package dash

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ronaldocrispimsg/SistemaMonitoramentoDeRede-NOC/internal/api"
)

// reconcile merges one polled snapshot list into the registry and returns the
// follow-up fetches. Cards are matched by host name: a known host gets its
// snapshot patched in place, an unknown host gets a new card, and a card
// whose host vanished keeps all of its state but stays flagged stale.
//
// Every live card refreshes its summary each pass; open widgets refresh too,
// but a widget still Loading is left alone so a slow first fetch is not
// raced by its own refresh.
func (m *Model) reconcile(hosts []api.HostSnapshot) []tea.Cmd {
	m.registry.MarkAllStale()

	var cmds []tea.Cmd
	for _, snap := range hosts {
		card, created := m.registry.Ensure(snap.Name)
		card.Snapshot = snap
		card.Stale = false

		cmds = append(cmds, m.summaryCmd(snap.Name))
		if created {
			m.log.Debug("card created for host %s", snap.Name)
			continue
		}

		for _, kind := range card.OpenWidgets() {
			cmds = append(cmds, m.widgetFetchCmd(snap.Name, kind))
		}
	}

	m.clampSelection()
	return cmds
}

// clampSelection keeps the cursor on a valid card after the registry grows.
func (m *Model) clampSelection() {
	n := m.registry.Len()
	if n == 0 {
		m.selected = -1
		return
	}
	if m.selected < 0 {
		m.selected = 0
	}
	if m.selected >= n {
		m.selected = n - 1
	}
}

// latencyDataset builds a latency chart dataset from check history. Records
// are grouped by probe type into parallel series; a failed check contributes
// a nil sample so the plot shows a gap where the probe got no answer.
func latencyDataset(checks []api.CheckRecord) ChartDataset {
	var ds ChartDataset

	byType := make(map[api.ProbeType][]*float64)
	var order []api.ProbeType
	for _, c := range checks {
		if _, seen := byType[c.Type]; !seen {
			order = append(order, c.Type)
		}
		value := c.Latency
		if !c.Success {
			value = nil
		}
		byType[c.Type] = append(byType[c.Type], value)

		if c.Type == api.ProbePing {
			ds.Labels = append(ds.Labels, c.Timestamp.Format("15:04:05"))
		}
	}

	for _, t := range order {
		ds.Series = append(ds.Series, ChartSeries{
			Label:  probeLabel(t),
			Color:  probeColor(t),
			Values: byType[t],
		})
	}
	return ds
}

// slaDataset builds an SLA chart dataset from the per-probe rolling series.
func slaDataset(series *api.SLASeries) ChartDataset {
	var ds ChartDataset
	if series == nil {
		return ds
	}

	for _, p := range series.Ping {
		ds.Labels = append(ds.Labels, p.Time)
	}

	add := func(t api.ProbeType, points []api.SLAPoint) {
		if len(points) == 0 {
			return
		}
		values := make([]*float64, len(points))
		for i, p := range points {
			values[i] = p.SLA
		}
		ds.Series = append(ds.Series, ChartSeries{
			Label:  probeLabel(t) + " SLA %",
			Color:  probeColor(t),
			Values: values,
		})
	}

	add(api.ProbePing, series.Ping)
	add(api.ProbeTCP, series.TCP)
	add(api.ProbeHTTP, series.HTTP)
	return ds
}

// probeLabel returns the display label for a probe type.
func probeLabel(t api.ProbeType) string {
	switch t {
	case api.ProbePing:
		return "Ping"
	case api.ProbeTCP:
		return "TCP"
	case api.ProbeHTTP:
		return "HTTP"
	default:
		return string(t)
	}
}
