// Package dash implements the terminal dashboard: a Bubble Tea model that
// polls the monitoring backend on two independent timers and reconciles each
// snapshot into a stable, identity-keyed registry of host cards. All state
// mutation happens inside Update; fetches run as commands and deliver their
// results back as messages, so a refresh can never tear down a panel the
// user has open.
package dash

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ronaldocrispimsg/SistemaMonitoramentoDeRede-NOC/internal/api"
	nocerrors "github.com/ronaldocrispimsg/SistemaMonitoramentoDeRede-NOC/internal/errors"
	"github.com/ronaldocrispimsg/SistemaMonitoramentoDeRede-NOC/internal/logger"
)

// Backend is the slice of the API client the dashboard consumes.
// *api.Client satisfies it; tests substitute a fake.
type Backend interface {
	ListHosts(ctx context.Context) ([]api.HostSnapshot, error)
	CheckHost(ctx context.Context, name string) (*api.CheckResponse, error)
	History(ctx context.Context, name string) ([]api.CheckRecord, error)
	SLAChart(ctx context.Context, name string) (*api.SLASeries, error)
	Heatmap(ctx context.Context, name string) ([]api.HeatmapCell, error)
	Alerts(ctx context.Context) ([]api.AlertEvent, error)
	UpdateHost(ctx context.Context, name string, update api.HostUpdate) error
}

// Options configures the dashboard model.
type Options struct {
	PollInterval  time.Duration // host snapshot cadence
	AlertInterval time.Duration // alert feed cadence
	NoticeTTL     time.Duration // alert notification display time
	Log           logger.Logger
}

// Model is the Bubble Tea model for the dashboard.
type Model struct {
	backend  Backend
	registry *Registry
	charts   *Table
	dedupe   *Deduper

	notices      []Notice
	nextNoticeID int

	edit *EditSession

	selected   int
	width      int
	height     int
	lastUpdate time.Time

	// listErr / alertErr are the recoverable display errors of the two
	// pollers. A failed cycle sets them and leaves all card state as-is.
	listErr  string
	alertErr string

	pollInterval  time.Duration
	alertInterval time.Duration
	noticeTTL     time.Duration

	quitting bool
	log      logger.Logger
}

// Timer messages for the two independent pollers.
type snapshotTickMsg time.Time
type alertTickMsg time.Time

// hostListMsg carries one snapshot poll result.
type hostListMsg struct {
	hosts []api.HostSnapshot
	err   error
	at    time.Time
}

// summaryMsg carries one on-demand check result for a card's summary.
type summaryMsg struct {
	host  string
	check *api.CheckResponse
	err   error
}

// historyMsg carries the check history for a card's history panel.
type historyMsg struct {
	host   string
	checks []api.CheckRecord
	err    error
}

// latencyMsg carries the check history backing a latency chart.
type latencyMsg struct {
	host   string
	checks []api.CheckRecord
	err    error
}

// slaMsg carries the SLA series backing an SLA chart.
type slaMsg struct {
	host   string
	series *api.SLASeries
	err    error
}

// heatmapMsg carries the samples for a heatmap panel.
type heatmapMsg struct {
	host  string
	cells []api.HeatmapCell
	err   error
}

// alertsMsg carries one alert poll result.
type alertsMsg struct {
	events []api.AlertEvent
	err    error
}

// noticeExpiredMsg retracts one notification after its display time.
type noticeExpiredMsg struct {
	id int
}

// editResultMsg carries the outcome of an edit submit.
type editResultMsg struct {
	host string
	err  error
}

// NewModel creates a dashboard model polling the given backend.
func NewModel(backend Backend, opts Options) Model {
	if opts.PollInterval <= 0 {
		opts.PollInterval = 10 * time.Second
	}
	if opts.AlertInterval <= 0 {
		opts.AlertInterval = 5 * time.Second
	}
	if opts.NoticeTTL <= 0 {
		opts.NoticeTTL = 6 * time.Second
	}
	if opts.Log == nil {
		opts.Log = logger.Noop()
	}

	return Model{
		backend:       backend,
		registry:      NewRegistry(),
		charts:        NewTable(),
		dedupe:        NewDeduper(),
		selected:      -1,
		pollInterval:  opts.PollInterval,
		alertInterval: opts.AlertInterval,
		noticeTTL:     opts.NoticeTTL,
		log:           opts.Log,
	}
}

// Init starts both poll timers and triggers an immediate first fetch of each
// feed.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.listCmd(),
		m.alertsCmd(),
		m.snapshotTickCmd(),
		m.alertTickCmd(),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case snapshotTickMsg:
		return m, tea.Batch(m.snapshotTickCmd(), m.listCmd())

	case alertTickMsg:
		return m, tea.Batch(m.alertTickCmd(), m.alertsCmd())

	case hostListMsg:
		if msg.err != nil {
			// Failed cycle: keep every card as-is, show the error,
			// and let the next tick retry.
			m.listErr = inlineError(msg.err)
			m.log.Warn("host list poll failed: %v", msg.err)
			return m, nil
		}
		m.listErr = ""
		m.lastUpdate = msg.at
		cmds := m.reconcile(msg.hosts)
		return m, tea.Batch(cmds...)

	case summaryMsg:
		m.applySummary(msg)

	case historyMsg:
		m.applyHistory(msg)

	case latencyMsg:
		m.applyLatency(msg)

	case slaMsg:
		m.applySLA(msg)

	case heatmapMsg:
		m.applyHeatmap(msg)

	case alertsMsg:
		if msg.err != nil {
			m.alertErr = inlineError(msg.err)
			m.log.Warn("alert poll failed: %v", msg.err)
			return m, nil
		}
		m.alertErr = ""
		return m, tea.Batch(m.applyAlerts(msg.events)...)

	case noticeExpiredMsg:
		m.retractNotice(msg.id)

	case editResultMsg:
		return m, m.applyEditResult(msg)
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderDashboard()
}

// SelectedHost returns the name of the currently selected card.
func (m Model) SelectedHost() string {
	names := m.registry.Names()
	if m.selected >= 0 && m.selected < len(names) {
		return names[m.selected]
	}
	return ""
}

// snapshotTickCmd schedules the next host snapshot poll.
func (m Model) snapshotTickCmd() tea.Cmd {
	return tea.Tick(m.pollInterval, func(t time.Time) tea.Msg {
		return snapshotTickMsg(t)
	})
}

// alertTickCmd schedules the next alert feed poll.
func (m Model) alertTickCmd() tea.Cmd {
	return tea.Tick(m.alertInterval, func(t time.Time) tea.Msg {
		return alertTickMsg(t)
	})
}

// listCmd fetches the host snapshot list.
func (m Model) listCmd() tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		hosts, err := backend.ListHosts(context.Background())
		return hostListMsg{hosts: hosts, err: err, at: time.Now()}
	}
}

// alertsCmd fetches the alert feed.
func (m Model) alertsCmd() tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		events, err := backend.Alerts(context.Background())
		return alertsMsg{events: events, err: err}
	}
}

// summaryCmd fetches the on-demand check summary for one host.
func (m Model) summaryCmd(host string) tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		check, err := backend.CheckHost(context.Background(), host)
		return summaryMsg{host: host, check: check, err: err}
	}
}

// widgetFetchCmd fetches the data backing one widget kind for one host.
func (m Model) widgetFetchCmd(host string, kind WidgetKind) tea.Cmd {
	backend := m.backend
	switch kind {
	case WidgetHistory:
		return func() tea.Msg {
			checks, err := backend.History(context.Background(), host)
			return historyMsg{host: host, checks: checks, err: err}
		}
	case WidgetLatencyChart:
		return func() tea.Msg {
			checks, err := backend.History(context.Background(), host)
			return latencyMsg{host: host, checks: checks, err: err}
		}
	case WidgetSLAChart:
		return func() tea.Msg {
			series, err := backend.SLAChart(context.Background(), host)
			return slaMsg{host: host, series: series, err: err}
		}
	case WidgetHeatmap:
		return func() tea.Msg {
			cells, err := backend.Heatmap(context.Background(), host)
			return heatmapMsg{host: host, cells: cells, err: err}
		}
	}
	return nil
}

// noticeExpiryCmd schedules the retraction of one notification. The timer is
// fire-and-forget: nothing cancels it, and poll activity never resets it.
func (m Model) noticeExpiryCmd(id int) tea.Cmd {
	return tea.Tick(m.noticeTTL, func(time.Time) tea.Msg {
		return noticeExpiredMsg{id: id}
	})
}

// toggleWidget flips one widget on the selected card through its lifecycle.
// Hidden starts a load; Loading and Visible close the panel. Closing keeps
// the previously fetched content and any chart handle: reopening always
// refetches and rebinds.
func (m *Model) toggleWidget(kind WidgetKind) tea.Cmd {
	card := m.registry.Lookup(m.SelectedHost())
	if card == nil {
		return nil
	}

	switch card.Visibility(kind) {
	case Hidden:
		card.SetVisibility(kind, Loading)
		return m.widgetFetchCmd(card.Name, kind)
	default:
		card.SetVisibility(kind, Hidden)
		return nil
	}
}

// applySummary lands an on-demand check result on its card.
func (m *Model) applySummary(msg summaryMsg) {
	card := m.registry.Lookup(msg.host)
	if card == nil {
		// Completion outlived its card; drop it.
		return
	}
	if msg.err != nil {
		card.SummaryErr = inlineError(msg.err)
		return
	}
	card.Summary = msg.check
	card.SummaryErr = ""
}

// applyHistory lands a history fetch on its card.
func (m *Model) applyHistory(msg historyMsg) {
	card, vis := m.widgetTarget(msg.host, WidgetHistory)
	if card == nil {
		return
	}
	if msg.err != nil {
		card.SetWidgetError(WidgetHistory, inlineError(msg.err))
	} else {
		card.History = msg.checks
		card.SetWidgetError(WidgetHistory, "")
	}
	if vis == Loading {
		card.SetVisibility(WidgetHistory, Visible)
	}
}

// applyLatency lands a latency-chart fetch: the dataset is built from the
// check history and bound through the chart table, which releases any prior
// handle for the key before constructing the new one.
func (m *Model) applyLatency(msg latencyMsg) {
	card, vis := m.widgetTarget(msg.host, WidgetLatencyChart)
	if card == nil {
		return
	}
	if msg.err != nil {
		card.SetWidgetError(WidgetLatencyChart, inlineError(msg.err))
	} else {
		m.charts.Bind(msg.host, ChartLatency, latencyDataset(msg.checks))
		card.SetWidgetError(WidgetLatencyChart, "")
	}
	if vis == Loading {
		card.SetVisibility(WidgetLatencyChart, Visible)
	}
}

// applySLA lands an SLA-chart fetch the same way.
func (m *Model) applySLA(msg slaMsg) {
	card, vis := m.widgetTarget(msg.host, WidgetSLAChart)
	if card == nil {
		return
	}
	if msg.err != nil {
		card.SetWidgetError(WidgetSLAChart, inlineError(msg.err))
	} else {
		m.charts.Bind(msg.host, ChartSLA, slaDataset(msg.series))
		card.SetWidgetError(WidgetSLAChart, "")
	}
	if vis == Loading {
		card.SetVisibility(WidgetSLAChart, Visible)
	}
}

// applyHeatmap lands a heatmap fetch on its card.
func (m *Model) applyHeatmap(msg heatmapMsg) {
	card, vis := m.widgetTarget(msg.host, WidgetHeatmap)
	if card == nil {
		return
	}
	if msg.err != nil {
		card.SetWidgetError(WidgetHeatmap, inlineError(msg.err))
	} else {
		card.Heatmap = msg.cells
		card.SetWidgetError(WidgetHeatmap, "")
	}
	if vis == Loading {
		card.SetVisibility(WidgetHeatmap, Visible)
	}
}

// widgetTarget resolves a completion's target card and visibility. It
// returns nil when the card is gone or the widget was closed before the
// fetch resolved: a late completion must never reopen a panel.
func (m *Model) widgetTarget(host string, kind WidgetKind) (*Card, Visibility) {
	card := m.registry.Lookup(host)
	if card == nil {
		return nil, Hidden
	}
	vis := card.Visibility(kind)
	if vis == Hidden {
		return nil, Hidden
	}
	return card, vis
}

// applyAlerts dedupes one alert batch and opens a notification per fresh
// event, each with its own expiry timer.
func (m *Model) applyAlerts(events []api.AlertEvent) []tea.Cmd {
	fresh := m.dedupe.Ingest(events)

	var cmds []tea.Cmd
	for _, ev := range fresh {
		m.nextNoticeID++
		notice := Notice{
			ID:        m.nextNoticeID,
			Host:      ev.HostName,
			OldStatus: ev.OldStatus,
			NewStatus: ev.NewStatus,
			CreatedAt: time.Now(),
		}
		m.notices = append(m.notices, notice)
		cmds = append(cmds, m.noticeExpiryCmd(notice.ID))
	}
	return cmds
}

// retractNotice removes one notification by id. Expired notices that were
// already removed no-op.
func (m *Model) retractNotice(id int) {
	for i, n := range m.notices {
		if n.ID == id {
			m.notices = append(m.notices[:i], m.notices[i+1:]...)
			return
		}
	}
}

// openEdit opens an edit session for the selected host, discarding any
// session already open for another target.
func (m *Model) openEdit() {
	card := m.registry.Lookup(m.SelectedHost())
	if card == nil {
		return
	}
	m.edit = NewEditSession(card.Snapshot)
}

// submitEdit validates the form and sends the partial update.
func (m *Model) submitEdit() tea.Cmd {
	if m.edit == nil || m.edit.Submitting {
		return nil
	}

	update, err := m.edit.Fields()
	if err != nil {
		m.edit.Err = err.Error()
		return nil
	}

	m.edit.Err = ""
	m.edit.Submitting = true
	backend := m.backend
	host := m.edit.Host
	return func() tea.Msg {
		return editResultMsg{host: host, err: backend.UpdateHost(context.Background(), host, update)}
	}
}

// applyEditResult closes the session and pulls a fresh snapshot on success;
// on failure the session stays open with the backend's message.
func (m *Model) applyEditResult(msg editResultMsg) tea.Cmd {
	if m.edit == nil || m.edit.Host != msg.host {
		// The session was cancelled or retargeted while in flight.
		return nil
	}

	m.edit.Submitting = false
	if msg.err != nil {
		m.edit.Err = inlineError(msg.err)
		return nil
	}

	m.edit = nil
	return m.listCmd()
}

// inlineError reduces an error to a single short line suitable for inline
// display inside a widget.
func inlineError(err error) string {
	msg := err.Error()
	var structured *nocerrors.Error
	if stderrors.As(err, &structured) {
		msg = structured.Message
	}

	msg = strings.SplitN(msg, "\n", 2)[0]
	if len(msg) > 60 {
		msg = msg[:57] + "..."
	}
	return msg
}
