package dash

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ronaldocrispimsg/SistemaMonitoramentoDeRede-NOC/internal/api"
)

// Deduper filters the polled alert feed against a monotonic watermark so an
// event is shown at most once across poll cycles.
//
// The very first batch only primes the watermark: pre-existing alerts are
// treated as already seen and never fire at startup.
type Deduper struct {
	watermark time.Time
	primed    bool
}

// NewDeduper creates a deduper with an unset watermark.
func NewDeduper() *Deduper {
	return &Deduper{}
}

// Watermark returns the maximum alert timestamp already displayed.
// The zero time means no batch has been ingested yet.
func (d *Deduper) Watermark() time.Time {
	return d.watermark
}

// Ingest filters one polled batch and returns the events to display: those
// with a timestamp strictly greater than the watermark. The watermark then
// advances to the batch maximum, not per event, so an out-of-order batch is
// tolerated. It never regresses when a later batch carries older events.
func (d *Deduper) Ingest(events []api.AlertEvent) []api.AlertEvent {
	batchMax := d.watermark
	var fresh []api.AlertEvent

	for _, ev := range events {
		ts := ev.Timestamp.Time
		if ts.After(batchMax) {
			batchMax = ts
		}
		if d.primed && ts.After(d.watermark) {
			fresh = append(fresh, ev)
		}
	}

	if batchMax.After(d.watermark) {
		d.watermark = batchMax
	}

	if !d.primed {
		// Baseline batch: watermark is primed, nothing fires.
		d.primed = true
		return nil
	}

	return fresh
}

// Notice is one ephemeral alert notification. It is retracted by its expiry
// timer, never by poll activity.
type Notice struct {
	ID        int
	Host      string
	OldStatus api.Status
	NewStatus api.Status
	CreatedAt time.Time
}

// View renders the notice as a small bordered card colored by the new status.
func (n Notice) View() string {
	color := StatusColor(n.NewStatus)
	body := HostNameStyle.Render(n.Host) + "\n" +
		fmt.Sprintf("%s → %s", n.OldStatus, n.NewStatus)
	return NoticeStyle.BorderForeground(color).Render(body)
}

// renderNotices lays the active notices out in a single row.
func renderNotices(notices []Notice) string {
	if len(notices) == 0 {
		return ""
	}
	views := make([]string, len(notices))
	for i, n := range notices {
		views[i] = n.View()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}
