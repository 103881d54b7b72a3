package api

import (
	"fmt"
	"strings"
	"time"
)

// Status is the backend-computed connection state of a host.
type Status string

const (
	StatusUp       Status = "UP"
	StatusDown     Status = "DOWN"
	StatusDegraded Status = "DEGRADED"
	StatusUnknown  Status = "UNKNOWN"
)

// Severity is the backend-computed health classification of a host.
type Severity string

const (
	SeverityHealthy  Severity = "HEALTHY"
	SeverityWarning  Severity = "WARNING"
	SeverityDegraded Severity = "DEGRADED"
	SeverityCritical Severity = "CRITICAL"
	SeverityUnknown  Severity = "UNKNOWN"
)

// ProbeType identifies which check produced a record or metric.
type ProbeType string

const (
	ProbePing ProbeType = "ping"
	ProbeTCP  ProbeType = "tcp"
	ProbeHTTP ProbeType = "http"
)

// Timestamp wraps time.Time to accept the backend's timestamp encodings.
// The backend emits naive ISO-8601 datetimes (no zone suffix); RFC 3339 is
// accepted as well.
type Timestamp struct {
	time.Time
}

// timestampLayouts are tried in order when decoding a Timestamp.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

// UnmarshalJSON decodes a JSON string into a Timestamp.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", s)
}

// MarshalJSON encodes a Timestamp as an RFC 3339 string.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(time.RFC3339Nano) + `"`), nil
}

// HostSnapshot is a point-in-time summary of one host as returned by
// GET /hosts/list. Snapshots are immutable values: each poll replaces the
// previous one wholesale.
type HostSnapshot struct {
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	Port        *int    `json:"port,omitempty"`
	HTTPURL     *string `json:"http_url,omitempty"`
	Status      Status  `json:"status"`
	Severity    Severity `json:"severity"`
	HealthScore float64 `json:"health_score"`

	SLAPing *float64 `json:"sla_ping,omitempty"`
	SLATCP  *float64 `json:"sla_tcp,omitempty"`
	SLAHTTP *float64 `json:"sla_http,omitempty"`

	JitterPing *float64 `json:"jitter_ping,omitempty"`
	JitterTCP  *float64 `json:"jitter_tcp,omitempty"`
	JitterHTTP *float64 `json:"jitter_http,omitempty"`

	TrendPing *string `json:"trend_ping,omitempty"`
	TrendTCP  *string `json:"trend_tcp,omitempty"`
	TrendHTTP *string `json:"trend_http,omitempty"`
}

// SLA returns the rolling SLA percentage for the given probe type, or nil
// when the backend has not computed one.
func (h HostSnapshot) SLA(probe ProbeType) *float64 {
	switch probe {
	case ProbePing:
		return h.SLAPing
	case ProbeTCP:
		return h.SLATCP
	case ProbeHTTP:
		return h.SLAHTTP
	}
	return nil
}

// Jitter returns the latency jitter for the given probe type, or nil.
func (h HostSnapshot) Jitter(probe ProbeType) *float64 {
	switch probe {
	case ProbePing:
		return h.JitterPing
	case ProbeTCP:
		return h.JitterTCP
	case ProbeHTTP:
		return h.JitterHTTP
	}
	return nil
}

// Endpoint renders the host address with its optional port, e.g. "10.0.0.5:443".
func (h HostSnapshot) Endpoint() string {
	if h.Port != nil {
		return fmt.Sprintf("%s:%d", h.Address, *h.Port)
	}
	return h.Address
}

// CheckRecord is one historical probe result from GET /host/history/{name}.
// Latency is nil when the host was unreachable.
type CheckRecord struct {
	Type       ProbeType `json:"type"`
	Success    bool      `json:"success"`
	Latency    *float64  `json:"latency"`
	Timestamp  Timestamp `json:"timestamp"`
	StatusCode *int      `json:"status_code,omitempty"`
	Error      *string   `json:"error,omitempty"`
}

// historyResponse wraps the checks array of GET /host/history/{name}.
type historyResponse struct {
	Checks []CheckRecord `json:"checks"`
}

// ProbeResult is one probe outcome from POST /host/check/{name}.
type ProbeResult struct {
	Success    bool     `json:"success"`
	Latency    *float64 `json:"latency"`
	StatusCode *int     `json:"status_code,omitempty"`
	Error      *string  `json:"error,omitempty"`
}

// CheckResponse is the on-demand check summary for one host.
// TCP and HTTP are nil when the host has no port / http_url configured.
type CheckResponse struct {
	Ping ProbeResult  `json:"ping"`
	TCP  *ProbeResult `json:"tcp,omitempty"`
	HTTP *ProbeResult `json:"http,omitempty"`
}

// SLAPoint is one sample of an SLA time series. SLA is nil when the window
// had no samples for that probe type.
type SLAPoint struct {
	Time string   `json:"time"`
	SLA  *float64 `json:"sla"`
}

// SLASeries is the response of GET /host/sla_chart/{name}: one series per
// probe type. Absent probes decode as empty slices.
type SLASeries struct {
	Ping []SLAPoint `json:"ping"`
	TCP  []SLAPoint `json:"tcp"`
	HTTP []SLAPoint `json:"http"`
}

// HeatmapCell is one sample of GET /host/heatmap/{name}. Latency is nil when
// the host was unreachable at that time; renderers must keep "no data"
// distinct from any latency bucket.
type HeatmapCell struct {
	Time    string   `json:"time"`
	Latency *float64 `json:"latency"`
}

// AlertEvent is one status transition from GET /alerts/list.
type AlertEvent struct {
	HostName  string    `json:"host_name"`
	OldStatus Status    `json:"old_status"`
	NewStatus Status    `json:"new_status"`
	Timestamp Timestamp `json:"timestamp"`
}

// HostCreate is the request body of POST /host/create.
type HostCreate struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Port    *int    `json:"port,omitempty"`
	HTTPURL *string `json:"http_url,omitempty"`
}

// HostUpdate is the request body of PUT /host/update/{name}. Only set fields
// are sent; the host name itself is immutable after creation.
type HostUpdate struct {
	Address *string `json:"address,omitempty"`
	Port    *int    `json:"port,omitempty"`
	HTTPURL *string `json:"http_url,omitempty"`
}
