package api

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_Unmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		hour  int
		sec   int
	}{
		{"naive with microseconds", `"2026-08-27T09:30:15.123456"`, 9, 15},
		{"naive without fraction", `"2026-08-27T09:30:15"`, 9, 15},
		{"rfc3339", `"2026-08-27T09:30:15Z"`, 9, 15},
		{"rfc3339 with offset", `"2026-08-27T09:30:15+00:00"`, 9, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.input), &ts))
			assert.Equal(t, tt.hour, ts.Hour())
			assert.Equal(t, tt.sec, ts.Second())
		})
	}
}

func TestTimestamp_UnmarshalNull(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`null`), &ts))
	assert.True(t, ts.IsZero())
}

func TestTimestamp_UnmarshalInvalid(t *testing.T) {
	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
}

func TestTimestamp_Marshal(t *testing.T) {
	ts := Timestamp{Time: time.Date(2026, 8, 27, 9, 30, 0, 0, time.UTC)}
	data, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2026-08-27T09:30:00Z"`, string(data))
}

func TestHostSnapshot_Helpers(t *testing.T) {
	port := 443
	sla := 99.5
	jitter := 1.2
	snap := HostSnapshot{
		Name:       "web1",
		Address:    "10.0.0.9",
		Port:       &port,
		SLAPing:    &sla,
		JitterPing: &jitter,
	}

	assert.Equal(t, "10.0.0.9:443", snap.Endpoint())
	assert.Equal(t, 99.5, *snap.SLA(ProbePing))
	assert.Nil(t, snap.SLA(ProbeTCP))
	assert.Equal(t, 1.2, *snap.Jitter(ProbePing))
	assert.Nil(t, snap.Jitter(ProbeHTTP))

	snap.Port = nil
	assert.Equal(t, "10.0.0.9", snap.Endpoint())
}
