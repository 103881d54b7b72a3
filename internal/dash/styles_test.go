package dash

import (
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/ronaldocrispimsg/SistemaMonitoramentoDeRede-NOC/internal/api"
)

// Force a fixed color profile so rendered output is byte-stable regardless
// of the terminal running the tests.
func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func TestStatusColor(t *testing.T) {
	assert.Equal(t, ColorUp, StatusColor(api.StatusUp))
	assert.Equal(t, ColorDown, StatusColor(api.StatusDown))
	assert.Equal(t, ColorDegraded, StatusColor(api.StatusDegraded))
	assert.Equal(t, ColorUnknown, StatusColor(api.StatusUnknown))
	assert.Equal(t, ColorUnknown, StatusColor(api.Status("BOGUS")))
}

func TestStatusIndicator(t *testing.T) {
	assert.Equal(t, IndicatorUp, StatusIndicator(api.StatusUp))
	assert.Equal(t, IndicatorDown, StatusIndicator(api.StatusDown))
	assert.Equal(t, IndicatorDegraded, StatusIndicator(api.StatusDegraded))
	assert.Equal(t, IndicatorUnknown, StatusIndicator(api.StatusUnknown))
}

func TestHealthColor(t *testing.T) {
	assert.Equal(t, ColorUp, HealthColor(100))
	assert.Equal(t, ColorUp, HealthColor(90))
	assert.Equal(t, ColorDegraded, HealthColor(89.9))
	assert.Equal(t, ColorDegraded, HealthColor(40))
	assert.Equal(t, ColorDown, HealthColor(39.9))
	assert.Equal(t, ColorDown, HealthColor(0))
}

func TestSeverityColor(t *testing.T) {
	assert.Equal(t, ColorUp, SeverityColor(api.SeverityHealthy))
	assert.Equal(t, ColorDegraded, SeverityColor(api.SeverityWarning))
	assert.Equal(t, ColorDegraded, SeverityColor(api.SeverityDegraded))
	assert.Equal(t, ColorDown, SeverityColor(api.SeverityCritical))
	assert.Equal(t, ColorUnknown, SeverityColor(api.SeverityUnknown))
}
