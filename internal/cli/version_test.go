package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		input  string
		expect string
	}{
		{"dev", "dev"},
		{"", ""},
		{"1.2.3", "v1.2.3"},
		{"v1.2.3", "v1.2.3"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expect, formatVersion(tt.input))
	}
}

func TestSetVersionInfo(t *testing.T) {
	defer SetVersionInfo("dev", "none", "unknown")

	SetVersionInfo("1.0.0", "abc123", "2026-08-27")
	assert.Equal(t, "1.0.0", GetVersion())
	assert.Equal(t, "abc123", commit)
	assert.Equal(t, "2026-08-27", date)
}
