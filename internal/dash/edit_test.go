package dash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ronaldocrispimsg/SistemaMonitoramentoDeRede-NOC/internal/api"
)

func editSnapshot() api.HostSnapshot {
	port := 5432
	httpURL := "http://10.0.0.5/health"
	return api.HostSnapshot{
		Name:    "db1",
		Address: "10.0.0.5",
		Port:    &port,
		HTTPURL: &httpURL,
	}
}

func TestNewEditSession_SeedsFromSnapshot(t *testing.T) {
	s := NewEditSession(editSnapshot())

	assert.Equal(t, "db1", s.Host)
	assert.Equal(t, "10.0.0.5", s.inputs[0].Value())
	assert.Equal(t, "5432", s.inputs[1].Value())
	assert.Equal(t, "http://10.0.0.5/health", s.inputs[2].Value())
	assert.Equal(t, 0, s.focus)
}

func TestNewEditSession_OptionalFieldsEmpty(t *testing.T) {
	s := NewEditSession(api.HostSnapshot{Name: "web1", Address: "10.0.0.9"})

	assert.Empty(t, s.inputs[1].Value())
	assert.Empty(t, s.inputs[2].Value())
}

func TestEditSession_CycleFocus(t *testing.T) {
	s := NewEditSession(editSnapshot())

	s.CycleFocus(false)
	assert.Equal(t, 1, s.focus)
	s.CycleFocus(false)
	assert.Equal(t, 2, s.focus)
	s.CycleFocus(false)
	assert.Equal(t, 0, s.focus)

	s.CycleFocus(true)
	assert.Equal(t, 2, s.focus)
}

func TestEditSession_Fields(t *testing.T) {
	s := NewEditSession(editSnapshot())

	update, err := s.Fields()
	require.NoError(t, err)
	require.NotNil(t, update.Address)
	assert.Equal(t, "10.0.0.5", *update.Address)
	require.NotNil(t, update.Port)
	assert.Equal(t, 5432, *update.Port)
	require.NotNil(t, update.HTTPURL)
	assert.Equal(t, "http://10.0.0.5/health", *update.HTTPURL)
}

func TestEditSession_Fields_EmptyOptionals(t *testing.T) {
	s := NewEditSession(api.HostSnapshot{Name: "web1", Address: "10.0.0.9"})

	update, err := s.Fields()
	require.NoError(t, err)
	assert.Nil(t, update.Port)
	assert.Nil(t, update.HTTPURL)
}

func TestEditSession_Fields_Validation(t *testing.T) {
	s := NewEditSession(editSnapshot())
	s.inputs[0].SetValue("   ")
	_, err := s.Fields()
	assert.Error(t, err)

	s = NewEditSession(editSnapshot())
	s.inputs[1].SetValue("not-a-port")
	_, err = s.Fields()
	assert.Error(t, err)

	s = NewEditSession(editSnapshot())
	s.inputs[1].SetValue("70000")
	_, err = s.Fields()
	assert.Error(t, err)
}

func TestEditSession_View(t *testing.T) {
	s := NewEditSession(editSnapshot())

	out := s.View(60)
	assert.Contains(t, out, "Edit db1")
	assert.Contains(t, out, "Address")

	s.Err = "backend said no"
	assert.Contains(t, s.View(60), "backend said no")

	s.Submitting = true
	assert.Contains(t, s.View(60), "saving")
}
