package dash

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ronaldocrispimsg/SistemaMonitoramentoDeRede-NOC/internal/api"
)

// editFieldCount is the number of form inputs in an edit session.
const editFieldCount = 3

// EditSession tracks the single in-progress host edit. At most one session
// exists at a time; opening a new target discards any unsaved edit. The host
// name is immutable, so the form only carries the mutable fields.
type EditSession struct {
	Host string

	// Err holds the last submit failure; the session stays open for retry.
	Err string

	// Submitting is set while a submit request is in flight.
	Submitting bool

	inputs [editFieldCount]textinput.Model
	focus  int
}

// NewEditSession opens an edit session for a host, seeding the form fields
// from the last known snapshot.
func NewEditSession(snapshot api.HostSnapshot) *EditSession {
	s := &EditSession{Host: snapshot.Name}

	address := textinput.New()
	address.Placeholder = "address"
	address.SetValue(snapshot.Address)
	address.Focus()

	port := textinput.New()
	port.Placeholder = "port (optional)"
	if snapshot.Port != nil {
		port.SetValue(strconv.Itoa(*snapshot.Port))
	}

	httpURL := textinput.New()
	httpURL.Placeholder = "http url (optional)"
	if snapshot.HTTPURL != nil {
		httpURL.SetValue(*snapshot.HTTPURL)
	}

	s.inputs = [editFieldCount]textinput.Model{address, port, httpURL}
	return s
}

// CycleFocus moves focus to the next (or previous) form field.
func (s *EditSession) CycleFocus(backwards bool) {
	s.inputs[s.focus].Blur()
	if backwards {
		s.focus = (s.focus + editFieldCount - 1) % editFieldCount
	} else {
		s.focus = (s.focus + 1) % editFieldCount
	}
	s.inputs[s.focus].Focus()
}

// Update forwards a message to the focused input.
func (s *EditSession) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return cmd
}

// Fields builds the partial update from the form. Unchanged semantics are
// the backend's concern; the client sends every mutable field it holds.
func (s *EditSession) Fields() (api.HostUpdate, error) {
	var update api.HostUpdate

	address := strings.TrimSpace(s.inputs[0].Value())
	if address == "" {
		return update, fmt.Errorf("address must not be empty")
	}
	update.Address = &address

	if raw := strings.TrimSpace(s.inputs[1].Value()); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil || port < 1 || port > 65535 {
			return update, fmt.Errorf("port %q is not a valid port number", raw)
		}
		update.Port = &port
	}

	if raw := strings.TrimSpace(s.inputs[2].Value()); raw != "" {
		httpURL := raw
		update.HTTPURL = &httpURL
	}

	return update, nil
}

// View renders the edit form panel.
func (s *EditSession) View(width int) string {
	var b strings.Builder

	b.WriteString(PanelTitleStyle.Render("Edit " + s.Host))
	b.WriteString("\n")
	labels := [editFieldCount]string{"Address", "Port", "HTTP URL"}
	for i, input := range s.inputs {
		b.WriteString(LabelStyle.Render(labels[i]+": ") + input.View())
		b.WriteString("\n")
	}

	if s.Submitting {
		b.WriteString(MutedStyle.Render("saving..."))
	} else if s.Err != "" {
		b.WriteString(InlineErrorStyle.Render(s.Err))
	} else {
		b.WriteString(MutedStyle.Render("enter save · esc cancel · tab next field"))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorAccent).
		Padding(0, 1).
		Width(width).
		Render(b.String())
}
