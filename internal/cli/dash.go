package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ronaldocrispimsg/SistemaMonitoramentoDeRede-NOC/internal/api"
	"github.com/ronaldocrispimsg/SistemaMonitoramentoDeRede-NOC/internal/config"
	"github.com/ronaldocrispimsg/SistemaMonitoramentoDeRede-NOC/internal/dash"
	"github.com/ronaldocrispimsg/SistemaMonitoramentoDeRede-NOC/internal/errors"
	"github.com/ronaldocrispimsg/SistemaMonitoramentoDeRede-NOC/internal/logger"
)

// dashCommand loads config, applies flag overrides, and runs the dashboard.
func dashCommand(apiFlag, intervalFlag, alertIntervalFlag string) error {
	cfg, err := config.LoadOrDefault(Config())
	if err != nil {
		return err
	}

	if apiFlag != "" {
		cfg.APIBase = apiFlag
	}
	if intervalFlag != "" {
		cfg.PollInterval, err = parseIntervalFlag("interval", intervalFlag)
		if err != nil {
			return err
		}
	}
	if alertIntervalFlag != "" {
		cfg.AlertInterval, err = parseIntervalFlag("alert-interval", alertIntervalFlag)
		if err != nil {
			return err
		}
	}

	client := api.NewClient(cfg.APIBase, cfg.RequestTimeout)
	model := dash.NewModel(client, dash.Options{
		PollInterval:  cfg.PollInterval,
		AlertInterval: cfg.AlertInterval,
		NoticeTTL:     cfg.NoticeTTL,
		Log:           logger.Default(),
	})

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrTransport,
			"Dashboard exited unexpectedly",
			"Run with NOC_DEBUG=1 for details")
	}
	return nil
}

// parseIntervalFlag parses a poll interval flag and enforces the 1s floor.
func parseIntervalFlag(name, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Invalid --%s: %s", name, value),
			"Use a valid duration like 5s, 10s, or 1m")
	}
	if d < time.Second {
		return 0, errors.New(errors.ErrConfig,
			fmt.Sprintf("--%s %s is below the 1s minimum", name, value),
			"Use at least 1s to avoid hammering the backend")
	}
	return d, nil
}
