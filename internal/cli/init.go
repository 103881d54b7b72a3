package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/ronaldocrispimsg/SistemaMonitoramentoDeRede-NOC/internal/config"
	"github.com/ronaldocrispimsg/SistemaMonitoramentoDeRede-NOC/internal/errors"
)

var initForceFlag bool

// initCmd creates a starter .noc.yaml configuration.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .noc.yaml configuration",
	Long: `Create a .noc.yaml config file in the current directory.

Prompts for the backend URL and writes the remaining settings with their
defaults, ready to edit.

Examples:
  noc init
  noc init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initForceFlag)
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForceFlag, "force", false, "overwrite an existing config")
	rootCmd.AddCommand(initCmd)
}

// initCommand writes a starter config, confirming before overwriting.
func initCommand(force bool) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	if _, err := os.Stat(configPath); err == nil && !force {
		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	cfg := config.Defaults()

	apiBase := cfg.APIBase
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Backend URL").
				Description("Base URL of the monitoring backend").
				Placeholder(config.DefaultAPIBase).
				Value(&apiBase).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("backend URL is required")
					}
					return nil
				}),
		),
	)
	if err := form.Run(); err != nil {
		if err == huh.ErrUserAborted {
			fmt.Println("Cancelled.")
			return nil
		}
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Edit "+config.ConfigFileName+" by hand instead")
	}
	cfg.APIBase = strings.TrimSpace(apiBase)

	if err := config.Save(configPath, cfg); err != nil {
		return err
	}

	fmt.Printf("%s Created %s\n", symbolSuccess, configPath)
	return nil
}
