package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/ronaldocrispimsg/SistemaMonitoramentoDeRede-NOC/internal/api"
	"github.com/ronaldocrispimsg/SistemaMonitoramentoDeRede-NOC/internal/config"
	"github.com/ronaldocrispimsg/SistemaMonitoramentoDeRede-NOC/internal/dash"
	"github.com/ronaldocrispimsg/SistemaMonitoramentoDeRede-NOC/internal/errors"
)

// Output symbols for command results
var (
	symbolSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("#39FF14")).Render("✓")
	symbolRemoved = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0055")).Render("✗")
)

// HostAddOptions holds options for the host add command.
type HostAddOptions struct {
	Name    string // Unique host name
	Address string // IP address or hostname
	Port    int    // TCP port, 0 means none
	HTTPURL string // HTTP probe URL, empty means none
}

// backendClient builds an API client from the resolved config.
func backendClient() (*api.Client, error) {
	cfg, err := config.LoadOrDefault(Config())
	if err != nil {
		return nil, err
	}
	return api.NewClient(cfg.APIBase, cfg.RequestTimeout), nil
}

// hostAdd registers a new host, prompting for any detail not given as a flag.
func hostAdd(opts HostAddOptions) error {
	client, err := backendClient()
	if err != nil {
		return err
	}

	name := opts.Name
	address := opts.Address
	portRaw := ""
	if opts.Port > 0 {
		portRaw = strconv.Itoa(opts.Port)
	}
	httpURL := opts.HTTPURL

	if name == "" || address == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Host name").
					Description("Unique identifier, shown on the dashboard card").
					Placeholder("db1").
					Value(&name).
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return fmt.Errorf("name is required")
						}
						return nil
					}),
				huh.NewInput().
					Title("Address").
					Description("IP address or hostname to probe").
					Placeholder("10.0.0.5").
					Value(&address).
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return fmt.Errorf("address is required")
						}
						return nil
					}),
				huh.NewInput().
					Title("TCP port (optional)").
					Placeholder("443").
					Value(&portRaw).
					Validate(validatePortInput),
				huh.NewInput().
					Title("HTTP URL (optional)").
					Placeholder("https://10.0.0.5/health").
					Value(&httpURL),
			),
		)

		if err := form.Run(); err != nil {
			if err == huh.ErrUserAborted {
				fmt.Println("Cancelled.")
				return nil
			}
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Provide --name and --address flags instead")
		}
	}

	create := api.HostCreate{
		Name:    strings.TrimSpace(name),
		Address: strings.TrimSpace(address),
	}
	if raw := strings.TrimSpace(portRaw); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil || port < 1 || port > 65535 {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("'%s' is not a valid port", raw),
				"Use a number between 1 and 65535")
		}
		create.Port = &port
	}
	if raw := strings.TrimSpace(httpURL); raw != "" {
		create.HTTPURL = &raw
	}

	if err := client.CreateHost(context.Background(), create); err != nil {
		return err
	}

	fmt.Printf("%s Added host '%s' (%s)\n", symbolSuccess, create.Name, create.Address)
	return nil
}

// hostRemove deletes a host after confirmation.
func hostRemove(name string, skipConfirm bool) error {
	client, err := backendClient()
	if err != nil {
		return err
	}

	if !skipConfirm {
		var confirmed bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Remove host '%s' and its history?", name)).
					Value(&confirmed),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Use --yes to skip the confirmation prompt")
		}
		if !confirmed {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := client.DeleteHost(context.Background(), name); err != nil {
		return err
	}

	fmt.Printf("%s Removed host '%s'\n", symbolRemoved, name)
	return nil
}

// hostList prints every monitored host with its current state.
func hostList() error {
	client, err := backendClient()
	if err != nil {
		return err
	}

	hosts, err := client.ListHosts(context.Background())
	if err != nil {
		return err
	}

	if len(hosts) == 0 {
		fmt.Println("No hosts configured. Add one with 'noc host add'.")
		return nil
	}

	for _, h := range hosts {
		health := lipgloss.NewStyle().
			Foreground(dash.HealthColor(h.HealthScore)).
			Render(fmt.Sprintf("%3.0f", h.HealthScore))
		fmt.Printf("%s %-20s %-24s %-10s health %s\n",
			dash.StatusIndicator(h.Status), h.Name, h.Endpoint(), h.Status, health)
	}
	return nil
}

// hostUpdate sends a partial update built from the changed flags.
func hostUpdate(name string, addressSet, portSet, httpSet bool) error {
	if !addressSet && !portSet && !httpSet {
		return errors.New(errors.ErrConfig,
			"Nothing to update",
			"Pass at least one of --address, --port, or --http")
	}

	client, err := backendClient()
	if err != nil {
		return err
	}

	var update api.HostUpdate
	if addressSet {
		address := strings.TrimSpace(hostUpdateAddressFlag)
		if address == "" {
			return errors.New(errors.ErrConfig,
				"--address must not be empty",
				"Give the host's new IP address or hostname")
		}
		update.Address = &address
	}
	if portSet {
		if hostUpdatePortFlag < 1 || hostUpdatePortFlag > 65535 {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("%d is not a valid port", hostUpdatePortFlag),
				"Use a number between 1 and 65535")
		}
		port := hostUpdatePortFlag
		update.Port = &port
	}
	if httpSet {
		httpURL := strings.TrimSpace(hostUpdateHTTPFlag)
		update.HTTPURL = &httpURL
	}

	if err := client.UpdateHost(context.Background(), name, update); err != nil {
		return err
	}

	fmt.Printf("%s Updated host '%s'\n", symbolSuccess, name)
	return nil
}

// validatePortInput accepts an empty string or a valid port number.
func validatePortInput(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	port, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("port must be a number between 1 and 65535")
	}
	return nil
}
