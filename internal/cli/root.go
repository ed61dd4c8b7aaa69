// Package cli provides the command-line interface for the MCP server.
package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vikkysarswat/dhan-mcp-server/internal/config"
	"github.com/vikkysarswat/dhan-mcp-server/internal/dhan"
	"github.com/vikkysarswat/dhan-mcp-server/internal/instruments"
	"github.com/vikkysarswat/dhan-mcp-server/internal/logging"
	"github.com/vikkysarswat/dhan-mcp-server/internal/mcpserver"
)

// App holds the application dependencies shared by all commands. Fields are
// populated lazily by loadApp so commands like version work without a valid
// configuration.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	app := &App{}

	rootCmd := &cobra.Command{
		Use:   "dhan-mcp",
		Short: "Dhan MCP Server - trading API tools over the Model Context Protocol",
		Long: `Dhan MCP Server exposes the Dhan trading API as Model Context Protocol
tools so AI assistants can place orders, inspect portfolios and pull
market data on your behalf.

The protocol runs over stdin/stdout; all diagnostics go to stderr.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Running the bare binary starts the server, which is what MCP
		// client configurations expect.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, app)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/dhan-mcp)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(newServeCmd(app))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(app))

	return rootCmd
}

// loadApp resolves configuration and logging for commands that need them.
func loadApp(cmd *cobra.Command, app *App) error {
	configDir, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(configDir)
	if err != nil {
		return err
	}
	app.Config = cfg

	logCfg := logging.DefaultLogConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.File = cfg.Logging.File
	if cfg.Logging.FilePath != "" {
		logCfg.FilePath = cfg.Logging.FilePath
	}
	app.Logger = logging.NewLoggerWithConfig(logCfg)

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		logging.SetDebugLevel()
		app.Logger = app.Logger.Level(zerolog.DebugLevel)
	}
	return nil
}

// buildServer wires the API client and instrument service into an MCP server.
func buildServer(app *App) (*mcpserver.Server, *instruments.Store, error) {
	api, err := dhan.NewClient(dhan.Config{
		BaseURL:     app.Config.API.BaseURL,
		ClientID:    app.Config.Credentials.Dhan.ClientID,
		AccessToken: app.Config.Credentials.Dhan.AccessToken,
		Timeout:     app.Config.API.Timeout(),
	}, app.Logger)
	if err != nil {
		return nil, nil, fmt.Errorf("building api client: %w", err)
	}

	store, err := instruments.Open(app.Config.Instruments.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening instrument store: %w", err)
	}

	service := instruments.NewService(store, instruments.ServiceConfig{
		MasterURL: app.Config.Instruments.MasterURL,
		Refresh:   app.Config.Instruments.RefreshInterval(),
	}, app.Logger)

	return mcpserver.New(api, service, app.Logger), store, nil
}
