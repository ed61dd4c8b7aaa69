package cli

import (
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server on stdin/stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, app)
		},
	}
}

func runServe(cmd *cobra.Command, app *App) error {
	if err := loadApp(cmd, app); err != nil {
		return err
	}

	srv, store, err := buildServer(app)
	if err != nil {
		return err
	}
	defer store.Close()

	app.Logger.Info().
		Str("base_url", app.Config.API.BaseURL).
		Str("client_id", app.Config.Credentials.Dhan.ClientID).
		Msg("starting dhan mcp server")

	return srv.Serve()
}
