package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/mesoforge/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.New(server.Services{
				Programs: app.Programs,
				Sessions: app.Sessions,
				Catalog:  app.Catalog,
				Goals:    app.Goals,
			}, app.Logger)
			return srv.Run(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", app.ServerAddr, "Listen address")

	return cmd
}
