package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/nfrund/landing/internal/server"
	"github.com/spf13/cobra"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Long: `Run the HTTP server until interrupted.

Examples:
  landing-cli serve                 # Listen on PORT (default 8080)
  landing-cli serve --port 3000     # Override PORT
  LIVE_RELOAD=true WATCH_CONTENT=true CONTENT_DIR=./content landing-cli serve`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		if servePort != "" {
			cfg.Port = servePort
		}

		s, err := server.New(cfg)
		if err != nil {
			return err
		}
		s.RegisterRoutes()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return s.Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "Port to listen on (overrides PORT)")
}
