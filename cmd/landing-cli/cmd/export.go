package cmd

import (
	"fmt"

	"github.com/nfrund/landing/internal/exporter"
	"github.com/nfrund/landing/internal/server"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the site into a directory for static hosting",
	Long: `Render the landing page and résumé through the real HTTP handlers and write
them, with the static assets and the images under PUBLIC_DIR/images, into a
directory.

The exported pages are plain HTML. The mobile menu and the consultation form
post back to the server, so they only work when the export is served alongside
a running instance.

Examples:
  landing-cli export                # Write to ./dist
  landing-cli export --out public   # Write to ./public`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		cfg.LiveReload = false

		s, err := server.New(cfg)
		if err != nil {
			return err
		}
		s.RegisterRoutes()

		var opts []exporter.Option
		if dir := cfg.GetPublicDir(); dir != "" {
			opts = append(opts, exporter.WithPublicFS(afero.NewBasePathFs(afero.NewOsFs(), dir)))
		}
		if err := exporter.Export(cmd.Context(), s.E, afero.NewOsFs(), exportOut, opts...); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Exported %d pages to %s\n", len(exporter.Pages), exportOut)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "dist", "Output directory")
}
