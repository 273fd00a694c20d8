package cmd

import (
	"os"

	"github.com/nfrund/landing/internal/config"
	"github.com/nfrund/landing/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "landing-cli",
	Short: "Landing site CLI tool",
	Long: `landing-cli runs and maintains the landing page and résumé site.

Available commands:
  serve            Run the HTTP server
  export           Render the site into a directory for static hosting
  check-content    Validate content files without starting the server
  inquiries        List stored consultation requests
  icons            List icon names usable in content files
  version          Print the version number

Configuration comes from the environment and an optional .env file.
Use "landing-cli [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.New()
	},
}

// loadConfig is swapped in tests.
var loadConfig = func() *config.Config { return config.New() }

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
