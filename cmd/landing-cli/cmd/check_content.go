package cmd

import (
	"fmt"

	"github.com/nfrund/landing/internal/content"
	"github.com/nfrund/landing/web"
	"github.com/spf13/cobra"
)

var checkContentDir string

var checkContentCmd = &cobra.Command{
	Use:   "check-content",
	Short: "Validate content files without starting the server",
	Long: `Load landing.yaml and resume.yaml the same way the server does and report
any validation failure. Files missing from the directory fall back to the
built-in defaults.

Examples:
  landing-cli check-content                   # Check CONTENT_DIR
  landing-cli check-content --dir ./content   # Check a specific directory`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := checkContentDir
		if dir == "" {
			dir = loadConfig().GetContentDir()
		}

		site, err := content.NewLoader(content.NewFS(web.ContentFS(), dir)).Load()
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "❌ Content is invalid: %v\n", err)
			return err
		}

		source := dir
		if source == "" {
			source = "built-in defaults"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Content is valid (%s)\n", source)
		fmt.Fprintf(cmd.OutOrStdout(), "   landing: %s, %d services, %d listings\n",
			site.Landing.Brand.Name, len(site.Landing.Services.Items), len(site.Landing.Work.Items))
		fmt.Fprintf(cmd.OutOrStdout(), "   resume:  %s, %d roles\n", site.Resume.Name, len(site.Resume.Experience))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkContentCmd)
	checkContentCmd.Flags().StringVarP(&checkContentDir, "dir", "d", "", "Content directory (defaults to CONTENT_DIR)")
}
