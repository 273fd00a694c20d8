package cmd

import (
	"fmt"

	"github.com/nfrund/landing/internal/components/icons"
	"github.com/spf13/cobra"
)

var iconsCmd = &cobra.Command{
	Use:   "icons",
	Short: "List icon names usable in content files",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range icons.Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

func init() {
	rootCmd.AddCommand(iconsCmd)
}
