package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/nfrund/landing/internal/inquiry"
	"github.com/nfrund/landing/internal/storage"
	"github.com/spf13/cobra"
)

var inquiriesFormat string

var inquiriesCmd = &cobra.Command{
	Use:   "inquiries",
	Short: "List stored consultation requests",
	Long: `List the consultation requests stored in INQUIRY_DIR, oldest first.

Output formats:
  table - Human-readable table format (default)
  json  - Machine-readable JSON`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		if cfg.GetInquiryDir() == "" {
			return fmt.Errorf("INQUIRY_DIR is not set; requests are only kept in memory")
		}
		files, err := storage.NewDirStore(cfg.GetInquiryDir())
		if err != nil {
			return err
		}
		records, err := inquiry.NewStore(files).List(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch inquiriesFormat {
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(records)
		case "table":
			if len(records) == 0 {
				fmt.Fprintln(out, "No consultation requests yet.")
				return nil
			}
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "RECEIVED\tNAME\tEMAIL\tMESSAGE")
			for _, r := range records {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.ReceivedAt.Format("2006-01-02 15:04"), r.Name, r.Email, truncate(r.Message, 40))
			}
			return w.Flush()
		default:
			return fmt.Errorf("unknown format %q (valid: table, json)", inquiriesFormat)
		}
	},
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func init() {
	rootCmd.AddCommand(inquiriesCmd)
	inquiriesCmd.Flags().StringVarP(&inquiriesFormat, "format", "f", "table", "Output format (table, json)")
}
