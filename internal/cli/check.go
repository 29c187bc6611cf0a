package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Scan every region once and print the datacenters in stock",
		Long: `Scan every configured plan code once, notify on stock like the monitor
does, print the result and exit. The exit status is 0 whether or not stock
was found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			result := newService(cfg).RunCycle(cmd.Context())

			out := cmd.OutOrStdout()
			if !result.Found {
				fmt.Fprintf(out, "No stock for %s in %s\n", cfg.Fingerprint().Label, strings.Join(cfg.Regions, ", "))
				return nil
			}
			for _, hit := range result.Hits {
				fmt.Fprintf(out, "%s\t%s\t%s\n", hit.PlanCode, strings.ToUpper(hit.Datacenter), hit.Availability)
			}
			return nil
		},
	}
}
