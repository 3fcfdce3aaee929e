package cli

import (
	"encoding/json"
	"fmt"

	"github.com/ihb-labs/ihb/internal/branding"
	"github.com/spf13/cobra"
)

func newVersionCmd(build BuildInfo) *cobra.Command {
	var short, asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(out, build.Version)
				return nil
			}

			if asJSON {
				info := map[string]string{
					"version": build.Version,
					"commit":  build.Commit,
					"date":    build.Date,
				}
				data, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling version info: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			fmt.Fprintf(out, "%s version %s (commit: %s, built: %s)\n", branding.CLIName(), build.Version, build.Commit, build.Date)
			return nil
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "Print version number only")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print version info as JSON")
	return cmd
}
