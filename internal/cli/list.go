package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ihb-labs/ihb/internal/project"
	"github.com/spf13/cobra"
)

// listOutput is the JSON shape of "ihb list --json".
type listOutput struct {
	Types      []string `json:"types"`
	Frameworks []string `json:"frameworks"`
	Models     []string `json:"models"`
}

func newListCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List suggested project types, frameworks, and models",
		Long: `List the values suggested for --type, --framework, and --model.

Other values are accepted by create; they are recorded in the config as given.
Any framework other than pytorch gets the tensorflow training stub.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if asJSON {
				data, err := json.MarshalIndent(listOutput{
					Types:      project.KnownTypes,
					Frameworks: project.KnownFrameworks,
					Models:     project.KnownModels,
				}, "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling list: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			fmt.Fprintf(out, "Types:      %s (default %s)\n", strings.Join(project.KnownTypes, ", "), project.DefaultType)
			fmt.Fprintf(out, "Frameworks: %s (default %s)\n", strings.Join(project.KnownFrameworks, ", "), project.DefaultFramework)
			fmt.Fprintf(out, "Models:     %s (default %s)\n", strings.Join(project.KnownModels, ", "), project.DefaultModel)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}
