package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ihb-labs/ihb/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage user defaults",
		Long: `Read and write defaults stored at ~/.ihb/config.yaml.

Known keys:
  ` + strings.Join(config.Keys, "\n  "),
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if err := checkKey(key); err != nil {
				return err
			}
			if err := config.Set(key, value); err != nil {
				return fmt.Errorf("setting config key %q: %w", key, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkKey(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Show all known keys and their values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, key := range config.Keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, config.Get(key))
			}
			return nil
		},
	})

	return cmd
}

func checkKey(key string) error {
	if !slices.Contains(config.Keys, key) {
		return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(config.Keys, ", "))
	}
	return nil
}
