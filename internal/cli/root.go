package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ihb-labs/ihb/internal/branding"
	"github.com/ihb-labs/ihb/internal/config"
	"github.com/ihb-labs/ihb/internal/logger"
	"github.com/ihb-labs/ihb/internal/runtime"
	"github.com/spf13/cobra"
)

// BuildInfo is injected via ldflags.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// newRunner builds the runner used for git and venv. Tests replace it.
var newRunner = func(stdout, stderr io.Writer) runtime.Runner {
	return &runtime.ExecRunner{Stdout: stdout, Stderr: stderr}
}

var lookupPython = runtime.LookupPython

// NewRootCmd assembles the full command tree.
func NewRootCmd(build BuildInfo) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` scaffolds a minimal machine-learning project: data, models, src,
and configs directories, a training stub for pytorch or tensorflow, a config
file, and optional extras (augmentation stub, W&B config, git repository,
Dockerfile, license, Python virtual environment).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.Setup(cmd.ErrOrStderr(), verbose)
			if err := config.Load(); err != nil {
				// Bad user defaults should not block scaffolding.
				slog.Warn("ignoring user config", "path", config.FilePath(), "error", err)
			}
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log diagnostic output to stderr")

	root.AddCommand(
		newCreateCmd(),
		newConfigCmd(),
		newDoctorCmd(),
		newListCmd(),
		newVersionCmd(build),
	)
	return root
}

// Execute runs the root command and prints any error to stderr.
func Execute(build BuildInfo) error {
	root := NewRootCmd(build)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
