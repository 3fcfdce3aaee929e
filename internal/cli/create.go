package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/ihb-labs/ihb/internal/branding"
	"github.com/ihb-labs/ihb/internal/config"
	"github.com/ihb-labs/ihb/internal/project"
	"github.com/ihb-labs/ihb/internal/scaffold"
	"github.com/spf13/cobra"
)

var warnColor = color.New(color.FgYellow)

type createOptions struct {
	outputDir string
	spec      project.Spec
}

func newCreateCmd() *cobra.Command {
	opts := &createOptions{}

	cmd := &cobra.Command{
		Use:   "create <project_name>",
		Short: "Create a new ML project skeleton",
		Long: `Create a new machine-learning project in ./<project_name>.

The project always gets data/, models/, src/, and configs/ directories, a
README, a .gitignore, src/train.py, and configs/config.yaml. Everything else
is opt-in. Existing files in the target directory are overwritten.

Examples:
  ` + branding.CLIName() + ` create demo
  ` + branding.CLIName() + ` create sentiment --type nlp --framework tensorflow --model bert --wandb
  ` + branding.CLIName() + ` create proj --aug --wandb --git --docker --license --venv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.spec.Name = args[0]
			applyUserDefaults(cmd, &opts.spec)
			return runCreate(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.spec.Type, "type", project.DefaultType, "Project type: "+strings.Join(project.KnownTypes, " | "))
	f.StringVar(&opts.spec.Framework, "framework", project.DefaultFramework, "Framework: "+strings.Join(project.KnownFrameworks, " | "))
	f.StringVar(&opts.spec.Model, "model", project.DefaultModel, "Model: "+strings.Join(project.KnownModels, " | "))
	f.BoolVar(&opts.spec.Augment, "aug", false, "Enable data augmentation")
	f.BoolVar(&opts.spec.Wandb, "wandb", false, "Include W&B logging")
	f.BoolVar(&opts.spec.Git, "git", false, "Initialize a git repo")
	f.BoolVar(&opts.spec.Docker, "docker", false, "Include a Dockerfile")
	f.BoolVar(&opts.spec.License, "license", false, "Add an MIT license")
	f.BoolVar(&opts.spec.Venv, "venv", false, "Create a Python venv")
	f.StringVar(&opts.outputDir, "output-dir", "", "Parent directory for the project (default: current directory)")

	return cmd
}

// applyUserDefaults fills flags the user did not pass from ~/.ihb/config.yaml.
func applyUserDefaults(cmd *cobra.Command, spec *project.Spec) {
	flags := cmd.Flags()
	if !flags.Changed("type") {
		spec.Type = config.GetOr(config.KeyDefaultType, spec.Type)
	}
	if !flags.Changed("framework") {
		spec.Framework = config.GetOr(config.KeyDefaultFramework, spec.Framework)
	}
	if !flags.Changed("model") {
		spec.Model = config.GetOr(config.KeyDefaultModel, spec.Model)
	}
}

func runCreate(cmd *cobra.Command, opts *createOptions) error {
	spec := opts.spec
	if err := spec.Validate(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, msg := range spec.Advisories() {
		warnColor.Fprintf(out, "Warning: %s\n", msg)
	}
	printSummary(out, spec)

	parent := opts.outputDir
	if parent == "" {
		parent = "."
	}
	outDir := filepath.Join(parent, spec.Name)

	gen := scaffold.New(newRunner(out, cmd.ErrOrStderr()))
	gen.LookupPython = lookupPython
	result, err := gen.Generate(cmd.Context(), spec, outDir)
	if err != nil {
		return err
	}

	printResult(out, result)
	return nil
}

func printSummary(w io.Writer, spec project.Spec) {
	fmt.Fprintln(w, "Project configuration:")
	for _, row := range spec.Summary() {
		fmt.Fprintf(w, "  %-10s: %s\n", row.Label, row.Value)
	}
}

func printResult(w io.Writer, result *scaffold.Result) {
	fmt.Fprintf(w, "\nCreated project at %s/\n", result.OutputDir)
	for _, f := range result.Files {
		fmt.Fprintf(w, "  %s\n", f)
	}
	if len(result.Commands) > 0 {
		fmt.Fprintln(w, "\nRan:")
		for _, c := range result.Commands {
			fmt.Fprintf(w, "  %s\n", c)
		}
	}
	if len(result.Warnings) > 0 {
		fmt.Fprintln(w, "\nWarnings:")
		for _, msg := range result.Warnings {
			fmt.Fprintf(w, "  - %s\n", msg)
		}
	}

	fmt.Fprintln(w, "\nNext steps:")
	fmt.Fprintf(w, "  1. cd %s\n", result.OutputDir)
	fmt.Fprintln(w, "  2. Put your dataset under data/")
	fmt.Fprintln(w, "  3. Implement main() in src/train.py")
}
