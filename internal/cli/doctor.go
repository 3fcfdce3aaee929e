package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/ihb-labs/ihb/internal/config"
	"github.com/ihb-labs/ihb/internal/manifest"
	"github.com/ihb-labs/ihb/internal/runtime"
	"github.com/ihb-labs/ihb/internal/scaffold"
	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	var checkProject string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the tools used by create",
		Long: `Check that git and Python are available for --git and --venv, and
optionally verify the layout and config of a generated project.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if checkProject != "" {
				return runProjectCheck(out, checkProject)
			}

			runToolCheck(cmd.Context(), out)
			runConfigCheck(out)
			return nil
		},
	}
	cmd.Flags().StringVar(&checkProject, "check-project", "", "Verify a generated project at the given path")
	return cmd
}

func runToolCheck(ctx context.Context, w io.Writer) {
	fmt.Fprintln(w, "Tool check:")
	checkTool(ctx, w, "git", runtime.MinGitVersion)

	python, err := runtime.LookupPython()
	if err != nil {
		fmt.Fprintf(w, "  [MISS] python not found (needed for --venv)\n")
		return
	}
	checkTool(ctx, w, python, runtime.MinPythonVersion)
}

func checkTool(ctx context.Context, w io.Writer, name, constraint string) {
	path, err := exec.LookPath(name)
	if err != nil {
		fmt.Fprintf(w, "  [MISS] %s not found\n", name)
		return
	}

	v, err := runtime.ToolVersion(ctx, name)
	if err != nil {
		fmt.Fprintf(w, "  [WARN] %s found at %s, version unknown: %v\n", name, path, err)
		return
	}
	ok, err := runtime.CheckMinVersion(v, constraint)
	if err != nil {
		fmt.Fprintf(w, "  [WARN] %s %s: %v\n", name, v, err)
		return
	}
	if !ok {
		fmt.Fprintf(w, "  [WARN] %s %s at %s does not satisfy %s\n", name, v, path, constraint)
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s %s found at %s\n", name, v, path)
}

func runConfigCheck(w io.Writer) {
	fmt.Fprintln(w, "Config check:")
	path := config.FilePath()
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(w, "  [INFO] No user config at %s, using built-in defaults\n", path)
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s\n", path)
	for _, key := range config.Keys {
		if v := config.Get(key); v != "" {
			fmt.Fprintf(w, "         %s = %s\n", key, v)
		}
	}
}

// runProjectCheck verifies the fixed layout and the config schema of a
// generated project. It returns an error when anything is missing or invalid.
func runProjectCheck(w io.Writer, root string) error {
	fmt.Fprintf(w, "Project check: %s\n", root)
	failed := 0

	for _, sub := range scaffold.Subdirs {
		info, err := os.Stat(filepath.Join(root, sub))
		if err != nil || !info.IsDir() {
			fmt.Fprintf(w, "  [FAIL] missing directory %s/\n", sub)
			failed++
			continue
		}
		fmt.Fprintf(w, "  [ OK ] %s/\n", sub)
	}

	for _, f := range []string{"README.md", ".gitignore", "src/train.py"} {
		if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(f))); err != nil {
			fmt.Fprintf(w, "  [FAIL] missing %s\n", f)
			failed++
			continue
		}
		fmt.Fprintf(w, "  [ OK ] %s\n", f)
	}

	configPath := filepath.Join(root, filepath.FromSlash(manifest.ConfigFile))
	result, err := manifest.ValidateFile(configPath)
	switch {
	case err != nil:
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", manifest.ConfigFile, err)
		failed++
	case !result.Valid:
		for _, issue := range result.Issues {
			fmt.Fprintf(w, "  [FAIL] %s: %s\n", manifest.ConfigFile, issue)
		}
		failed++
	default:
		fmt.Fprintf(w, "  [ OK ] %s\n", manifest.ConfigFile)
		if cfg, err := manifest.Parse(configPath); err == nil {
			fmt.Fprintf(w, "         %s/%s/%s augmentation=%t wandb=%t\n",
				cfg.ProjectType, cfg.Framework, cfg.Model, cfg.Augmentation, cfg.Wandb)
		}
	}

	if failed > 0 {
		return fmt.Errorf("project check found %d problem(s) in %s", failed, root)
	}
	return nil
}
