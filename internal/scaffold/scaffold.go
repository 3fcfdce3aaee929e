package scaffold

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/ihb-labs/ihb/internal/manifest"
	"github.com/ihb-labs/ihb/internal/project"
	"github.com/ihb-labs/ihb/internal/runtime"
)

// Subdirs are created under every project root.
var Subdirs = []string{"data", "models", "src", "configs"}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Dirs      []string
	Files     []string // project-relative, in write order
	Commands  []string
	Warnings  []string
}

// Generator writes project trees. The zero value is not usable; call New.
type Generator struct {
	runner runtime.Runner

	// LookupPython resolves the interpreter used for venv creation.
	LookupPython func() (string, error)
}

// New returns a Generator that runs external commands through r.
func New(r runtime.Runner) *Generator {
	return &Generator{
		runner:       r,
		LookupPython: runtime.LookupPython,
	}
}

// Generate lays out spec under outputDir. A failing external command aborts
// the run; files written before it are left in place.
func (g *Generator) Generate(ctx context.Context, spec project.Spec, outputDir string) (*Result, error) {
	result := &Result{OutputDir: outputDir}

	for _, sub := range Subdirs {
		dir := filepath.Join(outputDir, sub)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", dir, err)
		}
		result.Dirs = append(result.Dirs, sub)
	}

	if err := g.render(result, "README.md.tmpl", "README.md", spec); err != nil {
		return nil, err
	}
	if err := g.render(result, "gitignore.tmpl", ".gitignore", spec); err != nil {
		return nil, err
	}
	if err := g.render(result, trainTemplate(spec), "src/train.py", spec); err != nil {
		return nil, err
	}
	if err := g.writeConfig(result, spec); err != nil {
		return nil, err
	}

	if spec.Augment {
		if err := g.render(result, "augmentations.py.tmpl", "src/augmentations.py", spec); err != nil {
			return nil, err
		}
	}
	if spec.Wandb {
		if err := g.render(result, "wandb.yaml.tmpl", "configs/wandb.yaml", spec); err != nil {
			return nil, err
		}
	}
	if spec.Git {
		if err := g.run(ctx, result, "git", "init"); err != nil {
			return nil, err
		}
	}
	if spec.Docker {
		if err := g.render(result, "Dockerfile.tmpl", "Dockerfile", spec); err != nil {
			return nil, err
		}
	}
	if spec.License {
		if err := g.render(result, "LICENSE.tmpl", "LICENSE", spec); err != nil {
			return nil, err
		}
	}
	if spec.Venv {
		python, err := g.LookupPython()
		if err != nil {
			return nil, fmt.Errorf("creating virtual environment: %w", err)
		}
		if err := g.run(ctx, result, python, "-m", "venv", "venv"); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// trainTemplate picks the training stub. Anything other than pytorch gets
// the tensorflow stub.
func trainTemplate(spec project.Spec) string {
	if spec.IsPyTorch() {
		return "train_pytorch.py.tmpl"
	}
	return "train_tensorflow.py.tmpl"
}

// render executes an embedded template with spec and writes it to relPath
// under the result's output directory.
func (g *Generator) render(result *Result, tmplName, relPath string, spec project.Spec) error {
	tmplPath := "scaffolds/" + tmplName
	tmplBytes, err := fs.ReadFile(scaffoldFS, tmplPath)
	if err != nil {
		return fmt.Errorf("reading template %s: %w", tmplPath, err)
	}

	tmpl, err := template.New(tmplName).Parse(string(tmplBytes))
	if err != nil {
		return fmt.Errorf("parsing template %s: %w", tmplName, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, spec); err != nil {
		return fmt.Errorf("executing template %s: %w", tmplName, err)
	}

	return writeFile(result, relPath, buf.Bytes())
}

// writeConfig writes configs/config.yaml and records schema issues as
// warnings.
func (g *Generator) writeConfig(result *Result, spec project.Spec) error {
	data, err := manifest.Encode(manifest.FromSpec(spec))
	if err != nil {
		return err
	}
	if err := writeFile(result, manifest.ConfigFile, data); err != nil {
		return err
	}

	valResult, err := manifest.Validate(data)
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Could not validate %s: %v", manifest.ConfigFile, err))
		return nil
	}
	for _, issue := range valResult.Issues {
		result.Warnings = append(result.Warnings, manifest.ConfigFile+": "+issue.String())
	}
	return nil
}

func (g *Generator) run(ctx context.Context, result *Result, name string, args ...string) error {
	line := strings.Join(append([]string{name}, args...), " ")
	if err := g.runner.Run(ctx, result.OutputDir, name, args...); err != nil {
		return fmt.Errorf("%s: %w", line, err)
	}
	result.Commands = append(result.Commands, line)
	return nil
}

func writeFile(result *Result, relPath string, data []byte) error {
	outPath := filepath.Join(result.OutputDir, filepath.FromSlash(relPath))
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	slog.Debug("wrote file", "path", outPath, "bytes", len(data))
	result.Files = append(result.Files, relPath)
	return nil
}
