package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// Runner executes an external command in dir and blocks until it exits.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// ExitError reports a command that started but exited non-zero.
type ExitError struct {
	ExitCode int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exited with status %d", e.ExitCode)
}

// ExecRunner runs commands with os/exec, streaming their output.
type ExecRunner struct {
	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Run starts name with args in dir. A missing binary is returned as the
// underlying exec error; a non-zero exit as *ExitError.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	bin, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("%s not found on PATH: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir

	cmd.Stdout = r.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	line := strings.TrimSpace(name + " " + strings.Join(args, " "))
	slog.Debug("running command", "cmd", line, "dir", dir)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{ExitCode: exitErr.ExitCode()}
		}
		return fmt.Errorf("starting %s: %w", name, err)
	}
	return nil
}
