package runtime

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"

	"github.com/Masterminds/semver/v3"
)

// Minimum tool versions checked by doctor. venv ships with Python 3.3+, but
// the generated Dockerfile targets 3.10.
const (
	MinGitVersion    = ">= 2.0.0"
	MinPythonVersion = ">= 3.8.0"
)

var versionPattern = regexp.MustCompile(`(\d+)\.(\d+)(?:\.(\d+))?`)

// ParseToolVersion extracts the first dotted version from tool output such as
// "git version 2.43.0" or "Python 3.11.4".
func ParseToolVersion(output string) (*semver.Version, error) {
	m := versionPattern.FindString(output)
	if m == "" {
		return nil, fmt.Errorf("no version number in %q", output)
	}
	return semver.NewVersion(m)
}

// ToolVersion runs "<name> --version" and parses its output. Python 2 prints
// the version on stderr, so both streams are read.
func ToolVersion(ctx context.Context, name string) (*semver.Version, error) {
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, name, "--version")
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("running %s --version: %w", name, err)
	}
	return ParseToolVersion(out.String())
}

// CheckMinVersion reports whether v satisfies constraint.
func CheckMinVersion(v *semver.Version, constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parsing constraint %q: %w", constraint, err)
	}
	return c.Check(v), nil
}
