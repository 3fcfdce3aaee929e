package runtime

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
)

func requireSh(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available, skipping")
	}
}

func TestExecRunner_Success(t *testing.T) {
	requireSh(t)

	var stdout bytes.Buffer
	r := &ExecRunner{Stdout: &stdout, Stderr: &bytes.Buffer{}}
	dir := t.TempDir()

	if err := r.Run(context.Background(), dir, "sh", "-c", "pwd"); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !strings.Contains(stdout.String(), dir) {
		t.Errorf("command did not run in %s, pwd printed %q", dir, stdout.String())
	}
}

func TestExecRunner_NonZeroExit(t *testing.T) {
	requireSh(t)

	r := &ExecRunner{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	err := r.Run(context.Background(), t.TempDir(), "sh", "-c", "exit 3")
	if err == nil {
		t.Fatal("expected error for non-zero exit")
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error = %T (%v), want *ExitError", err, err)
	}
	if exitErr.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", exitErr.ExitCode)
	}
	if !strings.Contains(exitErr.Error(), "status 3") {
		t.Errorf("Error() = %q, want it to mention status 3", exitErr.Error())
	}
}

func TestExecRunner_MissingBinary(t *testing.T) {
	r := &ExecRunner{}
	err := r.Run(context.Background(), t.TempDir(), "ihb-definitely-not-a-real-binary")
	if err == nil {
		t.Fatal("expected error for missing binary")
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		t.Errorf("missing binary should not be reported as an exit error")
	}
}

func TestParseToolVersion(t *testing.T) {
	tests := []struct {
		output  string
		want    string
		wantErr bool
	}{
		{"git version 2.43.0", "2.43.0", false},
		{"git version 2.39.3 (Apple Git-146)", "2.39.3", false},
		{"Python 3.11.4", "3.11.4", false},
		{"Python 3.12", "3.12.0", false},
		{"no digits here", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			v, err := ParseToolVersion(tt.output)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseToolVersion(%q) error = %v, wantErr %v", tt.output, err, tt.wantErr)
			}
			if err == nil && v.String() != tt.want {
				t.Errorf("ParseToolVersion(%q) = %s, want %s", tt.output, v, tt.want)
			}
		})
	}
}

func TestCheckMinVersion(t *testing.T) {
	tests := []struct {
		version    string
		constraint string
		want       bool
	}{
		{"3.11.4", MinPythonVersion, true},
		{"3.8.0", MinPythonVersion, true},
		{"3.7.9", MinPythonVersion, false},
		{"2.7.18", MinPythonVersion, false},
		{"2.43.0", MinGitVersion, true},
		{"1.9.5", MinGitVersion, false},
	}
	for _, tt := range tests {
		v, err := ParseToolVersion(tt.version)
		if err != nil {
			t.Fatalf("ParseToolVersion(%q): %v", tt.version, err)
		}
		got, err := CheckMinVersion(v, tt.constraint)
		if err != nil {
			t.Fatalf("CheckMinVersion(%s, %s) error: %v", tt.version, tt.constraint, err)
		}
		if got != tt.want {
			t.Errorf("CheckMinVersion(%s, %s) = %v, want %v", tt.version, tt.constraint, got, tt.want)
		}
	}
}

func TestCheckMinVersion_BadConstraint(t *testing.T) {
	v, _ := ParseToolVersion("1.0.0")
	if _, err := CheckMinVersion(v, "not a constraint"); err == nil {
		t.Error("expected error for malformed constraint")
	}
}
