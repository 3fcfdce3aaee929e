package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func setupHome(t *testing.T) string {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := filepath.Join(t.TempDir(), ".ihb")
	t.Setenv("IHB_HOME", dir)
	t.Setenv("IHB_DEFAULTS_TYPE", "")
	t.Setenv("IHB_DEFAULTS_FRAMEWORK", "")
	t.Setenv("IHB_DEFAULTS_MODEL", "")
	return dir
}

func TestDirHonorsEnv(t *testing.T) {
	dir := setupHome(t)
	if got := Dir(); got != dir {
		t.Errorf("Dir() = %q, want %q", got, dir)
	}
	if got := FilePath(); got != filepath.Join(dir, "config.yaml") {
		t.Errorf("FilePath() = %q", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	setupHome(t)
	if err := Load(); err != nil {
		t.Fatalf("Load() with no config file should succeed, got %v", err)
	}
	if got := GetOr(KeyDefaultModel, "resnet50"); got != "resnet50" {
		t.Errorf("GetOr() = %q, want fallback", got)
	}
}

func TestSetThenLoad(t *testing.T) {
	dir := setupHome(t)
	if err := Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if err := Set(KeyDefaultFramework, "tensorflow"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.Contains(string(data), "framework: tensorflow") {
		t.Errorf("config file content:\n%s", data)
	}

	viper.Reset()
	if err := Load(); err != nil {
		t.Fatalf("reload error: %v", err)
	}
	if got := Get(KeyDefaultFramework); got != "tensorflow" {
		t.Errorf("Get() after reload = %q, want tensorflow", got)
	}
	if got := GetOr(KeyDefaultType, "cv"); got != "cv" {
		t.Errorf("unset key should fall back, got %q", got)
	}
}

func TestEnvOverride(t *testing.T) {
	setupHome(t)
	t.Setenv("IHB_DEFAULTS_MODEL", "vit")
	if err := Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got := GetOr(KeyDefaultModel, "resnet50"); got != "vit" {
		t.Errorf("GetOr() = %q, want vit from env", got)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := setupHome(t)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("defaults: [oops"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := Load(); err == nil {
		t.Error("expected error for malformed config file")
	}
}
