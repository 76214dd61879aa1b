package app_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"hrtrack/internal/app"
)

func TestLoadConfig_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HRTRACK_HOME", home)

	cfg, err := app.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Home != home {
		t.Fatalf("want home %q, got %q", home, cfg.Home)
	}
	if cfg.Timeout != 15*time.Second || cfg.LogLevel != "warn" || cfg.RateBurst != 1 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.APIURL != "" || cfg.Retries != 0 {
		t.Fatalf("unexpected values %+v", cfg)
	}
}

func TestLoadConfig_EnvFileDoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := "HRTRACK_API_URL=http://from-file:9000\nHRTRACK_RETRIES=3\nHRTRACK_PAGE_SIZE=50\n"
	if err := os.WriteFile(envFile, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("HRTRACK_HOME", dir)
	t.Setenv("HRTRACK_PAGE_SIZE", "10")
	// godotenv sets variables in the process; make sure t restores them.
	t.Setenv("HRTRACK_API_URL", "")
	os.Unsetenv("HRTRACK_API_URL")
	t.Setenv("HRTRACK_RETRIES", "")
	os.Unsetenv("HRTRACK_RETRIES")

	cfg, err := app.LoadConfig(envFile)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.APIURL != "http://from-file:9000" || cfg.Retries != 3 {
		t.Fatalf("env file not applied: %+v", cfg)
	}
	if cfg.PageSize != 10 {
		t.Fatalf("env file overrode the environment: page size %d", cfg.PageSize)
	}
}

func TestLoadConfig_BadValue(t *testing.T) {
	t.Setenv("HRTRACK_HOME", t.TempDir())
	t.Setenv("HRTRACK_TIMEOUT", "soon")

	if _, err := app.LoadConfig(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatal("want error for an unparsable duration")
	}
}
