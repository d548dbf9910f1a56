package config

import (
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CAREINTAKE_CONFIG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Intake.ServiceName != "Child Support Services" {
		t.Errorf("service name = %q", cfg.Intake.ServiceName)
	}
	if cfg.UI.ToastSeconds != 3 {
		t.Errorf("toast seconds = %d", cfg.UI.ToastSeconds)
	}
	if !cfg.UI.AltScreen {
		t.Error("alt screen default off")
	}
	if filepath.Base(cfg.Database.Path) != "careintake.db" {
		t.Errorf("db path = %q", cfg.Database.Path)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CAREINTAKE_DATABASE_PATH", "/tmp/custom.db")
	t.Setenv("CAREINTAKE_UI_TOAST_SECONDS", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.Path != "/tmp/custom.db" {
		t.Errorf("db path = %q", cfg.Database.Path)
	}
	if cfg.UI.ToastSeconds != 5 {
		t.Errorf("toast seconds = %d", cfg.UI.ToastSeconds)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("CAREINTAKE_CONFIG", filepath.Join(dir, "config.toml"))

	want := Config{
		Database: DatabaseConfig{Path: filepath.Join(dir, "intake.db")},
		Intake:   IntakeConfig{ServiceName: "Northside Child Services"},
		UI:       UIConfig{ToastSeconds: 4, AltScreen: false},
	}
	if err := Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Intake.ServiceName != want.Intake.ServiceName {
		t.Errorf("service name = %q", got.Intake.ServiceName)
	}
	if got.Database.Path != want.Database.Path {
		t.Errorf("db path = %q", got.Database.Path)
	}
	if got.UI.ToastSeconds != 4 {
		t.Errorf("toast seconds = %d", got.UI.ToastSeconds)
	}
}
