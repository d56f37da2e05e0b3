package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	def := Default()
	if cfg.LearnerName != def.LearnerName {
		t.Errorf("LearnerName = %q, want %q", cfg.LearnerName, def.LearnerName)
	}
	if cfg.LearnerEmail != def.LearnerEmail {
		t.Errorf("LearnerEmail = %q, want %q", cfg.LearnerEmail, def.LearnerEmail)
	}
	if cfg.DBPath != "" {
		t.Errorf("DBPath = %q, want empty", cfg.DBPath)
	}
}

func TestLoadReadsFile(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", root)

	dir := filepath.Join(root, "atelier")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := []byte("learner_name: Ada\nlearner_email: ada@example.com\ndb_path: /tmp/atelier-test.db\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LearnerName != "Ada" {
		t.Errorf("LearnerName = %q, want Ada", cfg.LearnerName)
	}
	if cfg.LearnerEmail != "ada@example.com" {
		t.Errorf("LearnerEmail = %q", cfg.LearnerEmail)
	}
	if cfg.DBPath != "/tmp/atelier-test.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("ATELIER_LEARNER_NAME", "Grace")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LearnerName != "Grace" {
		t.Errorf("LearnerName = %q, want Grace", cfg.LearnerName)
	}
}
