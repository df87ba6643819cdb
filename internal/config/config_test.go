package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_ExplicitDirWins(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvHome, filepath.Join(dir, "ignored"))

	cfg, err := Load(filepath.Join(dir, "brain"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.BrainDir != filepath.Join(dir, "brain") {
		t.Errorf("BrainDir = %q", cfg.BrainDir)
	}
	if cfg.LessonsDir != filepath.Join(dir, "brain", "lessons") {
		t.Errorf("LessonsDir = %q", cfg.LessonsDir)
	}
	if cfg.AuditPath != filepath.Join(dir, "brain", "audit.jsonl") {
		t.Errorf("AuditPath = %q", cfg.AuditPath)
	}
}

func TestLoad_EnvHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvHome, dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.BrainDir != dir {
		t.Errorf("BrainDir = %q, want %q", cfg.BrainDir, dir)
	}
}

func TestLoad_AgentFromEnv(t *testing.T) {
	t.Setenv(EnvHome, t.TempDir())

	t.Setenv(EnvAgent, "ci-bot")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Agent != "ci-bot" {
		t.Errorf("Agent = %q, want ci-bot", cfg.Agent)
	}

	t.Setenv(EnvAgent, "")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Agent != DefaultAgent {
		t.Errorf("Agent = %q, want %q", cfg.Agent, DefaultAgent)
	}
}

func TestEnsureDirs(t *testing.T) {
	base := filepath.Join(t.TempDir(), "brain")
	cfg, err := Load(base)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := cfg.EnsureDirs(); err != nil {
		t.Fatalf("EnsureDirs failed: %v", err)
	}

	info, err := os.Stat(cfg.LessonsDir)
	if err != nil || !info.IsDir() {
		t.Fatalf("lessons dir missing: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0700 {
		t.Errorf("lessons dir permissions = %04o, want 0700", perm)
	}
}
