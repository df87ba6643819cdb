// Package config builds the explicit engine context: every path the guard
// engine touches lives here and is passed in by the caller, never read
// from package globals.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	DefaultBrainDir  = ".brain"
	DefaultAuditFile = "audit.jsonl"
	LessonsDirName   = "lessons"

	// EnvHome overrides the brain directory; EnvAgent names the caller
	// in audit entries.
	EnvHome  = "BRAIN_HOME"
	EnvAgent = "BRAIN_AGENT"

	DefaultAgent = "cli-user"
)

type Config struct {
	// BrainDir is the root state directory, default ~/.brain.
	BrainDir string
	// LessonsDir holds user-written lessons, one YAML document each.
	LessonsDir string
	// AuditPath is the JSONL audit log.
	AuditPath string
	// Agent identifies the caller in audit entries.
	Agent string
}

// Load resolves the engine context. brainDir, when non-empty, overrides
// both BRAIN_HOME and the home-directory default.
func Load(brainDir string) (*Config, error) {
	if brainDir == "" {
		brainDir = os.Getenv(EnvHome)
	}
	if brainDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		brainDir = filepath.Join(home, DefaultBrainDir)
	}

	agent := os.Getenv(EnvAgent)
	if agent == "" {
		agent = DefaultAgent
	}

	return &Config{
		BrainDir:   brainDir,
		LessonsDir: filepath.Join(brainDir, LessonsDirName),
		AuditPath:  filepath.Join(brainDir, DefaultAuditFile),
		Agent:      agent,
	}, nil
}

// EnsureDirs creates the state directories if absent.
func (c *Config) EnsureDirs() error {
	for _, dir := range []string{c.BrainDir, c.LessonsDir} {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return nil
}
