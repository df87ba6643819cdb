package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sharedbrain/brain/internal/config"
	"github.com/sharedbrain/brain/internal/lesson"
)

var brainDir string

var rootCmd = &cobra.Command{
	Use:   "brain",
	Short: "Shared Brain - AI agents that learn from each other's mistakes",
	Long: `Shared Brain is a local policy guard for automated agents. Before an
agent runs a shell command, the guard checks it against declarative
"lesson" rules (regex triggers plus human-readable warnings) and records
every check in an append-only audit trail.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&brainDir, "brain-dir", "", "Brain state directory (default: $BRAIN_HOME or ~/.brain)")
}

func Execute() error {
	return rootCmd.Execute()
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(brainDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.EnsureDirs(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newStore assembles the lesson sources in precedence order: user lessons
// first, built-ins second. A user lesson can therefore shadow a built-in
// with the same id.
func newStore(cfg *config.Config) *lesson.Store {
	return lesson.NewStore(
		lesson.DirSource{Label: "user", Dir: cfg.LessonsDir},
		lesson.StaticSource{Label: "builtin", Lessons: lesson.Builtins()},
	)
}

func warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "[brain] warning: "+format+"\n", args...)
}
