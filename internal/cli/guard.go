package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sharedbrain/brain/internal/audit"
	"github.com/sharedbrain/brain/internal/guard"
)

var guardAutoConfirm bool

var guardCmd = &cobra.Command{
	Use:   "guard <command or code snippet>",
	Short: "Check a command against known lessons",
	Long: `Check a command against every known lesson before running it.

Exit code 0 means proceed, 1 means the command was denied. Every check is
recorded in the audit log.

Example:
  brain guard "curl -X PUT https://api.example.com/articles/123"
  brain guard --auto-confirm "rm -rf ./build"`,
	Args: cobra.MinimumNArgs(1),
	RunE: guardCommand,
}

func init() {
	guardCmd.Flags().BoolVar(&guardAutoConfirm, "auto-confirm", false, "Confirm matched lessons without prompting")
	rootCmd.AddCommand(guardCmd)
}

func guardCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := audit.NewLogger(cfg.AuditPath)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer logger.Close()

	engine := guard.New(newStore(cfg), logger, guard.Env{})
	engine.RegisterCheck(guard.Check{
		LessonID: guard.PipeToShellLessonID,
		Priority: 0,
		Fn:       guard.PipeToShellCheck,
	})

	command := strings.Join(args, " ")
	if !engine.Guard(command, cfg.Agent, guardAutoConfirm) {
		logger.Close()
		os.Exit(1)
	}
	return nil
}
