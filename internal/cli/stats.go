package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sharedbrain/brain/internal/audit"
	"github.com/sharedbrain/brain/internal/lesson"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Quick stats summary",
	RunE:  statsCommand,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func statsCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store := newStore(cfg)
	store.Warn = warnf
	lessons := store.Load()
	entries := audit.ReadAll(cfg.AuditPath, warnf)

	critical := 0
	violations := 0
	for _, l := range lessons {
		if l.Severity.Normalize() == lesson.SeverityCritical {
			critical++
		}
		violations += l.ViolatedCount
	}

	fires, confirmed, aborted := 0, 0, 0
	for _, e := range entries {
		switch e.Note {
		case audit.NoteGuardTriggered, audit.NoteUserConfirmed, audit.NoteUserAborted:
			fires++
		}
		switch e.Note {
		case audit.NoteUserConfirmed:
			confirmed++
		case audit.NoteUserAborted:
			aborted++
		}
	}

	fmt.Println("Shared Brain Stats")
	fmt.Println(strings.Repeat("=", 40))
	fmt.Printf("Lessons:       %d (%d critical)\n", len(lessons), critical)
	fmt.Printf("Violations:    %d (historical)\n", violations)
	fmt.Printf("Guard fires:   %d\n", fires)
	fmt.Printf("Proceeded:     %d\n", confirmed)
	fmt.Printf("Aborted:       %d\n", aborted)
	if fires > 0 {
		fmt.Printf("Prevention:    %.0f%% (mistakes caught)\n", float64(aborted)/float64(fires)*100)
	}
	return nil
}
