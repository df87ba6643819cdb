package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sharedbrain/brain/internal/audit"
)

var (
	auditAsJSON bool
	auditLast   int
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Show the compliance report",
	Long: `Aggregate the audit log into per-lesson counts and the global
compliance rate, and show recent entries.

Examples:
  brain audit
  brain audit --json
  brain audit --last 25`,
	RunE: auditCommand,
}

func init() {
	auditCmd.Flags().BoolVar(&auditAsJSON, "json", false, "Print raw entries as JSON")
	auditCmd.Flags().IntVar(&auditLast, "last", 10, "Number of recent entries to show")
	rootCmd.AddCommand(auditCmd)
}

func auditCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	entries := audit.ReadAll(cfg.AuditPath, warnf)

	if auditAsJSON {
		if entries == nil {
			entries = []audit.Entry{}
		}
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	if len(entries) == 0 {
		fmt.Println("No audit entries yet.")
		return nil
	}

	report := audit.BuildReport(entries)

	fmt.Println("Audit Report")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("Total entries: %d\n", report.TotalEntries)
	fmt.Printf("Confirmed:     %d\n", report.Confirmed)
	fmt.Printf("Blocked:       %d\n", report.Blocked)
	if report.Confirmed+report.Blocked > 0 {
		fmt.Printf("Compliance:    %.0f%%\n", report.ComplianceRate()*100)
	}
	fmt.Println()

	if len(report.PerLesson) > 0 {
		fmt.Println("Per-lesson breakdown:")
		for _, id := range report.LessonIDs() {
			stats := report.PerLesson[id]
			fmt.Printf("  [%s] checks=%d, confirmed=%d, blocked=%d\n", id, stats.Checks, stats.Confirmed, stats.Blocked)
		}
		fmt.Println()
	}

	last := auditLast
	if last > len(entries) {
		last = len(entries)
	}
	if last > 0 {
		fmt.Printf("Last %d entries:\n", last)
		for _, e := range entries[len(entries)-last:] {
			fmt.Printf("  %s %s [%s] %s (%s)\n", followedIcon(e.Followed), shortTimestamp(e.Timestamp), e.Agent, firstLine(e.Action, 50), e.Note)
		}
	}
	return nil
}

func followedIcon(followed *bool) string {
	switch {
	case followed == nil:
		return "\xe2\x9a\xaa" // white circle: undetermined
	case *followed:
		return "\xe2\x9c\x85" // check mark
	default:
		return "\xe2\x9d\x8c" // cross mark
	}
}

func shortTimestamp(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		if len(ts) > 19 {
			return ts[:19]
		}
		return ts
	}
	return t.Format("2006-01-02 15:04:05")
}
