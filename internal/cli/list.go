package cli

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
	"github.com/spf13/cobra"

	"github.com/sharedbrain/brain/internal/lesson"
)

var listTagFilter string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all lessons",
	Long: `List every lesson visible to the guard: user lessons first, then
built-ins not shadowed by a user lesson.

Examples:
  brain list
  brain list --tag "api-*"`,
	RunE: listCommand,
}

func init() {
	listCmd.Flags().StringVar(&listTagFilter, "tag", "", "Only show lessons with a tag matching this glob")
	rootCmd.AddCommand(listCmd)
}

func listCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store := newStore(cfg)
	store.Warn = warnf
	lessons := store.Load()

	if listTagFilter != "" {
		g, err := glob.Compile(listTagFilter)
		if err != nil {
			return fmt.Errorf("invalid tag glob %q: %w", listTagFilter, err)
		}
		lessons = filterByTag(lessons, g)
	}

	if len(lessons) == 0 {
		fmt.Println("No lessons found. Use 'brain write' to add one.")
		return nil
	}

	fmt.Printf("%d lesson(s):\n\n", len(lessons))
	for _, l := range lessons {
		loc := ""
		if l.Builtin {
			loc = " (built-in)"
		}
		fmt.Printf("  %s %s%s\n", severityIcon(l.Severity), l.ID, loc)
		fmt.Printf("     %s\n", firstLine(l.Lesson, 60))
		if len(l.TriggerPatterns) > 0 {
			preview := l.TriggerPatterns
			if len(preview) > 3 {
				preview = preview[:3]
			}
			fmt.Printf("     Triggers: %s\n", strings.Join(preview, ", "))
		}
		if len(l.Tags) > 0 {
			fmt.Printf("     Tags: %s\n", strings.Join(l.Tags, ", "))
		}
		if l.ViolatedCount > 0 {
			fmt.Printf("     Violated %dx\n", l.ViolatedCount)
		}
		fmt.Println()
	}
	return nil
}

func filterByTag(lessons []lesson.Lesson, g glob.Glob) []lesson.Lesson {
	var out []lesson.Lesson
	for _, l := range lessons {
		for _, tag := range l.Tags {
			if g.Match(tag) {
				out = append(out, l)
				break
			}
		}
	}
	return out
}

func severityIcon(s lesson.Severity) string {
	switch s.Normalize() {
	case lesson.SeverityCritical:
		return "\xf0\x9f\x94\xb4" // red circle
	case lesson.SeverityWarning:
		return "\xf0\x9f\x9f\xa1" // yellow circle
	default:
		return "\xf0\x9f\x94\xb5" // blue circle
	}
}

func firstLine(s string, max int) string {
	if s == "" {
		return "(no description)"
	}
	line := strings.SplitN(s, "\n", 2)[0]
	runes := []rune(line)
	if len(runes) > max {
		return string(runes[:max])
	}
	return line
}
