package cli

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sharedbrain/brain/internal/lesson"
)

var checkCmd = &cobra.Command{
	Use:   "check <keyword>",
	Short: "Search lessons by keyword",
	Long: `Search all lesson fields for a keyword. A keyword containing glob
metacharacters (*, ?, [) is matched as a glob against lesson ids and tags.

Examples:
  brain check "api safety"
  brain check "curl-*"`,
	Args: cobra.MinimumNArgs(1),
	RunE: checkCommand,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func checkCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	keyword := strings.Join(args, " ")
	store := newStore(cfg)
	store.Warn = warnf

	found := searchLessons(store.Load(), keyword)
	if len(found) == 0 {
		fmt.Printf("No lessons found for %q\n", keyword)
		return nil
	}

	fmt.Printf("Found %d lesson(s) matching %q:\n\n", len(found), keyword)
	for _, l := range found {
		fmt.Printf("  %s [%s] %s\n", severityIcon(l.Severity), l.ID, firstLine(l.Lesson, 80))
		if l.ViolatedCount > 0 {
			fmt.Printf("     Violated %d time(s)\n", l.ViolatedCount)
		}
	}
	return nil
}

// searchLessons matches a keyword against the full serialized lesson, or
// as a glob against ids and tags when it contains glob metacharacters.
func searchLessons(lessons []lesson.Lesson, keyword string) []lesson.Lesson {
	var g glob.Glob
	if strings.ContainsAny(keyword, "*?[") {
		if compiled, err := glob.Compile(strings.ToLower(keyword)); err == nil {
			g = compiled
		}
	}

	needle := strings.ToLower(keyword)
	var found []lesson.Lesson
	for _, l := range lessons {
		if g != nil {
			if matchesGlob(l, g) {
				found = append(found, l)
			}
			continue
		}
		data, err := yaml.Marshal(&l)
		if err != nil {
			continue
		}
		if strings.Contains(strings.ToLower(string(data)), needle) {
			found = append(found, l)
		}
	}
	return found
}

func matchesGlob(l lesson.Lesson, g glob.Glob) bool {
	if g.Match(strings.ToLower(l.ID)) {
		return true
	}
	for _, tag := range l.Tags {
		if g.Match(strings.ToLower(tag)) {
			return true
		}
	}
	return false
}
