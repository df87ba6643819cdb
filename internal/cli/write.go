package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sharedbrain/brain/internal/lesson"
)

var writeFromFile string

var writeCmd = &cobra.Command{
	Use:   "write",
	Short: "Add a new lesson",
	Long: `Add a new lesson, either interactively or from a YAML file.

Examples:
  brain write
  brain write -f my-lesson.yaml`,
	RunE: writeCommand,
}

func init() {
	writeCmd.Flags().StringVarP(&writeFromFile, "file", "f", "", "Read the lesson from a YAML file")
	rootCmd.AddCommand(writeCmd)
}

func writeCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var l lesson.Lesson
	if writeFromFile != "" {
		l, err = lesson.ParseFile(writeFromFile)
		if err != nil {
			return fmt.Errorf("failed to read lesson file: %w", err)
		}
	} else {
		l, err = promptLesson()
		if err != nil {
			return err
		}
	}

	path, err := lesson.Write(cfg.LessonsDir, l)
	if err != nil {
		return err
	}
	fmt.Printf("Lesson %q written to %s\n", l.ID, path)
	return nil
}

func promptLesson() (lesson.Lesson, error) {
	reader := bufio.NewReader(os.Stdin)
	readField := func(label string) (string, error) {
		fmt.Printf("%s: ", label)
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("aborted: %w", err)
		}
		return strings.TrimSpace(line), nil
	}
	readList := func(label string) ([]string, error) {
		fmt.Printf("%s (empty line to finish):\n", label)
		var items []string
		for {
			item, err := readField("  >")
			if err != nil {
				return nil, err
			}
			if item == "" {
				return items, nil
			}
			items = append(items, item)
		}
	}

	fmt.Println("New Lesson")
	fmt.Println(strings.Repeat("-", 40))

	id, err := readField("ID (short, kebab-case)")
	if err != nil {
		return lesson.Lesson{}, err
	}
	if id == "" {
		return lesson.Lesson{}, fmt.Errorf("aborted: empty lesson id")
	}

	severity, err := readField("Severity (critical/warning/info) [warning]")
	if err != nil {
		return lesson.Lesson{}, err
	}
	if severity == "" {
		severity = string(lesson.SeverityWarning)
	}

	text, err := readField("Lesson (what should agents know?)")
	if err != nil {
		return lesson.Lesson{}, err
	}

	patterns, err := readList("Trigger patterns (regex)")
	if err != nil {
		return lesson.Lesson{}, err
	}
	checklist, err := readList("Checklist items")
	if err != nil {
		return lesson.Lesson{}, err
	}

	return lesson.Lesson{
		ID:              id,
		Severity:        lesson.Severity(severity).Normalize(),
		Created:         time.Now().UTC().Format("2006-01-02"),
		TriggerPatterns: patterns,
		Lesson:          text,
		Checklist:       checklist,
	}, nil
}
