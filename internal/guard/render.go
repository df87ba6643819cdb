package guard

import (
	"fmt"
	"strings"

	"github.com/sharedbrain/brain/internal/lesson"
)

const (
	colorRed   = "\033[1;31m"
	colorYell  = "\033[1;33m"
	colorCyan  = "\033[1;36m"
	colorReset = "\033[0m"
)

func severityColor(s lesson.Severity) string {
	switch s.Normalize() {
	case lesson.SeverityCritical:
		return colorRed
	case lesson.SeverityWarning:
		return colorYell
	default:
		return colorCyan
	}
}

// render prints every matched lesson in scan order: banner, lesson text,
// checklist, incident provenance.
func (e *Engine) render(matches []Match) {
	for _, m := range matches {
		l := m.Lesson
		color := severityColor(l.Severity)
		rule := strings.Repeat("=", 60)

		fmt.Fprintf(e.env.Out, "\n%s%s%s\n", color, rule, colorReset)
		fmt.Fprintf(e.env.Out, "%s%s LESSON: %s%s\n", color, strings.ToUpper(string(l.Severity.Normalize())), l.ID, colorReset)
		if l.ViolatedCount > 0 {
			last := l.LastViolated
			if last == "" {
				last = "never"
			}
			fmt.Fprintf(e.env.Out, "%s   (violated %dx, last: %s)%s\n", color, l.ViolatedCount, last, colorReset)
		}
		fmt.Fprintln(e.env.Out, rule)

		text := l.Lesson
		if text == "" {
			text = "No description available."
		}
		for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
			fmt.Fprintf(e.env.Out, "   %s\n", line)
		}

		if len(l.Checklist) > 0 {
			fmt.Fprintf(e.env.Out, "\n   %sChecklist:%s\n", color, colorReset)
			for _, item := range l.Checklist {
				fmt.Fprintf(e.env.Out, "   [ ] %s\n", item)
			}
		}

		if l.Source.Incident != "" {
			fmt.Fprintf(e.env.Out, "\n   Source: %s\n", l.Source.Incident)
		}
		fmt.Fprintln(e.env.Out)
	}
}
