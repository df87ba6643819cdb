package lesson

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// Normalize maps unknown severity values to info so a typo in a lesson
// file never changes guard behavior in a surprising direction.
func (s Severity) Normalize() Severity {
	switch s {
	case SeverityCritical, SeverityWarning, SeverityInfo:
		return s
	default:
		return SeverityInfo
	}
}

// Rank returns a numeric severity for display ordering and stats.
// Higher number = more severe.
func (s Severity) Rank() int {
	switch s.Normalize() {
	case SeverityCritical:
		return 3
	case SeverityWarning:
		return 2
	default:
		return 1
	}
}

// Lesson is one declarative guard rule: regex triggers plus the advisory
// text an agent should see before repeating a known mistake.
type Lesson struct {
	ID              string     `yaml:"id"`
	Severity        Severity   `yaml:"severity"`
	Created         string     `yaml:"created,omitempty"`
	TriggerPatterns []string   `yaml:"trigger_patterns"`
	Lesson          string     `yaml:"lesson"`
	Checklist       []string   `yaml:"checklist,omitempty"`
	Tags            []string   `yaml:"tags,omitempty"`
	ViolatedCount   int        `yaml:"violated_count,omitempty"`
	LastViolated    string     `yaml:"last_violated,omitempty"`
	Source          SourceInfo `yaml:"source,omitempty"`

	// File is the path the lesson was loaded from, empty for built-ins.
	// Not part of the document schema.
	File string `yaml:"-"`

	// Builtin marks lessons compiled into the binary.
	Builtin bool `yaml:"-"`
}

// SourceInfo records where a lesson came from.
type SourceInfo struct {
	Incident string `yaml:"incident,omitempty"`
}
