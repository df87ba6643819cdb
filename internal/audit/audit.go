// Package audit maintains the append-only guard history: one JSON object
// per line, written whole, never rewritten. Concurrent guard processes may
// append to the same file; each entry is a single O_APPEND write so lines
// never interleave. Readers tolerate corrupt lines and an absent file.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sharedbrain/brain/internal/redact"
)

// Note values describe the decision path of one guard invocation.
const (
	NoteNoMatch        = "no_match"
	NoteGuardTriggered = "guard_triggered"
	NoteUserConfirmed  = "user_confirmed"
	NoteUserAborted    = "user_aborted"
	NoteInterrupted    = "interrupted"
)

// maxActionLen bounds the logged command text so the log cannot be grown
// without limit by a single enormous command line.
const maxActionLen = 200

// Entry is one immutable record of a guard invocation.
// Followed is tri-state: true = proceeded, false = blocked or aborted,
// nil = undetermined (guard fired, confirmation still pending).
type Entry struct {
	Timestamp      string   `json:"timestamp"`
	Agent          string   `json:"agent"`
	Action         string   `json:"action"`
	LessonsMatched []string `json:"lessons_matched"`
	Checked        bool     `json:"checked"`
	Followed       *bool    `json:"followed"`
	Note           string   `json:"note"`
}

// NewEntry builds an entry for the current moment, truncating and
// redacting the command text.
func NewEntry(agent, action string, lessonIDs []string, followed *bool, note string) Entry {
	if lessonIDs == nil {
		lessonIDs = []string{}
	}
	return Entry{
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
		Agent:          agent,
		Action:         truncate(redact.Redact(action), maxActionLen),
		LessonsMatched: lessonIDs,
		Checked:        true,
		Followed:       followed,
		Note:           note,
	}
}

// Bool returns a pointer for the tri-state Followed field.
func Bool(v bool) *bool { return &v }

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// Logger appends entries to a JSONL file. Safe for concurrent use within
// a process; cross-process safety comes from O_APPEND whole-line writes.
type Logger struct {
	file *os.File
	mu   sync.Mutex
}

// NewLogger opens (creating if needed) the audit log at path, creating the
// containing directory structure as well.
func NewLogger(path string) (*Logger, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("failed to create audit directory: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	return &Logger{file: file}, nil
}

// Append serializes entry as one line and appends it in a single write.
func (l *Logger) Append(entry Entry) error {
	if entry.LessonsMatched == nil {
		entry.LessonsMatched = []string{}
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	data = append(data, '\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	_, err = l.file.Write(data)
	return err
}

func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
