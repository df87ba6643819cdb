// Package guard runs one command through every known lesson and every
// registered dynamic check, aggregates the matches, applies the
// confirmation policy, and records the outcome in the audit log.
//
// Nothing in here is allowed to propagate a fault to the caller: a bad
// pattern degrades to a substring test, a timed-out pattern to a
// non-match, a panicking check to a warning. The only outputs are the
// proceed/deny boolean and one audit entry per invocation.
package guard

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"golang.org/x/term"

	"github.com/sharedbrain/brain/internal/audit"
	"github.com/sharedbrain/brain/internal/lesson"
	"github.com/sharedbrain/brain/internal/matcher"
)

// Match records one lesson firing against a command. Pattern is the
// trigger that fired, or empty when the lesson fired via a dynamic check.
type Match struct {
	Lesson  lesson.Lesson
	Pattern string
}

// CheckFunc reports whether a command violates the lesson a Check is bound
// to. Errors and panics are contained: the check's contribution is skipped
// with a warning and the scan continues.
type CheckFunc func(command string) (bool, error)

// Check is a dynamically registered detector bound to a lesson id that
// must exist in the store snapshot. Checks run after pattern scanning, in
// ascending Priority order.
type Check struct {
	LessonID string
	Priority int
	Fn       CheckFunc
}

// Env holds the environment collaborators the orchestrator needs, so the
// engine itself has no direct console dependency.
type Env struct {
	// IsInteractive reports whether a confirmation prompt can be shown.
	IsInteractive func() bool
	// ReadLine blocks for one line of confirmation input.
	ReadLine func() (string, error)
	// Out receives lesson warnings and prompts; Err receives diagnostics.
	Out io.Writer
	Err io.Writer
}

// DefaultEnv wires the real terminal: stdin interactivity via x/term and
// confirmation reads from stdin.
func DefaultEnv() Env {
	return Env{
		IsInteractive: func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
		ReadLine:      readStdinLine,
		Out:           os.Stdout,
		Err:           os.Stderr,
	}
}

func readStdinLine() (string, error) {
	var line strings.Builder
	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if n > 0 {
			if buf[0] == '\n' {
				return line.String(), nil
			}
			line.WriteByte(buf[0])
		}
		if err != nil {
			return line.String(), err
		}
	}
}

// Engine evaluates commands against the lesson store. Construct with New;
// all state is explicit and owned by the caller.
type Engine struct {
	store   *lesson.Store
	logger  *audit.Logger
	matcher matcher.Matcher
	env     Env
	checks  []Check
}

// New builds an engine over a store and an audit logger. The env's nil
// fields are filled from DefaultEnv.
func New(store *lesson.Store, logger *audit.Logger, env Env) *Engine {
	def := DefaultEnv()
	if env.IsInteractive == nil {
		env.IsInteractive = def.IsInteractive
	}
	if env.ReadLine == nil {
		env.ReadLine = def.ReadLine
	}
	if env.Out == nil {
		env.Out = def.Out
	}
	if env.Err == nil {
		env.Err = def.Err
	}

	e := &Engine{store: store, logger: logger, env: env}
	e.matcher.Warn = e.warnf
	if store.Warn == nil {
		store.Warn = e.warnf
	}
	return e
}

// RegisterCheck adds a dynamic check. Registration order is irrelevant;
// checks run in ascending priority.
func (e *Engine) RegisterCheck(c Check) {
	e.checks = append(e.checks, c)
}

// Guard checks a command against all lessons and checks. Returns true when
// the caller may proceed. Exactly one audit entry is appended per call
// carrying the final decision; an interactive confirmation additionally
// leaves a guard_triggered entry before the prompt so an abandoned prompt
// still has a trace.
func (e *Engine) Guard(command, agent string, autoConfirm bool) bool {
	matches := e.scan(command)

	if len(matches) == 0 {
		e.logEntry(agent, command, nil, audit.Bool(true), audit.NoteNoMatch)
		return true
	}

	e.render(matches)
	ids := matchedIDs(matches)

	if autoConfirm {
		fmt.Fprintln(e.env.Out, "Proceed? [y/N] y  (auto-confirmed)")
		e.logEntry(agent, command, ids, audit.Bool(true), audit.NoteUserConfirmed)
		return true
	}

	e.logEntry(agent, command, ids, nil, audit.NoteGuardTriggered)

	if !e.env.IsInteractive() {
		fmt.Fprintln(e.env.Err, "Running in non-interactive mode. Proceeding with caution.")
		return true
	}

	fmt.Fprint(e.env.Out, "Proceed? [y/N] ")
	response, err := e.env.ReadLine()
	if err != nil {
		fmt.Fprintln(e.env.Err, "\nAborted.")
		e.logEntry(agent, command, ids, audit.Bool(false), audit.NoteInterrupted)
		return false
	}

	switch strings.ToLower(strings.TrimSpace(response)) {
	case "y", "yes":
		e.logEntry(agent, command, ids, audit.Bool(true), audit.NoteUserConfirmed)
		return true
	default:
		e.logEntry(agent, command, ids, audit.Bool(false), audit.NoteUserAborted)
		return false
	}
}

// scan applies the matcher to every lesson's trigger patterns in store
// order, then runs dynamic checks in ascending priority. A lesson fires at
// most once.
func (e *Engine) scan(command string) []Match {
	index, ordered := e.store.Index()

	var matches []Match
	fired := make(map[string]bool)

	for _, l := range ordered {
		for _, pattern := range l.TriggerPatterns {
			hit := false
			switch e.matcher.Evaluate(pattern, command) {
			case matcher.Matched:
				hit = true
			case matcher.PatternInvalid:
				hit = matcher.Substring(pattern, command)
			}
			if hit {
				matches = append(matches, Match{Lesson: l, Pattern: pattern})
				fired[l.ID] = true
				break
			}
		}
	}

	checks := make([]Check, len(e.checks))
	copy(checks, e.checks)
	sort.SliceStable(checks, func(i, j int) bool { return checks[i].Priority < checks[j].Priority })

	for _, c := range checks {
		if fired[c.LessonID] {
			continue
		}
		hit, err := e.runCheck(c, command)
		if err != nil {
			e.warnf("check for lesson %q failed: %v", c.LessonID, err)
			continue
		}
		if !hit {
			continue
		}
		l, ok := index[c.LessonID]
		if !ok {
			e.warnf("check fired for unknown lesson %q; ignoring", c.LessonID)
			continue
		}
		matches = append(matches, Match{Lesson: *l})
		fired[c.LessonID] = true
	}

	return matches
}

// runCheck invokes one dynamic check, converting a panic into an error so
// one misbehaving check never aborts the scan.
func (e *Engine) runCheck(c Check, command string) (hit bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			hit = false
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return c.Fn(command)
}

func matchedIDs(matches []Match) []string {
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.Lesson.ID)
	}
	return ids
}

func (e *Engine) logEntry(agent, command string, ids []string, followed *bool, note string) {
	if e.logger == nil {
		return
	}
	if err := e.logger.Append(audit.NewEntry(agent, command, ids, followed, note)); err != nil {
		e.warnf("failed to write audit entry: %v", err)
	}
}

func (e *Engine) warnf(format string, args ...any) {
	fmt.Fprintf(e.env.Err, "[brain] warning: "+format+"\n", args...)
}
