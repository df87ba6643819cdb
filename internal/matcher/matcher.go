// Package matcher evaluates lesson trigger patterns against command strings
// without letting a malformed or pathological pattern stall a guard check.
//
// Patterns are regular expressions matched case-insensitively as an
// unanchored search. A pattern that fails the static suspicion heuristic
// (nested quantifiers, quantified alternation) is evaluated on a worker
// goroutine joined with a wall-clock timeout; on expiry the result is
// NotMatched and the worker is abandoned. A pattern that fails to compile
// yields PatternInvalid so the caller can fall back to a literal substring
// test instead of dropping the rule.
package matcher

import (
	"regexp"
	"strings"
	"time"
)

// Result is the outcome of evaluating one pattern against one command.
type Result int

const (
	NotMatched Result = iota
	Matched
	PatternInvalid
)

func (r Result) String() string {
	switch r {
	case Matched:
		return "matched"
	case PatternInvalid:
		return "pattern-invalid"
	default:
		return "not-matched"
	}
}

// DefaultTimeout bounds the evaluation of suspicious patterns.
const DefaultTimeout = 500 * time.Millisecond

// maxWarnPattern limits how much pattern text ends up in warnings.
const maxWarnPattern = 80

// Matcher evaluates trigger patterns. The zero value is usable: default
// timeout, warnings discarded.
type Matcher struct {
	// Timeout is the wall-clock bound for suspicious-pattern evaluation.
	// Zero means DefaultTimeout.
	Timeout time.Duration

	// Warn receives diagnostics for timed-out patterns. May be nil.
	Warn func(format string, args ...any)
}

// Evaluate decides whether command triggers pattern.
func (m *Matcher) Evaluate(pattern, command string) Result {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return PatternInvalid
	}

	if !Suspicious(pattern) {
		if re.MatchString(command) {
			return Matched
		}
		return NotMatched
	}

	return m.evaluateBounded(re, pattern, command)
}

// evaluateBounded runs a suspicious pattern on its own goroutine and joins
// it with the timeout. The worker writes to a buffered channel, so an
// abandoned worker finishes on its own and is collected; it shares no
// mutable state with the caller.
func (m *Matcher) evaluateBounded(re *regexp.Regexp, pattern, command string) Result {
	timeout := m.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	done := make(chan bool, 1)
	go func() {
		done <- re.MatchString(command)
	}()

	select {
	case matched := <-done:
		if matched {
			return Matched
		}
		return NotMatched
	case <-time.After(timeout):
		m.warn("pattern %q exceeded the %s evaluation bound; treating as no match", TruncatePattern(pattern), timeout)
		return NotMatched
	}
}

// Substring is the fallback for patterns that do not compile: a plain
// case-insensitive substring test of the raw pattern text.
func Substring(pattern, command string) bool {
	return strings.Contains(strings.ToLower(command), strings.ToLower(pattern))
}

// TruncatePattern shortens pattern text for warnings and logs.
func TruncatePattern(pattern string) string {
	runes := []rune(pattern)
	if len(runes) <= maxWarnPattern {
		return pattern
	}
	return string(runes[:maxWarnPattern]) + "..."
}

func (m *Matcher) warn(format string, args ...any) {
	if m.Warn != nil {
		m.Warn(format, args...)
	}
}
