package audit

import (
	"bufio"
	"encoding/json"
	"os"
	"strings"
)

// maxLineBytes is the scanner buffer ceiling. Entries are small (actions
// are truncated before writing), but a corrupt log must not break reading.
const maxLineBytes = 1 << 20

// ReadAll parses the audit log line by line. A line that fails to parse is
// skipped with a warning; an absent file yields an empty history. Nothing
// here returns an error to the caller beyond warnings — a broken log must
// never take down a reporting command.
func ReadAll(path string, warn func(format string, args ...any)) []Entry {
	if warn == nil {
		warn = func(string, ...any) {}
	}

	file, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			warn("failed to open audit log %s: %v", path, err)
		}
		return nil
	}
	defer file.Close()

	var entries []Entry
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		var entry Entry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			warn("skipping corrupt audit entry at line %d: %v", lineNo, err)
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		warn("failed while reading audit log %s: %v", path, err)
	}
	return entries
}
