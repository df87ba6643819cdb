package lesson

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// ErrInvalidID is returned when nothing safe is left of a lesson id after
// sanitization. Callers must reject the write; there is no fallback name.
var ErrInvalidID = errors.New("lesson id contains no usable characters")

var (
	pathSeparators = regexp.MustCompile(`[/\\]+`)
	dotRuns        = regexp.MustCompile(`\.{2,}`)
	disallowed     = regexp.MustCompile(`[^\p{L}\p{N}_-]`)
)

// SanitizeID normalizes a caller-supplied lesson id into a filesystem-safe
// storage key. Path separators and runs of two or more dots are removed
// before the character whitelist is applied, so "../../../etc/passwd" can
// never survive as a traversal.
func SanitizeID(raw string) (string, error) {
	id := pathSeparators.ReplaceAllString(raw, "")
	id = dotRuns.ReplaceAllString(id, "")
	id = disallowed.ReplaceAllString(id, "")
	if id == "" {
		return "", ErrInvalidID
	}
	return id, nil
}

// LessonPath resolves the storage path for a sanitized id and verifies it
// stays inside dir. The containment check is the second defense layer; it
// must hold even if SanitizeID ever lets something odd through.
func LessonPath(dir, id string) (string, error) {
	path := filepath.Join(dir, id+".yaml")
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve lesson path for %q: %w", id, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(rel) {
		return "", fmt.Errorf("lesson id %q escapes the lessons directory", id)
	}
	if strings.ContainsRune(rel, filepath.Separator) {
		return "", fmt.Errorf("lesson id %q resolves outside the lessons directory", id)
	}
	return path, nil
}
