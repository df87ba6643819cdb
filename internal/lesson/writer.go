package lesson

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Write persists a lesson into dir as <id>.yaml, creating dir if needed.
// The id is sanitized and the destination verified to resolve inside dir
// before anything is written. Returns the path written.
func Write(dir string, l Lesson) (string, error) {
	id, err := SanitizeID(l.ID)
	if err != nil {
		return "", fmt.Errorf("invalid lesson id %q: %w", l.ID, err)
	}
	l.ID = id
	l.Severity = l.Severity.Normalize()

	path, err := LessonPath(dir, id)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create lessons directory: %w", err)
	}

	data, err := yaml.Marshal(&l)
	if err != nil {
		return "", fmt.Errorf("failed to serialize lesson %q: %w", id, err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write lesson %q: %w", id, err)
	}
	return path, nil
}
