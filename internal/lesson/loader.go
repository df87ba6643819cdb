package lesson

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// WarnFunc receives diagnostic messages for conditions the loader recovers
// from (unparseable files, unreadable directories). It must never be nil
// when passed to Load; Store installs a no-op default.
type WarnFunc func(format string, args ...any)

// Source yields an ordered batch of lessons. Load must not fail as a whole
// because one document is bad: skip it, warn, continue.
type Source interface {
	Name() string
	Load(warn WarnFunc) []Lesson
}

// DirSource reads one lesson per YAML document from a directory.
// Files are visited in sorted order, .yaml before .yml, matching how user
// lesson directories are scanned everywhere else in the tool.
type DirSource struct {
	Label string
	Dir   string
}

func (s DirSource) Name() string { return s.Label }

func (s DirSource) Load(warn WarnFunc) []Lesson {
	var lessons []Lesson
	for _, path := range lessonFiles(s.Dir, warn) {
		l, err := ParseFile(path)
		if err != nil {
			warn("failed to load %s: %v", path, err)
			continue
		}
		lessons = append(lessons, l)
	}
	return lessons
}

func lessonFiles(dir string, warn WarnFunc) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			warn("failed to read lesson directory %s: %v", dir, err)
		}
		return nil
	}

	var yamls, ymls []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".yaml":
			yamls = append(yamls, filepath.Join(dir, entry.Name()))
		case ".yml":
			ymls = append(ymls, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(yamls)
	sort.Strings(ymls)
	return append(yamls, ymls...)
}

// ParseFile reads and validates a single lesson document. A missing id
// defaults to the file stem so hand-written files stay minimal.
func ParseFile(path string) (Lesson, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Lesson{}, err
	}

	var l Lesson
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Lesson{}, fmt.Errorf("failed to parse lesson %s: %w", path, err)
	}

	if l.ID == "" {
		base := filepath.Base(path)
		l.ID = strings.TrimSuffix(base, filepath.Ext(base))
	}
	l.Severity = l.Severity.Normalize()
	l.File = path
	return l, nil
}
