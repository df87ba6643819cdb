package lesson

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeLessonFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestStore_DedupFirstSourceWins(t *testing.T) {
	userDir := t.TempDir()
	builtinDir := t.TempDir()

	writeLessonFile(t, userDir, "shared.yaml", "id: shared\nseverity: critical\nlesson: user version\n")
	writeLessonFile(t, builtinDir, "shared.yaml", "id: shared\nseverity: info\nlesson: builtin version\n")
	writeLessonFile(t, builtinDir, "only-builtin.yaml", "id: only-builtin\nlesson: builtin only\n")

	store := NewStore(
		DirSource{Label: "user", Dir: userDir},
		DirSource{Label: "builtin", Dir: builtinDir},
	)

	lessons := store.Load()
	if len(lessons) != 2 {
		t.Fatalf("expected 2 lessons after dedup, got %d", len(lessons))
	}

	var shared *Lesson
	for i := range lessons {
		if lessons[i].ID == "shared" {
			shared = &lessons[i]
		}
	}
	if shared == nil {
		t.Fatal("lesson 'shared' missing from store")
	}
	if shared.Lesson != "user version" {
		t.Errorf("dedup kept %q, want the first source's version", shared.Lesson)
	}
	if shared.Severity != SeverityCritical {
		t.Errorf("severity = %s, want critical", shared.Severity)
	}
}

func TestStore_IdempotentLoad(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 5; i++ {
		writeLessonFile(t, dir, fmt.Sprintf("l%d.yaml", i), fmt.Sprintf("id: l%d\nlesson: lesson %d\n", i, i))
	}

	store := NewStore(DirSource{Label: "user", Dir: dir})
	first := store.Load()
	second := store.Load()

	if !reflect.DeepEqual(first, second) {
		t.Error("two consecutive loads of an unmodified directory differ")
	}
	if len(first) != 5 {
		t.Errorf("expected 5 lessons, got %d", len(first))
	}
}

func TestStore_CorruptFileSkipped(t *testing.T) {
	dir := t.TempDir()
	writeLessonFile(t, dir, "good.yaml", "id: good\nlesson: fine\n")
	writeLessonFile(t, dir, "bad.yaml", "id: [unterminated\n  nonsense: {{{\n")

	var warnings []string
	store := NewStore(DirSource{Label: "user", Dir: dir})
	store.Warn = func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	lessons := store.Load()
	if len(lessons) != 1 || lessons[0].ID != "good" {
		t.Fatalf("expected only the good lesson, got %+v", lessons)
	}
	if len(warnings) != 1 {
		t.Errorf("expected 1 warning for the corrupt file, got %d: %v", len(warnings), warnings)
	}
}

func TestStore_MissingDirectory(t *testing.T) {
	store := NewStore(DirSource{Label: "user", Dir: filepath.Join(t.TempDir(), "nope")})
	store.Warn = func(format string, args ...any) {
		t.Errorf("unexpected warning: "+format, args...)
	}
	if lessons := store.Load(); len(lessons) != 0 {
		t.Errorf("expected empty store, got %d lessons", len(lessons))
	}
}

func TestParseFile_Defaults(t *testing.T) {
	dir := t.TempDir()
	path := writeLessonFile(t, dir, "no-id-lesson.yaml", "severity: bogus\nlesson: text\n")

	l, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if l.ID != "no-id-lesson" {
		t.Errorf("missing id should default to file stem, got %q", l.ID)
	}
	if l.Severity != SeverityInfo {
		t.Errorf("unrecognized severity should normalize to info, got %q", l.Severity)
	}
	if l.File != path {
		t.Errorf("provenance file = %q, want %q", l.File, path)
	}
}

func TestStaticSource_NormalizesAndCopies(t *testing.T) {
	src := StaticSource{Label: "plugin", Lessons: []Lesson{{ID: "p1", Severity: "weird"}}}

	out := src.Load(func(string, ...any) {})
	if out[0].Severity != SeverityInfo {
		t.Errorf("static source severity = %q, want info", out[0].Severity)
	}

	out[0].ID = "mutated"
	again := src.Load(func(string, ...any) {})
	if again[0].ID != "p1" {
		t.Error("mutating a loaded slice must not affect the source")
	}
}

func TestBuiltins_HaveStableIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, l := range Builtins() {
		if l.ID == "" {
			t.Error("builtin lesson with empty id")
		}
		if seen[l.ID] {
			t.Errorf("duplicate builtin id %q", l.ID)
		}
		seen[l.ID] = true
		if !l.Builtin {
			t.Errorf("builtin %q not marked as builtin", l.ID)
		}
	}
	if !seen["pipe-to-shell"] {
		t.Error("pipe-to-shell builtin missing; the structural check depends on it")
	}
}
