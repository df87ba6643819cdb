package lesson

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSanitizeID(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		invalid bool
	}{
		{"../../../etc/passwd", "etcpasswd", false},
		{"../../..", "", true},
		{"foo/bar", "foobar", false},
		{"api-safety", "api-safety", false},
		{"curl_put_warning", "curl_put_warning", false},
		{"..", "", true},
		{"", "", true},
		{"a.b", "ab", false},          // single dots stripped by the whitelist
		{"leçon-sûre", "leçon-sûre", false}, // unicode letters survive
		{"!!!", "", true},
		{`..\..\windows`, "windows", false},
	}

	for _, tt := range tests {
		got, err := SanitizeID(tt.raw)
		if tt.invalid {
			if !errors.Is(err, ErrInvalidID) {
				t.Errorf("SanitizeID(%q) = (%q, %v), want ErrInvalidID", tt.raw, got, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("SanitizeID(%q) unexpected error: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("SanitizeID(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestSanitizeID_NeverEscapes(t *testing.T) {
	dir := t.TempDir()
	hostile := []string{
		"../../../etc/passwd",
		"../../..",
		"foo/bar",
		`..\..\..`,
		"....//....//etc",
		"~/../root",
	}

	for _, raw := range hostile {
		id, err := SanitizeID(raw)
		if err != nil {
			continue // rejected outright is fine
		}
		path, err := LessonPath(dir, id)
		if err != nil {
			t.Errorf("sanitized id %q (from %q) rejected by containment: %v", id, raw, err)
			continue
		}
		abs, _ := filepath.Abs(path)
		if !strings.HasPrefix(abs, dir+string(filepath.Separator)) {
			t.Errorf("id %q (from %q) resolves to %q, outside %q", id, raw, abs, dir)
		}
	}
}

func TestLessonPath_RejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	// Bypass SanitizeID to exercise the second defense layer directly.
	for _, id := range []string{"../evil", "a/../../b", "/abs"} {
		if path, err := LessonPath(dir, id); err == nil {
			rel, relErr := filepath.Rel(dir, path)
			if relErr != nil || strings.HasPrefix(rel, "..") {
				t.Errorf("LessonPath(%q) = %q escaped containment without error", id, path)
			}
		}
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	l := Lesson{
		ID:              "api-safety",
		Severity:        SeverityCritical,
		TriggerPatterns: []string{`curl.*-X\s+PUT`},
		Lesson:          "Verify the endpoint before mutating.",
		Checklist:       []string{"Check the URL"},
		Tags:            []string{"api"},
		Source:          SourceInfo{Incident: "2026-08-12 outage"},
	}

	path, err := Write(dir, l)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if got.ID != l.ID || got.Lesson != l.Lesson || got.Severity != l.Severity {
		t.Errorf("round trip mismatch: got %+v", got)
	}
	if got.Source.Incident != l.Source.Incident {
		t.Errorf("incident = %q, want %q", got.Source.Incident, l.Source.Incident)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("lesson file permissions = %04o, want 0600", perm)
	}
}

func TestWrite_RejectsInvalidID(t *testing.T) {
	dir := t.TempDir()
	if _, err := Write(dir, Lesson{ID: "../../.."}); err == nil {
		t.Fatal("Write accepted a path-traversal id")
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("rejected write still created %d file(s)", len(entries))
	}
}
