package lesson

// Builtins returns the lessons compiled into the binary. They ship with
// the tool so a fresh install guards against the classic agent mistakes
// before anyone writes a lesson of their own. A user lesson with the same
// id overrides a built-in because user sources are consulted first.
func Builtins() []Lesson {
	lessons := []Lesson{
		{
			ID:              "rm-at-root",
			Severity:        SeverityCritical,
			TriggerPatterns: []string{`(^|\s)(sudo\s+)?rm\s+-[a-z]*r[a-z]*f?\s+/(\s|$)`},
			Lesson:          "Recursive remove at the filesystem root destroys the machine. There is no target worth this.",
			Checklist: []string{
				"Confirm the path is not / or a system directory",
				"Prefer an explicit relative path",
			},
			Tags: []string{"destructive", "filesystem"},
		},
		{
			ID:              "pipe-to-shell",
			Severity:        SeverityCritical,
			TriggerPatterns: nil, // fired by the structural check, not a regex
			Lesson:          "Piping a downloaded script straight into a shell executes code you never inspected. Download it, read it, then run it.",
			Checklist: []string{
				"Download the script to a file first",
				"Read it before executing",
			},
			Tags: []string{"supply-chain", "network"},
		},
		{
			ID:              "force-push-protected",
			Severity:        SeverityCritical,
			TriggerPatterns: []string{`git\s+push\s+(-f|--force)\b.*\b(main|master|release)`},
			Lesson:          "Force-pushing a shared branch rewrites history for everyone. Use --force-with-lease on a feature branch, never on main.",
			Checklist: []string{
				"Check which branch you are on",
				"Use --force-with-lease if a force push is unavoidable",
			},
			Tags: []string{"git", "destructive"},
		},
		{
			ID:              "http-mutation",
			Severity:        SeverityWarning,
			TriggerPatterns: []string{`curl.*-X\s+(PUT|POST|DELETE|PATCH)`, `http\s+(put|post|delete|patch)\b`},
			Lesson:          "Mutating API calls are hard to undo. Verify the endpoint and payload before sending.",
			Checklist: []string{
				"Confirm the URL and resource id",
				"Dry-run with GET first if the API supports it",
			},
			Tags: []string{"api", "network"},
		},
	}

	for i := range lessons {
		lessons[i].Builtin = true
		lessons[i].Source = SourceInfo{Incident: "built-in"}
	}
	return lessons
}
