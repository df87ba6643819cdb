package guard

import (
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// PipeToShellLessonID is the built-in lesson the structural check is
// bound to.
const PipeToShellLessonID = "pipe-to-shell"

var (
	downloaders  = map[string]bool{"curl": true, "wget": true, "fetch": true}
	shellTargets = map[string]bool{"sh": true, "bash": true, "zsh": true, "dash": true, "ksh": true}
)

// PipeToShellCheck detects downloader-piped-into-shell commands by parsing
// the command as bash rather than pattern matching the text, so flag
// reordering and whitespace tricks do not slip past. A command that does
// not parse as shell cannot take this path and is reported as no hit.
func PipeToShellCheck(command string) (bool, error) {
	parser := syntax.NewParser(syntax.KeepComments(false), syntax.Variant(syntax.LangBash))
	file, err := parser.Parse(strings.NewReader(command), "")
	if err != nil {
		return false, nil
	}

	found := false
	syntax.Walk(file, func(node syntax.Node) bool {
		if found {
			return false
		}
		bin, ok := node.(*syntax.BinaryCmd)
		if !ok || bin.Op != syntax.Pipe {
			return true
		}
		if isExecutable(bin.X, downloaders) && isExecutable(bin.Y, shellTargets) {
			found = true
			return false
		}
		return true
	})
	return found, nil
}

// isExecutable reports whether the statement is a plain call whose argv[0]
// basename is in names.
func isExecutable(stmt *syntax.Stmt, names map[string]bool) bool {
	if stmt == nil || stmt.Cmd == nil {
		return false
	}
	call, ok := stmt.Cmd.(*syntax.CallExpr)
	if !ok || len(call.Args) == 0 {
		return false
	}
	exe := literalWord(call.Args[0])
	if exe == "" {
		return false
	}
	if idx := strings.LastIndex(exe, "/"); idx >= 0 {
		exe = exe[idx+1:]
	}
	return names[exe]
}

func literalWord(w *syntax.Word) string {
	var sb strings.Builder
	for _, part := range w.Parts {
		lit, ok := part.(*syntax.Lit)
		if !ok {
			return ""
		}
		sb.WriteString(lit.Value)
	}
	return sb.String()
}
