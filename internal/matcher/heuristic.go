package matcher

import "regexp/syntax"

// Suspicious reports whether a pattern has one of the classic
// catastrophic-backtracking shapes: a quantified group that itself contains
// a quantifier (`(x+)+`) or a quantified alternation (`(a|a)+`). Patterns
// flagged here are evaluated under the wall-clock bound; everything else
// runs directly. A pattern that does not parse is not suspicious — it will
// fail compilation and take the PatternInvalid path instead.
func Suspicious(pattern string) bool {
	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return false
	}
	return hasNestedQuantifier(re, false)
}

func hasNestedQuantifier(re *syntax.Regexp, quantified bool) bool {
	switch re.Op {
	case syntax.OpStar, syntax.OpPlus, syntax.OpRepeat:
		if quantified {
			return true
		}
		for _, sub := range re.Sub {
			if hasNestedQuantifier(sub, true) {
				return true
			}
		}
		return false

	case syntax.OpAlternate:
		if quantified {
			return true
		}

	case syntax.OpQuest:
		// x? cannot expand the match set on its own; only its subtree
		// matters.
	}

	for _, sub := range re.Sub {
		if hasNestedQuantifier(sub, quantified) {
			return true
		}
	}
	return false
}
