package tqa

import (
	"fmt"
	"strings"
)

func checkKeyTermMismatch(u TranslationUnit, _ int, ctx *ruleContext) (QAIssue, bool) {
	var violations []string
	var suggestion string

	for _, g := range ctx.glossary {
		if !g.sourceRe.MatchString(u.Source) {
			continue
		}
		if g.targetRe.MatchString(u.Target) {
			continue
		}
		violations = append(violations, fmt.Sprintf("%q -> %q", g.term.Source, g.term.Target))
		if suggestion == "" {
			suggestion = g.term.Target
		}
	}

	if len(violations) == 0 {
		return QAIssue{}, false
	}

	message := fmt.Sprintf("glossary term(s) not honored: %s", strings.Join(violations, "; "))
	return newIssue(u, IssueKeyTermMismatch, SeverityWarning, message, suggestion), true
}
