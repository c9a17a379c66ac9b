package tqa

import "strings"

func checkInconsistentSource(u TranslationUnit, idx int, ctx *ruleContext) (QAIssue, bool) {
	target := strings.TrimSpace(u.Target)
	source := strings.TrimSpace(u.Source)
	if target == "" {
		return QAIssue{}, false
	}

	for _, other := range ctx.byTarget[target] {
		if other == idx {
			continue
		}
		if strings.TrimSpace(ctx.units[other].Source) != source {
			return newIssue(u, IssueInconsistentSource, SeverityWarning, "another unit with the same target has a different source", ""), true
		}
	}
	return QAIssue{}, false
}

func checkInconsistentTarget(u TranslationUnit, idx int, ctx *ruleContext) (QAIssue, bool) {
	source := strings.TrimSpace(u.Source)
	target := strings.TrimSpace(u.Target)
	if source == "" {
		return QAIssue{}, false
	}

	for _, other := range ctx.bySource[source] {
		if other == idx {
			continue
		}
		if strings.TrimSpace(ctx.units[other].Target) != target {
			return newIssue(u, IssueInconsistentTarget, SeverityWarning, "another unit with the same source has a different target", ""), true
		}
	}
	return QAIssue{}, false
}
