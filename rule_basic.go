package tqa

import "strings"

func checkMissingTranslation(u TranslationUnit, _ int, _ *ruleContext) (QAIssue, bool) {
	if len(u.Target) == 0 {
		return newIssue(u, IssueMissingTranslation, SeverityError, "target is missing", u.Source), true
	}
	return QAIssue{}, false
}

func checkEmptyTranslation(u TranslationUnit, _ int, _ *ruleContext) (QAIssue, bool) {
	if len(u.Target) > 0 && strings.TrimSpace(u.Target) == "" {
		return newIssue(u, IssueEmptyTranslation, SeverityError, "target is whitespace-only", ""), true
	}
	return QAIssue{}, false
}

func checkLeadingTrailingSpaces(u TranslationUnit, _ int, _ *ruleContext) (QAIssue, bool) {
	if u.Target == "" {
		return QAIssue{}, false
	}

	srcLead, srcTrail := edgeSpaces(u.Source)
	tgtLead, tgtTrail := edgeSpaces(u.Target)
	if srcLead == tgtLead && srcTrail == tgtTrail {
		return QAIssue{}, false
	}

	suggestion := strings.TrimSpace(u.Target)
	if srcLead {
		suggestion = " " + suggestion
	}
	if srcTrail {
		suggestion = suggestion + " "
	}

	return newIssue(u, IssueLeadingTrailingSpaces, SeverityWarning, "source and target disagree on edge whitespace", suggestion), true
}

func edgeSpaces(s string) (leading, trailing bool) {
	return strings.HasPrefix(s, " ") || strings.HasPrefix(s, "\t"),
		strings.HasSuffix(s, " ") || strings.HasSuffix(s, "\t")
}

func checkTargetSameAsSource(u TranslationUnit, _ int, _ *ruleContext) (QAIssue, bool) {
	source := strings.TrimSpace(u.Source)
	target := strings.TrimSpace(u.Target)
	if len(source) < 2 || isMostlyNonAlpha(source) {
		return QAIssue{}, false
	}
	if !strings.EqualFold(source, target) {
		return QAIssue{}, false
	}
	return newIssue(u, IssueTargetSameAsSource, SeverityInfo, "target is identical to source", ""), true
}

func checkDuplicateTranslation(u TranslationUnit, idx int, ctx *ruleContext) (QAIssue, bool) {
	source := strings.TrimSpace(u.Source)
	target := strings.TrimSpace(u.Target)
	if source == "" || target == "" {
		return QAIssue{}, false
	}

	for _, other := range ctx.byPair[source+"\x00"+target] {
		if other != idx {
			return newIssue(u, IssueDuplicateTranslation, SeverityInfo, "another unit has the same source and target", ""), true
		}
	}
	return QAIssue{}, false
}
