package tqa

import (
	"fmt"
	"strings"
)

var specialChars = []rune{'\n', '\t', '\\', '"', '\''}

func checkSpecialCharsMismatch(u TranslationUnit, _ int, _ *ruleContext) (QAIssue, bool) {
	for _, r := range specialChars {
		srcCount := countRune(u.Source, r)
		tgtCount := countRune(u.Target, r)
		if srcCount != tgtCount {
			message := fmt.Sprintf("count of %q differs: source has %d, target has %d", r, srcCount, tgtCount)
			return newIssue(u, IssueSpecialCharsMismatch, SeverityWarning, message, ""), true
		}
	}
	return QAIssue{}, false
}

func checkFormattingIssues(u TranslationUnit, _ int, _ *ruleContext) (QAIssue, bool) {
	if multiSpacePattern.MatchString(u.Target) && !multiSpacePattern.MatchString(u.Source) {
		return newIssue(u, IssueFormattingIssues, SeverityInfo, "multiple consecutive spaces", ""), true
	}
	if strings.Contains(u.Target, "\r\n") && !strings.Contains(u.Source, "\r\n") {
		return newIssue(u, IssueFormattingIssues, SeverityInfo, "mixed line endings", ""), true
	}
	return QAIssue{}, false
}
