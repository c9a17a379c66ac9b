package tqa

import (
	"fmt"
	"strings"
)

var punctuationMarks = ". ! ? : ; ,"

func isPunctuationMark(r rune) bool {
	return strings.ContainsRune(punctuationMarks, r)
}

func checkInconsistentPunctuation(u TranslationUnit, _ int, _ *ruleContext) (QAIssue, bool) {
	srcLast, srcOK := lastCodePoint(u.Source)
	if !srcOK || !isPunctuationMark(srcLast) {
		return QAIssue{}, false
	}

	tgtLast, _ := lastCodePoint(u.Target)
	if tgtLast == srcLast {
		return QAIssue{}, false
	}

	suggestion := strings.TrimRight(u.Target, " \t\n\r") + string(srcLast)
	message := fmt.Sprintf("source ends with %q but target ends with %q", srcLast, tgtLast)
	return newIssue(u, IssueInconsistentPunctuation, SeverityWarning, message, suggestion), true
}

func checkInconsistentNumbers(u TranslationUnit, _ int, _ *ruleContext) (QAIssue, bool) {
	src := numberPattern.FindAllString(u.Source, -1)
	tgt := numberPattern.FindAllString(u.Target, -1)
	if len(src) == len(tgt) {
		return QAIssue{}, false
	}
	message := fmt.Sprintf("digit-run count mismatch: source has %d, target has %d", len(src), len(tgt))
	return newIssue(u, IssueInconsistentNumbers, SeverityWarning, message, ""), true
}

func checkInconsistentURLs(u TranslationUnit, _ int, _ *ruleContext) (QAIssue, bool) {
	src := urlPattern.FindAllString(u.Source, -1)
	tgt := urlPattern.FindAllString(u.Target, -1)
	if len(src) == len(tgt) {
		return QAIssue{}, false
	}
	message := fmt.Sprintf("URL count mismatch: source has %d, target has %d", len(src), len(tgt))
	return newIssue(u, IssueInconsistentURLs, SeverityWarning, message, ""), true
}

func checkInconsistentEmails(u TranslationUnit, _ int, _ *ruleContext) (QAIssue, bool) {
	src := emailPattern.FindAllString(u.Source, -1)
	tgt := emailPattern.FindAllString(u.Target, -1)
	if len(src) == len(tgt) {
		return QAIssue{}, false
	}
	message := fmt.Sprintf("email count mismatch: source has %d, target has %d", len(src), len(tgt))
	return newIssue(u, IssueInconsistentEmails, SeverityWarning, message, ""), true
}

func checkAlphanumericMismatch(u TranslationUnit, _ int, _ *ruleContext) (QAIssue, bool) {
	src := alnumRunPattern.FindAllString(u.Source, -1)
	tgt := alnumRunPattern.FindAllString(u.Target, -1)
	if multisetEqual(src, tgt) {
		return QAIssue{}, false
	}

	missingInTarget := missingFrom(src, tgt)
	extraInTarget := missingFrom(tgt, src)
	message := fmt.Sprintf("alphanumeric runs differ: missing in target %v, extra in target %v", missingInTarget, extraInTarget)
	return newIssue(u, IssueAlphanumericMismatch, SeverityWarning, message, ""), true
}
