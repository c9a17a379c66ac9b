package tqa

import "fmt"

func checkInconsistentBrackets(u TranslationUnit, _ int, _ *ruleContext) (QAIssue, bool) {
	for _, pair := range bracketFamilies {
		srcOpen := countRune(u.Source, pair.open)
		tgtOpen := countRune(u.Target, pair.open)
		srcClose := countRune(u.Source, pair.close)
		tgtClose := countRune(u.Target, pair.close)

		if srcOpen != tgtOpen || srcClose != tgtClose {
			message := fmt.Sprintf("bracket %q%q count mismatch: source has %d/%d, target has %d/%d",
				pair.open, pair.close, srcOpen, srcClose, tgtOpen, tgtClose)
			return newIssue(u, IssueInconsistentBrackets, SeverityError, message, ""), true
		}
	}
	return QAIssue{}, false
}

func checkInconsistentPlaceholders(u TranslationUnit, _ int, _ *ruleContext) (QAIssue, bool) {
	for _, family := range placeholderFamilies {
		srcMatches := family.pattern.FindAllString(u.Source, -1)
		tgtMatches := family.pattern.FindAllString(u.Target, -1)
		if len(srcMatches) == len(tgtMatches) {
			continue
		}

		message := fmt.Sprintf("%s placeholder count mismatch: source has %v, target has %v",
			family.name, srcMatches, tgtMatches)
		return newIssue(u, IssueInconsistentPlaceholder, SeverityError, message, ""), true
	}
	return QAIssue{}, false
}
