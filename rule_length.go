package tqa

import "fmt"

func checkTooLongTranslation(u TranslationUnit, _ int, ctx *ruleContext) (QAIssue, bool) {
	if len(u.Source) == 0 {
		return QAIssue{}, false
	}

	ratio := float64(len(u.Target)) / float64(len(u.Source))
	if ratio <= ctx.config.MaxLengthRatio {
		return QAIssue{}, false
	}

	message := fmt.Sprintf("target is %.0f%% of source length (limit %.0f%%)", ratio*100, ctx.config.MaxLengthRatio*100)
	return newIssue(u, IssueTooLongTranslation, SeverityWarning, message, ""), true
}
