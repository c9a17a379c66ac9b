package tqa

import (
	"fmt"
	"strings"
	"unicode"
)

func isPurelyDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func checkUntranslatedText(u TranslationUnit, _ int, _ *ruleContext) (QAIssue, bool) {
	if len(u.Source) < 5 || isPurelyDigits(u.Source) {
		return QAIssue{}, false
	}

	words := strings.Fields(u.Source)
	var candidates []string
	for _, w := range words {
		if len(w) > 3 {
			candidates = append(candidates, w)
		}
	}
	if len(candidates) == 0 {
		return QAIssue{}, false
	}

	target := strings.ToLower(u.Target)
	matched := 0
	for _, w := range candidates {
		if strings.Contains(target, strings.ToLower(w)) {
			matched++
		}
	}

	ratio := float64(matched) / float64(len(candidates))
	if ratio <= 0.5 {
		return QAIssue{}, false
	}

	message := fmt.Sprintf("%.0f%% of source words appear unchanged in target", ratio*100)
	return newIssue(u, IssueUntranslatedText, SeverityWarning, message, ""), true
}
