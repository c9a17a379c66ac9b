package tqa

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/net/html"
)

var voidHTMLElements = map[string]bool{
	"br": true, "hr": true, "img": true, "input": true, "meta": true, "link": true,
}

// checkInvalidHTMLTags tokenizes the target with the same low-level
// tokenizer the rest of the ecosystem uses for HTML scanning, rather
// than hand-rolling a <[^>]*> regex walk.
func checkInvalidHTMLTags(u TranslationUnit, _ int, _ *ruleContext) (QAIssue, bool) {
	tok := html.NewTokenizer(strings.NewReader(u.Target))
	var stack []string

	for {
		switch tok.Next() {
		case html.ErrorToken:
			if len(stack) > 0 {
				message := fmt.Sprintf("unclosed tag(s): %s", strings.Join(stack, ", "))
				return newIssue(u, IssueInvalidHTMLTags, SeverityError, message, ""), true
			}
			return QAIssue{}, false

		case html.SelfClosingTagToken:
			continue

		case html.StartTagToken:
			name := strings.ToLower(tok.Token().Data)
			if voidHTMLElements[name] {
				continue
			}
			stack = append(stack, name)

		case html.EndTagToken:
			name := strings.ToLower(tok.Token().Data)
			if len(stack) == 0 || stack[len(stack)-1] != name {
				message := fmt.Sprintf("unmatched closing tag </%s>", name)
				return newIssue(u, IssueInvalidHTMLTags, SeverityError, message, ""), true
			}
			stack = stack[:len(stack)-1]
		}
	}
}

func checkInvalidXMLTags(u TranslationUnit, _ int, _ *ruleContext) (QAIssue, bool) {
	srcTags := tagNameSet(u.Source)
	tgtTags := tagNameSet(u.Target)

	var extra []string
	for name := range tgtTags {
		if !srcTags[name] {
			extra = append(extra, name)
		}
	}
	if len(extra) == 0 {
		return QAIssue{}, false
	}
	sort.Strings(extra)

	message := fmt.Sprintf("target contains tag(s) not present in source: %s", strings.Join(extra, ", "))
	return newIssue(u, IssueInvalidXMLTags, SeverityWarning, message, ""), true
}
