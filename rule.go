package tqa

import (
	"regexp"
	"strings"
)

// compiledGlossaryTerm pre-builds the word-bounded, case-insensitive
// matchers for one glossary row so key_term_mismatch never compiles a
// regexp per unit.
type compiledGlossaryTerm struct {
	term      GlossaryTerm
	sourceRe  *regexp.Regexp
	targetRe  *regexp.Regexp
}

// ruleContext carries the whole-corpus state a relational rule needs
// (duplicate/inconsistent-source/inconsistent-target) plus the active
// configuration, so every rule stays a pure function of (unit, context).
type ruleContext struct {
	config QAConfig
	units  []TranslationUnit

	// bySource/byTarget/byPair index units by trimmed source/target
	// text so relational rules run in O(1) average lookup time instead
	// of the naive O(N^2) scan (§9 design note).
	bySource map[string][]int
	byTarget map[string][]int
	byPair   map[string][]int

	glossary []compiledGlossaryTerm
}

func newRuleContext(units []TranslationUnit, config QAConfig) *ruleContext {
	ctx := &ruleContext{
		config:   config,
		units:    units,
		bySource: make(map[string][]int, len(units)),
		byTarget: make(map[string][]int, len(units)),
		byPair:   make(map[string][]int, len(units)),
	}
	for i, u := range units {
		src := strings.TrimSpace(u.Source)
		tgt := strings.TrimSpace(u.Target)
		ctx.bySource[src] = append(ctx.bySource[src], i)
		ctx.byTarget[tgt] = append(ctx.byTarget[tgt], i)
		ctx.byPair[src+"\x00"+tgt] = append(ctx.byPair[src+"\x00"+tgt], i)
	}

	for _, term := range config.Glossary {
		if term.Source == "" || term.Target == "" {
			continue
		}
		ctx.glossary = append(ctx.glossary, compiledGlossaryTerm{
			term:     term,
			sourceRe: wordBoundaryRegexp(term.Source),
			targetRe: wordBoundaryRegexp(term.Target),
		})
	}

	return ctx
}

func wordBoundaryRegexp(term string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
}

// ruleCheck is a pure predicate: given a unit, its index in the file,
// and the whole-corpus context, it returns at most one issue.
type ruleCheck func(u TranslationUnit, idx int, ctx *ruleContext) (QAIssue, bool)

// ruleDef pairs a rule's tag and severity with its predicate. rules is
// the canonical evaluation order spec'd for C4; it is walked top to
// bottom for every unit by the analyzer driver.
type ruleDef struct {
	Tag      IssueType
	Severity Severity
	Check    ruleCheck
}

var rules = []ruleDef{
	{IssueMissingTranslation, SeverityError, checkMissingTranslation},
	{IssueEmptyTranslation, SeverityError, checkEmptyTranslation},
	{IssueLeadingTrailingSpaces, SeverityWarning, checkLeadingTrailingSpaces},
	{IssueInconsistentBrackets, SeverityError, checkInconsistentBrackets},
	{IssueInconsistentPlaceholder, SeverityError, checkInconsistentPlaceholders},
	{IssueInconsistentPunctuation, SeverityWarning, checkInconsistentPunctuation},
	{IssueInconsistentNumbers, SeverityWarning, checkInconsistentNumbers},
	{IssueInconsistentURLs, SeverityWarning, checkInconsistentURLs},
	{IssueInconsistentEmails, SeverityWarning, checkInconsistentEmails},
	{IssueTooLongTranslation, SeverityWarning, checkTooLongTranslation},
	{IssueDuplicateTranslation, SeverityInfo, checkDuplicateTranslation},
	{IssueInvalidHTMLTags, SeverityError, checkInvalidHTMLTags},
	{IssueInvalidXMLTags, SeverityWarning, checkInvalidXMLTags},
	{IssueSpecialCharsMismatch, SeverityWarning, checkSpecialCharsMismatch},
	{IssueFormattingIssues, SeverityInfo, checkFormattingIssues},
	{IssueUntranslatedText, SeverityWarning, checkUntranslatedText},
	{IssueTargetSameAsSource, SeverityInfo, checkTargetSameAsSource},
	{IssueKeyTermMismatch, SeverityWarning, checkKeyTermMismatch},
	{IssueAlphanumericMismatch, SeverityWarning, checkAlphanumericMismatch},
	{IssueInconsistentSource, SeverityWarning, checkInconsistentSource},
	{IssueInconsistentTarget, SeverityWarning, checkInconsistentTarget},
	// inconsistent_case and potentially_incorrect_translation are
	// declared in QAConfig.Rules but intentionally have no entry here:
	// the driver accepts the flag and emits nothing, per spec.
}

func newIssue(u TranslationUnit, tag IssueType, sev Severity, message, suggestion string) QAIssue {
	return QAIssue{
		ID:         newID("issue"),
		UnitID:     u.ID,
		Type:       tag,
		Severity:   sev,
		Message:    message,
		Source:     u.Source,
		Target:     u.Target,
		Key:        u.Key,
		Suggestion: suggestion,
		Index:      u.Index,
	}
}
