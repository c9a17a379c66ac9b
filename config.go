package tqa

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// allRuleTags lists the 23 closed-enumeration issue types a QAConfig's
// Rules map may reference. The last two are declared for API
// compatibility but never emit an issue (see rule.go).
var allRuleTags = []IssueType{
	IssueMissingTranslation,
	IssueEmptyTranslation,
	IssueLeadingTrailingSpaces,
	IssueInconsistentBrackets,
	IssueInconsistentPlaceholder,
	IssueInconsistentPunctuation,
	IssueInconsistentNumbers,
	IssueInconsistentURLs,
	IssueInconsistentEmails,
	IssueTooLongTranslation,
	IssueDuplicateTranslation,
	IssueInvalidHTMLTags,
	IssueInvalidXMLTags,
	IssueSpecialCharsMismatch,
	IssueFormattingIssues,
	IssueUntranslatedText,
	IssueTargetSameAsSource,
	IssueKeyTermMismatch,
	IssueAlphanumericMismatch,
	IssueInconsistentSource,
	IssueInconsistentTarget,
	IssueInconsistentCase,
	IssuePotentiallyIncorrectTranslate,
}

const (
	defaultMaxLengthRatio = 1.5
	minMaxLengthRatio     = 1.0
	maxMaxLengthRatio     = 3.0
)

// QAConfig controls which rules run and how a few of them are tuned.
// Fields left at their zero value take the documented default; a
// present-but-invalid field is a ConfigError, never silently clamped.
type QAConfig struct {
	// Rules maps a rule tag to enabled/disabled. Absent keys fall back
	// to the default (true, except inconsistent_case and
	// potentially_incorrect_translation which default false).
	Rules map[IssueType]bool

	// MaxLengthRatio is the target/source length ratio threshold for
	// too_long_translation. Zero means "use the default" (1.5); any
	// other value outside [1.0, 3.0] is a ConfigError.
	MaxLengthRatio float64

	// IgnorePatterns and CustomPlaceholders are reserved for future
	// rule tuning; the engine accepts and stores them but no rule
	// currently consults them.
	IgnorePatterns     []string
	CustomPlaceholders []string

	// CheckHTMLTags, CheckXMLTags, CheckPlaceholders, and CaseSensitive
	// are advisory flags consumed by callers (e.g. a UI) that want to
	// preflight what a run will check; the engine itself decides which
	// rules run purely from Rules.
	CheckHTMLTags     bool
	CheckXMLTags      bool
	CheckPlaceholders bool
	CaseSensitive     bool

	// Glossary feeds the key_term_mismatch rule.
	Glossary []GlossaryTerm
}

// DefaultConfig returns the documented defaults: every rule enabled
// except the two unimplemented ones, a 1.5 length ratio, and no
// glossary.
func DefaultConfig() QAConfig {
	rules := make(map[IssueType]bool, len(allRuleTags))
	for _, tag := range allRuleTags {
		rules[tag] = true
	}
	rules[IssueInconsistentCase] = false
	rules[IssuePotentiallyIncorrectTranslate] = false

	return QAConfig{
		Rules:             rules,
		MaxLengthRatio:    defaultMaxLengthRatio,
		CheckHTMLTags:     true,
		CheckXMLTags:      true,
		CheckPlaceholders: true,
		CaseSensitive:     false,
	}
}

// resolve merges c's explicit fields over the defaults and validates
// them, returning a config safe for Analyze to consume directly.
func (c QAConfig) resolve() (QAConfig, error) {
	resolved := DefaultConfig()

	for tag, enabled := range c.Rules {
		if !isKnownRuleTag(tag) {
			return QAConfig{}, &ConfigError{Field: "rules", Message: fmt.Sprintf("unknown rule tag %q", tag)}
		}
		resolved.Rules[tag] = enabled
	}

	switch {
	case c.MaxLengthRatio == 0:
		// absent: keep the default already in resolved.
	case c.MaxLengthRatio < minMaxLengthRatio || c.MaxLengthRatio > maxMaxLengthRatio:
		return QAConfig{}, &ConfigError{Field: "maxLengthRatio", Message: fmt.Sprintf("%.2f is outside [%.1f, %.1f]", c.MaxLengthRatio, minMaxLengthRatio, maxMaxLengthRatio)}
	default:
		resolved.MaxLengthRatio = c.MaxLengthRatio
	}

	resolved.IgnorePatterns = c.IgnorePatterns
	resolved.CustomPlaceholders = c.CustomPlaceholders
	resolved.Glossary = c.Glossary

	if c.CheckHTMLTags || c.CheckXMLTags || c.CheckPlaceholders || c.CaseSensitive {
		resolved.CheckHTMLTags = c.CheckHTMLTags
		resolved.CheckXMLTags = c.CheckXMLTags
		resolved.CheckPlaceholders = c.CheckPlaceholders
		resolved.CaseSensitive = c.CaseSensitive
	}

	return resolved, nil
}

func isKnownRuleTag(tag IssueType) bool {
	for _, known := range allRuleTags {
		if known == tag {
			return true
		}
	}
	return false
}

// fingerprintConfig is the JSON-stable subset of QAConfig that the
// rule engine's output actually depends on; advisory-only fields are
// excluded deliberately.
type fingerprintConfig struct {
	Rules          map[IssueType]bool
	MaxLengthRatio float64
	Glossary       []GlossaryTerm
}

// Fingerprint returns a stable content hash of the fields of c that
// affect Analyze's output, for use as the second half of a result
// cache key (see ResultCache).
func (c QAConfig) Fingerprint() string {
	payload, _ := json.Marshal(fingerprintConfig{
		Rules:          c.Rules,
		MaxLengthRatio: c.MaxLengthRatio,
		Glossary:       c.Glossary,
	})
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
