package tqa

import (
	"regexp"
	"sort"
	"strings"
)

// placeholderFamily is one of the six placeholder syntaxes the
// inconsistent_placeholders rule checks independently of the others.
type placeholderFamily struct {
	name    string
	pattern *regexp.Regexp
}

var placeholderFamilies = []placeholderFamily{
	{"printf", regexp.MustCompile(`%\d*\$?[sdif]`)},
	{"double-brace", regexp.MustCompile(`\{\{[^}]*\}\}`)},
	{"shell", regexp.MustCompile(`\$\{[^}]*\}`)},
	{"colon-symbol", regexp.MustCompile(`:\w+`)},
	{"python", regexp.MustCompile(`%\([^)]*\)[sdif]`)},
	{"single-brace", regexp.MustCompile(`\{[^}]*\}`)},
}

var bracketFamilies = []struct {
	open, close rune
}{
	{'(', ')'},
	{'[', ']'},
	{'{', '}'},
	{'<', '>'},
}

var (
	numberPattern     = regexp.MustCompile(`\d+`)
	urlPattern        = regexp.MustCompile(`https?://\S+`)
	emailPattern      = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	tagNamePattern    = regexp.MustCompile(`<\s*/?\s*([a-zA-Z][\w:-]*)`)
	alnumRunPattern   = regexp.MustCompile(`[A-Za-z0-9]+`)
	multiSpacePattern = regexp.MustCompile(`\s{2,}`)
)

func countRune(s string, r rune) int {
	count := 0
	for _, c := range s {
		if c == r {
			count++
		}
	}
	return count
}

// multisetEqual reports whether a and b contain the same elements with
// the same multiplicities, ignoring order.
func multisetEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[string]int, len(a))
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		counts[v]--
	}
	for _, c := range counts {
		if c != 0 {
			return false
		}
	}
	return true
}

// missingFrom returns the elements of want not present (by multiset
// membership) in have, sorted for a deterministic message.
func missingFrom(want, have []string) []string {
	counts := make(map[string]int, len(have))
	for _, v := range have {
		counts[v]++
	}
	var missing []string
	for _, v := range want {
		if counts[v] > 0 {
			counts[v]--
			continue
		}
		missing = append(missing, v)
	}
	sort.Strings(missing)
	return missing
}

// tagNameSet extracts XML/HTML tag names from s, preserving case: the
// invalid_xml_tags rule is a case-sensitive set comparison.
func tagNameSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, m := range tagNamePattern.FindAllStringSubmatch(s, -1) {
		set[m[1]] = true
	}
	return set
}

// isMostlyNonAlpha reports whether s has no ASCII letters at all, in
// which case source == target carries no translation signal.
func isMostlyNonAlpha(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}

func lastCodePoint(s string) (rune, bool) {
	trimmed := strings.TrimRight(s, " \t\n\r")
	if trimmed == "" {
		return 0, false
	}
	runes := []rune(trimmed)
	return runes[len(runes)-1], true
}
