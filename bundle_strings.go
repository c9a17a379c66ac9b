package tqa

import (
	"regexp"
	"strings"
)

// stringsLineRe matches a single-line iOS .strings entry: "key" = "value";
var stringsLineRe = regexp.MustCompile(`^"((?:[^"\\]|\\.)*)"\s*=\s*"((?:[^"\\]|\\.)*)"\s*;\s*$`)

// decodeIOSStrings implements the "strings" format tag. Only single-line
// entries are supported; comments and blank lines are skipped without
// error, matching the format's tolerant-extraction contract.
func decodeIOSStrings(filename string, data []byte) (*TranslationFile, error) {
	file := newTranslationFile(filename, "strings", int64(len(data)))

	lines := strings.Split(string(data), "\n")
	for _, raw := range lines {
		line := strings.TrimSpace(strings.TrimRight(raw, "\r"))
		if line == "" || strings.HasPrefix(line, "//") || strings.HasPrefix(line, "/*") {
			continue
		}

		m := stringsLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		key := unescapeStringsLiteral(m[1])
		value := unescapeStringsLiteral(m[2])
		if key == "" {
			continue
		}

		file.Units = append(file.Units, TranslationUnit{
			ID:     newID("unit"),
			Key:    key,
			Source: key,
			Target: value,
			Index:  len(file.Units) + 1,
		})
	}

	return &file, nil
}

func unescapeStringsLiteral(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case 'n':
				b.WriteByte('\n')
				i++
				continue
			case '"':
				b.WriteByte('"')
				i++
				continue
			case '\\':
				b.WriteByte('\\')
				i++
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
