package tqa

import "strings"

// decodeProperties implements the "properties" format tag: Java-style
// key=value lines, one unit per line.
func decodeProperties(filename string, data []byte) (*TranslationFile, error) {
	file := newTranslationFile(filename, "properties", int64(len(data)))

	lines := strings.Split(string(data), "\n")
	for _, raw := range lines {
		line := strings.TrimRight(raw, "\r")
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "!") {
			continue
		}

		idx := strings.Index(trimmed, "=")
		if idx < 0 {
			continue
		}

		key := strings.TrimSpace(trimmed[:idx])
		value := unescapePropertiesLiteral(strings.TrimSpace(trimmed[idx+1:]))
		if key == "" {
			continue
		}

		appendUnit(&file, key, value, "")
	}

	return &file, nil
}

func unescapePropertiesLiteral(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case 'n':
				b.WriteByte('\n')
				i++
				continue
			case 't':
				b.WriteByte('\t')
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
