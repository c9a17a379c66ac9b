package tqa

import (
	"regexp"
	"strings"
)

// yamlLineRe matches "key:" or "key: value" at any indentation. Flow
// syntax, anchors, multi-line scalars, and lists are not recognized and
// their lines are silently skipped, per the restricted-YAML contract.
var yamlLineRe = regexp.MustCompile(`^(\s*)(\w[\w-]*):\s*(.*)$`)

// decodeYAML implements the "yaml" format tag: only scalar string
// leaves within nested mappings are supported, assuming two spaces of
// indentation per level. A key stack tracks the current dotted path.
func decodeYAML(filename string, data []byte) (*TranslationFile, error) {
	file := newTranslationFile(filename, "yaml", int64(len(data)))

	lines := strings.Split(string(data), "\n")
	var keyStack []string

	for _, raw := range lines {
		line := strings.TrimRight(raw, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		m := yamlLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		indent := len(m[1])
		depth := indent / 2
		key := m[2]
		value := strings.TrimSpace(m[3])

		if depth > len(keyStack) {
			depth = len(keyStack)
		}
		keyStack = append(keyStack[:depth], key)

		if value == "" {
			continue // mapping key; descend without emitting a unit
		}

		path := strings.Join(keyStack, ".")
		appendUnit(&file, path, value, "")
	}

	return &file, nil
}
