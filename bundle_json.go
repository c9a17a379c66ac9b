package tqa

import (
	"encoding/json"
	"sort"
)

var jsonWrapperKeys = []string{"translations", "messages", "strings"}

func decodeJSON(filename string, data []byte) (*TranslationFile, error) {
	var root map[string]interface{}
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, &ParseError{Filename: filename, Message: "invalid JSON", Cause: err}
	}

	tree := root
	for _, wrapper := range jsonWrapperKeys {
		if inner, ok := root[wrapper]; ok {
			if m, ok := inner.(map[string]interface{}); ok {
				tree = m
				break
			}
		}
	}

	file := newTranslationFile(filename, "json", int64(len(data)))
	walkJSON(tree, "", &file)
	return &file, nil
}

// walkJSON performs a deterministic depth-first traversal, emitting one
// unit per string leaf. Map key order is not stable in Go, so keys are
// sorted at each level to keep document order reproducible across runs.
func walkJSON(node map[string]interface{}, prefix string, file *TranslationFile) {
	keys := make([]string, 0, len(node))
	for k := range node {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}

		switch v := node[k].(type) {
		case string:
			appendUnit(file, path, v, "")
		case map[string]interface{}:
			walkJSON(v, path, file)
		default:
			// Arrays, numbers, bools, null: ignored per the JSON decoder contract.
		}
	}
}
