package tqa

import (
	"path/filepath"
	"strings"
)

// formatsByExt maps a lowercased final extension to the format tag C2
// dispatches on. Order doesn't matter; lookups are by key.
var formatsByExt = map[string]string{
	".json":       "json",
	".xliff":      "xliff",
	".xlf":        "xliff",
	".sdlxliff":   "sdlxliff",
	".xml":        "xml",
	".po":         "po",
	".pot":        "pot",
	".strings":    "strings",
	".yaml":       "yaml",
	".yml":        "yaml",
	".properties": "properties",
	".resx":       "resx",
	".csv":        "csv",
	".tsv":        "tsv",
	".tmx":        "tmx",
}

// DetectFormat maps a filename to the format tag C2 understands, using
// only the lowercased final extension. It returns ok=false for any
// unrecognized extension; the caller surfaces that as a ParseError.
func DetectFormat(filename string) (tag string, ok bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	tag, ok = formatsByExt[ext]
	return tag, ok
}
