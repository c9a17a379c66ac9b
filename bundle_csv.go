package tqa

import (
	"bytes"
	"encoding/csv"
	"strings"
)

// decodeTabular implements both the "csv" and "tsv" format tags. A
// header row (containing "key" or "source" case-insensitively in any
// cell) is dropped; remaining rows are key, source, target? with
// RFC-4180 quoting handled by encoding/csv.
func decodeTabular(filename string, data []byte, formatTag string, delimiter rune) (*TranslationFile, error) {
	file := newTranslationFile(filename, formatTag, int64(len(data)))

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = false

	records, err := reader.ReadAll()
	if err != nil {
		return nil, &ParseError{Filename: filename, Message: "malformed tabular data", Cause: err}
	}

	start := 0
	if len(records) > 0 && isTabularHeader(records[0]) {
		start = 1
	}

	for i := start; i < len(records); i++ {
		row := records[i]
		if len(row) < 2 {
			continue
		}

		key := strings.TrimSpace(row[0])
		if key == "" {
			continue
		}

		source := row[1]
		target := ""
		if len(row) >= 3 {
			target = row[2]
		}

		appendUnit(&file, key, source, target)
	}

	return &file, nil
}

func isTabularHeader(row []string) bool {
	for _, cell := range row {
		low := strings.ToLower(strings.TrimSpace(cell))
		if strings.Contains(low, "key") || strings.Contains(low, "source") {
			return true
		}
	}
	return false
}
