package tqa

import (
	"bytes"
	"encoding/csv"
	"strings"
)

// LoadGlossary decodes a two-column (source, target[, context]) term
// list from a CSV/TSV file or a TMX translation-memory exchange file.
// Order is preserved for determinism but carries no semantic weight.
//
// Full spreadsheet (.xlsx) ingestion is not implemented: no worksheet
// library is wired into this module (see DESIGN.md); CSV/TSV already
// cover the tabular case the spec names concretely.
func LoadGlossary(filename string, data []byte) ([]GlossaryTerm, error) {
	tag, ok := DetectFormat(filename)
	if !ok {
		return nil, &ParseError{Filename: filename, Message: "unsupported glossary file extension"}
	}

	switch tag {
	case "tmx":
		return loadGlossaryTMX(filename, data)
	case "csv":
		return loadGlossaryTabular(filename, data, ',')
	case "tsv":
		return loadGlossaryTabular(filename, data, '\t')
	default:
		return nil, &ParseError{Filename: filename, Message: "unsupported glossary format: " + tag}
	}
}

func loadGlossaryTabular(filename string, data []byte, delimiter rune) ([]GlossaryTerm, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, &ParseError{Filename: filename, Message: "malformed glossary data", Cause: err}
	}

	start := 0
	if len(records) > 0 && isGlossaryHeader(records[0]) {
		start = 1
	}

	var terms []GlossaryTerm
	for i := start; i < len(records); i++ {
		row := records[i]
		if len(row) < 2 {
			continue
		}

		source := strings.TrimSpace(row[0])
		target := strings.TrimSpace(row[1])
		if source == "" || target == "" {
			continue
		}

		term := GlossaryTerm{Source: source, Target: target}
		if len(row) >= 3 {
			term.Context = strings.TrimSpace(row[2])
		}
		terms = append(terms, term)
	}

	return terms, nil
}

func isGlossaryHeader(row []string) bool {
	for _, cell := range row {
		low := strings.ToLower(strings.TrimSpace(cell))
		if strings.Contains(low, "source") || strings.Contains(low, "term") {
			return true
		}
	}
	return false
}

func loadGlossaryTMX(filename string, data []byte) ([]GlossaryTerm, error) {
	file, err := decodeTMX(filename, data)
	if err != nil {
		return nil, err
	}

	var terms []GlossaryTerm
	for _, unit := range file.Units {
		source := strings.TrimSpace(unit.Source)
		target := strings.TrimSpace(unit.Target)
		if source == "" || target == "" {
			continue
		}
		terms = append(terms, GlossaryTerm{Source: source, Target: target})
	}
	return terms, nil
}
