package tqa

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

type tmxTuv struct {
	Lang string `xml:"lang,attr"`
	Seg  string `xml:"seg"`
}

type tmxTu struct {
	ID   string   `xml:"id,attr"`
	Tuvs []tmxTuv `xml:"tuv"`
}

// decodeTMX implements the "tmx" format tag. Within each <tu>, the
// first <tuv> in document order, or any whose xml:lang begins with
// "en", is treated as the source side; the first remaining <tuv> is
// the target side. A <tu> producing only one side leaves the other
// empty.
func decodeTMX(filename string, data []byte) (*TranslationFile, error) {
	file := newTranslationFile(filename, "tmx", int64(len(data)))

	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ParseError{Filename: filename, Message: "malformed XML", Cause: err}
		}

		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "tu" {
			continue
		}

		var tu tmxTu
		if err := dec.DecodeElement(&tu, &se); err != nil {
			return nil, &ParseError{Filename: filename, Message: "malformed <tu> element", Cause: err}
		}

		source, target := tmxAssignSides(tu.Tuvs)

		key := strings.TrimSpace(tu.ID)
		if key == "" {
			key = fmt.Sprintf("tu_%d", len(file.Units)+1)
		}

		file.Units = append(file.Units, TranslationUnit{
			ID:     newID("unit"),
			Key:    key,
			Source: source,
			Target: target,
			Index:  len(file.Units) + 1,
		})
	}

	return &file, nil
}

// tmxAssignSides implements the TMX language heuristic; loadGlossaryTMX
// (glossary.go) reuses it for glossary rows by calling decodeTMX directly
// rather than duplicating the assignment logic.
func tmxAssignSides(tuvs []tmxTuv) (source, target string) {
	srcIdx, tgtIdx := -1, -1
	for i, tuv := range tuvs {
		isSrc := i == 0 || strings.HasPrefix(strings.ToLower(tuv.Lang), "en")
		if isSrc && srcIdx == -1 {
			srcIdx = i
		} else if tgtIdx == -1 {
			tgtIdx = i
		}
	}
	if srcIdx >= 0 {
		source = tuvs[srcIdx].Seg
	}
	if tgtIdx >= 0 {
		target = tuvs[tgtIdx].Seg
	}
	return source, target
}
