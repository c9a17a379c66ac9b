package tqa

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// xliffTransUnit captures a <trans-unit> element by its raw inner XML so
// inline markup (<g>, <x/>, <bpt>/<ept>, <ph>) can be flattened to text
// separately rather than forcing it through a narrower struct shape.
type xliffTransUnit struct {
	ID     string      `xml:"id,attr"`
	Source xliffInline `xml:"source"`
	Target xliffInline `xml:"target"`
	Note   string      `xml:"note"`
}

type xliffInline struct {
	InnerXML string `xml:",innerxml"`
}

// decodeXLIFF implements both the "xliff" and "sdlxliff" format tags:
// SDL's variant is a superset of plain XLIFF 1.2 for the fields this
// decoder reads (id, source, target, note), so one decoder serves both.
func decodeXLIFF(filename string, data []byte, formatTag string) (*TranslationFile, error) {
	file := newTranslationFile(filename, formatTag, int64(len(data)))

	dec := xml.NewDecoder(bytes.NewReader(data))
	fileSeen := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ParseError{Filename: filename, Message: "malformed XML", Cause: err}
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch se.Name.Local {
		case "file":
			if fileSeen {
				continue
			}
			fileSeen = true
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "source-language":
					file.SourceLanguage = attr.Value
				case "target-language":
					file.TargetLanguage = attr.Value
				}
			}
		case "trans-unit":
			var tu xliffTransUnit
			if err := dec.DecodeElement(&tu, &se); err != nil {
				return nil, &ParseError{Filename: filename, Message: "malformed trans-unit", Cause: err}
			}
			if strings.TrimSpace(tu.ID) == "" {
				return nil, &ParseError{Filename: filename, Message: fmt.Sprintf("trans-unit #%d missing id attribute", len(file.Units)+1)}
			}

			unit := TranslationUnit{
				ID:     newID("unit"),
				Key:    tu.ID,
				Source: flattenMarkup(tu.Source.InnerXML),
				Target: flattenMarkup(tu.Target.InnerXML),
				Notes:  strings.TrimSpace(tu.Note),
				Index:  len(file.Units) + 1,
			}
			file.Units = append(file.Units, unit)
		}
	}

	return &file, nil
}
