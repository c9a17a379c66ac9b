package tqa

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

type resxData struct {
	Name    string `xml:"name,attr"`
	Value   string `xml:"value"`
	Comment string `xml:"comment"`
}

// decodeRESX implements the "resx" format tag: one unit per <data>
// element, source from <value>, notes from <comment> if present.
func decodeRESX(filename string, data []byte) (*TranslationFile, error) {
	file := newTranslationFile(filename, "resx", int64(len(data)))

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
		if !ok || se.Name.Local != "data" {
			continue
		}

		var d resxData
		if err := dec.DecodeElement(&d, &se); err != nil {
			return nil, &ParseError{Filename: filename, Message: "malformed <data> element", Cause: err}
		}
		if d.Name == "" {
			return nil, &ParseError{Filename: filename, Message: fmt.Sprintf("<data> #%d missing name attribute", len(file.Units)+1)}
		}

		file.Units = append(file.Units, TranslationUnit{
			ID:     newID("unit"),
			Key:    d.Name,
			Source: d.Value,
			Target: "",
			Notes:  strings.TrimSpace(d.Comment),
			Index:  len(file.Units) + 1,
		})
	}

	return &file, nil
}
