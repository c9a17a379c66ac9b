package tqa

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
)

type xmlString struct {
	Name     string `xml:"name,attr"`
	InnerXML string `xml:",innerxml"`
}

type xmlStringArrayItem struct {
	InnerXML string `xml:",innerxml"`
}

type xmlStringArray struct {
	Name  string                `xml:"name,attr"`
	Items []xmlStringArrayItem `xml:"item"`
}

// decodeGenericXML implements the Android-style "xml" format tag:
// <string name="…">text</string> and <string-array name="A"><item>…</item></string-array>.
// Mixed-content children are flattened to text via flattenMarkup.
func decodeGenericXML(filename string, data []byte) (*TranslationFile, error) {
	file := newTranslationFile(filename, "xml", int64(len(data)))

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
		if !ok {
			continue
		}

		switch se.Name.Local {
		case "string":
			var s xmlString
			if err := dec.DecodeElement(&s, &se); err != nil {
				return nil, &ParseError{Filename: filename, Message: "malformed <string> element", Cause: err}
			}
			if s.Name == "" {
				return nil, &ParseError{Filename: filename, Message: fmt.Sprintf("<string> #%d missing name attribute", len(file.Units)+1)}
			}
			appendUnit(&file, s.Name, flattenMarkup(s.InnerXML), "")

		case "string-array":
			var arr xmlStringArray
			if err := dec.DecodeElement(&arr, &se); err != nil {
				return nil, &ParseError{Filename: filename, Message: "malformed <string-array> element", Cause: err}
			}
			if arr.Name == "" {
				return nil, &ParseError{Filename: filename, Message: fmt.Sprintf("<string-array> #%d missing name attribute", len(file.Units)+1)}
			}
			for i, item := range arr.Items {
				key := fmt.Sprintf("%s[%d]", arr.Name, i)
				appendUnit(&file, key, flattenMarkup(item.InnerXML), "")
			}
		}
	}

	return &file, nil
}
