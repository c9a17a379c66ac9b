package tqa

import (
	"strings"
)

type poEntry struct {
	ctx      string
	ctxSet   bool
	id       string
	idSet    bool
	str      string
	strSet   bool
	notes    []string
	lineNum  int
}

// decodePO implements both the "po" and "pot" format tags with the
// line-oriented state machine of the spec: three latches (msgctxt,
// msgid, msgstr), each accumulating quoted-string continuation lines,
// with #. comments folded into notes and a unit emitted on every new
// msgctxt/msgid once msgstr has been seen, plus once more at EOF.
func decodePO(filename string, data []byte, formatTag string) (*TranslationFile, error) {
	file := newTranslationFile(filename, formatTag, int64(len(data)))

	lines := strings.Split(string(data), "\n")

	var pending poEntry
	active := "" // which latch continuation lines append to: "ctx" | "id" | "str"

	emit := func() {
		defer func() { pending = poEntry{} }()
		if !pending.idSet || pending.id == "" {
			return // the empty-msgid header entry carries no translatable key
		}
		key := pending.id
		if pending.ctxSet && pending.ctx != "" {
			key = pending.ctx + "" + pending.id
		}
		unit := TranslationUnit{
			ID:      newID("unit"),
			Key:     key,
			Source:  pending.id,
			Target:  pending.str,
			Context: pending.ctx,
			Notes:   strings.Join(pending.notes, " "),
			Line:    pending.lineNum,
			Index:   len(file.Units) + 1,
		}
		file.Units = append(file.Units, unit)
	}

	for lineNo, raw := range lines {
		line := strings.TrimRight(raw, "\r")
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			continue

		case strings.HasPrefix(trimmed, "#."):
			// A comment after a completed entry belongs to the next one.
			if pending.strSet {
				emit()
				active = ""
			}
			note := strings.TrimSpace(strings.TrimPrefix(trimmed, "#."))
			if note != "" {
				pending.notes = append(pending.notes, note)
			}

		case strings.HasPrefix(trimmed, "#"):
			// Other comment kinds (#:, #,, #|, translator #) carry no QA-relevant data.
			continue

		case strings.HasPrefix(trimmed, "msgctxt"):
			if pending.strSet {
				emit()
			}
			pending.ctx = decodePOString(strings.TrimSpace(strings.TrimPrefix(trimmed, "msgctxt")))
			pending.ctxSet = true
			pending.lineNum = lineNo + 1
			active = "ctx"

		case strings.HasPrefix(trimmed, "msgid_plural"):
			// Plural forms are outside the scope of this decoder's data model.
			active = ""

		case strings.HasPrefix(trimmed, "msgid"):
			if pending.strSet {
				emit()
			}
			pending.id = decodePOString(strings.TrimSpace(strings.TrimPrefix(trimmed, "msgid")))
			pending.idSet = true
			if pending.lineNum == 0 {
				pending.lineNum = lineNo + 1
			}
			active = "id"

		case strings.HasPrefix(trimmed, "msgstr"):
			rest := strings.TrimPrefix(trimmed, "msgstr")
			// Skip indexed plural forms (msgstr[0] "...") entirely.
			if strings.HasPrefix(strings.TrimSpace(rest), "[") {
				active = ""
				continue
			}
			pending.str = decodePOString(strings.TrimSpace(rest))
			pending.strSet = true
			active = "str"

		case strings.HasPrefix(trimmed, "\""):
			chunk := decodePOString(trimmed)
			switch active {
			case "ctx":
				pending.ctx += chunk
			case "id":
				pending.id += chunk
			case "str":
				pending.str += chunk
			}

		default:
			// Unrecognized directive; tolerant extraction skips it.
		}
	}

	emit()

	return &file, nil
}

// decodePOString strips one layer of surrounding quotes (if present) and
// decodes the three escapes the spec names: \n, \", \\.
func decodePOString(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, "\"") && strings.HasSuffix(s, "\"") {
		s = s[1 : len(s)-1]
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case 'n':
				b.WriteByte('\n')
				i++
				continue
			case '"':
				b.WriteByte('"')
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
