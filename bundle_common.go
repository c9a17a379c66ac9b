package tqa

import "time"

// newTranslationFile builds an empty TranslationFile shell with the
// bookkeeping fields every decoder needs to set identically.
func newTranslationFile(filename, format string, size int64) TranslationFile {
	return TranslationFile{
		ID:             newID("file"),
		Filename:       filename,
		Format:         format,
		SourceLanguage: "en",
		TargetLanguage: "",
		Size:           size,
		UploadedAt:     time.Now().UTC(),
	}
}

// appendUnit appends a unit with the next dense, 1-based index, the
// given key/source/target, and empty optional fields. Decoders that
// need notes, context, or a line number build the unit directly instead.
func appendUnit(file *TranslationFile, key, source, target string) {
	file.Units = append(file.Units, TranslationUnit{
		ID:     newID("unit"),
		Key:    key,
		Source: source,
		Target: target,
		Index:  len(file.Units) + 1,
	})
}
