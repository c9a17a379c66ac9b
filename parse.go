package tqa

// Parse decodes raw bundle bytes into a TranslationFile, selecting a
// decoder by DetectFormat(filename). The entire content is read into
// memory before decoding begins; there are no partial results on
// failure.
func Parse(filename string, data []byte) (*TranslationFile, error) {
	tag, ok := DetectFormat(filename)
	if !ok {
		return nil, &ParseError{Filename: filename, Message: "unsupported file extension"}
	}

	switch tag {
	case "json":
		return decodeJSON(filename, data)
	case "xliff":
		return decodeXLIFF(filename, data, "xliff")
	case "sdlxliff":
		return decodeXLIFF(filename, data, "sdlxliff")
	case "xml":
		return decodeGenericXML(filename, data)
	case "po":
		return decodePO(filename, data, "po")
	case "pot":
		return decodePO(filename, data, "pot")
	case "strings":
		return decodeIOSStrings(filename, data)
	case "yaml":
		return decodeYAML(filename, data)
	case "properties":
		return decodeProperties(filename, data)
	case "resx":
		return decodeRESX(filename, data)
	case "csv":
		return decodeTabular(filename, data, "csv", ',')
	case "tsv":
		return decodeTabular(filename, data, "tsv", '\t')
	case "tmx":
		return decodeTMX(filename, data)
	default:
		return nil, &ParseError{Filename: filename, Message: "unsupported file extension"}
	}
}
