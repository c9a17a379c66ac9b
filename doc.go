// Package tqa implements a deterministic, offline translation quality
// assurance engine.
//
// It parses bilingual translation bundles (JSON, XLIFF/SDLXLIFF, Android
// XML, PO/POT, iOS .strings, restricted YAML, Java .properties, CSV/TSV,
// RESX, TMX) into a normalized TranslationFile, then runs a library of
// independent rules over every unit to produce a QAResult.
//
// Basic usage:
//
//	import "github.com/Gangesh54321/tqa"
//
//	func main() {
//	    file, err := tqa.Parse("strings.json", data)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    result, err := tqa.NewAnalyzer().Analyze(file, tqa.DefaultConfig(), nil)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("%d issues (%d errors)\n", result.Stats.Total, result.Stats.Errors)
//	}
package tqa
