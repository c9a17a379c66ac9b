package tqa

// ResultCache is the interface an Analyzer consults before running the
// rule pass and populates afterward. Concrete backends (in-memory,
// Redis) live in the cache subpackage and satisfy this interface
// structurally, so the root package never imports it.
type ResultCache interface {
	Get(key string) (*QAResult, bool)
	Set(key string, result *QAResult)
}
