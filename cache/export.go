package cache

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Gangesh54321/tqa"
)

// ExportFormat is the JSON shape a cache snapshot is written in and
// read back from.
type ExportFormat struct {
	Version    string            `json:"version"`
	ExportedAt string            `json:"exported_at"`
	Entries    []ExportEntry     `json:"entries"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// ExportEntry is a single cache-key/result pair.
type ExportEntry struct {
	Key    string       `json:"key"`
	Result *tqa.QAResult `json:"result"`
}

// Exporter snapshots an InMemoryCache to JSON, for shipping a warmed
// cache alongside a CI artifact.
type Exporter struct {
	cache *InMemoryCache
}

// NewExporter builds an Exporter over cache.
func NewExporter(cache *InMemoryCache) *Exporter {
	return &Exporter{cache: cache}
}

// Export writes the cache contents to w in JSON.
func (e *Exporter) Export(w io.Writer, metadata map[string]string) error {
	data := e.cache.Entries()
	entries := make([]ExportEntry, 0, len(data))
	for key, result := range data {
		entries = append(entries, ExportEntry{Key: key, Result: result})
	}

	export := ExportFormat{
		Version:    "1.0",
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Entries:    entries,
		Metadata:   metadata,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(export); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// ExportToFile writes the snapshot to path, which is caller-controlled.
func (e *Exporter) ExportToFile(path string, metadata map[string]string) error {
	f, err := os.Create(path) // #nosec G304 - path is intentionally user-provided
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()
	return e.Export(f, metadata)
}

// Importer loads a JSON snapshot back into an InMemoryCache.
type Importer struct {
	cache *InMemoryCache
}

// NewImporter builds an Importer over cache.
func NewImporter(cache *InMemoryCache) *Importer {
	return &Importer{cache: cache}
}

// ImportResult reports what Import did.
type ImportResult struct {
	Version  string
	Metadata map[string]string
	Imported int
}

// Import decodes a snapshot from r and loads every entry into the cache.
func (i *Importer) Import(r io.Reader) (*ImportResult, error) {
	var export ExportFormat
	if err := json.NewDecoder(r).Decode(&export); err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}

	result := &ImportResult{Version: export.Version, Metadata: export.Metadata}
	for _, entry := range export.Entries {
		i.cache.Set(entry.Key, entry.Result)
		result.Imported++
	}
	return result, nil
}

// ImportFromFile loads a snapshot from path, which is caller-controlled.
func (i *Importer) ImportFromFile(path string) (*ImportResult, error) {
	f, err := os.Open(path) // #nosec G304 - path is intentionally user-provided
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()
	return i.Import(f)
}
