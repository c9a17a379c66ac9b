// Command tqa runs translation bundle QA checks from the command line.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Gangesh54321/tqa"
	"github.com/Gangesh54321/tqa/cache"
)

var (
	version   = tqa.Version
	gitCommit = tqa.GitCommit
	buildDate = tqa.BuildDate
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("tqa", flag.ContinueOnError)
	fs.SetOutput(stderr)

	glossaryPath := fs.String("glossary", "", "Path to a glossary file (tmx, csv, or tsv)")
	configPath := fs.String("config", "", "Path to a JSON QAConfig file")
	maxLengthRatio := fs.Float64("max-length-ratio", 0, "Override too_long_translation's length ratio")
	disabledRules := fs.String("rules", "", "Comma-separated rule tags to disable")
	jsonOutput := fs.Bool("json", false, "Print the QAResult as JSON")
	quiet := fs.Bool("quiet", false, "Suppress progress logging")
	cachePath := fs.String("cache", "", "Path to a cache snapshot to load before analyzing")
	showVersion := fs.Bool("version", false, "Show version")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", tqa.Name, version)
		if gitCommit != "unknown" && gitCommit != "" {
			fmt.Fprintf(stdout, "  commit: %s\n", gitCommit)
		}
		if buildDate != "unknown" && buildDate != "" {
			fmt.Fprintf(stdout, "  built:  %s\n", buildDate)
		}
		return nil
	}

	logger := newLogger(stderr, *quiet)

	var data []byte
	var filename string
	var err error

	if fs.NArg() == 0 {
		data, err = io.ReadAll(os.Stdin)
		filename = "stdin"
	} else {
		filename = fs.Arg(0)
		data, err = os.ReadFile(filename) // #nosec G304 - CLI tool reads user-specified files
	}
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	config, err := buildConfig(*configPath, *maxLengthRatio, *disabledRules)
	if err != nil {
		return err
	}

	if *glossaryPath != "" {
		glossaryData, err := os.ReadFile(*glossaryPath) // #nosec G304 - CLI tool reads user-specified files
		if err != nil {
			return fmt.Errorf("reading glossary: %w", err)
		}
		terms, err := tqa.LoadGlossary(*glossaryPath, glossaryData)
		if err != nil {
			return fmt.Errorf("loading glossary: %w", err)
		}
		config.Glossary = terms
		logger.Info().Int("terms", len(terms)).Msg("glossary loaded")
	}

	var resultCache tqa.ResultCache
	if *cachePath != "" {
		mem := cache.NewInMemoryCache(0)
		if f, err := os.Open(*cachePath); err == nil { // #nosec G304 - CLI tool reads user-specified files
			imported, err := cache.NewImporter(mem).Import(f)
			f.Close()
			if err != nil {
				return fmt.Errorf("loading cache: %w", err)
			}
			logger.Info().Int("entries", imported.Imported).Msg("cache snapshot loaded")
		}
		resultCache = mem
	}

	opts := []tqa.AnalyzerOption{}
	if resultCache != nil {
		opts = append(opts, tqa.WithCache(resultCache))
	}
	analyzer := tqa.NewAnalyzer(opts...)

	start := time.Now()
	file, err := tqa.Parse(filename, data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", filename, err)
	}
	logger.Info().Str("file", filename).Str("format", file.Format).Int("units", len(file.Units)).Dur("parse_time", time.Since(start)).Msg("parsed")

	result, err := analyzer.Analyze(file, config, data)
	if err != nil {
		return fmt.Errorf("analyzing %s: %w", filename, err)
	}

	if *jsonOutput {
		if err := outputJSON(stdout, result); err != nil {
			return err
		}
	} else {
		printHumanResult(stdout, result)
	}

	if result.Stats.Errors > 0 {
		os.Exit(1)
	}
	return nil
}

func newLogger(w io.Writer, quiet bool) zerolog.Logger {
	if quiet {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).With().Timestamp().Logger()
}

func buildConfig(configPath string, maxLengthRatio float64, disabledRules string) (tqa.QAConfig, error) {
	config := tqa.DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath) // #nosec G304 - CLI tool reads user-specified files
		if err != nil {
			return tqa.QAConfig{}, fmt.Errorf("reading config: %w", err)
		}
		if err := json.Unmarshal(data, &config); err != nil {
			return tqa.QAConfig{}, fmt.Errorf("parsing config: %w", err)
		}
	}

	if maxLengthRatio > 0 {
		config.MaxLengthRatio = maxLengthRatio
	}

	if disabledRules != "" {
		if config.Rules == nil {
			config.Rules = make(map[tqa.IssueType]bool)
			for tag, enabled := range tqa.DefaultConfig().Rules {
				config.Rules[tag] = enabled
			}
		}
		for _, tag := range strings.Split(disabledRules, ",") {
			config.Rules[tqa.IssueType(strings.TrimSpace(tag))] = false
		}
	}

	return config, nil
}

func outputJSON(w io.Writer, result tqa.QAResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func printHumanResult(w io.Writer, result tqa.QAResult) {
	fmt.Fprintf(w, "%s: %d unit(s), %d issue(s) (%d error, %d warning, %d info)\n",
		filepath.Base(result.Filename), result.Total, result.Stats.Total,
		result.Stats.Errors, result.Stats.Warnings, result.Stats.Info)

	for _, severity := range []tqa.Severity{tqa.SeverityError, tqa.SeverityWarning, tqa.SeverityInfo} {
		var matching []tqa.QAIssue
		for _, issue := range result.Issues {
			if issue.Severity == severity {
				matching = append(matching, issue)
			}
		}
		if len(matching) == 0 {
			continue
		}

		fmt.Fprintf(w, "\n[%s]\n", severity)
		for _, issue := range matching {
			fmt.Fprintf(w, "  #%d %s (%s): %s\n", issue.Index, issue.Key, issue.Type, issue.Message)
			if issue.Suggestion != "" {
				fmt.Fprintf(w, "      suggestion: %s\n", issue.Suggestion)
			}
		}
	}
}
