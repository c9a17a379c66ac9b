package tqa

import (
	"sort"
	"sync"
)

// Analyzer runs the rule library against a TranslationFile. The zero
// value is a ready-to-use sequential analyzer; use the With* options
// to attach a result cache or enable the parallel rule pass.
type Analyzer struct {
	cache    ResultCache
	parallel bool
}

// AnalyzerOption configures an Analyzer at construction time.
type AnalyzerOption func(*Analyzer)

// WithCache attaches a ResultCache that Analyze consults before
// running the rule pass and populates after. A nil cache disables
// caching, same as not passing this option.
func WithCache(cache ResultCache) AnalyzerOption {
	return func(a *Analyzer) { a.cache = cache }
}

// WithParallel enables the goroutine-per-unit rule pass. The output is
// identical to the sequential path; only the wall-clock cost differs.
func WithParallel(enabled bool) AnalyzerOption {
	return func(a *Analyzer) { a.parallel = enabled }
}

// NewAnalyzer builds an Analyzer with the given options applied in order.
func NewAnalyzer(opts ...AnalyzerOption) *Analyzer {
	a := &Analyzer{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze runs every enabled rule against every unit of file in
// canonical rule order and returns the aggregated result. config is
// resolved against DefaultConfig and validated before use; an invalid
// config yields a *ConfigError and a zero QAResult.
func (a *Analyzer) Analyze(file *TranslationFile, config QAConfig, fileBytes []byte) (QAResult, error) {
	resolved, err := config.resolve()
	if err != nil {
		return QAResult{}, err
	}

	var cacheKey string
	if a.cache != nil && fileBytes != nil {
		cacheKey = ContentHash(fileBytes) + ":" + resolved.Fingerprint()
		if cached, ok := a.cache.Get(cacheKey); ok {
			return *cached, nil
		}
	}

	var issues []QAIssue
	if a.parallel {
		issues = a.analyzeParallel(file.Units, resolved)
	} else {
		issues = analyzeSequential(file.Units, resolved)
	}

	result := QAResult{
		FileID:   file.ID,
		Filename: file.Filename,
		Total:    len(file.Units),
		Issues:   issues,
		Stats:    computeStats(issues),
	}

	if a.cache != nil && fileBytes != nil {
		a.cache.Set(cacheKey, &result)
	}

	return result, nil
}

func analyzeSequential(units []TranslationUnit, config QAConfig) []QAIssue {
	ctx := newRuleContext(units, config)

	var issues []QAIssue
	for idx, unit := range units {
		issues = append(issues, evaluateUnit(unit, idx, ctx)...)
	}
	return issues
}

// analyzeParallel fans out one goroutine per unit, bounded implicitly
// by GOMAXPROCS via the runtime scheduler, and collects (index, issues)
// pairs over a channel before sorting by index, so the observable issue
// order matches the sequential path regardless of goroutine completion
// order.
func (a *Analyzer) analyzeParallel(units []TranslationUnit, config QAConfig) []QAIssue {
	ctx := newRuleContext(units, config)

	type indexedIssues struct {
		index  int
		issues []QAIssue
	}

	results := make(chan indexedIssues, len(units))
	var wg sync.WaitGroup

	for idx, unit := range units {
		wg.Add(1)
		go func(idx int, unit TranslationUnit) {
			defer wg.Done()
			results <- indexedIssues{index: idx, issues: evaluateUnit(unit, idx, ctx)}
		}(idx, unit)
	}

	wg.Wait()
	close(results)

	ordered := make([]indexedIssues, 0, len(units))
	for r := range results {
		ordered = append(ordered, r)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].index < ordered[j].index })

	var issues []QAIssue
	for _, r := range ordered {
		issues = append(issues, r.issues...)
	}
	return issues
}

func evaluateUnit(unit TranslationUnit, idx int, ctx *ruleContext) []QAIssue {
	var issues []QAIssue
	for _, rule := range rules {
		if !ctx.config.Rules[rule.Tag] {
			continue
		}
		if issue, ok := rule.Check(unit, idx, ctx); ok {
			issue.Severity = rule.Severity
			issue.Type = rule.Tag
			issues = append(issues, issue)
		}
	}
	return issues
}

func computeStats(issues []QAIssue) QAStats {
	stats := QAStats{ByType: make(map[IssueType]int)}
	for _, issue := range issues {
		stats.Total++
		stats.ByType[issue.Type]++
		switch issue.Severity {
		case SeverityError:
			stats.Errors++
		case SeverityWarning:
			stats.Warnings++
		case SeverityInfo:
			stats.Info++
		}
	}
	return stats
}
