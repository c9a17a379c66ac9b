// Package cache provides pluggable result-cache backends for an
// Analyzer. Every backend satisfies tqa.ResultCache structurally, so
// this package imports tqa but tqa never imports this package.
package cache

import "github.com/Gangesh54321/tqa"

// resultCache documents the interface every backend in this package
// implements; it mirrors tqa.ResultCache and exists only so the
// var _ resultCache assertions in the backend files read naturally.
type resultCache interface {
	Get(key string) (*tqa.QAResult, bool)
	Set(key string, result *tqa.QAResult)
}
