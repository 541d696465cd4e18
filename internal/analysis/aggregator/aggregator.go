// Copyright (c) 2026 The Jaeger Authors.
// SPDX-License-Identifier: Apache-2.0

// Package aggregator merges per-trace MetricSets into flat and
// call-path profiles, computes per-operation percentile distributions,
// and ranks rows/columns for a bounded report (spec.md §4.6).
package aggregator

import (
	"sort"

	"github.com/jaegertracing/jaeger-analytics-go/internal/analysis/model"
)

// Entry pairs one trace's identifier (supplied by the caller of Add) with
// its MetricSet.
type Entry struct {
	TraceID string
	Metrics *model.MetricSet
}

// Config carries the run-level parameters that shape aggregation
// output: which percentiles to compute, and how many rows/columns to
// keep after ranking.
type Config struct {
	Percentiles   []int
	MaxOperations int
	MaxTraces     int
}

// DefaultPercentiles matches spec.md's default percentile set.
var DefaultPercentiles = []int{50, 95, 99}

// Aggregator accumulates MetricSets across a run and is the sole
// mutator of the aggregate structures once traces start arriving.
// It is not safe for concurrent use; feed it from a single goroutine
// reading off the Pipeline's fan-in channel.
type Aggregator struct {
	cfg     Config
	entries []Entry
}

// New returns an Aggregator configured with cfg. A zero-value
// Config.Percentiles falls back to DefaultPercentiles.
func New(cfg Config) *Aggregator {
	if len(cfg.Percentiles) == 0 {
		cfg.Percentiles = DefaultPercentiles
	}
	return &Aggregator{cfg: cfg}
}

// Add records one trace's MetricSet. Invalid MetricSets (rejected
// traces) are recorded but excluded from occurrence counts and from
// every matrix, roll-up, percentile and ranking computation.
func (a *Aggregator) Add(traceID string, ms *model.MetricSet) {
	a.entries = append(a.entries, Entry{TraceID: traceID, Metrics: ms})
}

func (a *Aggregator) validEntries() []Entry {
	valid := make([]Entry, 0, len(a.entries))
	for _, e := range a.entries {
		if e.Metrics != nil && e.Metrics.Valid {
			valid = append(valid, e)
		}
	}
	return valid
}

// OccurrenceCounts returns, per operation, the number of traces where
// that operation appears on the critical path (a non-zero exclusive
// cell).
func (a *Aggregator) OccurrenceCounts() map[string]int {
	counts := make(map[string]int)
	for _, e := range a.validEntries() {
		for op, v := range e.Metrics.OpTimeExclusive {
			if v != 0 {
				counts[op]++
			}
		}
	}
	return counts
}

func sumDesc(keys []string, totals map[string]int64) {
	sort.Slice(keys, func(i, j int) bool {
		if totals[keys[i]] != totals[keys[j]] {
			return totals[keys[i]] > totals[keys[j]]
		}
		return keys[i] < keys[j] // deterministic tie-break
	})
}

func truncate(keys []string, max int) []string {
	if max <= 0 || max >= len(keys) {
		return keys
	}
	return keys[:max]
}
