// Copyright (c) 2026 The Jaeger Authors.
// SPDX-License-Identifier: Apache-2.0

// Package foldedstack produces folded-stack text per percentile bucket,
// plus differential folds between every pair of emitted percentiles, for an external
// flame-graph rasterizer to consume (spec.md §4.7).
package foldedstack

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/jaegertracing/jaeger-analytics-go/internal/analysis/exectools"
)

// Sample is one trace's total time and its critical-path exclusive-time
// call-path map, the input unit described in spec.md §4.7.
type Sample struct {
	TotalTime             int64
	CallPathTimeExclusive map[string]int64
}

// Bucket is one percentile's emitted artifact.
type Bucket struct {
	Percentile int
	Text       string // folded-stack text
}

// Diff is a differential folded-stack artifact between two previously
// emitted percentile buckets.
type Diff struct {
	Lower, Higher int
	Text          string
}

// Emitter produces folded-stack buckets and their pairwise diffs.
type Emitter struct {
	differ exectools.Differ
	logger *zap.Logger
}

// NewEmitter returns an Emitter that shells out to differ for
// differential folds. differ may be nil if the caller only wants the
// per-percentile buckets (Emit) and not the differential pass.
func NewEmitter(differ exectools.Differ, logger *zap.Logger) *Emitter {
	return &Emitter{differ: differ, logger: logger}
}

// Emit sorts samples ascending by TotalTime and, for each percentile in
// ascending order, aggregates the first k = round(n*p/100) samples by
// summing values per call-path key. Percentiles with k == 0 are
// skipped.
func Emit(samples []Sample, percentiles []int) []Bucket {
	sorted := make([]Sample, len(samples))
	copy(sorted, samples)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].TotalTime < sorted[j].TotalTime })

	ps := make([]int, len(percentiles))
	copy(ps, percentiles)
	sort.Ints(ps)

	n := len(sorted)
	var buckets []Bucket
	for _, p := range ps {
		k := int(math.Round(float64(n) * float64(p) / 100))
		if k == 0 {
			continue
		}
		sums := make(map[string]int64)
		for _, s := range sorted[:k] {
			for cp, v := range s.CallPathTimeExclusive {
				sums[cp] += v
			}
		}
		buckets = append(buckets, Bucket{Percentile: p, Text: renderFoldedStack(sums)})
	}
	return buckets
}

// renderFoldedStack formats sums as one line per call-path: the
// "->"-joined path with "->" replaced by ";", a space, then the integer
// sum, sorted for deterministic output.
func renderFoldedStack(sums map[string]int64) string {
	keys := make([]string, 0, len(sums))
	for k := range sums {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, cp := range keys {
		folded := strings.ReplaceAll(cp, "->", ";")
		sb.WriteString(folded)
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatInt(sums[cp], 10))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// EmitWithDiffs runs Emit and then, for each emitted percentile (in
// ascending order), invokes the external difffolded tool against every
// previously emitted lower percentile, writing both inputs to outputDir
// as named by spec.md §6's file-naming contract. Percentiles must be
// processed in ascending order for the differential chaining to be
// well-defined; Emit already guarantees that ordering.
//
// A failed diff invocation is isolated to that percentile pair per
// spec.md §7: it is logged and skipped, other pairs continue.
func (e *Emitter) EmitWithDiffs(ctx context.Context, samples []Sample, percentiles []int, outputDir string) ([]Bucket, []Diff, error) {
	buckets := Emit(samples, percentiles)

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create output dir: %w", err)
	}

	paths := make(map[int]string, len(buckets))
	for _, b := range buckets {
		path := filepath.Join(outputDir, fmt.Sprintf("flame-graph-P%d.cct", b.Percentile))
		if err := os.WriteFile(path, []byte(b.Text), 0o644); err != nil {
			return nil, nil, fmt.Errorf("write folded stack for P%d: %w", b.Percentile, err)
		}
		paths[b.Percentile] = path
	}

	var diffs []Diff
	if e.differ == nil {
		return buckets, diffs, nil
	}

	for i, higher := range buckets {
		for _, lower := range buckets[:i] {
			out, err := e.differ.Diff(ctx, paths[lower.Percentile], paths[higher.Percentile])
			if err != nil {
				e.logger.Warn("differential folded-stack invocation failed",
					zap.Int("lower", lower.Percentile), zap.Int("higher", higher.Percentile), zap.Error(err))
				continue
			}
			diffPath := filepath.Join(outputDir, fmt.Sprintf("flame-graph-P%dvsP%d.cct", lower.Percentile, higher.Percentile))
			if err := os.WriteFile(diffPath, out, 0o644); err != nil {
				e.logger.Warn("failed to write differential folded-stack", zap.String("path", diffPath), zap.Error(err))
				continue
			}
			diffs = append(diffs, Diff{Lower: lower.Percentile, Higher: higher.Percentile, Text: string(out)})
		}
	}
	return buckets, diffs, nil
}
