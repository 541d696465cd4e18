// Copyright (c) 2026 The Jaeger Authors.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/jaegertracing/jaeger-analytics-go/internal/analysis/aggregator"
	"github.com/jaegertracing/jaeger-analytics-go/internal/analysis/exectools"
	"github.com/jaegertracing/jaeger-analytics-go/internal/analysis/foldedstack"
	"github.com/jaegertracing/jaeger-analytics-go/internal/analysis/graphbuilder"
	"github.com/jaegertracing/jaeger-analytics-go/internal/analysis/pipeline"
)

// Result is the outcome of one full Runner.Run call: the populated
// Aggregator, the per-trace samples used for folded-stack emission,
// and the folded-stack buckets/diffs already written to OutputDir.
type Result struct {
	Aggregator      *aggregator.Aggregator
	Samples         []foldedstack.Sample
	Buckets         []foldedstack.Bucket
	Diffs           []foldedstack.Diff
	TracesProcessed int
	TracesRejected  int
}

// Runner wires Options into a running Pipeline, Aggregator, and
// FoldedStackEmitter, the way cmd/ingester/app.Consumer wires a Kafka
// consumer into its own processor pool.
type Runner struct {
	opts       *Options
	differ     exectools.Differ
	rasterizer exectools.Rasterizer
	logger     *zap.Logger
}

// NewRunner returns a Runner for opts. differ/rasterizer may be nil
// when their external tools were not configured.
func NewRunner(opts *Options, differ exectools.Differ, rasterizer exectools.Rasterizer, logger *zap.Logger) *Runner {
	return &Runner{opts: opts, differ: differ, rasterizer: rasterizer, logger: logger}
}

// Run loads every *.json trace blob under opts.InputDir, processes all
// traces through a worker pool, aggregates the results, emits
// folded-stack artifacts (and rasterizes them, when a rasterizer is
// configured) under opts.OutputDir, and returns the accumulated Result.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	sel := graphbuilder.RootSelector{
		RequiredService:   r.opts.RootService,
		RequiredOperation: r.opts.RootOperation,
		Mode:              r.opts.RootMode,
	}

	jobs, err := loadJobs(r.opts.InputDir)
	if err != nil {
		return nil, fmt.Errorf("load trace blobs: %w", err)
	}
	r.logger.Info("loaded trace blobs", zap.Int("traces", len(jobs)))

	reg := prometheus.NewRegistry()
	pm := pipeline.NewMetrics(reg)

	pool := pipeline.NewPool(r.opts.Workers, sel, r.logger).WithMetrics(pm)
	pool.Start()

	go func() {
		for _, job := range jobs {
			pool.Submit(job)
		}
		pool.Close()
	}()

	agg := aggregator.New(aggregator.Config{
		Percentiles:   r.opts.Percentiles,
		MaxOperations: r.opts.MaxOperations,
		MaxTraces:     r.opts.MaxTraces,
	})

	var samples []foldedstack.Sample
	processed, rejected := 0, 0
	for outcome := range pool.Results() {
		agg.Add(outcome.TraceID, outcome.Metrics)
		if outcome.Err != nil {
			rejected++
			continue
		}
		processed++
		samples = append(samples, foldedstack.Sample{
			TotalTime:             outcome.Metrics.TotalTime,
			CallPathTimeExclusive: outcome.Metrics.CallPathTimeExclusive,
		})
	}

	emitter := foldedstack.NewEmitter(r.differ, r.logger)
	buckets, diffs, err := emitter.EmitWithDiffs(ctx, samples, r.opts.Percentiles, r.opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("emit folded stacks: %w", err)
	}

	if r.rasterizer != nil {
		r.rasterizeAll(ctx, buckets)
	}

	if err := writePercentileTable(agg, r.opts.OutputDir); err != nil {
		return nil, fmt.Errorf("write percentile table: %w", err)
	}

	return &Result{
		Aggregator:      agg,
		Samples:         samples,
		Buckets:         buckets,
		Diffs:           diffs,
		TracesProcessed: processed,
		TracesRejected:  rejected,
	}, nil
}

func (r *Runner) rasterizeAll(ctx context.Context, buckets []foldedstack.Bucket) {
	for _, b := range buckets {
		cctPath := filepath.Join(r.opts.OutputDir, fmt.Sprintf("flame-graph-P%d.cct", b.Percentile))
		svgPath := filepath.Join(r.opts.OutputDir, fmt.Sprintf("flame-graph-P%d.svg", b.Percentile))
		out, err := r.rasterizer.Rasterize(ctx, cctPath)
		if err != nil {
			r.logger.Warn("flame-graph rasterization failed", zap.Int("percentile", b.Percentile), zap.Error(err))
			continue
		}
		if err := os.WriteFile(svgPath, out, 0o644); err != nil {
			r.logger.Warn("failed to write rasterized flame graph", zap.String("path", svgPath), zap.Error(err))
		}
	}
}

// loadJobs reads every *.json file directly under dir as a
// graphbuilder.Blob and flattens it into one pipeline.Job per trace,
// using the trace's traceID as the job's TraceID, or the blob file's
// base name and the trace's index when that traceID is empty.
func loadJobs(dir string) ([]pipeline.Job, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var jobs []pipeline.Job
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		var blob graphbuilder.Blob
		if err := json.Unmarshal(data, &blob); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}

		base := strings.TrimSuffix(entry.Name(), ".json")
		for i, td := range blob.Data {
			traceID := td.TraceID
			if traceID == "" {
				traceID = fmt.Sprintf("%s-%d", base, i)
			}
			jobs = append(jobs, pipeline.Job{TraceID: traceID, Data: td})
		}
	}
	return jobs, nil
}
