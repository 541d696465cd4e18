// Copyright (c) 2026 The Jaeger Authors.
// SPDX-License-Identifier: Apache-2.0

// Package pipeline implements the bounded worker-pool fan-out/fan-in
// described in spec.md §5: W workers each run GraphBuilder → Sanitizer →
// CriticalPath → MetricExtractor to completion on one trace, with no
// shared mutable state between them. Grounded on
// cmd/ingester/app/processor.ParallelProcessor's channel + WaitGroup
// idiom, generalized from "process one Kafka message" to "process one
// trace blob, return a MetricSet".
package pipeline

import (
	"sync"

	"go.uber.org/zap"

	"github.com/jaegertracing/jaeger-analytics-go/internal/analysis/criticalpath"
	"github.com/jaegertracing/jaeger-analytics-go/internal/analysis/graphbuilder"
	"github.com/jaegertracing/jaeger-analytics-go/internal/analysis/metrics"
	"github.com/jaegertracing/jaeger-analytics-go/internal/analysis/model"
	"github.com/jaegertracing/jaeger-analytics-go/internal/analysis/sanitizer"
)

// Job is one unit of work: a trace's identifier (supplied by the caller;
// the CLI uses the blob's traceID, falling back to the file name plus
// index) and its decoded blob data.
type Job struct {
	TraceID string
	Data    graphbuilder.TraceData
}

// Outcome is the per-trace result fanned in to the Aggregator. Metrics
// is an empty model.NewMetricSet with Valid set to false when Err is
// set — spec.md §5/§7's isolation guarantee: one bad trace never aborts
// the run.
type Outcome struct {
	TraceID string
	Metrics *model.MetricSet
	Err     error
}

// Pool is a bounded worker pool processing independent traces in
// parallel. Worker output order is not preserved (spec.md §5); callers
// read Outcomes off Results() until it closes.
type Pool struct {
	workers int
	sel     graphbuilder.RootSelector
	logger  *zap.Logger

	jobs    chan Job
	results chan Outcome
	wg      sync.WaitGroup
	metrics *Metrics
}

// NewPool returns a Pool with the given worker count and root selector.
// Call Start to launch the workers, Submit to feed jobs, and Close once
// all jobs have been submitted.
func NewPool(workers int, sel graphbuilder.RootSelector, logger *zap.Logger) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		workers: workers,
		sel:     sel,
		logger:  logger,
		jobs:    make(chan Job, workers),
		results: make(chan Outcome, workers),
	}
}

// Start launches the worker goroutines.
func (p *Pool) Start() {
	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for job := range p.jobs {
		p.results <- p.process(job)
	}
}

func (p *Pool) process(job Job) Outcome {
	trace, err := graphbuilder.Build(job.Data, p.sel, p.logger)
	if err != nil {
		p.logger.Debug("trace rejected", zap.String("trace_id", job.TraceID), zap.Error(err))
		if p.metrics != nil {
			p.metrics.TracesRejected.Inc()
		}
		empty := model.NewMetricSet()
		empty.Valid = false
		return Outcome{TraceID: job.TraceID, Metrics: empty, Err: err}
	}

	stats := sanitizer.Sanitize(trace, p.logger)
	cp := criticalpath.Compute(trace.Root)
	ms := metrics.Extract(trace, cp)

	if p.metrics != nil {
		p.metrics.TracesProcessed.Inc()
		p.metrics.SpansSanitized.Add(float64(stats.Shrunk + stats.Detached))
	}

	return Outcome{TraceID: job.TraceID, Metrics: ms}
}

// Submit enqueues a job. It blocks if the internal queue is full.
func (p *Pool) Submit(job Job) {
	p.jobs <- job
}

// Close signals no more jobs will be submitted, waits for in-flight
// work to finish, and closes the results channel.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel of per-trace Outcomes. It closes once
// Close has finished draining all workers.
func (p *Pool) Results() <-chan Outcome {
	return p.results
}
