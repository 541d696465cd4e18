// Copyright (c) 2026 The Jaeger Authors.
// SPDX-License-Identifier: Apache-2.0

package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jaegertracing/jaeger-analytics-go/internal/analysis/graphbuilder"
	"github.com/jaegertracing/jaeger-analytics-go/internal/analysis/pipeline"
)

func goodJob(id string) pipeline.Job {
	return pipeline.Job{
		TraceID: id,
		Data: graphbuilder.TraceData{
			TraceID: id,
			Processes: map[string]graphbuilder.ProcessData{
				"p1": {ServiceName: "S1"},
			},
			Spans: []graphbuilder.SpanData{
				{SpanID: "A", OperationName: "O1", ProcessID: "p1", StartTime: 0, Duration: 100},
			},
		},
	}
}

func badJob(id string) pipeline.Job {
	return pipeline.Job{
		TraceID: id,
		Data:    graphbuilder.TraceData{TraceID: id, Spans: []graphbuilder.SpanData{{OperationName: "missing id"}}},
	}
}

func TestPool_ProcessesTracesConcurrently(t *testing.T) {
	sel := graphbuilder.RootSelector{RequiredService: "S1", RequiredOperation: "O1", Mode: graphbuilder.Strict}
	pool := pipeline.NewPool(4, sel, zap.NewNop())
	pool.Start()

	const n = 10
	go func() {
		for i := 0; i < n; i++ {
			pool.Submit(goodJob(string(rune('a' + i))))
		}
		pool.Close()
	}()

	got := make(map[string]bool)
	for outcome := range pool.Results() {
		require.NoError(t, outcome.Err)
		require.True(t, outcome.Metrics.Valid)
		got[outcome.TraceID] = true
	}
	assert.Len(t, got, n)
}

func TestPool_IsolatesBadTraces(t *testing.T) {
	sel := graphbuilder.RootSelector{RequiredService: "S1", RequiredOperation: "O1", Mode: graphbuilder.Strict}
	pool := pipeline.NewPool(2, sel, zap.NewNop())
	pool.Start()

	go func() {
		pool.Submit(goodJob("good"))
		pool.Submit(badJob("bad"))
		pool.Close()
	}()

	var sawGood, sawBad bool
	for outcome := range pool.Results() {
		switch outcome.TraceID {
		case "good":
			assert.NoError(t, outcome.Err)
			assert.True(t, outcome.Metrics.Valid)
			sawGood = true
		case "bad":
			assert.Error(t, outcome.Err)
			assert.False(t, outcome.Metrics.Valid)
			sawBad = true
		}
	}
	assert.True(t, sawGood)
	assert.True(t, sawBad)
}

func TestNewPool_ClampsWorkersToOne(t *testing.T) {
	sel := graphbuilder.RootSelector{Mode: graphbuilder.Strict}
	pool := pipeline.NewPool(0, sel, zap.NewNop())
	pool.Start()
	pool.Close()
	_, ok := <-pool.Results()
	assert.False(t, ok, "results channel should close cleanly with no jobs submitted")
}
