// Copyright (c) 2026 The Jaeger Authors.
// SPDX-License-Identifier: Apache-2.0

package pipeline_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jaegertracing/jaeger-analytics-go/internal/analysis/graphbuilder"
	"github.com/jaegertracing/jaeger-analytics-go/internal/analysis/pipeline"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestPool_RecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	pm := pipeline.NewMetrics(reg)

	sel := graphbuilder.RootSelector{RequiredService: "S1", RequiredOperation: "O1", Mode: graphbuilder.Strict}
	pool := pipeline.NewPool(1, sel, zap.NewNop()).WithMetrics(pm)
	pool.Start()

	go func() {
		pool.Submit(goodJob("good"))
		pool.Submit(badJob("bad"))
		pool.Close()
	}()
	for range pool.Results() {
	}

	require.Equal(t, 1.0, counterValue(t, pm.TracesProcessed))
	require.Equal(t, 1.0, counterValue(t, pm.TracesRejected))
}
