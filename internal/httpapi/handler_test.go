// Copyright (c) 2026 The Jaeger Authors.
// SPDX-License-Identifier: Apache-2.0

package httpapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jaegertracing/jaeger-analytics-go/internal/analysis/aggregator"
	"github.com/jaegertracing/jaeger-analytics-go/internal/analysis/foldedstack"
	"github.com/jaegertracing/jaeger-analytics-go/internal/analysis/model"
	"github.com/jaegertracing/jaeger-analytics-go/internal/httpapi"
)

func msFor(total int64, opExclusive map[string]int64) *model.MetricSet {
	ms := model.NewMetricSet()
	ms.TotalTime = total
	for op, v := range opExclusive {
		ms.OpTimeExclusive[op] = v
		ms.OpTimeInclusive[op] = v
	}
	return ms
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	agg := aggregator.New(aggregator.Config{})
	agg.Add("t1", msFor(1000, map[string]int64{"[S1] op-a": 400}))
	agg.Add("t2", msFor(2000, map[string]int64{"[S1] op-a": 900}))

	samples := []foldedstack.Sample{
		{TotalTime: 1000, CallPathTimeExclusive: map[string]int64{"[S1] op-a": 400}},
		{TotalTime: 2000, CallPathTimeExclusive: map[string]int64{"[S1] op-a": 900}},
	}

	handler := httpapi.NewAPIHandler(agg, samples, zap.NewNop())
	r := httpapi.NewRouter()
	handler.RegisterRoutes(r)
	return httptest.NewServer(r)
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestGetOperations(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/operations")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data map[string]int `json:"data"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, 2, body.Data["[S1] op-a"])
}

func TestGetFoldedStack(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/foldedstack/95")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Percentile int    `json:"Percentile"`
			Text       string `json:"Text"`
		} `json:"data"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, 95, body.Data.Percentile)
	assert.Contains(t, body.Data.Text, "[S1] op-a")
}

func TestGetFoldedStack_PercentileWithNoSamples(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/foldedstack/1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetDistribution(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/distribution/" + "%5BS1%5D%20op-a")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Count     int64 `json:"count"`
			MinMicros int64 `json:"minMicros"`
		} `json:"data"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, int64(2), body.Data.Count)
	assert.InDelta(t, 400, body.Data.MinMicros, 5)
}

func TestGetDistribution_UnknownOperation(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/distribution/does-not-exist")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
