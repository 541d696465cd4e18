// Copyright (c) 2026 The Jaeger Authors.
// SPDX-License-Identifier: Apache-2.0

package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/jaegertracing/jaeger-analytics-go/internal/analysis/aggregator"
	"github.com/jaegertracing/jaeger-analytics-go/internal/analysis/foldedstack"
)

// APIHandler serves a read-only view over one completed run's
// aggregator output. It holds no storage handle of its own: spec.md's
// Non-goals exclude a live query path, so every handler here just
// projects the in-memory Aggregator/Emitter results built at the end of
// a batch run, the way the teacher's APIHandler projects querysvc
// results without owning the storage backend itself.
type APIHandler struct {
	agg     *aggregator.Aggregator
	samples []foldedstack.Sample
	logger  *zap.Logger
}

// NewAPIHandler returns an APIHandler over agg's accumulated results and
// the per-trace samples used for folded-stack emission.
func NewAPIHandler(agg *aggregator.Aggregator, samples []foldedstack.Sample, logger *zap.Logger) *APIHandler {
	return &APIHandler{agg: agg, samples: samples, logger: logger}
}

// structuredResponse mirrors the teacher's query API envelope: a data
// payload plus an explicit (possibly empty) error list, rather than
// conflating "no results" with "request failed".
type structuredResponse struct {
	Data   any      `json:"data"`
	Errors []string `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(structuredResponse{Data: data})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(structuredResponse{Errors: []string{msg}})
}

func (h *APIHandler) getOperations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.agg.OccurrenceCounts())
}

func (h *APIHandler) getCallPaths(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.agg.CallPathRollup(true))
}

func (h *APIHandler) getFoldedStack(w http.ResponseWriter, r *http.Request) {
	percentile, err := strconv.Atoi(mux.Vars(r)["percentile"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid percentile")
		return
	}

	buckets := foldedstack.Emit(h.samples, []int{percentile})
	if len(buckets) == 0 {
		writeError(w, http.StatusNotFound, "percentile has no samples")
		return
	}
	writeJSON(w, http.StatusOK, buckets[0])
}

func (h *APIHandler) getFoldedStackDiff(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	lower, errL := strconv.Atoi(vars["lower"])
	higher, errH := strconv.Atoi(vars["higher"])
	if errL != nil || errH != nil || lower >= higher {
		writeError(w, http.StatusBadRequest, "invalid percentile pair")
		return
	}

	buckets := foldedstack.Emit(h.samples, []int{lower, higher})
	if len(buckets) != 2 {
		writeError(w, http.StatusNotFound, "one or both percentiles have no samples")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"lower":  buckets[0].Text,
		"higher": buckets[1].Text,
	})
}
