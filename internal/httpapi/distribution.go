// Copyright (c) 2026 The Jaeger Authors.
// SPDX-License-Identifier: Apache-2.0

package httpapi

import (
	"net/http"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/gorilla/mux"
)

// distributionSummary is an approximate, ad hoc distribution summary
// for one operation's inclusive times, computed with a log-bucket
// histogram rather than PercentileTable's exact linear interpolation.
// This endpoint trades exactness for O(1) memory per recorded sample,
// appropriate for an interactive "eyeball this operation" query; the
// authoritative percentile/ratio table for a run is PercentileTable's
// output, not this endpoint.
type distributionSummary struct {
	Operation  string  `json:"operation"`
	Count      int64   `json:"count"`
	MinMicros  int64   `json:"minMicros"`
	MaxMicros  int64   `json:"maxMicros"`
	MeanMicros float64 `json:"meanMicros"`
	StdDev     float64 `json:"stdDevMicros"`
	P50        int64   `json:"p50Micros"`
	P95        int64   `json:"p95Micros"`
	P99        int64   `json:"p99Micros"`
}

// maxRecordableMicros bounds the histogram to ~1 hour traces; values
// above this are clamped rather than rejected, since a single outlier
// should not abort the summary.
const maxRecordableMicros = int64(time.Hour / time.Microsecond)

func (h *APIHandler) getDistribution(w http.ResponseWriter, r *http.Request) {
	op := mux.Vars(r)["operation"]

	m := h.agg.InclusiveMatrix()
	row, ok := m.Cells[op]
	if !ok {
		writeError(w, http.StatusNotFound, "unknown operation")
		return
	}

	hist := hdrhistogram.New(1, maxRecordableMicros, 3)
	var count int64
	for _, v := range row {
		if v == 0 {
			continue
		}
		if v > maxRecordableMicros {
			v = maxRecordableMicros
		}
		_ = hist.RecordValue(v)
		count++
	}
	if count == 0 {
		writeError(w, http.StatusNotFound, "operation has no non-zero samples")
		return
	}

	writeJSON(w, http.StatusOK, distributionSummary{
		Operation:  op,
		Count:      count,
		MinMicros:  hist.Min(),
		MaxMicros:  hist.Max(),
		MeanMicros: hist.Mean(),
		StdDev:     hist.StdDev(),
		P50:        hist.ValueAtQuantile(50),
		P95:        hist.ValueAtQuantile(95),
		P99:        hist.ValueAtQuantile(99),
	})
}
