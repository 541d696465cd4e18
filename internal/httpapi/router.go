// Copyright (c) 2026 The Jaeger Authors.
// SPDX-License-Identifier: Apache-2.0

// Package httpapi exposes a read-only HTTP surface over an
// aggregator.Aggregator's accumulated results, grounded on the
// teacher's cmd/query/app NewRouter/APIHandler/RegisterRoutes layering.
package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
)

const apiPrefix = "/api/v1"

// NewRouter returns an empty, strict-slash mux.Router ready for
// RegisterRoutes.
func NewRouter() *mux.Router {
	r := mux.NewRouter()
	r.StrictSlash(true)
	return r
}

// RegisterRoutes wires h's handlers onto r under apiPrefix.
func (h *APIHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc(apiPrefix+"/operations", h.getOperations).Methods(http.MethodGet)
	r.HandleFunc(apiPrefix+"/callpaths", h.getCallPaths).Methods(http.MethodGet)
	r.HandleFunc(apiPrefix+"/foldedstack/{percentile:[0-9]+}", h.getFoldedStack).Methods(http.MethodGet)
	r.HandleFunc(apiPrefix+"/foldedstack/{lower:[0-9]+}vs{higher:[0-9]+}", h.getFoldedStackDiff).Methods(http.MethodGet)
	r.HandleFunc(apiPrefix+"/distribution/{operation}", h.getDistribution).Methods(http.MethodGet)
}
