// Copyright (c) 2026 The Jaeger Authors.
// SPDX-License-Identifier: Apache-2.0

package graphbuilder

import (
	"go.uber.org/zap"

	"github.com/jaegertracing/jaeger-analytics-go/internal/analysis/model"
)

// Result pairs one trace data entry's build outcome with its index in
// the blob, since a rejected trace yields no *model.Trace.
type Result struct {
	Index int
	Trace *model.Trace // nil when Err is set
	Err   error
}

// BuildAll runs Build over every trace in the blob, in blob order
// (ordering here only affects Result.Index; GraphBuilder itself does
// not depend on input order). Pass 4 — capturing the optional "testing"
// self-check profile — is applied here, since it lives at the blob
// level rather than per-trace.
func BuildAll(blob Blob, sel RootSelector, logger *zap.Logger) []Result {
	results := make([]Result, len(blob.Data))
	for i, td := range blob.Data {
		trace, err := Build(td, sel, logger)
		if err != nil {
			results[i] = Result{Index: i, Err: err}
			continue
		}
		if i < len(blob.Testing) {
			trace.SelfCheck = blob.Testing[i]
		}
		results[i] = Result{Index: i, Trace: trace}
	}
	return results
}
