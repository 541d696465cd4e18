// Copyright (c) 2026 The Jaeger Authors.
// SPDX-License-Identifier: Apache-2.0

// Package metrics derives per-trace flat (operation) and context-sensitive
// (call-path) inclusive/exclusive time attributions from a critical path,
// with worst-case exemplar tracking, per spec.md §4.5.
package metrics

import (
	"github.com/jaegertracing/jaeger-analytics-go/internal/analysis/model"
)

// Extract walks criticalPath in reverse (leaf-first) and produces the
// trace's MetricSet, following the double-entry credit/debit scheme
// described in spec.md §4.5: each span credits its own op/call-path
// exclusive+inclusive accumulators, then (if not the root) debits its
// parent's exclusive accumulators by the same amount.
func Extract(trace *model.Trace, criticalPath []*model.Span) *model.MetricSet {
	ms := model.NewMetricSet()
	if trace.Root == nil || len(criticalPath) == 0 {
		ms.Valid = false
		return ms
	}

	ms.RootSpanID = trace.Root.SpanID
	ms.NumNodes = trace.NumNodes()
	ms.Depth = trace.Depth()
	ms.TotalTime = trace.Root.Duration

	exclusiveSet := make(map[string]bool)
	inclusiveSet := make(map[string]bool)
	var exclusiveExemplars = make(map[string]model.Exemplar)
	var inclusiveExemplars = make(map[string]model.Exemplar)

	for i := len(criticalPath) - 1; i >= 0; i-- {
		n := criticalPath[i]
		op := trace.CanonicalName(n)
		cp := trace.CallPath(n)

		ms.AddCallChain(op, cp)

		ms.OpTimeExclusive[op] += n.Duration
		ms.OpTimeInclusive[op] += n.Duration
		ms.CallPathTimeExclusive[cp] += n.Duration
		ms.CallPathTimeInclusive[cp] += n.Duration

		updateExemplar(exclusiveExemplars, exclusiveSet, cp, n, trace)
		updateExemplar(inclusiveExemplars, inclusiveSet, cp, n, trace)

		if n != trace.Root && n.Parent != nil {
			parentOp := trace.CanonicalName(n.Parent)
			parentCP := trace.CallPath(n.Parent)
			ms.OpTimeExclusive[parentOp] -= n.Duration
			ms.CallPathTimeExclusive[parentCP] -= n.Duration
		}
	}

	ms.OpTimeExclusive[model.TotalTimeKey] = ms.TotalTime
	ms.OpTimeInclusive[model.TotalTimeKey] = ms.TotalTime

	clampNegatives(ms.OpTimeExclusive)
	clampNegatives(ms.CallPathTimeExclusive)

	ms.ExclusiveExampleMap = exclusiveExemplars
	ms.InclusiveExampleMap = inclusiveExemplars

	return ms
}

func updateExemplar(exemplars map[string]model.Exemplar, set map[string]bool, cp string, n *model.Span, trace *model.Trace) {
	candidate := model.Exemplar{TraceID: trace.TraceID, SpanID: n.SpanID, Value: n.Duration}
	cur := exemplars[cp]
	wasSet := set[cp]
	model.UpdateMax(&cur, &wasSet, candidate)
	exemplars[cp] = cur
	set[cp] = wasSet
}

// clampNegatives zeroes any exclusive counter left negative by the
// credit/debit scheme (documented loss: fractional-microsecond anomalies
// from sanitization, per spec.md §4.5 step 7). Inclusive counters are
// left alone.
func clampNegatives(m map[string]int64) {
	for k, v := range m {
		if v < 0 {
			m[k] = 0
		}
	}
}
