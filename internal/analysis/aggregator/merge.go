// Copyright (c) 2026 The Jaeger Authors.
// SPDX-License-Identifier: Apache-2.0

package aggregator

import "github.com/jaegertracing/jaeger-analytics-go/internal/analysis/model"

// Merge combines two MetricSets' flat maps and call-chain sets. It is
// associative and commutative (spec.md S5's testable property 5): the
// result does not depend on merge order, since every accumulator is a
// sum and every call-chain accumulator is a set union. Used by tests to
// check associativity directly, and available to callers that want to
// pre-merge MetricSets outside the Aggregator's trace-keyed model.
func Merge(a, b *model.MetricSet) *model.MetricSet {
	out := model.NewMetricSet()
	mergeInt64Map(out.OpTimeExclusive, a.OpTimeExclusive, b.OpTimeExclusive)
	mergeInt64Map(out.OpTimeInclusive, a.OpTimeInclusive, b.OpTimeInclusive)
	mergeInt64Map(out.CallPathTimeExclusive, a.CallPathTimeExclusive, b.CallPathTimeExclusive)
	mergeInt64Map(out.CallPathTimeInclusive, a.CallPathTimeInclusive, b.CallPathTimeInclusive)

	for op, paths := range a.CallChain {
		mergeCallChain(out, op, paths)
	}
	for op, paths := range b.CallChain {
		mergeCallChain(out, op, paths)
	}
	return out
}

func mergeInt64Map(dst, a, b map[string]int64) {
	for k, v := range a {
		dst[k] += v
	}
	for k, v := range b {
		dst[k] += v
	}
}

func mergeCallChain(out *model.MetricSet, op string, paths map[string]struct{}) {
	for cp := range paths {
		out.AddCallChain(op, cp)
	}
}
