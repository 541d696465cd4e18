// Copyright (c) 2026 The Jaeger Authors.
// SPDX-License-Identifier: Apache-2.0

// Package otlp adapts OTLP ptrace.Traces into the graphbuilder.Blob
// shape, so the analysis engine can run against OTLP-native sources as
// well as Jaeger UI JSON blobs (SPEC_FULL.md's domain-stack expansion).
// Grounded on the teacher's own
// cmd/jaeger/internal/extension/jaegermcp/internal/criticalpath package,
// which reads spans out of ptrace.Traces the same way.
package otlp

import (
	"fmt"

	"go.opentelemetry.io/collector/pdata/pcommon"
	"go.opentelemetry.io/collector/pdata/ptrace"

	"github.com/jaegertracing/jaeger-analytics-go/internal/analysis/graphbuilder"
)

const serviceNameAttr = "service.name"

// Convert groups every span in traces by its OTLP trace ID and returns
// one graphbuilder.TraceData per trace, in first-seen order. Each
// resource's service.name attribute becomes a synthetic process keyed by
// the resource's index, mirroring GraphBuilder's processID indirection.
func Convert(traces ptrace.Traces) ([]graphbuilder.TraceData, error) {
	byTrace := make(map[string]*graphbuilder.TraceData)
	var order []string

	rss := traces.ResourceSpans()
	for i := 0; i < rss.Len(); i++ {
		rs := rss.At(i)
		processID := fmt.Sprintf("p%d", i)
		serviceName := resourceServiceName(rs.Resource())

		sss := rs.ScopeSpans()
		for j := 0; j < sss.Len(); j++ {
			spans := sss.At(j).Spans()
			for k := 0; k < spans.Len(); k++ {
				span := spans.At(k)
				traceID := span.TraceID().String()

				td, ok := byTrace[traceID]
				if !ok {
					td = &graphbuilder.TraceData{
						TraceID:   traceID,
						Processes: make(map[string]graphbuilder.ProcessData),
					}
					byTrace[traceID] = td
					order = append(order, traceID)
				}
				td.Processes[processID] = graphbuilder.ProcessData{ServiceName: serviceName}

				sd := graphbuilder.SpanData{
					SpanID:        span.SpanID().String(),
					OperationName: span.Name(),
					ProcessID:     processID,
					StartTime:     int64(span.StartTimestamp()) / 1000, // ns -> us
					Duration:      durationMicros(span),
				}
				if parent := span.ParentSpanID(); !parent.IsEmpty() {
					sd.References = []graphbuilder.ReferenceData{{RefType: "CHILD_OF", SpanID: parent.String()}}
				}
				td.Spans = append(td.Spans, sd)
			}
		}
	}

	result := make([]graphbuilder.TraceData, 0, len(order))
	for _, tid := range order {
		result = append(result, *byTrace[tid])
	}
	return result, nil
}

func durationMicros(span ptrace.Span) int64 {
	d := int64(span.EndTimestamp()) - int64(span.StartTimestamp())
	if d < 0 {
		return 0
	}
	return d / 1000
}

func resourceServiceName(res pcommon.Resource) string {
	if v, ok := res.Attributes().Get(serviceNameAttr); ok {
		return v.AsString()
	}
	return "unknown_service"
}
