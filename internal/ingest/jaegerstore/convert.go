// Copyright (c) 2026 The Jaeger Authors.
// SPDX-License-Identifier: Apache-2.0

// Package jaegerstore adapts traces read out of a Jaeger span-storage
// backend (github.com/jaegertracing/jaeger-idl/model/v1) into the
// graphbuilder.Blob shape, so the analysis engine can run directly
// against a live or replayed storage backend instead of only JSON
// export files. Grounded on the teacher's
// model/converter/json.FromDomain, which performs the equivalent
// domain-model -> export-JSON conversion the other direction.
package jaegerstore

import (
	"fmt"

	"github.com/jaegertracing/jaeger-idl/model/v1"

	"github.com/jaegertracing/jaeger-analytics-go/internal/analysis/graphbuilder"
)

const hostnameTag = "hostname"

// Convert turns one domain-model trace into a graphbuilder.TraceData.
// Processes are keyed by their position in trace.Spans' first
// occurrence, mirroring FromDomain's process de-duplication table.
func Convert(trace *model.Trace) (graphbuilder.TraceData, error) {
	if trace == nil || len(trace.Spans) == 0 {
		return graphbuilder.TraceData{}, fmt.Errorf("jaegerstore: trace has no spans")
	}

	td := graphbuilder.TraceData{
		TraceID:   trace.Spans[0].TraceID.String(),
		Processes: make(map[string]graphbuilder.ProcessData),
	}

	processIDs := make(map[string]string) // canonical process key -> processID
	nextProcessID := 0

	for _, span := range trace.Spans {
		processID := processIDFor(span, processIDs, &nextProcessID)
		td.Processes[processID] = toProcessData(span.Process)

		sd := graphbuilder.SpanData{
			SpanID:        span.SpanID.String(),
			OperationName: span.OperationName,
			ProcessID:     processID,
			StartTime:     span.StartTime.UnixMicro(),
			Duration:      span.Duration.Microseconds(),
		}
		for _, ref := range span.References {
			sd.References = append(sd.References, graphbuilder.ReferenceData{
				RefType: refTypeName(ref.RefType),
				SpanID:  ref.SpanID.String(),
			})
		}
		td.Spans = append(td.Spans, sd)
	}

	return td, nil
}

func processIDFor(span *model.Span, seen map[string]string, next *int) string {
	key := ""
	if span.Process != nil {
		key = span.Process.ServiceName
	}
	if id, ok := seen[key]; ok {
		return id
	}
	id := fmt.Sprintf("p%d", *next)
	*next++
	seen[key] = id
	return id
}

func toProcessData(p *model.Process) graphbuilder.ProcessData {
	if p == nil {
		return graphbuilder.ProcessData{}
	}
	pd := graphbuilder.ProcessData{ServiceName: p.ServiceName}
	for _, tag := range p.Tags {
		if tag.Key == hostnameTag {
			pd.Tags = append(pd.Tags, graphbuilder.TagData{Key: tag.Key, Value: tag.VStr})
		}
	}
	return pd
}

func refTypeName(rt model.SpanRefType) string {
	if rt == model.FollowsFrom {
		return "FOLLOWS_FROM"
	}
	return "CHILD_OF"
}
