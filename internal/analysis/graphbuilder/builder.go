// Copyright (c) 2026 The Jaeger Authors.
// SPDX-License-Identifier: Apache-2.0

package graphbuilder

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jaegertracing/jaeger-analytics-go/internal/analysis/model"
)

// Build reconstructs a rooted tree from one trace's flat span list and
// selects its root according to sel. It runs the first three passes
// described in spec.md §4.2: instantiate, link, populate processes; the
// fourth, capturing self-check data, is done by BuildAll. The result has
// no use of input ordering.
func Build(td TraceData, sel RootSelector, logger *zap.Logger) (*model.Trace, error) {
	if td.TraceID == "" {
		return nil, fmt.Errorf("%w: missing traceID", ErrMalformedInput)
	}

	trace := model.NewTrace(td.TraceID)

	// Pass 1: instantiate a Span per input span, recording only the
	// first CHILD_OF reference as the parent hint.
	parentHint := make(map[string]string, len(td.Spans))
	for _, sd := range td.Spans {
		if sd.SpanID == "" {
			return nil, fmt.Errorf("%w: span missing spanID", ErrMalformedInput)
		}
		span := &model.Span{
			SpanID:            sd.SpanID,
			OperationName:     sd.OperationName,
			ProcessID:         sd.ProcessID,
			StartTime:         sd.StartTime,
			Duration:          sd.Duration,
			OriginalStartTime: sd.StartTime,
			OriginalDuration:  sd.Duration,
		}
		if span.Duration < 0 {
			return nil, fmt.Errorf("%w: span %s has negative duration", ErrMalformedInput, span.SpanID)
		}
		trace.Spans[span.SpanID] = span

		for _, ref := range sd.References {
			if ref.RefType == "CHILD_OF" {
				parentHint[sd.SpanID] = ref.SpanID
				break
			}
		}
	}

	// Pass 2: link parent pointers; collect potential roots.
	var potentialRoots []*model.Span
	for _, span := range trace.Spans {
		hint, hasHint := parentHint[span.SpanID]
		if !hasHint {
			potentialRoots = append(potentialRoots, span)
			continue
		}
		parent, ok := trace.Spans[hint]
		if !ok {
			potentialRoots = append(potentialRoots, span)
			continue
		}
		span.ParentSpanID = hint
		parent.AddChild(span)
	}

	// Pass 3: populate the process table and host map.
	for pid, pd := range td.Processes {
		proc := &model.Process{ServiceName: pd.ServiceName}
		for _, tag := range pd.Tags {
			if tag.Key == "hostname" {
				proc.Hostname = tag.Value
			}
		}
		trace.Processes[pid] = proc
	}

	root, err := selectRoot(trace, potentialRoots, sel)
	if err != nil {
		logger.Debug("trace rejected during root selection",
			zap.String("trace_id", td.TraceID), zap.Error(err))
		return nil, err
	}
	trace.Root = root

	return trace, nil
}

func selectRoot(trace *model.Trace, potentialRoots []*model.Span, sel RootSelector) (*model.Span, error) {
	wanted := model.CanonicalName(sel.RequiredService, sel.RequiredOperation)

	switch sel.Mode {
	case Strict:
		if len(potentialRoots) != 1 {
			return nil, fmt.Errorf("%w: strict mode requires exactly one potential root, found %d",
				ErrNoRoot, len(potentialRoots))
		}
		candidate := potentialRoots[0]
		if trace.CanonicalName(candidate) != wanted {
			return nil, fmt.Errorf("%w: strict mode root %q does not match required %q",
				ErrNoRoot, trace.CanonicalName(candidate), wanted)
		}
		return candidate, nil

	case Lenient:
		for _, pr := range potentialRoots {
			if found := findInSubtree(trace, pr, wanted); found != nil {
				found.DetachFromParent()
				return found, nil
			}
		}
		return nil, fmt.Errorf("%w: lenient mode found no span matching %q", ErrNoRoot, wanted)

	default:
		return nil, fmt.Errorf("%w: unknown root trace mode %v", ErrNoRoot, sel.Mode)
	}
}

// findInSubtree runs a depth-first search from root looking for the
// first span whose canonical name equals wanted.
func findInSubtree(trace *model.Trace, root *model.Span, wanted string) *model.Span {
	if trace.CanonicalName(root) == wanted {
		return root
	}
	for _, c := range root.Children {
		if found := findInSubtree(trace, c, wanted); found != nil {
			return found
		}
	}
	return nil
}
