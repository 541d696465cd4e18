// Copyright (c) 2026 The Jaeger Authors.
// SPDX-License-Identifier: Apache-2.0

// Package sanitizer repairs clock-skew artifacts in a rooted span tree so
// that every child's interval is contained within its parent's, per
// spec.md §4.3.
package sanitizer

import (
	"go.uber.org/zap"

	"github.com/jaegertracing/jaeger-analytics-go/internal/analysis/model"
)

// Stats counts the corrective actions taken, for diagnostics only —
// spec.md §7 treats ContainmentDrift as handled without surfacing.
type Stats struct {
	Shrunk   int
	Detached int
}

// Sanitize walks the tree rooted at trace.Root, mutating child spans in
// place so every parent/child pair satisfies containment, and detaching
// (dropping, with all descendants) any child that is neither contained
// nor overflowing on exactly one side: a child disjoint from its parent,
// or one that overflows both its parent's start and end.
func Sanitize(trace *model.Trace, logger *zap.Logger) Stats {
	if trace.Root == nil {
		return Stats{}
	}
	var stats Stats
	sanitizeChildren(trace.Root, &stats, logger)
	return stats
}

func sanitizeChildren(parent *model.Span, stats *Stats, logger *zap.Logger) {
	pStart, pEnd := parent.StartTime, parent.EndTime()

	// Iterate over a snapshot since detach mutates parent.Children.
	children := make([]*model.Span, len(parent.Children))
	copy(children, parent.Children)

	for _, c := range children {
		cStart, cEnd := c.StartTime, c.EndTime()

		switch {
		case pStart <= cStart && cEnd <= pEnd:
			// Case 1: contained.

		case cStart < pStart && pStart < cEnd && cEnd <= pEnd:
			// Case 2: leading overflow.
			origStart := c.StartTime
			c.StartTime = pStart
			c.Duration -= pStart - origStart
			stats.Shrunk++

		case pStart <= cStart && cStart < pEnd && cEnd > pEnd:
			// Case 3: trailing overflow.
			origEnd := cEnd
			c.Duration -= origEnd - pEnd
			stats.Shrunk++

		default:
			// Case 4: disjoint, or overflowing both ends — drop the child
			// and its whole subtree.
			c.DetachFromParent()
			stats.Detached++
			logger.Debug("sanitizer detached disjoint child",
				zap.String("parent_span_id", parent.SpanID),
				zap.String("child_span_id", c.SpanID))
			continue
		}

		sanitizeChildren(c, stats, logger)
	}
}
