// Copyright (c) 2026 The Jaeger Authors.
// SPDX-License-Identifier: Apache-2.0

// Package criticalpath extracts, per trace, the ordered sequence of
// spans forming the longest serialized chain from root to a leaf, with
// tolerance for small overlaps between siblings (spec.md §4.4).
package criticalpath

import (
	"sort"

	"github.com/jaegertracing/jaeger-analytics-go/internal/analysis/model"
)

// overlapTolerance is the fraction of the parent's duration that a
// sibling overlap may span and still be treated as happens-before.
const overlapTolerance = 0.01

// Compute returns the critical path starting at root: root itself,
// followed recursively by the latest-ending child and any earlier
// sibling that happens-before it.
func Compute(root *model.Span) []*model.Span {
	if root == nil {
		return nil
	}
	path := []*model.Span{root}
	if len(root.Children) == 0 {
		return path
	}

	children := make([]*model.Span, len(root.Children))
	copy(children, root.Children)
	sort.SliceStable(children, func(i, j int) bool {
		return children[i].EndTime() > children[j].EndTime()
	})

	latest := children[0]
	path = append(path, Compute(latest)...)

	for _, candidate := range children[1:] {
		if happensBefore(root, candidate, latest) {
			path = append(path, Compute(candidate)...)
			latest = candidate
		}
	}

	return path
}

// happensBefore implements the relation from spec.md §4.4: either the
// strict ordering (candidate ends before successor starts), or the
// tolerant ordering that absorbs a sliver of clock skew between two
// siblings provided no third sibling of parent overlaps the gap.
func happensBefore(parent, candidate, successor *model.Span) bool {
	if candidate.EndTime() < successor.StartTime {
		return true
	}

	if !(candidate.EndTime() < successor.EndTime() && candidate.StartTime < successor.StartTime) {
		return false
	}
	if parent.Duration <= 0 {
		return false
	}
	overlap := float64(candidate.EndTime()-successor.StartTime) / float64(parent.Duration)
	if overlap >= overlapTolerance {
		return false
	}

	windowStart, windowEnd := successor.StartTime, candidate.EndTime()
	endpointsInWindow := 0
	for _, sib := range parent.Children {
		if sib.StartTime >= windowStart && sib.StartTime <= windowEnd {
			endpointsInWindow++
		}
		if sib.EndTime() >= windowStart && sib.EndTime() <= windowEnd {
			endpointsInWindow++
		}
	}
	return endpointsInWindow == 2
}
