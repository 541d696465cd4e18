// Copyright (c) 2026 The Jaeger Authors.
// SPDX-License-Identifier: Apache-2.0

// Package model holds the trace graph entities shared by every stage of
// the critical-path pipeline: spans, their parent/child relations, the
// per-trace process table, and the canonical naming scheme used to key
// every profile and exemplar map downstream.
package model

// Span is a single timed operation reconstructed from the input blob.
//
// StartTime/Duration are the active timing pair: Sanitizer mutates them
// in place to enforce parent/child containment, while OriginalStartTime
// and OriginalDuration retain the values as received so diagnostics and
// tests can report how much drift was corrected.
type Span struct {
	SpanID        string
	ParentSpanID  string
	OperationName string
	ProcessID     string

	StartTime int64 // microseconds since Unix epoch
	Duration  int64 // microseconds, non-negative after sanitization

	OriginalStartTime int64
	OriginalDuration  int64

	Parent   *Span
	Children []*Span
}

// EndTime is the derived end of the active timing pair.
func (s *Span) EndTime() int64 {
	return s.StartTime + s.Duration
}

// AddChild wires c as a child of s. Repeat insertion of the same span is a
// no-op so GraphBuilder can call it defensively while linking references.
func (s *Span) AddChild(c *Span) {
	for _, existing := range s.Children {
		if existing == c {
			return
		}
	}
	c.Parent = s
	s.Children = append(s.Children, c)
}

// DetachFromParent removes s from its parent's children and clears both
// sides of the relation. Used by the Sanitizer to drop disjoint children
// and by lenient root selection to cut a matched span free of its
// ancestors.
func (s *Span) DetachFromParent() {
	if s.Parent == nil {
		return
	}
	p := s.Parent
	for i, c := range p.Children {
		if c == s {
			p.Children = append(p.Children[:i], p.Children[i+1:]...)
			break
		}
	}
	s.Parent = nil
	s.ParentSpanID = ""
}
