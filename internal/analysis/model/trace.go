// Copyright (c) 2026 The Jaeger Authors.
// SPDX-License-Identifier: Apache-2.0

package model

import "fmt"

// Trace is the per-file container produced by GraphBuilder: a process
// table, a flat span table keyed by span ID, and a single designated
// root. It is immutable after construction except for the Sanitizer's
// time adjustments and structural pruning.
type Trace struct {
	TraceID string

	Processes map[string]*Process
	Spans     map[string]*Span

	Root *Span

	// SelfCheck holds the optional "testing" reference flat profile from
	// the input blob, used by self-check tooling outside this module.
	SelfCheck map[string]int64
}

// NewTrace returns an empty Trace ready for GraphBuilder to populate.
func NewTrace(traceID string) *Trace {
	return &Trace{
		TraceID:   traceID,
		Processes: make(map[string]*Process),
		Spans:     make(map[string]*Span),
	}
}

// ServiceName resolves a span's process to its service name, or the
// empty string if the process table has no entry for it.
func (t *Trace) ServiceName(s *Span) string {
	if p, ok := t.Processes[s.ProcessID]; ok {
		return p.ServiceName
	}
	return ""
}

// CanonicalName returns the "[service] operation" label for a span that
// belongs to this trace.
func (t *Trace) CanonicalName(s *Span) string {
	return CanonicalName(t.ServiceName(s), s.OperationName)
}

// CallPath returns the "->"-joined canonical names from the trace root
// to s, inclusive. Panics if s is unreachable from Root, which would
// indicate a GraphBuilder/Sanitizer bug rather than bad input.
func (t *Trace) CallPath(s *Span) string {
	names := t.callPathNames(s)
	path := names[0]
	for _, n := range names[1:] {
		path += "->" + n
	}
	return path
}

func (t *Trace) callPathNames(s *Span) []string {
	var chain []*Span
	for cur := s; cur != nil; cur = cur.Parent {
		chain = append(chain, cur)
	}
	if len(chain) == 0 || chain[len(chain)-1] != t.Root {
		panic(fmt.Sprintf("span %s is not reachable from trace root", s.SpanID))
	}
	names := make([]string, len(chain))
	for i, sp := range chain {
		names[len(chain)-1-i] = t.CanonicalName(sp)
	}
	return names
}

// NumNodes counts spans reachable from Root via an independent DFS,
// ignoring any spans the Sanitizer detached.
func (t *Trace) NumNodes() int {
	if t.Root == nil {
		return 0
	}
	count := 0
	var walk func(*Span)
	walk = func(s *Span) {
		count++
		for _, c := range s.Children {
			walk(c)
		}
	}
	walk(t.Root)
	return count
}

// Depth returns the longest root-to-leaf edge count plus one, or zero for
// an empty trace.
func (t *Trace) Depth() int {
	if t.Root == nil {
		return 0
	}
	var walk func(*Span) int
	walk = func(s *Span) int {
		best := 0
		for _, c := range s.Children {
			if d := walk(c); d > best {
				best = d
			}
		}
		return best + 1
	}
	return walk(t.Root)
}
