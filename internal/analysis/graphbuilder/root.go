// Copyright (c) 2026 The Jaeger Authors.
// SPDX-License-Identifier: Apache-2.0

package graphbuilder

// RootTraceMode selects how GraphBuilder picks the working root among a
// trace's potential roots (spec.md §4.2).
type RootTraceMode int

const (
	// Strict requires exactly one potential root, whose canonical name
	// must match the requested service/operation exactly.
	Strict RootTraceMode = iota
	// Lenient searches every potential root's subtree depth-first and
	// returns the first span matching the requested service/operation,
	// detaching it from any ancestor.
	Lenient
)

// RootSelector carries the caller-supplied root-matching parameters.
type RootSelector struct {
	RequiredService   string
	RequiredOperation string
	Mode              RootTraceMode
}
