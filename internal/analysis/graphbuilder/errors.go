// Copyright (c) 2026 The Jaeger Authors.
// SPDX-License-Identifier: Apache-2.0

package graphbuilder

import "errors"

// ErrMalformedInput is returned when a trace is missing its traceID, a
// span is missing its spanID, or a span has a negative duration.
var ErrMalformedInput = errors.New("malformed input")

// ErrNoRoot is returned when root selection fails: strict mode saw zero
// or multiple potential roots, or lenient mode found no span matching
// the requested service/operation.
var ErrNoRoot = errors.New("no root span")
