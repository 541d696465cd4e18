// Copyright (c) 2026 The Jaeger Authors.
// SPDX-License-Identifier: Apache-2.0

package exectools

import (
	"context"
	"os/exec"
)

// Rasterizer renders a folded-stack file into an SVG flame graph via the
// external flamegraph.pl-compatible binary. Rasterization itself is out
// of scope for the analysis engine (spec.md §1); this is only the
// injectable seam the CLI uses to invoke it.
type Rasterizer interface {
	Rasterize(ctx context.Context, foldedStackFile string) ([]byte, error)
}

// CommandRasterizer invokes an external flamegraph-compatible binary.
type CommandRasterizer struct {
	Path string
}

// NewCommandRasterizer returns a Rasterizer backed by the binary at path.
func NewCommandRasterizer(path string) *CommandRasterizer {
	return &CommandRasterizer{Path: path}
}

// Rasterize executes `<path> foldedStackFile` and returns its stdout,
// the rendered SVG.
func (c *CommandRasterizer) Rasterize(ctx context.Context, foldedStackFile string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, c.Path, foldedStackFile)
	out, err := cmd.Output()
	if err != nil {
		return nil, &ErrExternalTool{Tool: c.Path, Err: err}
	}
	return out, nil
}
