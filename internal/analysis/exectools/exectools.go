// Copyright (c) 2026 The Jaeger Authors.
// SPDX-License-Identifier: Apache-2.0

// Package exectools wraps invocation of the external flame-graph
// toolchain (brendangregg/FlameGraph's difffolded.pl and flamegraph.pl)
// behind a small interface, so tests can substitute a fake and the real
// implementation stays an injectable collaborator per spec.md §9.
package exectools

import (
	"context"
	"fmt"
	"os/exec"
)

// ErrExternalTool wraps a failed subprocess invocation, letting callers
// distinguish one percentile pair's diff failure from a fatal
// configuration error (spec.md §7).
type ErrExternalTool struct {
	Tool string
	Err  error
}

func (e *ErrExternalTool) Error() string {
	return fmt.Sprintf("external tool %q failed: %v", e.Tool, e.Err)
}

func (e *ErrExternalTool) Unwrap() error { return e.Err }

// Differ compares two folded-stack files and returns the differential
// folded-stack text, following the convention consumed by
// brendangregg/FlameGraph's difffolded.pl (spec.md §6): baselineFile is
// the lower percentile's folded-stack text, currentFile the higher one.
type Differ interface {
	Diff(ctx context.Context, baselineFile, currentFile string) ([]byte, error)
}

// CommandDiffer invokes an external difffolded-compatible binary via
// os/exec. It is the real Differ implementation; tests substitute a
// fake to avoid shelling out.
type CommandDiffer struct {
	Path string
}

// NewCommandDiffer returns a Differ backed by the binary at path.
func NewCommandDiffer(path string) *CommandDiffer {
	return &CommandDiffer{Path: path}
}

// Diff executes `<path> baselineFile currentFile` and returns its
// stdout.
func (c *CommandDiffer) Diff(ctx context.Context, baselineFile, currentFile string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, c.Path, baselineFile, currentFile)
	out, err := cmd.Output()
	if err != nil {
		return nil, &ErrExternalTool{Tool: c.Path, Err: err}
	}
	return out, nil
}
