// Copyright (c) 2026 The Jaeger Authors.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jaegertracing/jaeger-analytics-go/internal/analysis/graphbuilder"
)

const traceBlobFixture = `{
  "data": [
    {
      "traceID": "t1",
      "processes": {"p1": {"serviceName": "S1"}},
      "spans": [
        {"spanID": "A", "operationName": "O1", "processID": "p1", "startTime": 0, "duration": 1000, "references": []},
        {"spanID": "B", "operationName": "O2", "processID": "p1", "startTime": 100, "duration": 400,
         "references": [{"refType": "CHILD_OF", "spanID": "A"}]}
      ]
    }
  ]
}`

func TestRunner_Run(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "batch1.json"), []byte(traceBlobFixture), 0o644))

	opts := &Options{
		InputDir:      inputDir,
		OutputDir:     outputDir,
		Workers:       2,
		Percentiles:   []int{50, 95},
		MaxOperations: 10,
		MaxTraces:     10,
		RootService:   "S1",
		RootOperation: "O1",
		RootMode:      graphbuilder.Strict,
	}

	runner := NewRunner(opts, nil, nil, zap.NewNop())
	result, err := runner.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.TracesProcessed)
	assert.Equal(t, 0, result.TracesRejected)
	require.Len(t, result.Samples, 1)
	assert.Equal(t, int64(1000), result.Samples[0].TotalTime)

	_, err = os.Stat(filepath.Join(outputDir, "percentiles.json"))
	assert.NoError(t, err)
}

func TestRunner_Run_RejectsUnmatchedRoot(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "batch1.json"), []byte(traceBlobFixture), 0o644))

	opts := &Options{
		InputDir:      inputDir,
		OutputDir:     outputDir,
		Workers:       1,
		Percentiles:   []int{50},
		RootService:   "NoSuchService",
		RootOperation: "O1",
		RootMode:      graphbuilder.Strict,
	}

	runner := NewRunner(opts, nil, nil, zap.NewNop())
	result, err := runner.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, result.TracesProcessed)
	assert.Equal(t, 1, result.TracesRejected)
}
