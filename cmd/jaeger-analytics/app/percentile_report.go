// Copyright (c) 2026 The Jaeger Authors.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/jaegertracing/jaeger-analytics-go/internal/analysis/aggregator"
)

// percentileReport is the on-disk shape of the exclusive/inclusive
// percentile tables written alongside the folded-stack artifacts.
type percentileReport struct {
	Exclusive map[string]map[int]aggregator.PercentileCell `json:"exclusive"`
	Inclusive map[string]map[int]aggregator.PercentileCell `json:"inclusive"`
}

func writePercentileTable(agg *aggregator.Aggregator, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return err
	}

	report := percentileReport{
		Exclusive: agg.PercentileTable(agg.ExclusiveMatrix()),
		Inclusive: agg.PercentileTable(agg.InclusiveMatrix()),
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outputDir, "percentiles.json"), out, 0o644)
}
