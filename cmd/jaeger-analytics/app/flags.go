// Copyright (c) 2026 The Jaeger Authors.
// SPDX-License-Identifier: Apache-2.0

// Package app holds the jaeger-analytics binary's flag/Options wiring,
// grounded on cmd/ingester/app's Options/AddFlags/InitFromViper layering.
package app

import (
	"flag"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jaegertracing/jaeger-analytics-go/internal/analysis/graphbuilder"
)

const (
	flagInputDir       = "jaeger-analytics.input-dir"
	flagOutputDir      = "jaeger-analytics.output-dir"
	flagWorkers        = "jaeger-analytics.workers"
	flagPercentiles    = "jaeger-analytics.percentiles"
	flagMaxOperations  = "jaeger-analytics.max-operations"
	flagMaxTraces      = "jaeger-analytics.max-traces"
	flagRootService    = "jaeger-analytics.root-service"
	flagRootOperation  = "jaeger-analytics.root-operation"
	flagRootMode       = "jaeger-analytics.root-mode"
	flagDifffoldedPath = "jaeger-analytics.difffolded-path"
	flagFlamegraphPath = "jaeger-analytics.flamegraph-path"
	flagHTTPHostPort   = "jaeger-analytics.http-server.host-port"

	// DefaultWorkers matches spec.md §5's suggested default pool size.
	DefaultWorkers       = 8
	DefaultMaxOperations = 50
	DefaultMaxTraces     = 500
	DefaultRootMode      = "strict"
	DefaultHTTPHostPort  = ":16700"
)

// DefaultPercentilesFlag is the comma-separated default for flagPercentiles.
const DefaultPercentilesFlag = "50,95,99"

// Options holds the resolved configuration for one jaeger-analytics run.
type Options struct {
	InputDir       string
	OutputDir      string
	Workers        int
	Percentiles    []int
	MaxOperations  int
	MaxTraces      int
	RootService    string
	RootOperation  string
	RootMode       graphbuilder.RootTraceMode
	DifffoldedPath string
	FlamegraphPath string
	HTTPHostPort   string
}

// AddFlags registers every jaeger-analytics flag on flagSet.
func AddFlags(flagSet *flag.FlagSet) {
	flagSet.String(flagInputDir, "", "Directory of Jaeger UI JSON trace blobs to analyze")
	flagSet.String(flagOutputDir, "./out", "Directory to write percentile tables and folded-stack artifacts to")
	flagSet.Int(flagWorkers, DefaultWorkers, "Number of concurrent trace-processing workers")
	flagSet.String(flagPercentiles, DefaultPercentilesFlag, "Comma-separated list of percentiles to compute")
	flagSet.Int(flagMaxOperations, DefaultMaxOperations, "Maximum number of ranked operation rows to keep")
	flagSet.Int(flagMaxTraces, DefaultMaxTraces, "Maximum number of ranked trace columns to keep")
	flagSet.String(flagRootService, "", "Service name required of the root span")
	flagSet.String(flagRootOperation, "", "Operation name required of the root span")
	flagSet.String(flagRootMode, DefaultRootMode, "Root-selection mode: strict or lenient")
	flagSet.String(flagDifffoldedPath, "", "Path to the difffolded binary used for differential folded-stack output")
	flagSet.String(flagFlamegraphPath, "", "Path to the flamegraph.pl (or compatible) rasterizer binary")
	flagSet.String(flagHTTPHostPort, DefaultHTTPHostPort, "host:port for the read-only HTTP API")
}

// InitFromViper initializes Options from a bound viper.Viper.
func (o *Options) InitFromViper(v *viper.Viper, logger *zap.Logger) *Options {
	o.InputDir = v.GetString(flagInputDir)
	o.OutputDir = v.GetString(flagOutputDir)
	o.Workers = v.GetInt(flagWorkers)
	o.Percentiles = parseIntList(v.GetString(flagPercentiles))
	o.MaxOperations = v.GetInt(flagMaxOperations)
	o.MaxTraces = v.GetInt(flagMaxTraces)
	o.RootService = v.GetString(flagRootService)
	o.RootOperation = v.GetString(flagRootOperation)
	o.DifffoldedPath = v.GetString(flagDifffoldedPath)
	o.FlamegraphPath = v.GetString(flagFlamegraphPath)
	o.HTTPHostPort = v.GetString(flagHTTPHostPort)

	switch strings.ToLower(v.GetString(flagRootMode)) {
	case "lenient":
		o.RootMode = graphbuilder.Lenient
	default:
		o.RootMode = graphbuilder.Strict
	}

	if o.InputDir == "" {
		logger.Warn("no input directory configured; nothing to analyze")
	}
	return o
}

func parseIntList(raw string) []int {
	parts := strings.Split(raw, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}
