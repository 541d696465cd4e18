// Copyright (c) 2026 The Jaeger Authors.
// SPDX-License-Identifier: Apache-2.0

// Command jaeger-analytics runs the critical-path analysis pipeline
// over a directory of Jaeger UI JSON trace exports and writes the
// resulting percentile tables and folded-stack artifacts to disk.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jaegertracing/jaeger-analytics-go/cmd/jaeger-analytics/app"
	"github.com/jaegertracing/jaeger-analytics-go/internal/analysis/exectools"
	"github.com/jaegertracing/jaeger-analytics-go/internal/httpapi"
	"github.com/jaegertracing/jaeger-analytics-go/pkg/config"
	"github.com/jaegertracing/jaeger-analytics-go/pkg/version"
)

func main() {
	v, command := config.Viperize(app.AddFlags)
	command.Use = "jaeger-analytics"
	command.Short = "Critical-path analysis over a batch of Jaeger traces"
	command.RunE = func(_ *cobra.Command, _ []string) error {
		logger, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		defer logger.Sync()

		opts := (&app.Options{}).InitFromViper(v, logger)
		return run(opts, logger)
	}
	command.AddCommand(version.Command())

	if err := command.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(opts *app.Options, logger *zap.Logger) error {
	ctx := context.Background()

	var differ exectools.Differ
	if opts.DifffoldedPath != "" {
		differ = exectools.NewCommandDiffer(opts.DifffoldedPath)
	}
	var rasterizer exectools.Rasterizer
	if opts.FlamegraphPath != "" {
		rasterizer = exectools.NewCommandRasterizer(opts.FlamegraphPath)
	}

	runner := app.NewRunner(opts, differ, rasterizer, logger)
	result, err := runner.Run(ctx)
	if err != nil {
		return fmt.Errorf("run analysis: %w", err)
	}

	logger.Info("analysis complete",
		zap.Int("traces_processed", result.TracesProcessed),
		zap.Int("traces_rejected", result.TracesRejected),
	)

	if opts.HTTPHostPort == "" {
		return nil
	}

	handler := httpapi.NewAPIHandler(result.Aggregator, result.Samples, logger)
	router := httpapi.NewRouter()
	handler.RegisterRoutes(router)

	versionMux := http.NewServeMux()
	version.RegisterHandler(versionMux, logger)
	router.PathPrefix("/version").Handler(versionMux)

	logger.Info("serving read-only analysis API", zap.String("addr", opts.HTTPHostPort))
	return http.ListenAndServe(opts.HTTPHostPort, router)
}
