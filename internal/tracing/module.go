// Copyright 2025 Dimitrij Drus <dadrus@gmx.de>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package tracing

import (
	"context"

	"github.com/go-logr/zerologr"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/propagators/autoprop"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.uber.org/fx"

	"github.com/dadrus/fleetcache/internal/config"
)

var Module = fx.Options( //nolint:gochecknoglobals
	fx.Invoke(initializeOTEL),
)

func initializeOTEL(lifecycle fx.Lifecycle, conf config.TracingConfig, logger zerolog.Logger) error {
	if !conf.Enabled {
		logger.Info().Msg("OpenTelemetry tracing disabled")

		return nil
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewSchemaless(semconv.ServiceName("fleetcache")))
	if err != nil {
		return err
	}

	exporter, err := otlptracehttp.New(context.Background())
	if err != nil {
		return err
	}

	var processor sdktrace.TracerProviderOption
	if conf.SpanProcessor == config.SpanProcessorSimple {
		processor = sdktrace.WithSyncer(exporter)
	} else {
		processor = sdktrace.WithBatcher(exporter)
	}

	provider := sdktrace.NewTracerProvider(sdktrace.WithResource(res), processor)

	otel.SetLogger(zerologr.New(&logger))
	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(autoprop.NewTextMapPropagator())
	otel.SetErrorHandler(otel.ErrorHandlerFunc(func(err error) { logger.Error().Err(err).Msg("OTEL Error") }))

	lifecycle.Append(fx.Hook{OnStop: func(ctx context.Context) error {
		logger.Info().Msg("Tearing down OpenTelemetry provider")

		return provider.Shutdown(ctx)
	}})

	logger.Info().Str("_span_processor", conf.SpanProcessor).Msg("OpenTelemetry tracing initialized")

	return nil
}
