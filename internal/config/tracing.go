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

package config

const (
	SpanProcessorBatch  = "batch"
	SpanProcessorSimple = "simple"
)

// TracingConfig controls the OpenTelemetry tracing of outbound API requests.
// Exporters and propagators are configured by the standard OTEL_* environment variables.
type TracingConfig struct {
	Enabled       bool   `koanf:"enabled"`
	SpanProcessor string `koanf:"span_processor" validate:"oneof=batch simple"`
}

func TracingConfiguration(configuration *Configuration) TracingConfig { return configuration.Tracing }
