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

// Package fleetcache wires the read-through cache, the fleet API client and the
// shared state of a fleet dashboard into a ready to use Toolkit.
package fleetcache

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/dadrus/fleetcache/internal"
	"github.com/dadrus/fleetcache/internal/cache"
	"github.com/dadrus/fleetcache/internal/config"
	"github.com/dadrus/fleetcache/internal/fleetapi"
	"github.com/dadrus/fleetcache/internal/logging"
	"github.com/dadrus/fleetcache/internal/state"
)

type Option func(o *options)

type options struct {
	configFile string
	envPrefix  string
}

// WithConfigFile sets the YAML file to load the configuration from.
func WithConfigFile(path string) Option {
	return func(o *options) { o.configFile = path }
}

// WithEnvPrefix overrides the prefix of environment variables taken into account.
func WithEnvPrefix(prefix string) Option {
	return func(o *options) { o.envPrefix = prefix }
}

type Toolkit struct {
	API     *fleetapi.API
	Client  *fleetapi.CachedClient
	Caches  *cache.Registry
	State   *state.Manager
	Metrics prometheus.Gatherer

	app *fx.App
}

func New(ctx context.Context, opts ...Option) (*Toolkit, error) {
	options := options{envPrefix: string(config.DefaultEnvVarPrefix)}

	for _, opt := range opts {
		opt(&options)
	}

	cfg, err := config.NewConfiguration(
		config.EnvVarPrefix(options.envPrefix),
		config.ConfigurationPath(options.configFile),
	)
	if err != nil {
		return nil, err
	}

	logger := logging.NewLogger(cfg.Log)
	logger.Info().
		Str("_config_file", options.configFile).
		Str("_base_url", cfg.API.BaseURL).
		Msg("Starting fleetcache")

	tk := &Toolkit{}
	tk.app = fx.New(
		fx.Supply(cfg),
		fx.WithLogger(func(logger zerolog.Logger) fxevent.Logger { return logging.NewEventLogger(logger) }),
		internal.Module,
		fx.Populate(&tk.API, &tk.Client, &tk.Caches, &tk.State, &tk.Metrics),
	)

	if err = tk.app.Start(ctx); err != nil {
		return nil, err
	}

	return tk, nil
}

// Close clears all caches and the shared state.
func (t *Toolkit) Close(ctx context.Context) error { return t.app.Stop(ctx) }
