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

package module

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/dadrus/fleetcache/internal/cache"
	"github.com/dadrus/fleetcache/internal/config"
)

//nolint:gochecknoglobals
var Module = fx.Provide(
	fx.Annotate(
		newRegistry,
		fx.OnStop(func(_ context.Context, reg *cache.Registry) error {
			reg.InvalidateAll()

			return nil
		}),
	),
)

func newRegistry(conf config.CacheConfig, metrics cache.Metrics, logger zerolog.Logger) *cache.Registry {
	logger.Info().
		Dur("_default_lifetime", conf.DefaultLifetime).
		Bool("_deduplicate", conf.Deduplicate).
		Int("_configured_domains", len(conf.Domains)).
		Msg("Cache configured")

	return cache.NewRegistry(conf, cache.WithLoaderOptions(cache.WithMetrics(metrics)))
}
