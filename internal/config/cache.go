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

import "time"

type CacheDomain struct {
	Lifetime time.Duration `koanf:"lifetime" mapstructure:"lifetime" validate:"gte=0"`
}

// CacheConfig configures the named cache domains. A domain without an own
// entry, or with a zero lifetime, uses DefaultLifetime.
type CacheConfig struct {
	DefaultLifetime time.Duration          `koanf:"default_lifetime" mapstructure:"default_lifetime" validate:"gt=0"`
	Deduplicate     bool                   `koanf:"deduplicate"      mapstructure:"deduplicate"`
	Domains         map[string]CacheDomain `koanf:"domains"          mapstructure:"domains"          validate:"dive"`
}

func (c CacheConfig) LifetimeOf(domain string) time.Duration {
	if dc, ok := c.Domains[domain]; ok && dc.Lifetime > 0 {
		return dc.Lifetime
	}

	return c.DefaultLifetime
}

func CacheConfiguration(configuration *Configuration) CacheConfig { return configuration.Cache }
