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

import (
	"github.com/dadrus/fleetcache/internal/config/parser"
	"github.com/dadrus/fleetcache/internal/fleetcache"
	"github.com/dadrus/fleetcache/internal/validation"
	"github.com/dadrus/fleetcache/internal/x/errorchain"
)

type (
	// EnvVarPrefix is the prefix of environment variables overriding configuration values.
	EnvVarPrefix string
	// ConfigurationPath points to an optional yaml file. Empty means defaults and env only.
	ConfigurationPath string
)

const DefaultEnvVarPrefix EnvVarPrefix = "FLEETCACHE_"

type Configuration struct {
	Log     LoggingConfig `koanf:"log"`
	Tracing TracingConfig `koanf:"tracing"`
	API     APIConfig     `koanf:"api"`
	Cache   CacheConfig   `koanf:"cache"`
}

func NewConfiguration(envPrefix EnvVarPrefix, configFile ConfigurationPath) (*Configuration, error) {
	result := defaultConfig()

	err := parser.New(
		parser.WithDecodeHookFunc(logLevelDecodeHookFunc),
		parser.WithDecodeHookFunc(logFormatDecodeHookFunc),
		parser.WithConfigFile(string(configFile)),
		parser.WithEnvPrefix(string(envPrefix)),
	).Load(&result)
	if err != nil {
		return nil, errorchain.NewWithMessage(fleetcache.ErrConfiguration,
			"failed loading configuration").CausedBy(err)
	}

	if err = validation.ValidateStruct(&result); err != nil {
		return nil, errorchain.NewWithMessage(fleetcache.ErrConfiguration,
			"failed validating configuration").CausedBy(err)
	}

	return &result, nil
}
