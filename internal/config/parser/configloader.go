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

package parser

import (
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"

	"github.com/dadrus/fleetcache/internal/fleetcache"
	"github.com/dadrus/fleetcache/internal/x/errorchain"
)

type ConfigLoader interface {
	Load(config any) error
}

// New creates a loader which takes the values present in the given struct as defaults,
// overrides these with the contents of the optional yaml file and finally with the
// environment variables having the configured prefix.
func New(opts ...Option) ConfigLoader {
	loader := &configLoader{}

	for _, opt := range opts {
		opt(&loader.o)
	}

	return loader
}

type configLoader struct {
	o opts
}

func (c *configLoader) Load(config any) error {
	parser, err := koanfFromStruct(config)
	if err != nil {
		return err
	}

	sources := []func() (*koanf.Koanf, error){
		func() (*koanf.Koanf, error) { return koanfFromEnv(c.o.envPrefix) },
	}

	if len(c.o.configFile) != 0 {
		sources = append([]func() (*koanf.Koanf, error){
			func() (*koanf.Koanf, error) { return koanfFromYaml(c.o.configFile) },
		}, sources...)
	}

	for _, source := range sources {
		konf, err := source()
		if err != nil {
			return err
		}

		if err = parser.Load(confmap.Provider(konf.Raw(), ""), nil); err != nil {
			return errorchain.NewWithMessage(fleetcache.ErrConfiguration,
				"failed to merge configuration sources").CausedBy(err)
		}
	}

	hooks := append([]mapstructure.DecodeHookFunc{
		mapstructure.StringToTimeDurationHookFunc(),
	}, c.o.decodeHooks...)

	return parser.UnmarshalWithConf("", config, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook:       mapstructure.ComposeDecodeHookFunc(hooks...),
			Result:           config,
			TagName:          "koanf",
			WeaklyTypedInput: true,
		},
	})
}
