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
	"strings"

	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"

	"github.com/dadrus/fleetcache/internal/fleetcache"
	"github.com/dadrus/fleetcache/internal/x/errorchain"
)

const escapedUnderscore = `\:\`

// toRealType lets the yaml parser guess the type of the given value.
func toRealType(val string) any {
	var parsed map[string]any

	if err := yaml.Unmarshal([]byte("val: "+val), &parsed); err != nil {
		return val
	}

	return parsed["val"]
}

// envKeyToPath converts e.g. PREFIX_CACHE_DEFAULT__LIFETIME to cache.default_lifetime.
func envKeyToPath(prefix, key string) string {
	tmp := strings.ToLower(strings.TrimPrefix(key, prefix))
	tmp = strings.ReplaceAll(tmp, "__", escapedUnderscore)
	tmp = strings.ReplaceAll(tmp, "_", ".")

	return strings.ReplaceAll(tmp, escapedUnderscore, "_")
}

func koanfFromEnv(prefix string) (*koanf.Koanf, error) {
	parser := koanf.New(".")

	if len(prefix) == 0 {
		// without a prefix the whole environment would end up in the configuration
		return parser, nil
	}

	provider := env.Provider(".", env.Opt{
		Prefix: prefix,
		TransformFunc: func(key, val string) (string, any) {
			return envKeyToPath(prefix, key), toRealType(val)
		},
	})

	if err := parser.Load(provider, nil); err != nil {
		return nil, errorchain.NewWithMessage(fleetcache.ErrConfiguration,
			"failed to parse environment variables to config").CausedBy(err)
	}

	return parser, nil
}
