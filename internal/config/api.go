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

type Retry struct {
	GiveUpAfter time.Duration `koanf:"give_up_after" mapstructure:"give_up_after"`
	MaxDelay    time.Duration `koanf:"max_delay"     mapstructure:"max_delay"`
}

// APIConfig describes how the fleet REST API is reached.
type APIConfig struct {
	BaseURL string            `koanf:"base_url" mapstructure:"base_url" validate:"required,url"`
	Timeout time.Duration     `koanf:"timeout"  mapstructure:"timeout"  validate:"gt=0"`
	Headers map[string]string `koanf:"headers"  mapstructure:"headers"`
	Retry   *Retry            `koanf:"retry"    mapstructure:"retry"`
}

func APIConfiguration(configuration *Configuration) APIConfig { return configuration.API }
