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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/fleetcache/internal/fleetcache"
)

func TestNewConfigurationDefaults(t *testing.T) {
	t.Parallel()

	// WHEN
	conf, err := NewConfiguration("FLEETCACHE_DEFAULTS_TEST_", "")

	// THEN
	require.NoError(t, err)
	assert.Equal(t, LogTextFormat, conf.Log.Format)
	assert.Equal(t, zerolog.ErrorLevel, conf.Log.Level)
	assert.Equal(t, "http://localhost:8000", conf.API.BaseURL)
	assert.Equal(t, 10*time.Second, conf.API.Timeout)
	assert.Nil(t, conf.API.Retry)
	assert.Equal(t, 5*time.Minute, conf.Cache.DefaultLifetime)
	assert.False(t, conf.Cache.Deduplicate)
	assert.Empty(t, conf.Cache.Domains)
	assert.False(t, conf.Tracing.Enabled)
	assert.Equal(t, SpanProcessorBatch, conf.Tracing.SpanProcessor)
}

func TestNewConfigurationFromFileAndEnv(t *testing.T) {
	// GIVEN
	fileName := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(fileName, []byte(`
log:
  level: debug
  format: gelf
tracing:
  enabled: true
  span_processor: simple
api:
  base_url: https://frota.example.com
  headers:
    X-Client: dashboard
  retry:
    give_up_after: 2s
    max_delay: 500ms
cache:
  deduplicate: true
  domains:
    kpis:
      lifetime: 30s
    organizacoes:
      lifetime: 1h
`), 0o600))

	t.Setenv("FLEETCACHE_FILE_TEST_CACHE_DEFAULT__LIFETIME", "10m")
	t.Setenv("FLEETCACHE_FILE_TEST_API_TIMEOUT", "3s")

	// WHEN
	conf, err := NewConfiguration("FLEETCACHE_FILE_TEST_", ConfigurationPath(fileName))

	// THEN
	require.NoError(t, err)
	assert.Equal(t, LogGelfFormat, conf.Log.Format)
	assert.Equal(t, zerolog.DebugLevel, conf.Log.Level)
	assert.True(t, conf.Tracing.Enabled)
	assert.Equal(t, SpanProcessorSimple, conf.Tracing.SpanProcessor)
	assert.Equal(t, "https://frota.example.com", conf.API.BaseURL)
	assert.Equal(t, 3*time.Second, conf.API.Timeout)
	assert.Equal(t, "dashboard", conf.API.Headers["X-Client"])
	require.NotNil(t, conf.API.Retry)
	assert.Equal(t, 2*time.Second, conf.API.Retry.GiveUpAfter)
	assert.Equal(t, 500*time.Millisecond, conf.API.Retry.MaxDelay)
	assert.True(t, conf.Cache.Deduplicate)
	assert.Equal(t, 10*time.Minute, conf.Cache.DefaultLifetime)
	assert.Equal(t, 30*time.Second, conf.Cache.LifetimeOf("kpis"))
	assert.Equal(t, time.Hour, conf.Cache.LifetimeOf("organizacoes"))
	assert.Equal(t, 10*time.Minute, conf.Cache.LifetimeOf("unknown"))
}

func TestNewConfigurationValidationFailures(t *testing.T) {
	for _, tc := range []struct {
		uc     string
		env    map[string]string
		errMsg string
	}{
		{
			uc:     "invalid base url",
			env:    map[string]string{"FLEETCACHE_INVALID_TEST_API_BASE__URL": "not a url"},
			errMsg: "'base_url'",
		},
		{
			uc:     "negative default lifetime",
			env:    map[string]string{"FLEETCACHE_INVALID_TEST_CACHE_DEFAULT__LIFETIME": "-1m"},
			errMsg: "'default_lifetime'",
		},
		{
			uc:     "unsupported span processor",
			env:    map[string]string{"FLEETCACHE_INVALID_TEST_TRACING_SPAN__PROCESSOR": "async"},
			errMsg: "'span_processor'",
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// GIVEN
			for key, val := range tc.env {
				t.Setenv(key, val)
			}

			// WHEN
			_, err := NewConfiguration("FLEETCACHE_INVALID_TEST_", "")

			// THEN
			require.Error(t, err)
			require.ErrorIs(t, err, fleetcache.ErrConfiguration)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

func TestLogFormatString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "text", LogTextFormat.String())
	assert.Equal(t, "gelf", LogGelfFormat.String())
}
