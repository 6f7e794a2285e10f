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

package fleetapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/dadrus/fleetcache/internal/cache"
	"github.com/dadrus/fleetcache/internal/config"
)

func TestModuleServesAPIThroughCache(t *testing.T) {
	t.Parallel()

	// GIVEN
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, _ *http.Request) {
		calls.Add(1)

		rw.Header().Set("Content-Type", "application/json")
		_, _ = rw.Write([]byte(`{"total_veiculos": 120}`))
	}))
	defer srv.Close()

	reg := cache.NewRegistry(config.CacheConfig{DefaultLifetime: time.Minute})

	var api *API

	app := fxtest.New(t,
		fx.Supply(config.APIConfig{BaseURL: srv.URL, Timeout: time.Second}, reg),
		Module,
		fx.Populate(&api),
	)

	app.RequireStart()
	defer app.RequireStop()

	// WHEN
	res1, err1 := api.KPIs(context.Background())
	res2, err2 := api.KPIs(context.Background())

	// THEN
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, map[string]any{"total_veiculos": 120.0}, res1)
	assert.Equal(t, res1, res2)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, []string{CacheDomain}, reg.Names())
}
