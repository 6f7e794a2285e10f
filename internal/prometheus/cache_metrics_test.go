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

package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	io_prometheus_client "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheMetrics(t *testing.T) {
	t.Parallel()

	// GIVEN
	reg := prometheus.NewRegistry()

	metrics, err := NewCacheMetrics(reg)
	require.NoError(t, err)

	// WHEN
	metrics.Hit("kpis")
	metrics.Hit("kpis")
	metrics.Miss("kpis")
	metrics.LoadFailed("geo")

	// THEN
	result, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, result, 1)

	metric := result[0]
	assert.Equal(t, "fleetcache_cache_lookups_total", metric.GetName())
	assert.Equal(t, "Number of cache lookups by domain and outcome", metric.GetHelp())
	assert.Equal(t, io_prometheus_client.MetricType_COUNTER, metric.GetType())
	assert.Len(t, metric.GetMetric(), 3)

	cm, ok := metrics.(*cacheMetrics)
	require.True(t, ok)
	assert.InDelta(t, 2.0, testutil.ToFloat64(cm.lookups.WithLabelValues("kpis", outcomeHit)), 0.001)
	assert.InDelta(t, 1.0, testutil.ToFloat64(cm.lookups.WithLabelValues("kpis", outcomeMiss)), 0.001)
	assert.InDelta(t, 1.0, testutil.ToFloat64(cm.lookups.WithLabelValues("geo", outcomeLoadFailed)), 0.001)
}

func TestCacheMetricsDuplicateRegistration(t *testing.T) {
	t.Parallel()

	// GIVEN
	reg := prometheus.NewRegistry()

	_, err := NewCacheMetrics(reg)
	require.NoError(t, err)

	// WHEN
	_, err = NewCacheMetrics(reg)

	// THEN
	require.Error(t, err)
}
