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
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dadrus/fleetcache/internal/cache"
)

const (
	outcomeHit        = "hit"
	outcomeMiss       = "miss"
	outcomeLoadFailed = "load_failed"
)

type cacheMetrics struct {
	lookups *prometheus.CounterVec
}

// NewCacheMetrics registers a counter of cache lookups partitioned by domain
// and outcome.
func NewCacheMetrics(reg prometheus.Registerer) (cache.Metrics, error) {
	lookups := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fleetcache",
		Subsystem: "cache",
		Name:      "lookups_total",
		Help:      "Number of cache lookups by domain and outcome",
	}, []string{"domain", "outcome"})

	if err := reg.Register(lookups); err != nil {
		return nil, err
	}

	return &cacheMetrics{lookups: lookups}, nil
}

func (m *cacheMetrics) Hit(domain string) { m.lookups.WithLabelValues(domain, outcomeHit).Inc() }

func (m *cacheMetrics) Miss(domain string) { m.lookups.WithLabelValues(domain, outcomeMiss).Inc() }

func (m *cacheMetrics) LoadFailed(domain string) {
	m.lookups.WithLabelValues(domain, outcomeLoadFailed).Inc()
}
