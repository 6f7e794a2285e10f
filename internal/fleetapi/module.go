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
	"go.uber.org/fx"

	"github.com/dadrus/fleetcache/internal/cache"
)

// CacheDomain is the name of the cache domain holding API responses.
const CacheDomain = "fleetapi"

var Module = fx.Provide( //nolint:gochecknoglobals
	NewClient,
	newCachedClient,
	func(c *CachedClient) Requester { return c },
	NewAPI,
)

func newCachedClient(client *Client, reg *cache.Registry) *CachedClient {
	return NewCachedClient(client, reg.Domain(CacheDomain))
}
