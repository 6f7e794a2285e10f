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
	"io"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/dadrus/fleetcache/internal/cache"
)

// CachedClient serves GET requests through a cache domain. Successful
// mutations clear that domain, so that subsequent reads see the new state.
type CachedClient struct {
	next        Requester
	loader      *cache.Loader[any]
	forceReload bool
}

func NewCachedClient(next Requester, loader *cache.Loader[any]) *CachedClient {
	return &CachedClient{next: next, loader: loader}
}

// ForceReload returns a view of the client whose reads bypass fresh entries
// and refresh them with the response of the API.
func (c *CachedClient) ForceReload() *CachedClient {
	return &CachedClient{next: c.next, loader: c.loader, forceReload: true}
}

func (c *CachedClient) Get(ctx context.Context, endpoint string, params url.Values) (any, error) {
	return c.loader.Load(ctx, cacheKey(endpoint, params),
		func(ctx context.Context) (any, error) { return c.next.Get(ctx, endpoint, params) },
		c.forceReload)
}

func (c *CachedClient) Post(ctx context.Context, endpoint string, body any) (any, error) {
	return c.invalidateOnSuccess(ctx, endpoint)(c.next.Post(ctx, endpoint, body))
}

func (c *CachedClient) Put(ctx context.Context, endpoint string, body any) (any, error) {
	return c.invalidateOnSuccess(ctx, endpoint)(c.next.Put(ctx, endpoint, body))
}

func (c *CachedClient) Delete(ctx context.Context, endpoint string) (any, error) {
	return c.invalidateOnSuccess(ctx, endpoint)(c.next.Delete(ctx, endpoint))
}

func (c *CachedClient) Upload(
	ctx context.Context,
	endpoint, fileName string,
	file io.Reader,
	fields map[string]string,
) (any, error) {
	return c.invalidateOnSuccess(ctx, endpoint)(c.next.Upload(ctx, endpoint, fileName, file, fields))
}

func (c *CachedClient) invalidateOnSuccess(ctx context.Context, endpoint string) func(any, error) (any, error) {
	return func(res any, err error) (any, error) {
		if err != nil {
			return nil, err
		}

		zerolog.Ctx(ctx).Debug().
			Str("_domain", c.loader.Name()).
			Str("_endpoint", endpoint).
			Msg("Invalidating cache domain after modification")

		c.loader.InvalidateAll()

		return res, nil
	}
}

func cacheKey(endpoint string, params url.Values) string {
	if len(params) == 0 {
		return endpoint
	}

	return endpoint + "?" + params.Encode()
}
