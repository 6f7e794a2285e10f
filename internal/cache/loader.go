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

package cache

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// Producer fetches the authoritative value for a key on a cache miss.
type Producer[V any] func(ctx context.Context) (V, error)

type LoaderOption func(o *loaderOptions)

type loaderOptions struct {
	name        string
	deduplicate bool
	metrics     Metrics
}

// WithName sets the domain name reported in logs and metrics.
func WithName(name string) LoaderOption {
	return func(o *loaderOptions) { o.name = name }
}

// WithDeduplication collapses concurrent loads of the same key into a single
// producer call. All waiters receive the result of the call that was started
// first, including its error.
func WithDeduplication() LoaderOption {
	return func(o *loaderOptions) { o.deduplicate = true }
}

func WithMetrics(metrics Metrics) LoaderOption {
	return func(o *loaderOptions) {
		if metrics != nil {
			o.metrics = metrics
		}
	}
}

// Loader implements read-through access to a Store.
type Loader[V any] struct {
	store *Store[V]
	opts  loaderOptions
	group *singleflight.Group
}

func NewLoader[V any](store *Store[V], opts ...LoaderOption) *Loader[V] {
	options := loaderOptions{name: "default", metrics: noopMetrics{}}

	for _, opt := range opts {
		opt(&options)
	}

	loader := &Loader[V]{store: store, opts: options}
	if options.deduplicate {
		loader.group = &singleflight.Group{}
	}

	return loader
}

func (l *Loader[V]) Name() string { return l.opts.name }

func (l *Loader[V]) Store() *Store[V] { return l.store }

// Load returns the fresh value cached under key. If there is none, or if
// forceReload is set, producer is invoked and its result is cached.
// A producer error is returned as is and leaves the store untouched.
func (l *Loader[V]) Load(ctx context.Context, key string, producer Producer[V], forceReload bool) (V, error) {
	logger := zerolog.Ctx(ctx)

	if !forceReload {
		if value, ok := l.store.Get(key); ok {
			l.opts.metrics.Hit(l.opts.name)
			logger.Debug().Str("_domain", l.opts.name).Str("_key", key).Msg("Cache hit")

			return value, nil
		}
	}

	l.opts.metrics.Miss(l.opts.name)
	logger.Debug().Str("_domain", l.opts.name).Str("_key", key).Bool("_forced", forceReload).
		Msg("Loading value")

	value, err := l.produce(ctx, key, producer)
	if err != nil {
		l.opts.metrics.LoadFailed(l.opts.name)
		logger.Warn().Err(err).Str("_domain", l.opts.name).Str("_key", key).Msg("Failed loading value")

		var zero V

		return zero, err
	}

	return value, nil
}

func (l *Loader[V]) Invalidate(key string) { l.store.Delete(key) }

func (l *Loader[V]) InvalidateAll() { l.store.Clear() }

func (l *Loader[V]) produce(ctx context.Context, key string, producer Producer[V]) (V, error) {
	if l.group == nil {
		return l.produceAndStore(ctx, key, producer)
	}

	// The shared call must outlive the caller which happened to start it.
	resCh := l.group.DoChan(key, func() (any, error) {
		return l.produceAndStore(context.WithoutCancel(ctx), key, producer)
	})

	select {
	case res := <-resCh:
		value, _ := res.Val.(V)

		return value, res.Err
	case <-ctx.Done():
		var zero V

		return zero, ctx.Err()
	}
}

// produceAndStore drops the produced value instead of storing it if the key or
// the whole store was invalidated while the producer was running. The caller
// still receives the value.
func (l *Loader[V]) produceAndStore(ctx context.Context, key string, producer Producer[V]) (V, error) {
	generation := l.store.Generation()

	value, err := producer(ctx)
	if err != nil {
		return value, err
	}

	if !l.store.SetIfGeneration(key, value, generation) {
		zerolog.Ctx(ctx).Debug().Str("_domain", l.opts.name).Str("_key", key).
			Msg("Value invalidated while loading, not caching it")
	}

	return value, nil
}
