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
	"slices"
	"sync"

	"github.com/dadrus/fleetcache/internal/config"
)

type RegistryOption func(r *Registry)

func WithStoreOptions(opts ...StoreOption) RegistryOption {
	return func(r *Registry) { r.storeOpts = append(r.storeOpts, opts...) }
}

func WithLoaderOptions(opts ...LoaderOption) RegistryOption {
	return func(r *Registry) { r.loaderOpts = append(r.loaderOpts, opts...) }
}

// Registry owns one loader per logical cache domain. Domains are created on
// first use with the lifetime configured for them.
type Registry struct {
	mut     sync.Mutex
	conf    config.CacheConfig
	domains map[string]*Loader[any]

	storeOpts  []StoreOption
	loaderOpts []LoaderOption
}

func NewRegistry(conf config.CacheConfig, opts ...RegistryOption) *Registry {
	reg := &Registry{
		conf:    conf,
		domains: make(map[string]*Loader[any]),
	}

	for _, opt := range opts {
		opt(reg)
	}

	if conf.Deduplicate {
		reg.loaderOpts = append(reg.loaderOpts, WithDeduplication())
	}

	return reg
}

func (r *Registry) Domain(name string) *Loader[any] {
	r.mut.Lock()
	defer r.mut.Unlock()

	if loader, ok := r.domains[name]; ok {
		return loader
	}

	loader := NewLoader(
		NewStore[any](r.conf.LifetimeOf(name), r.storeOpts...),
		append(slices.Clone(r.loaderOpts), WithName(name))...,
	)
	r.domains[name] = loader

	return loader
}

func (r *Registry) Names() []string {
	r.mut.Lock()
	defer r.mut.Unlock()

	names := make([]string, 0, len(r.domains))
	for name := range r.domains {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

func (r *Registry) InvalidateAll() {
	r.mut.Lock()
	defer r.mut.Unlock()

	for _, loader := range r.domains {
		loader.InvalidateAll()
	}
}
