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
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultLifetime is used whenever a store is created without a positive lifetime.
const DefaultLifetime = 5 * time.Minute

type entry[V any] struct {
	value      V
	insertedAt time.Time
}

// Store holds values for a limited lifetime. An entry older than the lifetime
// is treated as absent and is removed by the next Get or Has touching its key.
// There is no background sweep and no capacity bound.
type Store[V any] struct {
	mut      sync.Mutex
	entries  map[string]entry[V]
	lifetime time.Duration
	clock    clockwork.Clock

	// bumped by every Delete and Clear
	generation uint64
}

type StoreOption func(o *storeOptions)

type storeOptions struct {
	clock clockwork.Clock
}

// WithClock sets the time source used to stamp and age entries.
func WithClock(clock clockwork.Clock) StoreOption {
	return func(o *storeOptions) {
		if clock != nil {
			o.clock = clock
		}
	}
}

func NewStore[V any](lifetime time.Duration, opts ...StoreOption) *Store[V] {
	options := storeOptions{clock: clockwork.NewRealClock()}

	for _, opt := range opts {
		opt(&options)
	}

	if lifetime <= 0 {
		lifetime = DefaultLifetime
	}

	return &Store[V]{
		entries:  make(map[string]entry[V]),
		lifetime: lifetime,
		clock:    options.clock,
	}
}

func (s *Store[V]) Lifetime() time.Duration { return s.lifetime }

func (s *Store[V]) Set(key string, value V) {
	s.mut.Lock()
	defer s.mut.Unlock()

	s.entries[key] = entry[V]{value: value, insertedAt: s.clock.Now()}
}

// Generation returns the current invalidation generation. Pass it to
// SetIfGeneration to store a value only if nothing was invalidated meanwhile.
func (s *Store[V]) Generation() uint64 {
	s.mut.Lock()
	defer s.mut.Unlock()

	return s.generation
}

// SetIfGeneration stores value under key unless Delete or Clear has been
// called since generation was obtained. It reports whether the value was stored.
func (s *Store[V]) SetIfGeneration(key string, value V, generation uint64) bool {
	s.mut.Lock()
	defer s.mut.Unlock()

	if s.generation != generation {
		return false
	}

	s.entries[key] = entry[V]{value: value, insertedAt: s.clock.Now()}

	return true
}

func (s *Store[V]) Get(key string) (V, bool) {
	s.mut.Lock()
	defer s.mut.Unlock()

	return s.fresh(key)
}

func (s *Store[V]) Has(key string) bool {
	s.mut.Lock()
	defer s.mut.Unlock()

	_, ok := s.fresh(key)

	return ok
}

func (s *Store[V]) Delete(key string) {
	s.mut.Lock()
	defer s.mut.Unlock()

	delete(s.entries, key)
	s.generation++
}

func (s *Store[V]) Clear() {
	s.mut.Lock()
	defer s.mut.Unlock()

	clear(s.entries)
	s.generation++
}

// Len returns the number of physically held entries, expired but not yet
// evicted ones included.
func (s *Store[V]) Len() int {
	s.mut.Lock()
	defer s.mut.Unlock()

	return len(s.entries)
}

// fresh must be called with s.mut held.
func (s *Store[V]) fresh(key string) (V, bool) {
	var zero V

	ent, ok := s.entries[key]
	if !ok {
		return zero, false
	}

	if s.clock.Since(ent.insertedAt) > s.lifetime {
		delete(s.entries, key)

		return zero, false
	}

	return ent.value, true
}
