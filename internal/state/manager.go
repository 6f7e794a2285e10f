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

package state

import (
	"slices"
	"sync"
)

// Listener is notified about the new and the previous value of a key. The
// previous value is nil if the key was not set before.
type Listener func(newValue, oldValue any)

type subscription struct {
	id       uint64
	listener Listener
}

// Manager holds shared application state and notifies subscribers of changes.
type Manager struct {
	mut       sync.Mutex
	values    map[string]any
	listeners map[string][]subscription
	nextID    uint64
}

func NewManager() *Manager {
	return &Manager{
		values:    make(map[string]any),
		listeners: make(map[string][]subscription),
	}
}

// Set stores the value and invokes the listeners of the key in the order they
// subscribed. Listeners run on the calling goroutine after the lock is released.
func (m *Manager) Set(key string, value any) {
	m.mut.Lock()
	oldValue := m.values[key]
	m.values[key] = value
	subs := slices.Clone(m.listeners[key])
	m.mut.Unlock()

	for _, sub := range subs {
		sub.listener(value, oldValue)
	}
}

func (m *Manager) Get(key string) (any, bool) {
	m.mut.Lock()
	defer m.mut.Unlock()

	value, ok := m.values[key]

	return value, ok
}

// Subscribe registers the listener for changes of the key. The returned
// function removes the registration and may be called more than once.
func (m *Manager) Subscribe(key string, listener Listener) func() {
	m.mut.Lock()
	defer m.mut.Unlock()

	m.nextID++
	id := m.nextID
	m.listeners[key] = append(m.listeners[key], subscription{id: id, listener: listener})

	return func() {
		m.mut.Lock()
		defer m.mut.Unlock()

		m.listeners[key] = slices.DeleteFunc(m.listeners[key], func(s subscription) bool { return s.id == id })
		if len(m.listeners[key]) == 0 {
			delete(m.listeners, key)
		}
	}
}

// Clear drops all values. Subscriptions are kept and not notified.
func (m *Manager) Clear() {
	m.mut.Lock()
	defer m.mut.Unlock()

	clear(m.values)
}
