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

// Metrics receives the outcome of every load going through a Loader.
type Metrics interface {
	Hit(domain string)
	Miss(domain string)
	LoadFailed(domain string)
}

type noopMetrics struct{}

func (noopMetrics) Hit(string)        {}
func (noopMetrics) Miss(string)       {}
func (noopMetrics) LoadFailed(string) {}
