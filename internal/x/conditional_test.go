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

package x

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIfThenElse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "foo", IfThenElse(true, "foo", "bar"))
	assert.Equal(t, "bar", IfThenElse(false, "foo", "bar"))
}

func TestOrDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 10, OrDefault(0, 10))
	assert.Equal(t, 5, OrDefault(5, 10))
	assert.Equal(t, "foo", OrDefault("", "foo"))
}
