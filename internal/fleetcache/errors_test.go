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

package fleetcache

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAPIError(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc       string
		code     int
		detail   string
		expected string
	}{
		{uc: "with detail", code: http.StatusNotFound, detail: "Veículo não encontrado", expected: "Veículo não encontrado"},
		{uc: "without detail", code: http.StatusBadGateway, expected: "HTTP 502: Bad Gateway"},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// WHEN
			err := NewAPIError(tc.code, tc.detail)

			// THEN
			require.Error(t, err)
			assert.Equal(t, tc.expected, err.Error())
			assert.Equal(t, tc.code, err.StatusCode)
		})
	}
}

func TestAPIErrorIs(t *testing.T) {
	t.Parallel()

	// GIVEN
	err := fmt.Errorf("wrapped: %w", NewAPIError(http.StatusConflict, "conflict"))

	// WHEN
	var apiErr *APIError

	ok := errors.As(err, &apiErr)

	// THEN
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	require.ErrorIs(t, err, &APIError{})
	assert.NotErrorIs(t, err, ErrCommunication)
}
