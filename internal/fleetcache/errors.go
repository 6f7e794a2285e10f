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
	"reflect"
)

var (
	ErrArgument             = errors.New("argument error")
	ErrCommunication        = errors.New("communication error")
	ErrCommunicationTimeout = errors.New("communication timeout error")
	ErrConfiguration        = errors.New("configuration error")
	ErrInternal             = errors.New("internal error")
)

// APIError is returned for every response of the fleet API with a non 2xx status code.
type APIError struct {
	StatusCode int
	Detail     string
}

func NewAPIError(statusCode int, detail string) *APIError {
	if len(detail) == 0 {
		detail = fmt.Sprintf("HTTP %d: %s", statusCode, http.StatusText(statusCode))
	}

	return &APIError{StatusCode: statusCode, Detail: detail}
}

func (e *APIError) Error() string { return e.Detail }

func (e *APIError) Is(target error) bool { return reflect.TypeOf(e) == reflect.TypeOf(target) }
