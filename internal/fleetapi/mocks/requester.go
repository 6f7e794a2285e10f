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

package mocks

import (
	"context"
	"io"
	"net/url"

	"github.com/stretchr/testify/mock"
)

type RequesterMock struct {
	mock.Mock
}

func (m *RequesterMock) Get(ctx context.Context, endpoint string, params url.Values) (any, error) {
	args := m.Called(ctx, endpoint, params)

	return args.Get(0), args.Error(1)
}

func (m *RequesterMock) Post(ctx context.Context, endpoint string, body any) (any, error) {
	args := m.Called(ctx, endpoint, body)

	return args.Get(0), args.Error(1)
}

func (m *RequesterMock) Put(ctx context.Context, endpoint string, body any) (any, error) {
	args := m.Called(ctx, endpoint, body)

	return args.Get(0), args.Error(1)
}

func (m *RequesterMock) Delete(ctx context.Context, endpoint string) (any, error) {
	args := m.Called(ctx, endpoint)

	return args.Get(0), args.Error(1)
}

func (m *RequesterMock) Upload(
	ctx context.Context,
	endpoint, fileName string,
	file io.Reader,
	fields map[string]string,
) (any, error) {
	args := m.Called(ctx, endpoint, fileName, file, fields)

	return args.Get(0), args.Error(1)
}
