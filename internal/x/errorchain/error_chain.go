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

package errorchain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/iancoleman/strcase"
)

type link struct {
	err error
	msg string
}

func (l link) String() string {
	if len(l.msg) == 0 {
		return l.err.Error()
	}

	return l.err.Error() + ": " + l.msg
}

type ErrorChain struct { // nolint: errname
	links []link
}

func New(err error) *ErrorChain {
	return (&ErrorChain{}).append(err, "")
}

func NewWithMessage(err error, message string) *ErrorChain {
	return (&ErrorChain{}).append(err, message)
}

func NewWithMessagef(err error, format string, a ...any) *ErrorChain {
	return (&ErrorChain{}).append(err, fmt.Sprintf(format, a...))
}

func (ec *ErrorChain) CausedBy(err error) *ErrorChain {
	return ec.append(err, "")
}

func (ec *ErrorChain) Error() string {
	parts := make([]string, len(ec.links))

	for idx, l := range ec.links {
		parts[idx] = l.String()
	}

	return strings.Join(parts, ": ")
}

// Unwrap returns the chain without its head, so errors.Is and errors.As
// walk every error it holds.
func (ec *ErrorChain) Unwrap() error {
	if len(ec.links) < 2 { //nolint:mnd
		return nil
	}

	return &ErrorChain{links: ec.links[1:]}
}

func (ec *ErrorChain) Is(target error) bool {
	return len(ec.links) != 0 && errors.Is(ec.links[0].err, target)
}

func (ec *ErrorChain) As(target any) bool {
	return len(ec.links) != 0 && errors.As(ec.links[0].err, target)
}

func (ec *ErrorChain) Errors() []error {
	errs := make([]error, len(ec.links))

	for idx, l := range ec.links {
		errs[idx] = l.err
	}

	return errs
}

func (ec *ErrorChain) MarshalJSON() ([]byte, error) {
	type message struct {
		Code    string `json:"code"`
		Message string `json:"message,omitempty"`
	}

	if len(ec.links) == 0 {
		return json.Marshal(message{})
	}

	return json.Marshal(message{
		Code:    strcase.ToLowerCamel(ec.links[0].err.Error()),
		Message: ec.links[0].msg,
	})
}

func (ec *ErrorChain) append(err error, msg string) *ErrorChain {
	ec.links = append(ec.links, link{err: err, msg: msg})

	return ec
}
