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

package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// by intention. Created once during bootstrap and never modified afterwards.
var defaultValidator = mustNewValidator() //nolint:gochecknoglobals

type Validator struct {
	v *validator.Validate
	t ut.Translator
}

func NewValidator() (*Validator, error) {
	enLoc := en.New()
	uni := ut.New(enLoc, enLoc)
	translate, _ := uni.GetTranslator("en")
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := entranslations.RegisterDefaultTranslations(validate, translate); err != nil {
		return nil, err
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Name

		for _, tagName := range []string{"mapstructure", "koanf", "json"} {
			if val := fld.Tag.Get(tagName); len(val) != 0 {
				name = val

				break
			}
		}

		return "'" + strings.SplitN(name, ",", 2)[0] + "'" // nolint: mnd
	})

	return &Validator{v: validate, t: translate}, nil
}

func mustNewValidator() *Validator {
	v, err := NewValidator()
	if err != nil {
		panic(err)
	}

	return v
}

func (v *Validator) ValidateStruct(s any) error { return wrapError(v.v.Struct(s), v.t) }

// ValidateVar checks a single value against the given validator tag, e.g. "email".
func (v *Validator) ValidateVar(value any, tag string) error {
	return wrapError(v.v.Var(value, tag), v.t)
}

func ValidateStruct(s any) error { return defaultValidator.ValidateStruct(s) }

func ValidateVar(value any, tag string) error { return defaultValidator.ValidateVar(value, tag) }
