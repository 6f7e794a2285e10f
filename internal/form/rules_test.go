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

package form

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	errPlate := errors.New("Placa inválida")
	plate := func(value string) error {
		if len(value) != 0 && len(value) != 7 {
			return errPlate
		}

		return nil
	}

	for _, tc := range []struct {
		uc       string
		values   url.Values
		rules    map[string][]Rule
		valid    bool
		expected map[string][]string
	}{
		{
			uc:       "no rules",
			values:   url.Values{"nome": []string{""}},
			valid:    true,
			expected: map[string][]string{},
		},
		{
			uc:       "required field missing",
			rules:    map[string][]Rule{"nome": {Required()}},
			expected: map[string][]string{"nome": {"Campo obrigatório"}},
		},
		{
			uc:       "required field blank",
			values:   url.Values{"nome": []string{"   "}},
			rules:    map[string][]Rule{"nome": {Required()}},
			expected: map[string][]string{"nome": {"Campo obrigatório"}},
		},
		{
			uc:       "required field present",
			values:   url.Values{"nome": []string{"Base Norte"}},
			rules:    map[string][]Rule{"nome": {Required()}},
			valid:    true,
			expected: map[string][]string{},
		},
		{
			uc:       "min length violated counting characters",
			values:   url.Values{"nome": []string{"ção"}},
			rules:    map[string][]Rule{"nome": {MinLength(4)}},
			expected: map[string][]string{"nome": {"Mínimo 4 caracteres"}},
		},
		{
			uc:       "min length fulfilled counting characters",
			values:   url.Values{"nome": []string{"ação"}},
			rules:    map[string][]Rule{"nome": {MinLength(4), MaxLength(4)}},
			valid:    true,
			expected: map[string][]string{},
		},
		{
			uc:       "max length violated",
			values:   url.Values{"nome": []string{strings.Repeat("a", 11)}},
			rules:    map[string][]Rule{"nome": {MaxLength(10)}},
			expected: map[string][]string{"nome": {"Máximo 10 caracteres"}},
		},
		{
			uc:       "length rules skipped for empty values",
			rules:    map[string][]Rule{"nome": {MinLength(3), MaxLength(1)}},
			valid:    true,
			expected: map[string][]string{},
		},
		{
			uc:       "invalid email",
			values:   url.Values{"email": []string{"foo@"}},
			rules:    map[string][]Rule{"email": {Email()}},
			expected: map[string][]string{"email": {"Email inválido"}},
		},
		{
			uc:       "valid email",
			values:   url.Values{"email": []string{"frota@pm.gov.br"}},
			rules:    map[string][]Rule{"email": {Required(), Email()}},
			valid:    true,
			expected: map[string][]string{},
		},
		{
			uc:       "email skipped for empty value",
			rules:    map[string][]Rule{"email": {Email()}},
			valid:    true,
			expected: map[string][]string{},
		},
		{
			uc:       "custom rule violated",
			values:   url.Values{"placa": []string{"ABC12"}},
			rules:    map[string][]Rule{"placa": {Custom(plate)}},
			expected: map[string][]string{"placa": {"Placa inválida"}},
		},
		{
			uc:       "custom rule fulfilled",
			values:   url.Values{"placa": []string{"ABC1D23"}},
			rules:    map[string][]Rule{"placa": {Custom(plate)}},
			valid:    true,
			expected: map[string][]string{},
		},
		{
			uc:     "custom messages and multiple violations",
			values: url.Values{"email": []string{"x"}},
			rules: map[string][]Rule{
				"email": {MinLength(3).WithMessage("curto demais"), Email().WithMessage("formato")},
				"nome":  {Required().WithMessage("informe o nome")},
				"placa": {Custom(plate).WithMessage("placa")},
			},
			expected: map[string][]string{
				"email": {"curto demais", "formato"},
				"nome":  {"informe o nome"},
			},
		},
		{
			uc:       "custom rule without check",
			values:   url.Values{"placa": []string{"x"}},
			rules:    map[string][]Rule{"placa": {{Kind: RuleCustom}}},
			valid:    true,
			expected: map[string][]string{},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			t.Parallel()

			// WHEN
			res := Validate(tc.values, tc.rules)

			// THEN
			assert.Equal(t, tc.valid, res.Valid)
			assert.Equal(t, tc.expected, res.Errors)
		})
	}
}

func TestRuleKindString(t *testing.T) {
	t.Parallel()

	for kind, expected := range map[RuleKind]string{
		RuleRequired:  "required",
		RuleMinLength: "min",
		RuleMaxLength: "max",
		RuleEmail:     "email",
		RuleCustom:    "custom",
		RulePhone:     "phone",
		RuleCPF:       "cpf",
		RuleCNPJ:      "cnpj",
		RuleKind(0):   "unknown",
	} {
		assert.Equal(t, expected, kind.String())
	}
}

func TestValidateDocumentsAndPhone(t *testing.T) {
	t.Parallel()

	rules := map[string][]Rule{
		"telefone": {Phone()},
		"cpf":      {CPF()},
		"cnpj":     {CNPJ().WithMessage("Documento inválido")},
	}

	for _, tc := range []struct {
		uc       string
		values   url.Values
		expected map[string][]string
	}{
		{
			uc:       "empty values are not checked",
			expected: map[string][]string{},
		},
		{
			uc: "valid formatted values",
			values: url.Values{
				"telefone": []string{"(81) 99999-4444"},
				"cpf":      []string{"529.982.247-25"},
				"cnpj":     []string{"11.222.333/0001-81"},
			},
			expected: map[string][]string{},
		},
		{
			uc: "valid unformatted documents and landline",
			values: url.Values{
				"telefone": []string{"(81) 3333-4444"},
				"cpf":      []string{"52998224725"},
				"cnpj":     []string{"11222333000181"},
			},
			expected: map[string][]string{},
		},
		{
			uc: "wrong check digits",
			values: url.Values{
				"cpf":  []string{"529.982.247-24"},
				"cnpj": []string{"11.222.333/0001-80"},
			},
			expected: map[string][]string{
				"cpf":  {"CPF inválido"},
				"cnpj": {"Documento inválido"},
			},
		},
		{
			uc: "wrong lengths and unformatted phone",
			values: url.Values{
				"telefone": []string{"81999994444"},
				"cpf":      []string{"123"},
				"cnpj":     []string{"11.222.333/0001"},
			},
			expected: map[string][]string{
				"telefone": {"Telefone inválido"},
				"cpf":      {"CPF inválido"},
				"cnpj":     {"Documento inválido"},
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			t.Parallel()

			// WHEN
			res := Validate(tc.values, rules)

			// THEN
			assert.Equal(t, len(tc.expected) == 0, res.Valid)
			assert.Equal(t, tc.expected, res.Errors)
		})
	}
}

func TestValidCPF(t *testing.T) {
	t.Parallel()

	for value, expected := range map[string]bool{
		"529.982.247-25": true,
		"111.444.777-35": true,
		"111.444.777-36": false,
		"5299822472":     false,
		"":               false,
	} {
		assert.Equal(t, expected, ValidCPF(value), value)
	}
}

func TestValidCNPJ(t *testing.T) {
	t.Parallel()

	for value, expected := range map[string]bool{
		"11.222.333/0001-81": true,
		"11.444.777/0001-61": true,
		"11.444.777/0001-62": false,
		"1122233300018":      false,
		"":                   false,
	} {
		assert.Equal(t, expected, ValidCNPJ(value), value)
	}
}
