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
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dadrus/fleetcache/internal/validation"
)

type RuleKind int

const (
	RuleRequired RuleKind = iota + 1
	RuleMinLength
	RuleMaxLength
	RuleEmail
	RuleCustom
	RulePhone
	RuleCPF
	RuleCNPJ
)

// phonePattern matches "(81) 3333-4444" and "(81) 99999-4444".
var phonePattern = regexp.MustCompile(`^\(\d{2}\)\s\d{4,5}-\d{4}$`)

func (k RuleKind) String() string {
	switch k {
	case RuleRequired:
		return "required"
	case RuleMinLength:
		return "min"
	case RuleMaxLength:
		return "max"
	case RuleEmail:
		return "email"
	case RuleCustom:
		return "custom"
	case RulePhone:
		return "phone"
	case RuleCPF:
		return "cpf"
	case RuleCNPJ:
		return "cnpj"
	default:
		return "unknown"
	}
}

// CheckFunc implements a custom rule. A non nil error marks the value as
// invalid, its message is reported unless the rule has its own message.
type CheckFunc func(value string) error

// Rule is a single constraint on the value of a form field.
type Rule struct {
	Kind    RuleKind
	Length  int
	Message string
	Check   CheckFunc
}

func Required() Rule { return Rule{Kind: RuleRequired} }

func MinLength(n int) Rule { return Rule{Kind: RuleMinLength, Length: n} }

func MaxLength(n int) Rule { return Rule{Kind: RuleMaxLength, Length: n} }

func Email() Rule { return Rule{Kind: RuleEmail} }

func Custom(fn CheckFunc) Rule { return Rule{Kind: RuleCustom, Check: fn} }

func Phone() Rule { return Rule{Kind: RulePhone} }

// CPF accepts formatted and unformatted values, only the digits are checked.
func CPF() Rule { return Rule{Kind: RuleCPF} }

// CNPJ accepts formatted and unformatted values, only the digits are checked.
func CNPJ() Rule { return Rule{Kind: RuleCNPJ} }

// WithMessage replaces the default message reported on violation.
func (r Rule) WithMessage(msg string) Rule {
	r.Message = msg

	return r
}

// apply returns the violation message or an empty string.
func (r Rule) apply(value string) string {
	switch r.Kind {
	case RuleRequired:
		if len(strings.TrimSpace(value)) == 0 {
			return r.message("Campo obrigatório")
		}
	case RuleMinLength:
		if len(value) != 0 && utf8.RuneCountInString(value) < r.Length {
			return r.message(fmt.Sprintf("Mínimo %d caracteres", r.Length))
		}
	case RuleMaxLength:
		if len(value) != 0 && utf8.RuneCountInString(value) > r.Length {
			return r.message(fmt.Sprintf("Máximo %d caracteres", r.Length))
		}
	case RuleEmail:
		if len(value) != 0 && validation.ValidateVar(value, "email") != nil {
			return r.message("Email inválido")
		}
	case RulePhone:
		if len(value) != 0 && !phonePattern.MatchString(value) {
			return r.message("Telefone inválido")
		}
	case RuleCPF:
		if len(value) != 0 && !ValidCPF(value) {
			return r.message("CPF inválido")
		}
	case RuleCNPJ:
		if len(value) != 0 && !ValidCNPJ(value) {
			return r.message("CNPJ inválido")
		}
	case RuleCustom:
		if r.Check == nil {
			return ""
		}

		if err := r.Check(value); err != nil {
			return r.message(err.Error())
		}
	}

	return ""
}

func (r Rule) message(def string) string {
	if len(r.Message) != 0 {
		return r.Message
	}

	return def
}

type Result struct {
	Valid  bool
	Errors map[string][]string
}

// Validate checks the first value of every field named in rules. Fields
// without violations do not appear in the errors of the result.
func Validate(values url.Values, rules map[string][]Rule) Result {
	errs := make(map[string][]string)

	for field, fieldRules := range rules {
		value := values.Get(field)

		var messages []string

		for _, rule := range fieldRules {
			if msg := rule.apply(value); len(msg) != 0 {
				messages = append(messages, msg)
			}
		}

		if len(messages) != 0 {
			errs[field] = messages
		}
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}
