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

var (
	cnpjFirstWeights  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}    //nolint:gochecknoglobals
	cnpjSecondWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2} //nolint:gochecknoglobals
)

// ValidCPF reports whether value holds 11 digits whose last two are the
// check digits of the first nine. Non digit characters are ignored.
func ValidCPF(value string) bool {
	digits := onlyDigits(value)
	if len(digits) != 11 {
		return false
	}

	return checkDigit(digits[:9], descendingWeights(10, 9)) == digits[9] &&
		checkDigit(digits[:10], descendingWeights(11, 10)) == digits[10]
}

// ValidCNPJ reports whether value holds 14 digits whose last two are the
// check digits of the first twelve. Non digit characters are ignored.
func ValidCNPJ(value string) bool {
	digits := onlyDigits(value)
	if len(digits) != 14 {
		return false
	}

	return checkDigit(digits[:12], cnpjFirstWeights) == digits[12] &&
		checkDigit(digits[:13], cnpjSecondWeights) == digits[13]
}

// checkDigit computes the modulo 11 check digit. Remainders below two yield zero.
func checkDigit(digits, weights []int) int {
	sum := 0
	for i, d := range digits {
		sum += d * weights[i]
	}

	if rem := sum % 11; rem >= 2 {
		return 11 - rem
	}

	return 0
}

func descendingWeights(from, count int) []int {
	weights := make([]int, count)
	for i := range weights {
		weights[i] = from - i
	}

	return weights
}

func onlyDigits(value string) []int {
	digits := make([]int, 0, len(value))

	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		}
	}

	return digits
}
