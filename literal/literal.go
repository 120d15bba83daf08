/*
 * MIPS Decode - Single-cycle MIPS instruction decoder
 *
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package literal

import (
	"math"
	"strconv"
	"strings"

	"github.com/onflow/mipsdecode/mips"
)

// Parse parses an unsigned integer literal.
// The prefixes `0b`, `0o`, and `0x` select binary, octal, and hexadecimal,
// case-insensitively. Literals without a prefix are decimal.
// Leading and trailing whitespace is ignored.
func Parse(token string) (uint64, error) {
	token = strings.TrimSpace(token)

	kind := KindDecimal
	digits := token
	if len(token) >= 2 && token[0] == '0' {
		if prefixKind, ok := kindOfPrefix(token[1]); ok {
			kind = prefixKind
			digits = token[2:]
		}
	}

	if digits == "" {
		return 0, &InvalidLiteralError{
			Token: token,
			Kind:  kind,
		}
	}

	value, err := strconv.ParseUint(digits, kind.Base(), 64)
	if err != nil {
		return 0, &InvalidLiteralError{
			Token: token,
			Kind:  kind,
			Err:   err,
		}
	}

	return value, nil
}

// ParseWord parses an integer literal into an instruction word.
func ParseWord(token string) (mips.Word, error) {
	value, err := Parse(token)
	if err != nil {
		return 0, err
	}

	if value > math.MaxUint32 {
		return 0, &WordOutOfRangeError{
			Token: strings.TrimSpace(token),
			Value: value,
		}
	}

	return mips.Word(value), nil
}
