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
	"strconv"

	"github.com/onflow/mipsdecode/errors"
)

type Kind uint8

const (
	KindDecimal Kind = iota
	KindBinary
	KindOctal
	KindHexadecimal
)

func (k Kind) Base() int {
	switch k {
	case KindBinary:
		return 2
	case KindOctal:
		return 8
	case KindDecimal:
		return 10
	case KindHexadecimal:
		return 16
	}

	panic(errors.NewUnreachableError())
}

func (k Kind) Name() string {
	switch k {
	case KindBinary:
		return "binary"
	case KindOctal:
		return "octal"
	case KindDecimal:
		return "decimal"
	case KindHexadecimal:
		return "hexadecimal"
	}

	panic(errors.NewUnreachableError())
}

func (k Kind) String() string {
	if k > KindHexadecimal {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return k.Name()
}

// kindOfPrefix returns the kind selected by the second character
// of a `0`-prefixed literal, e.g. `x` in `0x20`.
func kindOfPrefix(r byte) (Kind, bool) {
	switch r {
	case 'b', 'B':
		return KindBinary, true
	case 'o', 'O':
		return KindOctal, true
	case 'x', 'X':
		return KindHexadecimal, true
	}
	return KindDecimal, false
}
