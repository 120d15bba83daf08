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

package mips

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/onflow/mipsdecode/errors"
)

// WordBits is the width of an instruction word.
const WordBits = 32

// Word is a 32-bit MIPS instruction word.
type Word uint32

// Opcode returns the top 6 bits of the word.
func (w Word) Opcode() uint8 {
	return uint8(FieldOpcode.extract(w))
}

// Binary returns the word as a string of exactly 32 binary digits.
func (w Word) Binary() string {
	return fmt.Sprintf("%032b", uint32(w))
}

func (w Word) String() string {
	return fmt.Sprintf("0x%08X", uint32(w))
}

// ParseBinaryWord parses a string of exactly 32 binary digits,
// most significant bit first.
func ParseBinaryWord(s string) (Word, error) {
	if len(s) != WordBits {
		return 0, &InvalidWordLengthError{
			Length: len(s),
		}
	}

	index := strings.IndexFunc(s, func(r rune) bool {
		return r != '0' && r != '1'
	})
	if index >= 0 {
		return 0, &InvalidBinaryDigitError{
			Index: index,
			Char:  []rune(s[index:])[0],
		}
	}

	return mustParseBinaryDigits(s), nil
}

// mustParseBinaryDigits parses digits already known to be
// exactly WordBits binary digits.
func mustParseBinaryDigits(s string) Word {
	value, err := strconv.ParseUint(s, 2, WordBits)
	if err != nil {
		panic(errors.NewUnexpectedErrorFromCause(err))
	}
	return Word(value)
}
