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

	"github.com/onflow/mipsdecode/errors"
)

// InvalidWordLengthError is reported when a binary word
// does not consist of exactly 32 digits.
type InvalidWordLengthError struct {
	Length int
}

var _ errors.UserError = &InvalidWordLengthError{}

func (*InvalidWordLengthError) IsUserError() {}

func (e *InvalidWordLengthError) Error() string {
	return fmt.Sprintf(
		"invalid word length: expected %d binary digits, got %d",
		WordBits,
		e.Length,
	)
}

// InvalidBinaryDigitError is reported when a binary word
// contains a character other than 0 or 1.
type InvalidBinaryDigitError struct {
	Index int
	Char  rune
}

var _ errors.UserError = &InvalidBinaryDigitError{}

func (*InvalidBinaryDigitError) IsUserError() {}

func (e *InvalidBinaryDigitError) Error() string {
	return fmt.Sprintf(
		"invalid binary digit %q at position %d",
		e.Char,
		e.Index,
	)
}

// UnknownRegisterNamingError is reported for an unsupported register naming style.
type UnknownRegisterNamingError struct {
	Name string
}

var _ errors.UserError = &UnknownRegisterNamingError{}

func (*UnknownRegisterNamingError) IsUserError() {}

func (e *UnknownRegisterNamingError) Error() string {
	return fmt.Sprintf(
		"unknown register naming %q: expected %q or %q",
		e.Name,
		RegisterNamesNumeric,
		RegisterNamesConventional,
	)
}
