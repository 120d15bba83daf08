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
	"fmt"

	"github.com/onflow/mipsdecode/errors"
	"github.com/onflow/mipsdecode/mips"
)

// InvalidLiteralError is reported for a token which is not
// a number in the base selected by its prefix.
type InvalidLiteralError struct {
	Token string
	Kind  Kind
	Err   error
}

var _ errors.UserError = &InvalidLiteralError{}

func (*InvalidLiteralError) IsUserError() {}

func (e *InvalidLiteralError) Error() string {
	if e.Token == "" {
		return "invalid literal: empty input"
	}
	return fmt.Sprintf(
		"invalid %s literal %q",
		e.Kind.Name(),
		e.Token,
	)
}

func (e *InvalidLiteralError) Unwrap() error {
	return e.Err
}

// WordOutOfRangeError is reported for a literal whose value
// does not fit into an instruction word.
type WordOutOfRangeError struct {
	Token string
	Value uint64
}

var _ errors.UserError = &WordOutOfRangeError{}

func (*WordOutOfRangeError) IsUserError() {}

func (e *WordOutOfRangeError) Error() string {
	return fmt.Sprintf(
		"literal %q is out of range: %d does not fit into %d bits",
		e.Token,
		e.Value,
		mips.WordBits,
	)
}
