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
	"strconv"
	"strings"

	"github.com/onflow/mipsdecode/errors"
)

// RegisterCount is the number of general purpose registers.
const RegisterCount = 32

var registerNames = [RegisterCount]string{
	"$zero",
	"$at",
	"$v0", "$v1",
	"$a0", "$a1", "$a2", "$a3",
	"$t0", "$t1", "$t2", "$t3", "$t4", "$t5", "$t6", "$t7",
	"$s0", "$s1", "$s2", "$s3", "$s4", "$s5", "$s6", "$s7",
	"$t8", "$t9",
	"$k0", "$k1",
	"$gp",
	"$sp",
	"$s8",
	"$ra",
}

const framePointerAlias = "$fp"

var registerIndices = func() map[string]uint8 {
	indices := make(map[string]uint8, RegisterCount+1)
	for index, name := range registerNames {
		indices[name] = uint8(index)
	}
	indices[framePointerAlias] = 30
	return indices
}()

// RegisterName returns the conventional name of the register with the given index.
// Register fields are 5 bits wide, so an index outside of [0, 31]
// is an internal inconsistency.
func RegisterName(index uint8) string {
	if int(index) >= RegisterCount {
		panic(errors.NewUnexpectedError("invalid register index: %d", index))
	}
	return registerNames[index]
}

// RegisterIndex returns the index of the register with the given name.
// Both conventional names (e.g. `$t0`, `$fp`) and numeric names (e.g. `$8`) are accepted.
func RegisterIndex(name string) (uint8, bool) {
	if index, ok := registerIndices[strings.ToLower(name)]; ok {
		return index, true
	}

	digits, ok := strings.CutPrefix(name, "$")
	if !ok {
		return 0, false
	}
	index, err := strconv.ParseUint(digits, 10, 8)
	if err != nil || index >= RegisterCount {
		return 0, false
	}
	return uint8(index), true
}

// RegisterNaming is the style in which register operands are rendered.
type RegisterNaming uint8

const (
	// RegisterNamesNumeric renders registers by index, e.g. `$3`
	RegisterNamesNumeric RegisterNaming = iota
	// RegisterNamesConventional renders registers by their conventional name, e.g. `$v1`
	RegisterNamesConventional
)

func (n RegisterNaming) String() string {
	switch n {
	case RegisterNamesNumeric:
		return "numeric"
	case RegisterNamesConventional:
		return "conventional"
	default:
		return "RegisterNaming(" + strconv.Itoa(int(n)) + ")"
	}
}

// Name renders the register with the given index.
func (n RegisterNaming) Name(index uint8) string {
	switch n {
	case RegisterNamesNumeric:
		// validates the index
		_ = RegisterName(index)
		return "$" + strconv.Itoa(int(index))
	case RegisterNamesConventional:
		return RegisterName(index)
	default:
		panic(errors.NewUnreachableError())
	}
}

func ParseRegisterNaming(name string) (RegisterNaming, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "numeric":
		return RegisterNamesNumeric, nil
	case "conventional":
		return RegisterNamesConventional, nil
	default:
		return 0, &UnknownRegisterNamingError{
			Name: name,
		}
	}
}
